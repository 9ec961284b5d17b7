package usecase

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/matchday/internal/platform/id"
)

// ensureID keeps a caller supplied id and otherwise generates one.
func ensureID(ids id.Generator, current string) (string, error) {
	current = strings.TrimSpace(current)
	if current != "" {
		return current, nil
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	v, err := ids.NewID()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return v, nil
}

func requireID(kind, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s id is required", ErrInvalidInput, kind)
	}
	return value, nil
}
