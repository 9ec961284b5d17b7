package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrRowNotFound is returned by writes that matched no live row.
var ErrRowNotFound = errors.New("row not found")

const onConflictDoNothing = "ON CONFLICT (public_id) DO NOTHING"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func expectAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected %s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrRowNotFound)
	}
	return nil
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
