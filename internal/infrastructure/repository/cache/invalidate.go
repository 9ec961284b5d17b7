package cache

import (
	"context"

	basecache "github.com/riskibarqy/matchday/internal/platform/cache"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

// invalidate drops every key under prefix. Failures are logged; readers keep
// the old value until the TTL expires.
func invalidate(ctx context.Context, store *basecache.Store, logger *logging.Logger, prefix string) {
	if err := store.Invalidate(ctx, prefix); err != nil {
		logger.WarnContext(ctx, "cache invalidation failed", "prefix", prefix, "error", err)
	}
}

func cacheLogger(logger *logging.Logger) *logging.Logger {
	if logger == nil {
		logger = logging.Default()
	}
	return logger.Named("cache")
}
