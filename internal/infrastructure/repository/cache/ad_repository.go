package cache

import (
	"context"

	"github.com/riskibarqy/matchday/internal/domain/ad"
	basecache "github.com/riskibarqy/matchday/internal/platform/cache"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

const (
	adPrefix      = "ad:"
	adServableKey = adPrefix + "servable"
)

// AdRepository caches the servable snapshot. Admin reads go straight to next
// so editors always see their own writes.
type AdRepository struct {
	ad.Repository
	cache  *basecache.Store
	logger *logging.Logger
}

func NewAdRepository(next ad.Repository, cache *basecache.Store, logger *logging.Logger) *AdRepository {
	return &AdRepository{Repository: next, cache: cache, logger: cacheLogger(logger)}
}

// ListServable caches the joined rows, not the selection: schedule windows
// are evaluated against the request time on every call.
func (r *AdRepository) ListServable(ctx context.Context) ([]ad.Image, error) {
	return basecache.GetOrLoad(ctx, r.cache, adServableKey, r.Repository.ListServable)
}

func (r *AdRepository) CreateCampaign(ctx context.Context, item ad.Campaign) error {
	return r.write(ctx, func() error { return r.Repository.CreateCampaign(ctx, item) })
}

func (r *AdRepository) UpdateCampaign(ctx context.Context, item ad.Campaign) error {
	return r.write(ctx, func() error { return r.Repository.UpdateCampaign(ctx, item) })
}

func (r *AdRepository) DeleteCampaign(ctx context.Context, campaignID string) error {
	return r.write(ctx, func() error { return r.Repository.DeleteCampaign(ctx, campaignID) })
}

func (r *AdRepository) CreateImage(ctx context.Context, item ad.Image) error {
	return r.write(ctx, func() error { return r.Repository.CreateImage(ctx, item) })
}

func (r *AdRepository) UpdateImage(ctx context.Context, item ad.Image) error {
	return r.write(ctx, func() error { return r.Repository.UpdateImage(ctx, item) })
}

func (r *AdRepository) DeleteImage(ctx context.Context, imageID string) error {
	return r.write(ctx, func() error { return r.Repository.DeleteImage(ctx, imageID) })
}

func (r *AdRepository) write(ctx context.Context, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	invalidate(ctx, r.cache, r.logger, adPrefix)
	return nil
}
