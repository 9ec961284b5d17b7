package cache

import (
	"context"

	"github.com/riskibarqy/matchday/internal/domain/league"
	basecache "github.com/riskibarqy/matchday/internal/platform/cache"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

const leaguePrefix = "league:"

type LeagueRepository struct {
	next   league.Repository
	cache  *basecache.Store
	logger *logging.Logger
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store, logger *logging.Logger) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache, logger: cacheLogger(logger)}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	return basecache.GetOrLoad(ctx, r.cache, leaguePrefix+"list", r.next.List)
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	cached, err := basecache.GetOrLoad(ctx, r.cache, leaguePrefix+"id:"+leagueID, func(ctx context.Context) (cachedLookup[league.League], error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		return cachedLookup[league.League]{Value: item, Exists: exists}, err
	})
	if err != nil {
		return league.League{}, false, err
	}
	return cached.Value, cached.Exists, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) error {
	return r.write(ctx, func() error { return r.next.Create(ctx, item) })
}

func (r *LeagueRepository) Update(ctx context.Context, item league.League) error {
	return r.write(ctx, func() error { return r.next.Update(ctx, item) })
}

func (r *LeagueRepository) Delete(ctx context.Context, leagueID string) error {
	return r.write(ctx, func() error { return r.next.Delete(ctx, leagueID) })
}

func (r *LeagueRepository) write(ctx context.Context, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	invalidate(ctx, r.cache, r.logger, leaguePrefix)
	return nil
}

// cachedLookup keeps the found flag so misses are cached too.
type cachedLookup[T any] struct {
	Value  T    `json:"value"`
	Exists bool `json:"exists"`
}
