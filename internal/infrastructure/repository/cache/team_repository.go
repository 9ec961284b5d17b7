package cache

import (
	"context"

	"github.com/riskibarqy/matchday/internal/domain/team"
	basecache "github.com/riskibarqy/matchday/internal/platform/cache"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

const teamPrefix = "team:"

type TeamRepository struct {
	next   team.Repository
	cache  *basecache.Store
	logger *logging.Logger
}

func NewTeamRepository(next team.Repository, cache *basecache.Store, logger *logging.Logger) *TeamRepository {
	return &TeamRepository{next: next, cache: cache, logger: cacheLogger(logger)}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	return basecache.GetOrLoad(ctx, r.cache, teamPrefix+"list:"+leagueID, func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListByLeague(ctx, leagueID)
	})
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	cached, err := basecache.GetOrLoad(ctx, r.cache, teamPrefix+"id:"+teamID, func(ctx context.Context) (cachedLookup[team.Team], error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		return cachedLookup[team.Team]{Value: item, Exists: exists}, err
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return cached.Value, cached.Exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	return r.write(ctx, func() error { return r.next.Create(ctx, item) })
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	return r.write(ctx, func() error { return r.next.Update(ctx, item) })
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	return r.write(ctx, func() error { return r.next.Delete(ctx, teamID) })
}

// A team can move between leagues, so every team key is dropped on write.
func (r *TeamRepository) write(ctx context.Context, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	invalidate(ctx, r.cache, r.logger, teamPrefix)
	return nil
}
