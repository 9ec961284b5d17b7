package memory

import (
	"context"

	"github.com/riskibarqy/matchday/internal/domain/league"
)

type LeagueRepository struct {
	rows *table[league.League]
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	return &LeagueRepository{
		rows: newTable(leagues, func(l league.League) string { return l.ID }),
	}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	return r.rows.filter(nil), nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	l, ok := r.rows.get(leagueID)
	return l, ok, nil
}

func (r *LeagueRepository) Create(_ context.Context, item league.League) error {
	r.rows.upsert(item.ID, item)
	return nil
}

func (r *LeagueRepository) Update(_ context.Context, item league.League) error {
	r.rows.upsert(item.ID, item)
	return nil
}

func (r *LeagueRepository) Delete(_ context.Context, leagueID string) error {
	r.rows.remove(leagueID)
	return nil
}
