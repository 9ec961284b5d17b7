package memory

import (
	"context"

	"github.com/riskibarqy/matchday/internal/domain/team"
)

type TeamRepository struct {
	rows *table[team.Team]
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	return &TeamRepository{
		rows: newTable(teams, func(t team.Team) string { return t.ID }),
	}
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	return r.rows.filter(func(t team.Team) bool { return t.LeagueID == leagueID }), nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	t, ok := r.rows.get(teamID)
	return t, ok, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.rows.upsert(item.ID, item)
	return nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.rows.upsert(item.ID, item)
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) error {
	r.rows.remove(teamID)
	return nil
}
