package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/matchday/internal/domain/player"
)

type PlayerRepository struct {
	rows *table[player.Player]
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	return &PlayerRepository{
		rows: newTable(players, func(p player.Player) string { return p.ID }),
	}
}

// ListByTeam orders players by shirt number.
func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	out := r.rows.filter(func(p player.Player) bool { return p.TeamID == teamID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].ShirtNumber < out[j].ShirtNumber })
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	p, ok := r.rows.get(playerID)
	return p, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	r.rows.upsert(item.ID, item)
	return nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.rows.upsert(item.ID, item)
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) error {
	r.rows.remove(playerID)
	return nil
}
