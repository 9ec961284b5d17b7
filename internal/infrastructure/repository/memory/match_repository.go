package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/riskibarqy/matchday/internal/domain/match"
)

type MatchRepository struct {
	rows *table[match.Match]
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	return &MatchRepository{
		rows: newTable(matches, func(m match.Match) string { return m.ID }),
	}
}

// List orders matches by kickoff, then id.
func (r *MatchRepository) List(_ context.Context, filter match.Filter) ([]match.Match, error) {
	out := r.rows.filter(func(m match.Match) bool {
		if filter.LeagueID != "" && m.LeagueID != filter.LeagueID {
			return false
		}
		return len(filter.Statuses) == 0 || slices.Contains(filter.Statuses, m.Status)
	})
	sortMatches(out)
	return out, nil
}

func (r *MatchRepository) ListByIDs(_ context.Context, matchIDs []string) ([]match.Match, error) {
	out := make([]match.Match, 0, len(matchIDs))
	for _, id := range matchIDs {
		if m, ok := r.rows.get(id); ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	m, ok := r.rows.get(matchID)
	return m, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.rows.upsert(item.ID, item)
	return nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	r.rows.upsert(item.ID, item)
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	r.rows.remove(matchID)
	return nil
}

func sortMatches(items []match.Match) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].KickoffAt.Equal(items[j].KickoffAt) {
			return items[i].KickoffAt.Before(items[j].KickoffAt)
		}
		return items[i].ID < items[j].ID
	})
}
