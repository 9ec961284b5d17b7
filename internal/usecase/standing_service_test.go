package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
)

func TestStandingService_ListByLeague(t *testing.T) {
	repos := memory.NewRepositories(memory.DefaultSeed(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
	svc := NewStandingService(repos.Leagues, repos.Teams, repos.Matches)

	table, err := svc.ListByLeague(t.Context(), memory.LeagueIDEthiopianPremier)
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if len(table) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(table))
	}
	// The live derby does not count until completed.
	if table[0].TeamID != "eth-giorgis" || table[0].Points != 3 {
		t.Fatalf("unexpected leader: %+v", table[0])
	}
	if table[3].TeamID != "eth-bunna" || table[3].Played != 1 || table[3].Form != "L" {
		t.Fatalf("unexpected last row: %+v", table[3])
	}

	if _, err := svc.ListByLeague(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
