package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/team"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday/internal/platform/id"
)

func TestTeamAndPlayerServices(t *testing.T) {
	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	teams := NewTeamService(leagueRepo, teamRepo, playerRepo, id.NewSequenceGenerator("team"))
	players := NewPlayerService(teamRepo, playerRepo, id.NewSequenceGenerator("player"))

	squad, err := teams.ListPlayers(t.Context(), "eth-giorgis")
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(squad) != 3 || squad[0].ShirtNumber != 1 {
		t.Fatalf("unexpected squad: %+v", squad)
	}

	created, err := teams.CreateTeam(t.Context(), team.Team{LeagueID: memory.LeagueIDEthiopianPremier, Name: "Hawassa City", Short: "HAW"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.ID != "team-1" {
		t.Fatalf("unexpected generated id: %s", created.ID)
	}
	if _, err := teams.CreateTeam(t.Context(), team.Team{LeagueID: "missing", Name: "Nowhere FC"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown league, got %v", err)
	}

	signed, err := players.CreatePlayer(t.Context(), player.Player{TeamID: created.ID, Name: "Dawa Hotessa", Position: player.PositionForward, ShirtNumber: 9})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if _, err := players.CreatePlayer(t.Context(), player.Player{TeamID: created.ID, Name: "Nobody", Position: "ST"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad position, got %v", err)
	}

	if err := teams.DeleteTeam(t.Context(), created.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict while players remain, got %v", err)
	}
	if err := players.DeletePlayer(t.Context(), signed.ID); err != nil {
		t.Fatalf("delete player: %v", err)
	}
	if err := teams.DeleteTeam(t.Context(), created.ID); err != nil {
		t.Fatalf("delete team: %v", err)
	}
	if _, err := teams.GetTeam(t.Context(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
