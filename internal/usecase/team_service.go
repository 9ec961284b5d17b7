package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/league"
	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/team"
	"github.com/riskibarqy/matchday/internal/platform/id"
)

type TeamService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	ids        id.Generator
}

func NewTeamService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	ids id.Generator,
) *TeamService {
	return &TeamService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		ids:        ids,
	}
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID, err := requireID("team", teamID)
	if err != nil {
		return team.Team{}, err
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) ListPlayers(ctx context.Context, teamID string) ([]player.Player, error) {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return items, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, item team.Team) (team.Team, error) {
	var err error
	if item.ID, err = ensureID(s.ids, item.ID); err != nil {
		return team.Team{}, err
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.ensureLeague(ctx, item.LeagueID); err != nil {
		return team.Team{}, err
	}

	_, exists, err := s.teamRepo.GetByID(ctx, item.ID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if exists {
		return team.Team{}, fmt.Errorf("%w: team=%s already exists", ErrConflict, item.ID)
	}

	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	return item, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, item team.Team) (team.Team, error) {
	if _, err := s.GetTeam(ctx, item.ID); err != nil {
		return team.Team{}, err
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.ensureLeague(ctx, item.LeagueID); err != nil {
		return team.Team{}, err
	}

	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	return item, nil
}

// DeleteTeam refuses to remove a team that still has players.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	players, err := s.ListPlayers(ctx, teamID)
	if err != nil {
		return err
	}
	if len(players) > 0 {
		return fmt.Errorf("%w: team=%s still has %d players", ErrConflict, teamID, len(players))
	}

	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}

func (s *TeamService) ensureLeague(ctx context.Context, leagueID string) error {
	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	return nil
}
