package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/league"
	"github.com/riskibarqy/matchday/internal/domain/team"
	"github.com/riskibarqy/matchday/internal/platform/id"
)

type LeagueService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	ids        id.Generator
}

func NewLeagueService(leagueRepo league.Repository, teamRepo team.Repository, ids id.Generator) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		ids:        ids,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	leagueID, err := requireID("league", leagueID)
	if err != nil {
		return league.League{}, err
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return item, nil
}

func (s *LeagueService) ListTeamsByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	if _, err := s.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	return teams, nil
}

func (s *LeagueService) CreateLeague(ctx context.Context, item league.League) (league.League, error) {
	var err error
	if item.ID, err = ensureID(s.ids, item.ID); err != nil {
		return league.League{}, err
	}
	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, item.ID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if exists {
		return league.League{}, fmt.Errorf("%w: league=%s already exists", ErrConflict, item.ID)
	}

	if err := s.leagueRepo.Create(ctx, item); err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}
	return item, nil
}

func (s *LeagueService) UpdateLeague(ctx context.Context, item league.League) (league.League, error) {
	if _, err := s.GetLeague(ctx, item.ID); err != nil {
		return league.League{}, err
	}
	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.leagueRepo.Update(ctx, item); err != nil {
		return league.League{}, fmt.Errorf("update league: %w", err)
	}
	return item, nil
}

// DeleteLeague refuses to remove a league that still has teams.
func (s *LeagueService) DeleteLeague(ctx context.Context, leagueID string) error {
	teams, err := s.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		return err
	}
	if len(teams) > 0 {
		return fmt.Errorf("%w: league=%s still has %d teams", ErrConflict, leagueID, len(teams))
	}

	if err := s.leagueRepo.Delete(ctx, leagueID); err != nil {
		return fmt.Errorf("delete league: %w", err)
	}
	return nil
}
