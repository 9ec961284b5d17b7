package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/league"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/standing"
	"github.com/riskibarqy/matchday/internal/domain/team"
)

// StandingService derives league tables on read; nothing is persisted.
type StandingService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	matchRepo  match.Repository
}

func NewStandingService(leagueRepo league.Repository, teamRepo team.Repository, matchRepo match.Repository) *StandingService {
	return &StandingService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
	}
}

func (s *StandingService) ListByLeague(ctx context.Context, leagueID string) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListByLeague")
	defer span.End()

	leagueID, err := requireID("league", leagueID)
	if err != nil {
		return nil, err
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}
	matches, err := s.matchRepo.List(ctx, match.Filter{
		LeagueID: leagueID,
		Statuses: []match.Status{match.StatusCompleted},
	})
	if err != nil {
		return nil, fmt.Errorf("list completed matches: %w", err)
	}

	return standing.Compute(leagueID, teams, matches), nil
}
