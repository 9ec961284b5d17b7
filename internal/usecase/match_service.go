package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/matchday/internal/domain/league"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/team"
	"github.com/riskibarqy/matchday/internal/platform/id"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

// ClockNotifier is told about every persisted status change of a match and
// about deleted matches.
type ClockNotifier interface {
	Notify(item match.Match)
	Remove(matchID string)
}

type MatchListInput struct {
	LeagueID string
	Status   string
	LiveOnly bool
}

type MatchDetail struct {
	Match    match.Match
	League   league.League
	HomeTeam team.Team
	AwayTeam team.Team
	Clock    match.Snapshot
}

type MatchService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	matchRepo  match.Repository
	ids        id.Generator
	clock      clockwork.Clock
	notifier   ClockNotifier
	logger     *logging.Logger
}

func NewMatchService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	ids id.Generator,
	clock clockwork.Clock,
	logger *logging.Logger,
) *MatchService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		ids:        ids,
		clock:      clock,
		logger:     logger,
	}
}

// SetNotifier wires the clock hub after construction; the hub itself reads
// matches through the same repository.
func (s *MatchService) SetNotifier(notifier ClockNotifier) {
	s.notifier = notifier
}

func (s *MatchService) List(ctx context.Context, input MatchListInput) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	filter := match.Filter{LeagueID: strings.TrimSpace(input.LeagueID)}
	if raw := strings.TrimSpace(input.Status); raw != "" {
		status, err := match.ParseStatus(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Statuses = []match.Status{status}
	}
	if input.LiveOnly {
		filter.Statuses = inPlayOnly(filter.Statuses)
		if len(filter.Statuses) == 0 {
			return []match.Match{}, nil
		}
	}

	items, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) ListByLeague(ctx context.Context, leagueID string) ([]match.Match, error) {
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

	return s.List(ctx, MatchListInput{LeagueID: leagueID})
}

// ListLive returns matches between kickoff and the final whistle, frozen
// phases included.
func (s *MatchService) ListLive(ctx context.Context) ([]match.Match, error) {
	return s.List(ctx, MatchListInput{LiveOnly: true})
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	matchID, err := requireID("match", matchID)
	if err != nil {
		return match.Match{}, err
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

// GetDetail loads the match and then its league and both teams concurrently.
func (s *MatchService) GetDetail(ctx context.Context, matchID string) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetDetail")
	defer span.End()

	item, err := s.Get(ctx, matchID)
	if err != nil {
		return MatchDetail{}, err
	}

	detail := MatchDetail{Match: item}
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		l, exists, err := s.leagueRepo.GetByID(ctx, item.LeagueID)
		if err != nil {
			return fmt.Errorf("get league: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: league=%s", ErrNotFound, item.LeagueID)
		}
		detail.League = l
		return nil
	})
	p.Go(func(ctx context.Context) error {
		t, err := s.loadTeam(ctx, item.HomeTeamID)
		detail.HomeTeam = t
		return err
	})
	p.Go(func(ctx context.Context) error {
		t, err := s.loadTeam(ctx, item.AwayTeamID)
		detail.AwayTeam = t
		return err
	})
	if err := p.Wait(); err != nil {
		return MatchDetail{}, err
	}

	detail.Clock = match.Clock(item, s.clock.Now())
	return detail, nil
}

// Snapshot computes the clock of an already loaded match.
func (s *MatchService) Snapshot(item match.Match) match.Snapshot {
	return match.Clock(item, s.clock.Now())
}

func (s *MatchService) Clock(ctx context.Context, matchID string) (match.Snapshot, error) {
	item, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Snapshot{}, err
	}
	return match.Clock(item, s.clock.Now()), nil
}

func (s *MatchService) Create(ctx context.Context, item match.Match) (match.Match, error) {
	var err error
	if item.ID, err = ensureID(s.ids, item.ID); err != nil {
		return match.Match{}, err
	}
	if item.Status == "" {
		item.Status = match.StatusScheduled
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.ensureFixture(ctx, item); err != nil {
		return match.Match{}, err
	}

	_, exists, err := s.matchRepo.GetByID(ctx, item.ID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if exists {
		return match.Match{}, fmt.Errorf("%w: match=%s already exists", ErrConflict, item.ID)
	}

	now := s.clock.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return item, nil
}

// Update edits fixture details. Status, minute, score and phase timestamps
// only change through UpdateStatus and UpdateScore.
func (s *MatchService) Update(ctx context.Context, item match.Match) (match.Match, error) {
	current, err := s.Get(ctx, item.ID)
	if err != nil {
		return match.Match{}, err
	}

	current.LeagueID = item.LeagueID
	current.HomeTeamID = item.HomeTeamID
	current.AwayTeamID = item.AwayTeamID
	current.Round = item.Round
	current.KickoffAt = item.KickoffAt
	current.Venue = item.Venue
	if err := current.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.ensureFixture(ctx, current); err != nil {
		return match.Match{}, err
	}

	current.UpdatedAt = s.clock.Now().UTC()
	if err := s.matchRepo.Update(ctx, current); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	return current, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	item, err := s.Get(ctx, matchID)
	if err != nil {
		return err
	}
	if err := s.matchRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	item.Status = match.StatusCancelled
	item.UpdatedAt = s.clock.Now().UTC()
	s.notify(ctx, item)
	if s.notifier != nil {
		s.notifier.Remove(item.ID)
	}
	return nil
}

func (s *MatchService) UpdateStatus(ctx context.Context, matchID, status string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateStatus")
	defer span.End()

	next, err := match.ParseStatus(status)
	if err != nil || strings.TrimSpace(status) == "" {
		return match.Match{}, fmt.Errorf("%w: invalid match status %q", ErrInvalidInput, status)
	}

	current, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	updated, err := match.Transition(current, next, s.clock.Now())
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.matchRepo.Update(ctx, updated); err != nil {
		return match.Match{}, fmt.Errorf("update match status: %w", err)
	}

	s.logger.InfoContext(ctx, "match status changed",
		"match_id", updated.ID,
		"from", current.Status,
		"to", updated.Status,
		"minute", updated.Minute,
	)
	s.notify(ctx, updated)
	return updated, nil
}

func (s *MatchService) UpdateScore(ctx context.Context, matchID string, home, away int) (match.Match, error) {
	if home < 0 || away < 0 {
		return match.Match{}, fmt.Errorf("%w: score must not be negative", ErrInvalidInput)
	}

	current, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	current.HomeScore = &home
	current.AwayScore = &away
	current.UpdatedAt = s.clock.Now().UTC()

	if err := s.matchRepo.Update(ctx, current); err != nil {
		return match.Match{}, fmt.Errorf("update match score: %w", err)
	}
	return current, nil
}

func (s *MatchService) notify(ctx context.Context, item match.Match) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(item)
	s.logger.DebugContext(ctx, "clock notified", "match_id", item.ID, "status", item.Status)
}

func (s *MatchService) ensureFixture(ctx context.Context, item match.Match) error {
	_, exists, err := s.leagueRepo.GetByID(ctx, item.LeagueID)
	if err != nil {
		return fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: league=%s", ErrNotFound, item.LeagueID)
	}

	for _, teamID := range []string{item.HomeTeamID, item.AwayTeamID} {
		t, err := s.loadTeam(ctx, teamID)
		if err != nil {
			return err
		}
		if t.LeagueID != item.LeagueID {
			return fmt.Errorf("%w: team=%s does not play in league=%s", ErrInvalidInput, teamID, item.LeagueID)
		}
	}
	return nil
}

func (s *MatchService) loadTeam(ctx context.Context, teamID string) (team.Team, error) {
	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return t, nil
}

// inPlayOnly narrows requested to in-play statuses; no request means all of
// them.
func inPlayOnly(requested []match.Status) []match.Status {
	if len(requested) == 0 {
		return match.InPlayStatuses()
	}
	out := make([]match.Status, 0, len(requested))
	for _, status := range requested {
		if match.IsInPlay(status) {
			out = append(out, status)
		}
	}
	return out
}
