package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/matchday/internal/domain/match"
	leaguemock "github.com/riskibarqy/matchday/internal/mocks/domain/league"
	matchmock "github.com/riskibarqy/matchday/internal/mocks/domain/match"
	teammock "github.com/riskibarqy/matchday/internal/mocks/domain/team"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

func TestMatchService_UpdateStatus_RepositoryFailureSkipsNotify(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fake := clockwork.NewFakeClockAt(serviceNow)
	matchRepo := matchmock.NewRepository(t)
	svc := NewMatchService(leaguemock.NewRepository(t), teammock.NewRepository(t), matchRepo, nil, fake, logging.NewNop())
	notifier := &recordingNotifier{}
	svc.SetNotifier(notifier)

	kickoff := serviceNow.Add(-5 * time.Minute)
	scheduled := match.Match{ID: "m-1", LeagueID: "l-1", HomeTeamID: "t-1", AwayTeamID: "t-2", KickoffAt: kickoff, Status: match.StatusScheduled}
	writeErr := errors.New("connection reset")

	matchRepo.On("GetByID", mock.Anything, "m-1").Return(scheduled, true, nil).Once()
	matchRepo.
		On("Update", mock.Anything, mock.MatchedBy(func(m match.Match) bool {
			return m.Status == match.StatusLive && m.MatchStartedAt != nil && m.MatchStartedAt.Equal(serviceNow)
		})).
		Return(writeErr).
		Once()

	_, err := svc.UpdateStatus(ctx, "m-1", "live")
	if !errors.Is(err, writeErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
	if _, ok := notifier.last(); ok {
		t.Fatalf("expected no clock notification after failed write")
	}
}

func TestMatchService_Clock_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	matchRepo := matchmock.NewRepository(t)
	svc := NewMatchService(leaguemock.NewRepository(t), teammock.NewRepository(t), matchRepo, nil, clockwork.NewFakeClockAt(serviceNow), logging.NewNop())

	matchRepo.On("GetByID", mock.Anything, "missing").Return(match.Match{}, false, nil).Once()

	_, err := svc.Clock(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
