package usecase

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday/internal/platform/id"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

type recordingNotifier struct {
	mu      sync.Mutex
	items   []match.Match
	removed []string
}

func (n *recordingNotifier) Notify(item match.Match) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, item)
}

func (n *recordingNotifier) Remove(matchID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.removed = append(n.removed, matchID)
}

func (n *recordingNotifier) removedIDs() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.removed...)
}

func (n *recordingNotifier) last() (match.Match, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.items) == 0 {
		return match.Match{}, false
	}
	return n.items[len(n.items)-1], true
}

var serviceNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func newTestMatchService(t *testing.T) (*MatchService, *clockwork.FakeClock, *recordingNotifier) {
	t.Helper()

	fake := clockwork.NewFakeClockAt(serviceNow)
	repos := memory.NewRepositories(memory.DefaultSeed(serviceNow))
	svc := NewMatchService(repos.Leagues, repos.Teams, repos.Matches, id.NewSequenceGenerator("match"), fake, logging.NewNop())
	notifier := &recordingNotifier{}
	svc.SetNotifier(notifier)
	return svc, fake, notifier
}

func TestMatchService_UpdateStatus_StampsPhaseAndNotifies(t *testing.T) {
	svc, fake, notifier := newTestMatchService(t)

	fake.Advance(22*time.Minute + 30*time.Second)
	updated, err := svc.UpdateStatus(t.Context(), memory.MatchIDLiveDerby, "HALF_TIME")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != match.StatusHalfTime {
		t.Fatalf("unexpected status: %s", updated.Status)
	}
	// Seed kicked off 23 minutes before serviceNow.
	if updated.Minute != 45 {
		t.Fatalf("expected minute frozen at 45, got %d", updated.Minute)
	}

	notified, ok := notifier.last()
	if !ok || notified.ID != memory.MatchIDLiveDerby || notified.Status != match.StatusHalfTime {
		t.Fatalf("unexpected notification: %+v", notified)
	}

	fake.Advance(15 * time.Minute)
	updated, err = svc.UpdateStatus(t.Context(), memory.MatchIDLiveDerby, "second_half")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.SecondHalfStartedAt == nil || !updated.SecondHalfStartedAt.Equal(fake.Now()) {
		t.Fatalf("expected second half stamp at %v, got %v", fake.Now(), updated.SecondHalfStartedAt)
	}

	fake.Advance(5*time.Minute + 59*time.Second)
	snap, err := svc.Clock(t.Context(), memory.MatchIDLiveDerby)
	if err != nil {
		t.Fatalf("clock: %v", err)
	}
	if snap.Minute != 50 || !snap.Running {
		t.Fatalf("unexpected clock: %+v", snap)
	}
}

func TestMatchService_UpdateStatus_InvalidInput(t *testing.T) {
	svc, _, notifier := newTestMatchService(t)

	for _, status := range []string{"", "FT", "warmup"} {
		if _, err := svc.UpdateStatus(t.Context(), memory.MatchIDLiveDerby, status); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("status %q: expected ErrInvalidInput, got %v", status, err)
		}
	}
	if _, err := svc.UpdateStatus(t.Context(), "missing", "live"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, ok := notifier.last(); ok {
		t.Fatalf("no notification expected for rejected updates")
	}
}

func TestMatchService_ListFilters(t *testing.T) {
	svc, _, _ := newTestMatchService(t)

	live, err := svc.ListLive(t.Context())
	if err != nil {
		t.Fatalf("list live: %v", err)
	}
	if len(live) != 1 || live[0].ID != memory.MatchIDLiveDerby {
		t.Fatalf("unexpected live matches: %+v", live)
	}

	completed, err := svc.List(t.Context(), MatchListInput{Status: "completed"})
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(completed) != 2 {
		t.Fatalf("expected 2 completed matches, got %d", len(completed))
	}

	none, err := svc.List(t.Context(), MatchListInput{Status: "completed", LiveOnly: true})
	if err != nil {
		t.Fatalf("list completed live: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("completed matches are never live, got %d", len(none))
	}

	if _, err := svc.List(t.Context(), MatchListInput{Status: "bogus"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.ListByLeague(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_GetDetail(t *testing.T) {
	svc, _, _ := newTestMatchService(t)

	detail, err := svc.GetDetail(t.Context(), memory.MatchIDLiveDerby)
	if err != nil {
		t.Fatalf("get detail: %v", err)
	}
	if detail.League.ID != memory.LeagueIDEthiopianPremier {
		t.Fatalf("unexpected league: %+v", detail.League)
	}
	if detail.HomeTeam.ID != "eth-bunna" || detail.AwayTeam.ID != "eth-fasil" {
		t.Fatalf("unexpected teams: %s vs %s", detail.HomeTeam.ID, detail.AwayTeam.ID)
	}
	if detail.Clock.Minute != 23 || !detail.Clock.Running {
		t.Fatalf("unexpected clock: %+v", detail.Clock)
	}
}

func TestMatchService_CreateUpdateDelete(t *testing.T) {
	svc, _, notifier := newTestMatchService(t)

	created, err := svc.Create(t.Context(), match.Match{
		LeagueID:   memory.LeagueIDEthiopianPremier,
		HomeTeamID: "eth-giorgis",
		AwayTeamID: "eth-fasil",
		Round:      3,
		KickoffAt:  serviceNow.Add(48 * time.Hour),
		Venue:      "Addis Ababa Stadium",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "match-1" || created.Status != match.StatusScheduled || !created.CreatedAt.Equal(serviceNow) {
		t.Fatalf("unexpected created match: %+v", created)
	}

	_, err = svc.Create(t.Context(), match.Match{
		LeagueID: memory.LeagueIDEthiopianPremier, HomeTeamID: "eth-giorgis", AwayTeamID: "eng-ars",
		KickoffAt: serviceNow,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected cross-league fixture to be rejected, got %v", err)
	}

	edit := created
	edit.Venue = "Hawassa Stadium"
	edit.Status = match.StatusCompleted
	updated, err := svc.Update(t.Context(), edit)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Venue != "Hawassa Stadium" || updated.Status != match.StatusScheduled {
		t.Fatalf("update must change details only, got %+v", updated)
	}

	scored, err := svc.UpdateScore(t.Context(), created.ID, 3, 2)
	if err != nil {
		t.Fatalf("update score: %v", err)
	}
	if *scored.HomeScore != 3 || *scored.AwayScore != 2 {
		t.Fatalf("unexpected score: %d-%d", *scored.HomeScore, *scored.AwayScore)
	}
	if _, err := svc.UpdateScore(t.Context(), created.ID, -1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if err := svc.Delete(t.Context(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(t.Context(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if last, _ := notifier.last(); last.ID != created.ID || match.IsRunning(last.Status) {
		t.Fatalf("expected delete to stop the clock feed, got %+v", last)
	}
	if removed := notifier.removedIDs(); len(removed) != 1 || removed[0] != created.ID {
		t.Fatalf("expected delete to close the clock feed, got %v", removed)
	}
}
