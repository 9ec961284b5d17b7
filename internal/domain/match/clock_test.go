package match

import (
	"testing"
	"time"
)

func ptrTime(t time.Time) *time.Time {
	return &t
}

func TestIsRunning(t *testing.T) {
	running := map[Status]bool{
		StatusScheduled:  false,
		StatusLive:       true,
		StatusHalfTime:   false,
		StatusSecondHalf: true,
		StatusExtraTime:  true,
		StatusPenalties:  false,
		StatusPaused:     false,
		StatusCompleted:  false,
		StatusPostponed:  false,
		StatusCancelled:  false,
	}
	for status, want := range running {
		if got := IsRunning(status); got != want {
			t.Fatalf("IsRunning(%s)=%v want %v", status, got, want)
		}
	}
}

func TestIsInPlay(t *testing.T) {
	for status := range knownStatuses {
		want := status != StatusScheduled && status != StatusCompleted &&
			status != StatusPostponed && status != StatusCancelled
		if got := IsInPlay(status); got != want {
			t.Fatalf("IsInPlay(%s)=%v want %v", status, got, want)
		}
		if IsRunning(status) && !IsInPlay(status) {
			t.Fatalf("running status %s must be in play", status)
		}
	}
}

func TestComputeMinute(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		match Match
		now   time.Time
		want  int
	}{
		{
			name:  "live floors elapsed seconds",
			match: Match{Status: StatusLive, MatchStartedAt: ptrTime(start)},
			now:   start.Add(125 * time.Second),
			want:  2,
		},
		{
			name:  "live ignores sub-second precision",
			match: Match{Status: StatusLive, MatchStartedAt: ptrTime(start)},
			now:   start.Add(119*time.Second + 999*time.Millisecond),
			want:  1,
		},
		{
			name:  "live without timestamp uses stored minute",
			match: Match{Status: StatusLive, Minute: 23},
			now:   start.Add(time.Hour),
			want:  23,
		},
		{
			name:  "second half counts from its own start",
			match: Match{Status: StatusSecondHalf, MatchStartedAt: ptrTime(start), SecondHalfStartedAt: ptrTime(start)},
			now:   start.Add(3601 * time.Second),
			want:  105,
		},
		{
			name:  "second half without timestamp",
			match: Match{Status: StatusSecondHalf, Minute: 70},
			now:   start.Add(10 * time.Hour),
			want:  46,
		},
		{
			name:  "extra time",
			match: Match{Status: StatusExtraTime, ExtraTimeStartedAt: ptrTime(start)},
			now:   start.Add(7*time.Minute + 30*time.Second),
			want:  97,
		},
		{
			name:  "extra time without timestamp",
			match: Match{Status: StatusExtraTime},
			now:   start,
			want:  91,
		},
		{
			name:  "future phase start clamps to phase base",
			match: Match{Status: StatusSecondHalf, SecondHalfStartedAt: ptrTime(start.Add(time.Minute))},
			now:   start,
			want:  45,
		},
		{
			name:  "negative stored minute reads as zero",
			match: Match{Status: StatusPaused, Minute: -3},
			now:   start,
			want:  0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeMinute(tc.match, tc.now); got != tc.want {
				t.Fatalf("unexpected minute: got=%d want=%d", got, tc.want)
			}
		})
	}
}

func TestComputeMinute_NonRunningReturnsStoredMinute(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	nonRunning := []Status{
		StatusScheduled, StatusHalfTime, StatusPenalties, StatusPaused,
		StatusCompleted, StatusPostponed, StatusCancelled,
	}

	for _, status := range nonRunning {
		m := Match{
			Status:              status,
			Minute:              45,
			MatchStartedAt:      ptrTime(start),
			SecondHalfStartedAt: ptrTime(start.Add(time.Hour)),
		}
		for _, offset := range []time.Duration{0, time.Minute, 5 * time.Hour} {
			if got := ComputeMinute(m, start.Add(offset)); got != 45 {
				t.Fatalf("status %s offset %s: got=%d want=45", status, offset, got)
			}
		}
		m.Minute = 0
		if got := ComputeMinute(m, start); got != 0 {
			t.Fatalf("status %s without minute: got=%d want=0", status, got)
		}
	}
}

func TestComputeMinute_Idempotent(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	m := Match{Status: StatusLive, MatchStartedAt: ptrTime(start)}
	now := start.Add(17*time.Minute + 12*time.Second)

	first := ComputeMinute(m, now)
	second := ComputeMinute(m, now)
	if first != second || first != 17 {
		t.Fatalf("expected stable minute 17, got %d then %d", first, second)
	}
}

func TestClock(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	now := start.Add(10 * time.Minute)

	snap := Clock(Match{ID: "m1", Status: StatusLive, MatchStartedAt: ptrTime(start)}, now)
	if snap.MatchID != "m1" || snap.Minute != 10 || !snap.Running || !snap.ComputedAt.Equal(now) {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestTransition(t *testing.T) {
	kickoff := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	m := Match{ID: "m1", Status: StatusScheduled}

	m, err := Transition(m, StatusLive, kickoff)
	if err != nil {
		t.Fatalf("kick off: %v", err)
	}
	if m.MatchStartedAt == nil || !m.MatchStartedAt.Equal(kickoff) {
		t.Fatalf("expected match start stamp, got %v", m.MatchStartedAt)
	}

	m, err = Transition(m, StatusHalfTime, kickoff.Add(47*time.Minute+20*time.Second))
	if err != nil {
		t.Fatalf("half time: %v", err)
	}
	if m.Minute != 47 {
		t.Fatalf("expected frozen minute 47, got %d", m.Minute)
	}
	if ComputeMinute(m, kickoff.Add(2*time.Hour)) != 47 {
		t.Fatalf("expected half time clock to stay frozen")
	}

	secondHalf := kickoff.Add(time.Hour)
	m, err = Transition(m, StatusSecondHalf, secondHalf)
	if err != nil {
		t.Fatalf("second half: %v", err)
	}
	if m.SecondHalfStartedAt == nil || !m.SecondHalfStartedAt.Equal(secondHalf) {
		t.Fatalf("expected second half stamp, got %v", m.SecondHalfStartedAt)
	}

	// Pausing and resuming must not move the phase start.
	m, _ = Transition(m, StatusPaused, secondHalf.Add(10*time.Minute))
	m, _ = Transition(m, StatusSecondHalf, secondHalf.Add(15*time.Minute))
	if !m.SecondHalfStartedAt.Equal(secondHalf) {
		t.Fatalf("second half stamp moved to %v", m.SecondHalfStartedAt)
	}
	if !m.MatchStartedAt.Equal(kickoff) {
		t.Fatalf("match start stamp moved to %v", m.MatchStartedAt)
	}
}

func TestTransition_RejectsUnknownStatus(t *testing.T) {
	if _, err := Transition(Match{Status: StatusScheduled}, Status("warmup"), time.Now()); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestParseStatus(t *testing.T) {
	got, err := ParseStatus(" Second_Half ")
	if err != nil || got != StatusSecondHalf {
		t.Fatalf("unexpected parse result: %s %v", got, err)
	}
	if got, err := ParseStatus(""); err != nil || got != StatusScheduled {
		t.Fatalf("expected empty status to default to scheduled, got %s %v", got, err)
	}
	if _, err := ParseStatus("FT"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}
