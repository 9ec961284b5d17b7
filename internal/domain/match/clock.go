package match

import (
	"fmt"
	"time"
)

const (
	secondHalfBaseMinute = 45
	extraTimeBaseMinute  = 90

	secondHalfFallbackMinute = 46
	extraTimeFallbackMinute  = 91
)

// Snapshot is the clock state of a match at ComputedAt.
type Snapshot struct {
	MatchID    string
	Status     Status
	Minute     int
	Running    bool
	ComputedAt time.Time
}

// IsRunning reports whether the clock advances in real time for status.
// Half time, paused and penalties are displayed but frozen.
func IsRunning(status Status) bool {
	switch status {
	case StatusLive, StatusSecondHalf, StatusExtraTime:
		return true
	default:
		return false
	}
}

// ComputeMinute returns the minute to display at now. Missing phase
// timestamps fall back to fixed minutes and never produce an error.
func ComputeMinute(m Match, now time.Time) int {
	switch m.Status {
	case StatusLive:
		if m.MatchStartedAt == nil {
			return storedMinute(m)
		}
		return elapsedMinutes(*m.MatchStartedAt, now)
	case StatusSecondHalf:
		if m.SecondHalfStartedAt == nil {
			return secondHalfFallbackMinute
		}
		return secondHalfBaseMinute + elapsedMinutes(*m.SecondHalfStartedAt, now)
	case StatusExtraTime:
		if m.ExtraTimeStartedAt == nil {
			return extraTimeFallbackMinute
		}
		return extraTimeBaseMinute + elapsedMinutes(*m.ExtraTimeStartedAt, now)
	default:
		return storedMinute(m)
	}
}

func Clock(m Match, now time.Time) Snapshot {
	return Snapshot{
		MatchID:    m.ID,
		Status:     m.Status,
		Minute:     ComputeMinute(m, now),
		Running:    IsRunning(m.Status),
		ComputedAt: now,
	}
}

// Transition moves m to next at now. The phase timestamp of next is stamped
// only the first time the phase is entered, and the minute is frozen at the
// clock value when the match leaves a running status.
func Transition(m Match, next Status, now time.Time) (Match, error) {
	if !IsKnownStatus(next) {
		return m, fmt.Errorf("unknown match status: %s", next)
	}
	if m.Status == next {
		return m, nil
	}

	if IsRunning(m.Status) {
		m.Minute = ComputeMinute(m, now)
	}

	stamp := now.UTC()
	switch next {
	case StatusLive:
		if m.MatchStartedAt == nil {
			m.MatchStartedAt = &stamp
		}
	case StatusSecondHalf:
		if m.SecondHalfStartedAt == nil {
			m.SecondHalfStartedAt = &stamp
		}
	case StatusExtraTime:
		if m.ExtraTimeStartedAt == nil {
			m.ExtraTimeStartedAt = &stamp
		}
	}

	m.Status = next
	m.UpdatedAt = stamp
	return m, nil
}

func storedMinute(m Match) int {
	if m.Minute < 0 {
		return 0
	}
	return m.Minute
}

func elapsedMinutes(start, now time.Time) int {
	seconds := int64(now.Sub(start) / time.Second)
	if seconds < 0 {
		return 0
	}
	return int(seconds / 60)
}
