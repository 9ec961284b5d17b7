package match

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a match.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusLive       Status = "live"
	StatusHalfTime   Status = "half_time"
	StatusSecondHalf Status = "second_half"
	StatusExtraTime  Status = "extra_time"
	StatusPenalties  Status = "penalties"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
	StatusPostponed  Status = "postponed"
	StatusCancelled  Status = "cancelled"
)

var knownStatuses = map[Status]struct{}{
	StatusScheduled:  {},
	StatusLive:       {},
	StatusHalfTime:   {},
	StatusSecondHalf: {},
	StatusExtraTime:  {},
	StatusPenalties:  {},
	StatusPaused:     {},
	StatusCompleted:  {},
	StatusPostponed:  {},
	StatusCancelled:  {},
}

// Match is one fixture between two teams of a league.
//
// Phase timestamps are set once, when the phase is first entered. Minute is
// the last persisted minute and serves as the clock fallback.
type Match struct {
	ID                  string
	LeagueID            string
	HomeTeamID          string
	AwayTeamID          string
	Round               int
	KickoffAt           time.Time
	Venue               string
	Status              Status
	Minute              int
	HomeScore           *int
	AwayScore           *int
	MatchStartedAt      *time.Time
	SecondHalfStartedAt *time.Time
	ExtraTimeStartedAt  *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Filter narrows match listings. Zero values match everything.
type Filter struct {
	LeagueID string
	Statuses []Status
}

func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if status == "" {
		return StatusScheduled, nil
	}
	if !IsKnownStatus(status) {
		return "", fmt.Errorf("unknown match status: %s", value)
	}
	return status, nil
}

func IsKnownStatus(status Status) bool {
	_, ok := knownStatuses[status]
	return ok
}

func IsFinished(status Status) bool {
	return status == StatusCompleted
}

// InPlayStatuses lists every status between kickoff and the final whistle,
// including the ones where the clock is frozen.
func InPlayStatuses() []Status {
	return []Status{
		StatusLive,
		StatusHalfTime,
		StatusSecondHalf,
		StatusExtraTime,
		StatusPenalties,
		StatusPaused,
	}
}

func IsInPlay(status Status) bool {
	for _, s := range InPlayStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.LeagueID == "" {
		return fmt.Errorf("match league id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match teams are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match home and away team must differ")
	}
	if m.KickoffAt.IsZero() {
		return fmt.Errorf("match kickoff time is required")
	}
	if !IsKnownStatus(m.Status) {
		return fmt.Errorf("invalid match status: %s", m.Status)
	}
	if m.Minute < 0 {
		return fmt.Errorf("match minute must not be negative")
	}
	if (m.HomeScore != nil && *m.HomeScore < 0) || (m.AwayScore != nil && *m.AwayScore < 0) {
		return fmt.Errorf("match score must not be negative")
	}

	return nil
}
