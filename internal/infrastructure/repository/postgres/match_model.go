package postgres

import "time"

type matchTableModel struct {
	ID                  int64      `db:"id"`
	PublicID            string     `db:"public_id"`
	LeagueID            string     `db:"league_public_id"`
	HomeTeamID          string     `db:"home_team_public_id"`
	AwayTeamID          string     `db:"away_team_public_id"`
	Round               int        `db:"round"`
	KickoffAt           time.Time  `db:"kickoff_at"`
	Venue               string     `db:"venue"`
	Status              string     `db:"status"`
	Minute              int        `db:"minute"`
	HomeScore           *int       `db:"home_score"`
	AwayScore           *int       `db:"away_score"`
	MatchStartedAt      *time.Time `db:"match_started_at"`
	SecondHalfStartedAt *time.Time `db:"second_half_started_at"`
	ExtraTimeStartedAt  *time.Time `db:"extra_time_started_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
	DeletedAt           *time.Time `db:"deleted_at"`
}

type matchWriteModel struct {
	PublicID            string     `db:"public_id"`
	LeagueID            string     `db:"league_public_id"`
	HomeTeamID          string     `db:"home_team_public_id"`
	AwayTeamID          string     `db:"away_team_public_id"`
	Round               int        `db:"round"`
	KickoffAt           time.Time  `db:"kickoff_at"`
	Venue               string     `db:"venue"`
	Status              string     `db:"status"`
	Minute              int        `db:"minute"`
	HomeScore           *int       `db:"home_score"`
	AwayScore           *int       `db:"away_score"`
	MatchStartedAt      *time.Time `db:"match_started_at"`
	SecondHalfStartedAt *time.Time `db:"second_half_started_at"`
	ExtraTimeStartedAt  *time.Time `db:"extra_time_started_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}
