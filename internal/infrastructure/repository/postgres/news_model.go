package postgres

import "time"

type newsTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	Slug        string     `db:"slug"`
	Title       string     `db:"title"`
	Summary     string     `db:"summary"`
	Body        string     `db:"body"`
	ImageURL    string     `db:"image_url"`
	LeagueID    *string    `db:"league_public_id"`
	LeagueName  string     `db:"league_name"`
	IsPublished bool       `db:"is_published"`
	PublishedAt *time.Time `db:"published_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type newsWriteModel struct {
	PublicID    string     `db:"public_id"`
	Slug        string     `db:"slug"`
	Title       string     `db:"title"`
	Summary     string     `db:"summary"`
	Body        string     `db:"body"`
	ImageURL    string     `db:"image_url"`
	LeagueID    *string    `db:"league_public_id"`
	IsPublished bool       `db:"is_published"`
	PublishedAt *time.Time `db:"published_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
