package postgres

import "time"

type leagueTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	Name        string     `db:"name"`
	CountryCode string     `db:"country_code"`
	Season      string     `db:"season"`
	IsDefault   bool       `db:"is_default"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type leagueInsertModel struct {
	PublicID    string `db:"public_id"`
	Name        string `db:"name"`
	CountryCode string `db:"country_code"`
	Season      string `db:"season"`
	IsDefault   bool   `db:"is_default"`
}
