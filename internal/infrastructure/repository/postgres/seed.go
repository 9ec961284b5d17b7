package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type seedRow struct {
	table string
	id    string
	model any
}

// BootstrapSeed loads seed into an empty database. Rows that already exist
// are left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, seed memory.Seed) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, row := range seedRows(seed) {
		query, args, err := qb.InsertModel(row.table, row.model, onConflictDoNothing)
		if err != nil {
			return fmt.Errorf("build seed %s %s query: %w", row.table, row.id, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed %s %s: %w", row.table, row.id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

// seedRows orders rows so referenced parents are inserted first.
func seedRows(seed memory.Seed) []seedRow {
	rows := make([]seedRow, 0,
		len(seed.Leagues)+len(seed.Teams)+len(seed.Players)+len(seed.Matches)+
			len(seed.Campaigns)+len(seed.Images)+len(seed.Articles))

	for _, item := range seed.Leagues {
		rows = append(rows, seedRow{table: "leagues", id: item.ID, model: leagueInsertFromDomain(item)})
	}
	for _, item := range seed.Teams {
		rows = append(rows, seedRow{table: "teams", id: item.ID, model: teamInsertFromDomain(item)})
	}
	for _, item := range seed.Players {
		rows = append(rows, seedRow{table: "players", id: item.ID, model: playerWriteFromDomain(item)})
	}
	for _, item := range seed.Matches {
		rows = append(rows, seedRow{table: "matches", id: item.ID, model: matchWriteFromDomain(item)})
	}
	for _, item := range seed.Campaigns {
		rows = append(rows, seedRow{table: "ad_campaigns", id: item.ID, model: campaignWriteFromDomain(item)})
	}
	for _, item := range seed.Images {
		rows = append(rows, seedRow{table: "ad_images", id: item.ID, model: imageWriteFromDomain(item)})
	}
	for _, item := range seed.Articles {
		rows = append(rows, seedRow{table: "news_articles", id: item.ID, model: newsWriteFromDomain(item)})
	}

	return rows
}
