package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday/internal/domain/match"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if filter.LeagueID != "" {
		conditions = append(conditions, qb.Eq("league_public_id", filter.LeagueID))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, string(status))
		}
		conditions = append(conditions, qb.InStrings("status", statuses))
	}

	query, args, err := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("kickoff_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args, "select matches")
}

func (r *MatchRepository) ListByIDs(ctx context.Context, matchIDs []string) ([]match.Match, error) {
	if len(matchIDs) == 0 {
		return []match.Match{}, nil
	}

	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.InStrings("public_id", matchIDs),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by ids query: %w", err)
	}

	return r.selectMatches(ctx, query, args, "select matches by ids")
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	query, args, err := qb.InsertModel("matches", matchWriteFromDomain(item), "")
	if err != nil {
		return fmt.Errorf("build create match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create match: %w", err)
	}

	return nil
}

// Update rewrites every mutable column, including the clock phase stamps.
func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	query, args, err := qb.UpdateModel("matches", matchWriteFromDomain(item), "public_id")
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	return expectAffected(result, "update match")
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	query, args, err := qb.Update("matches").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete match: %w", err)
	}
	return expectAffected(result, "soft delete match")
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any, op string) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:                  row.PublicID,
		LeagueID:            row.LeagueID,
		HomeTeamID:          row.HomeTeamID,
		AwayTeamID:          row.AwayTeamID,
		Round:               row.Round,
		KickoffAt:           row.KickoffAt.UTC(),
		Venue:               row.Venue,
		Status:              match.Status(row.Status),
		Minute:              row.Minute,
		HomeScore:           row.HomeScore,
		AwayScore:           row.AwayScore,
		MatchStartedAt:      utcPtr(row.MatchStartedAt),
		SecondHalfStartedAt: utcPtr(row.SecondHalfStartedAt),
		ExtraTimeStartedAt:  utcPtr(row.ExtraTimeStartedAt),
		CreatedAt:           row.CreatedAt.UTC(),
		UpdatedAt:           row.UpdatedAt.UTC(),
	}
}

func matchWriteFromDomain(item match.Match) matchWriteModel {
	updatedAt := item.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	return matchWriteModel{
		PublicID:            item.ID,
		LeagueID:            item.LeagueID,
		HomeTeamID:          item.HomeTeamID,
		AwayTeamID:          item.AwayTeamID,
		Round:               item.Round,
		KickoffAt:           item.KickoffAt.UTC(),
		Venue:               item.Venue,
		Status:              string(item.Status),
		Minute:              item.Minute,
		HomeScore:           item.HomeScore,
		AwayScore:           item.AwayScore,
		MatchStartedAt:      utcPtr(item.MatchStartedAt),
		SecondHalfStartedAt: utcPtr(item.SecondHalfStartedAt),
		ExtraTimeStartedAt:  utcPtr(item.ExtraTimeStartedAt),
		UpdatedAt:           updatedAt.UTC(),
	}
}

func utcPtr(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	v := value.UTC()
	return &v
}
