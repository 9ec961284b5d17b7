package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday/internal/domain/news"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type NewsRepository struct {
	db *sqlx.DB
}

var newsSelectColumns = []string{
	"n.id",
	"n.public_id",
	"n.slug",
	"n.title",
	"n.summary",
	"n.body",
	"n.image_url",
	"n.league_public_id",
	"COALESCE(l.name, '') AS league_name",
	"n.is_published",
	"n.published_at",
	"n.created_at",
	"n.updated_at",
}

func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) ListPublished(ctx context.Context, q news.Query) ([]news.Article, error) {
	conditions := []qb.Condition{
		qb.Eq("n.is_published", true),
		qb.IsNull("n.deleted_at"),
	}
	if q.LeagueID != "" {
		conditions = append(conditions, qb.Eq("n.league_public_id", q.LeagueID))
	}

	builder := newsBaseSelectBuilder().
		Where(conditions...).
		OrderBy("n.published_at DESC", "n.id DESC")
	if q.Limit > 0 {
		builder.Limit(q.Limit)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select published news query: %w", err)
	}

	var rows []newsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select published news: %w", err)
	}

	out := make([]news.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, articleFromRow(row))
	}

	return out, nil
}

func (r *NewsRepository) GetBySlug(ctx context.Context, slug string) (news.Article, bool, error) {
	return r.getOne(ctx, qb.Eq("n.slug", slug), "get news by slug")
}

func (r *NewsRepository) GetByID(ctx context.Context, articleID string) (news.Article, bool, error) {
	return r.getOne(ctx, qb.Eq("n.public_id", articleID), "get news by id")
}

func (r *NewsRepository) Create(ctx context.Context, item news.Article) error {
	query, args, err := qb.InsertModel("news_articles", newsWriteFromDomain(item), "")
	if err != nil {
		return fmt.Errorf("build create news query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create news: %w", err)
	}

	return nil
}

func (r *NewsRepository) Update(ctx context.Context, item news.Article) error {
	query, args, err := qb.UpdateModel("news_articles", newsWriteFromDomain(item), "public_id")
	if err != nil {
		return fmt.Errorf("build update news query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update news: %w", err)
	}
	return expectAffected(result, "update news")
}

func (r *NewsRepository) Delete(ctx context.Context, articleID string) error {
	query, args, err := qb.Update("news_articles").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", articleID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete news query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete news: %w", err)
	}
	return expectAffected(result, "soft delete news")
}

func (r *NewsRepository) getOne(ctx context.Context, key qb.Condition, op string) (news.Article, bool, error) {
	query, args, err := newsBaseSelectBuilder().
		Where(key, qb.IsNull("n.deleted_at")).
		ToSQL()
	if err != nil {
		return news.Article{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row newsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return news.Article{}, false, nil
		}
		return news.Article{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return articleFromRow(row), true, nil
}

func newsBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(newsSelectColumns...).
		From("news_articles n").
		LeftJoin("leagues l", "l.public_id = n.league_public_id AND l.deleted_at IS NULL")
}

func articleFromRow(row newsTableModel) news.Article {
	return news.Article{
		ID:          row.PublicID,
		Slug:        row.Slug,
		Title:       row.Title,
		Summary:     row.Summary,
		Body:        row.Body,
		ImageURL:    row.ImageURL,
		LeagueID:    stringValue(row.LeagueID),
		LeagueName:  row.LeagueName,
		IsPublished: row.IsPublished,
		PublishedAt: utcPtr(row.PublishedAt),
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}

func newsWriteFromDomain(item news.Article) newsWriteModel {
	updatedAt := item.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	return newsWriteModel{
		PublicID:    item.ID,
		Slug:        item.Slug,
		Title:       item.Title,
		Summary:     item.Summary,
		Body:        item.Body,
		ImageURL:    item.ImageURL,
		LeagueID:    optionalString(item.LeagueID),
		IsPublished: item.IsPublished,
		PublishedAt: utcPtr(item.PublishedAt),
		UpdatedAt:   updatedAt.UTC(),
	}
}
