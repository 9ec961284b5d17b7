package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/matchday/internal/domain/league"
	"github.com/riskibarqy/matchday/internal/domain/news"
)

type NewsRepository struct {
	rows    *table[news.Article]
	leagues league.Repository
}

// NewNewsRepository resolves league names through leagues when it is set.
func NewNewsRepository(articles []news.Article, leagues league.Repository) *NewsRepository {
	return &NewsRepository{
		rows:    newTable(articles, func(a news.Article) string { return a.ID }),
		leagues: leagues,
	}
}

// ListPublished orders articles newest first.
func (r *NewsRepository) ListPublished(ctx context.Context, query news.Query) ([]news.Article, error) {
	out := r.rows.filter(func(a news.Article) bool {
		if !a.IsPublished || a.PublishedAt == nil {
			return false
		}
		return query.LeagueID == "" || a.LeagueID == query.LeagueID
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(*out[j].PublishedAt)
	})
	if query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}

	for i := range out {
		if err := r.attachLeagueName(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *NewsRepository) GetBySlug(ctx context.Context, slug string) (news.Article, bool, error) {
	found := r.rows.filter(func(a news.Article) bool { return a.Slug == slug })
	if len(found) == 0 {
		return news.Article{}, false, nil
	}
	item := found[0]
	if err := r.attachLeagueName(ctx, &item); err != nil {
		return news.Article{}, false, err
	}
	return item, true, nil
}

func (r *NewsRepository) GetByID(_ context.Context, articleID string) (news.Article, bool, error) {
	a, ok := r.rows.get(articleID)
	return a, ok, nil
}

func (r *NewsRepository) Create(_ context.Context, item news.Article) error {
	item.LeagueName = ""
	r.rows.upsert(item.ID, item)
	return nil
}

func (r *NewsRepository) Update(_ context.Context, item news.Article) error {
	item.LeagueName = ""
	r.rows.upsert(item.ID, item)
	return nil
}

func (r *NewsRepository) Delete(_ context.Context, articleID string) error {
	r.rows.remove(articleID)
	return nil
}

func (r *NewsRepository) attachLeagueName(ctx context.Context, item *news.Article) error {
	if r.leagues == nil || item.LeagueID == "" {
		return nil
	}
	l, ok, err := r.leagues.GetByID(ctx, item.LeagueID)
	if err != nil {
		return err
	}
	if ok {
		item.LeagueName = l.Name
	}
	return nil
}
