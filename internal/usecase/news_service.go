package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/matchday/internal/domain/league"
	"github.com/riskibarqy/matchday/internal/domain/news"
	"github.com/riskibarqy/matchday/internal/platform/id"
)

const (
	defaultNewsLimit = 20
	maxNewsLimit     = 100
	maxSlugAttempts  = 50
)

type NewsService struct {
	newsRepo   news.Repository
	leagueRepo league.Repository
	ids        id.Generator
	clock      clockwork.Clock
}

func NewNewsService(newsRepo news.Repository, leagueRepo league.Repository, ids id.Generator, clock clockwork.Clock) *NewsService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &NewsService{
		newsRepo:   newsRepo,
		leagueRepo: leagueRepo,
		ids:        ids,
		clock:      clock,
	}
}

func (s *NewsService) ListPublished(ctx context.Context, limit int, leagueID string) ([]news.Article, error) {
	switch {
	case limit <= 0:
		limit = defaultNewsLimit
	case limit > maxNewsLimit:
		limit = maxNewsLimit
	}

	items, err := s.newsRepo.ListPublished(ctx, news.Query{
		LeagueID: strings.TrimSpace(leagueID),
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	return items, nil
}

// GetBySlug returns a published article; drafts read as not found.
func (s *NewsService) GetBySlug(ctx context.Context, slug string) (news.Article, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return news.Article{}, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	item, exists, err := s.newsRepo.GetBySlug(ctx, slug)
	if err != nil {
		return news.Article{}, fmt.Errorf("get article by slug: %w", err)
	}
	if !exists || !item.IsPublished {
		return news.Article{}, fmt.Errorf("%w: article=%s", ErrNotFound, slug)
	}
	return item, nil
}

// Create derives the slug from the title when none is given and suffixes it
// until unique. An explicit slug that is taken is a conflict.
func (s *NewsService) Create(ctx context.Context, item news.Article) (news.Article, error) {
	var err error
	if item.ID, err = ensureID(s.ids, item.ID); err != nil {
		return news.Article{}, err
	}
	if err := s.ensureLeague(ctx, item.LeagueID); err != nil {
		return news.Article{}, err
	}

	explicit := strings.TrimSpace(item.Slug) != ""
	if explicit {
		item.Slug = news.Slugify(item.Slug)
		if err := s.ensureSlugFree(ctx, item.Slug, ""); err != nil {
			return news.Article{}, err
		}
	} else {
		item.Slug, err = s.uniqueSlug(ctx, news.Slugify(item.Title))
		if err != nil {
			return news.Article{}, err
		}
	}

	now := s.clock.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.IsPublished && item.PublishedAt == nil {
		item.PublishedAt = &now
	}
	if err := item.Validate(); err != nil {
		return news.Article{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.newsRepo.Create(ctx, item); err != nil {
		return news.Article{}, fmt.Errorf("create article: %w", err)
	}
	return item, nil
}

func (s *NewsService) Update(ctx context.Context, item news.Article) (news.Article, error) {
	articleID, err := requireID("article", item.ID)
	if err != nil {
		return news.Article{}, err
	}
	current, exists, err := s.newsRepo.GetByID(ctx, articleID)
	if err != nil {
		return news.Article{}, fmt.Errorf("get article: %w", err)
	}
	if !exists {
		return news.Article{}, fmt.Errorf("%w: article=%s", ErrNotFound, articleID)
	}
	if err := s.ensureLeague(ctx, item.LeagueID); err != nil {
		return news.Article{}, err
	}

	item.Slug = news.Slugify(item.Slug)
	if item.Slug == "" {
		item.Slug = current.Slug
	}
	if item.Slug != current.Slug {
		if err := s.ensureSlugFree(ctx, item.Slug, current.ID); err != nil {
			return news.Article{}, err
		}
	}

	now := s.clock.Now().UTC()
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = now
	switch {
	case !item.IsPublished:
		item.PublishedAt = nil
	case item.PublishedAt == nil && current.PublishedAt != nil:
		item.PublishedAt = current.PublishedAt
	case item.PublishedAt == nil:
		item.PublishedAt = &now
	}
	if err := item.Validate(); err != nil {
		return news.Article{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.newsRepo.Update(ctx, item); err != nil {
		return news.Article{}, fmt.Errorf("update article: %w", err)
	}
	return item, nil
}

func (s *NewsService) Delete(ctx context.Context, articleID string) error {
	articleID, err := requireID("article", articleID)
	if err != nil {
		return err
	}
	_, exists, err := s.newsRepo.GetByID(ctx, articleID)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: article=%s", ErrNotFound, articleID)
	}

	if err := s.newsRepo.Delete(ctx, articleID); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

func (s *NewsService) ensureLeague(ctx context.Context, leagueID string) error {
	if leagueID == "" {
		return nil
	}
	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	return nil
}

func (s *NewsService) ensureSlugFree(ctx context.Context, slug, ownerID string) error {
	if slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	existing, exists, err := s.newsRepo.GetBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("get article by slug: %w", err)
	}
	if exists && existing.ID != ownerID {
		return fmt.Errorf("%w: slug=%s already used", ErrConflict, slug)
	}
	return nil
}

func (s *NewsService) uniqueSlug(ctx context.Context, base string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("%w: title must contain letters or digits", ErrInvalidInput)
	}

	candidate := base
	for attempt := 2; attempt <= maxSlugAttempts+1; attempt++ {
		_, exists, err := s.newsRepo.GetBySlug(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("get article by slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}
	return "", fmt.Errorf("%w: no free slug for %q", ErrConflict, base)
}
