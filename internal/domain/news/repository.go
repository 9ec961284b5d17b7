package news

import "context"

// Repository describes article persistence needs from use cases.
type Repository interface {
	ListPublished(ctx context.Context, query Query) ([]Article, error)
	GetBySlug(ctx context.Context, slug string) (Article, bool, error)
	GetByID(ctx context.Context, articleID string) (Article, bool, error)
	Create(ctx context.Context, item Article) error
	Update(ctx context.Context, item Article) error
	Delete(ctx context.Context, articleID string) error
}
