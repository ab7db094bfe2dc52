package blog

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for content operations.
type Service interface {
	// ListPublished returns a page of published posts, newest publication
	// first.
	ListPublished(ctx context.Context, q ListQuery) (*ListResult, error)

	// Featured returns up to three published+featured posts.
	Featured(ctx context.Context) ([]Blog, error)

	// GetBySlug returns the published post matching the slug.
	GetBySlug(ctx context.Context, slug string) (*Blog, error)

	// ListAll returns a page of posts regardless of published state,
	// newest creation first. Privileged.
	ListAll(ctx context.Context, q ListQuery) (*ListResult, error)

	// GetByID returns any post by id. Privileged.
	GetByID(ctx context.Context, id uuid.UUID) (*Blog, error)

	Create(ctx context.Context, req CreateBlogRequest) (*Blog, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateBlogRequest) (*Blog, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
