package blog

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the Content Store contract.
type Repository interface {
	// Create inserts a new post. Returns ErrDuplicateSlug when the derived
	// slug collides with an existing one; uniqueness is enforced by the
	// store regardless of published state.
	Create(ctx context.Context, b *Blog) error

	// FindByID returns any post by id, published or not.
	FindByID(ctx context.Context, id uuid.UUID) (*Blog, error)

	// FindPublishedBySlug returns the published post matching the slug.
	FindPublishedBySlug(ctx context.Context, slug string) (*Blog, error)

	// List returns one page of posts matching the filter.
	List(ctx context.Context, f Filter) ([]Blog, error)

	// Count returns the total number of posts matching the filter,
	// ignoring its offset/limit.
	Count(ctx context.Context, f Filter) (int, error)

	// FindFeatured returns up to limit published+featured posts, newest
	// publication first.
	FindFeatured(ctx context.Context, limit int) ([]Blog, error)

	// Update persists the mutable fields of b and refreshes updated_at.
	// Returns ErrBlogNotFound or ErrDuplicateSlug.
	Update(ctx context.Context, b *Blog) (*Blog, error)

	// SetPublished flips the published state: true stamps published_at
	// with the current time, false clears it to null.
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*Blog, error)

	// Delete removes the post permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
