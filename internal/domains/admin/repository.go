package admin

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the Credential Store contract.
type Repository interface {
	// Create inserts the bootstrap administrator.
	// Returns ErrAdminExists when the store already holds one; the
	// singleton is enforced by a unique index, so concurrent bootstrap
	// calls cannot both win.
	Create(ctx context.Context, a *Admin) error

	// FindByID returns the admin without loading semantics beyond the row;
	// the hash travels with the entity and is stripped at the DTO layer.
	FindByID(ctx context.Context, id uuid.UUID) (*Admin, error)

	// FindByEmail looks up by case-normalized email, hash included.
	// Returns ErrAdminNotFound when there is no match.
	FindByEmail(ctx context.Context, email string) (*Admin, error)

	// Count reports how many administrators exist.
	Count(ctx context.Context) (int, error)

	// UpdateProfile persists name and email.
	UpdateProfile(ctx context.Context, id uuid.UUID, name, email string) (*Admin, error)

	// UpdatePassword replaces the stored hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
