package admin

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for authentication operations.
type Service interface {
	// Register bootstraps the single administrator. Fails with
	// ErrAdminExists once one exists.
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)

	// Login verifies credentials and issues a bearer token. Failures are
	// always ErrInvalidCredentials, never revealing which field was wrong.
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)

	GetMe(ctx context.Context, adminID uuid.UUID) (*AdminDTO, error)
	UpdateProfile(ctx context.Context, adminID uuid.UUID, req UpdateProfileRequest) (*AdminDTO, error)
	ChangePassword(ctx context.Context, adminID uuid.UUID, req ChangePasswordRequest) error
}
