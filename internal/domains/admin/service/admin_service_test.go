package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/admin"
	"blog-backend/pkg/jwt"
)

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) Create(ctx context.Context, a *admin.Admin) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAdminRepo) FindByID(ctx context.Context, id uuid.UUID) (*admin.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.Admin), args.Error(1)
}

func (m *mockAdminRepo) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.Admin), args.Error(1)
}

func (m *mockAdminRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockAdminRepo) UpdateProfile(ctx context.Context, id uuid.UUID, name, email string) (*admin.Admin, error) {
	args := m.Called(ctx, id, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.Admin), args.Error(1)
}

func (m *mockAdminRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func newTestService(repo admin.Repository) admin.Service {
	return NewAdminService(repo, jwt.NewManager("test-secret", 7*24*time.Hour))
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegisterBootstrapsFirstAdmin(t *testing.T) {
	repo := new(mockAdminRepo)
	repo.On("Count", mock.Anything).Return(0, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *admin.Admin) bool {
		return a.Role == admin.RoleAdmin && a.Email == "boss@example.com" && a.PasswordHash != "secret123"
	})).Return(nil)

	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), admin.RegisterRequest{
		Email:    "Boss@Example.com",
		Password: "secret123",
		Name:     "Boss",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, admin.RoleAdmin, resp.Admin.Role)
	repo.AssertExpectations(t)
}

func TestRegisterRejectedWhenAdminExists(t *testing.T) {
	repo := new(mockAdminRepo)
	repo.On("Count", mock.Anything).Return(1, nil)

	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), admin.RegisterRequest{
		Email:    "second@example.com",
		Password: "secret123",
		Name:     "Second",
	})

	assert.ErrorIs(t, err, admin.ErrAdminExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	repo := new(mockAdminRepo)
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), admin.RegisterRequest{
		Email: "boss@example.com",
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Count", mock.Anything)
}

func TestLoginWrongPasswordIsGeneric(t *testing.T) {
	repo := new(mockAdminRepo)
	repo.On("FindByEmail", mock.Anything, "boss@example.com").Return(&admin.Admin{
		ID:           uuid.New(),
		Email:        "boss@example.com",
		PasswordHash: hashOf(t, "correct-password"),
		Role:         admin.RoleAdmin,
	}, nil)

	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), admin.LoginRequest{
		Email:    "boss@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
}

func TestLoginUnknownEmailIsGeneric(t *testing.T) {
	repo := new(mockAdminRepo)
	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, admin.ErrAdminNotFound)

	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), admin.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	// Same error as a wrong password: the response must not reveal
	// whether the email exists.
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	id := uuid.New()
	repo := new(mockAdminRepo)
	repo.On("FindByEmail", mock.Anything, "boss@example.com").Return(&admin.Admin{
		ID:           id,
		Email:        "boss@example.com",
		Name:         "Boss",
		PasswordHash: hashOf(t, "correct-password"),
		Role:         admin.RoleAdmin,
	}, nil)

	svc := newTestService(repo)

	resp, err := svc.Login(context.Background(), admin.LoginRequest{
		Email:    "boss@example.com",
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, id, resp.Admin.ID)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	id := uuid.New()
	repo := new(mockAdminRepo)
	repo.On("FindByID", mock.Anything, id).Return(&admin.Admin{
		ID:           id,
		PasswordHash: hashOf(t, "old-password"),
	}, nil)

	svc := newTestService(repo)

	err := svc.ChangePassword(context.Background(), id, admin.ChangePasswordRequest{
		CurrentPassword: "not-the-old-password",
		NewPassword:     "new-password",
	})

	assert.ErrorIs(t, err, admin.ErrWrongPassword)
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangePasswordReplacesHash(t *testing.T) {
	id := uuid.New()
	repo := new(mockAdminRepo)
	repo.On("FindByID", mock.Anything, id).Return(&admin.Admin{
		ID:           id,
		PasswordHash: hashOf(t, "old-password"),
	}, nil)
	repo.On("UpdatePassword", mock.Anything, id, mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password")) == nil
	})).Return(nil)

	svc := newTestService(repo)

	err := svc.ChangePassword(context.Background(), id, admin.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
