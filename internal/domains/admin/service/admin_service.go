package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/admin"
	"blog-backend/pkg/jwt"
)

const bcryptCost = 12

type adminService struct {
	repo       admin.Repository
	jwtManager *jwt.Manager
}

func NewAdminService(repo admin.Repository, jwtManager *jwt.Manager) admin.Service {
	return &adminService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Register bootstraps the single administrator account.
func (s *adminService) Register(ctx context.Context, req admin.RegisterRequest) (*admin.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Existence check gives the common case a clean answer; the store's
	// singleton index decides concurrent ties.
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("check admin exists: %w", err)
	}
	if count > 0 {
		return nil, admin.ErrAdminExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	a := &admin.Admin{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(passwordHash),
		Name:         req.Name,
		Role:         admin.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	return s.authResponse(a)
}

func (s *adminService) Login(ctx context.Context, req admin.LoginRequest) (*admin.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, admin.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, admin.ErrInvalidCredentials
	}

	return s.authResponse(a)
}

func (s *adminService) GetMe(ctx context.Context, adminID uuid.UUID) (*admin.AdminDTO, error) {
	a, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	dto := a.ToDTO()
	return &dto, nil
}

func (s *adminService) UpdateProfile(ctx context.Context, adminID uuid.UUID, req admin.UpdateProfileRequest) (*admin.AdminDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.UpdateProfile(ctx, adminID, req.Name, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}

	dto := a.ToDTO()
	return &dto, nil
}

func (s *adminService) ChangePassword(ctx context.Context, adminID uuid.UUID, req admin.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	a, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return admin.ErrWrongPassword
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, adminID, string(newHash))
}

func (s *adminService) authResponse(a *admin.Admin) (*admin.AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(a.ID.String(), a.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &admin.AuthResponse{
		Token: token,
		Admin: a.ToDTO(),
	}, nil
}
