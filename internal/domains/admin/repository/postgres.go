package repository

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/internal/domains/admin"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) admin.Repository {
	return &postgresRepository{pool: pool}
}

const adminColumns = "id, email, password_hash, name, role, created_at, updated_at"

func scanAdmin(row pgx.Row) (*admin.Admin, error) {
	a := &admin.Admin{}
	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.Name,
		&a.Role,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, admin.ErrAdminNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *admin.Admin) error {
	const query = `
		INSERT INTO admins (id, email, password_hash, name, role, created_at, updated_at)
		VALUES ($1, lower($2), $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.Email,
		a.PasswordHash,
		a.Name,
		a.Role,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.ConstraintName {
			case "admins_bootstrap_singleton":
				return admin.ErrAdminExists
			case "admins_email_key":
				return admin.ErrEmailTaken
			}
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*admin.Admin, error) {
	query := fmt.Sprintf("SELECT %s FROM admins WHERE id = $1", adminColumns)
	return scanAdmin(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	query := fmt.Sprintf("SELECT %s FROM admins WHERE lower(email) = lower($1)", adminColumns)
	return scanAdmin(r.pool.QueryRow(ctx, query, email))
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM admins").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, email string) (*admin.Admin, error) {
	query := fmt.Sprintf(`
		UPDATE admins
		SET name = $2, email = lower($3), updated_at = now()
		WHERE id = $1
		RETURNING %s
	`, adminColumns)

	a, err := scanAdmin(r.pool.QueryRow(ctx, query, id, name, email))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "admins_email_key" {
			return nil, admin.ErrEmailTaken
		}
		return nil, err
	}
	return a, nil
}

func (r *postgresRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `
		UPDATE admins
		SET password_hash = $2, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return admin.ErrAdminNotFound
	}
	return nil
}
