package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blog-backend/internal/domains/blog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) blog.Repository {
	return &postgresRepository{pool: pool}
}

const blogColumns = `id, title, slug, content, excerpt, category, author,
	author_role, image, read_time, featured, published, published_at,
	created_at, updated_at`

func scanBlog(row pgx.Row) (*blog.Blog, error) {
	b := &blog.Blog{}
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Slug,
		&b.Content,
		&b.Excerpt,
		&b.Category,
		&b.Author,
		&b.AuthorRole,
		&b.Image,
		&b.ReadTime,
		&b.Featured,
		&b.Published,
		&b.PublishedAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrBlogNotFound
		}
		return nil, err
	}
	return b, nil
}

func collectBlogs(rows pgx.Rows) ([]blog.Blog, error) {
	defer rows.Close()

	blogs := []blog.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *b)
	}
	return blogs, rows.Err()
}

// buildWhere translates the filter into a WHERE clause with positional args.
func buildWhere(f blog.Filter) (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}

	if f.Published != nil {
		args = append(args, *f.Published)
		conds = append(conds, fmt.Sprintf("published = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR excerpt ILIKE $%d OR content ILIKE $%d)", n, n, n))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func orderClause(sortBy blog.SortField) string {
	if sortBy == blog.SortCreatedAt {
		return "ORDER BY created_at DESC"
	}
	return "ORDER BY published_at DESC NULLS LAST"
}

func (r *postgresRepository) Create(ctx context.Context, b *blog.Blog) error {
	query := fmt.Sprintf(`
		INSERT INTO blogs (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, blogColumns)

	_, err := r.pool.Exec(ctx, query,
		b.ID,
		b.Title,
		b.Slug,
		b.Content,
		b.Excerpt,
		b.Category,
		b.Author,
		b.AuthorRole,
		b.Image,
		b.ReadTime,
		b.Featured,
		b.Published,
		b.PublishedAt,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		if isDuplicateSlug(err) {
			return blog.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to create blog: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	query := fmt.Sprintf("SELECT %s FROM blogs WHERE id = $1", blogColumns)
	return scanBlog(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) FindPublishedBySlug(ctx context.Context, slug string) (*blog.Blog, error) {
	query := fmt.Sprintf("SELECT %s FROM blogs WHERE slug = $1 AND published", blogColumns)
	return scanBlog(r.pool.QueryRow(ctx, query, slug))
}

func (r *postgresRepository) List(ctx context.Context, f blog.Filter) ([]blog.Blog, error) {
	where, args := buildWhere(f)

	args = append(args, f.Limit)
	limitArg := len(args)
	args = append(args, f.Offset)
	offsetArg := len(args)

	query := fmt.Sprintf(
		"SELECT %s FROM blogs %s %s LIMIT $%d OFFSET $%d",
		blogColumns, where, orderClause(f.SortBy), limitArg, offsetArg,
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	return collectBlogs(rows)
}

func (r *postgresRepository) Count(ctx context.Context, f blog.Filter) (int, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf("SELECT count(*) FROM blogs %s", where)

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count blogs: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) FindFeatured(ctx context.Context, limit int) ([]blog.Blog, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM blogs
		WHERE published AND featured
		ORDER BY published_at DESC NULLS LAST
		LIMIT $1
	`, blogColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured blogs: %w", err)
	}

	return collectBlogs(rows)
}

func (r *postgresRepository) Update(ctx context.Context, b *blog.Blog) (*blog.Blog, error) {
	query := fmt.Sprintf(`
		UPDATE blogs
		SET title = $2, slug = $3, content = $4, excerpt = $5, category = $6,
			author = $7, author_role = $8, image = $9, read_time = $10,
			featured = $11, updated_at = now()
		WHERE id = $1
		RETURNING %s
	`, blogColumns)

	updated, err := scanBlog(r.pool.QueryRow(ctx, query,
		b.ID,
		b.Title,
		b.Slug,
		b.Content,
		b.Excerpt,
		b.Category,
		b.Author,
		b.AuthorRole,
		b.Image,
		b.ReadTime,
		b.Featured,
	))
	if err != nil {
		if isDuplicateSlug(err) {
			return nil, blog.ErrDuplicateSlug
		}
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*blog.Blog, error) {
	query := fmt.Sprintf(`
		UPDATE blogs
		SET published = $2,
			published_at = CASE WHEN $2 THEN now() ELSE NULL END,
			updated_at = now()
		WHERE id = $1
		RETURNING %s
	`, blogColumns)

	return scanBlog(r.pool.QueryRow(ctx, query, id, published))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM blogs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrBlogNotFound
	}
	return nil
}

func isDuplicateSlug(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == "blogs_slug_key"
}
