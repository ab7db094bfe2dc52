package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/blog"
	"blog-backend/internal/shared/utils"
)

type blogService struct {
	repo blog.Repository
}

func NewBlogService(repo blog.Repository) blog.Service {
	return &blogService{repo: repo}
}

func (s *blogService) ListPublished(ctx context.Context, q blog.ListQuery) (*blog.ListResult, error) {
	published := true
	return s.list(ctx, q, blog.Filter{
		Published: &published,
		Category:  q.Category,
		Search:    q.Search,
		SortBy:    blog.SortPublishedAt,
	})
}

func (s *blogService) ListAll(ctx context.Context, q blog.ListQuery) (*blog.ListResult, error) {
	return s.list(ctx, q, blog.Filter{
		Category: q.Category,
		Search:   q.Search,
		SortBy:   blog.SortCreatedAt,
	})
}

func (s *blogService) list(ctx context.Context, q blog.ListQuery, f blog.Filter) (*blog.ListResult, error) {
	q.Normalize()

	f.Offset = (q.Page - 1) * q.Limit
	f.Limit = q.Limit

	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	return &blog.ListResult{
		Items:       items,
		Count:       len(items),
		Total:       total,
		Pages:       (total + q.Limit - 1) / q.Limit,
		CurrentPage: q.Page,
	}, nil
}

func (s *blogService) Featured(ctx context.Context) ([]blog.Blog, error) {
	return s.repo.FindFeatured(ctx, blog.FeaturedLimit)
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*blog.Blog, error) {
	return s.repo.FindPublishedBySlug(ctx, slug)
}

func (s *blogService) GetByID(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *blogService) Create(ctx context.Context, req blog.CreateBlogRequest) (*blog.Blog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &blog.Blog{
		ID:         uuid.New(),
		Title:      req.Title,
		Slug:       utils.GenerateSlug(req.Title),
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		Category:   req.Category,
		Author:     req.Author,
		AuthorRole: req.AuthorRole,
		Image:      req.Image,
		ReadTime:   req.ReadTime,
		Featured:   req.Featured,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if b.Author == "" {
		b.Author = blog.DefaultAuthor
	}
	if b.AuthorRole == "" {
		b.AuthorRole = blog.DefaultAuthorRole
	}
	if b.Image == "" {
		b.Image = blog.DefaultImage
	}
	if b.ReadTime == 0 {
		b.ReadTime = blog.DefaultReadTime
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *blogService) Update(ctx context.Context, id uuid.UUID, req blog.UpdateBlogRequest) (*blog.Blog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		b.Title = *req.Title
		// Slug follows the title; untouched titles keep their slug.
		b.Slug = utils.GenerateSlug(*req.Title)
	}
	if req.Content != nil {
		b.Content = *req.Content
	}
	if req.Excerpt != nil {
		b.Excerpt = *req.Excerpt
	}
	if req.Category != nil {
		b.Category = *req.Category
	}
	if req.Author != nil {
		b.Author = *req.Author
	}
	if req.AuthorRole != nil {
		b.AuthorRole = *req.AuthorRole
	}
	if req.Image != nil {
		b.Image = *req.Image
	}
	if req.ReadTime != nil {
		b.ReadTime = *req.ReadTime
	}
	if req.Featured != nil {
		b.Featured = *req.Featured
	}

	return s.repo.Update(ctx, b)
}

func (s *blogService) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*blog.Blog, error) {
	return s.repo.SetPublished(ctx, id, published)
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
