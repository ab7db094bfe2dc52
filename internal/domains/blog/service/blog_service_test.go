package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/blog"
)

type mockBlogRepo struct {
	mock.Mock
}

func (m *mockBlogRepo) Create(ctx context.Context, b *blog.Blog) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBlogRepo) FindByID(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Blog), args.Error(1)
}

func (m *mockBlogRepo) FindPublishedBySlug(ctx context.Context, slug string) (*blog.Blog, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Blog), args.Error(1)
}

func (m *mockBlogRepo) List(ctx context.Context, f blog.Filter) ([]blog.Blog, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]blog.Blog), args.Error(1)
}

func (m *mockBlogRepo) Count(ctx context.Context, f blog.Filter) (int, error) {
	args := m.Called(ctx, f)
	return args.Int(0), args.Error(1)
}

func (m *mockBlogRepo) FindFeatured(ctx context.Context, limit int) ([]blog.Blog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]blog.Blog), args.Error(1)
}

func (m *mockBlogRepo) Update(ctx context.Context, b *blog.Blog) (*blog.Blog, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Blog), args.Error(1)
}

func (m *mockBlogRepo) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*blog.Blog, error) {
	args := m.Called(ctx, id, published)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Blog), args.Error(1)
}

func (m *mockBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func TestCreateDerivesSlugAndDefaults(t *testing.T) {
	repo := new(mockBlogRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *blog.Blog) bool {
		return b.Slug == "tips-for-healthy-living" &&
			b.Author == blog.DefaultAuthor &&
			b.AuthorRole == blog.DefaultAuthorRole &&
			b.Image == blog.DefaultImage &&
			b.ReadTime == blog.DefaultReadTime &&
			!b.Published && b.PublishedAt == nil
	})).Return(nil)

	svc := NewBlogService(repo)

	b, err := svc.Create(context.Background(), blog.CreateBlogRequest{
		Title:    "Tips for Healthy Living!!",
		Content:  "Eat well.",
		Category: blog.CategoryTips,
	})

	require.NoError(t, err)
	assert.Equal(t, "tips-for-healthy-living", b.Slug)
	repo.AssertExpectations(t)
}

func TestCreateRejectsInvalidCategory(t *testing.T) {
	repo := new(mockBlogRepo)
	svc := NewBlogService(repo)

	_, err := svc.Create(context.Background(), blog.CreateBlogRequest{
		Title:    "A Post",
		Content:  "Body",
		Category: "sports",
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSlugCollisionFails(t *testing.T) {
	repo := new(mockBlogRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(blog.ErrDuplicateSlug)

	svc := NewBlogService(repo)

	_, err := svc.Create(context.Background(), blog.CreateBlogRequest{
		Title:    "Hello, World!",
		Content:  "Body",
		Category: blog.CategoryTechnology,
	})

	assert.ErrorIs(t, err, blog.ErrDuplicateSlug)
}

func TestUpdateRederivesSlugOnlyWhenTitleChanges(t *testing.T) {
	id := uuid.New()
	existing := &blog.Blog{
		ID:       id,
		Title:    "Old Title",
		Slug:     "old-title",
		Content:  "Body",
		Category: blog.CategoryTechnology,
	}

	repo := new(mockBlogRepo)
	repo.On("FindByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(b *blog.Blog) bool {
		return b.Slug == "old-title" && b.Content == "New body"
	})).Return(existing, nil)

	svc := NewBlogService(repo)

	_, err := svc.Update(context.Background(), id, blog.UpdateBlogRequest{
		Content: strPtr("New body"),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateWithTitleRederivesSlug(t *testing.T) {
	id := uuid.New()
	existing := &blog.Blog{
		ID:       id,
		Title:    "Old Title",
		Slug:     "old-title",
		Content:  "Body",
		Category: blog.CategoryTechnology,
	}

	repo := new(mockBlogRepo)
	repo.On("FindByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(b *blog.Blog) bool {
		return b.Title == "Brand New Title!" && b.Slug == "brand-new-title"
	})).Return(existing, nil)

	svc := NewBlogService(repo)

	_, err := svc.Update(context.Background(), id, blog.UpdateBlogRequest{
		Title: strPtr("Brand New Title!"),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateMissingPost(t *testing.T) {
	id := uuid.New()
	repo := new(mockBlogRepo)
	repo.On("FindByID", mock.Anything, id).Return(nil, blog.ErrBlogNotFound)

	svc := NewBlogService(repo)

	_, err := svc.Update(context.Background(), id, blog.UpdateBlogRequest{
		Content: strPtr("Body"),
	})

	assert.ErrorIs(t, err, blog.ErrBlogNotFound)
}

func TestListPublishedFiltersAndPaginates(t *testing.T) {
	published := true
	wantFilter := blog.Filter{
		Published: &published,
		Category:  "tips",
		SortBy:    blog.SortPublishedAt,
		Offset:    10,
		Limit:     10,
	}

	repo := new(mockBlogRepo)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f blog.Filter) bool {
		return f.Published != nil && *f.Published &&
			f.Category == wantFilter.Category &&
			f.SortBy == wantFilter.SortBy &&
			f.Offset == wantFilter.Offset &&
			f.Limit == wantFilter.Limit
	})).Return([]blog.Blog{{Title: "a"}, {Title: "b"}}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(12, nil)

	svc := NewBlogService(repo)

	result, err := svc.ListPublished(context.Background(), blog.ListQuery{
		Category: "tips",
		Page:     2,
		Limit:    10,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 12, result.Total)
	assert.Equal(t, 2, result.Pages) // ceil(12/10)
	assert.Equal(t, 2, result.CurrentPage)
}

func TestListPublishedPageBeyondRange(t *testing.T) {
	repo := new(mockBlogRepo)
	repo.On("List", mock.Anything, mock.Anything).Return([]blog.Blog{}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(3, nil)

	svc := NewBlogService(repo)

	result, err := svc.ListPublished(context.Background(), blog.ListQuery{Page: 9, Limit: 10})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.Count)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.Pages)
	assert.Equal(t, 9, result.CurrentPage)
}

func TestListAllIgnoresPublishedState(t *testing.T) {
	repo := new(mockBlogRepo)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f blog.Filter) bool {
		return f.Published == nil && f.SortBy == blog.SortCreatedAt &&
			f.Offset == 0 && f.Limit == 10
	})).Return([]blog.Blog{{Title: "draft"}}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(1, nil)

	svc := NewBlogService(repo)

	result, err := svc.ListAll(context.Background(), blog.ListQuery{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.CurrentPage)
	repo.AssertExpectations(t)
}

func TestFeaturedCappedAtThree(t *testing.T) {
	repo := new(mockBlogRepo)
	repo.On("FindFeatured", mock.Anything, blog.FeaturedLimit).Return([]blog.Blog{}, nil)

	svc := NewBlogService(repo)

	_, err := svc.Featured(context.Background())
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSetPublishedTransitions(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	repo := new(mockBlogRepo)
	repo.On("SetPublished", mock.Anything, id, true).Return(&blog.Blog{
		ID: id, Published: true, PublishedAt: &now,
	}, nil).Once()
	repo.On("SetPublished", mock.Anything, id, false).Return(&blog.Blog{
		ID: id, Published: false, PublishedAt: nil,
	}, nil).Once()

	svc := NewBlogService(repo)

	b, err := svc.SetPublished(context.Background(), id, true)
	require.NoError(t, err)
	assert.True(t, b.Published)
	assert.NotNil(t, b.PublishedAt)

	b, err = svc.SetPublished(context.Background(), id, false)
	require.NoError(t, err)
	assert.False(t, b.Published)
	assert.Nil(t, b.PublishedAt)
}

func TestDeleteMissingPost(t *testing.T) {
	id := uuid.New()
	repo := new(mockBlogRepo)
	repo.On("Delete", mock.Anything, id).Return(blog.ErrBlogNotFound)

	svc := NewBlogService(repo)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), blog.ErrBlogNotFound)
}
