package blog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

func categoryValues() []interface{} {
	cats := Categories()
	values := make([]interface{}, len(cats))
	for i, c := range cats {
		values[i] = c
	}
	return values
}

// CreateBlogRequest carries the writable field set; optional fields fall
// back to the model defaults.
type CreateBlogRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	Category   Category `json:"category"`
	Author     string   `json:"author"`
	AuthorRole string   `json:"authorRole"`
	Image      string   `json:"image"`
	ReadTime   int      `json:"readTime"`
	Featured   bool     `json:"featured"`
}

func (r CreateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("please add a title"),
			validation.Length(1, 200).Error("title cannot be more than 200 characters"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("please add blog content"),
		),
		validation.Field(&r.Excerpt,
			validation.Length(0, 500).Error("excerpt cannot be more than 500 characters"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("please select a category"),
			validation.In(categoryValues()...).Error("invalid category"),
		),
		validation.Field(&r.ReadTime, validation.Min(0)),
	)
}

// UpdateBlogRequest is a partial field set; nil means untouched.
type UpdateBlogRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Excerpt    *string   `json:"excerpt"`
	Category   *Category `json:"category"`
	Author     *string   `json:"author"`
	AuthorRole *string   `json:"authorRole"`
	Image      *string   `json:"image"`
	ReadTime   *int      `json:"readTime"`
	Featured   *bool     `json:"featured"`
}

func (r UpdateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, 200).Error("title cannot be more than 200 characters"),
		),
		validation.Field(&r.Content,
			validation.NilOrNotEmpty.Error("content cannot be empty"),
		),
		validation.Field(&r.Excerpt,
			validation.Length(0, 500).Error("excerpt cannot be more than 500 characters"),
		),
		validation.Field(&r.Category,
			validation.In(categoryValues()...).Error("invalid category"),
		),
		validation.Field(&r.ReadTime, validation.Min(0)),
	)
}

// PublishRequest carries the target published state.
type PublishRequest struct {
	Published *bool `json:"published"`
}

func (r PublishRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Published, validation.NotNil.Error("published state is required")),
	)
}

// ListQuery is the public/admin list filter with pagination.
type ListQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

// Normalize applies the pagination defaults (page 1, limit 10).
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
}

// ListResult is the paged list shape returned by the service.
type ListResult struct {
	Items       []Blog
	Count       int
	Total       int
	Pages       int
	CurrentPage int
}
