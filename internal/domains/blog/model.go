package blog

import (
	"time"

	"github.com/google/uuid"
)

// Blog is the post entity, mapped 1:1 to the blogs table.
type Blog struct {
	ID      uuid.UUID `db:"id" json:"id"`
	Title   string    `db:"title" json:"title"`
	Slug    string    `db:"slug" json:"slug"`
	Content string    `db:"content" json:"content"`
	Excerpt string    `db:"excerpt" json:"excerpt"`

	Category   Category `db:"category" json:"category"`
	Author     string   `db:"author" json:"author"`
	AuthorRole string   `db:"author_role" json:"authorRole"`
	Image      string   `db:"image" json:"image"`
	ReadTime   int      `db:"read_time" json:"readTime"`

	Featured    bool       `db:"featured" json:"featured"`
	Published   bool       `db:"published" json:"published"`
	PublishedAt *time.Time `db:"published_at" json:"publishedAt"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Category enum
type Category string

const (
	CategoryHealthcare Category = "healthcare"
	CategoryTechnology Category = "technology"
	CategoryInnovation Category = "innovation"
	CategoryTips       Category = "tips"
)

func Categories() []Category {
	return []Category{CategoryHealthcare, CategoryTechnology, CategoryInnovation, CategoryTips}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryHealthcare, CategoryTechnology, CategoryInnovation, CategoryTips:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Fallback values applied on create when the field is absent.
const (
	DefaultAuthor     = "NovaBuk Team"
	DefaultAuthorRole = "Content Team"
	DefaultImage      = "./images/image 34.png"
	DefaultReadTime   = 5
)

// FeaturedLimit caps the featured list.
const FeaturedLimit = 3

// SortField selects the list ordering.
type SortField string

const (
	SortPublishedAt SortField = "published_at"
	SortCreatedAt   SortField = "created_at"
)

// Filter is the store-level query shape shared by List and Count.
type Filter struct {
	Published *bool
	Category  string
	Search    string
	SortBy    SortField
	Offset    int
	Limit     int
}
