package blog

import "errors"

var (
	ErrBlogNotFound  = errors.New("blog not found")
	ErrDuplicateSlug = errors.New("a post with this slug already exists")
)
