package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"punctuation stripped", "Hello, World!", "hello-world"},
		{"whitespace collapsed", "  multi   space ", "multi-space"},
		{"full title", "Tips for Healthy Living!!", "tips-for-healthy-living"},
		{"already clean", "technology", "technology"},
		{"digits kept", "Top 10 Tips", "top-10-tips"},
		{"hyphens collapsed", "a -- b", "a-b"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSlug(tc.title))
		})
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	first := GenerateSlug("Tips for Healthy Living!!")
	second := GenerateSlug("Tips for Healthy Living!!")
	assert.Equal(t, first, second)

	// A slug re-derived from itself is unchanged.
	assert.Equal(t, first, GenerateSlug(first))
}
