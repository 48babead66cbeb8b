package naisite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://example.com", nil, "https://example.com/"},
		{"https://example.com", []string{"sitemap.xml"}, "https://example.com/sitemap.xml"},
		{"https://example.com/", []string{"blogs", "news"}, "https://example.com/blogs/news"},
		{"https://example.com/base", []string{"/courses/"}, "https://example.com/base/courses"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BuildURL(tt.base, tt.segs...), "%s %v", tt.base, tt.segs)
	}
}

func TestSplitComma(t *testing.T) {
	assert.Equal(t, []string{"NCLEX", "OSCE"}, splitComma(" NCLEX, ,OSCE "))
	assert.Nil(t, splitComma(""))
}

func TestAppendUnique(t *testing.T) {
	vals := appendUnique([]string{"a"}, "b")
	assert.Equal(t, []string{"a", "b"}, vals)
	assert.Equal(t, []string{"a", "b"}, appendUnique(vals, "a"))
}
