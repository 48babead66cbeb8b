package navigation

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackToNewsURLExamples(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"page=2&category=All&search=", "/blogs/news?page=2"},
		{"category=OSCE&search=nclex", "/blogs/news?category=OSCE&search=nclex"},
		{"", "/blogs/news"},
		{"page=1", "/blogs/news"},
		{"search=nclex&category=OSCE&page=5", "/blogs/news?page=5&category=OSCE&search=nclex"},
		{"search=exam+tips", "/blogs/news?search=exam+tips"},
		{"category=NCLEX+%26+OSCE", "/blogs/news?category=NCLEX+%26+OSCE"},
		{"page=0", "/blogs/news?page=0"},
		{"category=", "/blogs/news"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, BackToNewsURL(q))
		})
	}
}

// Every combination of present/default/custom values must keep exactly the
// non-default parameters, in page, category, search order.
func TestBackToNewsURLPreservesNonDefaults(t *testing.T) {
	pages := []*string{nil, ptr("1"), ptr("2"), ptr("5")}
	categories := []*string{nil, ptr("All"), ptr("OSCE")}
	searches := []*string{nil, ptr(""), ptr("nclex")}

	for _, p := range pages {
		for _, c := range categories {
			for _, s := range searches {
				q := url.Values{}
				var want []string
				if p != nil {
					q.Set("page", *p)
					if *p != "1" {
						want = append(want, "page="+*p)
					}
				}
				if c != nil {
					q.Set("category", *c)
					if *c != "All" {
						want = append(want, "category="+*c)
					}
				}
				if s != nil {
					q.Set("search", *s)
					if *s != "" {
						want = append(want, "search="+*s)
					}
				}
				expected := NewsPath
				if len(want) > 0 {
					expected += "?" + strings.Join(want, "&")
				}
				assert.Equal(t, expected, BackToNewsURL(q), "query %q", q.Encode())
			}
		}
	}
}

func ptr(s string) *string { return &s }

func TestParsePageInfo(t *testing.T) {
	tests := []struct {
		query string
		want  PageInfo
	}{
		{"", PageInfo{Page: 1, Category: "All", Search: ""}},
		{"page=3&category=OSCE&search=lab", PageInfo{Page: 3, Category: "OSCE", Search: "lab"}},
		{"page=abc", PageInfo{Page: 1, Category: "All"}},
		{"page=0", PageInfo{Page: 1, Category: "All"}},
		{"page=-4", PageInfo{Page: 1, Category: "All"}},
		{"page=2abc", PageInfo{Page: 2, Category: "All"}},
		{"page=+7", PageInfo{Page: 7, Category: "All"}},
		{"page=%20%204", PageInfo{Page: 4, Category: "All"}},
		{"category=", PageInfo{Page: 1, Category: "All"}},
		{"search=%20spaced%20", PageInfo{Page: 1, Category: "All", Search: " spaced "}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ParsePageInfo(q))
		})
	}
}

func TestArticleURL(t *testing.T) {
	info := PageInfo{Page: 3, Category: "OSCE", Search: "  lab "}
	assert.Equal(t, "/blogs/news/post?page=3&category=OSCE&search=lab", ArticleURL("post", info, true))
	assert.Equal(t, "/blogs/news/post?category=OSCE&search=lab", ArticleURL("post", info, false))
	assert.Equal(t, "/blogs/news/post", ArticleURL("post", PageInfo{Page: 1, Category: "All"}, true))
}

func TestListURL(t *testing.T) {
	assert.Equal(t, "/blogs/news", ListURL(PageInfo{Page: 1, Category: "All"}))
	assert.Equal(t, "/blogs/news?page=2&category=OSCE", ListURL(PageInfo{Page: 2, Category: "OSCE"}))
	assert.Equal(t, "/blogs/news?search=nclex", ListURL(PageInfo{Page: 1, Category: "All", Search: "nclex"}))

	info := PageInfo{Page: 4, Category: "All"}
	assert.Equal(t, "/blogs/news?category=Careers", ListURL(info.WithCategory("Careers")))
}

func TestListURLFormEncoding(t *testing.T) {
	tests := []struct {
		search string
		want   string
	}{
		{"a*b~c", "/blogs/news?search=a*b%7Ec"},
		{"nclex exam", "/blogs/news?search=nclex+exam"},
		{"a&b=c", "/blogs/news?search=a%26b%3Dc"},
		{"fee's-_.", "/blogs/news?search=fee%27s-_."},
		{"café", "/blogs/news?search=caf%C3%A9"},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got := ListURL(PageInfo{Page: 1, Category: AllCategories, Search: tt.search})
			assert.Equal(t, tt.want, got)

			u, err := url.Parse(got)
			if assert.NoError(t, err) {
				assert.Equal(t, tt.search, u.Query().Get("search"))
			}
		})
	}
}

func TestMemo(t *testing.T) {
	m := NewMemo(2)

	first := m.Resolve("page=2")
	assert.Equal(t, "/blogs/news?page=2", first.BackURL)
	assert.Equal(t, 2, first.Info.Page)

	m.Resolve("page=2")
	assert.Equal(t, 1, m.cache.Len())

	m.Resolve("page=3")
	m.Resolve("page=2")
	m.Resolve("page=4")
	assert.Equal(t, 2, m.cache.Len())
	assert.True(t, m.cache.Contains("page=2"), "recently used entry is kept")
	assert.False(t, m.cache.Contains("page=3"), "least recently used entry is evicted")

	ctx := m.Resolve("category=OSCE")
	assert.Equal(t, Context{BackURL: "/blogs/news?category=OSCE", Info: PageInfo{Page: 1, Category: "OSCE"}}, ctx)
}
