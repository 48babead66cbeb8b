package navigation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurseassist/naisite/content"
)

// makeArticles returns n articles dated one day apart, newest first, with
// categories alternating between OSCE and NCLEX.
func makeArticles(n int) []content.Article {
	base := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	out := make([]content.Article, n)
	for i := range out {
		cat := "OSCE"
		if i%2 == 1 {
			cat = "NCLEX"
		}
		out[i] = content.Article{
			Slug:     fmt.Sprintf("a%02d", i),
			Title:    fmt.Sprintf("Article %d", i),
			Date:     base.AddDate(0, 0, -i).Format("2006-01-02"),
			Category: cat,
		}
	}
	return out
}

func slugs(articles []content.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.Slug
	}
	return out
}

func TestSortByDate(t *testing.T) {
	in := []content.Article{
		{Slug: "old", Date: "2024-01-01"},
		{Slug: "new", Date: "2025-06-01"},
		{Slug: "mid", Date: "2024-08-15"},
	}
	assert.Equal(t, []string{"new", "mid", "old"}, slugs(SortByDate(in)))
	assert.Equal(t, "old", in[0].Slug, "input must not be reordered")
}

func TestCategories(t *testing.T) {
	cats := Categories(SortByDate(makeArticles(4)))
	assert.Equal(t, []string{"All", "OSCE", "NCLEX"}, cats)
}

func TestFilterSearchesKeywords(t *testing.T) {
	articles := []content.Article{
		{Slug: "one", Title: "Clinical skills", Category: "OSCE"},
		{Slug: "two", Title: "Exam day", Excerpt: "What to bring", Category: "NCLEX"},
		{Slug: "three", Title: "Visa steps", Keywords: []string{"AHPRA registration"}, Category: "Careers"},
	}

	assert.Equal(t, []string{"three"}, slugs(Filter(articles, "All", "  ahpra ")))
	assert.Equal(t, []string{"two"}, slugs(Filter(articles, "All", "BRING")))
	assert.Equal(t, []string{"one"}, slugs(Filter(articles, "OSCE", "")))
	assert.Empty(t, Filter(articles, "OSCE", "visa"))
	assert.Len(t, Filter(articles, "All", ""), 3)
}

func TestBuildListingFirstPage(t *testing.T) {
	l := BuildListing(makeArticles(15), PageInfo{Page: 1, Category: "All"})

	require.NotNil(t, l.Newest)
	assert.Equal(t, "a00", l.Newest.Slug)
	assert.Equal(t, []string{"a00", "a01", "a02"}, slugs(l.Latest))
	assert.Len(t, l.Articles, PostsPerPage)
	assert.Equal(t, "a03", l.Articles[0].Slug)
	assert.Equal(t, 15, l.Total)
	assert.Equal(t, 2, l.TotalPages)
	assert.False(t, l.Clamped)
	assert.Equal(t, "", l.PrevURL())
	assert.Equal(t, "/blogs/news?page=2", l.NextURL())
}

func TestBuildListingLaterPage(t *testing.T) {
	l := BuildListing(makeArticles(15), PageInfo{Page: 2, Category: "All"})

	assert.Empty(t, l.Latest, "latest articles only appear on page 1")
	assert.Equal(t, []string{"a12", "a13", "a14"}, slugs(l.Articles))
	assert.Equal(t, "/blogs/news", l.PrevURL())
	assert.Equal(t, "", l.NextURL())

	links := l.PageLinks()
	require.Len(t, links, 2)
	assert.Equal(t, PageLink{Number: 1, URL: "/blogs/news", Current: false}, links[0])
	assert.Equal(t, PageLink{Number: 2, URL: "/blogs/news?page=2", Current: true}, links[1])
}

func TestBuildListingClampsPage(t *testing.T) {
	l := BuildListing(makeArticles(15), PageInfo{Page: 9, Category: "OSCE", Search: "article"})

	assert.True(t, l.Clamped)
	assert.Equal(t, 1, l.Info.Page)
	assert.Equal(t, "/blogs/news?category=OSCE&search=article", ListURL(l.Info))
}

func TestBuildListingNoResults(t *testing.T) {
	l := BuildListing(makeArticles(5), PageInfo{Page: 1, Category: "All", Search: "nothing matches"})

	assert.False(t, l.HasResults())
	assert.Empty(t, l.Latest)
	assert.Empty(t, l.Articles)
	assert.Equal(t, 1, l.MaxPage())
	assert.False(t, l.Clamped)
	require.NotNil(t, l.Newest, "hero stays the newest article regardless of filters")
}

func TestBuildListingKeepsCategoryInLinks(t *testing.T) {
	l := BuildListing(makeArticles(30), PageInfo{Page: 1, Category: "NCLEX"})

	assert.Equal(t, 15, l.Total)
	for _, a := range append(l.Latest, l.Articles...) {
		assert.Equal(t, "NCLEX", a.Category)
	}
	assert.Equal(t, "/blogs/news?page=2&category=NCLEX", l.NextURL())
}
