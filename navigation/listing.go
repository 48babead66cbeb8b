package navigation

import (
	"sort"
	"strings"

	"github.com/nurseassist/naisite/content"
)

const (
	// PostsPerPage is the page size of the paginated part of the listing.
	PostsPerPage = 9
	// LatestCount is the number of newest matches featured on page 1.
	LatestCount = 3
)

// Listing is one rendered page of the news listing.
type Listing struct {
	Info       PageInfo
	Categories []string
	Newest     *content.Article
	Latest     []content.Article
	Articles   []content.Article
	Total      int
	TotalPages int
	// Clamped is set when Info.Page was beyond the last page. Info then holds
	// the clamped page and callers should redirect to ListURL(Info).
	Clamped bool
}

// HasResults reports whether the filters matched anything.
func (l Listing) HasResults() bool {
	return l.Total > 0
}

// MaxPage is the last valid page number (at least 1).
func (l Listing) MaxPage() int {
	if l.TotalPages > 0 {
		return l.TotalPages
	}
	return 1
}

// SortByDate orders articles newest first. Ties keep their input order.
func SortByDate(articles []content.Article) []content.Article {
	out := make([]content.Article, len(articles))
	copy(out, articles)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time().After(out[j].Time())
	})
	return out
}

// Categories returns "All" followed by each distinct category in order of
// first appearance.
func Categories(sorted []content.Article) []string {
	cats := []string{AllCategories}
	seen := map[string]bool{AllCategories: true}
	for _, a := range sorted {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		cats = append(cats, a.Category)
	}
	return cats
}

// Filter keeps articles in category (unless "All") whose title, excerpt or
// keywords contain the trimmed search, case-insensitively.
func Filter(articles []content.Article, category, search string) []content.Article {
	query := strings.ToLower(strings.TrimSpace(search))
	var out []content.Article
	for _, a := range articles {
		if category != "" && category != AllCategories && a.Category != category {
			continue
		}
		if query != "" && !matches(a, query) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matches(a content.Article, query string) bool {
	if strings.Contains(strings.ToLower(a.Title), query) ||
		strings.Contains(strings.ToLower(a.Excerpt), query) {
		return true
	}
	for _, k := range a.Keywords {
		if strings.Contains(strings.ToLower(k), query) {
			return true
		}
	}
	return false
}

// BuildListing sorts, filters and paginates articles for info. The first
// LatestCount matches are featured only on page 1; the rest are split into
// pages of PostsPerPage.
func BuildListing(articles []content.Article, info PageInfo) Listing {
	sorted := SortByDate(articles)
	l := Listing{
		Info:       info,
		Categories: Categories(sorted),
	}
	if len(sorted) > 0 {
		newest := sorted[0]
		l.Newest = &newest
	}

	filtered := Filter(sorted, info.Category, info.Search)
	l.Total = len(filtered)

	top := filtered[:min(LatestCount, len(filtered))]
	rest := filtered[len(top):]
	l.TotalPages = (len(rest) + PostsPerPage - 1) / PostsPerPage

	if info.Page < 1 {
		l.Info.Page = 1
	}
	if l.Info.Page > l.MaxPage() {
		l.Info.Page = l.MaxPage()
		l.Clamped = true
	}
	if l.Info.Page == 1 {
		l.Latest = top
	}

	start := (l.Info.Page - 1) * PostsPerPage
	if start < len(rest) {
		l.Articles = rest[start:min(start+PostsPerPage, len(rest))]
	}
	return l
}

// PageLinks returns the listing URL for each page, 1-based.
func (l Listing) PageLinks() []PageLink {
	links := make([]PageLink, 0, l.TotalPages)
	for p := 1; p <= l.TotalPages; p++ {
		links = append(links, PageLink{
			Number:  p,
			URL:     ListURL(l.Info.WithPage(p)),
			Current: p == l.Info.Page,
		})
	}
	return links
}

// PrevURL links to the previous page, or "" on the first page.
func (l Listing) PrevURL() string {
	if l.Info.Page <= 1 {
		return ""
	}
	return ListURL(l.Info.WithPage(l.Info.Page - 1))
}

// NextURL links to the next page, or "" on the last page.
func (l Listing) NextURL() string {
	if l.Info.Page >= l.MaxPage() {
		return ""
	}
	return ListURL(l.Info.WithPage(l.Info.Page + 1))
}

// PageLink is a numbered pagination link.
type PageLink struct {
	Number  int
	URL     string
	Current bool
}
