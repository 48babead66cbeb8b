// Package navigation derives the news-listing context (page, category,
// search) from a query string and builds the links that preserve it.
package navigation

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// NewsPath is the article listing.
	NewsPath = "/blogs/news"
	// AllCategories is the category value meaning "no filter".
	AllCategories = "All"
)

// PageInfo is the reader's position in the news listing.
type PageInfo struct {
	Page     int
	Category string
	Search   string
}

// ParsePageInfo reads page, category and search from q. A page that does
// not start with digits, or parses to zero or less, becomes 1.
func ParsePageInfo(q url.Values) PageInfo {
	page, ok := parseIntPrefix(q.Get("page"))
	if !ok || page < 1 {
		page = 1
	}
	category := q.Get("category")
	if category == "" {
		category = AllCategories
	}
	return PageInfo{
		Page:     page,
		Category: category,
		Search:   q.Get("search"),
	}
}

// parseIntPrefix mirrors JavaScript parseInt(s, 10): leading whitespace,
// an optional sign, then as many decimal digits as present.
func parseIntPrefix(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\f\v")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// BackToNewsURL builds the "back to news" link for an article page. Each
// parameter is kept verbatim unless it is absent or at its default: page
// "1", category "All", or an empty search.
func BackToNewsURL(q url.Values) string {
	var qb queryBuilder
	if page := q.Get("page"); page != "" && page != "1" {
		qb.add("page", page)
	}
	if category := q.Get("category"); category != "" && category != AllCategories {
		qb.add("category", category)
	}
	if search := q.Get("search"); search != "" {
		qb.add("search", search)
	}
	return qb.url(NewsPath)
}

// ArticleURL links to an article from the listing, carrying the listing
// context. includePage=false drops the page, as for the hero article.
func ArticleURL(slug string, info PageInfo, includePage bool) string {
	var qb queryBuilder
	if includePage && info.Page > 1 {
		qb.add("page", strconv.Itoa(info.Page))
	}
	if info.Category != "" && info.Category != AllCategories {
		qb.add("category", info.Category)
	}
	if s := strings.TrimSpace(info.Search); s != "" {
		qb.add("search", s)
	}
	return qb.url(NewsPath + "/" + url.PathEscape(slug))
}

// ListURL is the listing URL for info. Values that are empty, "All" or
// "1" are dropped.
func ListURL(info PageInfo) string {
	var qb queryBuilder
	if info.Page > 1 {
		qb.add("page", strconv.Itoa(info.Page))
	}
	if info.Category != "" && info.Category != AllCategories && info.Category != "1" {
		qb.add("category", info.Category)
	}
	if s := strings.TrimSpace(info.Search); s != "" && s != AllCategories && s != "1" {
		qb.add("search", s)
	}
	return qb.url(NewsPath)
}

// WithPage returns a copy of info on page p.
func (p PageInfo) WithPage(page int) PageInfo {
	p.Page = page
	return p
}

// WithCategory returns a copy of info filtered by category, back on page 1.
func (p PageInfo) WithCategory(category string) PageInfo {
	p.Category = category
	p.Page = 1
	return p
}

// queryBuilder encodes parameters in insertion order, unlike url.Values
// which sorts by key. Values use the browser's form encoding so links built
// here match the ones the page scripts build.
type queryBuilder struct {
	parts []string
}

func (b *queryBuilder) add(key, value string) {
	b.parts = append(b.parts, formEscape(key)+"="+formEscape(value))
}

// formEscape applies application/x-www-form-urlencoded serialization as
// browsers do for URLSearchParams: ASCII alphanumerics and "*-._" pass
// through, space becomes "+", every other byte is percent-encoded.
// url.QueryEscape differs on "*" and "~".
func formEscape(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '*', c == '-', c == '.', c == '_':
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&15])
		}
	}
	return b.String()
}

func (b *queryBuilder) url(path string) string {
	if len(b.parts) == 0 {
		return path
	}
	return path + "?" + strings.Join(b.parts, "&")
}
