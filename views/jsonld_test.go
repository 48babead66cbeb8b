package views

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurseassist/naisite/content"
)

var testSite = content.Site{
	Name:    "Nurse Assist International",
	URL:     "https://example.com/",
	Phone:   "+61-400-000-000",
	Email:   "hello@example.com",
	Address: content.Address{Street: "1 Main St", Locality: "Parramatta", Region: "NSW", PostalCode: "2150", Country: "AU"},
	SameAs:  []string{"https://facebook.com/nai"},
}

func decodeLD(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	assert.Equal(t, "https://schema.org", m["@context"])
	return m
}

func TestOrganizationJSONLD(t *testing.T) {
	m := decodeLD(t, OrganizationJSONLD(testSite, "https://example.com/logo.webp"))
	assert.Equal(t, "EducationalOrganization", m["@type"])
	assert.Equal(t, "https://example.com/logo.webp", m["logo"])
	addr := m["address"].(map[string]any)
	assert.Equal(t, "PostalAddress", addr["@type"])
	assert.Equal(t, "2150", addr["postalCode"])
	assert.Equal(t, []any{"https://facebook.com/nai"}, m["sameAs"])
}

func TestWebSiteJSONLDSearchAction(t *testing.T) {
	m := decodeLD(t, WebSiteJSONLD(testSite))
	action := m["potentialAction"].(map[string]any)
	target := action["target"].(map[string]any)
	assert.Equal(t, "https://example.com/blogs/news?search={search_term_string}", target["urlTemplate"])
	assert.Equal(t, "required name=search_term_string", action["query-input"])
}

func TestFAQPageJSONLD(t *testing.T) {
	m := decodeLD(t, FAQPageJSONLD(content.FAQSet{Items: []content.FAQ{{Question: "Q?", Answer: "A."}}}))
	entities := m["mainEntity"].([]any)
	require.Len(t, entities, 1)
	q := entities[0].(map[string]any)
	assert.Equal(t, "Question", q["@type"])
	assert.Equal(t, "A.", q["acceptedAnswer"].(map[string]any)["text"])
}

func TestCourseJSONLDOffer(t *testing.T) {
	m := decodeLD(t, CourseJSONLD(testSite, content.Course{Slug: "x", Title: "X", Price: "$1,500"}))
	offer := m["offers"].(map[string]any)
	assert.Equal(t, "1500", offer["price"])
	assert.Equal(t, "AUD", offer["priceCurrency"])
	assert.Equal(t, "https://schema.org/InStock", offer["availability"])

	m = decodeLD(t, CourseJSONLD(testSite, content.Course{Slug: "y", Price: "$10", Disabled: true}))
	assert.Equal(t, "https://schema.org/SoldOut", m["offers"].(map[string]any)["availability"])

	m = decodeLD(t, CourseJSONLD(testSite, content.Course{Slug: "z"}))
	assert.NotContains(t, m, "offers")
}

func TestBlogPostingJSONLD(t *testing.T) {
	a := content.Article{Title: "T", Date: "2025-09-07", Author: "NAI", Tags: []string{"a", "b"}}
	m := decodeLD(t, BlogPostingJSONLD(testSite, a, "https://example.com/blogs/news/t", "https://example.com/img.jpg"))
	assert.Equal(t, "BlogPosting", m["@type"])
	assert.Equal(t, "a, b", m["keywords"])
	assert.Equal(t, "https://example.com/blogs/news/t", m["mainEntityOfPage"].(map[string]any)["@id"])
}

func TestReviewPageJSONLDTruncates(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	m := decodeLD(t, ReviewPageJSONLD(testSite, "https://example.com/pages/testimonials",
		[]content.Testimonial{{Name: "Ana", Text: string(long)}}))
	list := m["mainEntity"].(map[string]any)
	assert.Equal(t, float64(1), list["numberOfItems"])
	review := list["itemListElement"].([]any)[0].(map[string]any)
	assert.Len(t, review["reviewBody"], ReviewBodyLength+3)
}

func TestBreadcrumbJSONLD(t *testing.T) {
	m := decodeLD(t, BreadcrumbJSONLD(testSite, []Crumb{{"Home", "/"}, {"News", "/blogs/news"}}))
	items := m["itemListElement"].([]any)
	require.Len(t, items, 2)
	second := items[1].(map[string]any)
	assert.Equal(t, float64(2), second["position"])
	assert.Equal(t, "https://example.com/blogs/news", second["item"])
}

func TestAbsURL(t *testing.T) {
	assert.Equal(t, "https://example.com/x", AbsURL(testSite, "/x"))
	assert.Equal(t, "https://cdn.example.com/x", AbsURL(testSite, "https://cdn.example.com/x"))
}
