package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderHeadingsAndTOC(t *testing.T) {
	doc, err := Render("# Title\n\n## Study Plan\n\ntext\n\n### Detail\n\n## Exam Day\n")
	require.NoError(t, err)

	assert.Equal(t, []Heading{
		{ID: "study-plan", Text: "Study Plan", Level: 2},
		{ID: "exam-day", Text: "Exam Day", Level: 2},
	}, doc.TOC)
	assert.Contains(t, doc.HTML, `<h2 id="study-plan">Study Plan</h2>`)
}

func TestRenderDuplicateHeadingIDs(t *testing.T) {
	doc, err := Render("## Tips\n\n## Tips\n")
	require.NoError(t, err)
	require.Len(t, doc.TOC, 2)
	assert.NotEqual(t, doc.TOC[0].ID, doc.TOC[1].ID)
}

func TestRenderHeadingTextWithInline(t *testing.T) {
	doc, err := Render("## The **OSCE** `format`\n")
	require.NoError(t, err)
	require.Len(t, doc.TOC, 1)
	assert.Equal(t, "The OSCE format", doc.TOC[0].Text)
}

func TestRenderStripsUnsafeContent(t *testing.T) {
	doc, err := Render("<script>alert(1)</script>\n\n[click](javascript:alert(1))\n\n<img src=x onerror=alert(1)>\n")
	require.NoError(t, err)
	assert.NotContains(t, doc.HTML, "<script")
	assert.NotContains(t, doc.HTML, "javascript:")
	assert.NotContains(t, doc.HTML, "onerror")
}

func TestRenderExternalLinksOpenInNewTab(t *testing.T) {
	doc, err := Render("[AHPRA](https://www.ahpra.gov.au) and [news](/blogs/news)\n")
	require.NoError(t, err)
	page := parse(t, doc.HTML)

	ext := page.Find(`a[href="https://www.ahpra.gov.au"]`)
	target, _ := ext.Attr("target")
	assert.Equal(t, "_blank", target)

	internal := page.Find(`a[href="/blogs/news"]`)
	_, hasTarget := internal.Attr("target")
	assert.False(t, hasTarget)
}

func TestRenderGFM(t *testing.T) {
	src := "| Exam | Fee |\n|------|-----|\n| OSCE | $4,000 |\n\n```go\nfmt.Println(1)\n```\n\n~~old~~\n"
	doc, err := Render(src)
	require.NoError(t, err)
	page := parse(t, doc.HTML)

	assert.Equal(t, "OSCE", page.Find("table td").First().Text())
	class, _ := page.Find("pre code").Attr("class")
	assert.Equal(t, "language-go", class)
	assert.Equal(t, 1, page.Find("del").Length())
}

func TestRenderImageLoading(t *testing.T) {
	doc, err := Render("![one](/a.jpg)\n\n![two](/b.jpg)\n\n![three](/c.jpg)\n")
	require.NoError(t, err)
	imgs := parse(t, doc.HTML).Find("img")
	require.Equal(t, 3, imgs.Length())

	var loading []string
	imgs.Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr("loading")
		loading = append(loading, v)
	})
	assert.Equal(t, []string{"eager", "lazy", "lazy"}, loading)
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown("Hello *world*").Render(context.Background(), &buf))
	assert.Equal(t, "<p>Hello <em>world</em></p>\n", buf.String())
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, "1 min read", ReadingTime(""))
	assert.Equal(t, "1 min read", ReadingTime("just a few words"))
	assert.Equal(t, "3 min read", ReadingTime(strings.Repeat("word ", 450)))
}
