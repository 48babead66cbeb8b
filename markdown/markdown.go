// Package markdown renders article markdown to sanitized HTML as a templ
// component, and extracts the table of contents from its headings.
package markdown

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// WordsPerMinute is the reading speed used by ReadingTime.
const WordsPerMinute = 200

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithXHTML()),
	)

	policy = newPolicy()
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+-]+$`)).OnElements("code")
	p.AllowAttrs("loading").Matching(regexp.MustCompile(`^(lazy|eager)$`)).OnElements("img")
	p.AllowAttrs("decoding").Matching(regexp.MustCompile(`^async$`)).OnElements("img")
	return p
}

// Heading is one table-of-contents entry.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// Document is a rendered article body.
type Document struct {
	HTML string
	TOC  []Heading
}

// Render converts src to sanitized HTML. Second-level headings become TOC
// entries. The first image loads eagerly and the rest lazily.
func Render(src string) (Document, error) {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))

	var toc []Heading
	images := 0
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level != 2 {
				break
			}
			id, _ := node.AttributeString("id")
			idBytes, _ := id.([]byte)
			toc = append(toc, Heading{ID: string(idBytes), Text: nodeText(node, source), Level: node.Level})
		case *ast.Image:
			images++
			if images == 1 {
				node.SetAttributeString("loading", []byte("eager"))
			} else {
				node.SetAttributeString("loading", []byte("lazy"))
			}
			node.SetAttributeString("decoding", []byte("async"))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return Document{}, err
	}

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, source, doc); err != nil {
		return Document{}, err
	}
	return Document{HTML: policy.Sanitize(buf.String()), TOC: toc}, nil
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// renderMarkdown writes the sanitized HTML of src to w.
func renderMarkdown(w io.Writer, src string) error {
	doc, err := Render(src)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, doc.HTML)
	return err
}

// Markdown returns a templ.Component that renders src as HTML.
func Markdown(src string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderMarkdown(w, src)
	})
}

// ReadingTime estimates the reading time of src, e.g. "4 min read".
func ReadingTime(src string) string {
	words := len(strings.Fields(src))
	mins := (words + WordsPerMinute - 1) / WordsPerMinute
	if mins < 1 {
		mins = 1
	}
	return strconv.Itoa(mins) + " min read"
}
