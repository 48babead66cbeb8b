// Package content loads the site's catalog (courses, team, testimonials,
// FAQs, programs and seed articles) from YAML and markdown files.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Embedded holds the catalog shipped with the binary under data/.
//
//go:embed data
var Embedded embed.FS

// Catalog is the full, read-only content set for one load.
type Catalog struct {
	Site         Site
	Courses      []Course
	Team         []TeamMember
	Testimonials []Testimonial
	FAQSets      []FAQSet
	Programs     []Program
	Gallery      Gallery
	Videos       []Video
	Articles     []Article
}

// Default loads the embedded catalog.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(Embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Load reads a catalog rooted at fsys. The layout is:
//
//	site.yaml, courses.yaml, team.yaml, testimonials.yaml, programs.yaml,
//	gallery.yaml, videos.yaml
//	faqs/*.yaml
//	articles/*.md
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{}
	files := []struct {
		name string
		dst  any
	}{
		{"site.yaml", &c.Site},
		{"courses.yaml", &c.Courses},
		{"team.yaml", &c.Team},
		{"testimonials.yaml", &c.Testimonials},
		{"programs.yaml", &c.Programs},
		{"gallery.yaml", &c.Gallery},
		{"videos.yaml", &c.Videos},
	}
	for _, f := range files {
		if err := decodeYAML(fsys, f.name, f.dst); err != nil {
			return nil, err
		}
	}

	faqFiles, err := fs.Glob(fsys, "faqs/*.yaml")
	if err != nil {
		return nil, err
	}
	sort.Strings(faqFiles)
	for _, name := range faqFiles {
		var set FAQSet
		if err := decodeYAML(fsys, name, &set); err != nil {
			return nil, err
		}
		if set.Slug == "" {
			set.Slug = strings.TrimSuffix(path.Base(name), ".yaml")
		}
		c.FAQSets = append(c.FAQSets, set)
	}

	mdFiles, err := fs.Glob(fsys, "articles/*.md")
	if err != nil {
		return nil, err
	}
	sort.Strings(mdFiles)
	for _, name := range mdFiles {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		a, err := ParseArticle(raw, path.Base(name))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		c.Articles = append(c.Articles, a)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeYAML(fsys fs.FS, name string, dst any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// ParseArticle parses a markdown file with YAML front matter. Missing slugs
// and titles are derived from the file name.
func ParseArticle(raw []byte, filename string) (Article, error) {
	var a Article
	body, err := frontmatter.Parse(bytes.NewReader(raw), &a)
	if err != nil {
		return Article{}, err
	}
	base := strings.TrimSuffix(filename, path.Ext(filename))
	if a.Slug == "" {
		a.Slug = base
	}
	if strings.TrimSpace(a.Title) == "" {
		words := strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
		a.Title = cases.Title(language.English).String(words)
	}
	a.Body = strings.TrimSpace(string(body))
	a.Published = true
	a.Normalize()
	return a, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool)
	for _, co := range c.Courses {
		if co.Slug == "" {
			return fmt.Errorf("course %q: missing slug", co.Title)
		}
		if seen[co.Slug] {
			return fmt.Errorf("course %q: duplicate slug", co.Slug)
		}
		seen[co.Slug] = true
	}
	for _, m := range c.Team {
		switch m.Category {
		case Leadership, Management, Educator:
		default:
			return fmt.Errorf("team member %q: unknown category %q", m.Name, m.Category)
		}
	}
	if c.Gallery.Count > 0 && !strings.Contains(c.Gallery.Pattern, "%") {
		return fmt.Errorf("gallery pattern %q has no number verb", c.Gallery.Pattern)
	}
	videos := make(map[string]bool)
	for _, v := range c.Videos {
		if v.ID == "" {
			return fmt.Errorf("video %q: missing id", v.Title)
		}
		if videos[v.ID] {
			return fmt.Errorf("video %q listed twice", v.ID)
		}
		videos[v.ID] = true
	}
	slugs := make(map[string]bool)
	for _, a := range c.Articles {
		for _, s := range append([]string{a.Slug}, a.Aliases...) {
			if slugs[s] {
				return fmt.Errorf("article slug %q used twice", s)
			}
			slugs[s] = true
		}
	}
	return nil
}

// Course returns the course with the given slug.
func (c *Catalog) Course(slug string) (Course, bool) {
	for _, co := range c.Courses {
		if co.Slug == slug {
			return co, true
		}
	}
	return Course{}, false
}

// FAQSet returns the FAQ set with the given slug.
func (c *Catalog) FAQSet(slug string) (FAQSet, bool) {
	for _, s := range c.FAQSets {
		if s.Slug == slug {
			return s, true
		}
	}
	return FAQSet{}, false
}

// Program returns the program with the given slug.
func (c *Catalog) Program(slug string) (Program, bool) {
	for _, p := range c.Programs {
		if p.Slug == slug {
			return p, true
		}
	}
	return Program{}, false
}

// TeamGroup is one category section of the team page.
type TeamGroup struct {
	Category TeamCategory
	Members  []TeamMember
}

// TeamByCategory groups the team in TeamCategories order, skipping empty groups.
func (c *Catalog) TeamByCategory() []TeamGroup {
	var groups []TeamGroup
	for _, cat := range TeamCategories {
		g := TeamGroup{Category: cat}
		for _, m := range c.Team {
			if m.Category == cat {
				g.Members = append(g.Members, m)
			}
		}
		if len(g.Members) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}
