package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Courses, 4)
	assert.Len(t, c.Testimonials, 31)
	assert.NotEmpty(t, c.Team)
	assert.NotEmpty(t, c.Articles)
	assert.Equal(t, "+61478320397", c.Site.WhatsApp)
	assert.Len(t, c.Site.QuickMessages, 4)

	osce, ok := c.FAQSet("osce")
	require.True(t, ok)
	assert.Equal(t, "/pages/osce-faqs", osce.Path)
	assert.NotEmpty(t, osce.Items)

	_, ok = c.Program("nclex-ngn")
	assert.True(t, ok)

	assert.Len(t, c.Gallery.Images(), 270)
	assert.Len(t, c.Videos, 23)
	assert.Equal(t, "zFM6XJ7CLZA", c.Videos[0].ID)
}

func TestGalleryImages(t *testing.T) {
	g := Gallery{
		Dir:     "/Gallery/NAI GALLERY",
		Pattern: "nai%03d.jpg",
		Count:   2,
		Title:   "Moment %d",
		Alt:     "Moment %d of the year",
		Extra:   []GalleryImage{{Src: "/Gallery/graduation.jpg", Title: "Graduation"}},
	}
	want := []GalleryImage{
		{Src: "/Gallery/NAI GALLERY/nai001.jpg", Title: "Moment 1", Alt: "Moment 1 of the year"},
		{Src: "/Gallery/NAI GALLERY/nai002.jpg", Title: "Moment 2", Alt: "Moment 2 of the year"},
		{Src: "/Gallery/graduation.jpg", Title: "Graduation"},
	}
	assert.Equal(t, want, g.Images())
	assert.Empty(t, Gallery{Count: -1}.Images())
}

func TestVideoLinks(t *testing.T) {
	v := Video{ID: "zFM6XJ7CLZA", Published: "2024-01-15"}
	assert.Equal(t, "https://img.youtube.com/vi/zFM6XJ7CLZA/hqdefault.jpg", v.Thumbnail())
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/zFM6XJ7CLZA?autoplay=1&rel=0", v.EmbedURL())
	assert.Equal(t, "Jan 15, 2024", v.PublishedDate())
	assert.Equal(t, "soon", Video{Published: "soon"}.PublishedDate())
}

func TestLoadRejectsDuplicateVideos(t *testing.T) {
	fsys := minimalFS()
	fsys["videos.yaml"] = &fstest.MapFile{Data: []byte("- id: abc\n- id: abc\n")}

	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestCourseGating(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	selfPaced, ok := c.Course("self-paced-nclex-review")
	require.True(t, ok)
	assert.True(t, selfPaced.Disabled)
	assert.Empty(t, selfPaced.Link())
	assert.Equal(t, NotAvailableLabel, selfPaced.CTA())

	live, ok := c.Course("nclex-live-review")
	require.True(t, ok)
	assert.False(t, live.Disabled)
	assert.Equal(t, CoursesLink, live.Link())
	assert.Equal(t, "1500", live.PriceAmount())
	assert.Equal(t, "Most Popular", live.Priority)
}

func TestTeamMemberInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Mr. Thomas Mathew", "MM"},
		{"Ms. Preeti", "MP"},
		{"Nadine", "NA"},
		{"Ysa Lou", "YL"},
		{"J", "J"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TeamMember{Name: tt.name}.Initials())
		})
	}
}

func TestTeamByCategory(t *testing.T) {
	c := &Catalog{Team: []TeamMember{
		{Name: "A", Category: Educator},
		{Name: "B", Category: Leadership},
		{Name: "C", Category: Educator},
	}}
	groups := c.TeamByCategory()
	require.Len(t, groups, 2)
	assert.Equal(t, Leadership, groups[0].Category)
	assert.Equal(t, Educator, groups[1].Category)
	assert.Len(t, groups[1].Members, 2)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "héé...", Truncate("hééllo", 3))
}

func TestParseArticleDefaults(t *testing.T) {
	raw := []byte("---\ndate: \"2025-01-02\"\ncategory: \" Exam Tips \"\n---\n\n## Heading\n\nBody text.\n")
	a, err := ParseArticle(raw, "study-smart_plan.md")
	require.NoError(t, err)

	assert.Equal(t, "study-smart_plan", a.Slug)
	assert.Equal(t, "Study Smart Plan", a.Title)
	assert.Equal(t, DefaultAuthor, a.Author)
	assert.Equal(t, "Exam Tips", a.Category)
	assert.Equal(t, "## Heading\n\nBody text.", a.Body)
	assert.True(t, a.Published)
	assert.Equal(t, "2 January 2025", a.DisplayDate())
	assert.Equal(t, "/blogs/news/study-smart_plan", a.Link())
}

func minimalFS() fstest.MapFS {
	return fstest.MapFS{
		"site.yaml":         {Data: []byte("name: Test\n")},
		"courses.yaml":      {Data: []byte("- slug: one\n  title: One\n")},
		"team.yaml":         {Data: []byte("- name: A B\n  category: leadership\n")},
		"testimonials.yaml": {Data: []byte("- id: 1\n  name: X\n  text: hi\n")},
		"programs.yaml":     {Data: []byte("[]\n")},
		"gallery.yaml":      {Data: []byte("count: 0\n")},
		"videos.yaml":       {Data: []byte("[]\n")},
	}
}

func TestLoadRejectsDuplicateArticleSlugs(t *testing.T) {
	fsys := minimalFS()
	fsys["articles/a.md"] = &fstest.MapFile{Data: []byte("---\nslug: first\naliases: [old]\n---\nA\n")}
	fsys["articles/b.md"] = &fstest.MapFile{Data: []byte("---\nslug: old\n---\nB\n")}

	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"old"`)
}

func TestLoadRejectsUnknownTeamCategory(t *testing.T) {
	fsys := minimalFS()
	fsys["team.yaml"] = &fstest.MapFile{Data: []byte("- name: A\n  category: interns\n")}

	_, err := Load(fsys)
	assert.Error(t, err)
}

func TestLoadFAQSlugFromFilename(t *testing.T) {
	fsys := minimalFS()
	fsys["faqs/general.yaml"] = &fstest.MapFile{Data: []byte("title: General\nitems:\n  - question: Q\n    answer: A\n")}

	c, err := Load(fsys)
	require.NoError(t, err)
	set, ok := c.FAQSet("general")
	require.True(t, ok)
	assert.Len(t, set.Items, 1)
}
