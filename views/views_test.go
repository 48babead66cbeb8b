package views

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurseassist/naisite/analytics"
	"github.com/nurseassist/naisite/assets"
	"github.com/nurseassist/naisite/content"
	"github.com/nurseassist/naisite/leads"
	"github.com/nurseassist/naisite/navigation"
	"github.com/nurseassist/naisite/widget"
)

func newFuncs(t *testing.T) Funcs {
	t.Helper()
	f, err := New(assets.Resolver{})
	require.NoError(t, err)
	return f
}

func catalog(t *testing.T) *content.Catalog {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)
	return c
}

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func basePage(c *content.Catalog, path string) Page {
	return Page{
		Site: c.Site,
		Meta: Meta{Title: "Test Page", Description: "desc", URL: AbsURL(c.Site, path)},
		Path: path,
		Chat: Chat{State: widget.ParseChat("", ""), Quick: c.Site.QuickMessages, From: path},
		CSRF: "csrf-token",
	}
}

func TestHomeHead(t *testing.T) {
	f, c := newFuncs(t), catalog(t)
	p := basePage(c, "/")
	p.JSONLD = []string{OrganizationJSONLD(c.Site, ""), WebSiteJSONLD(c.Site)}

	doc := render(t, f.Home(HomePage{
		Page:     p,
		Courses:  c.Courses,
		Articles: c.Articles[:3],
		Video:    Video{State: widget.VideoIdle, ID: c.Site.Story.VideoID, Title: c.Site.Story.VideoTitle},
	}))

	assert.Equal(t, "Test Page", doc.Find("title").Text())
	locale, _ := doc.Find(`meta[property="og:locale"]`).Attr("content")
	assert.Equal(t, "en_AU", locale)
	ogType, _ := doc.Find(`meta[property="og:type"]`).Attr("content")
	assert.Equal(t, "website", ogType)

	scripts := doc.Find(`script[type="application/ld+json"]`)
	require.Equal(t, 2, scripts.Length())
	var org map[string]any
	require.NoError(t, json.Unmarshal([]byte(scripts.First().Text()), &org))
	assert.Equal(t, "EducationalOrganization", org["@type"])

	assert.Equal(t, len(c.Courses), doc.Find(".course-card").Length())
	assert.Equal(t, 3, doc.Find(".article-card").Length())
	assert.Equal(t, 1, doc.Find("#chat").Length())

	trigger, _ := doc.Find("#story-video").Attr("hx-trigger")
	assert.Equal(t, "intersect once delay:500ms", trigger)
}

func TestCourseCardGating(t *testing.T) {
	f, c := newFuncs(t), catalog(t)
	courses := []content.Course{
		{Slug: "open", Title: "Open"},
		{Slug: "closed", Title: "Closed", Disabled: true},
	}
	doc := render(t, f.Courses(CoursesPage{Page: basePage(c, "/courses"), Courses: courses}))

	cards := doc.Find(".course-card")
	require.Equal(t, 2, cards.Length())

	open := cards.Eq(0)
	href, ok := open.Find("a.btn").Attr("href")
	require.True(t, ok)
	assert.Equal(t, "/courses/open/enrol", href)

	closed := cards.Eq(1)
	assert.True(t, closed.HasClass("is-disabled"))
	assert.Equal(t, 0, closed.Find("a.btn").Length())
	btn := closed.Find("button")
	_, disabled := btn.Attr("disabled")
	assert.True(t, disabled)
	assert.Equal(t, content.NotAvailableLabel, btn.Text())
}

func TestCourseModal(t *testing.T) {
	f, c := newFuncs(t), catalog(t)
	sel := c.Courses[0]
	doc := render(t, f.CourseModal(CoursesPage{Courses: c.Courses, Selected: &sel}))
	assert.Equal(t, sel.Title, doc.Find("#course-modal-title").Text())

	empty := render(t, f.CourseModal(CoursesPage{Courses: c.Courses}))
	assert.Equal(t, 1, empty.Find("#course-modal").Length())
	assert.Equal(t, 0, empty.Find(".modal").Length())
}

func TestTestimonialsGridAndModal(t *testing.T) {
	f, c := newFuncs(t), catalog(t)
	n := len(c.Testimonials)
	require.Greater(t, n, TestimonialsInitial)

	p := TestimonialsPage{
		Page:     basePage(c, "/pages/testimonials"),
		Items:    c.Testimonials,
		Shown:    TestimonialsInitial,
		Reveal:   widget.NewReveal(3),
		Carousel: widget.ParseCarousel(n, "0"),
	}
	doc := render(t, f.Testimonials(p))

	cards := doc.Find(".testimonial-card")
	assert.Equal(t, TestimonialsInitial, cards.Length())
	assert.True(t, cards.Eq(2).HasClass("is-revealed"))
	assert.False(t, cards.Eq(3).HasClass("is-revealed"))

	more, _ := doc.Find("a.show-more").Attr("href")
	assert.Equal(t, "/pages/testimonials?shown=15", more)

	modal := doc.Find("#testimonial-modal .modal")
	require.Equal(t, 1, modal.Length())
	assert.Equal(t, c.Testimonials[0].Name, modal.Find("h2").Text())
	prev, _ := modal.Find(`a[aria-label="Previous testimonial"]`).Attr("href")
	assert.Equal(t, "/pages/testimonials?t="+strconv.Itoa(n-1), prev)
}

func TestFAQList(t *testing.T) {
	f := newFuncs(t)
	set := content.FAQSet{Slug: "osce", Title: "OSCE FAQs", Path: "/pages/osce-faqs", Items: []content.FAQ{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	}}
	doc := render(t, f.FAQList(FAQPage{Set: set, Accordion: widget.ParseAccordion(2, "1")}))

	items := doc.Find(".accordion-item")
	require.Equal(t, 2, items.Length())
	assert.False(t, items.Eq(0).HasClass("is-open"))
	assert.True(t, items.Eq(1).HasClass("is-open"))

	_, hidden := items.Eq(0).Find(".accordion-panel").Attr("hidden")
	assert.True(t, hidden)

	openFirst, _ := items.Eq(0).Find("a").Attr("href")
	closeSecond, _ := items.Eq(1).Find("a").Attr("href")
	assert.Equal(t, "/pages/osce-faqs?open=0", openFirst)
	assert.Equal(t, "/pages/osce-faqs", closeSecond)
}

func TestNewsResults(t *testing.T) {
	f, c := newFuncs(t), catalog(t)
	info := navigation.PageInfo{Page: 1, Category: navigation.AllCategories, Search: ""}
	p := NewsPage{Page: basePage(c, "/blogs/news"), Listing: navigation.BuildListing(c.Articles, info)}

	doc := render(t, f.News(p))
	assert.Equal(t, 1, doc.Find(".news-hero").Length())
	assert.Equal(t, len(p.Listing.Categories), doc.Find(".category-chips a").Length())
	assert.Equal(t, "All", doc.Find(".category-chips a.active").Text())

	empty := NewsPage{Listing: navigation.BuildListing(c.Articles, navigation.PageInfo{Page: 1, Category: "All", Search: "zzzz"})}
	doc = render(t, f.NewsResults(empty))
	assert.Equal(t, 1, doc.Find(".empty").Length())
	assert.Equal(t, 0, doc.Find(".article-card").Length())
}

func TestArticlePage(t *testing.T) {
	f, c := newFuncs(t), catalog(t)
	a := c.Articles[0]
	p := basePage(c, a.Link())
	p.Meta.Type = "article"
	p.Meta.Tags = []string{"NCLEX"}
	doc := render(t, f.Article(ArticlePage{
		Page:     p,
		Article:  a,
		Body:     "<h2 id=\"intro\">Intro</h2>",
		BackURL:  "/blogs/news?page=2",
		ReadTime: "3 min read",
		Share:    leads.ShareLinks(p.Meta.URL, a.Title),
		Related:  c.Articles[1:3],
	}))

	back, _ := doc.Find("a.back").Attr("href")
	assert.Equal(t, "/blogs/news?page=2", back)
	assert.Equal(t, "Intro", doc.Find(".post-body h2#intro").Text())
	assert.Equal(t, 4, doc.Find(".share a").Length())
	assert.Equal(t, 2, doc.Find(".related .article-card").Length())
	tag, _ := doc.Find(`meta[property="article:tag"]`).Attr("content")
	assert.Equal(t, "NCLEX", tag)
}

func TestContactFormErrors(t *testing.T) {
	f, c := newFuncs(t), catalog(t)
	doc := render(t, f.Contact(ContactPage{
		Page:      basePage(c, "/pages/contact"),
		Form:      leads.ContactForm{FirstName: "Ana"},
		Errors:    leads.FieldErrors{"email": "Email is required.", "answer": "Incorrect answer. Please try again."},
		Challenge: leads.Challenge{A: 2, B: 3, Token: "tok"},
		Courses:   c.Courses,
	}))

	val, _ := doc.Find("input#first_name").Attr("value")
	assert.Equal(t, "Ana", val)
	invalid, _ := doc.Find("input#email").Attr("aria-invalid")
	assert.Equal(t, "true", invalid)
	typ, _ := doc.Find("input#email").Attr("type")
	assert.Equal(t, "email", typ)
	assert.Contains(t, doc.Find("label[for=answer]").Text(), "2 + 3")
	assert.Equal(t, "Incorrect answer. Please try again.", doc.Find("#answer + .error").Text())
	csrf, _ := doc.Find(`input[name="_csrf"]`).Attr("value")
	assert.Equal(t, "csrf-token", csrf)
}

func TestStatusPages(t *testing.T) {
	f, c := newFuncs(t), catalog(t)

	doc := render(t, f.NotFound(NotFoundPage{
		Page:      basePage(c, "/blogs/news/missing"),
		Heading:   "Blog Post Not Found",
		Message:   "The article you are looking for does not exist.",
		BackURL:   "/blogs/news",
		BackLabel: "Back to News",
	}))
	assert.Equal(t, "Blog Post Not Found", doc.Find("h1").Text())
	href, _ := doc.Find(".status a.btn").Attr("href")
	assert.Equal(t, "/blogs/news", href)

	doc = render(t, f.Unavailable(UnavailablePage{Page: basePage(c, "/courses"), Course: content.Course{Title: "Closed", Disabled: true}}))
	assert.Equal(t, content.NotAvailableLabel, doc.Find("h1").Text())
}

func TestAdminPages(t *testing.T) {
	f, c := newFuncs(t), catalog(t)
	p := basePage(c, "/admin")
	p.Chat = Chat{}

	doc := render(t, f.AdminDashboard(AdminDashboardPage{Page: p, Articles: c.Articles[:2], Message: "saved"}))
	assert.Equal(t, 0, doc.Find("#chat").Length())
	assert.Equal(t, 2, doc.Find("button[hx-delete]").Length())
	headers, _ := doc.Find("section.admin").Attr("hx-headers")
	assert.JSONEq(t, `{"X-CSRF-Token": "csrf-token"}`, headers)

	stats := analytics.Stats{Events: []analytics.DimensionStat{{Name: "whatsapp", Count: 2}}}
	doc = render(t, f.AdminAnalytics(AdminAnalyticsPage{
		Page:    p,
		Summary: analytics.StatsResponse{Stats: &stats, Period: "week"},
		Periods: analytics.Periods,
	}))
	assert.Equal(t, "week", doc.Find(".period-tabs a.active").Text())
	assert.Contains(t, doc.Text(), "whatsapp")
}

func TestChatOverlay(t *testing.T) {
	f := newFuncs(t)
	doc := render(t, f.Chat(Chat{
		State: widget.ParseChat("widget", "Hello"),
		Quick: []string{"One", "Two"},
		From:  "/",
	}))
	assert.Equal(t, 2, doc.Find(".chat-quick a").Length())
	assert.Equal(t, "Hello", doc.Find("textarea#chat-text").Text())
	assert.Equal(t, 0, doc.Find(".chat-options").Length())
}

func TestNewRejectsRelativeBaseURL(t *testing.T) {
	for _, base := range []string{"ftp://cdn.example.com", "/storage", "not a url"} {
		_, err := New(assets.Resolver{BaseURL: base})
		assert.Error(t, err, base)
	}
	_, err := New(assets.Resolver{BaseURL: "https://cdn.example.com/storage/v1/object/public"})
	assert.NoError(t, err)
}

func galleryImages(n int) []content.GalleryImage {
	images := make([]content.GalleryImage, n)
	for i := range images {
		images[i] = content.GalleryImage{
			Src:   "Gallery/" + strconv.Itoa(i+1) + ".jpg",
			Title: "Photo " + strconv.Itoa(i+1),
			Alt:   "Classroom photo",
		}
	}
	return images
}

func TestGalleryPage(t *testing.T) {
	f, c := newFuncs(t), catalog(t)
	images := galleryImages(GalleryPerPage + 5)
	doc := render(t, f.Gallery(GalleryPage{
		Page:     basePage(c, "/pages/gallery"),
		Images:   images,
		Number:   1,
		Lightbox: widget.ParseCarousel(len(images), ""),
	}))

	tiles := doc.Find("#gallery-grid figure")
	require.Equal(t, GalleryPerPage, tiles.Length())
	src, _ := tiles.First().Find("img").Attr("src")
	assert.Equal(t, "/gallery/1.jpg", src)
	href, _ := tiles.First().Find("a").Attr("href")
	assert.Equal(t, "/pages/gallery?image=0", href)
	hx, _ := tiles.First().Find("a").Attr("hx-get")
	assert.Equal(t, "/pages/gallery?image=0&partial=lightbox", hx)
	assert.Equal(t, "Photo 1", tiles.First().Find("figcaption").Text())

	next, _ := doc.Find(`.pagination a[rel="next"]`).Attr("href")
	assert.Equal(t, "/pages/gallery?page=2", next)
	assert.Equal(t, 0, doc.Find("#gallery-lightbox .modal").Length())
}

func TestGalleryLightbox(t *testing.T) {
	f := newFuncs(t)
	images := galleryImages(3)
	doc := render(t, f.GalleryLightbox(GalleryPage{
		Images:   images,
		Number:   1,
		Lightbox: widget.ParseCarousel(len(images), "0"),
	}))

	modal := doc.Find("#gallery-lightbox .lightbox")
	require.Equal(t, 1, modal.Length())
	assert.Equal(t, "Photo 1", modal.Find("#lightbox-title").Text())
	assert.Equal(t, "1 / 3", modal.Find(".carousel-nav span").Text())
	prev, _ := modal.Find(`a[aria-label="Previous photo"]`).Attr("href")
	assert.Equal(t, "/pages/gallery?image=2", prev)
	closeURL, _ := modal.Find("a.modal-close").Attr("href")
	assert.Equal(t, "/pages/gallery", closeURL)
}

func TestVideosPage(t *testing.T) {
	f, c := newFuncs(t), catalog(t)
	videos := []content.Video{
		{ID: "abc", Title: "OSCE walkthrough", Views: "1.2K", Likes: "80", Published: "2024-01-15"},
		{ID: "def", Title: "Student story"},
	}
	doc := render(t, f.Videos(VideosPage{
		Page:   basePage(c, "/pages/videos"),
		Videos: videos,
		Player: widget.NewAccordion(len(videos)),
	}))

	cards := doc.Find("#video-list .video-card")
	require.Equal(t, 2, cards.Length())
	assert.True(t, cards.Eq(0).HasClass("featured"))
	assert.False(t, cards.Eq(1).HasClass("featured"))
	assert.Equal(t, 0, doc.Find("iframe").Length())
	play, _ := cards.Eq(1).Find("a.video-thumb").Attr("href")
	assert.Equal(t, "/pages/videos?play=1", play)
	assert.Contains(t, cards.Eq(0).Find(".video-meta").Text(), "Jan 15, 2024")

	doc = render(t, f.VideoList(VideosPage{Videos: videos, Player: widget.ParseAccordion(len(videos), "1")}))
	playing := doc.Find(".video-card.is-playing")
	require.Equal(t, 1, playing.Length())
	src, _ := playing.Find("iframe").Attr("src")
	assert.Equal(t, videos[1].EmbedURL(), src)
	stop, _ := playing.Find("a.video-stop").Attr("href")
	assert.Equal(t, "/pages/videos", stop)
}

func TestTeamImages(t *testing.T) {
	f, c := newFuncs(t), catalog(t)
	groups := []content.TeamGroup{{
		Category: content.Educator,
		Members: []content.TeamMember{
			{Name: "Jane Citizen", Role: "Educator", Image: "/Team/jane.jpg"},
			{Name: "Sam Lee", Role: "Educator"},
		},
	}}
	doc := render(t, f.Team(TeamPage{Page: basePage(c, "/pages/team"), Groups: groups}))

	cards := doc.Find(".team-card")
	require.Equal(t, 2, cards.Length())
	src, _ := cards.Eq(0).Find("img").Attr("src")
	assert.Equal(t, "/Team/jane.jpg", src)
	assert.Equal(t, "SL", cards.Eq(1).Find(".initials").Text())
}

func TestProgramSections(t *testing.T) {
	f, c := newFuncs(t), catalog(t)
	program := content.Program{
		Title:    "NCLEX-NGN",
		Sections: []content.Section{{ID: "format", Heading: "Exam format", Body: "The exam is **adaptive**."}},
	}
	doc := render(t, f.Program(ProgramPage{Page: basePage(c, "/pages/nclex-ngn"), Program: program}))

	section := doc.Find("section#format")
	require.Equal(t, 1, section.Length())
	assert.Equal(t, "adaptive", section.Find("strong").Text())
	toc, _ := doc.Find(".program-toc a").Attr("href")
	assert.Equal(t, "#format", toc)
}

func TestWithPartial(t *testing.T) {
	assert.Equal(t, "/pages/testimonials?partial=modal&t=2", withPartial("/pages/testimonials?t=2", "modal"))
	assert.Equal(t, "/blogs/news?partial=results", withPartial("/blogs/news", "results"))
}

func TestRelatedArticles(t *testing.T) {
	current := content.Article{Slug: "a", Category: "OSCE", Tags: []string{"Exam Tips"}}
	articles := []content.Article{
		current,
		{Slug: "b", Category: "OSCE"},
		{Slug: "c", Category: "NCLEX", Tags: []string{"exam tips "}},
		{Slug: "d", Category: "Careers"},
		{Slug: "e", Category: "OSCE"},
	}
	related := RelatedArticles(current, articles, 2)
	require.Len(t, related, 2)
	assert.Equal(t, "c", related[0].Slug)
	assert.Equal(t, "b", related[1].Slug)
}
