package naisite

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurseassist/naisite/assets"
	"github.com/nurseassist/naisite/leads"
	"github.com/nurseassist/naisite/navigation"
	"github.com/nurseassist/naisite/views"
)

const (
	canonicalSlug = "nclex-international-gateway-nursing-careers"
	legacySlug    = "nclex-your-gateway-to-a-successful-nursing-career-abroad"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []leads.Lead
}

func (n *recordingNotifier) Notify(_ context.Context, l leads.Lead) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, l)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	app := openTestApp(t, t.TempDir(), opts...)
	t.Cleanup(func() { assert.NoError(t, app.Close()) })
	return app
}

// openTestApp initializes an app whose database lives in dir. The caller
// closes it.
func openTestApp(t *testing.T, dir string, opts ...Option) *App {
	t.Helper()
	v, err := views.New(assets.Resolver{})
	require.NoError(t, err)

	cfg := SiteConfig{
		DatabasePath:  filepath.Join(dir, "site.db"),
		AdminPassword: "correct horse",
		SessionSecret: "test-session-secret-with-enough-bytes",
	}
	app := New(cfg, v, append([]Option{WithStaticDir(dir)}, opts...)...)
	require.NoError(t, app.Init(context.Background()))
	return app
}

// testClient drives the app in-process and carries cookies between
// requests like a browser.
type testClient struct {
	t       *testing.T
	app     *App
	cookies map[string]*http.Cookie
}

func newTestClient(t *testing.T, app *App) *testClient {
	return &testClient{t: t, app: app, cookies: map[string]*http.Cookie{}}
}

func (tc *testClient) do(req *http.Request) *httptest.ResponseRecorder {
	tc.t.Helper()
	for _, c := range tc.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	tc.app.Echo.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(tc.cookies, c.Name)
			continue
		}
		tc.cookies[c.Name] = c
	}
	return rec
}

func (tc *testClient) get(target string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return tc.do(req)
}

// post submits form with the CSRF token picked up by an earlier GET.
func (tc *testClient) post(target string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	if c, ok := tc.cookies["_csrf"]; ok {
		form.Set("_csrf", c.Value)
	}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return tc.do(req)
}

func (tc *testClient) login() {
	tc.t.Helper()
	tc.get("/admin")
	rec := tc.post("/admin/login", url.Values{"password": {"correct horse"}})
	require.Equal(tc.t, http.StatusSeeOther, rec.Code)
}

func parseDoc(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func TestRedirects(t *testing.T) {
	tc := newTestClient(t, newTestApp(t))

	cases := []struct {
		path, location string
	}{
		{"/blogs", "/blogs/news"},
		{"/pages/blogs", "/blogs/news"},
		{"/contact", "/pages/contact"},
		{"/courses/", "/courses"},
	}
	for _, tt := range cases {
		t.Run(tt.path, func(t *testing.T) {
			rec := tc.get(tt.path)
			assert.Equal(t, http.StatusMovedPermanently, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

func TestPublicPagesRender(t *testing.T) {
	tc := newTestClient(t, newTestApp(t))
	for _, path := range []string{
		"/", "/courses", "/pages/nclex-ngn", "/pages/osce-preparation", "/pages/oba",
		"/pages/osce-faqs", "/pages/nclex-ngn-faq", "/pages/testimonials", "/pages/team",
		"/pages/about", "/pages/contact", "/pages/referral-form", "/blogs/news",
		"/blogs/news/" + canonicalSlug, "/pages/gallery", "/pages/videos",
	} {
		t.Run(path, func(t *testing.T) {
			rec := tc.get(path)
			require.Equal(t, http.StatusOK, rec.Code)
			doc := parseDoc(t, rec)
			assert.NotEmpty(t, doc.Find("title").Text())
			assert.Equal(t, 1, doc.Find("h1").Length(), "one h1 per page")
		})
	}
}

func TestUnknownPage(t *testing.T) {
	tc := newTestClient(t, newTestApp(t))
	rec := tc.get("/no/such/page")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Page Not Found", parseDoc(t, rec).Find("h1").Text())
}

func TestEnrol(t *testing.T) {
	app := newTestApp(t)
	tc := newTestClient(t, app)

	rec := tc.get("/courses/self-paced-nclex-review/enrol")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "not open for enrolment")

	course, ok := app.catalog().Course("nclex-live-review")
	require.True(t, ok)
	rec = tc.get("/courses/nclex-live-review/enrol")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, course.Link(), rec.Header().Get("Location"))

	rec = tc.get("/courses/unknown/enrol")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestArticleAliasRedirect(t *testing.T) {
	tc := newTestClient(t, newTestApp(t))

	rec := tc.get("/blogs/news/" + legacySlug + "?category=NCLEX")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/blogs/news/"+canonicalSlug+"?category=NCLEX", rec.Header().Get("Location"))
}

func TestArticleNotFound(t *testing.T) {
	tc := newTestClient(t, newTestApp(t))

	rec := tc.get("/blogs/news/missing-article")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	doc := parseDoc(t, rec)
	assert.Equal(t, "Blog Post Not Found", doc.Find("h1").Text())
	href, _ := doc.Find(".status a.btn").Attr("href")
	assert.Equal(t, "/blogs/news", href)
}

func TestNewsPagination(t *testing.T) {
	app := newTestApp(t)
	tc := newTestClient(t, app)

	articles, err := app.Cache.List(context.Background())
	require.NoError(t, err)
	last := navigation.BuildListing(articles, navigation.PageInfo{Page: 1}).MaxPage()
	lastURL := navigation.ListURL(navigation.PageInfo{Page: last})

	rec := tc.get("/blogs/news?page=99")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, lastURL, rec.Header().Get("Location"))

	rec = tc.get("/blogs/news?page=1")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/blogs/news", rec.Header().Get("Location"))

	rec = tc.get("/blogs/news?page=99&partial=results", "HX-Request", "true")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, lastURL, rec.Header().Get("HX-Push-Url"))
	assert.NotContains(t, rec.Body.String(), "<html")
}

func TestPartials(t *testing.T) {
	tc := newTestClient(t, newTestApp(t))

	t.Run("faq list", func(t *testing.T) {
		rec := tc.get("/pages/osce-faqs?open=0&partial=list", "HX-Request", "true")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "<html")
		doc := parseDoc(t, rec)
		assert.Equal(t, 1, doc.Find(".accordion-item.is-open").Length())
	})

	t.Run("course modal", func(t *testing.T) {
		rec := tc.get("/courses?course=nclex-live-review&partial=modal", "HX-Request", "true")
		require.Equal(t, http.StatusOK, rec.Code)
		doc := parseDoc(t, rec)
		assert.Equal(t, 1, doc.Find("#course-modal .modal").Length())
		assert.Zero(t, doc.Find("html > head > title").Length())
	})

	t.Run("testimonial grid", func(t *testing.T) {
		rec := tc.get("/pages/testimonials?shown=12&partial=grid", "HX-Request", "true")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "<html")
		assert.Contains(t, rec.Body.String(), `id="testimonial-grid"`)
	})

	t.Run("testimonial grid with an oversized batch", func(t *testing.T) {
		rec := tc.get("/pages/testimonials?shown=9223372036854775807&partial=grid", "HX-Request", "true")
		require.Equal(t, http.StatusOK, rec.Code)
		doc := parseDoc(t, rec)
		assert.Equal(t, 31, doc.Find(".testimonial-card").Length())
		assert.Zero(t, doc.Find("a.show-more").Length())
	})

	t.Run("partial param without htmx renders the page", func(t *testing.T) {
		rec := tc.get("/pages/osce-faqs?partial=list")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<html")
	})
}

func TestVideoTransitions(t *testing.T) {
	tc := newTestClient(t, newTestApp(t))

	rec := tc.get("/partials/video?state=idle&event=click")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "video-playing")

	rec = tc.get("/partials/video?state=errored&event=click")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "video-errored")
}

func TestGallery(t *testing.T) {
	tc := newTestClient(t, newTestApp(t))

	rec := tc.get("/pages/gallery")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseDoc(t, rec)
	tiles := doc.Find(".gallery-grid figure")
	require.Equal(t, views.GalleryPerPage, tiles.Length())
	src, _ := tiles.First().Find("img").Attr("src")
	assert.Equal(t, "/gallery/NAI GALLERY/nurseassistinternational001.jpg", src)
	assert.Zero(t, doc.Find("#gallery-lightbox .modal").Length())
	assert.Equal(t, "1", doc.Find(`.pagination [aria-current="page"]`).Text())

	t.Run("last page", func(t *testing.T) {
		doc := parseDoc(t, tc.get("/pages/gallery?page=11"))
		assert.Equal(t, 20, doc.Find(".gallery-grid figure").Length())
		assert.Equal(t, "11", doc.Find(`.pagination [aria-current="page"]`).Text())
	})

	t.Run("out of range page", func(t *testing.T) {
		doc := parseDoc(t, tc.get("/pages/gallery?page=500"))
		assert.Equal(t, "11", doc.Find(`.pagination [aria-current="page"]`).Text())
	})

	t.Run("lightbox wraps across pages", func(t *testing.T) {
		rec := tc.get("/pages/gallery?image=0&partial=lightbox", "HX-Request", "true")
		require.Equal(t, http.StatusOK, rec.Code)
		doc := parseDoc(t, rec)
		modal := doc.Find("#gallery-lightbox .modal")
		require.Equal(t, 1, modal.Length())
		assert.Equal(t, "NAI Moment 1", modal.Find("h2").Text())
		prev, _ := modal.Find(`a[aria-label="Previous photo"]`).Attr("href")
		assert.Equal(t, "/pages/gallery?image=269&page=11", prev)
		next, _ := modal.Find(`a[aria-label="Next photo"]`).Attr("href")
		assert.Equal(t, "/pages/gallery?image=1", next)
	})

	t.Run("grid follows the open photo", func(t *testing.T) {
		doc := parseDoc(t, tc.get("/pages/gallery?image=30"))
		assert.Equal(t, "2", doc.Find(`.pagination [aria-current="page"]`).Text())
		assert.Equal(t, "NAI Moment 31", doc.Find("#gallery-lightbox .modal h2").Text())
	})
}

func TestVideos(t *testing.T) {
	app := newTestApp(t)
	tc := newTestClient(t, app)
	videos := app.catalog().Videos

	doc := parseDoc(t, tc.get("/pages/videos"))
	assert.Equal(t, len(videos), doc.Find(".video-card").Length())
	assert.Zero(t, doc.Find("iframe").Length())
	href, _ := doc.Find(".video-card").Eq(2).Find("a.video-thumb").Attr("href")
	assert.Equal(t, "/pages/videos?play=2", href)

	rec := tc.get("/pages/videos?play=2&partial=list", "HX-Request", "true")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<html")
	doc = parseDoc(t, rec)
	frames := doc.Find("iframe")
	require.Equal(t, 1, frames.Length())
	src, _ := frames.Attr("src")
	assert.Equal(t, videos[2].EmbedURL(), src)
	stop, _ := doc.Find(".video-card.is-playing a.video-stop").Attr("href")
	assert.Equal(t, "/pages/videos", stop)

	doc = parseDoc(t, tc.get("/pages/videos?play=99"))
	assert.Zero(t, doc.Find("iframe").Length())
}

func TestWhatsApp(t *testing.T) {
	tc := newTestClient(t, newTestApp(t))

	rec := tc.get("/go/whatsapp?text=%20%20")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = tc.get("/go/whatsapp?text=" + url.QueryEscape("Hi, I'd like to enrol"))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "https://wa.me/61478320397"))

	rec = tc.get("/go/call")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "tel:"))
}

func TestContactForm(t *testing.T) {
	notifier := &recordingNotifier{}
	app := newTestApp(t, WithNotifier(notifier))
	tc := newTestClient(t, app)

	t.Run("missing csrf token", func(t *testing.T) {
		fresh := newTestClient(t, app)
		rec := fresh.post("/pages/contact", url.Values{"first_name": {"Ana"}})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	rec := tc.get("/pages/contact")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	t.Run("invalid submission", func(t *testing.T) {
		rec := tc.post("/pages/contact", url.Values{"first_name": {"Ana"}, "email": {"not-an-email"}, "answer": {"7"}})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		doc := parseDoc(t, rec)
		assert.Positive(t, doc.Find(".has-error").Length())
		val, _ := doc.Find(`input[name="first_name"]`).Attr("value")
		assert.Equal(t, "Ana", val)
		val, _ = doc.Find(`input[name="answer"]`).Attr("value")
		assert.Empty(t, val)
	})

	t.Run("valid submission", func(t *testing.T) {
		ch := app.challenger.Issue()
		rec := tc.post("/pages/contact", url.Values{
			"first_name": {"Ana"},
			"last_name":  {"Cruz"},
			"email":      {"ana@example.com"},
			"message":    {"When does the next OSCE intake start?"},
			"challenge":  {ch.Token},
			"answer":     {fmt.Sprint(ch.A + ch.B)},
		})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/pages/contact?sent=1", rec.Header().Get("Location"))

		list, err := app.Store.ListLeads(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Ana Cruz", list[0].Name)
		assert.NotEmpty(t, list[0].IPHash)
		assert.Equal(t, 1, notifier.count())
	})
}

func TestSitemapAndRobots(t *testing.T) {
	tc := newTestClient(t, newTestApp(t))

	rec := tc.get("/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<loc>https://nurseassistinternational.com/blogs/news/"+canonicalSlug+"</loc>")
	assert.Contains(t, body, "<loc>https://nurseassistinternational.com/courses</loc>")
	assert.Contains(t, body, "<loc>https://nurseassistinternational.com/pages/gallery</loc>")
	assert.Contains(t, body, "<loc>https://nurseassistinternational.com/pages/videos</loc>")

	rec = tc.get("/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Disallow: /admin\n")
	assert.Contains(t, rec.Body.String(), "Sitemap: https://nurseassistinternational.com/sitemap.xml\n")

	rec = tc.get("/feed.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<rss")
}

func TestEmbeddedAssets(t *testing.T) {
	tc := newTestClient(t, newTestApp(t))
	for _, path := range []string{"/public/site.js", "/public/site.css"} {
		rec := tc.get(path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotZero(t, rec.Body.Len(), path)
	}
}

func TestAdminLogin(t *testing.T) {
	tc := newTestClient(t, newTestApp(t))

	rec := tc.get("/admin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, parseDoc(t, rec).Find(`input[name="password"]`).Length())

	rec = tc.post("/admin/login", url.Values{"password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	tc.login()
	rec = tc.get("/admin")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Zero(t, parseDoc(t, rec).Find(`input[name="password"]`).Length())
	assert.Contains(t, body, canonicalSlug)

	rec = tc.post("/admin/logout", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	rec = tc.get("/admin/leads")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestAdminRenameKeepsOldSlug(t *testing.T) {
	app := newTestApp(t)
	tc := newTestClient(t, app)
	tc.login()

	before, err := app.Store.GetArticleAny(context.Background(), canonicalSlug)
	require.NoError(t, err)

	rec := tc.post("/admin/save", url.Values{
		"original_slug": {canonicalSlug},
		"slug":          {"nclex-gateway"},
		"title":         {before.Title},
		"date":          {before.Date},
		"body":          {before.Body},
		"aliases":       {legacySlug},
		"published":     {"true"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/admin?msg="))

	after, err := app.Store.GetArticleAny(context.Background(), "nclex-gateway")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{legacySlug, canonicalSlug}, after.Aliases)
	assert.Equal(t, before.Views, after.Views)

	for _, old := range []string{canonicalSlug, legacySlug} {
		rec = tc.get("/blogs/news/" + old)
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/blogs/news/nclex-gateway", rec.Header().Get("Location"))
	}
}

func TestAdminRenameSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	first := openTestApp(t, dir)
	tc := newTestClient(t, first)
	tc.login()

	before, err := first.Store.GetArticleAny(context.Background(), canonicalSlug)
	require.NoError(t, err)
	rec := tc.post("/admin/save", url.Values{
		"original_slug": {canonicalSlug},
		"slug":          {"nclex-gateway"},
		"title":         {before.Title},
		"date":          {before.Date},
		"body":          {before.Body},
		"published":     {"true"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.NoError(t, first.Close())

	second := openTestApp(t, dir)
	t.Cleanup(func() { assert.NoError(t, second.Close()) })
	tc = newTestClient(t, second)

	rec = tc.get("/blogs/news/" + canonicalSlug)
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/blogs/news/nclex-gateway", rec.Header().Get("Location"))

	all, err := second.Store.ListAllArticles(context.Background())
	require.NoError(t, err)
	titled := 0
	for _, a := range all {
		if a.Title == before.Title {
			titled++
		}
	}
	assert.Equal(t, 1, titled)
}

func TestAdminDeleteSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	first := openTestApp(t, dir)
	require.NoError(t, first.Store.DeleteArticle(context.Background(), canonicalSlug))
	require.NoError(t, first.Close())

	second := openTestApp(t, dir)
	t.Cleanup(func() { assert.NoError(t, second.Close()) })
	rec := newTestClient(t, second).get("/blogs/news/" + canonicalSlug)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminSaveRefusesTakenSlug(t *testing.T) {
	app := newTestApp(t)
	tc := newTestClient(t, app)
	tc.login()
	ctx := context.Background()

	all, err := app.Store.ListAllArticles(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 2)
	source, owner := all[0], all[1]

	rec := tc.post("/admin/save", url.Values{
		"original_slug": {source.Slug},
		"slug":          {owner.Slug},
		"title":         {"Overwritten"},
		"date":          {source.Date},
		"body":          {"replaced"},
		"published":     {"true"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Contains(t, loc.Query().Get("msg"), "already used")

	got, err := app.Store.GetArticleAny(ctx, owner.Slug)
	require.NoError(t, err)
	assert.Equal(t, owner.Title, got.Title)
	_, err = app.Store.GetArticleAny(ctx, source.Slug)
	assert.NoError(t, err, "the source article is kept")

	// A new article cannot claim a stored slug either.
	rec = tc.post("/admin/save", url.Values{
		"slug":  {owner.Slug},
		"title": {"Fresh"},
		"date":  {"2025-01-01"},
		"body":  {"new"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	got, err = app.Store.GetArticleAny(ctx, owner.Slug)
	require.NoError(t, err)
	assert.Equal(t, owner.Title, got.Title)
}

func TestAdminDeleteArticle(t *testing.T) {
	app := newTestApp(t)
	tc := newTestClient(t, app)

	req := httptest.NewRequest(http.MethodDelete, "/admin/article/"+canonicalSlug, nil)
	tc.get("/admin")
	req.Header.Set("X-CSRF-Token", tc.cookies["_csrf"].Value)
	rec := tc.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	tc.login()
	req = httptest.NewRequest(http.MethodDelete, "/admin/article/"+canonicalSlug, nil)
	req.Header.Set("X-CSRF-Token", tc.cookies["_csrf"].Value)
	rec = tc.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = tc.get("/blogs/news/" + canonicalSlug)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
