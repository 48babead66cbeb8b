package naisite

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nurseassist/naisite/analytics"
	"github.com/nurseassist/naisite/content"
	"github.com/nurseassist/naisite/leads"
	"github.com/nurseassist/naisite/markdown"
	"github.com/nurseassist/naisite/navigation"
	"github.com/nurseassist/naisite/views"
	"github.com/nurseassist/naisite/widget"
)

func (a *App) catalog() *content.Catalog {
	return a.Catalog.Catalog()
}

// site returns the organization details, with the configured URL taking
// precedence over the catalog's.
func (a *App) site() content.Site {
	s := a.catalog().Site
	if a.Config.URL != "" {
		s.URL = strings.TrimSuffix(a.Config.URL, "/")
	}
	return s
}

func (a *App) title(s string) string {
	return s + " | " + a.catalog().Site.Name
}

// page builds the data shared by every full page. The chat overlay state
// comes from ?chat and ?draft so it survives plain navigation.
func (a *App) page(c echo.Context, meta views.Meta, jsonld ...string) views.Page {
	site := a.site()
	r := c.Request()
	if meta.URL == "" {
		meta.URL = views.AbsURL(site, r.URL.Path)
	}
	if meta.Image == "" {
		meta.Image = views.AbsURL(site, a.Assets.Path(site.Logo))
	}
	q := c.QueryParams()
	return views.Page{
		Site:   site,
		Meta:   meta,
		JSONLD: jsonld,
		Path:   r.URL.Path,
		Chat: views.Chat{
			State: widget.ParseChat(q.Get("chat"), q.Get("draft")),
			Quick: site.QuickMessages,
			From:  r.URL.RequestURI(),
		},
		CSRF: CsrfToken(c),
	}
}

func (a *App) storyVideo(state widget.VideoState) views.Video {
	story := a.catalog().Site.Story
	return views.Video{State: state, ID: story.VideoID, Title: story.VideoTitle}
}

func (a *App) courseJSONLD() []string {
	site := a.site()
	var out []string
	for _, c := range a.catalog().Courses {
		out = append(out, views.CourseJSONLD(site, c))
	}
	return out
}

func (a *App) handleHome(c echo.Context) error {
	cat := a.catalog()
	site := a.site()
	articles, err := a.Cache.List(c.Request().Context())
	if err != nil {
		return err
	}
	latest := navigation.SortByDate(articles)
	latest = latest[:min(3, len(latest))]
	testimonials := cat.Testimonials[:min(3, len(cat.Testimonials))]

	jsonld := append([]string{
		views.OrganizationJSONLD(site, views.AbsURL(site, a.Assets.Path(site.Logo))),
		views.WebSiteJSONLD(site),
	}, a.courseJSONLD()...)

	return Render(c, a.Views.Home(views.HomePage{
		Page: a.page(c, views.Meta{
			Title:       site.Name + " | NCLEX-NGN & OSCE Preparation",
			Description: site.Description,
		}, jsonld...),
		Courses:      cat.Courses,
		Articles:     latest,
		Testimonials: testimonials,
		Story:        site.Story,
		Video:        a.storyVideo(widget.VideoIdle),
	}))
}

func (a *App) handleCourses(c echo.Context) error {
	cat := a.catalog()
	data := views.CoursesPage{Courses: cat.Courses}
	if course, ok := cat.Course(c.QueryParam("course")); ok {
		data.Selected = &course
	}
	if isPartial(c, "modal") {
		return Render(c, a.Views.CourseModal(data))
	}
	data.Page = a.page(c, views.Meta{
		Title:       a.title("Courses"),
		Description: "NCLEX-NGN and OSCE preparation courses for internationally qualified nurses.",
		URL:         views.AbsURL(a.site(), "/courses"),
	}, a.courseJSONLD()...)
	return Render(c, a.Views.Courses(data))
}

// handleEnrol sends the visitor to the course link. Disabled courses answer
// 409 and never navigate.
func (a *App) handleEnrol(c echo.Context) error {
	course, ok := a.catalog().Course(c.Param("slug"))
	if !ok {
		return echo.ErrNotFound
	}
	if course.Disabled {
		return RenderStatus(c, http.StatusConflict, a.Views.Unavailable(views.UnavailablePage{
			Page: a.page(c, views.Meta{
				Title:   a.title(course.Title + " | " + course.CTA()),
				NoIndex: true,
			}),
			Course: course,
		}))
	}
	a.track(c, analytics.EventEnrol, course.Slug)
	return c.Redirect(http.StatusSeeOther, course.Link())
}

func (a *App) handleProgram(slug string) echo.HandlerFunc {
	return func(c echo.Context) error {
		cat := a.catalog()
		program, ok := cat.Program(slug)
		if !ok {
			return echo.ErrNotFound
		}
		data := views.ProgramPage{Program: program}
		var jsonld []string
		if program.ShowCourses {
			data.Courses = cat.Courses
			jsonld = a.courseJSONLD()
		}
		if set, ok := cat.FAQSet(program.FAQSet); ok {
			data.FAQ = &set
			jsonld = append(jsonld, views.FAQPageJSONLD(set))
		}
		data.Page = a.page(c, views.Meta{
			Title:       a.title(program.Title),
			Description: program.Intro,
		}, jsonld...)
		return Render(c, a.Views.Program(data))
	}
}

func (a *App) handleFAQ(slug string) echo.HandlerFunc {
	return func(c echo.Context) error {
		set, ok := a.catalog().FAQSet(slug)
		if !ok {
			return echo.ErrNotFound
		}
		data := views.FAQPage{
			Set:       set,
			Accordion: widget.ParseAccordion(len(set.Items), c.QueryParam("open")),
		}
		if isPartial(c, "list") {
			return Render(c, a.Views.FAQList(data))
		}
		data.Page = a.page(c, views.Meta{
			Title:       a.title(set.Title),
			Description: "Answers to common questions about " + set.Title + ".",
		}, views.FAQPageJSONLD(set))
		return Render(c, a.Views.FAQ(data))
	}
}

func (a *App) handleTestimonials(c echo.Context) error {
	items := a.catalog().Testimonials
	shown := widget.ShownBatch(c.QueryParam("shown"), views.TestimonialsInitial, views.TestimonialsBatch, len(items))
	// Cards from earlier batches were already on screen; only the newest
	// batch fades in.
	revealed := 0
	if shown > views.TestimonialsInitial {
		revealed = max(views.TestimonialsInitial, shown-views.TestimonialsBatch)
	}
	data := views.TestimonialsPage{
		Items:    items,
		Shown:    shown,
		Reveal:   widget.NewReveal(revealed),
		Carousel: widget.ParseCarousel(len(items), c.QueryParam("t")),
	}
	switch {
	case isPartial(c, "grid"):
		return Render(c, a.Views.TestimonialGrid(data))
	case isPartial(c, "modal"):
		return Render(c, a.Views.TestimonialModal(data))
	}
	site := a.site()
	pageURL := views.AbsURL(site, "/pages/testimonials")
	data.Page = a.page(c, views.Meta{
		Title:       a.title("Student Testimonials"),
		Description: "Reviews from nurses who passed NCLEX-NGN and OSCE with " + site.Name + ".",
		URL:         pageURL,
	}, views.ReviewPageJSONLD(site, pageURL, items))
	return Render(c, a.Views.Testimonials(data))
}

func (a *App) handleGallery(c echo.Context) error {
	images := a.catalog().Gallery.Images()
	data := views.GalleryPage{
		Images:   images,
		Number:   views.GalleryPageNumber(c.QueryParam("page"), len(images)),
		Lightbox: widget.ParseCarousel(len(images), c.QueryParam("image")),
	}
	if data.Lightbox.Open {
		// The grid behind the lightbox follows the photo on show.
		data.Number = data.Lightbox.Index/views.GalleryPerPage + 1
	}
	switch {
	case isPartial(c, "grid"):
		return Render(c, a.Views.GalleryGrid(data))
	case isPartial(c, "lightbox"):
		return Render(c, a.Views.GalleryLightbox(data))
	}
	site := a.site()
	data.Page = a.page(c, views.Meta{
		Title:       a.title("Gallery"),
		Description: "Moments from classes, graduations and events at " + site.Name + ".",
	})
	return Render(c, a.Views.Gallery(data))
}

func (a *App) handleVideos(c echo.Context) error {
	videos := a.catalog().Videos
	data := views.VideosPage{
		Videos: videos,
		Player: widget.ParseAccordion(len(videos), c.QueryParam("play")),
	}
	if isPartial(c, "list") {
		return Render(c, a.Views.VideoList(data))
	}
	site := a.site()
	data.Page = a.page(c, views.Meta{
		Title:       a.title("Videos"),
		Description: "Student stories and updates from the " + site.Name + " YouTube channel.",
	})
	return Render(c, a.Views.Videos(data))
}

func (a *App) handleTeam(c echo.Context) error {
	cat := a.catalog()
	site := a.site()
	var jsonld []string
	for _, m := range cat.Team {
		jsonld = append(jsonld, views.PersonJSONLD(site, m, views.AbsURL(site, a.Assets.Path(m.Image))))
	}
	return Render(c, a.Views.Team(views.TeamPage{
		Page: a.page(c, views.Meta{
			Title:       a.title("Our Team"),
			Description: "Meet the educators and leaders behind " + site.Name + ".",
		}, jsonld...),
		Groups: cat.TeamByCategory(),
	}))
}

func (a *App) handleAbout(c echo.Context) error {
	site := a.site()
	return Render(c, a.Views.About(views.AboutPage{
		Page: a.page(c, views.Meta{
			Title:       a.title("About Us"),
			Description: site.Story.Intro,
		}, views.OrganizationJSONLD(site, views.AbsURL(site, a.Assets.Path(site.Logo)))),
		Story: site.Story,
		Video: a.storyVideo(widget.VideoIdle),
	}))
}

// handleNews serves the article listing. Page numbers past the end redirect
// (302) to the last page and non-canonical page values (301) to their
// canonical form. HTMX partial requests are answered in place instead.
func (a *App) handleNews(c echo.Context) error {
	articles, err := a.Cache.List(c.Request().Context())
	if err != nil {
		return err
	}
	nav := a.nav.Resolve(c.QueryString())
	listing := navigation.BuildListing(articles, nav.Info)
	canonical := navigation.ListURL(listing.Info)

	if isPartial(c, "results") {
		if listing.Clamped {
			c.Response().Header().Set("HX-Push-Url", canonical)
		}
		return Render(c, a.Views.NewsResults(views.NewsPage{Listing: listing}))
	}
	if listing.Clamped {
		return c.Redirect(http.StatusFound, canonical)
	}
	if raw, ok := c.QueryParams()["page"]; ok && (listing.Info.Page == 1 || raw[0] != strconv.Itoa(listing.Info.Page)) {
		return c.Redirect(http.StatusMovedPermanently, canonical)
	}

	site := a.site()
	return Render(c, a.Views.News(views.NewsPage{
		Page: a.page(c, views.Meta{
			Title:       a.title("News & Articles"),
			Description: "Guides, exam updates and success stories for nurses registering in Australia.",
			URL:         views.AbsURL(site, canonical),
			NoIndex:     listing.Info.Search != "",
		},
			views.WebSiteJSONLD(site),
			views.BreadcrumbJSONLD(site, []views.Crumb{{Name: "Home", URL: "/"}, {Name: "News", URL: navigation.NewsPath}}),
		),
		Listing: listing,
	}))
}

// handleArticle renders one article. Legacy slugs redirect (301) to the
// canonical one, keeping the query string.
func (a *App) handleArticle(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")
	article, err := a.Cache.Get(ctx, slug)
	if errors.Is(err, ErrNotFound) {
		canonical, aerr := a.Store.ResolveAlias(ctx, slug)
		switch {
		case aerr == nil:
			target := "/blogs/news/" + url.PathEscape(canonical)
			if q := c.QueryString(); q != "" {
				target += "?" + q
			}
			return c.Redirect(http.StatusMovedPermanently, target)
		case errors.Is(aerr, ErrNotFound):
			return a.renderNotFound(c, "Blog Post Not Found",
				"The article you're looking for doesn't exist or has been moved.",
				navigation.NewsPath, "Back to News")
		default:
			return aerr
		}
	}
	if err != nil {
		return err
	}

	doc, err := markdown.Render(article.Body)
	if err != nil {
		return err
	}
	readTime := article.ReadTime
	if readTime == "" {
		readTime = markdown.ReadingTime(article.Body)
	}
	articles, err := a.Cache.List(ctx)
	if err != nil {
		return err
	}

	site := a.site()
	pageURL := views.AbsURL(site, article.Link())
	image := a.Assets.ArticleImage(article.Image)
	imageURL := views.AbsURL(site, image)
	nav := a.nav.Resolve(c.QueryString())

	return Render(c, a.Views.Article(views.ArticlePage{
		Page: a.page(c, views.Meta{
			Title:       a.title(article.Title),
			Description: article.Excerpt,
			URL:         pageURL,
			Type:        "article",
			Image:       imageURL,
			Keywords:    strings.Join(article.Keywords, ", "),
			Published:   article.Date,
			Section:     article.Category,
			Tags:        article.Tags,
		},
			views.BlogPostingJSONLD(site, article, pageURL, imageURL),
			views.BreadcrumbJSONLD(site, []views.Crumb{
				{Name: "Home", URL: "/"},
				{Name: "News", URL: navigation.NewsPath},
				{Name: article.Title, URL: article.Link()},
			}),
		),
		Article:  article,
		Image:    image,
		Body:     doc.HTML,
		TOC:      doc.TOC,
		ReadTime: readTime,
		BackURL:  nav.BackURL,
		Related:  views.RelatedArticles(article, articles, 3),
		Share:    leads.ShareLinks(pageURL, article.Title),
	}))
}

func (a *App) renderNotFound(c echo.Context, heading, message, backURL, backLabel string) error {
	return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(views.NotFoundPage{
		Page:      a.page(c, views.Meta{Title: a.title(heading), NoIndex: true}),
		Heading:   heading,
		Message:   message,
		BackURL:   backURL,
		BackLabel: backLabel,
	}))
}

func redirectTo(target string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, target)
	}
}

// handleVideo applies ?event to ?state and returns the next state's
// fragment. Rejected transitions answer 409 with the unchanged state.
func (a *App) handleVideo(c echo.Context) error {
	state := widget.ParseVideoState(c.QueryParam("state"))
	next, err := state.Next(widget.VideoEvent(c.QueryParam("event")))
	if errors.Is(err, widget.ErrInvalidTransition) {
		return RenderStatus(c, http.StatusConflict, a.Views.Video(a.storyVideo(state)))
	}
	return Render(c, a.Views.Video(a.storyVideo(next)))
}

func (a *App) handleChat(c echo.Context) error {
	from := c.QueryParam("from")
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") {
		from = "/"
	}
	return Render(c, a.Views.Chat(views.Chat{
		State: widget.ParseChat(c.QueryParam("panel"), c.QueryParam("draft")),
		Quick: a.catalog().Site.QuickMessages,
		From:  from,
	}))
}

// handleWhatsApp sends the chat draft to WhatsApp. A blank message is not
// sent.
func (a *App) handleWhatsApp(c echo.Context) error {
	number := a.catalog().Site.WhatsApp
	chat := widget.Chat{Panel: widget.ChatWidget, Draft: c.QueryParam("text")}
	_, link, ok := chat.Send(func(text string) string {
		return leads.WhatsAppURL(number, text)
	})
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "message is empty")
	}
	a.track(c, analytics.EventWhatsApp, "")
	return c.Redirect(http.StatusFound, link)
}

func (a *App) handleCall(c echo.Context) error {
	a.track(c, analytics.EventCall, "")
	return c.Redirect(http.StatusFound, leads.TelURL(a.catalog().Site.Phone))
}

// track records an engagement event against the page the visitor came from.
func (a *App) track(c echo.Context, name, label string) {
	if a.analytics == nil {
		return
	}
	path := c.Request().URL.Path
	if ref, err := url.Parse(c.Request().Referer()); err == nil && ref.Path != "" {
		path = ref.Path
	}
	a.analytics.Track(c, name, path, label)
}

func (a *App) handleSitemap(c echo.Context) error {
	articles, err := a.Cache.List(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderSitemap(c, articles)
}

func (a *App) handleFeed(c echo.Context) error {
	articles, err := a.Cache.List(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderRSS(c, navigation.SortByDate(articles))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\nDisallow: /admin\nDisallow: /partials/\nDisallow: /go/\n\n" +
		"Sitemap: " + BuildURL(a.site().URL, "sitemap.xml") + "\n"
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderNotFound(c, "Page Not Found",
			"The page you're looking for doesn't exist or has been moved.", "/", "Back to home")
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
		_ = RenderStatus(c, code, a.Views.ServerError(a.page(c, views.Meta{Title: a.title("Something went wrong"), NoIndex: true})))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
