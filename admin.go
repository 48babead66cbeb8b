package naisite

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nurseassist/naisite/analytics"
	"github.com/nurseassist/naisite/content"
	"github.com/nurseassist/naisite/markdown"
	"github.com/nurseassist/naisite/views"
)

// leadsPageSize is how many leads the admin leads page lists.
const leadsPageSize = 200

func (a *App) adminPage(c echo.Context, title string) views.Page {
	p := a.page(c, views.Meta{Title: a.title(title), NoIndex: true})
	p.Chat = views.Chat{}
	return p
}

func adminRedirect(c echo.Context, msg string) error {
	target := "/admin"
	if msg != "" {
		target += "?msg=" + url.QueryEscape(msg)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(views.AdminLoginPage{Page: a.adminPage(c, "Admin")}))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	return RenderStatus(c, http.StatusUnauthorized, a.Views.AdminLogin(views.AdminLoginPage{
		Page:      a.adminPage(c, "Admin"),
		ShowError: true,
	}))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// handleAdminArticle shows the editor for an article, published or not.
// The slug "new" opens an empty form.
func (a *App) handleAdminArticle(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	slug := c.Param("slug")
	data := views.AdminFormPage{Page: a.adminPage(c, "Edit article")}
	if slug == "new" {
		data.IsNew = true
		data.Article = content.Article{
			Date:   time.Now().Format("2006-01-02"),
			Author: content.DefaultAuthor,
		}
		return Render(c, a.Views.AdminForm(data))
	}
	article, err := a.Store.GetArticleAny(c.Request().Context(), slug)
	if errors.Is(err, ErrNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	data.Article = article
	return Render(c, a.Views.AdminForm(data))
}

// handleAdminSave upserts an article from the editor. Renaming an article
// keeps its old slug as an alias so existing links redirect; a slug owned by
// another article is refused.
func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	ctx := c.Request().Context()
	title := strings.TrimSpace(c.FormValue("title"))
	slug := content.Slugify(c.FormValue("slug"))
	if slug == "" {
		slug = content.Slugify(title)
	}
	if slug == "" || slug == "new" {
		return adminRedirect(c, "Slug is required. Add a title or slug.")
	}
	date := strings.TrimSpace(c.FormValue("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return adminRedirect(c, "Invalid date format. Use YYYY-MM-DD.")
	}

	article := content.Article{
		Slug:      slug,
		Title:     title,
		Date:      date,
		Author:    c.FormValue("author"),
		Category:  c.FormValue("category"),
		Excerpt:   strings.TrimSpace(c.FormValue("excerpt")),
		Image:     strings.TrimSpace(c.FormValue("image")),
		Tags:      splitComma(c.FormValue("tags")),
		Keywords:  splitComma(c.FormValue("keywords")),
		Aliases:   splitComma(c.FormValue("aliases")),
		Body:      c.FormValue("body"),
		Featured:  c.FormValue("featured") != "",
		Published: c.FormValue("published") != "",
	}
	article.Normalize()
	article.ReadTime = markdown.ReadingTime(article.Body)

	original := strings.TrimSpace(c.FormValue("original_slug"))
	existing, err := a.Store.GetArticleAny(ctx, slug)
	switch {
	case err == nil && original != slug:
		return adminRedirect(c, "The slug "+slug+" is already used by another article.")
	case err == nil:
		article.Views, article.Likes, article.Comments = existing.Views, existing.Likes, existing.Comments
	case !errors.Is(err, ErrNotFound):
		return err
	}

	renaming := false
	if original != "" && original != slug {
		prev, err := a.Store.GetArticleAny(ctx, original)
		switch {
		case err == nil:
			article.Views, article.Likes, article.Comments = prev.Views, prev.Likes, prev.Comments
			renaming = true
		case !errors.Is(err, ErrNotFound):
			return err
		}
		article.Aliases = appendUnique(article.Aliases, original)
	}

	aliases := article.Aliases[:0]
	for _, alias := range article.Aliases {
		if alias != slug {
			aliases = append(aliases, alias)
		}
	}
	article.Aliases = aliases

	if renaming {
		err = a.Store.RenameArticle(ctx, original, article)
	} else {
		err = a.Store.SaveArticle(ctx, article)
	}
	if errors.Is(err, ErrSlugTaken) {
		return adminRedirect(c, "The slug "+slug+" is already used by another article.")
	}
	if err != nil {
		return err
	}
	a.Cache.Invalidate()
	return adminRedirect(c, "Saved "+article.Title+".")
}

// handleAdminDelete removes an article. The dashboard row is swapped for
// the empty response.
func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.NoContent(http.StatusUnauthorized)
	}
	if err := a.Store.DeleteArticle(c.Request().Context(), c.Param("slug")); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.String(http.StatusOK, "")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	articles, err := a.Store.ListAllArticles(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminDashboard(views.AdminDashboardPage{
		Page:     a.adminPage(c, "Articles"),
		Articles: articles,
		Message:  msg,
	}))
}

func (a *App) handleAdminLeads(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	list, err := a.Store.ListLeads(c.Request().Context(), leadsPageSize)
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminLeads(views.AdminLeadsPage{
		Page:  a.adminPage(c, "Leads"),
		Leads: list,
	}))
}

func (a *App) handleAdminAnalytics(c echo.Context) error {
	summary, err := a.analytics.Summary(c.Request().Context(), c.QueryParam("period"))
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminAnalytics(views.AdminAnalyticsPage{
		Page:    a.adminPage(c, "Analytics"),
		Summary: summary,
		Periods: analytics.Periods,
	}))
}
