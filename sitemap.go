package naisite

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nurseassist/naisite/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// staticPages are the catalog-driven pages listed in the sitemap.
var staticPages = []struct {
	path, freq, priority string
}{
	{"/", "weekly", "1.0"},
	{"/courses", "weekly", "0.9"},
	{"/pages/nclex-ngn", "monthly", "0.9"},
	{"/pages/osce-preparation", "monthly", "0.9"},
	{"/pages/oba", "monthly", "0.8"},
	{"/pages/osce-faqs", "monthly", "0.7"},
	{"/pages/nclex-ngn-faq", "monthly", "0.7"},
	{"/pages/testimonials", "monthly", "0.7"},
	{"/pages/team", "monthly", "0.6"},
	{"/pages/gallery", "monthly", "0.5"},
	{"/pages/videos", "weekly", "0.6"},
	{"/pages/about", "monthly", "0.6"},
	{"/pages/contact", "yearly", "0.6"},
	{"/pages/referral-form", "yearly", "0.5"},
	{"/blogs/news", "daily", "0.8"},
}

func (a *App) renderSitemap(c echo.Context, articles []content.Article) error {
	base := a.site().URL
	urls := make([]sitemapURL, 0, len(staticPages)+len(articles))
	for _, p := range staticPages {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, p.path), ChangeFreq: p.freq, Priority: p.priority})
	}
	for _, art := range articles {
		urls = append(urls, sitemapURL{
			Loc:      BuildURL(base, art.Link()),
			LastMod:  art.Date,
			Priority: "0.6",
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
