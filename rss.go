package naisite

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nurseassist/naisite/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Author      string `xml:"author,omitempty"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// renderRSS writes articles, newest first, as an RSS 2.0 feed.
func (a *App) renderRSS(c echo.Context, articles []content.Article) error {
	site := a.site()
	items := make([]rssItem, 0, len(articles))
	for _, art := range articles {
		pubDate := ""
		if t := art.Time(); !t.IsZero() {
			pubDate = t.Format(time.RFC1123Z)
		}
		link := BuildURL(site.URL, art.Link())
		items = append(items, rssItem{
			Title:       art.Title,
			Link:        link,
			Description: art.Excerpt,
			Author:      art.Author,
			Category:    art.Category,
			PubDate:     pubDate,
			GUID:        link,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       site.Name + " News",
			Link:        BuildURL(site.URL, "blogs", "news"),
			Description: site.Description,
			Language:    "en-au",
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
