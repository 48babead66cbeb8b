package views

import (
	"net/url"
	"slices"
	"strconv"

	"github.com/nurseassist/naisite/analytics"
	"github.com/nurseassist/naisite/assets"
	"github.com/nurseassist/naisite/content"
	"github.com/nurseassist/naisite/leads"
	"github.com/nurseassist/naisite/markdown"
	"github.com/nurseassist/naisite/navigation"
	"github.com/nurseassist/naisite/widget"
)

// Meta carries per-page SEO and OpenGraph metadata into the <head>.
type Meta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	Type        string // "website" or "article"
	Image       string
	Keywords    string
	Published   string
	Section     string
	Tags        []string
	NoIndex     bool
}

// OGType defaults Type to "website".
func (m Meta) OGType() string {
	if m.Type == "" {
		return "website"
	}
	return m.Type
}

// Page is the data shared by every full page.
type Page struct {
	Site   content.Site
	Meta   Meta
	JSONLD []string
	Path   string
	Chat   Chat
	CSRF   string
}

// Chat renders the floating chat overlay. Links carry the next state in the
// query string of the current page (for plain navigation) and of
// /partials/chat (for HTMX swaps).
type Chat struct {
	State widget.Chat
	Quick []string
	// From is the page the overlay sits on, with its own query.
	From string
}

// ChatLink is the pair of URLs for one chat transition.
type ChatLink struct {
	Href string
	Hx   string
}

func (c Chat) link(next widget.Chat) ChatLink {
	u, err := url.Parse(c.From)
	if err != nil || c.From == "" {
		u = &url.URL{Path: "/"}
	}
	q := u.Query()
	q.Del("chat")
	q.Del("draft")
	from := u.Path
	if enc := q.Encode(); enc != "" {
		from += "?" + enc
	}
	if next.Panel != widget.ChatClosed {
		q.Set("chat", string(next.Panel))
	}
	if next.Draft != "" {
		q.Set("draft", next.Draft)
	}
	href := u.Path
	if enc := q.Encode(); enc != "" {
		href += "?" + enc
	}

	hx := url.Values{}
	hx.Set("panel", string(next.Panel))
	if next.Draft != "" {
		hx.Set("draft", next.Draft)
	}
	hx.Set("from", from)
	return ChatLink{Href: href, Hx: "/partials/chat?" + hx.Encode()}
}

// Toggle opens or closes the options list.
func (c Chat) Toggle() ChatLink { return c.link(c.State.ToggleOptions()) }

// Widget opens the message widget.
func (c Chat) Widget() ChatLink { return c.link(c.State.OpenWidget()) }

// Close hides the overlay.
func (c Chat) Close() ChatLink { return c.link(c.State.Close()) }

// QuickMessage opens the widget with msg as the draft.
func (c Chat) QuickMessage(msg string) ChatLink {
	return c.link(c.State.OpenWidget().SetDraft(msg))
}

// Video renders the story video in one of its states.
type Video struct {
	State widget.VideoState
	ID    string
	Title string
}

// EventURL is the partial that applies ev to the current state, or "" when
// the state does not accept ev.
func (v Video) EventURL(ev widget.VideoEvent) string {
	if !slices.Contains(v.State.Events(), ev) {
		return ""
	}
	q := url.Values{}
	q.Set("state", string(v.State))
	q.Set("event", string(ev))
	return "/partials/video?" + q.Encode()
}

// Delay is the autoplay delay as an HTMX trigger modifier.
func (v Video) Delay() string {
	return strconv.Itoa(int(widget.AutoplayDelay.Milliseconds())) + "ms"
}

func (v Video) Idle() bool    { return v.State == widget.VideoIdle }
func (v Video) Playing() bool { return v.State == widget.VideoPlaying }
func (v Video) Errored() bool { return v.State == widget.VideoErrored }

// ArticleCard is an article teaser linking to URL.
type ArticleCard struct {
	Article content.Article
	URL     string
}

type HomePage struct {
	Page
	Courses      []content.Course
	Articles     []content.Article
	Testimonials []content.Testimonial
	Story        content.Story
	Video        Video
}

// CoursesPage lists the course catalog. Selected is the course shown in
// the details modal, if any.
type CoursesPage struct {
	Page
	Courses  []content.Course
	Selected *content.Course
}

// ModalTitle is the heading of the details modal.
func (p CoursesPage) ModalTitle() string {
	if p.Selected == nil || p.Selected.Title == "" {
		return "Course Details"
	}
	return p.Selected.Title
}

// DetailsURL opens the modal on slug.
func (p CoursesPage) DetailsURL(slug string) string { return courseURL(slug) }

func courseURL(slug string) string {
	return "/courses?course=" + url.QueryEscape(slug)
}

type ProgramPage struct {
	Page
	Program content.Program
	Courses []content.Course
	FAQ     *content.FAQSet
}

type TeamPage struct {
	Page
	Groups []content.TeamGroup
}

// Testimonial cards shown at first, and how many more each "show more"
// reveals.
const (
	TestimonialsInitial = 9
	TestimonialsBatch   = 6
)

// TestimonialsPage shows the first Shown testimonials as cards and, when
// the carousel is open, one of them in a modal.
type TestimonialsPage struct {
	Page
	Items    []content.Testimonial
	Shown    int
	Reveal   *widget.Reveal
	Carousel widget.Carousel
}

// TestimonialCard is one card of the grid.
type TestimonialCard struct {
	Item     content.Testimonial
	Index    int
	URL      string
	Revealed bool
}

// Cards returns the first Shown testimonials. Cards already revealed keep
// their visible state; the rest fade in as they scroll into view.
func (p TestimonialsPage) Cards() []TestimonialCard {
	cards := make([]TestimonialCard, 0, p.Shown)
	for i, t := range p.Items[:p.Shown] {
		cards = append(cards, TestimonialCard{
			Item:     t,
			Index:    i,
			URL:      p.OpenURL(i),
			Revealed: p.Reveal != nil && p.Reveal.Seen(i),
		})
	}
	return cards
}

// Current is the testimonial in the modal.
func (p TestimonialsPage) Current() content.Testimonial {
	return p.Items[p.Carousel.Index]
}

// MoreURL reveals the next batch, or "" when everything is shown.
func (p TestimonialsPage) MoreURL() string {
	if p.Shown >= len(p.Items) {
		return ""
	}
	return p.url(p.Shown+TestimonialsBatch, -1)
}

// OpenURL opens the modal on index i.
func (p TestimonialsPage) OpenURL(i int) string { return p.url(p.Shown, i) }

// PrevURL and NextURL move the modal with wraparound.
func (p TestimonialsPage) PrevURL() string { return p.url(p.Shown, p.Carousel.Prev().Index) }
func (p TestimonialsPage) NextURL() string { return p.url(p.Shown, p.Carousel.Next().Index) }

// CloseURL hides the modal.
func (p TestimonialsPage) CloseURL() string { return p.url(p.Shown, -1) }

func (p TestimonialsPage) url(shown, open int) string {
	q := url.Values{}
	if shown > TestimonialsInitial {
		q.Set("shown", strconv.Itoa(shown))
	}
	if open >= 0 {
		q.Set("t", strconv.Itoa(open))
	}
	if enc := q.Encode(); enc != "" {
		return "/pages/testimonials?" + enc
	}
	return "/pages/testimonials"
}

// FAQPage renders one FAQ set as an accordion.
type FAQPage struct {
	Page
	Set       content.FAQSet
	Accordion widget.Accordion
}

// ToggleURL is the link on question i.
func (p FAQPage) ToggleURL(i int) string {
	if q := p.Accordion.ToggleQuery(i); q != "" {
		return p.Set.Path + "?open=" + q
	}
	return p.Set.Path
}

// CategoryLink is one category chip on the news listing.
type CategoryLink struct {
	Name   string
	URL    string
	Active bool
}

type NewsPage struct {
	Page
	Listing navigation.Listing
}

// ArticleURL links to a from the listing, carrying the filters back.
func (p NewsPage) ArticleURL(a content.Article) string {
	return navigation.ArticleURL(a.Slug, p.Listing.Info, true)
}

// HeroURL links to the newest article without the page number.
func (p NewsPage) HeroURL() string {
	if p.Listing.Newest == nil {
		return ""
	}
	return navigation.ArticleURL(p.Listing.Newest.Slug, p.Listing.Info, false)
}

// CategoryLinks builds the category chips. Changing category resets page.
func (p NewsPage) CategoryLinks() []CategoryLink {
	links := make([]CategoryLink, len(p.Listing.Categories))
	for i, c := range p.Listing.Categories {
		links[i] = CategoryLink{
			Name:   c,
			URL:    navigation.ListURL(p.Listing.Info.WithCategory(c)),
			Active: c == p.Listing.Info.Category,
		}
	}
	return links
}

// GalleryPerPage is the number of photos on one grid page.
const GalleryPerPage = 25

// galleryPageLinks is how many page numbers the gallery pagination shows.
const galleryPageLinks = 7

// GalleryPage is one page of the photo grid. The lightbox indexes the whole
// gallery, so stepping past the last photo of a page moves to the next page.
type GalleryPage struct {
	Page
	Images   []content.GalleryImage
	Number   int
	Lightbox widget.Carousel
}

// GalleryPageNumber parses the "page" query value, clamped to [1, pages].
func GalleryPageNumber(raw string, n int) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return min(page, galleryPages(n))
}

func galleryPages(n int) int {
	return max(1, (n+GalleryPerPage-1)/GalleryPerPage)
}

// GalleryTile is one photo of the grid.
type GalleryTile struct {
	Image content.GalleryImage
	Index int
	URL   string
}

// TotalPages is the number of grid pages.
func (p GalleryPage) TotalPages() int { return galleryPages(len(p.Images)) }

// Tiles returns the photos on the current page.
func (p GalleryPage) Tiles() []GalleryTile {
	start := min((p.Number-1)*GalleryPerPage, len(p.Images))
	end := min(start+GalleryPerPage, len(p.Images))
	tiles := make([]GalleryTile, 0, end-start)
	for i := start; i < end; i++ {
		tiles = append(tiles, GalleryTile{Image: p.Images[i], Index: i, URL: p.url(p.Number, i)})
	}
	return tiles
}

// Current is the photo in the lightbox.
func (p GalleryPage) Current() content.GalleryImage {
	return p.Images[p.Lightbox.Index]
}

// PageLinks numbers up to seven pages around the current one.
func (p GalleryPage) PageLinks() []navigation.PageLink {
	total := p.TotalPages()
	from := max(1, min(p.Number-galleryPageLinks/2, total-galleryPageLinks+1))
	to := min(total, from+galleryPageLinks-1)
	links := make([]navigation.PageLink, 0, to-from+1)
	for n := from; n <= to; n++ {
		links = append(links, navigation.PageLink{Number: n, URL: p.url(n, -1), Current: n == p.Number})
	}
	return links
}

// PrevPageURL and NextPageURL step the grid, or return "" at either end.
func (p GalleryPage) PrevPageURL() string {
	if p.Number <= 1 {
		return ""
	}
	return p.url(p.Number-1, -1)
}

func (p GalleryPage) NextPageURL() string {
	if p.Number >= p.TotalPages() {
		return ""
	}
	return p.url(p.Number+1, -1)
}

// PrevURL and NextURL move the lightbox with wraparound over every photo.
func (p GalleryPage) PrevURL() string { return p.photoURL(p.Lightbox.Prev().Index) }
func (p GalleryPage) NextURL() string { return p.photoURL(p.Lightbox.Next().Index) }

// CloseURL hides the lightbox and stays on the current page.
func (p GalleryPage) CloseURL() string { return p.url(p.Number, -1) }

func (p GalleryPage) photoURL(i int) string {
	return p.url(i/GalleryPerPage+1, i)
}

func (p GalleryPage) url(page, image int) string {
	q := url.Values{}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if image >= 0 {
		q.Set("image", strconv.Itoa(image))
	}
	if enc := q.Encode(); enc != "" {
		return "/pages/gallery?" + enc
	}
	return "/pages/gallery"
}

// VideosPage lists the channel uploads. At most one plays at a time.
type VideosPage struct {
	Page
	Videos []content.Video
	Player widget.Accordion
}

// PlayURL starts video i, or stops it when it is already playing.
func (p VideosPage) PlayURL(i int) string {
	if q := p.Player.ToggleQuery(i); q != "" {
		return "/pages/videos?play=" + q
	}
	return "/pages/videos"
}

type ArticlePage struct {
	Page
	Article  content.Article
	Image    string
	Body     string // sanitized HTML
	TOC      []markdown.Heading
	ReadTime string
	BackURL  string
	Related  []content.Article
	Share    []leads.ShareLink
}

type AboutPage struct {
	Page
	Story content.Story
	Video Video
}

// ContactPage is the contact form. Errors holds per-field messages after a
// failed submit; Sent is set after a successful one.
type ContactPage struct {
	Page
	Form      leads.ContactForm
	Errors    leads.FieldErrors
	Challenge leads.Challenge
	Courses   []content.Course
	Sent      bool
}

type ReferralPage struct {
	Page
	Form      leads.ReferralForm
	Errors    leads.FieldErrors
	Challenge leads.Challenge
	Courses   []content.Course
	Referral  content.Referral
	Sent      bool
}

// UnavailablePage answers an enrol attempt on a disabled course.
type UnavailablePage struct {
	Page
	Course content.Course
}

type NotFoundPage struct {
	Page
	Heading   string
	Message   string
	BackURL   string
	BackLabel string
}

type AdminLoginPage struct {
	Page
	ShowError bool
}

type AdminDashboardPage struct {
	Page
	Articles []content.Article
	Message  string
}

type AdminFormPage struct {
	Page
	Article content.Article
	IsNew   bool
}

// TagList joins the article tags for the form field.
func (p AdminFormPage) TagList() string { return joinComma(p.Article.Tags) }

// KeywordList joins the article keywords for the form field.
func (p AdminFormPage) KeywordList() string { return joinComma(p.Article.Keywords) }

// AliasList joins the article aliases for the form field.
func (p AdminFormPage) AliasList() string { return joinComma(p.Article.Aliases) }

type AdminImagesPage struct {
	Page
	Images  []assets.Image
	Buckets []string
	Bucket  string
}

type AdminLeadsPage struct {
	Page
	Leads []leads.Lead
}

type AdminAnalyticsPage struct {
	Page
	Summary analytics.StatsResponse
	Periods []string
}
