package content

import (
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DefaultAuthor is used for articles that do not name an author.
const DefaultAuthor = "NAI Editorial Team"

// CoursesLink is where an enabled course card sends the visitor.
const CoursesLink = "/pages/nclex-ngn#nclex-courses"

// NotAvailableLabel is the call-to-action text of a disabled course.
const NotAvailableLabel = "Currently Not Available"

// Course is one tier of the course catalog.
type Course struct {
	Slug         string   `yaml:"slug"`
	Title        string   `yaml:"title"`
	Subtitle     string   `yaml:"subtitle"`
	Description  string   `yaml:"description"`
	Features     []string `yaml:"features"`
	Duration     string   `yaml:"duration"`
	Students     string   `yaml:"students"`
	Color        string   `yaml:"color"`
	Icon         string   `yaml:"icon"`
	Price        string   `yaml:"price"`
	SuccessRate  string   `yaml:"successRate"`
	NextIntake   string   `yaml:"nextIntake"`
	Includes     []string `yaml:"includes"`
	Requirements []string `yaml:"requirements"`
	Priority     string   `yaml:"priority"`
	Disabled     bool     `yaml:"disabled"`
}

// Link returns the navigation target of the course card, or "" when the
// course is disabled and must not navigate anywhere.
func (c Course) Link() string {
	if c.Disabled {
		return ""
	}
	return CoursesLink
}

// CTA is the label of the course call-to-action button.
func (c Course) CTA() string {
	if c.Disabled {
		return NotAvailableLabel
	}
	return "Enrol Now"
}

// PriceAmount returns the numeric part of Price ("$1,500" -> "1500").
func (c Course) PriceAmount() string {
	var b strings.Builder
	for _, r := range c.Price {
		if unicode.IsDigit(r) || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TeamCategory groups team members on the team page.
type TeamCategory string

const (
	Leadership TeamCategory = "leadership"
	Management TeamCategory = "management"
	Educator   TeamCategory = "educator"
)

// TeamCategories lists categories in display order.
var TeamCategories = []TeamCategory{Leadership, Management, Educator}

// Title is the section heading for the category.
func (c TeamCategory) Title() string {
	switch c {
	case Leadership:
		return "Leadership Team"
	case Management:
		return "Senior Management"
	case Educator:
		return "Our Educators"
	}
	return string(c)
}

// TeamMember is a staff profile.
type TeamMember struct {
	Name           string       `yaml:"name"`
	Role           string       `yaml:"role"`
	Specialization string       `yaml:"specialization"`
	Image          string       `yaml:"image"`
	Achievements   []string     `yaml:"achievements"`
	Category       TeamCategory `yaml:"category"`
}

// Initials is the avatar fallback shown when the photo fails to load.
func (m TeamMember) Initials() string {
	parts := strings.Fields(m.Name)
	if len(parts) >= 2 {
		first, _ := utf8.DecodeRuneInString(parts[0])
		last, _ := utf8.DecodeRuneInString(parts[len(parts)-1])
		return strings.ToUpper(string([]rune{first, last}))
	}
	r := []rune(strings.TrimSpace(m.Name))
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

// Testimonial is a student review.
type Testimonial struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Course string `yaml:"course"`
	Image  string `yaml:"image"`
	Text   string `yaml:"text"`
}

// Excerpt truncates the testimonial text to n runes followed by "...".
func (t Testimonial) Excerpt(n int) string {
	return Truncate(t.Text, n)
}

// Truncate shortens s to n runes and appends "..." when anything was cut.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "..."
}

// FAQ is a single question and answer.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// FAQSet is a named list of FAQs served on its own page.
type FAQSet struct {
	Slug  string `yaml:"slug"`
	Title string `yaml:"title"`
	Path  string `yaml:"path"`
	Items []FAQ  `yaml:"items"`
}

// Section is a headed block of markdown on a program page.
type Section struct {
	ID      string `yaml:"id"`
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// Program is a landing page for one of the exam pathways.
type Program struct {
	Slug        string    `yaml:"slug"`
	Title       string    `yaml:"title"`
	Path        string    `yaml:"path"`
	Intro       string    `yaml:"intro"`
	FAQSet      string    `yaml:"faqSet"`
	ShowCourses bool      `yaml:"showCourses"`
	Sections    []Section `yaml:"sections"`
}

// GalleryImage is one photo of the gallery page.
type GalleryImage struct {
	Src   string `yaml:"src"`
	Title string `yaml:"title"`
	Alt   string `yaml:"alt"`
}

// Gallery describes the photo gallery. The numbered series is expanded from
// Pattern (a printf verb taking 1..Count) inside Dir, followed by Extra.
type Gallery struct {
	Dir     string         `yaml:"dir"`
	Pattern string         `yaml:"pattern"`
	Count   int            `yaml:"count"`
	Title   string         `yaml:"title"`
	Alt     string         `yaml:"alt"`
	Extra   []GalleryImage `yaml:"images"`
}

// Images lists every photo in display order.
func (g Gallery) Images() []GalleryImage {
	images := make([]GalleryImage, 0, max(g.Count, 0)+len(g.Extra))
	for i := 1; i <= g.Count; i++ {
		images = append(images, GalleryImage{
			Src:   path.Join(g.Dir, fmt.Sprintf(g.Pattern, i)),
			Title: fmt.Sprintf(g.Title, i),
			Alt:   fmt.Sprintf(g.Alt, i),
		})
	}
	return append(images, g.Extra...)
}

// Video is a YouTube upload listed on the videos page.
type Video struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Duration    string `yaml:"duration"`
	Views       string `yaml:"views"`
	Likes       string `yaml:"likes"`
	Published   string `yaml:"published"`
}

// Thumbnail is the YouTube preview image.
func (v Video) Thumbnail() string {
	return "https://img.youtube.com/vi/" + v.ID + "/hqdefault.jpg"
}

// EmbedURL is the privacy-enhanced player URL, autoplaying when opened.
func (v Video) EmbedURL() string {
	return "https://www.youtube-nocookie.com/embed/" + v.ID + "?autoplay=1&rel=0"
}

// PublishedDate formats Published like "Jan 15, 2024". Unparseable dates
// are returned as is.
func (v Video) PublishedDate() string {
	t, err := time.Parse("2006-01-02", v.Published)
	if err != nil {
		return v.Published
	}
	return t.Format("Jan 2, 2006")
}

// Address is a postal address.
type Address struct {
	Street     string `yaml:"street"`
	Locality   string `yaml:"locality"`
	Region     string `yaml:"region"`
	PostalCode string `yaml:"postalCode"`
	Country    string `yaml:"country"`
}

// String formats the address on one line.
func (a Address) String() string {
	return strings.Join([]string{a.Street, a.Locality + " " + a.Region + " " + a.PostalCode}, ", ")
}

// Milestone is one entry of the story timeline.
type Milestone struct {
	Year  string `yaml:"year"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Story is the about-page narrative.
type Story struct {
	VideoID    string      `yaml:"videoId"`
	VideoTitle string      `yaml:"videoTitle"`
	Intro      string      `yaml:"intro"`
	Timeline   []Milestone `yaml:"timeline"`
}

// Referral is the referral program copy.
type Referral struct {
	Headline string   `yaml:"headline"`
	Credit   string   `yaml:"credit"`
	Intro    string   `yaml:"intro"`
	Steps    []string `yaml:"steps"`
	Terms    []string `yaml:"terms"`
}

// Site holds organization-wide details.
type Site struct {
	Name          string   `yaml:"name"`
	LegalName     string   `yaml:"legalName"`
	URL           string   `yaml:"url"`
	Description   string   `yaml:"description"`
	Logo          string   `yaml:"logo"`
	FoundingDate  string   `yaml:"foundingDate"`
	AreaServed    string   `yaml:"areaServed"`
	Phone         string   `yaml:"phone"`
	WhatsApp      string   `yaml:"whatsapp"`
	Email         string   `yaml:"email"`
	Address       Address  `yaml:"address"`
	SameAs        []string `yaml:"sameAs"`
	QuickMessages []string `yaml:"quickMessages"`
	Story         Story    `yaml:"story"`
	Referral      Referral `yaml:"referral"`
}

// Article is a news/blog article. Body holds markdown.
type Article struct {
	Slug      string   `yaml:"slug"`
	Title     string   `yaml:"title"`
	Date      string   `yaml:"date"`
	Author    string   `yaml:"author"`
	Category  string   `yaml:"category"`
	Excerpt   string   `yaml:"excerpt"`
	Image     string   `yaml:"image"`
	Tags      []string `yaml:"tags"`
	Keywords  []string `yaml:"keywords"`
	Aliases   []string `yaml:"aliases"`
	ReadTime  string   `yaml:"readTime"`
	Featured  bool     `yaml:"featured"`
	Views     int      `yaml:"views"`
	Likes     int      `yaml:"likes"`
	Comments  int      `yaml:"comments"`
	Body      string   `yaml:"-"`
	Published bool     `yaml:"-"`
}

// Link is the canonical article path.
func (a Article) Link() string {
	return "/blogs/news/" + a.Slug
}

// Time parses Date; the zero time is returned for malformed dates.
func (a Article) Time() time.Time {
	t, err := time.Parse("2006-01-02", a.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DisplayDate formats Date the way Australian readers expect ("7 September 2025").
func (a Article) DisplayDate() string {
	t := a.Time()
	if t.IsZero() {
		return a.Date
	}
	return t.Format("2 January 2006")
}

// Normalize applies defaults and trims whitespace.
func (a *Article) Normalize() {
	a.Slug = strings.TrimSpace(a.Slug)
	a.Title = strings.TrimSpace(a.Title)
	a.Category = strings.TrimSpace(a.Category)
	if strings.TrimSpace(a.Author) == "" {
		a.Author = DefaultAuthor
	}
}

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
