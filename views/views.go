// Package views renders the site's pages as templ components. Handlers
// reach them through Funcs.
package views

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/nurseassist/naisite/analytics"
	"github.com/nurseassist/naisite/assets"
	"github.com/nurseassist/naisite/content"
	"github.com/nurseassist/naisite/leads"
)

// Funcs holds one constructor per page and partial. Handlers only depend on
// this struct, so any entry can be swapped for a custom component.
type Funcs struct {
	Home             func(HomePage) templ.Component
	Courses          func(CoursesPage) templ.Component
	CourseModal      func(CoursesPage) templ.Component
	Program          func(ProgramPage) templ.Component
	Team             func(TeamPage) templ.Component
	Testimonials     func(TestimonialsPage) templ.Component
	TestimonialGrid  func(TestimonialsPage) templ.Component
	TestimonialModal func(TestimonialsPage) templ.Component
	FAQ              func(FAQPage) templ.Component
	FAQList          func(FAQPage) templ.Component
	News             func(NewsPage) templ.Component
	NewsResults      func(NewsPage) templ.Component
	Article          func(ArticlePage) templ.Component
	About            func(AboutPage) templ.Component
	Gallery          func(GalleryPage) templ.Component
	GalleryGrid      func(GalleryPage) templ.Component
	GalleryLightbox  func(GalleryPage) templ.Component
	Videos           func(VideosPage) templ.Component
	VideoList        func(VideosPage) templ.Component
	Video            func(Video) templ.Component
	Chat             func(Chat) templ.Component
	Contact          func(ContactPage) templ.Component
	Referral         func(ReferralPage) templ.Component
	Unavailable      func(UnavailablePage) templ.Component
	NotFound         func(NotFoundPage) templ.Component
	ServerError      func(Page) templ.Component
	AdminLogin       func(AdminLoginPage) templ.Component
	AdminDashboard   func(AdminDashboardPage) templ.Component
	AdminForm        func(AdminFormPage) templ.Component
	AdminImages      func(AdminImagesPage) templ.Component
	AdminLeads       func(AdminLeadsPage) templ.Component
	AdminAnalytics   func(AdminAnalyticsPage) templ.Component
}

// View renders pages whose images resolve through r.
type View struct {
	r assets.Resolver
}

// New binds the page components to r. A non-empty r.BaseURL must be an
// absolute http(s) URL.
func New(r assets.Resolver) (Funcs, error) {
	if r.BaseURL != "" {
		u, err := url.Parse(r.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return Funcs{}, fmt.Errorf("views: asset base URL %q is not an absolute http(s) URL", r.BaseURL)
		}
	}
	v := View{r: r}
	return Funcs{
		Home:             v.Home,
		Courses:          v.Courses,
		CourseModal:      CourseModal,
		Program:          v.Program,
		Team:             v.Team,
		Testimonials:     v.Testimonials,
		TestimonialGrid:  v.TestimonialGrid,
		TestimonialModal: v.TestimonialModal,
		FAQ:              v.FAQ,
		FAQList:          FAQList,
		News:             v.News,
		NewsResults:      v.NewsResults,
		Article:          v.Article,
		About:            v.About,
		Gallery:          v.Gallery,
		GalleryGrid:      v.GalleryGrid,
		GalleryLightbox:  v.GalleryLightbox,
		Videos:           v.Videos,
		VideoList:        VideoList,
		Video:            VideoPlayer,
		Chat:             ChatOverlay,
		Contact:          v.Contact,
		Referral:         v.Referral,
		Unavailable:      v.Unavailable,
		NotFound:         v.NotFound,
		ServerError:      v.ServerError,
		AdminLogin:       v.AdminLogin,
		AdminDashboard:   v.AdminDashboard,
		AdminForm:        v.AdminForm,
		AdminImages:      v.AdminImages,
		AdminLeads:       v.AdminLeads,
		AdminAnalytics:   v.AdminAnalytics,
	}, nil
}

// Must is New for package-level initialization.
func Must(r assets.Resolver) Funcs {
	f, err := New(r)
	if err != nil {
		panic(err)
	}
	return f
}

// jsonLD embeds a structured-data document. Documents come from marshalLD,
// which escapes <, > and &, so they cannot close the script element.
func jsonLD(doc string) templ.Component {
	return templ.Raw(`<script type="application/ld+json">` + doc + `</script>`)
}

// csrfHeaders is the hx-headers value that sends token with every HTMX
// request below the element.
func csrfHeaders(token string) string {
	b, _ := json.Marshal(map[string]string{"X-CSRF-Token": token})
	return string(b)
}

// Field is one labelled form input with its validation message.
type Field struct {
	Name  string
	Label string
	Value string
	Type  string
	Error string
}

func newField(name, label, value string, errs leads.FieldErrors) Field {
	typ := "text"
	switch {
	case strings.HasSuffix(name, "email"):
		typ = "email"
	case strings.HasSuffix(name, "phone"):
		typ = "tel"
	}
	return Field{Name: name, Label: label, Value: value, Type: typ, Error: errs[name]}
}

// CourseSelect is the "course of interest" dropdown.
type CourseSelect struct {
	Courses  []content.Course
	Selected string
}

// DimensionTable is one breakdown on the analytics page.
type DimensionTable struct {
	Title string
	Rows  []analytics.DimensionStat
}

// ChallengeField is the human-verification question.
type ChallengeField struct {
	Challenge leads.Challenge
	Error     string
}

// withPartial adds partial=name to u, for hx-get attributes that fetch a
// fragment of the page u links to.
func withPartial(u, name string) string {
	parsed, err := url.Parse(u)
	if err != nil {
		return u
	}
	q := parsed.Query()
	q.Set("partial", name)
	parsed.RawQuery = q.Encode()
	return parsed.String()
}

func joinComma(vals []string) string {
	return strings.Join(vals, ", ")
}

// RelatedArticles returns up to n articles sharing a tag with current,
// falling back to the same category. Tags compare case-insensitively.
func RelatedArticles(current content.Article, articles []content.Article, n int) []content.Article {
	tags := make(map[string]struct{})
	for _, t := range current.Tags {
		if tag := strings.ToLower(strings.TrimSpace(t)); tag != "" {
			tags[tag] = struct{}{}
		}
	}
	var byTag, byCategory []content.Article
	for _, a := range articles {
		if a.Slug == current.Slug {
			continue
		}
		if sharesTag(a, tags) {
			byTag = append(byTag, a)
		} else if a.Category != "" && a.Category == current.Category {
			byCategory = append(byCategory, a)
		}
	}
	related := append(byTag, byCategory...)
	if len(related) > n {
		related = related[:n]
	}
	return related
}

func sharesTag(a content.Article, tags map[string]struct{}) bool {
	for _, t := range a.Tags {
		if _, ok := tags[strings.ToLower(strings.TrimSpace(t))]; ok {
			return true
		}
	}
	return false
}
