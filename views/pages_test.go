package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurseassist/naisite/content"
	"github.com/nurseassist/naisite/widget"
)

func TestChatLinks(t *testing.T) {
	c := Chat{State: widget.ParseChat("options", ""), From: "/blogs/news?page=2&chat=options"}

	toggle := c.Toggle()
	assert.Equal(t, "/blogs/news?page=2", toggle.Href)
	assert.Equal(t, "/partials/chat?from=%2Fblogs%2Fnews%3Fpage%3D2&panel=closed", toggle.Hx)

	w := c.Widget()
	assert.Equal(t, "/blogs/news?chat=widget&page=2", w.Href)

	home := Chat{State: widget.ParseChat("", ""), From: "/"}
	quick := home.QuickMessage("Hi there")
	assert.Equal(t, "/?chat=widget&draft=Hi+there", quick.Href)
	assert.Equal(t, "/partials/chat?draft=Hi+there&from=%2F&panel=widget", quick.Hx)
}

func TestChatLinkDefaultsToHome(t *testing.T) {
	c := Chat{State: widget.ParseChat("", "")}
	assert.Equal(t, "/?chat=options", c.Toggle().Href)
}

func TestVideoEventURL(t *testing.T) {
	v := Video{State: widget.VideoIdle}
	assert.Equal(t, "/partials/video?event=click&state=idle", v.EventURL(widget.EventClick))
	assert.Equal(t, "500ms", v.Delay())
	assert.True(t, v.Idle())
}

func TestVideoEventURLRejectsUnacceptedEvents(t *testing.T) {
	playing := Video{State: widget.VideoPlaying}
	assert.Equal(t, "", playing.EventURL(widget.EventClick))
	assert.Equal(t, "/partials/video?event=error&state=playing", playing.EventURL(widget.EventError))
	assert.Equal(t, "", Video{State: widget.VideoErrored}.EventURL(widget.EventIntersect))
}

func TestTestimonialsURLs(t *testing.T) {
	items := make([]content.Testimonial, 20)
	p := TestimonialsPage{Items: items, Shown: 15, Carousel: widget.ParseCarousel(20, "19")}

	assert.Equal(t, "/pages/testimonials?shown=15&t=0", p.NextURL())
	assert.Equal(t, "/pages/testimonials?shown=15&t=18", p.PrevURL())
	assert.Equal(t, "/pages/testimonials?shown=15", p.CloseURL())
	assert.Equal(t, "/pages/testimonials?shown=21", p.MoreURL())
	assert.Len(t, p.Cards(), 15)

	p.Shown = 20
	assert.Equal(t, "", p.MoreURL())

	first := TestimonialsPage{Items: items, Shown: TestimonialsInitial}
	assert.Equal(t, "/pages/testimonials?t=4", first.OpenURL(4))
}

func TestFAQToggleURL(t *testing.T) {
	p := FAQPage{Set: content.FAQSet{Path: "/pages/osce-faqs"}, Accordion: widget.NewAccordion(3)}
	assert.Equal(t, "/pages/osce-faqs?open=1", p.ToggleURL(1))

	p.Accordion = p.Accordion.Toggle(1)
	assert.Equal(t, "/pages/osce-faqs", p.ToggleURL(1))
	assert.Equal(t, "/pages/osce-faqs?open=2", p.ToggleURL(2))
}

func TestCoursesModalTitle(t *testing.T) {
	assert.Equal(t, "Course Details", CoursesPage{}.ModalTitle())
	c := content.Course{Title: "OSCE Intensive"}
	assert.Equal(t, "OSCE Intensive", CoursesPage{Selected: &c}.ModalTitle())
	assert.Equal(t, "/courses?course=osce+intensive", CoursesPage{}.DetailsURL("osce intensive"))
}

func TestGalleryURLs(t *testing.T) {
	p := GalleryPage{Images: make([]content.GalleryImage, GalleryPerPage*2+1), Number: 2}
	assert.Equal(t, 3, p.TotalPages())
	assert.Equal(t, "/pages/gallery", p.PrevPageURL())
	assert.Equal(t, "/pages/gallery?page=3", p.NextPageURL())

	tiles := p.Tiles()
	require.Len(t, tiles, GalleryPerPage)
	assert.Equal(t, GalleryPerPage, tiles[0].Index)
	assert.Equal(t, "/pages/gallery?image=25&page=2", tiles[0].URL)

	p.Lightbox = widget.ParseCarousel(len(p.Images), "0")
	assert.Equal(t, "/pages/gallery?image=50&page=3", p.PrevURL())

	last := GalleryPage{Images: p.Images, Number: 3}
	assert.Len(t, last.Tiles(), 1)
	assert.Equal(t, "", last.NextPageURL())
}

func TestGalleryPageNumber(t *testing.T) {
	assert.Equal(t, 1, GalleryPageNumber("", 60))
	assert.Equal(t, 1, GalleryPageNumber("-2", 60))
	assert.Equal(t, 2, GalleryPageNumber("2", 60))
	assert.Equal(t, 3, GalleryPageNumber("99", 60))
	assert.Equal(t, 1, GalleryPageNumber("4", 0))
}

func TestVideosPlayURL(t *testing.T) {
	p := VideosPage{Videos: make([]content.Video, 3), Player: widget.ParseAccordion(3, "1")}
	assert.Equal(t, "/pages/videos?play=0", p.PlayURL(0))
	assert.Equal(t, "/pages/videos", p.PlayURL(1))
}

func TestMetaOGType(t *testing.T) {
	assert.Equal(t, "website", Meta{}.OGType())
	assert.Equal(t, "article", Meta{Type: "article"}.OGType())
}
