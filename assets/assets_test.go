package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolverURL(t *testing.T) {
	r := Resolver{BaseURL: "https://cdn.example.com/storage/"}
	assert.Equal(t, "https://cdn.example.com/storage/images/logo.png", r.URL(Images, "/logo.png"))
	assert.Equal(t, "https://cdn.example.com/storage/gallery/a b.jpg", r.URL(Gallery, "a b.jpg"))
	assert.Equal(t, "https://other.example.com/x.jpg", r.URL(Images, "https://other.example.com/x.jpg"))
}

func TestResolverRelative(t *testing.T) {
	r := Resolver{}
	assert.Equal(t, "/blog-images/osce.webp", r.BlogImage("/blog-images/osce.webp"))
	assert.Equal(t, "/blog-images/osce.webp", r.BlogImage("blog-images/osce.webp"))
	assert.Equal(t, "/blog-images/osce.webp", r.BlogImage("osce.webp"))
	assert.Equal(t, "/Team/jane.jpg", r.TeamImage("/Team/jane.jpg"))
	assert.Equal(t, "/gallery/NAI GALLERY/1.jpg", r.GalleryImage("Gallery/NAI GALLERY/1.jpg"))
}

func TestArticleImage(t *testing.T) {
	r := Resolver{}
	assert.Equal(t, "/images/nursing-education.webp", r.ArticleImage(""))
	assert.Equal(t, "/images/hero.webp", r.ArticleImage("/Images/hero.webp"))
	assert.Equal(t, "/images/osce.webp", r.ArticleImage("/images/osce.webp"))
	assert.Equal(t, "/blog-images/cover.webp", r.ArticleImage("cover.webp"))
	assert.Equal(t, "/blog-images/2025/cover.webp", r.ArticleImage("2025/cover.webp"))
	assert.Equal(t, "https://x.test/a.png", r.ArticleImage("https://x.test/a.png"))
}

func TestValidBucket(t *testing.T) {
	assert.True(t, ValidBucket("Team"))
	assert.False(t, ValidBucket("team"))
	assert.False(t, ValidBucket("../etc"))
}

func TestPath(t *testing.T) {
	r := Resolver{BaseURL: "https://cdn.example.com"}
	assert.Equal(t, "https://cdn.example.com/Team/Jane Doe.jpg", r.Path("/Team/Jane Doe.jpg"))
	assert.Equal(t, "https://cdn.example.com/gallery/NAI GALLERY/Students/A.webp", r.Path("/Gallery/NAI GALLERY/Students/A.webp"))
	assert.Equal(t, "https://cdn.example.com/images/nai-logo.webp", r.Path("/images/nai-logo.webp"))
	assert.Equal(t, "https://cdn.example.com/images/logo.svg", r.Path("logo.svg"))
	assert.Equal(t, "", r.Path(""))
}
