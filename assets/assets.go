// Package assets resolves public image URLs in the storage buckets.
package assets

import "strings"

// Storage buckets.
const (
	BlogImages = "blog-images"
	Gallery    = "gallery"
	Images     = "images"
	Team       = "Team"
)

// Buckets lists the known buckets.
var Buckets = []string{BlogImages, Gallery, Images, Team}

// prefixes are folder names older content uses in front of file names,
// per bucket.
var prefixes = map[string][]string{
	BlogImages: {"blog-images/"},
	Gallery:    {"Gallery/"},
	Images:     {"Images/"},
	Team:       {"Team/"},
}

// Resolver builds public URLs. With an empty BaseURL, URLs are
// site-relative ("/<bucket>/<name>") and served from the static dir.
type Resolver struct {
	BaseURL string
}

// ValidBucket reports whether name is a known bucket.
func ValidBucket(name string) bool {
	for _, b := range Buckets {
		if b == name {
			return true
		}
	}
	return false
}

// URL is the public URL of name in bucket. Absolute http(s) names are
// returned unchanged.
func (r Resolver) URL(bucket, name string) string {
	if isAbsolute(name) {
		return name
	}
	name = strings.TrimPrefix(name, "/")
	return strings.TrimSuffix(r.BaseURL, "/") + "/" + bucket + "/" + name
}

// Clean strips a leading slash and the bucket's legacy folder prefix.
func Clean(bucket, name string) string {
	name = strings.TrimPrefix(name, "/")
	for _, p := range prefixes[bucket] {
		name = strings.TrimPrefix(name, p)
	}
	return name
}

// BlogImage is the URL of a blog image, with or without its folder.
func (r Resolver) BlogImage(name string) string {
	if isAbsolute(name) {
		return name
	}
	return r.URL(BlogImages, Clean(BlogImages, name))
}

// TeamImage is the URL of a team photo.
func (r Resolver) TeamImage(name string) string {
	if isAbsolute(name) {
		return name
	}
	return r.URL(Team, Clean(Team, name))
}

// GalleryImage is the URL of a gallery photo.
func (r Resolver) GalleryImage(name string) string {
	if isAbsolute(name) {
		return name
	}
	return r.URL(Gallery, Clean(Gallery, name))
}

// Image is the URL of a general site image.
func (r Resolver) Image(name string) string {
	if isAbsolute(name) {
		return name
	}
	return r.URL(Images, Clean(Images, name))
}

// ArticleImage resolves an article's featured image, which may be a bare
// blog image name, a bucket path such as "/images/x.webp", or an absolute
// URL. Empty names fall back to the default article image.
func (r Resolver) ArticleImage(name string) string {
	switch {
	case name == "":
		return r.Image(DefaultArticleImage)
	case isAbsolute(name):
		return name
	}
	if bucket, rest, ok := splitBucket(name); ok {
		return r.URL(bucket, rest)
	}
	return r.BlogImage(name)
}

// Path resolves a catalog image path such as "/Team/photo.jpg". Paths that
// do not start with a bucket are treated as site images.
func (r Resolver) Path(name string) string {
	if name == "" || isAbsolute(name) {
		return name
	}
	if bucket, rest, ok := splitBucket(name); ok {
		return r.URL(bucket, rest)
	}
	return r.Image(name)
}

// splitBucket splits "/<bucket>/<rest>", accepting legacy folder names.
func splitBucket(name string) (string, string, bool) {
	first, rest, found := strings.Cut(strings.TrimPrefix(name, "/"), "/")
	if !found {
		return "", "", false
	}
	for _, b := range Buckets {
		if first == b {
			return b, rest, true
		}
		for _, p := range prefixes[b] {
			if first+"/" == p {
				return b, rest, true
			}
		}
	}
	return "", "", false
}

// DefaultArticleImage is used when an article has no featured image.
const DefaultArticleImage = "nursing-education.webp"

func isAbsolute(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
