package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/draw"

	"github.com/nurseassist/naisite/content"
)

const (
	// MaxImageWidth is the width uploads are scaled down to.
	MaxImageWidth = 800
	// MaxUploadSize is the largest accepted upload in bytes.
	MaxUploadSize = 10 << 20
	jpegQuality   = 80
)

// Image is the metadata of an uploaded image.
type Image struct {
	Filename     string
	Bucket       string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}

// Process decodes an image from src, scales it down to MaxImageWidth when
// wider and re-encodes it as JPEG. The returned Image has no bucket set.
func Process(src io.Reader, originalName string) (Image, []byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return Image{}, nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > MaxImageWidth {
		newH := h * MaxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, MaxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w, h = MaxImageWidth, newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Image{}, nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return Image{
		Filename:     Filename(originalName),
		OriginalName: originalName,
		Width:        w,
		Height:       h,
		Size:         buf.Len(),
		UploadedAt:   time.Now().UTC().Format(time.RFC3339),
	}, buf.Bytes(), nil
}

// Filename is the stored name of an upload: the slugified base name with a
// .jpg extension.
func Filename(originalName string) string {
	base := strings.TrimSuffix(originalName, filepath.Ext(originalName))
	slug := content.Slugify(base)
	if slug == "" {
		slug = "image"
	}
	return slug + ".jpg"
}

// Unique returns filename, or filename with a "-N" counter before the
// extension, such that taken reports false for it.
func Unique(filename string, taken func(string) bool) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	candidate := filename
	for n := 2; taken(candidate); n++ {
		candidate = fmt.Sprintf("%s-%d%s", base, n, ext)
	}
	return candidate
}
