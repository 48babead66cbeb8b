package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestProcessScalesWideImages(t *testing.T) {
	img, data, err := Process(pngOf(t, 1600, 900), "Student Gallery 01.PNG")
	require.NoError(t, err)

	assert.Equal(t, "student-gallery-01.jpg", img.Filename)
	assert.Equal(t, MaxImageWidth, img.Width)
	assert.Equal(t, 450, img.Height)
	assert.Equal(t, len(data), img.Size)

	decoded, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, MaxImageWidth, decoded.Bounds().Dx())
}

func TestProcessKeepsSmallImages(t *testing.T) {
	img, _, err := Process(pngOf(t, 320, 200), "x.png")
	require.NoError(t, err)
	assert.Equal(t, 320, img.Width)
	assert.Equal(t, 200, img.Height)
}

func TestProcessRejectsGarbage(t *testing.T) {
	_, _, err := Process(bytes.NewBufferString("not an image"), "x.png")
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "ceo-mr-thomas.jpg", Filename("CEO Mr. Thomas.avif"))
	assert.Equal(t, "image.jpg", Filename("!!!.png"))
}

func TestUnique(t *testing.T) {
	taken := map[string]bool{"a.jpg": true, "a-2.jpg": true}
	has := func(s string) bool { return taken[s] }
	assert.Equal(t, "a-3.jpg", Unique("a.jpg", has))
	assert.Equal(t, "b.jpg", Unique("b.jpg", has))
}
