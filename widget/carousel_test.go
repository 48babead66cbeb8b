package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarouselWraparound(t *testing.T) {
	c := Carousel{N: 31}.Select(30)
	assert.Equal(t, 0, c.Next().Index)

	c = c.Select(0)
	assert.Equal(t, 30, c.Prev().Index)

	for i := 0; i < 31; i++ {
		c = c.Next()
	}
	assert.Equal(t, 0, c.Index, "N steps forward return to the start")
}

func TestCarouselEmpty(t *testing.T) {
	c := Carousel{}
	assert.Equal(t, c, c.Next())
	assert.Equal(t, c, c.Prev())
	assert.False(t, c.Select(0).Open)
}

func TestCarouselSelectAndClose(t *testing.T) {
	c := Carousel{N: 3}.Select(2)
	assert.True(t, c.Open)
	assert.Equal(t, 2, c.Index)

	c = c.Close()
	assert.False(t, c.Open)
}

func TestParseCarousel(t *testing.T) {
	assert.Equal(t, Carousel{N: 4, Index: 3, Open: true}, ParseCarousel(4, "3"))
	assert.Equal(t, Carousel{N: 4}, ParseCarousel(4, "4"))
	assert.Equal(t, Carousel{N: 4}, ParseCarousel(4, ""))
}

func TestRevealOnlyGrows(t *testing.T) {
	r := NewReveal(2)
	assert.Equal(t, 2, r.Count())

	r.Mark(5)
	r.Mark(5)
	r.Mark(1)
	assert.Equal(t, 3, r.Count())
	assert.True(t, r.Seen(5))
	assert.False(t, r.Seen(3))

	var zero Reveal
	zero.Mark(0)
	assert.True(t, zero.Seen(0))
}

func TestShownBatch(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 9},
		{"3", 9},
		{"abc", 9},
		{"10", 15},
		{"15", 15},
		{"16", 21},
		{"100", 31},
		{"31", 31},
		{"9223372036854775807", 31},
		{"-9223372036854775808", 9},
		{"99999999999999999999", 9},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ShownBatch(tt.raw, 9, 6, 31))
		})
	}
}
