package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppURL(t *testing.T) {
	tests := []struct {
		name   string
		number string
		text   string
		want   string
	}{
		{"strips formatting", "+61 478 320 397", "", "https://wa.me/61478320397"},
		{"escapes text", "+61478320397", "Hi NAI Team, I'm keen", "https://wa.me/61478320397?text=Hi%20NAI%20Team%2C%20I%27m%20keen"},
		{"dashes", "+61-478-320-397", "a&b", "https://wa.me/61478320397?text=a%26b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WhatsAppURL(tt.number, tt.text))
		})
	}
}

func TestTelURL(t *testing.T) {
	assert.Equal(t, "tel:+61478320397", TelURL("+61 478 320 397"))
}

func TestShareLinks(t *testing.T) {
	links := ShareLinks("https://example.com/blogs/news/a b", "OSCE tips")
	assert.Len(t, links, 4)
	assert.Equal(t, "WhatsApp", links[0].Name)
	assert.Equal(t, "https://wa.me/?text=OSCE%20tips%20https%3A%2F%2Fexample.com%2Fblogs%2Fnews%2Fa%20b", links[0].URL)
	assert.Equal(t, "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Fexample.com%2Fblogs%2Fnews%2Fa%20b", links[1].URL)
	assert.Contains(t, links[3].URL, "&text=OSCE%20tips")
}
