package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name, ua            string
		browser, os, device string
	}{
		{"chrome desktop",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
			"Chrome", "Windows", "Desktop"},
		{"edge",
			"Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 Chrome/120.0 Safari/537.36 Edg/120.0",
			"Edge", "Windows", "Desktop"},
		{"safari iphone",
			"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Version/17.0 Mobile/15E148 Safari/604.1",
			"Safari", "iOS", "Mobile"},
		{"ipad",
			"Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Version/17.0 Mobile/15E148 Safari/604.1",
			"Safari", "iOS", "Tablet"},
		{"samsung android",
			"Mozilla/5.0 (Linux; Android 13; SM-S911B) AppleWebKit/537.36 SamsungBrowser/23.0 Chrome/115.0 Mobile Safari/537.36",
			"Samsung Internet", "Android", "Mobile"},
		{"firefox linux",
			"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			"Firefox", "Linux", "Desktop"},
		{"empty", "", "Other", "Other", "Desktop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, o, d := ParseUserAgent(tt.ua)
			assert.Equal(t, tt.browser, b)
			assert.Equal(t, tt.os, o)
			assert.Equal(t, tt.device, d)
		})
	}
}

func TestExtractBotName(t *testing.T) {
	assert.Equal(t, "Googlebot", ExtractBotName("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"))
	assert.Equal(t, "WhatsApp", ExtractBotName("WhatsApp/2.23.20.0"))
	assert.Equal(t, "Facebook", ExtractBotName("facebookexternalhit/1.1"))
	assert.Equal(t, "Other Bot", ExtractBotName("SomeNewBot/0.1"))
	assert.Equal(t, "Generic Crawler", ExtractBotName("site-crawling-agent"))
	assert.Equal(t, "", ExtractBotName("Mozilla/5.0 (X11; Linux x86_64) Firefox/121.0"))

	assert.True(t, IsBot("bingbot/2.0"))
	assert.False(t, IsBot("Mozilla/5.0 (Macintosh) Safari/605.1.15"))
}

func TestCleanReferrer(t *testing.T) {
	assert.Equal(t, "Direct", CleanReferrer(""))
	assert.Equal(t, "Google", CleanReferrer("https://www.google.com.au/search?q=osce"))
	assert.Equal(t, "Facebook", CleanReferrer("https://m.facebook.com/"))
	assert.Equal(t, "ahpra.gov.au", CleanReferrer("https://www.ahpra.gov.au/registration"))
	assert.Equal(t, "Other", CleanReferrer("not a url"))
}

func TestKnownEvent(t *testing.T) {
	for _, name := range []string{EventWhatsApp, EventCall, EventShare, EventCopy, EventEnrol, EventLead} {
		assert.True(t, KnownEvent(name), name)
	}
	assert.False(t, KnownEvent("purchase"))
	assert.False(t, KnownEvent(""))
}

func TestVisitorIDIsStableAndOpaque(t *testing.T) {
	a := VisitorID("203.0.113.9", "ua")
	assert.Equal(t, a, VisitorID("203.0.113.9", "ua"))
	assert.NotEqual(t, a, VisitorID("203.0.113.10", "ua"))
	assert.Len(t, a, 16)
	assert.NotContains(t, a, "203")
}
