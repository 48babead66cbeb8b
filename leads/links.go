// Package leads builds the contact deep links (WhatsApp, phone, share
// sheets) and handles the contact and referral forms.
package leads

import (
	"net/url"
	"strings"
	"unicode"
)

// WhatsAppURL links to a WhatsApp chat with number, prefilled with text
// when it is non-empty. Everything except digits is dropped from number.
func WhatsAppURL(number, text string) string {
	var digits strings.Builder
	for _, r := range number {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	u := "https://wa.me/" + digits.String()
	if text != "" {
		u += "?text=" + escapeComponent(text)
	}
	return u
}

// TelURL is the tel: link for number.
func TelURL(number string) string {
	return "tel:" + strings.ReplaceAll(number, " ", "")
}

// escapeComponent percent-encodes s with %20 for spaces, as browsers do for
// URI components.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ShareLink is one share-sheet target.
type ShareLink struct {
	Name string
	URL  string
}

// ShareLinks returns the share targets for a page. They stand in for the
// native share sheet when the browser has none.
func ShareLinks(pageURL, title string) []ShareLink {
	u := escapeComponent(pageURL)
	t := escapeComponent(title)
	return []ShareLink{
		{Name: "WhatsApp", URL: "https://wa.me/?text=" + escapeComponent(title+" "+pageURL)},
		{Name: "Facebook", URL: "https://www.facebook.com/sharer/sharer.php?u=" + u},
		{Name: "LinkedIn", URL: "https://www.linkedin.com/sharing/share-offsite/?url=" + u},
		{Name: "X", URL: "https://twitter.com/intent/tweet?url=" + u + "&text=" + t},
	}
}
