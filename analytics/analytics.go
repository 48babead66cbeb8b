// Package analytics records cookie-free page views and engagement events
// (WhatsApp taps, calls, shares, copies, enrolments, leads) in SQLite.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Engagement event names.
const (
	EventWhatsApp = "whatsapp"
	EventCall     = "call"
	EventShare    = "share"
	EventCopy     = "copy"
	EventEnrol    = "enrol"
	EventLead     = "lead"
)

var knownEvents = map[string]bool{
	EventWhatsApp: true,
	EventCall:     true,
	EventShare:    true,
	EventCopy:     true,
	EventEnrol:    true,
	EventLead:     true,
}

// KnownEvent reports whether name is an engagement event the site emits.
func KnownEvent(name string) bool {
	return knownEvents[name]
}

var salt struct {
	once  sync.Once
	value string
}

// InitSalt loads the per-installation hashing salt, creating and storing
// one on first run. Call it once at startup, before serving requests.
func InitSalt(ctx context.Context, store *Store) error {
	var initErr error
	salt.once.Do(func() {
		s, err := store.GetSetting(ctx, "hash_salt")
		if err != nil {
			initErr = fmt.Errorf("read hash salt: %w", err)
			return
		}
		if s == "" {
			b := make([]byte, 32)
			if _, err := rand.Read(b); err != nil {
				initErr = fmt.Errorf("generate salt: %w", err)
				return
			}
			s = hex.EncodeToString(b)
			if err := store.SetSetting(ctx, "hash_salt", s); err != nil {
				initErr = fmt.Errorf("store hash salt: %w", err)
				return
			}
		}
		salt.value = s
	})
	return initErr
}

func hash16(parts ...string) string {
	h := sha256.New()
	h.Write([]byte(salt.value))
	h.Write([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// HashIP returns a salted, truncated hash of ip.
func HashIP(ip string) string {
	return hash16(ip)
}

// VisitorID identifies a visitor by IP and user agent without storing either.
func VisitorID(ip, userAgent string) string {
	return hash16(ip, userAgent)
}

// Visit is one human page view.
type Visit struct {
	VisitorID   string
	IPHash      string
	Browser     string
	OS          string
	Device      string
	Path        string
	Referrer    string
	ScreenSize  string
	Timestamp   time.Time
	DurationSec int
}

// BotVisit is one crawler page view.
type BotVisit struct {
	BotName   string
	IPHash    string
	UserAgent string
	Path      string
	Timestamp time.Time
}

// Event is one engagement action, such as opening WhatsApp from a page.
type Event struct {
	Name      string
	VisitorID string
	Path      string
	Label     string
	Timestamp time.Time
}

// Stats is the dashboard summary for a period.
type Stats struct {
	Period         string          `json:"period"`
	UniqueVisitors int             `json:"unique_visitors"`
	TotalViews     int             `json:"total_views"`
	AvgDuration    int             `json:"avg_duration_sec"`
	TopPages       []PageStat      `json:"top_pages"`
	Browsers       []DimensionStat `json:"browsers"`
	OS             []DimensionStat `json:"os"`
	Devices        []DimensionStat `json:"devices"`
	Referrers      []DimensionStat `json:"referrers"`
	Events         []DimensionStat `json:"events"`
	Bots           []DimensionStat `json:"bots"`
	DailyViews     []DailyView     `json:"daily_views"`
}

// PageStat counts views of one path.
type PageStat struct {
	Path  string `json:"path"`
	Views int    `json:"views"`
}

// DimensionStat counts one value of a dimension (browser, event name...).
type DimensionStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DailyView counts views in one day.
type DailyView struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

// ParseUserAgent classifies ua into browser, OS and device names.
func ParseUserAgent(ua string) (browser, os, device string) {
	ua = strings.ToLower(ua)

	// Edge and Opera UAs also mention Chrome, and Chrome mentions Safari.
	switch {
	case strings.Contains(ua, "firefox"), strings.Contains(ua, "fxios"):
		browser = "Firefox"
	case strings.Contains(ua, "opr/"), strings.Contains(ua, "opera"):
		browser = "Opera"
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "samsungbrowser"):
		browser = "Samsung Internet"
	case strings.Contains(ua, "chrome"), strings.Contains(ua, "crios"):
		browser = "Chrome"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	default:
		browser = "Other"
	}

	// Android UAs contain "linux".
	switch {
	case strings.Contains(ua, "windows"):
		os = "Windows"
	case strings.Contains(ua, "android"):
		os = "Android"
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"):
		os = "iOS"
	case strings.Contains(ua, "macintosh"), strings.Contains(ua, "mac os"):
		os = "macOS"
	case strings.Contains(ua, "linux"):
		os = "Linux"
	default:
		os = "Other"
	}

	// iPad UAs contain "mobile".
	switch {
	case strings.Contains(ua, "tablet"), strings.Contains(ua, "ipad"):
		device = "Tablet"
	case strings.Contains(ua, "mobile"):
		device = "Mobile"
	default:
		device = "Desktop"
	}
	return
}

// botNames maps UA fragments to crawler names, most specific first.
var botNames = []struct {
	pattern string
	name    string
}{
	{"googlebot", "Googlebot"},
	{"bingbot", "Bingbot"},
	{"yandex", "Yandex"},
	{"baiduspider", "Baidu"},
	{"duckduckbot", "DuckDuckBot"},
	{"facebookexternalhit", "Facebook"},
	{"whatsapp", "WhatsApp"},
	{"twitterbot", "Twitterbot"},
	{"linkedinbot", "LinkedIn"},
	{"ahrefsbot", "Ahrefs"},
	{"semrushbot", "SEMrush"},
	{"gptbot", "GPTBot"},
	{"slurp", "Yahoo Slurp"},
	{"crawler", "Generic Crawler"},
	{"spider", "Generic Spider"},
	{"bot", "Other Bot"},
}

// IsBot reports whether ua looks like a crawler or link previewer.
func IsBot(ua string) bool {
	return ExtractBotName(ua) != ""
}

// ExtractBotName names the crawler in ua, or returns "" for browsers.
func ExtractBotName(ua string) string {
	ua = strings.ToLower(ua)
	for _, b := range botNames {
		if strings.Contains(ua, b.pattern) {
			return b.name
		}
	}
	if strings.Contains(ua, "crawl") || strings.Contains(ua, "scrape") {
		return "Generic Crawler"
	}
	return ""
}

var searchEngines = []struct {
	fragment string
	name     string
}{
	{"google.", "Google"},
	{"bing.", "Bing"},
	{"duckduckgo.", "DuckDuckGo"},
	{"yahoo.", "Yahoo"},
	{"facebook.", "Facebook"},
	{"instagram.", "Instagram"},
	{"youtube.", "YouTube"},
}

// CleanReferrer reduces a referrer URL to a source name or host.
func CleanReferrer(ref string) string {
	if ref == "" {
		return "Direct"
	}
	lower := strings.ToLower(ref)
	for _, s := range searchEngines {
		if strings.Contains(lower, s.fragment) {
			return s.name
		}
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return "Other"
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
