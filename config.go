package naisite

import (
	"time"

	"go.uber.org/zap"

	"github.com/nurseassist/naisite/content"
	"github.com/nurseassist/naisite/leads"
)

// SiteConfig holds all configuration for the site. Organization details
// (name, phone, address) live in the content catalog, not here.
type SiteConfig struct {
	URL  string // Canonical URL; overrides the catalog's site URL when set
	Addr string // Listen address (default ":3000")

	DatabasePath string // SQLite path (default "data/site.db")

	AnalyticsEnabled       bool
	AnalyticsDatabasePath  string // Analytics SQLite path (default "data/analytics.db")
	AnalyticsRetentionDays int    // default 365

	AdminPassword   string // Required: admin login password
	SessionSecret   string // Required: session encryption secret
	ChallengeSecret string // Form challenge signing key (default SessionSecret)
	CookieSecure    bool   // Set true for HTTPS

	AssetBaseURL    string        // Public bucket host; empty serves buckets from the static dir
	ArticleCacheTTL time.Duration // default 5min

	SMTP leads.SMTPConfig
}

func (c *SiteConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/site.db"
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
	if c.AnalyticsRetentionDays == 0 {
		c.AnalyticsRetentionDays = 365
	}
	if c.ArticleCacheTTL == 0 {
		c.ArticleCacheTTL = 5 * time.Minute
	}
	if c.ChallengeSecret == "" {
		c.ChallengeSecret = c.SessionSecret
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets and bucket images (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithCatalogSource serves content from src instead of the embedded catalog.
func WithCatalogSource(src *content.Source) Option {
	return func(a *App) {
		a.Catalog = src
	}
}

// WithNotifier sets who is told about new leads. Without it, leads are
// emailed when SMTP is configured and otherwise only stored.
func WithNotifier(n leads.Notifier) Option {
	return func(a *App) {
		a.notifier = n
	}
}
