// Package naisite serves the Nurse Assist International website: course
// catalog, program and FAQ pages, testimonials, team bios, news articles,
// lead capture forms and an admin area, built on Echo and SQLite.
//
// Pages are rendered through the views.Funcs struct, so an embedding
// program can replace any page with its own templ component.
package naisite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nurseassist/naisite/analytics"
	"github.com/nurseassist/naisite/assets"
	"github.com/nurseassist/naisite/content"
	"github.com/nurseassist/naisite/leads"
	"github.com/nurseassist/naisite/navigation"
	"github.com/nurseassist/naisite/ratelimit"
	"github.com/nurseassist/naisite/views"
)

// App is the central application. It wires together the store, cache,
// catalog, handlers, middleware and views.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Cache   *ArticleCache
	Views   views.Funcs
	Catalog *content.Source
	Assets  assets.Resolver
	Logger  *zap.Logger

	analyticsStore *analytics.Store
	analytics      *analytics.Handler
	stopCleanup    func()
	loginLimiter   *LoginLimiter
	formLimiter    *ratelimit.Keyed
	challenger     *leads.Challenger
	notifier       leads.Notifier
	nav            *navigation.Memo
	customRoutes   []func(*App)
	staticDir      string
	initialized    bool
}

// New creates an App with the given configuration and views.
func New(cfg SiteConfig, v views.Funcs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     v,
		Assets:    assets.Resolver{BaseURL: cfg.AssetBaseURL},
		staticDir: "public",
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		a.Logger = zap.NewNop()
	}
	return a
}

// Init opens the databases, seeds articles from the catalog and registers
// middleware and routes. Start calls it; tests call it directly and drive
// a.Echo with httptest.
func (a *App) Init(ctx context.Context) error {
	if a.initialized {
		return nil
	}
	if a.Config.AdminPassword == "" {
		return errors.New("naisite: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return errors.New("naisite: SessionSecret is required")
	}

	if a.Catalog == nil {
		c, err := content.Default()
		if err != nil {
			return fmt.Errorf("naisite: load catalog: %w", err)
		}
		a.Catalog = content.NewSource(c)
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("naisite: init store: %w", err)
	}
	a.Store = store
	added, err := a.Store.SeedArticles(ctx, a.Catalog.Catalog().Articles)
	if err != nil {
		return fmt.Errorf("naisite: seed articles: %w", err)
	}
	if added > 0 {
		a.Logger.Info("seeded articles", zap.Int("count", added))
	}

	a.Cache = NewArticleCache(a.Store, a.Config.ArticleCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.formLimiter = ratelimit.New(5, time.Minute)
	a.challenger = leads.NewChallenger([]byte(a.Config.ChallengeSecret))
	a.nav = navigation.NewMemo(256)
	if a.notifier == nil {
		a.notifier = leads.NopNotifier{}
		if a.Config.SMTP.Enabled() {
			a.notifier = leads.NewSMTPNotifier(a.Config.SMTP)
		}
	}

	if a.Config.AnalyticsEnabled {
		as, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("naisite: init analytics: %w", err)
		}
		a.analyticsStore = as
		if err := analytics.InitSalt(ctx, as); err != nil {
			return fmt.Errorf("naisite: init analytics salt: %w", err)
		}
		a.analytics = analytics.NewHandler(as, a.Logger)
		a.stopCleanup = as.StartCleanupScheduler(a.Config.AnalyticsRetentionDays, 24*time.Hour, a.Logger)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.initialized = true
	return nil
}

// Start initializes the app and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Init(context.Background()); err != nil {
		return err
	}
	a.Logger.Info("listening", zap.String("addr", a.Config.Addr))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	embedded, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.StripPrefix("/public/", http.FileServer(http.FS(embedded)))
	e.GET("/public/site.js", echo.WrapHandler(embeddedHandler))
	e.GET("/public/site.css", echo.WrapHandler(embeddedHandler))

	e.Static("/public", a.staticDir)
	for _, b := range assets.Buckets {
		e.Static("/"+b, a.staticDir+"/"+b)
	}
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/courses", a.handleCourses)
	e.GET("/courses/:slug/enrol", a.handleEnrol)
	for _, p := range []string{"nclex-ngn", "osce-preparation", "oba"} {
		e.GET("/pages/"+p, a.handleProgram(p))
	}
	e.GET("/pages/osce-faqs", a.handleFAQ("osce"))
	e.GET("/pages/nclex-ngn-faq", a.handleFAQ("nclex-ngn"))
	e.GET("/pages/testimonials", a.handleTestimonials)
	e.GET("/pages/team", a.handleTeam)
	e.GET("/pages/gallery", a.handleGallery)
	e.GET("/pages/videos", a.handleVideos)
	e.GET("/pages/about", a.handleAbout)
	e.GET("/pages/contact", a.handleContact)
	e.POST("/pages/contact", a.handleContactSubmit)
	e.GET("/pages/referral-form", a.handleReferral)
	e.POST("/pages/referral-form", a.handleReferralSubmit)
	e.GET("/pages/blogs", redirectTo("/blogs/news"))
	e.GET("/blogs", redirectTo("/blogs/news"))
	e.GET("/contact", redirectTo("/pages/contact"))
	e.GET("/blogs/news", a.handleNews)
	e.GET("/blogs/news/:slug", a.handleArticle)

	e.GET("/partials/video", a.handleVideo)
	e.GET("/partials/chat", a.handleChat)
	e.GET("/go/whatsapp", a.handleWhatsApp)
	e.GET("/go/call", a.handleCall)

	e.GET("/admin", a.handleAdmin)
	e.POST("/admin/login", a.handleAdminLogin)
	e.POST("/admin/logout", handleAdminLogout)
	e.GET("/admin/article/:slug", a.handleAdminArticle)
	e.POST("/admin/save", a.handleAdminSave)
	e.DELETE("/admin/article/:slug", a.handleAdminDelete)
	e.GET("/admin/images", a.handleImageList)
	e.POST("/admin/images/upload", a.handleImageUpload)
	e.DELETE("/admin/images/:filename", a.handleImageDelete)
	e.GET("/admin/leads", a.handleAdminLeads)

	if a.analytics != nil {
		a.analytics.RegisterRoutes(e, requireAdmin)
		e.GET("/admin/analytics", a.handleAdminAnalytics, requireAdmin)
	}
}

// Close stops background work and closes the databases.
func (a *App) Close() error {
	if a.stopCleanup != nil {
		a.stopCleanup()
	}
	if a.analytics != nil {
		a.analytics.Stop()
	}
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.formLimiter != nil {
		a.formLimiter.Stop()
	}
	var errs []error
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	if a.analyticsStore != nil {
		errs = append(errs, a.analyticsStore.Close())
	}
	return errors.Join(errs...)
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or panics if empty.
func MustEnv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("naisite: required environment variable " + key + " is not set")
	}
	return v
}
