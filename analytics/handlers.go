package analytics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nurseassist/naisite/ratelimit"
)

// Handler serves the collect endpoint and the admin stats API.
type Handler struct {
	store   *Store
	logger  *zap.Logger
	limiter *ratelimit.Keyed
	now     func() time.Time
}

// NewHandler creates an analytics handler. Collect is limited to 60
// requests per client IP per minute.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:   store,
		logger:  logger.Named("analytics"),
		limiter: ratelimit.New(60, time.Minute),
		now:     time.Now,
	}
}

// Stop releases the collect limiter.
func (h *Handler) Stop() {
	h.limiter.Stop()
}

// CollectRequest is the body of a beacon sent by site.js. Event is set for
// client-side engagement actions (share, copy); it is empty for page views.
type CollectRequest struct {
	Path        string `json:"path"`
	Referrer    string `json:"referrer"`
	ScreenSize  string `json:"screen_size"`
	UserAgent   string `json:"user_agent"`
	DurationSec int    `json:"duration_sec"`
	Event       string `json:"event"`
	Label       string `json:"label"`
}

const (
	maxPathLen       = 2048
	maxReferrerLen   = 2048
	maxScreenSizeLen = 32
	maxUserAgentLen  = 512
	maxLabelLen      = 256
	maxDurationSec   = 86400
)

var errEmptyPath = errors.New("path is required")

// Validate checks field lengths and value ranges.
func (r *CollectRequest) Validate() error {
	switch {
	case r.Path == "":
		return errEmptyPath
	case len(r.Path) > maxPathLen:
		return fmt.Errorf("path exceeds %d bytes", maxPathLen)
	case len(r.Referrer) > maxReferrerLen:
		return fmt.Errorf("referrer exceeds %d bytes", maxReferrerLen)
	case len(r.ScreenSize) > maxScreenSizeLen:
		return fmt.Errorf("screen_size exceeds %d bytes", maxScreenSizeLen)
	case len(r.UserAgent) > maxUserAgentLen:
		return fmt.Errorf("user_agent exceeds %d bytes", maxUserAgentLen)
	case len(r.Label) > maxLabelLen:
		return fmt.Errorf("label exceeds %d bytes", maxLabelLen)
	case r.DurationSec < 0 || r.DurationSec > maxDurationSec:
		return fmt.Errorf("duration_sec must be within 0..%d", maxDurationSec)
	case r.Event != "" && !KnownEvent(r.Event):
		return fmt.Errorf("unknown event %q", r.Event)
	}
	return nil
}

// Collect records a page view, a duration beacon or an engagement event.
// It always answers 204 on success so beacons never surface errors.
func (h *Handler) Collect(c echo.Context) error {
	ip := c.RealIP()
	if !h.limiter.Allow(ip) {
		return c.NoContent(http.StatusTooManyRequests)
	}
	if c.Request().Header.Get("DNT") == "1" {
		return c.NoContent(http.StatusNoContent)
	}

	var req CollectRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request")
	}

	ua := req.UserAgent
	if ua == "" {
		ua = c.Request().UserAgent()
	}
	ctx := c.Request().Context()
	now := h.now().UTC()

	if IsBot(ua) {
		if req.Event == "" && req.DurationSec == 0 {
			err := h.store.SaveBotVisit(ctx, BotVisit{
				BotName:   ExtractBotName(ua),
				IPHash:    HashIP(ip),
				UserAgent: ua,
				Path:      req.Path,
				Timestamp: now,
			})
			if err != nil {
				h.logger.Error("save bot visit", zap.Error(err))
			}
		}
		return c.NoContent(http.StatusNoContent)
	}

	visitor := VisitorID(ip, ua)
	switch {
	case req.Event != "":
		err := h.store.SaveEvent(ctx, Event{Name: req.Event, VisitorID: visitor, Path: req.Path, Label: req.Label, Timestamp: now})
		if err != nil {
			h.logger.Error("save event", zap.String("event", req.Event), zap.Error(err))
		}
	case req.DurationSec > 0:
		// Unload beacon: update the visit instead of adding a row.
		if err := h.store.UpdateVisitDuration(ctx, visitor, req.Path, req.DurationSec); err != nil {
			h.logger.Error("update visit duration", zap.Error(err))
		}
	default:
		browser, os, device := ParseUserAgent(ua)
		err := h.store.SaveVisit(ctx, Visit{
			VisitorID:  visitor,
			IPHash:     HashIP(ip),
			Browser:    browser,
			OS:         os,
			Device:     device,
			Path:       req.Path,
			Referrer:   CleanReferrer(req.Referrer),
			ScreenSize: req.ScreenSize,
			Timestamp:  now,
		})
		if err != nil {
			h.logger.Error("save visit", zap.Error(err))
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// Track records a server-side engagement event, such as a /go/whatsapp
// redirect. Bots and DNT requests are ignored. Failures are logged only.
func (h *Handler) Track(c echo.Context, name, path, label string) {
	r := c.Request()
	if r.Header.Get("DNT") == "1" || IsBot(r.UserAgent()) {
		return
	}
	ev := Event{
		Name:      name,
		VisitorID: VisitorID(c.RealIP(), r.UserAgent()),
		Path:      path,
		Label:     label,
		Timestamp: h.now().UTC(),
	}
	if err := h.store.SaveEvent(r.Context(), ev); err != nil {
		h.logger.Error("track event", zap.String("event", name), zap.Error(err))
	}
}

// Periods lists the accepted values of the period parameter.
var Periods = []string{"today", "week", "month", "year"}

// ParsePeriod maps a period name to a [from, to) range ending tomorrow
// at midnight UTC. Unknown names fall back to "week".
func ParsePeriod(period string, now time.Time) (name string, from, to time.Time) {
	now = now.UTC()
	to = now.Add(24 * time.Hour).Truncate(24 * time.Hour)
	days := 7
	switch strings.ToLower(period) {
	case "today":
		return "today", to.AddDate(0, 0, -1), to
	case "month":
		days = 30
	case "year":
		days = 365
	default:
		period = "week"
	}
	return strings.ToLower(period), to.AddDate(0, 0, -days), to
}

// StatsResponse is the JSON body of the stats API.
type StatsResponse struct {
	Stats    *Stats `json:"stats"`
	Period   string `json:"period"`
	Realtime int    `json:"realtime_visitors"`
}

// Summary loads the stats for a named period.
func (h *Handler) Summary(ctx context.Context, period string) (StatsResponse, error) {
	name, from, to := ParsePeriod(period, h.now())
	stats, err := h.store.GetStats(ctx, from, to)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("get stats: %w", err)
	}
	realtime, err := h.store.RealtimeVisitors(ctx)
	if err != nil {
		h.logger.Warn("realtime visitors", zap.Error(err))
	}
	return StatsResponse{Stats: stats, Period: name, Realtime: realtime}, nil
}

// GetStats returns the stats for ?period= as JSON.
func (h *Handler) GetStats(c echo.Context) error {
	resp, err := h.Summary(c.Request().Context(), c.QueryParam("period"))
	if err != nil {
		h.logger.Error("stats", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, resp)
}

// RegisterRoutes mounts the public collect endpoint on e and the stats API
// under /admin/analytics behind auth.
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/api/analytics/collect", h.Collect)

	admin := e.Group("/admin/analytics", auth)
	admin.GET("/api/stats", h.GetStats)
}
