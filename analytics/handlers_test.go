package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36"

func newTestHandler(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()
	h := NewHandler(newTestStore(t), zap.NewNop())
	t.Cleanup(h.Stop)
	e := echo.New()
	pass := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	h.RegisterRoutes(e, pass)
	return h, e
}

func collect(e *echo.Echo, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/analytics/collect", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("User-Agent", browserUA)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func stats(t *testing.T, h *Handler) *Stats {
	t.Helper()
	resp, err := h.Summary(context.Background(), "week")
	require.NoError(t, err)
	return resp.Stats
}

func TestCollectPageView(t *testing.T) {
	h, e := newTestHandler(t)

	rec := collect(e, `{"path":"/courses","referrer":"https://www.google.com/","screen_size":"390x844"}`, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	st := stats(t, h)
	assert.Equal(t, 1, st.TotalViews)
	assert.Equal(t, []DimensionStat{{Name: "Google", Count: 1}}, st.Referrers)
	assert.Equal(t, []DimensionStat{{Name: "Chrome", Count: 1}}, st.Browsers)
}

func TestCollectDurationBeaconUpdatesVisit(t *testing.T) {
	h, e := newTestHandler(t)

	collect(e, `{"path":"/"}`, nil)
	rec := collect(e, `{"path":"/","duration_sec":75}`, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	st := stats(t, h)
	assert.Equal(t, 1, st.TotalViews)
	assert.Equal(t, 75, st.AvgDuration)
}

func TestCollectEvent(t *testing.T) {
	h, e := newTestHandler(t)

	rec := collect(e, `{"path":"/blogs/news/osce-tips","event":"share","label":"facebook"}`, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	st := stats(t, h)
	assert.Zero(t, st.TotalViews)
	assert.Equal(t, []DimensionStat{{Name: EventShare, Count: 1}}, st.Events)
}

func TestCollectRejectsInvalid(t *testing.T) {
	_, e := newTestHandler(t)

	tests := map[string]string{
		"no path":          `{"referrer":"x"}`,
		"unknown event":    `{"path":"/","event":"purchase"}`,
		"negative seconds": `{"path":"/","duration_sec":-1}`,
		"long path":        `{"path":"/` + strings.Repeat("a", maxPathLen) + `"}`,
		"malformed":        `{"path":`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, collect(e, body, nil).Code)
		})
	}
}

func TestCollectHonoursDoNotTrack(t *testing.T) {
	h, e := newTestHandler(t)

	rec := collect(e, `{"path":"/"}`, map[string]string{"DNT": "1"})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, stats(t, h).TotalViews)
}

func TestCollectSeparatesBots(t *testing.T) {
	h, e := newTestHandler(t)

	collect(e, `{"path":"/"}`, map[string]string{"User-Agent": "Mozilla/5.0 (compatible; bingbot/2.0)"})

	st := stats(t, h)
	assert.Zero(t, st.TotalViews)
	assert.Equal(t, []DimensionStat{{Name: "Bingbot", Count: 1}}, st.Bots)
}

func TestCollectRateLimited(t *testing.T) {
	_, e := newTestHandler(t)

	var last int
	for range 61 {
		last = collect(e, `{"path":"/"}`, nil).Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestTrack(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/go/whatsapp?text=hi", nil)
	req.Header.Set("User-Agent", browserUA)
	h.Track(e.NewContext(req, httptest.NewRecorder()), EventWhatsApp, "/courses", "hi")

	bot := httptest.NewRequest(http.MethodGet, "/go/call", nil)
	bot.Header.Set("User-Agent", "Googlebot/2.1")
	h.Track(e.NewContext(bot, httptest.NewRecorder()), EventCall, "/", "")

	assert.Equal(t, []DimensionStat{{Name: EventWhatsApp, Count: 1}}, stats(t, h).Events)
}

func TestGetStatsJSON(t *testing.T) {
	_, e := newTestHandler(t)
	collect(e, `{"path":"/"}`, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/analytics/api/stats?period=month", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "month", resp.Period)
	assert.Equal(t, 1, resp.Stats.TotalViews)
	assert.Equal(t, 1, resp.Realtime)
}

func TestParsePeriod(t *testing.T) {
	now := time.Date(2025, 10, 7, 15, 30, 0, 0, time.UTC)
	tomorrow := time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		name string
		days int
	}{
		{"today", "today", 1},
		{"week", "week", 7},
		{"MONTH", "month", 30},
		{"year", "year", 365},
		{"", "week", 7},
		{"fortnight", "week", 7},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, from, to := ParsePeriod(tt.in, now)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tomorrow, to)
			assert.Equal(t, tomorrow.AddDate(0, 0, -tt.days), from)
		})
	}
}
