package analytics

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "analytics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, InitSalt(context.Background(), s))
	return s
}

func TestSettings(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	v, err := s.GetSetting(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, s.SetSetting(ctx, "k", "one"))
	require.NoError(t, s.SetSetting(ctx, "k", "two"))
	v, err = s.GetSetting(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", v)
}

func TestGetStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	visits := []Visit{
		{VisitorID: "v1", Browser: "Chrome", OS: "Android", Device: "Mobile", Path: "/", Referrer: "Google"},
		{VisitorID: "v1", Browser: "Chrome", OS: "Android", Device: "Mobile", Path: "/courses", Referrer: "Direct"},
		{VisitorID: "v2", Browser: "Safari", OS: "iOS", Device: "Mobile", Path: "/", Referrer: "Google"},
	}
	for _, v := range visits {
		v.Timestamp = now
		require.NoError(t, s.SaveVisit(ctx, v))
	}
	require.NoError(t, s.UpdateVisitDuration(ctx, "v2", "/", 40))
	require.NoError(t, s.SaveEvent(ctx, Event{Name: EventWhatsApp, VisitorID: "v1", Path: "/", Timestamp: now}))
	require.NoError(t, s.SaveEvent(ctx, Event{Name: EventWhatsApp, VisitorID: "v2", Path: "/courses", Timestamp: now}))
	require.NoError(t, s.SaveEvent(ctx, Event{Name: EventCall, VisitorID: "v2", Path: "/", Timestamp: now}))
	require.NoError(t, s.SaveBotVisit(ctx, BotVisit{BotName: "Googlebot", Path: "/", Timestamp: now}))

	// Outside the window.
	require.NoError(t, s.SaveVisit(ctx, Visit{VisitorID: "old", Path: "/", Timestamp: now.AddDate(0, 0, -40)}))

	st, err := s.GetStats(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 3, st.TotalViews)
	assert.Equal(t, 2, st.UniqueVisitors)
	assert.Equal(t, 40, st.AvgDuration)
	require.NotEmpty(t, st.TopPages)
	assert.Equal(t, PageStat{Path: "/", Views: 2}, st.TopPages[0])
	assert.Equal(t, []DimensionStat{{Name: "Chrome", Count: 2}, {Name: "Safari", Count: 1}}, st.Browsers)
	assert.Equal(t, []DimensionStat{{Name: "whatsapp", Count: 2}, {Name: "call", Count: 1}}, st.Events)
	assert.Equal(t, []DimensionStat{{Name: "Googlebot", Count: 1}}, st.Bots)
	require.Len(t, st.DailyViews, 1)
	assert.Equal(t, now.Format("2006-01-02"), st.DailyViews[0].Date)
}

func TestGetStatsEmptyHasNoNilSlices(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	st, err := s.GetStats(context.Background(), now.Add(-time.Hour), now)
	require.NoError(t, err)
	assert.NotNil(t, st.TopPages)
	assert.NotNil(t, st.Events)
	assert.NotNil(t, st.DailyViews)
	assert.Zero(t, st.TotalViews)
}

func TestCleanupOld(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.SaveVisit(ctx, Visit{VisitorID: "old", Path: "/", Timestamp: now.AddDate(0, 0, -100)}))
	require.NoError(t, s.SaveVisit(ctx, Visit{VisitorID: "new", Path: "/", Timestamp: now}))
	require.NoError(t, s.SaveEvent(ctx, Event{Name: EventCall, Path: "/", Timestamp: now.AddDate(0, 0, -100)}))

	require.NoError(t, s.CleanupOld(ctx, 90))

	st, err := s.GetStats(ctx, now.AddDate(-1, 0, 0), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, st.TotalViews)
	assert.Empty(t, st.Events)
}

func TestRealtimeVisitors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.SaveVisit(ctx, Visit{VisitorID: "a", Path: "/", Timestamp: now}))
	require.NoError(t, s.SaveVisit(ctx, Visit{VisitorID: "b", Path: "/", Timestamp: now.Add(-time.Hour)}))

	n, err := s.RealtimeVisitors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCleanupSchedulerStops(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s, err := NewStore(filepath.Join(t.TempDir(), "analytics.db"))
	require.NoError(t, err)
	stop := s.StartCleanupScheduler(90, 10*time.Millisecond, zap.NewNop())
	time.Sleep(30 * time.Millisecond)
	stop()
	stop()
	require.NoError(t, s.Close())
}
