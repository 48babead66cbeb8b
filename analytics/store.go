package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Store persists visits and events in their own SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the analytics database at path.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// Timestamps are written as "2006-01-02 15:04:05.999999999-07:00" so
	// they sort lexically and substr(timestamp, 1, 10) is the UTC day.
	db, err := sql.Open("sqlite", path+"?_time_format=sqlite")
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure analytics db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			visitor_id TEXT NOT NULL,
			ip_hash TEXT NOT NULL,
			browser TEXT NOT NULL,
			os TEXT NOT NULL,
			device TEXT NOT NULL,
			path TEXT NOT NULL,
			referrer TEXT NOT NULL DEFAULT '',
			screen_size TEXT NOT NULL DEFAULT '',
			timestamp DATETIME NOT NULL,
			duration_sec INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp);
		CREATE INDEX IF NOT EXISTS idx_visits_visitor ON visits(visitor_id, path);

		CREATE TABLE IF NOT EXISTS bot_visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			bot_name TEXT NOT NULL,
			ip_hash TEXT NOT NULL,
			user_agent TEXT NOT NULL,
			path TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_bot_visits_timestamp ON bot_visits(timestamp);

		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			visitor_id TEXT NOT NULL,
			path TEXT NOT NULL,
			label TEXT NOT NULL DEFAULT '',
			timestamp DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// GetSetting returns the value for key, or "" when unset.
func (s *Store) GetSetting(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return v, err
}

// SetSetting upserts a setting.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}

// SaveVisit stores a page view.
func (s *Store) SaveVisit(ctx context.Context, v Visit) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits (visitor_id, ip_hash, browser, os, device, path, referrer, screen_size, timestamp, duration_sec)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.VisitorID, v.IPHash, v.Browser, v.OS, v.Device, v.Path, v.Referrer, v.ScreenSize, v.Timestamp.UTC(), v.DurationSec)
	return err
}

// UpdateVisitDuration sets the duration of the visitor's latest view of path.
func (s *Store) UpdateVisitDuration(ctx context.Context, visitorID, path string, sec int) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE visits SET duration_sec = ?
		WHERE id = (SELECT id FROM visits WHERE visitor_id = ? AND path = ? ORDER BY timestamp DESC LIMIT 1)`,
		sec, visitorID, path)
	return err
}

// SaveBotVisit stores a crawler page view.
func (s *Store) SaveBotVisit(ctx context.Context, v BotVisit) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bot_visits (bot_name, ip_hash, user_agent, path, timestamp) VALUES (?, ?, ?, ?, ?)`,
		v.BotName, v.IPHash, v.UserAgent, v.Path, v.Timestamp.UTC())
	return err
}

// SaveEvent stores an engagement event.
func (s *Store) SaveEvent(ctx context.Context, e Event) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (name, visitor_id, path, label, timestamp) VALUES (?, ?, ?, ?, ?)`,
		e.Name, e.VisitorID, e.Path, e.Label, e.Timestamp.UTC())
	return err
}

// GetStats summarizes [from, to). The queries run concurrently.
func (s *Store) GetStats(ctx context.Context, from, to time.Time) (*Stats, error) {
	from, to = from.UTC(), to.UTC()
	st := &Stats{
		Period:     from.Format("2006-01-02") + " to " + to.Format("2006-01-02"),
		TopPages:   []PageStat{},
		Browsers:   []DimensionStat{},
		OS:         []DimensionStat{},
		Devices:    []DimensionStat{},
		Referrers:  []DimensionStat{},
		Events:     []DimensionStat{},
		Bots:       []DimensionStat{},
		DailyViews: []DailyView{},
	}

	dimension := func(query string, dst *[]DimensionStat) func() error {
		return func() error {
			rows, err := s.db.QueryContext(ctx, query, from, to)
			if err != nil {
				return err
			}
			defer rows.Close()
			var out []DimensionStat
			for rows.Next() {
				var d DimensionStat
				if err := rows.Scan(&d.Name, &d.Count); err != nil {
					return err
				}
				out = append(out, d)
			}
			if err := rows.Err(); err != nil {
				return err
			}
			if out != nil {
				*dst = out
			}
			return nil
		}
	}

	queries := map[string]func() error{
		"totals": func() error {
			var avg sql.NullFloat64
			err := s.db.QueryRowContext(ctx, `
				SELECT COUNT(*), COUNT(DISTINCT visitor_id), AVG(NULLIF(duration_sec, 0))
				FROM visits WHERE timestamp >= ? AND timestamp < ?`, from, to).
				Scan(&st.TotalViews, &st.UniqueVisitors, &avg)
			if avg.Valid {
				st.AvgDuration = int(avg.Float64)
			}
			return err
		},
		"top pages": func() error {
			rows, err := s.db.QueryContext(ctx, `
				SELECT path, COUNT(*) AS n FROM visits WHERE timestamp >= ? AND timestamp < ?
				GROUP BY path ORDER BY n DESC, path LIMIT 10`, from, to)
			if err != nil {
				return err
			}
			defer rows.Close()
			for rows.Next() {
				var p PageStat
				if err := rows.Scan(&p.Path, &p.Views); err != nil {
					return err
				}
				st.TopPages = append(st.TopPages, p)
			}
			return rows.Err()
		},
		"daily views": func() error {
			rows, err := s.db.QueryContext(ctx, `
				SELECT substr(timestamp, 1, 10) AS day, COUNT(*) FROM visits
				WHERE timestamp >= ? AND timestamp < ? GROUP BY day ORDER BY day`, from, to)
			if err != nil {
				return err
			}
			defer rows.Close()
			for rows.Next() {
				var d DailyView
				if err := rows.Scan(&d.Date, &d.Views); err != nil {
					return err
				}
				st.DailyViews = append(st.DailyViews, d)
			}
			return rows.Err()
		},
		"browsers":  dimension(dimensionQuery("visits", "browser"), &st.Browsers),
		"os":        dimension(dimensionQuery("visits", "os"), &st.OS),
		"devices":   dimension(dimensionQuery("visits", "device"), &st.Devices),
		"referrers": dimension(dimensionQuery("visits", "referrer"), &st.Referrers),
		"events":    dimension(dimensionQuery("events", "name"), &st.Events),
		"bots":      dimension(dimensionQuery("bot_visits", "bot_name"), &st.Bots),
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for name, q := range queries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := q(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", name, err)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return st, nil
}

func dimensionQuery(table, column string) string {
	return `SELECT ` + column + `, COUNT(*) AS n FROM ` + table +
		` WHERE timestamp >= ? AND timestamp < ? GROUP BY ` + column + ` ORDER BY n DESC, ` + column + ` LIMIT 10`
}

// RealtimeVisitors counts distinct visitors in the last five minutes.
func (s *Store) RealtimeVisitors(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT visitor_id) FROM visits WHERE timestamp >= ?`,
		time.Now().UTC().Add(-5*time.Minute)).Scan(&n)
	return n, err
}

// CleanupOld deletes rows older than retentionDays.
func (s *Store) CleanupOld(ctx context.Context, retentionDays int) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	for _, table := range []string{"visits", "bot_visits", "events"} {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE timestamp < ?`, cutoff); err != nil {
			return fmt.Errorf("cleanup %s: %w", table, err)
		}
	}
	return nil
}

// StartCleanupScheduler runs CleanupOld every interval until the returned
// stop function is called. Stop waits for the goroutine to exit.
func (s *Store) StartCleanupScheduler(retentionDays int, interval time.Duration, logger *zap.Logger) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		defer close(exited)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.CleanupOld(context.Background(), retentionDays); err != nil {
					logger.Error("analytics cleanup", zap.Error(err))
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		<-exited
	}
}
