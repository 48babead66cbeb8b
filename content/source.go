package content

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReloadDebounce is how long the watcher waits after the last file event
// before reloading the catalog.
const ReloadDebounce = 500 * time.Millisecond

// Source hands out the current catalog. The catalog can be swapped at any
// time by a watcher; readers always see a complete catalog.
type Source struct {
	cur atomic.Pointer[Catalog]
}

// NewSource returns a Source serving c.
func NewSource(c *Catalog) *Source {
	s := &Source{}
	s.cur.Store(c)
	return s
}

// Catalog returns the current catalog.
func (s *Source) Catalog() *Catalog {
	return s.cur.Load()
}

// Swap replaces the current catalog.
func (s *Source) Swap(c *Catalog) {
	s.cur.Store(c)
}

// LoadDir loads a catalog from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// Watch reloads the catalog from dir whenever files under it change. It
// blocks until ctx is done. A failed reload is logged and the previous
// catalog keeps serving.
func (s *Source) Watch(ctx context.Context, dir string, logger *zap.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
	if err != nil {
		return err
	}

	reload := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := w.Add(ev.Name); err != nil {
						logger.Warn("watch new directory", zap.String("dir", ev.Name), zap.Error(err))
					}
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(ReloadDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			c, err := LoadDir(dir)
			if err != nil {
				logger.Error("catalog reload failed", zap.String("dir", dir), zap.Error(err))
				continue
			}
			s.Swap(c)
			logger.Info("catalog reloaded",
				zap.Int("courses", len(c.Courses)),
				zap.Int("articles", len(c.Articles)))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}
