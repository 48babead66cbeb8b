package naisite

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/nurseassist/naisite/content"
)

// ErrNotFound is returned when a requested article does not exist.
var ErrNotFound = sql.ErrNoRows

// ArticleCache is an in-memory, TTL-bound copy of the published articles.
type ArticleCache struct {
	mu       sync.RWMutex
	articles []content.Article
	fetched  time.Time
	ttl      time.Duration
	store    *Store
}

// NewArticleCache creates an ArticleCache backed by the given Store.
func NewArticleCache(s *Store, ttl time.Duration) *ArticleCache {
	return &ArticleCache{store: s, ttl: ttl}
}

func (c *ArticleCache) valid() bool {
	return c.articles != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ArticleCache) Invalidate() {
	c.mu.Lock()
	c.articles = nil
	c.mu.Unlock()
}

// ensureLoaded returns the cached articles, reloading them under the write
// lock only when the read-locked check finds the cache stale.
func (c *ArticleCache) ensureLoaded(ctx context.Context) ([]content.Article, error) {
	c.mu.RLock()
	if c.valid() {
		articles := c.articles
		c.mu.RUnlock()
		return articles, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.articles, nil
	}
	articles, err := c.store.ListArticles(ctx)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []content.Article{}
	}
	c.articles = articles
	c.fetched = time.Now()
	return articles, nil
}

// List returns the published articles, newest first. Callers must not
// modify the returned slice.
func (c *ArticleCache) List(ctx context.Context) ([]content.Article, error) {
	return c.ensureLoaded(ctx)
}

// Get returns a published article by slug.
func (c *ArticleCache) Get(ctx context.Context, slug string) (content.Article, error) {
	articles, err := c.ensureLoaded(ctx)
	if err != nil {
		return content.Article{}, err
	}
	for _, a := range articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return content.Article{}, ErrNotFound
}
