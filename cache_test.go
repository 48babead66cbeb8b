package naisite

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleCacheServesUntilInvalidated(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveArticle(ctx, testArticle("first", "2025-01-01")))

	c := NewArticleCache(s, time.Hour)
	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, s.SaveArticle(ctx, testArticle("second", "2025-01-02")))
	list, err = c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "cached copy is served within the TTL")

	c.Invalidate()
	list, err = c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestArticleCacheExpires(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	c := NewArticleCache(s, 20*time.Millisecond)

	list, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)

	require.NoError(t, s.SaveArticle(ctx, testArticle("late", "2025-01-01")))
	assert.Eventually(t, func() bool {
		list, err := c.List(ctx)
		return err == nil && len(list) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestArticleCacheGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveArticle(ctx, testArticle("osce", "2025-01-01")))
	c := NewArticleCache(s, time.Hour)

	a, err := c.Get(ctx, "osce")
	require.NoError(t, err)
	assert.Equal(t, "Title osce", a.Title)

	_, err = c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArticleCacheConcurrentReads(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveArticle(ctx, testArticle("a", "2025-01-01")))
	c := NewArticleCache(s, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%4 == 0 {
				c.Invalidate()
			}
			list, err := c.List(ctx)
			assert.NoError(t, err)
			assert.Len(t, list, 1)
		}()
	}
	wg.Wait()
}
