package navigation

import (
	"net/url"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Context is the derived navigation state for one query string.
type Context struct {
	BackURL string
	Info    PageInfo
}

// Derive computes the navigation context for a raw query string.
func Derive(rawQuery string) Context {
	q, _ := url.ParseQuery(rawQuery)
	return Context{
		BackURL: BackToNewsURL(q),
		Info:    ParsePageInfo(q),
	}
}

// Memo caches Derive results keyed by the raw query string, so the context
// is only recomputed when the query changes. It holds at most size entries
// and evicts the least recently used. Safe for concurrent use.
type Memo struct {
	cache *lru.Cache[string, Context]
}

// NewMemo returns a Memo holding up to size entries.
func NewMemo(size int) *Memo {
	cache, err := lru.New[string, Context](max(size, 1))
	if err != nil {
		panic(err)
	}
	return &Memo{cache: cache}
}

// Resolve returns the context for rawQuery, computing it on first use.
func (m *Memo) Resolve(rawQuery string) Context {
	if ctx, ok := m.cache.Get(rawQuery); ok {
		return ctx
	}
	ctx := Derive(rawQuery)
	m.cache.Add(rawQuery, ctx)
	return ctx
}
