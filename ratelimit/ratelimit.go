// Package ratelimit provides per-key token bucket limiters, keyed by
// client IP in practice.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter *rate.Limiter
	seen    time.Time
}

// Keyed holds one token bucket per key. Buckets idle for longer than the
// refill window are evicted by a background sweep until Stop is called.
type Keyed struct {
	mu      sync.Mutex
	buckets map[string]*entry
	limit   rate.Limit
	burst   int
	idle    time.Duration

	stop chan struct{}
	once sync.Once
	done chan struct{}
}

// New allows burst requests per key, refilled evenly over per.
func New(burst int, per time.Duration) *Keyed {
	k := &Keyed{
		buckets: make(map[string]*entry),
		limit:   rate.Every(per / time.Duration(burst)),
		burst:   burst,
		idle:    per,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go k.sweep()
	return k
}

// Allow reports whether key may proceed now and spends a token if so.
func (k *Keyed) Allow(key string) bool {
	k.mu.Lock()
	e, ok := k.buckets[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.buckets[key] = e
	}
	e.seen = time.Now()
	k.mu.Unlock()
	return e.limiter.Allow()
}

// Len reports the number of tracked keys.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

func (k *Keyed) sweep() {
	defer close(k.done)
	ticker := time.NewTicker(k.idle)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			k.evict(time.Now().Add(-k.idle))
		case <-k.stop:
			return
		}
	}
}

func (k *Keyed) evict(cutoff time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for key, e := range k.buckets {
		if e.seen.Before(cutoff) {
			delete(k.buckets, key)
		}
	}
}

// Stop ends the background sweep and waits for it to exit.
func (k *Keyed) Stop() {
	k.once.Do(func() { close(k.stop) })
	<-k.done
}
