package naisite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestLoginLimiterBlocksAfterMax(t *testing.T) {
	limiter := NewLoginLimiter(2, 200*time.Millisecond)
	defer limiter.Stop()
	ip := "203.0.113.10"

	assert.True(t, limiter.Allow(ip), "first attempt")
	assert.True(t, limiter.Allow(ip), "second attempt")
	assert.False(t, limiter.Allow(ip), "third attempt should be blocked")
}

func TestLoginLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewLoginLimiter(1, 150*time.Millisecond)
	defer limiter.Stop()
	ip := "203.0.113.20"

	assert.True(t, limiter.Allow(ip))
	assert.False(t, limiter.Allow(ip))

	time.Sleep(200 * time.Millisecond)
	assert.True(t, limiter.Allow(ip), "attempt after window")
}

func TestLoginLimiterIsPerIP(t *testing.T) {
	limiter := NewLoginLimiter(1, 200*time.Millisecond)
	defer limiter.Stop()

	assert.True(t, limiter.Allow("203.0.113.30"))
	assert.True(t, limiter.Allow("203.0.113.31"), "second ip is independent")
	assert.False(t, limiter.Allow("203.0.113.30"))
}

func TestLoginLimiterCleanupEvictsIdleIPs(t *testing.T) {
	limiter := NewLoginLimiter(3, 50*time.Millisecond)
	defer limiter.Stop()

	limiter.Allow("203.0.113.40")
	assert.Equal(t, 1, limiter.Len())
	assert.Eventually(t, func() bool { return limiter.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestLoginLimiterStopLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	limiter := NewLoginLimiter(1, time.Minute)
	limiter.Allow("203.0.113.50")
	limiter.Stop()
	limiter.Stop()
}
