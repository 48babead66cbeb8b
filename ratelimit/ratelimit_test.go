package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestKeyedAllowsBurstThenBlocks(t *testing.T) {
	defer goleak.VerifyNone(t)
	k := New(5, time.Minute)
	defer k.Stop()

	for i := 0; i < 5; i++ {
		assert.True(t, k.Allow("203.0.113.1"), "request %d", i)
	}
	assert.False(t, k.Allow("203.0.113.1"))
	assert.True(t, k.Allow("203.0.113.2"), "keys are independent")
}

func TestKeyedRefills(t *testing.T) {
	defer goleak.VerifyNone(t)
	k := New(2, 100*time.Millisecond)
	defer k.Stop()

	assert.True(t, k.Allow("a"))
	assert.True(t, k.Allow("a"))
	assert.False(t, k.Allow("a"))
	time.Sleep(80 * time.Millisecond)
	assert.True(t, k.Allow("a"))
}

func TestKeyedEvictsIdle(t *testing.T) {
	defer goleak.VerifyNone(t)
	k := New(1, time.Hour)
	defer k.Stop()

	k.Allow("a")
	k.Allow("b")
	assert.Equal(t, 2, k.Len())
	k.evict(time.Now().Add(time.Second))
	assert.Equal(t, 0, k.Len())
}

func TestKeyedStopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)
	k := New(1, time.Second)
	k.Stop()
	k.Stop()
}
