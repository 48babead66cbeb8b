package leads

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedChallenger(now time.Time) *Challenger {
	c := NewChallenger([]byte("test-secret"))
	c.now = func() time.Time { return now }
	return c
}

func TestChallengeOperandsInRange(t *testing.T) {
	c := NewChallenger([]byte("k"))
	for i := 0; i < 200; i++ {
		ch := c.Issue()
		assert.GreaterOrEqual(t, ch.A, 1)
		assert.LessOrEqual(t, ch.A, 10)
		assert.GreaterOrEqual(t, ch.B, 1)
		assert.LessOrEqual(t, ch.B, 10)
	}
}

func TestChallengeVerify(t *testing.T) {
	now := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	c := fixedChallenger(now)
	ch := c.Issue()
	sum := strconv.Itoa(ch.A + ch.B)

	assert.NoError(t, c.Verify(ch.Token, sum))
	assert.NoError(t, c.Verify(ch.Token, " "+sum+" "))
	assert.ErrorIs(t, c.Verify(ch.Token, strconv.Itoa(ch.A+ch.B+1)), ErrChallengeWrong)
	assert.ErrorIs(t, c.Verify(ch.Token, "abc"), ErrChallengeWrong)
	assert.Equal(t, strconv.Itoa(ch.A)+" + "+strconv.Itoa(ch.B), ch.Question())
}

func TestChallengeExpires(t *testing.T) {
	now := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	c := fixedChallenger(now)
	ch := c.Issue()
	sum := strconv.Itoa(ch.A + ch.B)

	c.now = func() time.Time { return now.Add(ChallengeTTL - time.Second) }
	require.NoError(t, c.Verify(ch.Token, sum))

	c.now = func() time.Time { return now.Add(ChallengeTTL + time.Second) }
	assert.ErrorIs(t, c.Verify(ch.Token, sum), ErrChallengeExpired)
}

func TestChallengeRejectsTampering(t *testing.T) {
	c := fixedChallenger(time.Now())
	ch := c.Issue()
	payload, sig, _ := strings.Cut(ch.Token, ".")

	forged := encode("1:1:9999999999") + "." + sig
	assert.ErrorIs(t, c.Verify(forged, "2"), ErrChallengeMalformed)
	assert.ErrorIs(t, c.Verify(payload, "2"), ErrChallengeMalformed)
	assert.ErrorIs(t, c.Verify("", "2"), ErrChallengeMalformed)

	other := NewChallenger([]byte("other-secret"))
	assert.ErrorIs(t, other.Verify(ch.Token, strconv.Itoa(ch.A+ch.B)), ErrChallengeMalformed)
}
