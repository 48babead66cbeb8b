package leads

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// ChallengeTTL is how long an issued challenge can be answered.
const ChallengeTTL = 30 * time.Minute

var (
	ErrChallengeMalformed = errors.New("leads: malformed challenge token")
	ErrChallengeExpired   = errors.New("leads: challenge expired")
	ErrChallengeWrong     = errors.New("leads: wrong answer")
)

// Challenge is a "what is A + B" question for human verification. Token
// carries the operands and expiry, signed, so no server state is kept.
type Challenge struct {
	A, B  int
	Token string
}

// Question is the prompt shown next to the answer field.
func (c Challenge) Question() string {
	return fmt.Sprintf("%d + %d", c.A, c.B)
}

// Challenger issues and checks challenges signed with a secret.
type Challenger struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewChallenger returns a Challenger signing with secret.
func NewChallenger(secret []byte) *Challenger {
	return &Challenger{secret: secret, ttl: ChallengeTTL, now: time.Now}
}

// Issue returns a fresh challenge with operands in [1, 10].
func (c *Challenger) Issue() Challenge {
	a, b := rand.IntN(10)+1, rand.IntN(10)+1
	exp := c.now().Add(c.ttl).Unix()
	payload := fmt.Sprintf("%d:%d:%d", a, b, exp)
	return Challenge{A: a, B: b, Token: encode(payload) + "." + encode(string(c.sign(payload)))}
}

// Verify checks answer against token.
func (c *Challenger) Verify(token, answer string) error {
	payloadPart, sigPart, ok := strings.Cut(token, ".")
	if !ok {
		return ErrChallengeMalformed
	}
	payload, err := base64.RawURLEncoding.DecodeString(payloadPart)
	if err != nil {
		return ErrChallengeMalformed
	}
	sig, err := base64.RawURLEncoding.DecodeString(sigPart)
	if err != nil || !hmac.Equal(sig, c.sign(string(payload))) {
		return ErrChallengeMalformed
	}
	parts := strings.Split(string(payload), ":")
	if len(parts) != 3 {
		return ErrChallengeMalformed
	}
	nums := make([]int64, 3)
	for i, p := range parts {
		if nums[i], err = strconv.ParseInt(p, 10, 64); err != nil {
			return ErrChallengeMalformed
		}
	}
	if c.now().Unix() > nums[2] {
		return ErrChallengeExpired
	}
	got, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || int64(got) != nums[0]+nums[1] {
		return ErrChallengeWrong
	}
	return nil
}

func (c *Challenger) sign(payload string) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return mac.Sum(nil)
}

func encode(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}
