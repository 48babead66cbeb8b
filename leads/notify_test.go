package leads

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/jordan-wright/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPNotifierSends(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{
		Host: "smtp.example.com",
		From: "site@example.com",
		To:   []string{"admin@example.com"},
	})
	var gotAddr string
	var got *email.Email
	n.send = func(e *email.Email, addr string, auth smtp.Auth) error {
		gotAddr, got = addr, e
		assert.Nil(t, auth)
		return nil
	}

	l := Lead{ID: "1", Kind: KindContact, Name: "Maria Santos", Email: "maria@example.com", Message: "Hello", CreatedAt: time.Now()}
	require.NoError(t, n.Notify(context.Background(), l))

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "site@example.com", got.From)
	assert.Equal(t, []string{"admin@example.com"}, got.To)
	assert.Equal(t, []string{"maria@example.com"}, got.ReplyTo)
	assert.Equal(t, "New enquiry from Maria Santos", got.Subject)
	assert.Contains(t, string(got.Text), "Hello")
}

func TestSMTPNotifierWrapsError(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{Host: "h", Port: 25, From: "f@x", To: []string{"t@x"}, Username: "u"})
	boom := errors.New("boom")
	n.send = func(*email.Email, string, smtp.Auth) error { return boom }
	err := n.Notify(context.Background(), Lead{ID: "abc"})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "abc")
}

func TestReferralMessage(t *testing.T) {
	e := Message(Lead{Kind: KindReferral, Name: "Ana Cruz", FriendName: "Ben Lee", FriendEmail: "ben@example.com"})
	assert.Equal(t, "New referral from Ana Cruz", e.Subject)
	assert.Contains(t, string(e.Text), "Friend: Ben Lee")
	assert.Empty(t, e.ReplyTo)
}

func TestSMTPConfigEnabled(t *testing.T) {
	assert.False(t, SMTPConfig{}.Enabled())
	assert.True(t, SMTPConfig{Host: "h", From: "f", To: []string{"t"}}.Enabled())
}
