package leads

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/jordan-wright/email"
)

// Notifier is told about every stored lead.
type Notifier interface {
	Notify(ctx context.Context, l Lead) error
}

// NopNotifier drops notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Lead) error { return nil }

// SMTPConfig configures SMTPNotifier.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

// Enabled reports whether enough is set to send mail.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != "" && len(c.To) > 0
}

// SMTPNotifier emails each lead to the office inbox.
type SMTPNotifier struct {
	cfg  SMTPConfig
	send func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewSMTPNotifier returns a notifier for cfg. Port defaults to 587.
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &SMTPNotifier{
		cfg: cfg,
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// Notify sends the lead as a plain-text email.
func (n *SMTPNotifier) Notify(ctx context.Context, l Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e := Message(l)
	e.From = n.cfg.From
	e.To = n.cfg.To
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	addr := net.JoinHostPort(n.cfg.Host, strconv.Itoa(n.cfg.Port))
	if err := n.send(e, addr, auth); err != nil {
		return fmt.Errorf("send lead %s: %w", l.ID, err)
	}
	return nil
}

// Message builds the notification email for l, without sender or
// recipients.
func Message(l Lead) *email.Email {
	e := email.NewEmail()
	if l.Email != "" {
		e.ReplyTo = []string{l.Email}
	}
	var b strings.Builder
	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}
	switch l.Kind {
	case KindReferral:
		e.Subject = "New referral from " + l.Name
		line("Referrer", l.Name)
		line("Referrer email", l.Email)
		line("Referrer phone", l.Phone)
		line("Friend", l.FriendName)
		line("Friend email", l.FriendEmail)
		line("Friend phone", l.FriendPhone)
	default:
		e.Subject = "New enquiry from " + l.Name
		line("Name", l.Name)
		line("Email", l.Email)
		line("Phone", l.Phone)
	}
	line("Program", l.Course)
	if l.Message != "" {
		b.WriteString("\n" + l.Message + "\n")
	}
	fmt.Fprintf(&b, "\nReceived %s\n", l.CreatedAt.Format("2 Jan 2006 15:04 MST"))
	e.Text = []byte(b.String())
	return e
}
