package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mailgun/mailgun-go/v4"
)

// ErrNoDomain is returned when the sender address has no domain.
var ErrNoDomain = errors.New("sender address has no domain")

// MailgunTransport sends through the Mailgun HTTP API. The sending
// domain is taken from the sender address and the API key from the
// password.
type MailgunTransport struct {
	mg     mailgun.Mailgun
	logger *slog.Logger
}

// NewMailgun creates a Mailgun transport for cfg.User's domain.
func NewMailgun(cfg Config) (*MailgunTransport, error) {
	domain := domainOf(cfg.User)
	if domain == "" {
		return nil, fmt.Errorf("%w: %q", ErrNoDomain, cfg.User)
	}
	if cfg.Password == "" {
		return nil, errors.New("mailgun API key is required (--password)")
	}

	mg := mailgun.NewMailgun(domain, cfg.Password)
	if cfg.MailgunAPIBase != "" {
		mg.SetAPIBase(cfg.MailgunAPIBase)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &MailgunTransport{mg: mg, logger: logger}, nil
}

// Name returns "mailgun".
func (t *MailgunTransport) Name() string {
	return KindMailgun
}

// Send queues msg with Mailgun and returns the API's reply text.
func (t *MailgunTransport) Send(ctx context.Context, msg *Message) (string, error) {
	if len(msg.To) == 0 {
		return "", ErrNoRecipients
	}

	var m *mailgun.Message
	if msg.HTML {
		m = mailgun.NewMessage(msg.From, msg.Subject, "", msg.To...)
		m.SetHtml(msg.Body)
	} else {
		m = mailgun.NewMessage(msg.From, msg.Subject, msg.Body, msg.To...)
	}

	resp, id, err := t.mg.Send(ctx, m)
	if err != nil {
		return "", fmt.Errorf("failed to send via mailgun: %w", err)
	}

	t.logger.Debug("message sent",
		"transport", KindMailgun,
		"domain", t.mg.Domain(),
		"id", id,
	)
	return fmt.Sprintf("%s %s", resp, id), nil
}
