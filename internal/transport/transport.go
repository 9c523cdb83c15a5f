// Package transport delivers outgoing mail through an SMTP provider,
// the Mailgun HTTP API, or AWS SES.
package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Transport kinds accepted by New.
const (
	KindSMTP    = "smtp"
	KindMailgun = "mailgun"
	KindSES     = "ses"
)

// Kinds lists the supported transport kinds.
var Kinds = []string{KindSMTP, KindMailgun, KindSES}

// DefaultTimeout bounds dialing and each SMTP command.
const DefaultTimeout = 30 * time.Second

var (
	// ErrUnknownKind is returned by New for an unsupported transport name.
	ErrUnknownKind = errors.New("unknown transport")
	// ErrNoRecipients is returned when a message has no destination.
	ErrNoRecipients = errors.New("message has no recipients")
)

// Message is one outgoing email.
type Message struct {
	From    string
	To      []string
	Subject string
	Body    string
	HTML    bool
}

// Transport submits messages to a delivery backend.
type Transport interface {
	// Send delivers msg and returns the backend's response text.
	Send(ctx context.Context, msg *Message) (string, error)

	// Name returns the transport kind.
	Name() string
}

// Config selects and configures a transport.
type Config struct {
	Kind         string
	User         string
	Password     string
	ProviderHint string

	// SMTPHost is an explicit host:port that overrides the preset lookup.
	SMTPHost string

	// MailgunAPIBase overrides the Mailgun endpoint (EU region, tests).
	MailgunAPIBase string

	SESRegion    string
	SESAccessKey string
	SESSecretKey string

	Timeout time.Duration
	Logger  *slog.Logger
}

// IsKind reports whether name is a supported transport kind.
func IsKind(name string) bool {
	for _, k := range Kinds {
		if k == name {
			return true
		}
	}
	return false
}

// New builds the transport named by cfg.Kind. An empty kind means SMTP.
func New(ctx context.Context, cfg Config) (Transport, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	switch strings.ToLower(cfg.Kind) {
	case "", KindSMTP:
		return NewSMTP(cfg)
	case KindMailgun:
		return NewMailgun(cfg)
	case KindSES:
		return NewSES(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}

// domainOf returns the part of addr after the last "@".
func domainOf(addr string) string {
	i := strings.LastIndex(addr, "@")
	if i < 0 {
		return ""
	}
	return addr[i+1:]
}
