package config

import (
	"errors"
	"log/slog"

	"github.com/stringmanolo/mail/internal/mailslurp"
)

var ErrNoAPIKey = errors.New("API key not configured. Pass --api, set MAIL_API_KEY or run 'mail config set api-key <key>'")

// NewMailboxClient creates a MailSlurp client. A non-empty apiKey
// overrides the configured one.
func (c *Config) NewMailboxClient(apiKey string, logger *slog.Logger) (*mailslurp.Client, error) {
	if apiKey == "" {
		apiKey = c.APIKey
	}
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	opts := []mailslurp.Option{
		mailslurp.WithTimeout(c.RequestTimeout()),
		mailslurp.WithLogger(logger),
	}
	if c.BaseURL != "" {
		opts = append(opts, mailslurp.WithBaseURL(c.BaseURL))
	}

	return mailslurp.New(apiKey, opts...)
}
