package options

import (
	"strings"

	"github.com/stringmanolo/mail/internal/transport"
)

// Diagnostics reported by Validate.
const (
	MsgMissingCredentials = "Missing mandatory arguments. --user --password OR --load"
	MsgInvalidUser        = "Invalid --user: expected an email address"
	MsgMissingOperation   = "Missing mandatory operation. mail.send  mail.read  mail.create  mail.delete"
	MsgMissingSendArgs    = "Missing mandatory argument. --to AND --message"
	MsgMissingNewMail     = "Missing mandatory argument. --new-mail"
	MsgMissingID          = "Missing mandatory argument. --id"
	MsgMissingAPIKey      = "Missing mandatory argument. --api"
	MsgInvalidOutput      = "Invalid --output: expected pretty or json"
	MsgInvalidTransport   = "Invalid --transport: expected smtp, mailgun or ses"
)

// UsageError is a single-line diagnostic about missing or malformed
// arguments. No network call is made once one is returned.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func usageErr(msg string) error {
	return &UsageError{Msg: msg}
}

func (b *Builder) transportKind() string {
	if b.Transport == "" {
		return DefaultTransport
	}
	return b.Transport
}

// NeedsPassword reports whether a generic send still lacks the sender
// password its transport requires.
func (b *Builder) NeedsPassword() bool {
	return b.Operation == OpSend &&
		!b.UseManagedSend &&
		b.User != "" &&
		b.Password == "" &&
		b.transportKind() != transport.KindSES
}

// Validate applies the per-operation argument rules in order and
// returns the first failure as a *UsageError.
func (b *Builder) Validate() error {
	if b.Operation == OpSend && !b.UseManagedSend {
		if b.User == "" || b.NeedsPassword() {
			return usageErr(MsgMissingCredentials)
		}
		if b.transportKind() == transport.KindSMTP && b.SMTPHost == "" && !strings.Contains(b.User, "@") {
			return usageErr(MsgInvalidUser)
		}
	}

	if b.Operation == OpNone {
		return usageErr(MsgMissingOperation)
	}

	switch b.Operation {
	case OpSend:
		if len(b.Recipients) == 0 || b.Message == "" {
			return usageErr(MsgMissingSendArgs)
		}
	case OpCreate:
		if b.NewMailboxSeed == "" {
			return usageErr(MsgMissingNewMail)
		}
	case OpDelete:
		if b.InboxID == "" {
			return usageErr(MsgMissingID)
		}
	}

	needsAPI := b.Operation == OpRead ||
		b.Operation == OpCreate ||
		b.Operation == OpDelete ||
		(b.Operation == OpSend && b.UseManagedSend)
	if needsAPI && b.APIKey == "" {
		return usageErr(MsgMissingAPIKey)
	}

	if b.Output != "" && b.Output != OutputPretty && b.Output != OutputJSON {
		return usageErr(MsgInvalidOutput)
	}
	if b.Transport != "" && !transport.IsKind(b.Transport) {
		return usageErr(MsgInvalidTransport)
	}
	return nil
}
