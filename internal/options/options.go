// Package options turns the raw argument vector into validated,
// read-only Options for a single mail operation.
package options

import "strings"

// Operation selects the handler that runs.
type Operation int

const (
	OpNone Operation = iota
	OpSend
	OpRead
	OpCreate
	OpDelete
)

// Operation keywords as typed on the command line.
const (
	KeywordSend   = "mail.send"
	KeywordRead   = "mail.read"
	KeywordCreate = "mail.create"
	KeywordDelete = "mail.delete"
)

func (o Operation) String() string {
	switch o {
	case OpSend:
		return KeywordSend
	case OpRead:
		return KeywordRead
	case OpCreate:
		return KeywordCreate
	case OpDelete:
		return KeywordDelete
	default:
		return "none"
	}
}

// Output formats.
const (
	OutputPretty = "pretty"
	OutputJSON   = "json"
)

// DefaultTransport is used for generic sends when none is configured.
const DefaultTransport = "smtp"

// Options is the frozen result of a successful Build.
type Options struct {
	Operation Operation

	APIKey  string
	InboxID string

	User         string
	ProviderHint string
	Password     string

	UseManagedSend bool
	Recipients     []string
	Subject        string
	Message        string
	AsHTML         bool

	NewMailboxSeed string

	Load      string
	Transport string
	SMTPHost  string

	Output   string
	Pick     bool
	OpenHTML bool
	SaveDir  string
	Verbose  bool
}

// JSON reports whether results should be printed as JSON.
func (o Options) JSON() bool {
	return o.Output == OutputJSON
}

// SendSubject returns the subject for the chosen send path. Generic
// sends fall back to a single space, managed sends to an empty string.
func (o Options) SendSubject() string {
	if o.Subject != "" {
		return o.Subject
	}
	if o.UseManagedSend {
		return ""
	}
	return " "
}

// Builder accumulates parsed values until Build freezes them.
type Builder struct {
	Options

	// ConfigFile is the --config override for the settings file.
	ConfigFile string
}

// SetUser stores the sender and derives its provider hint.
func (b *Builder) SetUser(user string) {
	b.User = user
	b.ProviderHint = ProviderHint(user)
}

// ProviderHint returns the first label of the domain in an address:
// "jane@gmail.com" gives "gmail". An address without "@" gives "".
func ProviderHint(user string) string {
	parts := strings.Split(user, "@")
	if len(parts) < 2 {
		return ""
	}
	domain := parts[1]
	if i := strings.Index(domain, "."); i >= 0 {
		return domain[:i]
	}
	return domain
}

// Build validates the builder and returns a detached copy.
func (b *Builder) Build() (Options, error) {
	if err := b.Validate(); err != nil {
		return Options{}, err
	}

	o := b.Options
	if o.Recipients != nil {
		o.Recipients = append([]string(nil), o.Recipients...)
	}
	if o.Output == "" {
		o.Output = OutputPretty
	}
	if o.Transport == "" {
		o.Transport = DefaultTransport
	}
	return o, nil
}
