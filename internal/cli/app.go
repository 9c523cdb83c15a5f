package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/stringmanolo/mail/internal/browser"
	"github.com/stringmanolo/mail/internal/config"
	"github.com/stringmanolo/mail/internal/mailslurp"
	"github.com/stringmanolo/mail/internal/options"
	"github.com/stringmanolo/mail/internal/prompt"
	"github.com/stringmanolo/mail/internal/transport"
	"github.com/stringmanolo/mail/internal/tui/picker"
)

// App holds the collaborators of one invocation. Fields left nil get
// the production implementation from NewApp.
type App struct {
	Out io.Writer
	Err io.Writer
	In  io.Reader

	// Config is used as-is when set instead of loading from disk.
	Config *config.Config

	NewMailbox   func(cfg *config.Config, apiKey string, logger *slog.Logger) (MailboxService, error)
	NewTransport func(ctx context.Context, cfg transport.Config) (transport.Transport, error)
	ReadPassword options.PasswordFunc
	OpenHTML     func(email *mailslurp.Email) error

	// Interactive reports whether stdin and stdout are terminals.
	Interactive func() bool
}

// NewApp returns an App wired to the process's stdio.
func NewApp() *App {
	return &App{
		Out:          os.Stdout,
		Err:          os.Stderr,
		In:           os.Stdin,
		NewMailbox:   newMailboxClient,
		NewTransport: transport.New,
		ReadPassword: options.TerminalPassword,
		OpenHTML:     openEmail,
		Interactive:  stdioIsTerminal,
	}
}

func newMailboxClient(cfg *config.Config, apiKey string, logger *slog.Logger) (MailboxService, error) {
	c, err := cfg.NewMailboxClient(apiKey, logger)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func openEmail(email *mailslurp.Email) error {
	return browser.ViewEmail(email.Subject, email.From, email.CreatedAt, email.Body)
}

func stdioIsTerminal() bool {
	in, out := os.Stdin.Fd(), os.Stdout.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}

// newLogger returns a text logger on w at Warn, or Debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Run parses args, resolves credentials, validates, and runs exactly
// one operation. Help returns nil without doing anything else.
func (a *App) Run(ctx context.Context, args []string) error {
	b, ok := options.Parse(a.Out, args)
	if !ok {
		return nil
	}

	cfg := a.Config
	if cfg == nil {
		var err error
		cfg, err = config.Load(b.ConfigFile)
		if err != nil {
			return err
		}
	}

	if err := b.LoadCredentials(); err != nil {
		return err
	}
	b.ApplyDefaults(options.Defaults{
		APIKey:    cfg.APIKey,
		Transport: cfg.Transport,
		SMTPHost:  cfg.SMTPHost,
		Output:    cfg.DefaultOutput,
	})
	if err := b.ResolvePassword(a.ReadPassword); err != nil {
		return err
	}

	opts, err := b.Build()
	if err != nil {
		return err
	}

	r := a.newRunner(opts, cfg)
	r.logger.Debug("dispatching", "operation", opts.Operation.String(), "output", opts.Output)
	return r.dispatch(ctx)
}

// runner executes one operation with frozen options.
type runner struct {
	app     *App
	opts    options.Options
	cfg     *config.Config
	logger  *slog.Logger
	timeout time.Duration

	// out receives results; ui receives listings and prompts, which
	// move to stderr in JSON mode so stdout stays parseable.
	out io.Writer
	ui  io.Writer

	prompt prompt.Prompter
	pick   bool
}

func (a *App) newRunner(opts options.Options, cfg *config.Config) *runner {
	r := &runner{
		app:     a,
		opts:    opts,
		cfg:     cfg,
		logger:  newLogger(a.Err, opts.Verbose),
		timeout: cfg.RequestTimeout(),
		out:     a.Out,
		ui:      a.Out,
	}
	if opts.JSON() {
		r.ui = a.Err
	}

	r.pick = opts.Pick && a.Interactive != nil && a.Interactive()
	if r.pick {
		r.prompt = picker.Prompter{}
	} else {
		r.prompt = prompt.NewLineReader(a.In, r.ui)
	}
	return r
}

// dispatch runs the handler for the operation: send, read, create,
// then delete.
func (r *runner) dispatch(ctx context.Context) error {
	switch r.opts.Operation {
	case options.OpSend:
		return r.send(ctx)
	case options.OpRead:
		return r.read(ctx)
	case options.OpCreate:
		return r.create(ctx)
	case options.OpDelete:
		return r.delete(ctx)
	}
	return fmt.Errorf("no handler for operation %s", r.opts.Operation)
}

// call derives the per-request deadline.
func (r *runner) call(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *runner) mailbox() (MailboxService, error) {
	return r.app.NewMailbox(r.cfg, r.opts.APIKey, r.logger)
}
