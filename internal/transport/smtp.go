package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// implicitTLSPort is the SMTPS submission port.
const implicitTLSPort = 465

// defaultSubmissionPort is used when --smtp-host has no port.
const defaultSubmissionPort = 587

// ErrUnknownProvider is returned when the provider hint has no preset
// and no explicit host was given.
var ErrUnknownProvider = errors.New("no SMTP preset for provider")

// SMTPTransport submits mail to an SMTP server with SASL PLAIN auth.
type SMTPTransport struct {
	host     string
	port     int
	user     string
	password string
	timeout  time.Duration
	logger   *slog.Logger

	// implicitTLS wraps the connection in TLS before the greeting.
	implicitTLS bool
	// plaintextOK lets a loopback server that offers no STARTTLS run
	// the session in the clear. Remote servers always need TLS.
	plaintextOK bool

	// tlsConfig is cloned for each connection; tests override it.
	tlsConfig *tls.Config
}

// NewSMTP resolves the server from cfg.SMTPHost or the provider preset.
func NewSMTP(cfg Config) (*SMTPTransport, error) {
	host, port, err := resolveServer(cfg.SMTPHost, cfg.ProviderHint)
	if err != nil {
		return nil, err
	}

	t := &SMTPTransport{
		host:     host,
		port:     port,
		user:     cfg.User,
		password: cfg.Password,
		timeout:  cfg.Timeout,
		logger:   cfg.Logger,

		implicitTLS: port == implicitTLSPort,
		plaintextOK: isLoopback(host),
	}
	if t.timeout <= 0 {
		t.timeout = DefaultTimeout
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	return t, nil
}

func resolveServer(explicit, hint string) (string, int, error) {
	if explicit != "" {
		if !strings.Contains(explicit, ":") {
			return explicit, defaultSubmissionPort, nil
		}
		host, portStr, err := net.SplitHostPort(explicit)
		if err != nil {
			return "", 0, fmt.Errorf("invalid SMTP host %q: %w", explicit, err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			return "", 0, fmt.Errorf("invalid SMTP port %q", portStr)
		}
		return host, port, nil
	}

	p, ok := LookupPreset(hint)
	if !ok {
		return "", 0, fmt.Errorf("%w %q (use --smtp-host)", ErrUnknownProvider, hint)
	}
	return p.Host, p.Port, nil
}

func isLoopback(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// Name returns "smtp".
func (t *SMTPTransport) Name() string {
	return KindSMTP
}

// Addr returns the resolved host:port.
func (t *SMTPTransport) Addr() string {
	return net.JoinHostPort(t.host, strconv.Itoa(t.port))
}

// Send delivers msg in a single SMTP session.
func (t *SMTPTransport) Send(ctx context.Context, msg *Message) (string, error) {
	if len(msg.To) == 0 {
		return "", ErrNoRecipients
	}

	raw, err := buildRawMessage(msg, time.Now())
	if err != nil {
		return "", err
	}

	c, err := t.dial(ctx)
	if err != nil {
		return "", err
	}
	defer c.Close()

	if t.password != "" {
		if ok, _ := c.Extension("AUTH"); !ok {
			return "", fmt.Errorf("server %s does not support AUTH", t.Addr())
		}
		if err := c.Auth(sasl.NewPlainClient("", t.user, t.password)); err != nil {
			return "", fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := c.Mail(msg.From, nil); err != nil {
		return "", fmt.Errorf("failed to set sender: %w", err)
	}
	for _, rcpt := range msg.To {
		if err := c.Rcpt(rcpt, nil); err != nil {
			return "", fmt.Errorf("failed to add recipient %s: %w", rcpt, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return "", fmt.Errorf("failed to start data: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	if err := c.Quit(); err != nil {
		t.logger.Debug("smtp quit failed", "error", err)
	}

	t.logger.Debug("message sent",
		"transport", KindSMTP,
		"server", t.Addr(),
		"recipients", len(msg.To),
	)
	return fmt.Sprintf("250 Message accepted by %s for %s", t.Addr(), strings.Join(msg.To, ", ")), nil
}

// dial opens a session that is encrypted before any command carrying
// credentials is sent. Only loopback servers may stay in plaintext.
func (t *SMTPTransport) dial(ctx context.Context) (*smtp.Client, error) {
	if t.implicitTLS {
		conn, err := t.connect(ctx, true)
		if err != nil {
			return nil, err
		}
		return t.newClient(conn), nil
	}

	if t.plaintextOK {
		conn, err := t.connect(ctx, false)
		if err != nil {
			return nil, err
		}
		c := t.newClient(conn)
		if ok, _ := c.Extension("STARTTLS"); !ok {
			t.logger.Debug("loopback server offers no STARTTLS, staying in plaintext", "server", t.Addr())
			return c, nil
		}
		c.Close()
	}

	conn, err := t.connect(ctx, false)
	if err != nil {
		return nil, err
	}
	c, err := smtp.NewClientStartTLS(conn, t.clientTLSConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to start TLS with %s: %w", t.Addr(), err)
	}
	c.CommandTimeout = t.timeout
	c.SubmissionTimeout = t.timeout
	return c, nil
}

func (t *SMTPTransport) connect(ctx context.Context, implicitTLS bool) (net.Conn, error) {
	addr := t.Addr()
	dialer := &net.Dialer{Timeout: t.timeout}

	var conn net.Conn
	var err error
	if implicitTLS {
		td := &tls.Dialer{NetDialer: dialer, Config: t.clientTLSConfig()}
		conn, err = td.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}
	return conn, nil
}

func (t *SMTPTransport) newClient(conn net.Conn) *smtp.Client {
	c := smtp.NewClient(conn)
	c.CommandTimeout = t.timeout
	c.SubmissionTimeout = t.timeout
	return c
}

func (t *SMTPTransport) clientTLSConfig() *tls.Config {
	if t.tlsConfig != nil {
		cfg := t.tlsConfig.Clone()
		if cfg.ServerName == "" {
			cfg.ServerName = t.host
		}
		return cfg
	}
	return &tls.Config{ServerName: t.host, MinVersion: tls.VersionTLS12}
}
