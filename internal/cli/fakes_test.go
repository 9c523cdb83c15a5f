package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/stringmanolo/mail/internal/config"
	"github.com/stringmanolo/mail/internal/mailslurp"
	"github.com/stringmanolo/mail/internal/options"
	"github.com/stringmanolo/mail/internal/transport"
)

var testCreated = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type fakeMailbox struct {
	inboxes     []mailslurp.InboxPreview
	emails      map[string][]mailslurp.EmailPreview
	full        map[string]*mailslurp.Email
	attachments map[string][]byte
	inbox       *mailslurp.Inbox
	sent        *mailslurp.SentEmail
	status      string

	listErr   error
	sendErr   error
	deleteErr error

	apiKey        string
	listedInbox   string
	sentFrom      string
	sentOpts      mailslurp.SendEmailOptions
	createdOpts   mailslurp.CreateInboxOptions
	deletedInbox  string
	downloadedIDs []string
}

func (f *fakeMailbox) ListInboxes(ctx context.Context, page, size int) (*mailslurp.InboxPage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &mailslurp.InboxPage{Content: f.inboxes, TotalElements: len(f.inboxes)}, nil
}

func (f *fakeMailbox) CreateInbox(ctx context.Context, opts mailslurp.CreateInboxOptions) (*mailslurp.Inbox, error) {
	f.createdOpts = opts
	return &mailslurp.Inbox{ID: f.inbox.ID}, nil
}

func (f *fakeMailbox) GetInbox(ctx context.Context, inboxID string) (*mailslurp.Inbox, error) {
	if f.inbox == nil || f.inbox.ID != inboxID {
		return nil, &mailslurp.APIError{StatusCode: 404, Message: "inbox not found"}
	}
	return f.inbox, nil
}

func (f *fakeMailbox) DeleteInbox(ctx context.Context, inboxID string) (string, error) {
	f.deletedInbox = inboxID
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	return f.status, nil
}

func (f *fakeMailbox) ListEmails(ctx context.Context, inboxID string) ([]mailslurp.EmailPreview, error) {
	f.listedInbox = inboxID
	return f.emails[inboxID], nil
}

func (f *fakeMailbox) GetEmail(ctx context.Context, emailID string) (*mailslurp.Email, error) {
	e, ok := f.full[emailID]
	if !ok {
		return nil, &mailslurp.APIError{StatusCode: 404, Message: "email not found"}
	}
	return e, nil
}

func (f *fakeMailbox) SendEmail(ctx context.Context, inboxID string, opts mailslurp.SendEmailOptions) (*mailslurp.SentEmail, error) {
	f.sentFrom = inboxID
	f.sentOpts = opts
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return f.sent, nil
}

func (f *fakeMailbox) DownloadAttachment(ctx context.Context, emailID, attachmentID string) ([]byte, error) {
	f.downloadedIDs = append(f.downloadedIDs, attachmentID)
	return f.attachments[attachmentID], nil
}

type fakeTransport struct {
	name string
	resp string
	err  error

	cfg transport.Config
	msg *transport.Message
}

func (f *fakeTransport) Name() string { return f.name }

func (f *fakeTransport) Send(ctx context.Context, msg *transport.Message) (string, error) {
	f.msg = msg
	if f.err != nil {
		return "", f.err
	}
	return f.resp, nil
}

// testApp wires an App to fakes and in-memory stdio.
type testApp struct {
	*App
	out      *bytes.Buffer
	err      *bytes.Buffer
	mailbox  *fakeMailbox
	tr       *fakeTransport
	opened   []string
	password string
}

func newTestApp(stdin string) *testApp {
	ta := &testApp{
		out:     &bytes.Buffer{},
		err:     &bytes.Buffer{},
		mailbox: &fakeMailbox{},
		tr:      &fakeTransport{name: "smtp", resp: "250 OK"},
	}
	ta.App = &App{
		Out: ta.out,
		Err: ta.err,
		In:  strings.NewReader(stdin),
		Config: &config.Config{
			BaseURL:       config.DefaultBaseURL,
			Transport:     "smtp",
			DefaultOutput: "pretty",
			Timeout:       "5s",
		},
		NewMailbox: func(cfg *config.Config, apiKey string, logger *slog.Logger) (MailboxService, error) {
			ta.mailbox.apiKey = apiKey
			return ta.mailbox, nil
		},
		NewTransport: func(ctx context.Context, cfg transport.Config) (transport.Transport, error) {
			ta.tr.cfg = cfg
			return ta.tr, nil
		},
		ReadPassword: func(prompt string) (string, error) {
			if ta.password == "" {
				return "", options.ErrNotTerminal
			}
			return ta.password, nil
		},
		OpenHTML: func(email *mailslurp.Email) error {
			ta.opened = append(ta.opened, email.Body)
			return nil
		},
		Interactive: func() bool { return false },
	}
	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.Run(context.Background(), args)
}
