package cli

import (
	"context"

	"github.com/stringmanolo/mail/internal/mailslurp"
)

// MailboxService provides the mailbox operations used by the handlers
type MailboxService interface {
	ListInboxes(ctx context.Context, page, size int) (*mailslurp.InboxPage, error)
	CreateInbox(ctx context.Context, opts mailslurp.CreateInboxOptions) (*mailslurp.Inbox, error)
	GetInbox(ctx context.Context, inboxID string) (*mailslurp.Inbox, error)
	DeleteInbox(ctx context.Context, inboxID string) (string, error)
	ListEmails(ctx context.Context, inboxID string) ([]mailslurp.EmailPreview, error)
	GetEmail(ctx context.Context, emailID string) (*mailslurp.Email, error)
	SendEmail(ctx context.Context, inboxID string, opts mailslurp.SendEmailOptions) (*mailslurp.SentEmail, error)
	DownloadAttachment(ctx context.Context, emailID, attachmentID string) ([]byte, error)
}

var _ MailboxService = (*mailslurp.Client)(nil)
