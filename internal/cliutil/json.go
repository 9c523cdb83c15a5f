package cliutil

import (
	"time"

	"github.com/stringmanolo/mail/internal/mailslurp"
)

// EmailJSONOptions controls which fields to include in email JSON output.
type EmailJSONOptions struct {
	IncludeBody    bool // body, isHTML and bodyMD5Hash
	IncludeHeaders bool
}

// EmailJSON returns a map for JSON output with configurable fields.
func EmailJSON(email *mailslurp.Email, opts EmailJSONOptions) map[string]interface{} {
	m := map[string]interface{}{
		"id":          email.ID,
		"userId":      email.UserID,
		"inboxId":     email.InboxID,
		"subject":     email.Subject,
		"from":        email.From,
		"to":          nonNil(email.To),
		"cc":          nonNil(email.CC),
		"bcc":         nonNil(email.BCC),
		"attachments": nonNil(email.Attachments),
		"read":        email.Read,
		"createdAt":   email.CreatedAt.Format(time.RFC3339),
	}

	if opts.IncludeBody {
		m["body"] = email.Body
		m["isHTML"] = email.IsHTML
		m["bodyMD5Hash"] = email.BodyMD5Hash
	}
	if opts.IncludeHeaders {
		headers := email.Headers
		if headers == nil {
			headers = map[string]string{}
		}
		m["headers"] = headers
	}

	return m
}

// EmailFullJSON returns a map for JSON output of full email details.
// Used by the read operation.
func EmailFullJSON(email *mailslurp.Email) map[string]interface{} {
	return EmailJSON(email, EmailJSONOptions{IncludeBody: true, IncludeHeaders: true})
}

// EmailSummaryJSON returns a map for JSON output of email list items.
func EmailSummaryJSON(email mailslurp.EmailPreview) map[string]interface{} {
	return map[string]interface{}{
		"id":          email.ID,
		"subject":     email.Subject,
		"from":        email.From,
		"to":          nonNil(email.To),
		"cc":          nonNil(email.CC),
		"bcc":         nonNil(email.BCC),
		"attachments": nonNil(email.Attachments),
		"read":        email.Read,
		"createdAt":   email.CreatedAt.Format(time.RFC3339),
	}
}

// InboxJSON returns a map for JSON output of a created or fetched inbox.
func InboxJSON(inbox *mailslurp.Inbox) map[string]interface{} {
	return map[string]interface{}{
		"id":           inbox.ID,
		"name":         inbox.Name,
		"description":  inbox.Description,
		"emailAddress": inbox.EmailAddress,
		"createdAt":    inbox.CreatedAt.Format(time.RFC3339),
	}
}

// nonNil keeps empty lists as [] instead of null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
