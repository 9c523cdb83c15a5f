package mailslurp

import "time"

// Inbox is a full inbox record.
type Inbox struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId,omitempty"`
	Name         string     `json:"name,omitempty"`
	Description  string     `json:"description,omitempty"`
	EmailAddress string     `json:"emailAddress"`
	CreatedAt    time.Time  `json:"createdAt"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	Favourite    bool       `json:"favourite"`
	Tags         []string   `json:"tags,omitempty"`
	InboxType    string     `json:"inboxType,omitempty"`
}

// InboxPreview is the reduced inbox record returned by list calls.
type InboxPreview struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	EmailAddress string    `json:"emailAddress"`
	CreatedAt    time.Time `json:"createdAt"`
	Favourite    bool      `json:"favourite"`
}

// InboxPage is one page of inboxes.
type InboxPage struct {
	Content       []InboxPreview `json:"content"`
	TotalElements int            `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
	Number        int            `json:"number"`
	Size          int            `json:"size"`
}

// EmailPreview is the summary of an email in an inbox listing.
type EmailPreview struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	From        string    `json:"from"`
	To          []string  `json:"to"`
	CC          []string  `json:"cc"`
	BCC         []string  `json:"bcc"`
	CreatedAt   time.Time `json:"createdAt"`
	Read        bool      `json:"read"`
	Attachments []string  `json:"attachments"`
}

// Email is a full received email.
type Email struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	InboxID     string            `json:"inboxId"`
	From        string            `json:"from"`
	To          []string          `json:"to"`
	CC          []string          `json:"cc"`
	BCC         []string          `json:"bcc"`
	Subject     string            `json:"subject"`
	Body        string            `json:"body"`
	BodyMD5Hash string            `json:"bodyMD5Hash"`
	IsHTML      bool              `json:"isHTML"`
	Headers     map[string]string `json:"headers"`
	Attachments []string          `json:"attachments"`
	CreatedAt   time.Time         `json:"createdAt"`
	Read        bool              `json:"read"`
}

// SendEmailOptions describes an outgoing email from an inbox.
type SendEmailOptions struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	IsHTML  bool     `json:"isHTML"`
}

// SentEmail is the confirmation returned after sending.
type SentEmail struct {
	ID        string    `json:"id"`
	InboxID   string    `json:"inboxId"`
	From      string    `json:"from,omitempty"`
	To        []string  `json:"to"`
	Subject   string    `json:"subject,omitempty"`
	MessageID string    `json:"messageId,omitempty"`
	SentAt    time.Time `json:"sentAt"`
}

// CreateInboxOptions are the optional fields of a new inbox.
type CreateInboxOptions struct {
	Name        string
	Description string
}
