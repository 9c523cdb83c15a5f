package mailslurp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// ListInboxes returns one page of the account's inboxes, newest first.
func (c *Client) ListInboxes(ctx context.Context, page, size int) (*InboxPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	q.Set("sort", "DESC")

	var result InboxPage
	if _, err := c.do(ctx, http.MethodGet, "/inboxes/paginated", q, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateInbox provisions a new inbox.
func (c *Client) CreateInbox(ctx context.Context, opts CreateInboxOptions) (*Inbox, error) {
	q := url.Values{}
	if opts.Name != "" {
		q.Set("name", opts.Name)
	}
	if opts.Description != "" {
		q.Set("description", opts.Description)
	}

	var result Inbox
	if _, err := c.do(ctx, http.MethodPost, "/inboxes", q, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetInbox fetches an inbox by id.
func (c *Client) GetInbox(ctx context.Context, inboxID string) (*Inbox, error) {
	var result Inbox
	path := fmt.Sprintf("/inboxes/%s", url.PathEscape(inboxID))
	if _, err := c.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteInbox removes an inbox and returns the HTTP status line of the reply.
func (c *Client) DeleteInbox(ctx context.Context, inboxID string) (string, error) {
	path := fmt.Sprintf("/inboxes/%s", url.PathEscape(inboxID))
	resp, err := c.do(ctx, http.MethodDelete, path, nil, nil, nil)
	if err != nil {
		return "", err
	}
	return resp.Status, nil
}

// ListEmails returns previews of the emails in an inbox.
func (c *Client) ListEmails(ctx context.Context, inboxID string) ([]EmailPreview, error) {
	var result []EmailPreview
	path := fmt.Sprintf("/inboxes/%s/emails", url.PathEscape(inboxID))
	if _, err := c.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetEmail fetches a full email by id.
func (c *Client) GetEmail(ctx context.Context, emailID string) (*Email, error) {
	var result Email
	path := fmt.Sprintf("/emails/%s", url.PathEscape(emailID))
	if _, err := c.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendEmail sends an email from the given inbox and returns the confirmation.
func (c *Client) SendEmail(ctx context.Context, inboxID string, opts SendEmailOptions) (*SentEmail, error) {
	var result SentEmail
	path := fmt.Sprintf("/inboxes/%s/confirm", url.PathEscape(inboxID))
	if _, err := c.do(ctx, http.MethodPost, path, nil, opts, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DownloadAttachment returns the raw bytes of an attachment.
func (c *Client) DownloadAttachment(ctx context.Context, emailID, attachmentID string) ([]byte, error) {
	path := fmt.Sprintf("/emails/%s/attachments/%s",
		url.PathEscape(emailID), url.PathEscape(attachmentID))
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/octet-stream")

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	return data, nil
}
