// Package mailslurp is a small HTTP client for the MailSlurp mailbox API.
//
// It covers the calls the mail CLI needs: paging through inboxes, creating,
// fetching and deleting an inbox, listing and reading its emails, sending
// from an inbox, and downloading attachments. Every request carries the
// account key in the x-api-key header.
//
// Requests are issued once. Callers bound them with a context deadline.
package mailslurp
