package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/stringmanolo/mail/internal/cliutil"
	"github.com/stringmanolo/mail/internal/files"
	"github.com/stringmanolo/mail/internal/mailslurp"
	"github.com/stringmanolo/mail/internal/output"
	"github.com/stringmanolo/mail/internal/prompt"
)

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// read lists an inbox, asks for an email id and prints that email.
func (r *runner) read(ctx context.Context) error {
	svc, err := r.mailbox()
	if err != nil {
		return err
	}

	inboxID, err := r.chooseInbox(ctx, svc, "Available email accounts:", question{
		Title: "Select an inbox",
		Line:  "Paste the email account you want to access:\n\nemail -> ",
	})
	if err != nil {
		return err
	}

	emails, err := r.listEmails(ctx, svc, inboxID)
	if err != nil {
		return err
	}
	if len(emails) == 0 {
		r.logger.Debug("inbox is empty", "inbox", inboxID)
		return nil
	}

	if !r.pick {
		if err := printEmailList(r, emails); err != nil {
			return err
		}
	}

	choices := make([]prompt.Choice, 0, len(emails))
	for _, e := range emails {
		choices = append(choices, prompt.Choice{
			Label: cliutil.Truncate(subjectOrPlaceholder(e.Subject), 60),
			Value: e.ID,
			Note:  e.From + " · " + cliutil.FormatRelativeTime(e.CreatedAt),
		})
	}

	emailID, err := r.ask(question{
		Title: "Select an email",
		Line:  "\nPaste the email id you want to read:\n\nid -> ",
	}, choices)
	if err != nil {
		return err
	}

	cctx, cancel := r.call(ctx)
	defer cancel()
	email, err := svc.GetEmail(cctx, emailID)
	if err != nil {
		return fmt.Errorf("failed to get email: %w", err)
	}

	saved, err := r.saveAttachments(ctx, svc, email)
	if err != nil {
		return err
	}

	if r.opts.JSON() {
		m := cliutil.EmailFullJSON(email)
		if r.opts.SaveDir != "" {
			m["savedAttachments"] = saved
		}
		if err := cliutil.OutputJSON(r.out, m); err != nil {
			return err
		}
	} else {
		printEmail(r, email)
		for _, path := range saved {
			fmt.Fprintf(r.out, "Saved attachment: %s\n", path)
		}
	}

	if r.opts.OpenHTML {
		r.openHTML(email)
	}
	return nil
}

func (r *runner) listEmails(ctx context.Context, svc MailboxService, inboxID string) ([]mailslurp.EmailPreview, error) {
	cctx, cancel := r.call(ctx)
	defer cancel()

	emails, err := svc.ListEmails(cctx, inboxID)
	if err != nil {
		return nil, fmt.Errorf("failed to list emails: %w", err)
	}
	return emails, nil
}

// saveAttachments downloads every attachment of email into SaveDir and
// returns the written paths.
func (r *runner) saveAttachments(ctx context.Context, svc MailboxService, email *mailslurp.Email) ([]string, error) {
	saved := []string{}
	if r.opts.SaveDir == "" {
		return saved, nil
	}

	for _, attID := range email.Attachments {
		cctx, cancel := r.call(ctx)
		data, err := svc.DownloadAttachment(cctx, email.ID, attID)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to download attachment %s: %w", attID, err)
		}

		path, err := files.SaveAttachment(r.opts.SaveDir, attID, data)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("saved attachment", "id", attID, "path", path, "bytes", len(data))
		saved = append(saved, path)
	}
	return saved, nil
}

// openHTML shows an HTML body in the browser. Failures only warn since
// the email was already printed.
func (r *runner) openHTML(email *mailslurp.Email) {
	if !email.IsHTML {
		fmt.Fprintln(r.app.Err, output.PrintInfo("Email has no HTML body"))
		return
	}
	if err := r.app.OpenHTML(email); err != nil {
		r.logger.Warn("failed to open browser", "error", err)
	}
}

func subjectOrPlaceholder(s string) string {
	if s == "" {
		return "(no subject)"
	}
	return s
}

// printEmailList shows the previews the user picks from. In JSON mode
// they go to stderr as an array so stdout only carries the chosen email.
func printEmailList(r *runner, emails []mailslurp.EmailPreview) error {
	if r.opts.JSON() {
		list := make([]map[string]interface{}, 0, len(emails))
		for _, e := range emails {
			list = append(list, cliutil.EmailSummaryJSON(e))
		}
		return cliutil.OutputJSON(r.ui, list)
	}

	fmt.Fprint(r.ui, "Received Emails:\n\n")
	for i, e := range emails {
		fmt.Fprintf(r.ui, "%s -\nID: %s\nSUBJECT: %s\nFROM: %s\nTO: %s\nBCC: %s\nCC: %s\nDATE: %s\nREAD: %s\nATTCH: %s\n\n",
			strconv.Itoa(i+1),
			e.ID,
			e.Subject,
			e.From,
			cliutil.JoinList(e.To),
			cliutil.JoinList(e.BCC),
			cliutil.JoinList(e.CC),
			formatTime(e.CreatedAt),
			strconv.FormatBool(e.Read),
			cliutil.JoinList(e.Attachments),
		)
	}
	return nil
}

func printEmail(r *runner, email *mailslurp.Email) {
	headers := email.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	hdr, err := json.MarshalIndent(headers, "", "  ")
	if err != nil {
		hdr = []byte("{}")
	}

	fmt.Fprintf(r.out, "MAIL:\nUserID: %s\nAttachments: %s\nSubject: %s\nMessage:\n%s\n\nMessageMD5Hash: %s\nHeaders: %s\n",
		email.UserID,
		cliutil.JoinList(email.Attachments),
		email.Subject,
		email.Body,
		email.BodyMD5Hash,
		string(hdr),
	)
}
