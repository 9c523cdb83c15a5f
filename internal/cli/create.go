package cli

import (
	"context"
	"fmt"

	"github.com/stringmanolo/mail/internal/cliutil"
	"github.com/stringmanolo/mail/internal/mailslurp"
)

// create makes a new inbox named after the seed and prints the stored
// record.
func (r *runner) create(ctx context.Context) error {
	svc, err := r.mailbox()
	if err != nil {
		return err
	}

	cctx, cancel := r.call(ctx)
	defer cancel()

	created, err := svc.CreateInbox(cctx, mailslurp.CreateInboxOptions{Name: r.opts.NewMailboxSeed})
	if err != nil {
		return fmt.Errorf("failed to create inbox: %w", err)
	}
	r.logger.Debug("created inbox", "id", created.ID)

	inbox, err := svc.GetInbox(cctx, created.ID)
	if err != nil {
		return fmt.Errorf("failed to get inbox %s: %w", created.ID, err)
	}

	if r.opts.JSON() {
		return cliutil.OutputJSON(r.out, cliutil.InboxJSON(inbox))
	}
	fmt.Fprintf(r.out, "Inbox:\nID -> %s\nNAME -> %s\nDESCRIPTION -> %s\nEMAIL -> %s\n",
		inbox.ID, inbox.Name, inbox.Description, inbox.EmailAddress)
	return nil
}
