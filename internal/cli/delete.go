package cli

import (
	"context"
	"fmt"

	"github.com/stringmanolo/mail/internal/cliutil"
)

// delete removes the inbox named by --id and prints the HTTP status.
func (r *runner) delete(ctx context.Context) error {
	svc, err := r.mailbox()
	if err != nil {
		return err
	}

	cctx, cancel := r.call(ctx)
	defer cancel()

	status, err := svc.DeleteInbox(cctx, r.opts.InboxID)
	if err != nil {
		return fmt.Errorf("failed to delete inbox: %w", err)
	}

	if r.opts.JSON() {
		return cliutil.OutputJSON(r.out, map[string]string{
			"id":     r.opts.InboxID,
			"status": status,
		})
	}
	fmt.Fprintf(r.out, "Status: %s\n", status)
	return nil
}
