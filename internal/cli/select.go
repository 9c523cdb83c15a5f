package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stringmanolo/mail/internal/cliutil"
	"github.com/stringmanolo/mail/internal/mailslurp"
	"github.com/stringmanolo/mail/internal/prompt"
)

// inboxPageSize is how many inboxes are offered for selection.
const inboxPageSize = 20

// question is one selection prompt. Title heads the picker, Line is
// the plain prompt written before reading an answer.
type question struct {
	Title string
	Line  string
}

// ask returns the user's answer, or an error when nothing was chosen.
func (r *runner) ask(q question, choices []prompt.Choice) (string, error) {
	label := q.Line
	if r.pick {
		label = q.Title
	}
	answer, err := r.prompt.Ask(label, choices)
	if err != nil {
		if errors.Is(err, prompt.ErrNoInput) {
			return "", errors.New("no selection made")
		}
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", errors.New("no selection made")
	}
	return answer, nil
}

func (r *runner) listInboxes(ctx context.Context, svc MailboxService) ([]mailslurp.InboxPreview, error) {
	cctx, cancel := r.call(ctx)
	defer cancel()

	page, err := svc.ListInboxes(cctx, 0, inboxPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list inboxes: %w", err)
	}
	r.logger.Debug("listed inboxes", "count", len(page.Content), "total", page.TotalElements)
	return page.Content, nil
}

// chooseInbox resolves the inbox an operation works on. --id skips the
// listing; otherwise the inboxes are shown under heading and the user
// answers with an address or inbox id.
func (r *runner) chooseInbox(ctx context.Context, svc MailboxService, heading string, q question) (string, error) {
	if r.opts.InboxID != "" {
		return mailboxSelector(r.opts.InboxID), nil
	}

	inboxes, err := r.listInboxes(ctx, svc)
	if err != nil {
		return "", err
	}

	choices := make([]prompt.Choice, 0, len(inboxes))
	for _, in := range inboxes {
		choices = append(choices, prompt.Choice{
			Label: in.EmailAddress,
			Value: in.EmailAddress,
			Note:  "created " + cliutil.FormatRelativeTime(in.CreatedAt),
		})
	}

	if !r.pick && len(inboxes) > 0 {
		fmt.Fprintf(r.ui, "%s\n\n", heading)
		for _, in := range inboxes {
			fmt.Fprintf(r.ui, "Email: %s\nCreated: %s\n\n", in.EmailAddress, formatTime(in.CreatedAt))
		}
	}

	answer, err := r.ask(q, choices)
	if err != nil {
		return "", err
	}
	if !r.pick {
		fmt.Fprint(r.ui, "\n\n")
	}
	return mailboxSelector(answer), nil
}

// mailboxSelector reduces an address to its local part, which is the
// inbox id for generated addresses. Other input is returned trimmed.
func mailboxSelector(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "@"); i >= 0 {
		return s[:i]
	}
	return s
}
