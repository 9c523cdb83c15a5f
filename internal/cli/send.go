package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stringmanolo/mail/internal/cliutil"
	"github.com/stringmanolo/mail/internal/mailslurp"
	"github.com/stringmanolo/mail/internal/transport"
)

const managedSendHint = "If you are unable to send the mail using slurp, you can use a service like gmail for mail sending."

func (r *runner) send(ctx context.Context) error {
	if r.opts.UseManagedSend {
		return r.sendManaged(ctx)
	}
	return r.sendGeneric(ctx)
}

// sendGeneric delivers through the configured transport and prints the
// provider's response.
func (r *runner) sendGeneric(ctx context.Context) error {
	cfg := transport.Config{
		Kind:         r.opts.Transport,
		User:         r.opts.User,
		Password:     r.opts.Password,
		ProviderHint: r.opts.ProviderHint,
		SMTPHost:     r.opts.SMTPHost,
		SESRegion:    r.cfg.SESRegion,
		SESAccessKey: r.cfg.SESAccessKey,
		SESSecretKey: r.cfg.SESSecretKey,
		Timeout:      r.timeout,
		Logger:       r.logger,
	}

	cctx, cancel := r.call(ctx)
	defer cancel()

	t, err := r.app.NewTransport(cctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to set up %s transport: %w", r.opts.Transport, err)
	}

	r.logger.Debug("sending", "transport", t.Name(), "recipients", len(r.opts.Recipients))
	resp, err := t.Send(cctx, &transport.Message{
		From:    r.opts.User,
		To:      r.opts.Recipients,
		Subject: r.opts.SendSubject(),
		Body:    r.opts.Message,
		HTML:    r.opts.AsHTML,
	})
	if err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	if r.opts.JSON() {
		return cliutil.OutputJSON(r.out, map[string]interface{}{
			"transport": t.Name(),
			"response":  resp,
		})
	}
	fmt.Fprintln(r.out, resp)
	return nil
}

// sendManaged sends from one of the account's inboxes.
func (r *runner) sendManaged(ctx context.Context) error {
	svc, err := r.mailbox()
	if err != nil {
		return err
	}

	inboxID, err := r.chooseInbox(ctx, svc, "Available email accounts:", question{
		Title: "Send from",
		Line:  "Paste the email account you want to use:\n\nemail -> ",
	})
	if err != nil {
		return err
	}

	cctx, cancel := r.call(ctx)
	defer cancel()

	sent, err := svc.SendEmail(cctx, inboxID, mailslurp.SendEmailOptions{
		To:      r.opts.Recipients,
		Subject: r.opts.SendSubject(),
		Body:    r.opts.Message,
		IsHTML:  r.opts.AsHTML,
	})
	if err != nil {
		fmt.Fprintf(r.ui, "Error sending: %s\n\n%s\n", errorJSON(err), managedSendHint)
		return &reportedError{err: err}
	}
	return cliutil.OutputJSON(r.out, sent)
}

// errorJSON renders err as a JSON object for diagnostics.
func errorJSON(err error) string {
	body := map[string]interface{}{"message": err.Error()}
	var apiErr *mailslurp.APIError
	if errors.As(err, &apiErr) {
		body["status"] = apiErr.StatusCode
		body["message"] = apiErr.Message
	}
	data, mErr := json.Marshal(body)
	if mErr != nil {
		return err.Error()
	}
	return string(data)
}
