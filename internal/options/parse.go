package options

import (
	"fmt"
	"io"
	"strings"

	"github.com/stringmanolo/mail/internal/files"
)

// Usage is printed for -h/--help.
const Usage = `usage:
  mail <operation> [options]
  mail config show|set <key> <value>

operation:
  mail.send             Send a mail. You can use any provider.
  mail.create           Create a MailSlurp inbox.
  mail.read             Read MailSlurp mail.
  mail.delete           Delete a MailSlurp inbox.

options:
  -a  --api             MailSlurp API key. https://app.mailslurp.com/
  -i  --id              Inbox id (create an inbox to get the id)
      --use-slurp       Send the mail from a MailSlurp inbox
  -u  --user            Your email account.
  -p  --password        Your email password.
  -l  --load            YAML file with user, password and api_key
  -t  --to              Target email/s. CSV if multiple
  -s  --subject         Email subject.
  -m  --message         Email message.
  -mf --message-file    Email message (read it from a file)
  -n  --new             Name for the new MailSlurp inbox
      --html            Send message as HTML
      --transport       smtp (default), mailgun or ses
      --smtp-host       SMTP server host:port (overrides provider preset)
  -o  --output          Output format: pretty, json
      --pick            Select inboxes and emails from an interactive list
      --open-html       Open HTML emails in the browser (mail.read)
      --save-attachments DIR
                        Download attachments of the read email to DIR
  -v  --verbose         Debug logging to stderr
      --config          Config file (default $HOME/.config/mail/config.yaml)
  -h  --help            This message.
`

type valueSetter func(b *Builder, v string)

type flagSetter func(b *Builder)

var operations = map[string]Operation{
	KeywordSend:   OpSend,
	KeywordRead:   OpRead,
	KeywordCreate: OpCreate,
	KeywordDelete: OpDelete,
}

var valueFlags = map[string]valueSetter{}

var boolFlags = map[string]flagSetter{}

func registerValue(fn valueSetter, names ...string) {
	for _, n := range names {
		valueFlags[n] = fn
	}
}

func registerBool(fn flagSetter, names ...string) {
	for _, n := range names {
		boolFlags[n] = fn
	}
}

func init() {
	registerValue(func(b *Builder, v string) { b.APIKey = v }, "-a", "--api")
	registerValue(func(b *Builder, v string) { b.InboxID = v }, "-i", "--id", "--inbox", "--inbox-id")
	registerValue(func(b *Builder, v string) { b.SetUser(v) }, "-u", "--user")
	registerValue(func(b *Builder, v string) { b.Password = v }, "-p", "--pass", "--password", "--pwd")
	registerValue(func(b *Builder, v string) { b.Recipients = SplitRecipients(v) }, "-t", "--to")
	registerValue(func(b *Builder, v string) { b.Subject = v }, "-s", "--subject")
	registerValue(func(b *Builder, v string) { b.Message = v }, "-m", "--message")
	registerValue(func(b *Builder, v string) {
		text, _ := files.LoadText(v)
		b.Message = text
	}, "-mf", "--message-file")
	registerValue(func(b *Builder, v string) { b.NewMailboxSeed = v }, "-n", "--new", "--new-mail")
	registerValue(func(b *Builder, v string) { b.Load = v }, "-l", "--load")
	registerValue(func(b *Builder, v string) { b.Transport = v }, "--transport")
	registerValue(func(b *Builder, v string) { b.SMTPHost = v }, "--smtp-host")
	registerValue(func(b *Builder, v string) { b.Output = v }, "-o", "--output")
	registerValue(func(b *Builder, v string) { b.SaveDir = v }, "--save-attachments")
	registerValue(func(b *Builder, v string) { b.ConfigFile = v }, "--config")

	registerBool(func(b *Builder) { b.UseManagedSend = true }, "--use-slurp")
	registerBool(func(b *Builder) { b.AsHTML = true }, "--html")
	registerBool(func(b *Builder) { b.Pick = true }, "--pick")
	registerBool(func(b *Builder) { b.OpenHTML = true }, "--open-html")
	registerBool(func(b *Builder) { b.Verbose = true }, "-v", "--verbose")
}

// IsHelp reports whether tok requests usage text.
func IsHelp(tok string) bool {
	return tok == "-h" || tok == "--help"
}

// Parse walks args into a Builder. If any token asks for help the usage
// text is written to w and Parse returns (nil, false); the caller must
// do nothing further.
//
// The last operation keyword wins. Valued flags take the next token
// even if it looks like a flag; a valued flag in last position is
// ignored. Unknown tokens are ignored.
func Parse(w io.Writer, args []string) (*Builder, bool) {
	for _, a := range args {
		if IsHelp(a) {
			fmt.Fprint(w, Usage)
			return nil, false
		}
	}

	b := &Builder{}
	for i := 0; i < len(args); i++ {
		tok := args[i]

		if op, ok := operations[tok]; ok {
			b.Operation = op
			continue
		}
		if set, ok := boolFlags[tok]; ok {
			set(b)
			continue
		}
		if set, ok := valueFlags[tok]; ok {
			if i+1 >= len(args) {
				continue
			}
			i++
			set(b, args[i])
		}
	}
	return b, true
}

// SplitRecipients splits a comma-separated list, trimming entries and
// dropping empty ones.
func SplitRecipients(v string) []string {
	if !strings.Contains(v, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil
		}
		return []string{v}
	}

	var out []string
	for _, r := range strings.Split(v, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
