package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

// newApp builds the App for a root invocation. Tests replace it.
var newApp = NewApp

var rootCmd = &cobra.Command{
	Use:   "mail <operation> [options]",
	Short: "Send mail through any provider and manage MailSlurp inboxes",
	Long: `mail sends email through SMTP providers, Mailgun or Amazon SES and
manages disposable MailSlurp inboxes from the terminal.

Operations:
  mail.send     send a message
  mail.read     list an inbox and read one email
  mail.create   create an inbox
  mail.delete   delete an inbox

Run 'mail --help' for every option, or 'mail config' to store defaults.

Examples:
  mail mail.send -u me@gmail.com -t you@example.com -s Hi -m "Hello"
  mail mail.read --api KEY
  mail mail.delete --id 4f1c... --api KEY`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context) int {
	return execute(ctx, os.Args[1:])
}

// execute hands args to the config subcommand only when it is named
// first. Everything else goes to the root handler untouched, so option
// values such as "config" or "help" never select a subcommand.
func execute(ctx context.Context, args []string) int {
	if len(args) > 0 && args[0] == configCmd.Name() {
		rootCmd.SetArgs(args)
	} else {
		rootCmd.SetArgs(append([]string{"--"}, args...))
	}

	err := rootCmd.ExecuteContext(ctx)
	ReportError(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), err)
	return ExitCode(err)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 1 && args[0] == "--version" {
		fmt.Fprintf(cmd.OutOrStdout(), "mail version %s\n", Version)
		return nil
	}

	app := newApp()
	app.Out = cmd.OutOrStdout()
	app.Err = cmd.ErrOrStderr()
	app.In = cmd.InOrStdin()

	return app.Run(cmd.Context(), args)
}
