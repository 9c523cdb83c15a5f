package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stringmanolo/mail/internal/cliutil"
	"github.com/stringmanolo/mail/internal/config"
	"github.com/stringmanolo/mail/internal/output"
	"github.com/stringmanolo/mail/internal/prompt"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure API key, transport and defaults",
	Long: `Manage mail configuration.

Running 'mail config' without subcommands starts interactive configuration.

Examples:
  mail config                        # Interactive configuration
  mail config show                   # Show current configuration
  mail config set api-key <key>      # Set MailSlurp API key
  mail config set transport mailgun  # Set the default transport`,
	Args: cobra.NoArgs,
	RunE: runConfigInteractive,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Available keys:
  api-key         - MailSlurp API key
  base-url        - MailSlurp API URL (default: https://api.mailslurp.com)
  transport       - default transport for mail.send: smtp, mailgun or ses
  smtp-host       - default SMTP server as host[:port]
  ses-region      - AWS region for the ses transport
  ses-access-key  - static AWS access key for the ses transport
  ses-secret-key  - static AWS secret key for the ses transport
  output          - default output format: pretty or json
  timeout         - per-request timeout, e.g. 30s

Examples:
  mail config set api-key 0123abcd...
  mail config set smtp-host smtp.example.com:2525`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)

	configShowCmd.Flags().StringP("output", "o", "", "Output format: pretty, json")
}

func runConfigInteractive(cmd *cobra.Command, args []string) error {
	in := prompt.NewLineReader(cmd.InOrStdin(), cmd.OutOrStdout())

	existing, err := config.ReadFile()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	defaultURL := config.DefaultBaseURL
	if existing.BaseURL != "" {
		defaultURL = existing.BaseURL
	}
	baseURL, err := in.Ask(fmt.Sprintf("MailSlurp URL [%s]: ", defaultURL), nil)
	if err != nil {
		return err
	}
	if baseURL == "" {
		baseURL = defaultURL
	}

	label := "API Key: "
	if existing.APIKey != "" {
		label = fmt.Sprintf("API Key [%s]: ", cliutil.MaskSecret(existing.APIKey))
	}
	apiKey, err := in.Ask(label, nil)
	if err != nil {
		return err
	}
	if apiKey == "" {
		apiKey = existing.APIKey
	}

	defaultTransport := "smtp"
	if existing.Transport != "" {
		defaultTransport = existing.Transport
	}
	kind, err := in.Ask(fmt.Sprintf("Transport (smtp, mailgun, ses) [%s]: ", defaultTransport), nil)
	if err != nil {
		return err
	}
	if kind == "" {
		kind = defaultTransport
	}

	cfg := *existing
	for key, value := range map[string]string{"base-url": baseURL, "api-key": apiKey, "transport": kind} {
		if err := cfg.Set(key, value); err != nil {
			return err
		}
	}

	if err := config.Save(&cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath, _ := config.Path()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", output.PrintSuccess("Config saved to "+configPath))
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	configPath, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	rows := [][2]string{
		{"api-key", maskedOrUnset(cfg.APIKey)},
		{"base-url", cfg.BaseURL},
		{"transport", cfg.Transport},
		{"smtp-host", orUnset(cfg.SMTPHost)},
		{"ses-region", orUnset(cfg.SESRegion)},
		{"ses-access-key", maskedOrUnset(cfg.SESAccessKey)},
		{"ses-secret-key", maskedOrUnset(cfg.SESSecretKey)},
		{"output", cfg.DefaultOutput},
		{"timeout", cfg.RequestTimeout().String()},
	}

	out := cmd.OutOrStdout()
	if cliutil.GetOutput(cmd, cfg.DefaultOutput) == "json" {
		data := map[string]interface{}{"configFile": configPath}
		for _, row := range rows {
			data[camelKey(row[0])] = row[1]
		}
		return cliutil.OutputJSON(out, data)
	}

	fmt.Fprintf(out, "Config file: %s\n", configPath)
	table := cliutil.NewTable(out, cliutil.Column{Header: "KEY", Width: 16}, cliutil.Column{Header: "VALUE"})
	table.PrintHeader()
	for _, row := range rows {
		table.PrintRow(row[0], row[1])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.ReadFile()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s successfully\n", key)
	return nil
}

func maskedOrUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return cliutil.MaskSecret(s)
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// camelKey turns "ses-access-key" into "sesAccessKey".
func camelKey(key string) string {
	parts := strings.Split(key, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
