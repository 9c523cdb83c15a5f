package options

import (
	"errors"
	"fmt"
	"os"

	"github.com/creachadair/getpass"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// ErrNotTerminal is returned by TerminalPassword when stdin is not a TTY.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Credentials is the file read by -l/--load.
type Credentials struct {
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	APIKey    string `yaml:"api_key"`
	Transport string `yaml:"transport"`
	SMTPHost  string `yaml:"smtp_host"`
}

// ReadCredentials parses a YAML credentials file.
func ReadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	var c Credentials
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file %s: %w", path, err)
	}
	return &c, nil
}

// LoadCredentials fills fields not given on the command line from the
// file named by --load. It is a no-op without --load.
func (b *Builder) LoadCredentials() error {
	if b.Load == "" {
		return nil
	}
	c, err := ReadCredentials(b.Load)
	if err != nil {
		return err
	}

	if b.User == "" && c.User != "" {
		b.SetUser(c.User)
	}
	fill(&b.Password, c.Password)
	fill(&b.APIKey, c.APIKey)
	fill(&b.Transport, c.Transport)
	fill(&b.SMTPHost, c.SMTPHost)
	return nil
}

// Defaults are values from the environment or config file, used only
// where neither flags nor the credentials file set anything.
type Defaults struct {
	APIKey    string
	Transport string
	SMTPHost  string
	Output    string
}

// ApplyDefaults fills unset fields from d.
func (b *Builder) ApplyDefaults(d Defaults) {
	fill(&b.APIKey, d.APIKey)
	fill(&b.Transport, d.Transport)
	fill(&b.SMTPHost, d.SMTPHost)
	fill(&b.Output, d.Output)
}

func fill(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// PasswordFunc reads a password for the given prompt.
type PasswordFunc func(prompt string) (string, error)

// TerminalPassword prompts on the controlling terminal without echo.
func TerminalPassword(prompt string) (string, error) {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return "", ErrNotTerminal
	}
	return getpass.Prompt(prompt)
}

// ResolvePassword asks for the sender password when a generic send
// needs one. Without a terminal the builder is left unchanged and
// Validate reports the missing credential.
func (b *Builder) ResolvePassword(read PasswordFunc) error {
	if read == nil || !b.NeedsPassword() {
		return nil
	}
	pw, err := read(fmt.Sprintf("Password for %s: ", b.User))
	if err != nil {
		if errors.Is(err, ErrNotTerminal) {
			return nil
		}
		return fmt.Errorf("failed to read password: %w", err)
	}
	b.Password = pw
	return nil
}
