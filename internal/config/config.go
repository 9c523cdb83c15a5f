package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	APIKey        string `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL       string `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Transport     string `yaml:"transport,omitempty" mapstructure:"transport"`
	SMTPHost      string `yaml:"smtp_host,omitempty" mapstructure:"smtp_host"`
	SESRegion     string `yaml:"ses_region,omitempty" mapstructure:"ses_region"`
	SESAccessKey  string `yaml:"ses_access_key,omitempty" mapstructure:"ses_access_key"`
	SESSecretKey  string `yaml:"ses_secret_key,omitempty" mapstructure:"ses_secret_key"`
	DefaultOutput string `yaml:"default_output,omitempty" mapstructure:"default_output"`
	Timeout       string `yaml:"timeout,omitempty" mapstructure:"timeout"`
}

// DefaultBaseURL is the MailSlurp API endpoint.
const DefaultBaseURL = "https://api.mailslurp.com"

// DefaultTimeout bounds each network call.
const DefaultTimeout = 30 * time.Second

// EnvPrefix prefixes environment overrides, e.g. MAIL_API_KEY.
const EnvPrefix = "MAIL"

// ErrUnknownKey is returned by Set for an unsupported key.
var ErrUnknownKey = errors.New("unknown config key")

// Dir returns the mail config directory path.
// Respects MAIL_CONFIG_DIR environment variable if set.
func Dir() (string, error) {
	if dir := os.Getenv("MAIL_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "mail"), nil
}

// Path returns the config file path (~/.config/mail/config.yaml)
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// EnsureDir creates the config directory if it doesn't exist
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("transport", "smtp")
	v.SetDefault("smtp_host", "")
	v.SetDefault("ses_region", "")
	v.SetDefault("ses_access_key", "")
	v.SetDefault("ses_secret_key", "")
	v.SetDefault("default_output", "pretty")
	v.SetDefault("timeout", DefaultTimeout.String())
}

// Load resolves settings with priority: env (MAIL_<KEY>) > config file >
// default. An empty path means the default config file. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		path = p
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ReadFile returns only what is stored in the config file, without env
// overrides or defaults. Returns an empty Config if the file doesn't exist.
func ReadFile() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config to disk as YAML
func Save(cfg *Config) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	path, err := Path()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// RequestTimeout returns the per-call network timeout.
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// setters maps `mail config set` keys to fields.
var setters = map[string]func(c *Config, v string) error{
	"api-key":  func(c *Config, v string) error { c.APIKey = v; return nil },
	"base-url": func(c *Config, v string) error { c.BaseURL = strings.TrimRight(v, "/"); return nil },
	"transport": func(c *Config, v string) error {
		switch v {
		case "smtp", "mailgun", "ses":
			c.Transport = v
			return nil
		}
		return fmt.Errorf("invalid transport %q (valid: smtp, mailgun, ses)", v)
	},
	"smtp-host":      func(c *Config, v string) error { c.SMTPHost = v; return nil },
	"ses-region":     func(c *Config, v string) error { c.SESRegion = v; return nil },
	"ses-access-key": func(c *Config, v string) error { c.SESAccessKey = v; return nil },
	"ses-secret-key": func(c *Config, v string) error { c.SESSecretKey = v; return nil },
	"output": func(c *Config, v string) error {
		if v != "pretty" && v != "json" {
			return fmt.Errorf("invalid output %q (valid: pretty, json)", v)
		}
		c.DefaultOutput = v
		return nil
	},
	"timeout": func(c *Config, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid timeout %q (e.g. 30s, 2m)", v)
		}
		c.Timeout = d.String()
		return nil
	},
}

// Keys returns the keys accepted by Set, sorted.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set updates the field named by key.
func (c *Config) Set(key, value string) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("%w: %s (valid keys: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	return set(c, value)
}
