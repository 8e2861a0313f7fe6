// Package config holds the immutable run configuration for basekeeper.
// It is constructed once at startup from the optional YAML file, the
// BASEKEEPER_* environment variables, and CLI flags (in that order of
// precedence, later wins), then threaded by value into each component.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is the optional configuration file location.
	DefaultPath = "/etc/basekeeper/config.yaml"

	// DefaultLedgerPath is the disabled-set ledger location.
	DefaultLedgerPath = "/var/lib/basekeeper/disabled-fpm"

	// DefaultLogFile is the append-only log sink location.
	DefaultLogFile = "/var/log/basekeeper.log"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
)

// Config is the top-level run configuration.
type Config struct {
	// LogLevel is the log level: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFile is the append-only log sink. Default: /var/log/basekeeper.log
	LogFile string `yaml:"log_file"`

	// LedgerPath is the disabled-set ledger file.
	// Default: /var/lib/basekeeper/disabled-fpm
	LedgerPath string `yaml:"ledger_path"`

	// NonInteractive suppresses all prompts, answers them with safe
	// defaults, and skips the PHP-FPM disable and re-enable flows outright.
	NonInteractive bool `yaml:"non_interactive"`

	// AutoConfirm answers every yes/no prompt with yes. Dangerous: it
	// bypasses human review, but never the guardrail.
	AutoConfirm bool `yaml:"auto_confirm"`

	// SkipHardening skips the security hardening subsystem entirely.
	SkipHardening bool `yaml:"skip_hardening"`

	// SkipPHP skips the PHP-FPM lifecycle subsystem entirely.
	SkipPHP bool `yaml:"skip_php"`
}

// Parse loads the configuration file at path, applies environment
// overrides and defaults, and validates the result. A missing file at the
// default location is not an error; the file is optional.
func Parse(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// optional file
	case err != nil:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv applies BASEKEEPER_* environment overrides. Boolean variables
// accept "1", "true" and "yes" (case-insensitive) as true.
func (c *Config) ApplyEnv() {
	applyBoolEnv("BASEKEEPER_NON_INTERACTIVE", &c.NonInteractive)
	applyBoolEnv("BASEKEEPER_YES", &c.AutoConfirm)
	applyBoolEnv("BASEKEEPER_SKIP_HARDENING", &c.SkipHardening)
	applyBoolEnv("BASEKEEPER_SKIP_PHP", &c.SkipPHP)
	if v := os.Getenv("BASEKEEPER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("BASEKEEPER_LEDGER"); v != "" {
		c.LedgerPath = v
	}
}

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
	if c.LedgerPath == "" {
		c.LedgerPath = DefaultLedgerPath
	}
}

// Validate checks that values are acceptable.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log_level %q (must be debug, info, warn or error)", c.LogLevel)
	}
	return nil
}

func applyBoolEnv(key string, dst *bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		*dst = true
	case "0", "false", "no", "":
		*dst = false
	}
}
