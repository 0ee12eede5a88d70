// Package config defines the application configuration and its resolution
// chain: CLI flags take priority over environment variables, which take
// priority over built-in defaults. Defaults reproduce the plain demo run
// (system.log in the working directory, 500ms pacing).
package config

import (
	"flag"
	"io"
	"time"

	apperrors "github.com/agbru/mathmon/internal/errors"
)

// EnvPrefix is the prefix of every environment variable read by this package.
const EnvPrefix = "MATHMON_"

// Defaults for the demo run.
const (
	DefaultLogFile = "system.log"
	DefaultDelay   = 500 * time.Millisecond
	DefaultTimeout = 5 * time.Minute
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// LogFile is the audit log destination, opened in append mode.
	LogFile string
	// Delay is the pacing delay between batch trials.
	Delay time.Duration
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet suppresses decorative console output. Audit log content is
	// unaffected.
	Quiet bool
	// TUI enables the interactive live view of the batch.
	TUI bool
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment overrides for flags not set explicitly.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.StringVar(&cfg.LogFile, "log-file", DefaultLogFile, "audit log file (appended across runs)")
	fs.DurationVar(&cfg.Delay, "delay", DefaultDelay, "pacing delay between batch operations")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum run duration")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress decorative console output")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.TUI, "tui", false, "interactive live view of the batch")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if cfg.Delay < 0 {
		return AppConfig{}, apperrors.NewConfigError("delay must not be negative, got %s", cfg.Delay)
	}
	if cfg.Timeout <= 0 {
		return AppConfig{}, apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.LogFile == "" {
		return AppConfig{}, apperrors.NewConfigError("log file path must not be empty")
	}

	return cfg, nil
}
