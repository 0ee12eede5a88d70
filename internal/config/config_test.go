package config

import (
	"errors"
	"io"
	"testing"
	"time"

	apperrors "github.com/agbru/mathmon/internal/errors"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("mathmon", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.LogFile != "system.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "system.log")
	}
	if cfg.Delay != 500*time.Millisecond {
		t.Errorf("Delay = %v, want 500ms", cfg.Delay)
	}
	if cfg.Quiet || cfg.TUI {
		t.Errorf("Quiet/TUI should default to false, got %+v", cfg)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want func(AppConfig) bool
	}{
		{
			name: "log file override",
			args: []string{"-log-file", "/tmp/run.log"},
			want: func(c AppConfig) bool { return c.LogFile == "/tmp/run.log" },
		},
		{
			name: "delay override",
			args: []string{"-delay", "0s"},
			want: func(c AppConfig) bool { return c.Delay == 0 },
		},
		{
			name: "quiet shorthand",
			args: []string{"-q"},
			want: func(c AppConfig) bool { return c.Quiet },
		},
		{
			name: "tui mode",
			args: []string{"-tui"},
			want: func(c AppConfig) bool { return c.TUI },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig("mathmon", tt.args, io.Discard)
			if err != nil {
				t.Fatalf("ParseConfig(%v) error: %v", tt.args, err)
			}
			if !tt.want(cfg) {
				t.Errorf("ParseConfig(%v) = %+v", tt.args, cfg)
			}
		})
	}
}

func TestParseConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "negative delay", args: []string{"-delay", "-1s"}},
		{name: "zero timeout", args: []string{"-timeout", "0s"}},
		{name: "empty log file", args: []string{"-log-file", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("mathmon", tt.args, io.Discard)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("ParseConfig(%v) error = %v, want ConfigError", tt.args, err)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env applies when flag not set", func(t *testing.T) {
		t.Setenv(EnvPrefix+"DELAY", "10ms")
		t.Setenv(EnvPrefix+"QUIET", "yes")

		cfg, err := ParseConfig("mathmon", nil, io.Discard)
		if err != nil {
			t.Fatalf("ParseConfig() error: %v", err)
		}
		if cfg.Delay != 10*time.Millisecond {
			t.Errorf("Delay = %v, want 10ms from env", cfg.Delay)
		}
		if !cfg.Quiet {
			t.Error("Quiet should be set from env")
		}
	})

	t.Run("explicit flag beats env", func(t *testing.T) {
		t.Setenv(EnvPrefix+"DELAY", "10ms")

		cfg, err := ParseConfig("mathmon", []string{"-delay", "250ms"}, io.Discard)
		if err != nil {
			t.Fatalf("ParseConfig() error: %v", err)
		}
		if cfg.Delay != 250*time.Millisecond {
			t.Errorf("Delay = %v, want flag value 250ms", cfg.Delay)
		}
	})

	t.Run("invalid env value keeps default", func(t *testing.T) {
		t.Setenv(EnvPrefix+"DELAY", "soon")

		cfg, err := ParseConfig("mathmon", nil, io.Discard)
		if err != nil {
			t.Fatalf("ParseConfig() error: %v", err)
		}
		if cfg.Delay != DefaultDelay {
			t.Errorf("Delay = %v, want default %v", cfg.Delay, DefaultDelay)
		}
	})
}
