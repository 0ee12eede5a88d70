// Package apperrors provides tests for application error types.
package apperrors

import (
	"errors"
	"io/fs"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %s for flag %s", "-1ms", "--delay"),
			expected: "invalid value -1ms for flag --delay",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestArithmeticErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
		isMath   bool
	}{
		{
			name:     "DivisionByZeroError message includes dividend",
			err:      DivisionByZeroError{Dividend: 10},
			expected: "division by zero: 10 / 0",
			isMath:   true,
		},
		{
			name:     "NegativeOperandError message names the operation",
			err:      NegativeOperandError{Operation: "divide", Operand: -5},
			expected: "negative operand -5 not allowed in divide",
			isMath:   true,
		},
		{
			name:     "NegativeOperandError for sqrt",
			err:      NegativeOperandError{Operation: "sqrt", Operand: -2.5},
			expected: "negative operand -2.5 not allowed in sqrt",
			isMath:   true,
		},
		{
			name:     "InvalidInputError is not an arithmetic error",
			err:      InvalidInputError{Input: "abc"},
			expected: `non-numeric input detected: "abc"`,
			isMath:   false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if got := IsMathError(tt.err); got != tt.isMath {
				t.Errorf("IsMathError() = %v, want %v", got, tt.isMath)
			}
		})
	}
}

func TestLogOpenError(t *testing.T) {
	t.Parallel()

	cause := fs.ErrPermission
	err := LogOpenError{Path: "system.log", Cause: cause}

	t.Run("Error includes path and cause", func(t *testing.T) {
		t.Parallel()
		want := `cannot open log file "system.log": permission denied`
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		t.Parallel()
		if !errors.Is(err, fs.ErrPermission) {
			t.Error("errors.Is should find the filesystem cause in the chain")
		}
	})

	t.Run("errors.As works with LogOpenError", func(t *testing.T) {
		t.Parallel()
		wrapped := WrapError(err, "startup failed")
		var loe LogOpenError
		if !errors.As(wrapped, &loe) {
			t.Error("expected error to be LogOpenError type")
		}
		if loe.Path != "system.log" {
			t.Errorf("Path = %q, want %q", loe.Path, "system.log")
		}
	})
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should return nil")
		}
	})

	t.Run("wrapped error preserves chain", func(t *testing.T) {
		t.Parallel()
		base := DivisionByZeroError{Dividend: 7}
		wrapped := WrapError(base, "batch item %d", 5)
		if wrapped.Error() != "batch item 5: division by zero: 7 / 0" {
			t.Errorf("unexpected message: %q", wrapped.Error())
		}
		var dz DivisionByZeroError
		if !errors.As(wrapped, &dz) {
			t.Error("expected DivisionByZeroError in the chain")
		}
	})
}
