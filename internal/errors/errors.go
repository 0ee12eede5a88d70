package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error (including a failed log setup).
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// DivisionByZeroError reports a division whose divisor is zero. It is a
// recoverable arithmetic error: callers record it as a failed operation and
// continue.
type DivisionByZeroError struct {
	// Dividend is the numerator of the rejected division.
	Dividend float64
}

// Error returns a description of the rejected division.
//
// Returns:
//   - string: The error message string.
func (e DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero: %g / 0", e.Dividend)
}

// NegativeOperandError reports an operand outside the non-negative domain of
// an arithmetic operation (either division operand, or the radicand of a
// square root). Recoverable, recorded as a failure.
type NegativeOperandError struct {
	// Operation names the rejecting operation ("divide" or "sqrt").
	Operation string
	// Operand is the offending value.
	Operand float64
}

// Error returns a description of the rejected operand.
//
// Returns:
//   - string: The error message string.
func (e NegativeOperandError) Error() string {
	return fmt.Sprintf("negative operand %g not allowed in %s", e.Operand, e.Operation)
}

// InvalidInputError reports non-numeric input. It is part of the error
// taxonomy for completeness; no current call path produces it because all
// demo inputs are numeric literals.
type InvalidInputError struct {
	// Input is the raw text that failed numeric interpretation.
	Input string
}

// Error returns a description of the invalid input.
//
// Returns:
//   - string: The error message string.
func (e InvalidInputError) Error() string {
	return fmt.Sprintf("non-numeric input detected: %q", e.Input)
}

// LogOpenError reports that the audit log destination could not be opened for
// writing. It is fatal at startup: the process terminates with a non-zero
// exit code after printing the message.
type LogOpenError struct {
	// Path is the log file path that could not be opened.
	Path string
	// Cause is the underlying filesystem error.
	Cause error
}

// Error returns a description of the failed log setup.
//
// Returns:
//   - string: The error message string.
func (e LogOpenError) Error() string {
	return fmt.Sprintf("cannot open log file %q: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying filesystem error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the LogOpenError.
func (e LogOpenError) Unwrap() error { return e.Cause }

// IsMathError reports whether the error is one of the recoverable arithmetic
// validation errors (division by zero or negative operand).
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is an arithmetic validation error.
func IsMathError(err error) bool {
	var dz DivisionByZeroError
	var neg NegativeOperandError
	return errors.As(err, &dz) || errors.As(err, &neg)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
