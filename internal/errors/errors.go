package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0 // Indicates successful execution.
	ExitErrorGeneric  = 1 // Indicates a generic error.
	ExitErrorMismatch = 3 // Indicates a result mismatch between strategies.
	ExitErrorConfig   = 4 // Indicates a configuration error.
	ExitErrorOutput   = 5 // Indicates the result sink could not be written.
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
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

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// ScanError wraps a failure raised while a strategy was scanning the grid.
// It preserves the original cause so callers can inspect it.
type ScanError struct {
	// Strategy is the name of the scanner that failed.
	Strategy string
	// Cause is the underlying error that aborted the scan.
	Cause error
}

// Error returns the strategy name followed by the cause message.
func (e ScanError) Error() string {
	return fmt.Sprintf("%s scan failed: %v", e.Strategy, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e ScanError) Unwrap() error { return e.Cause }

// MismatchError reports a correctness violation: a concurrent strategy
// produced a total that differs from the sequential baseline. It is never
// recoverable; it means the partitioning or aggregation logic is broken.
type MismatchError struct {
	// Strategy is the name of the scanner whose total disagreed.
	Strategy string
	// Got is the total reported by Strategy.
	Got int
	// Want is the baseline total.
	Want int
}

// Error returns a formatted message describing the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("result mismatch: %s counted %d points outside, baseline counted %d", e.Strategy, e.Got, e.Want)
}

// FanInError reports that an aggregation received a different number of
// partial results than the number of jobs that were submitted.
type FanInError struct {
	// Expected is the number of contributions the aggregation waited for.
	Expected int
	// Received is the number of contributions that actually arrived.
	Received int
}

// Error returns a formatted message describing the short or long fan-in.
func (e FanInError) Error() string {
	return fmt.Sprintf("fan-in incomplete: expected %d partial results, received %d", e.Expected, e.Received)
}

// OutputError wraps a failure to acquire or write an output resource
// (result log, metrics file).
type OutputError struct {
	// Path is the file that could not be written.
	Path string
	// Cause is the underlying I/O error.
	Cause error
}

// Error returns the path and the cause message.
func (e OutputError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e OutputError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error chain to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var (
		mismatch   MismatchError
		configErr  ConfigError
		validation ValidationError
		output     OutputError
	)
	switch {
	case errors.As(err, &mismatch):
		return ExitErrorMismatch
	case errors.As(err, &configErr), errors.As(err, &validation):
		return ExitErrorConfig
	case errors.As(err, &output):
		return ExitErrorOutput
	default:
		return ExitErrorGeneric
	}
}
