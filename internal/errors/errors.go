// Package errors provides sentinel errors for the stdbuild CLI.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for known failure conditions.
var (
	// ErrMissingTool indicates a required external executable is not on PATH.
	ErrMissingTool = errors.New("missing tool")

	// ErrMissingSource indicates a declared module file is absent on disk.
	ErrMissingSource = errors.New("missing source")

	// ErrToolInvocation indicates an external tool returned a non-zero status.
	ErrToolInvocation = errors.New("tool invocation failed")

	// ErrCleanup indicates a build artifact could not be removed.
	// Cleanup errors are logged and never abort a run.
	ErrCleanup = errors.New("cleanup failed")
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set once the command layer has reported the error,
	// so main does not print it a second time.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// WrapMissingTool wraps an error with ErrMissingTool.
func WrapMissingTool(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrMissingTool, err)
}

// WrapMissingSource wraps an error with ErrMissingSource.
func WrapMissingSource(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrMissingSource, err)
}

// WrapToolInvocation wraps an error with ErrToolInvocation.
func WrapToolInvocation(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrToolInvocation, err)
}

// WrapCleanup wraps an error with ErrCleanup.
func WrapCleanup(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrCleanup, err)
}
