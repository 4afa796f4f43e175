package cmd

import (
	"errors"

	sberrors "github.com/manvlang/stdbuild/internal/errors"
)

// Exit codes. The tool distinguishes only full success from failure;
// every unrecoverable error maps to 1.
const (
	// ExitSuccess indicates the run completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates any unrecoverable failure: missing tool,
	// missing source, tool invocation failure, or validation failure.
	ExitFailure = 1
)

// ExitCodeFromError determines the process exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *sberrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
