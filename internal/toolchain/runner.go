package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	sberrors "github.com/manvlang/stdbuild/internal/errors"
)

// ExecRunner runs external tools as subprocesses. The call blocks until
// the tool exits; stderr is captured and folded into the returned error.
type ExecRunner struct {
	// Echo, when non-nil, is called with the full command line before
	// the tool runs (verbose mode).
	Echo func(argv []string)

	// Stdout receives the tool's standard output. Nil discards it;
	// verbose mode points it at the process stdout.
	Stdout io.Writer
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	if r.Echo != nil {
		r.Echo(append([]string{name}, args...))
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stdout = r.Stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = "no diagnostics on stderr"
			}
			return fmt.Errorf("%w: %s exited with code %d: %s",
				sberrors.ErrToolInvocation, name, exitErr.ExitCode(), msg)
		}
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s", sberrors.ErrMissingTool, name)
		}
		return fmt.Errorf("%w: running %s: %v", sberrors.ErrToolInvocation, name, err)
	}

	return nil
}
