package toolchain

import (
	"fmt"
	"os/exec"
	"strings"

	sberrors "github.com/manvlang/stdbuild/internal/errors"
)

// Checker verifies that required external executables are resolvable on
// the host before any work begins.
type Checker struct {
	// LookPath resolves an executable name. Defaults to exec.LookPath;
	// tests substitute their own.
	LookPath func(name string) (string, error)
}

// NewChecker creates a Checker resolving against the host PATH.
func NewChecker() *Checker {
	return &Checker{LookPath: exec.LookPath}
}

// Missing returns the subset of tools that do not resolve, in the
// order given. Every tool is probed; the check does not stop at the
// first miss so the caller can diagnose each one.
func (c *Checker) Missing(tools []string) []string {
	var missing []string
	for _, tool := range tools {
		if _, err := c.LookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}
	return missing
}

// Check returns an error naming every unresolvable tool. Success
// requires all tools to resolve.
func (c *Checker) Check(tools []string) error {
	missing := c.Missing(tools)
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", sberrors.ErrMissingTool, strings.Join(missing, ", "))
}
