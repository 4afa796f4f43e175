// Package cleanup removes generated build artifacts. Removal is
// idempotent: absent files and an absent build directory are success,
// so running clean twice never fails the second time.
package cleanup

import (
	"errors"
	"os"
	"path/filepath"

	sberrors "github.com/manvlang/stdbuild/internal/errors"
	"github.com/manvlang/stdbuild/internal/manifest"
	"github.com/manvlang/stdbuild/internal/registry"
)

// Cleaner removes generated objects, archives, and (validation mode)
// the manifest. It never touches module sources or legacy files.
type Cleaner struct {
	// Root is the stdlib root holding archives and the manifest.
	Root string

	// BuildDir holds the generated object files.
	BuildDir string

	// RemoveManifest also removes modules.txt (validation mode).
	RemoveManifest bool
}

// Clean removes all generated artifacts. It returns the paths removed
// and an aggregate of any removal failures. Failures are non-fatal to
// the run; the caller logs them and proceeds.
func (c *Cleaner) Clean() ([]string, error) {
	var removed []string
	var errs []error

	objects, err := filepath.Glob(filepath.Join(c.BuildDir, "*"+registry.ObjectExt))
	if err != nil {
		errs = append(errs, err)
	}
	archives, err := filepath.Glob(filepath.Join(c.Root, "*"+registry.ArchiveExt))
	if err != nil {
		errs = append(errs, err)
	}

	targets := append(objects, archives...)
	if c.RemoveManifest {
		targets = append(targets, filepath.Join(c.Root, manifest.FileName))
	}

	for _, path := range targets {
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			errs = append(errs, err)
			continue
		}
		removed = append(removed, path)
	}

	if len(errs) > 0 {
		return removed, sberrors.WrapCleanup(errors.Join(errs...), "removing artifacts")
	}
	return removed, nil
}
