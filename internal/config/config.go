// Package config resolves the immutable per-invocation configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// BuildDirName is the build-output subdirectory of the stdlib root.
const BuildDirName = "build"

// DefaultLegacyExtensions are the deprecated source extensions left
// over from the pre-nasm build representation. Files matching them are
// reported by the legacy scanner and never deleted.
var DefaultLegacyExtensions = []string{".s", ".nasm"}

// RunConfig is the resolved configuration of one invocation. It is
// constructed once at startup and never mutated afterwards.
type RunConfig struct {
	// Root is the absolute stdlib root directory.
	Root string

	// BuildDir is the absolute build-output directory under Root.
	BuildDir string

	// Clean requests artifact cleanup before build/validate.
	Clean bool

	// Verbose echoes external commands and their stdout.
	Verbose bool

	// ValidateOnly selects validation mode instead of compiled mode.
	ValidateOnly bool

	// WriteManifest writes modules.txt after a successful validation.
	// Only meaningful with ValidateOnly.
	WriteManifest bool

	// LegacyExtensions are the extensions the legacy scanner flags.
	LegacyExtensions []string
}

// Options carries the raw CLI flag values into Resolve.
type Options struct {
	// StdlibDir overrides the root directory. Empty means the
	// directory containing the stdbuild executable.
	StdlibDir string

	Clean    bool
	Verbose  bool
	Check    bool
	Manifest bool
}

// Resolve turns flag values into an immutable RunConfig. The root is
// resolved to an absolute path exactly once; everything downstream
// works with absolute paths.
func Resolve(opts Options) (*RunConfig, error) {
	if opts.Manifest && !opts.Check {
		return nil, fmt.Errorf("--manifest requires --check")
	}

	root := opts.StdlibDir
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("locating executable: %w", err)
		}
		root = filepath.Dir(exe)
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", root, err)
	}

	fileCfg, err := loadFile(root)
	if err != nil {
		return nil, err
	}

	buildDir := fileCfg.BuildDir
	if buildDir == "" {
		buildDir = BuildDirName
	}

	legacyExts := fileCfg.LegacyExtensions
	if len(legacyExts) == 0 {
		legacyExts = DefaultLegacyExtensions
	}

	return &RunConfig{
		Root:             root,
		BuildDir:         filepath.Join(root, buildDir),
		Clean:            opts.Clean,
		Verbose:          opts.Verbose,
		ValidateOnly:     opts.Check,
		WriteManifest:    opts.Manifest,
		LegacyExtensions: legacyExts,
	}, nil
}
