// Package orchestrate sequences a stdbuild run: dependency check,
// optional cleanup, build or validate, legacy sweep, optional manifest
// generation, and the final report. Exactly one report is produced per
// invocation and its outcome maps to the process exit status.
package orchestrate

import (
	"context"
	"fmt"
	"os"

	"github.com/manvlang/stdbuild/internal/cleanup"
	"github.com/manvlang/stdbuild/internal/config"
	sberrors "github.com/manvlang/stdbuild/internal/errors"
	"github.com/manvlang/stdbuild/internal/manifest"
	"github.com/manvlang/stdbuild/internal/output"
	"github.com/manvlang/stdbuild/internal/pipeline"
	"github.com/manvlang/stdbuild/internal/registry"
	"github.com/manvlang/stdbuild/internal/scan"
	"github.com/manvlang/stdbuild/internal/toolchain"
)

// Mode is one of the two mutually exclusive run strategies: the
// compiled-artifact build or the source-validation check. The mode is
// selected by configuration, never auto-detected.
type Mode interface {
	// Name identifies the mode in diagnostics.
	Name() string

	// RequiredTools lists the external executables the mode invokes.
	RequiredTools() []string

	// Run executes the mode and returns produced artifacts, if any.
	Run(ctx context.Context) ([]pipeline.Artifact, error)
}

// Orchestrator wires the run components together and drives the state
// machine. All steps are strictly sequential; external tools are
// blocking calls awaited to completion.
type Orchestrator struct {
	Config  *config.RunConfig
	Sink    output.Sink
	Checker *toolchain.Checker
	Mode    Mode
}

// Run drives one full invocation. A nil return means full success;
// otherwise the returned error carries exit code 1 and has already been
// reported through the sink.
func (o *Orchestrator) Run(ctx context.Context) error {
	// DependencyCheck: fail-fast gate before any work.
	o.Sink.Info("Checking dependencies...")
	required := o.Mode.RequiredTools()
	if missing := o.Checker.Missing(required); len(missing) > 0 {
		for _, tool := range missing {
			o.Sink.Error("required tool not found", "tool", tool)
		}
		return o.report(nil, fmt.Errorf("%w: %d required tool(s) unresolvable", sberrors.ErrMissingTool, len(missing)))
	}
	for _, tool := range required {
		o.Sink.Success(tool)
	}

	// Compiled mode owns a build-output directory.
	if !o.Config.ValidateOnly {
		if err := os.MkdirAll(o.Config.BuildDir, 0o755); err != nil {
			return o.report(nil, fmt.Errorf("creating build directory: %w", err))
		}
	}

	// Clean: best-effort, failures never block the build/validate step.
	swept := false
	if o.Config.Clean {
		o.clean()
		o.legacySweep()
		swept = true
	}

	o.Sink.Info("Building in " + o.Config.Root)

	// Build|Validate.
	artifacts, err := o.Mode.Run(ctx)
	if err != nil {
		return o.report(artifacts, err)
	}

	// LegacySweep: advisory, skipped if cleanup already reported it.
	if !swept {
		o.legacySweep()
	}

	// ManifestGen: validation mode only, and only on success.
	if o.Config.ValidateOnly && o.Config.WriteManifest {
		path, err := manifest.Write(o.Config.Root, registry.Modules())
		if err != nil {
			return o.report(artifacts, err)
		}
		info, statErr := os.Stat(path)
		if statErr == nil {
			artifacts = append(artifacts, pipeline.Artifact{Path: path, Size: info.Size()})
		}
		o.Sink.Success("Wrote " + path)
	}

	return o.report(artifacts, nil)
}

// clean removes stale artifacts and logs, but never fails, the run.
func (o *Orchestrator) clean() {
	cleaner := &cleanup.Cleaner{
		Root:           o.Config.Root,
		BuildDir:       o.Config.BuildDir,
		RemoveManifest: o.Config.ValidateOnly,
	}

	o.Sink.Info("Cleaning build artifacts...")
	removed, err := cleaner.Clean()
	for _, path := range removed {
		o.Sink.Info("removed", "path", path)
	}
	if err != nil {
		o.Sink.Warn("cleanup incomplete", "error", err)
	}
}

// legacySweep reports leftover files from the deprecated build
// representation. Advisory only: scan errors are warnings too.
func (o *Orchestrator) legacySweep() {
	found, err := scan.Legacy(o.Config.Root, o.Config.LegacyExtensions)
	if err != nil {
		o.Sink.Warn("legacy scan failed", "error", err)
		return
	}
	for _, path := range found {
		o.Sink.Warn("legacy file, migrate or remove manually", "path", path)
	}
}

// report emits the final pass/fail summary exactly once. On success the
// produced artifact sizes are listed; on failure they are not.
func (o *Orchestrator) report(artifacts []pipeline.Artifact, err error) error {
	if err != nil {
		o.Sink.Error(o.Mode.Name()+" failed", "error", err)
		exitErr := sberrors.NewExitError(err, 1)
		exitErr.Printed = true
		return exitErr
	}

	o.Sink.Success(o.Mode.Name() + " complete")
	if len(artifacts) > 0 {
		o.Sink.Print("")
		o.Sink.Print("Output files:")
		for _, a := range artifacts {
			o.Sink.Artifact(a.Path, a.Size)
		}
	}
	return nil
}
