package orchestrate

import (
	"context"
	"fmt"

	sberrors "github.com/manvlang/stdbuild/internal/errors"
	"github.com/manvlang/stdbuild/internal/output"
	"github.com/manvlang/stdbuild/internal/pipeline"
	"github.com/manvlang/stdbuild/internal/registry"
	"github.com/manvlang/stdbuild/internal/toolchain"
	"github.com/manvlang/stdbuild/internal/validate"
)

// BuildMode is the compiled-artifact strategy: assemble every source of
// every collection and archive each collection, in declared order.
type BuildMode struct {
	Pipeline *pipeline.Pipeline
	Targets  []registry.BuildTarget

	// Spin shows a spinner per collection when stdout is a TTY and
	// verbose output is off. Presentation only; the build itself stays
	// strictly sequential.
	Spin bool
}

// Name implements Mode.
func (m *BuildMode) Name() string { return "build" }

// RequiredTools implements Mode.
func (m *BuildMode) RequiredTools() []string { return toolchain.RequiredTools() }

// Run implements Mode. Collections are processed in declared order and
// the first failure aborts the rest.
func (m *BuildMode) Run(ctx context.Context) ([]pipeline.Artifact, error) {
	if !m.Spin {
		return m.Pipeline.Build(ctx, m.Targets)
	}

	artifacts := make([]pipeline.Artifact, 0, len(m.Targets))
	for _, target := range m.Targets {
		var artifact pipeline.Artifact
		err := output.RunWithSpinner(ctx, "Building "+target.Name+"...", func() error {
			var buildErr error
			artifact, buildErr = m.Pipeline.BuildCollection(ctx, target)
			return buildErr
		})
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

// CheckMode is the source-validation strategy: confirm every declared
// module exists. It invokes no external tools and touches no artifacts.
type CheckMode struct {
	Root    string
	Modules []string
	Sink    output.Sink
	Verbose bool
}

// Name implements Mode.
func (m *CheckMode) Name() string { return "check" }

// RequiredTools implements Mode. Validation resolves nothing external.
func (m *CheckMode) RequiredTools() []string { return nil }

// Run implements Mode. All modules are checked and every miss is
// reported before the aggregate failure is returned.
func (m *CheckMode) Run(ctx context.Context) ([]pipeline.Artifact, error) {
	report := validate.Check(m.Root, m.Modules)

	if m.Verbose {
		for _, e := range report.Entries {
			m.Sink.Info("checked", "module", e.Module, "exists", e.Exists)
		}
	}

	missing := report.Missing()
	if len(missing) > 0 {
		for _, module := range missing {
			m.Sink.Error("module missing", "path", module)
		}
		return nil, fmt.Errorf("%w: %d of %d modules missing",
			sberrors.ErrMissingSource, len(missing), len(report.Entries))
	}

	m.Sink.Success(fmt.Sprintf("All %d modules present", len(report.Entries)))
	return nil, nil
}
