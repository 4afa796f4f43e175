// Package pipeline implements the compiled-mode artifact pipeline:
// per-collection compile of every source to an object, then one
// archiver invocation over the full ordered object list.
//
// Failure semantics are collection-level fail-fast: a missing source or
// a failing tool aborts the current collection immediately and no later
// collection is attempted. Objects already produced stay on disk: the
// pipeline is deliberately non-transactional and leaves stale artifacts
// to the cleanup controller.
package pipeline

import (
	"context"
	"fmt"
	"os"

	sberrors "github.com/manvlang/stdbuild/internal/errors"
	"github.com/manvlang/stdbuild/internal/output"
	"github.com/manvlang/stdbuild/internal/registry"
	"github.com/manvlang/stdbuild/internal/toolchain"
)

// Artifact describes one produced archive for the summary report.
type Artifact struct {
	Path string
	Size int64
}

// Pipeline builds collections into static archives.
type Pipeline struct {
	Assembler *toolchain.Assembler
	Archiver  *toolchain.Archiver
	Sink      output.Sink
	Verbose   bool
}

// Build processes the targets in declared order and returns the
// archives produced. The first failing collection aborts the whole
// pipeline; archives of earlier collections are kept.
func (p *Pipeline) Build(ctx context.Context, targets []registry.BuildTarget) ([]Artifact, error) {
	artifacts := make([]Artifact, 0, len(targets))
	for _, target := range targets {
		artifact, err := p.BuildCollection(ctx, target)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

// BuildCollection compiles every source of one collection and archives
// the resulting objects.
func (p *Pipeline) BuildCollection(ctx context.Context, target registry.BuildTarget) (Artifact, error) {
	p.Sink.Info("Building " + target.Name + "...")

	for _, pair := range target.Pairs {
		if _, err := os.Stat(pair.Source); err != nil {
			if os.IsNotExist(err) {
				return Artifact{}, fmt.Errorf("%w: %s", sberrors.ErrMissingSource, pair.Source)
			}
			return Artifact{}, fmt.Errorf("checking source %s: %w", pair.Source, err)
		}

		if p.Verbose {
			p.Sink.Info("  Compiling " + pair.Source)
		}
		if err := p.Assembler.Compile(ctx, pair.Source, pair.Object); err != nil {
			return Artifact{}, fmt.Errorf("compiling %s: %w", pair.Source, err)
		}
	}

	if p.Verbose {
		p.Sink.Info("  Creating archive " + target.Name + registry.ArchiveExt)
	}
	if err := p.Archiver.Archive(ctx, target.Archive, target.Objects()); err != nil {
		return Artifact{}, fmt.Errorf("archiving %s: %w", target.Archive, err)
	}

	info, err := os.Stat(target.Archive)
	if err != nil {
		return Artifact{}, fmt.Errorf("inspecting archive %s: %w", target.Archive, err)
	}

	p.Sink.Success("Created " + target.Archive)
	return Artifact{Path: target.Archive, Size: info.Size()}, nil
}
