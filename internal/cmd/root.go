// Package cmd provides CLI command implementations.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/manvlang/stdbuild/internal/config"
	"github.com/manvlang/stdbuild/internal/orchestrate"
	"github.com/manvlang/stdbuild/internal/output"
	"github.com/manvlang/stdbuild/internal/pipeline"
	"github.com/manvlang/stdbuild/internal/registry"
	"github.com/manvlang/stdbuild/internal/toolchain"
)

var (
	// Run flags
	cleanFlag     bool
	verboseFlag   bool
	stdlibDirFlag string
	checkFlag     bool
	manifestFlag  bool
)

// NewRootCmd creates the root command for the stdbuild CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stdbuild",
		Short: "Build the ManV standard library",
		Long: `stdbuild compiles the ManV standard library.

It assembles every registered module into object files and archives
them into the static libraries libcore.a and libstd.a, or, with
--check, verifies that every registered module is present on disk.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			output.SetupLogging(verboseFlag)
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return runBuild(c.Context())
		},
	}

	rootCmd.Flags().BoolVar(&cleanFlag, "clean", false, "Remove build artifacts before building")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Echo external commands and their output")
	rootCmd.Flags().StringVar(&stdlibDirFlag, "stdlib-dir", "", "Path to the stdlib root (default: directory of the stdbuild executable)")
	rootCmd.Flags().BoolVar(&checkFlag, "check", false, "Validate that all registered modules exist instead of building")
	rootCmd.Flags().BoolVar(&manifestFlag, "manifest", false, "With --check: write modules.txt after a successful validation")

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// runBuild resolves configuration, wires the run components, and hands
// off to the orchestrator.
func runBuild(ctx context.Context) error {
	cfg, err := config.Resolve(config.Options{
		StdlibDir: stdlibDirFlag,
		Clean:     cleanFlag,
		Verbose:   verboseFlag,
		Check:     checkFlag,
		Manifest:  manifestFlag,
	})
	if err != nil {
		return err
	}

	sink := output.NewSink(output.IsTTY())

	mode, err := newMode(cfg, sink)
	if err != nil {
		return err
	}

	orch := &orchestrate.Orchestrator{
		Config:  cfg,
		Sink:    sink,
		Checker: toolchain.NewChecker(),
		Mode:    mode,
	}
	return orch.Run(ctx)
}

// newMode selects the run strategy from the resolved configuration.
func newMode(cfg *config.RunConfig, sink output.Sink) (orchestrate.Mode, error) {
	if cfg.ValidateOnly {
		return &orchestrate.CheckMode{
			Root:    cfg.Root,
			Modules: registry.Modules(),
			Sink:    sink,
			Verbose: cfg.Verbose,
		}, nil
	}

	targets, err := registry.BuildTargets(cfg.Root, cfg.BuildDir)
	if err != nil {
		return nil, err
	}

	runner := &toolchain.ExecRunner{}
	if cfg.Verbose {
		runner.Echo = sink.Command
		runner.Stdout = output.Stdout()
	}

	return &orchestrate.BuildMode{
		Pipeline: &pipeline.Pipeline{
			Assembler: &toolchain.Assembler{Runner: runner},
			Archiver:  &toolchain.Archiver{Runner: runner},
			Sink:      sink,
			Verbose:   cfg.Verbose,
		},
		Targets: targets,
		Spin:    !cfg.Verbose && output.IsTTY(),
	}, nil
}
