package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manvlang/stdbuild/internal/output"
	"github.com/manvlang/stdbuild/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			output.Println(version.GetInfo().String())
		},
	}
}
