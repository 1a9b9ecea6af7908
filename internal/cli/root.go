// Package cli implements the splice command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is stamped at build time.
var Version = "dev"

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the splice command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "splice",
		Short:        "Terminal storyboard timeline player",
		Long:         "splice renders multi-track media storyboards as a synchronized terminal timeline with playback, seeking and live reload.",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newPlayCmd(),
		newInspectCmd(),
		newVersionCmd(),
	)
	return cmd
}
