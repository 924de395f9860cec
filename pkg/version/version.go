// Package version exposes build metadata set at link time.
package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Populated by the linker via -ldflags at release build time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Command returns the version sub-command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number and build info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mermaidgen %s (commit %s, built %s)\n", Version, Commit, BuildTime)
		},
	}
}
