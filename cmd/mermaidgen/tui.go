package cmd

import (
	"github.com/spf13/cobra"

	"github.com/toozej/mermaidgen/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse diagram templates interactively",
	Long:  "Open a terminal UI gallery of example diagrams with fuzzy search. Selecting a template copies its mermaid script to the clipboard.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI()
	},
}
