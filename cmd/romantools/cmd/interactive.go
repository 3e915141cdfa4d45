package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"tui", "i"},
	Short:   "Launch the interactive converter",
	Long: `Launch the interactive TUI. Text typed into the prompt is
segmented and converted live; tab switches the conversion direction.

This is the same interface launched by running romantools with no
arguments.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
