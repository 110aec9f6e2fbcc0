// Package cli wires sheetcalc's REPL, batch runner, and xlsx import/export
// into a cobra command tree. It sets up the process-wide logger (package
// log), which the xlsx package also uses for its close-error warnings.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/vogtb/sheetcalc/log"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sheetcalc",
	Short: "sheetcalc - a spreadsheet evaluation engine",
	Long:  `sheetcalc evaluates a sparse grid of text and formula cells, tracking dependencies between them.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init(cmd.ErrOrStderr(), verbose)
	},
}

// Execute runs the CLI, returning any error from the selected subcommand.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
