package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vogtb/sheetcalc"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "interactive read-eval-print loop over an in-memory sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet := sheetcalc.NewSheet()
		scanner := bufio.NewScanner(cmd.InOrStdin())
		out := cmd.OutOrStdout()
		fmt.Fprint(out, "> ")
		for scanner.Scan() {
			if err := execLine(sheet, scanner.Text(), out); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			}
			fmt.Fprint(out, "> ")
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
