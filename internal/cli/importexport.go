package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vogtb/sheetcalc/xlsx"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "load an xlsx workbook and print its values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, err := xlsx.Load(args[0])
		if err != nil {
			return err
		}
		return sheet.PrintValues(cmd.OutOrStdout())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <script> <file.xlsx>",
	Short: "run a script against an empty sheet and save it as an xlsx workbook",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, err := runScript(args[0])
		if err != nil {
			return err
		}
		if err := xlsx.Save(sheet, args[1]); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}
