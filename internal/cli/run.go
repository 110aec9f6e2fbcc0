package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vogtb/sheetcalc"
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "execute a newline-delimited script of repl commands",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runScriptTo(args[0], cmd.OutOrStdout())
		return err
	},
}

// runScriptTo executes the commands in path against a fresh sheet, writing
// any "get"/"print"/"size" output to out, and returns the resulting sheet.
func runScriptTo(path string, out io.Writer) (*sheetcalc.Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("run: opening %s: %w", path, err)
	}
	defer f.Close()

	sheet := sheetcalc.NewSheet()
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		if err := execLine(sheet, scanner.Text(), out); err != nil {
			return nil, fmt.Errorf("run: %s:%d: %w", path, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sheet, nil
}

// runScript is runScriptTo with output discarded, for callers (like export)
// that only want the resulting sheet.
func runScript(path string) (*sheetcalc.Sheet, error) {
	return runScriptTo(path, io.Discard)
}

func init() {
	rootCmd.AddCommand(runCmd)
}
