package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/vogtb/sheetcalc"
)

// execLine interprets one command line against sheet, writing any output to
// out. Recognized commands: "set <addr> <text...>", "get <addr>",
// "clear <addr>", "print values|texts", "size". Blank lines and lines
// starting with '#' are ignored.
func execLine(sheet *sheetcalc.Sheet, line string, out io.Writer) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fields := strings.SplitN(line, " ", 2)
	cmd := fields[0]
	rest := ""
	if len(fields) == 2 {
		rest = fields[1]
	}

	switch cmd {
	case "set":
		addrAndText := strings.SplitN(rest, " ", 2)
		if len(addrAndText) != 2 {
			return fmt.Errorf("usage: set <addr> <text>")
		}
		pos := sheetcalc.PositionFromString(addrAndText[0])
		if !pos.IsValid() {
			return fmt.Errorf("invalid address %q", addrAndText[0])
		}
		return sheet.SetCell(pos, addrAndText[1])

	case "get":
		pos := sheetcalc.PositionFromString(strings.TrimSpace(rest))
		if !pos.IsValid() {
			return fmt.Errorf("invalid address %q", rest)
		}
		value, err := sheet.GetCellValue(pos)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, value.String())
		return nil

	case "clear":
		pos := sheetcalc.PositionFromString(strings.TrimSpace(rest))
		if !pos.IsValid() {
			return fmt.Errorf("invalid address %q", rest)
		}
		return sheet.ClearCell(pos)

	case "print":
		switch strings.TrimSpace(rest) {
		case "values":
			return sheet.PrintValues(out)
		case "texts":
			return sheet.PrintTexts(out)
		default:
			return fmt.Errorf("usage: print values|texts")
		}

	case "size":
		size := sheet.PrintableSize()
		fmt.Fprintf(out, "%d %d\n", size.Rows, size.Cols)
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}
