// Package xlsx bridges a sheetcalc.Sheet to real .xlsx workbooks via
// excelize. It sits on top of the core engine and is never imported by it:
// the engine itself has no notion of file formats.
package xlsx

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/vogtb/sheetcalc"
)

// Load opens path's first sheet and replays each occupied cell into a new
// sheetcalc.Sheet: a formula cell (as excelize reports it) is re-prefixed
// with '=' and parsed through the normal SetCell path, everything else goes
// in as its raw string value. A formula excelize accepts but this module's
// grammar does not (ranges, built-in functions, cross-sheet references)
// surfaces as a per-cell error rather than a silent truncation.
func Load(path string) (*sheetcalc.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Warn().Err(cerr).Str("path", path).Msg("closing xlsx file")
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("xlsx: %s has no sheets", path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: reading rows from %s: %w", path, err)
	}

	sheet := sheetcalc.NewSheet()
	for r, row := range rows {
		for c := range row {
			addr, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("xlsx: cell coordinates (%d,%d): %w", r, c, err)
			}

			text, err := cellText(f, sheetName, addr)
			if err != nil {
				return nil, err
			}
			if text == "" {
				continue
			}

			pos := sheetcalc.Position{Row: r, Col: c}
			if err := sheet.SetCell(pos, text); err != nil {
				return nil, fmt.Errorf("xlsx: importing cell %s: %w", addr, err)
			}
		}
	}
	return sheet, nil
}

func cellText(f *excelize.File, sheetName, addr string) (string, error) {
	formula, err := f.GetCellFormula(sheetName, addr)
	if err != nil {
		return "", fmt.Errorf("xlsx: reading formula at %s: %w", addr, err)
	}
	if formula != "" {
		return "=" + formula, nil
	}

	value, err := f.GetCellValue(sheetName, addr)
	if err != nil {
		return "", fmt.Errorf("xlsx: reading value at %s: %w", addr, err)
	}
	return value, nil
}

// Save writes sheet's printable rectangle to a new workbook at path, one
// .xlsx sheet named "Sheet1". Formula cells are written through
// SetCellFormula so the workbook still recalculates in a real spreadsheet
// application; everything else goes through SetCellStr.
func Save(sheet *sheetcalc.Sheet, path string) error {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Warn().Err(cerr).Str("path", path).Msg("closing xlsx file")
		}
	}()

	const sheetName = "Sheet1"
	size := sheet.PrintableSize()
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			pos := sheetcalc.Position{Row: r, Col: c}
			cell, err := sheet.GetCell(pos)
			if err != nil {
				return fmt.Errorf("xlsx: reading %v: %w", pos, err)
			}
			if cell == nil {
				continue
			}

			addr, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("xlsx: cell coordinates %v: %w", pos, err)
			}

			text := cell.GetText()
			var writeErr error
			switch {
			case text == "":
				continue
			case len(text) > 1 && text[0] == '=':
				writeErr = f.SetCellFormula(sheetName, addr, text[1:])
			default:
				writeErr = f.SetCellStr(sheetName, addr, text)
			}
			if writeErr != nil {
				return fmt.Errorf("xlsx: writing %s: %w", addr, writeErr)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx: saving %s: %w", path, err)
	}
	return nil
}
