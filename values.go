// Package sheetcalc is a spreadsheet evaluation engine: a sparse sheet of
// cells holding text or arithmetic formulas, a parser and evaluator for
// those formulas, and the dependency graph that keeps cached values
// coherent as cells change.
package sheetcalc

import (
	"github.com/vogtb/sheetcalc/internal/formula"
	"github.com/vogtb/sheetcalc/internal/value"
)

// Position, Size, FormulaError, and CellValue are re-exported from
// internal/value so callers never need to import it directly; Formula is
// re-exported from internal/formula for the same reason.
type (
	Position     = value.Position
	Size         = value.Size
	FormulaError = value.FormulaError
	CellValue    = value.CellValue
	Formula      = formula.Formula
)

const (
	MaxRows = value.MaxRows
	MaxCols = value.MaxCols
)

const (
	ErrorRef   = value.ErrorRef
	ErrorValue = value.ErrorValue
	ErrorDiv0  = value.ErrorDiv0
)

// NonePosition is the sentinel invalid position, (-1, -1).
var NonePosition = value.NonePosition

// PositionFromString parses the letters-then-digits address form (e.g.
// "C137"). Malformed input yields NonePosition rather than an error.
func PositionFromString(s string) Position { return value.PositionFromString(s) }

func TextValue(s string) CellValue      { return value.TextValue(s) }
func NumberValue(n float64) CellValue   { return value.NumberValue(n) }
func ErrValue(e FormulaError) CellValue { return value.ErrValue(e) }

// ParseFormula parses expression (the text following a cell's leading
// '=') into a Formula. It fails if the grammar rejects the string or if a
// cell token denotes a position outside the addressable sheet.
func ParseFormula(expression string) (*Formula, error) {
	return formula.Parse(expression)
}
