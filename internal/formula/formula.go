// Package formula implements the expression grammar a formula cell parses
// and evaluates: NUMBER | CELL | (-|+) expr | expr (+|-|*|/) expr | '(' expr ')',
// unary binding tighter than * and /, which bind tighter than + and -.
package formula

import (
	"sort"
	"strings"

	"github.com/vogtb/sheetcalc/internal/value"
)

// Formula is a parsed expression tree, ready to be evaluated against any
// lookup closure or reprinted in canonical form.
type Formula struct {
	root expr
}

// Parse parses expression (the text after a cell's leading '='). It fails
// if the grammar rejects the string or if a cell token denotes a position
// outside the addressable sheet.
func Parse(expression string) (*Formula, error) {
	toks, err := lex(expression)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, &ParseError{Msg: "unexpected trailing input"}
	}
	return &Formula{root: root}, nil
}

// Eval evaluates the formula using lookup to resolve cell references. Any
// value.FormulaError produced during evaluation (by lookup, by an invalid
// cell reference, or by a non-finite binary-op result) is caught and
// returned as the value rather than surfaced as a Go error: evaluation
// itself never fails.
func (f *Formula) Eval(lookup LookupFunc) value.CellValue {
	n, err := f.root.eval(lookup)
	if err != nil {
		if ferr, ok := err.(value.FormulaError); ok {
			return value.ErrValue(ferr)
		}
		return value.ErrValue(value.NewFormulaError(value.ErrorValue))
	}
	return value.NumberValue(n)
}

// Expression reprints the formula in canonical form: no whitespace,
// parentheses only where removing them would change the parse.
func (f *Formula) Expression() string {
	var buf strings.Builder
	f.root.writeFormula(&buf)
	return buf.String()
}

// ReferencedCells returns the formula's referenced positions, sorted
// ascending with duplicates removed.
func (f *Formula) ReferencedCells() []value.Position {
	seen := make(map[value.Position]bool)
	var out []value.Position
	f.root.collectRefs(seen, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
