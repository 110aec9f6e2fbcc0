package sheetcalc

import (
	"fmt"
	"strings"

	"github.com/vogtb/sheetcalc/internal/formula"
)

// cellImpl is the representation a Cell currently holds: empty, raw text,
// or a parsed formula. Swapping a Cell's behavior only ever means building
// a new cellImpl and assigning it; there is no virtual dispatch indirection
// beyond this one small interface.
type cellImpl interface {
	value(lookup formula.LookupFunc) CellValue
	text() string
	refs() []Position
}

type emptyImpl struct{}

func (emptyImpl) value(formula.LookupFunc) CellValue { return NumberValue(0) }
func (emptyImpl) text() string                       { return "" }
func (emptyImpl) refs() []Position                   { return nil }

type textImpl struct {
	raw string
}

func (t textImpl) value(formula.LookupFunc) CellValue {
	if strings.HasPrefix(t.raw, "'") {
		return TextValue(t.raw[1:])
	}
	return TextValue(t.raw)
}
func (t textImpl) text() string     { return t.raw }
func (t textImpl) refs() []Position { return nil }

type formulaImpl struct {
	f *formula.Formula
}

func (fi formulaImpl) value(lookup formula.LookupFunc) CellValue {
	return fi.f.Eval(lookup)
}
func (fi formulaImpl) text() string { return "=" + fi.f.Expression() }
func (fi formulaImpl) refs() []Position {
	refs := fi.f.ReferencedCells()
	out := make([]Position, len(refs))
	copy(out, refs)
	return out
}

// Cell is one entry in a Sheet, in one of three states: empty, text, or
// formula. It memoizes the last value GetValue computed; cache is the one
// field a read-only-looking call is allowed to mutate — Cell is not safe
// for concurrent use.
type Cell struct {
	impl  cellImpl
	cache *CellValue
}

func newCell() *Cell {
	return &Cell{impl: emptyImpl{}}
}

// set reassigns this cell's implementation and clears its cache. It is
// called only on a freshly constructed temporary cell (see Sheet.SetCell),
// so there is no prior state to preserve on failure.
func (c *Cell) set(text string) error {
	var next cellImpl
	switch {
	case text == "":
		next = emptyImpl{}
	case len(text) > 1 && text[0] == '=':
		f, err := formula.Parse(text[1:])
		if err != nil {
			return fmt.Errorf("sheetcalc: invalid formula %q: %w", text, err)
		}
		next = formulaImpl{f: f}
	default:
		next = textImpl{raw: text}
	}
	c.impl = next
	c.cache = nil
	return nil
}

// GetValue returns the cell's value, computing and caching it on first
// read and on every read following a cache invalidation.
func (c *Cell) GetValue(lookup formula.LookupFunc) CellValue {
	if c.cache != nil {
		return *c.cache
	}
	v := c.impl.value(lookup)
	c.cache = &v
	return v
}

// GetText returns the cell's stored text: verbatim for text cells,
// "="+canonical expression for formula cells, "" for empty cells.
func (c *Cell) GetText() string {
	return c.impl.text()
}

// GetReferencedCells returns the positions this cell's formula references,
// sorted ascending with duplicates removed. Text and empty cells return nil.
func (c *Cell) GetReferencedCells() []Position {
	return c.impl.refs()
}

// ClearCache drops the cached value without touching the implementation.
func (c *Cell) ClearCache() {
	c.cache = nil
}

// HasCache reports whether a cached value is currently present.
func (c *Cell) HasCache() bool {
	return c.cache != nil
}

// IsReferenced reports whether this cell's formula references any other
// cell.
func (c *Cell) IsReferenced() bool {
	return len(c.impl.refs()) > 0
}
