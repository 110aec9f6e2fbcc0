package sheetcalc

import (
	"fmt"
	"io"
	"strconv"

	"github.com/vogtb/sheetcalc/internal/value"
)

// Sheet is a sparse 2D store of Cells, keyed by row then column, plus the
// printable Size and the DependencyGraph that ties cells together. Sheet
// exclusively owns its Cells; the graph stores only Positions, never
// references into Cells, so graph lifetime never depends on cell lifetime.
type Sheet struct {
	cells map[int]map[int]*Cell
	size  Size
	graph *DependencyGraph
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{
		cells: make(map[int]map[int]*Cell),
		graph: newDependencyGraph(),
	}
}

func (s *Sheet) getCell(pos Position) *Cell {
	row, ok := s.cells[pos.Row]
	if !ok {
		return nil
	}
	return row[pos.Col]
}

// GetCell returns the cell stored at pos, or nil if the position is
// unoccupied. It never mutates the sheet.
func (s *Sheet) GetCell(pos Position) (*Cell, error) {
	if !pos.IsValid() {
		return nil, fmt.Errorf("sheetcalc: GetCell %v: %w", pos, ErrInvalidPosition)
	}
	return s.getCell(pos), nil
}

// ClearCell removes any cell at pos. It is a no-op if pos is unoccupied.
func (s *Sheet) ClearCell(pos Position) error {
	if !pos.IsValid() {
		return fmt.Errorf("sheetcalc: ClearCell %v: %w", pos, ErrInvalidPosition)
	}

	row, ok := s.cells[pos.Row]
	if !ok {
		return nil
	}
	if _, ok := row[pos.Col]; !ok {
		return nil
	}

	s.invalidateDependents(pos)
	s.graph.EraseVertex(pos)

	delete(row, pos.Col)
	if len(row) == 0 {
		delete(s.cells, pos.Row)
	}

	if pos.Row+1 == s.size.Rows || pos.Col+1 == s.size.Cols {
		s.recalculateSize()
	}
	return nil
}

// SetCell parses text, checks the resulting references against the
// existing dependency graph for cycles, and — only if that succeeds —
// atomically swaps the cell in, rewrites its outgoing edges, and
// invalidates every transitive dependent's cache. On any failure the sheet
// is left exactly as it was.
func (s *Sheet) SetCell(pos Position, text string) error {
	if !pos.IsValid() {
		return fmt.Errorf("sheetcalc: SetCell %v: %w", pos, ErrInvalidPosition)
	}

	s.growSize(pos)

	if existing := s.getCell(pos); existing != nil && existing.GetText() == text {
		return nil
	}

	temp := newCell()
	if err := temp.set(text); err != nil {
		return err
	}

	refs := temp.GetReferencedCells()
	if s.graph.DetectCircularDependency(pos, refs) {
		return fmt.Errorf("sheetcalc: SetCell %v: %w", pos, ErrCircularDependency)
	}

	// Cache invalidation walks the OLD backward graph, so it must happen
	// before the edge rewrite below replaces the graph's view of pos.
	s.invalidateDependents(pos)

	s.graph.EraseVertex(pos)
	for _, r := range refs {
		if s.getCell(r) == nil {
			if err := s.SetCell(r, ""); err != nil {
				panic(fmt.Sprintf("sheetcalc: unreachable: creating empty cell at %v: %v", r, err))
			}
		}
		s.graph.AddEdge(pos, r)
	}

	s.setCellRaw(pos, temp)
	return nil
}

func (s *Sheet) growSize(pos Position) {
	if pos.Row+1 > s.size.Rows {
		s.size.Rows = pos.Row + 1
	}
	if pos.Col+1 > s.size.Cols {
		s.size.Cols = pos.Col + 1
	}
}

func (s *Sheet) setCellRaw(pos Position, cell *Cell) {
	row := s.cells[pos.Row]
	if row == nil {
		row = make(map[int]*Cell)
		s.cells[pos.Row] = row
	}
	row[pos.Col] = cell
}

// invalidateDependents clears the cache of pos and every cell transitively
// depending on it, found by walking the backward graph.
func (s *Sheet) invalidateDependents(pos Position) {
	if cell := s.getCell(pos); cell != nil {
		cell.ClearCache()
	}
	s.graph.Traversal(pos, Backward, func(e Edge) bool {
		if cell := s.getCell(e.To); cell != nil {
			cell.ClearCache()
		}
		return false
	})
}

// recalculateSize scans every occupied position and sets Size to the
// bounding box around it, {0,0} if the sheet is empty. Called only when
// ClearCell removes a cell that sat on the current max row or column.
func (s *Sheet) recalculateSize() {
	maxRow, maxCol := -1, -1
	for r, row := range s.cells {
		if len(row) == 0 {
			continue
		}
		if r > maxRow {
			maxRow = r
		}
		for c := range row {
			if c > maxCol {
				maxCol = c
			}
		}
	}
	if maxRow < 0 {
		s.size = Size{}
		return
	}
	s.size = Size{Rows: maxRow + 1, Cols: maxCol + 1}
}

// PrintableSize returns the smallest rows x cols bounding box containing
// every occupied cell.
func (s *Sheet) PrintableSize() Size {
	return s.size
}

// GetCellValue returns the computed value at pos: NumberValue(0) if pos is
// unoccupied, otherwise the cell's GetValue result.
func (s *Sheet) GetCellValue(pos Position) (CellValue, error) {
	if !pos.IsValid() {
		return CellValue{}, fmt.Errorf("sheetcalc: GetCellValue %v: %w", pos, ErrInvalidPosition)
	}
	cell := s.getCell(pos)
	if cell == nil {
		return NumberValue(0), nil
	}
	return cell.GetValue(s.lookup), nil
}

// lookup is the closure SetCell-produced formulas evaluate cell references
// through: absent or empty -> 0.0, number -> itself, text -> the full
// string parsed as a float (trailing garbage -> Err(Value)), error ->
// propagated as-is.
func (s *Sheet) lookup(pos Position) (float64, error) {
	cell := s.getCell(pos)
	if cell == nil {
		return 0, nil
	}
	v := cell.GetValue(s.lookup)
	switch v.Kind {
	case value.KindNumber:
		return v.Number, nil
	case value.KindError:
		return 0, v.Err
	case value.KindText:
		n, err := strconv.ParseFloat(v.Text, 64)
		if err != nil {
			return 0, value.NewFormulaError(value.ErrorValue)
		}
		return n, nil
	default:
		return 0, value.NewFormulaError(value.ErrorValue)
	}
}

// PrintValues writes the dense [0,rows)x[0,cols) rectangle to w, one tab-
// separated row per line, rendering each cell's computed value.
func (s *Sheet) PrintValues(w io.Writer) error {
	return s.print(w, func(c *Cell) string {
		if c == nil {
			return ""
		}
		return c.GetValue(s.lookup).String()
	})
}

// PrintTexts writes the same rectangle as PrintValues but renders each
// cell's stored text instead of its computed value.
func (s *Sheet) PrintTexts(w io.Writer) error {
	return s.print(w, func(c *Cell) string {
		if c == nil {
			return ""
		}
		return c.GetText()
	})
}

func (s *Sheet) print(w io.Writer, render func(*Cell) string) error {
	for r := 0; r < s.size.Rows; r++ {
		for c := 0; c < s.size.Cols; c++ {
			if c > 0 {
				if _, err := io.WriteString(w, "\t"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, render(s.getCell(Position{Row: r, Col: c}))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
