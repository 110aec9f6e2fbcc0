package sheetcalc

import "testing"

func noLookup(Position) (float64, error) { return 0, nil }

func TestCellEmptyByDefault(t *testing.T) {
	c := newCell()
	got := c.GetValue(noLookup)
	if !got.Equal(NumberValue(0)) {
		t.Errorf("empty cell value = %+v, want NumberValue(0)", got)
	}
	if c.GetText() != "" {
		t.Errorf("empty cell text = %q, want empty", c.GetText())
	}
	if c.IsReferenced() {
		t.Error("empty cell IsReferenced() = true, want false")
	}
}

func TestCellSetText(t *testing.T) {
	c := newCell()
	if err := c.set("hello"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if got := c.GetValue(noLookup); !got.Equal(TextValue("hello")) {
		t.Errorf("GetValue() = %+v, want TextValue(hello)", got)
	}
	if c.GetText() != "hello" {
		t.Errorf("GetText() = %q, want %q", c.GetText(), "hello")
	}
}

func TestCellSetTextSingleEquals(t *testing.T) {
	// A lone "=" is too short to be treated as a formula (len(text) > 1 is
	// required), so it falls through to a literal text cell.
	c := newCell()
	if err := c.set("="); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if got := c.GetValue(noLookup); !got.Equal(TextValue("=")) {
		t.Errorf("GetValue() = %+v, want TextValue(=)", got)
	}
}

func TestCellSetFormula(t *testing.T) {
	c := newCell()
	if err := c.set("=1+2"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if got := c.GetValue(noLookup); !got.Equal(NumberValue(3)) {
		t.Errorf("GetValue() = %+v, want NumberValue(3)", got)
	}
	if c.GetText() != "=1+2" {
		t.Errorf("GetText() = %q, want %q", c.GetText(), "=1+2")
	}
}

func TestCellSetFormulaReferences(t *testing.T) {
	c := newCell()
	if err := c.set("=A1+B2"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !c.IsReferenced() {
		t.Error("IsReferenced() = false, want true for a formula with refs")
	}
	refs := c.GetReferencedCells()
	if len(refs) != 2 {
		t.Fatalf("GetReferencedCells() = %v, want 2 entries", refs)
	}
}

func TestCellSetInvalidFormula(t *testing.T) {
	c := newCell()
	if err := c.set("=1+"); err == nil {
		t.Error("set(=1+) succeeded, want parse error")
	}
}

func TestCellClearCache(t *testing.T) {
	c := newCell()
	_ = c.set("=1+2")
	_ = c.GetValue(noLookup)
	if !c.HasCache() {
		t.Fatal("HasCache() = false after GetValue")
	}
	c.ClearCache()
	if c.HasCache() {
		t.Error("HasCache() = true after ClearCache")
	}
}

func TestCellSetSwapsAwayOldValue(t *testing.T) {
	c := newCell()
	_ = c.set("hello")
	_ = c.GetValue(noLookup)
	if err := c.set("=1+2"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if got := c.GetValue(noLookup); !got.Equal(NumberValue(3)) {
		t.Errorf("GetValue() after re-set = %+v, want NumberValue(3)", got)
	}
}
