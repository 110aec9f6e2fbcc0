package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vogtb/sheetcalc"
)

func TestExecLineSetAndGet(t *testing.T) {
	sheet := sheetcalc.NewSheet()
	var out bytes.Buffer

	if err := execLine(sheet, "set A1 2", &out); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := execLine(sheet, "set A2 =A1+3", &out); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	out.Reset()
	if err := execLine(sheet, "get A2", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "5" {
		t.Errorf("get A2 = %q, want %q", got, "5")
	}
}

func TestExecLineClear(t *testing.T) {
	sheet := sheetcalc.NewSheet()
	var out bytes.Buffer

	if err := execLine(sheet, "set A1 hello", &out); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := execLine(sheet, "clear A1", &out); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	cell, err := sheet.GetCell(sheetcalc.PositionFromString("A1"))
	if err != nil {
		t.Fatalf("GetCell failed: %v", err)
	}
	if cell != nil {
		t.Error("cell still present after clear")
	}
}

func TestExecLinePrint(t *testing.T) {
	sheet := sheetcalc.NewSheet()
	var out bytes.Buffer

	if err := execLine(sheet, "set A1 3", &out); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	out.Reset()
	if err := execLine(sheet, "print values", &out); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if got := out.String(); got != "3\n" {
		t.Errorf("print values = %q, want %q", got, "3\n")
	}
}

func TestExecLineIgnoresBlankAndComments(t *testing.T) {
	sheet := sheetcalc.NewSheet()
	var out bytes.Buffer
	if err := execLine(sheet, "", &out); err != nil {
		t.Errorf("blank line errored: %v", err)
	}
	if err := execLine(sheet, "  # a comment", &out); err != nil {
		t.Errorf("comment line errored: %v", err)
	}
}

func TestExecLineUnknownCommand(t *testing.T) {
	sheet := sheetcalc.NewSheet()
	var out bytes.Buffer
	if err := execLine(sheet, "frobnicate A1", &out); err == nil {
		t.Error("unknown command succeeded, want error")
	}
}

func TestExecLineInvalidAddress(t *testing.T) {
	sheet := sheetcalc.NewSheet()
	var out bytes.Buffer
	if err := execLine(sheet, "set notanaddress 1", &out); err == nil {
		t.Error("set with invalid address succeeded, want error")
	}
}

func TestRunScriptTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	script := "set A1 1\nset A2 =A1+1\nprint values\n"
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	var out bytes.Buffer
	sheet, err := runScriptTo(path, &out)
	if err != nil {
		t.Fatalf("runScriptTo failed: %v", err)
	}
	if got := out.String(); got != "1\n2\n" {
		t.Errorf("runScriptTo output = %q, want %q", got, "1\n2\n")
	}
	if sheet.PrintableSize() != (sheetcalc.Size{Rows: 2, Cols: 1}) {
		t.Errorf("PrintableSize() = %+v, want {2 1}", sheet.PrintableSize())
	}
}
