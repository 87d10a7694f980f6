package grid

import (
	"strconv"
	"testing"
	"time"
)

// testParse is a minimal inference stand-in: numbers, ISO dates, text.
func testParse(raw string) Value {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Value{Type: TypeNumber, Raw: raw, Number: n}
	}
	if ts, err := time.Parse("2006-01-02", raw); err == nil {
		return Value{Type: TypeDate, Raw: raw, Time: ts, DetectedFormat: "2006-01-02"}
	}
	return TextValue(raw)
}

func newTestGrid() *Grid {
	return New(Options{Parse: testParse})
}

func TestSetCell_ParsesNumber(t *testing.T) {
	g := newTestGrid()
	g.SetCell(1, 1, "42")

	c, ok := g.Cell(1, 1)
	if !ok {
		t.Fatalf("cell (1,1) missing after SetCell")
	}
	if c.Value.Type != TypeNumber {
		t.Fatalf("cell type: got %v, want %v", c.Value.Type, TypeNumber)
	}
	if c.Value.Number != 42 {
		t.Fatalf("cell number: got %v, want 42", c.Value.Number)
	}
	if c.Value.Raw != "42" {
		t.Fatalf("cell raw: got %q, want %q", c.Value.Raw, "42")
	}
}

func TestSetCell_EmptyDeletesCellAndFormatting(t *testing.T) {
	g := newTestGrid()
	g.SetCell(0, 0, "x")
	g.SelectCell(CellRef{})
	bold := true
	g.ApplyFormatting(FormatPatch{Bold: &bold})

	if c, _ := g.Cell(0, 0); c.Format == nil || !c.Format.Bold {
		t.Fatalf("formatting not applied before delete")
	}

	g.SetCell(0, 0, "")
	if _, ok := g.Cell(0, 0); ok {
		t.Fatalf("empty write must delete the cell")
	}

	// Re-creating the cell must not resurrect the old formatting.
	g.SetCell(0, 0, "y")
	if c, _ := g.Cell(0, 0); c.Format != nil {
		t.Fatalf("formatting survived an empty delete: %+v", *c.Format)
	}
}

func TestSetCell_GrowsCounts(t *testing.T) {
	g := New(Options{Rows: 10, Cols: 5, Parse: testParse})
	g.SetCell(20, 7, "x")

	if got := g.Rows(); got != 21 {
		t.Fatalf("rows: got %d, want 21", got)
	}
	if got := g.Cols(); got != 8 {
		t.Fatalf("cols: got %d, want 8", got)
	}
}

func TestClear_ResetsCountsAndState(t *testing.T) {
	g := New(Options{Rows: 10, Cols: 5, Parse: testParse})
	g.SetCell(20, 7, "x")
	g.ColAxis().SetSize(2, 300)
	g.SelectCell(CellRef{Row: 1, Col: 1})
	g.Copy()
	g.AddTable(RegionSpec{Rect: Rect{R1: 3, C1: 2}, HeaderRow: true})

	g.Clear()

	if g.Rows() != 10 || g.Cols() != 5 {
		t.Fatalf("counts after clear: got %dx%d, want 10x5", g.Rows(), g.Cols())
	}
	if g.CellCount() != 0 {
		t.Fatalf("cells after clear: got %d, want 0", g.CellCount())
	}
	if got := g.ColAxis().Size(2); got != g.ColAxis().DefaultSize() {
		t.Fatalf("size override after clear: got %d, want default %d", got, g.ColAxis().DefaultSize())
	}
	if len(g.Selection()) != 0 || g.ClipboardActive() || len(g.Tables()) != 0 {
		t.Fatalf("selection/clipboard/tables must reset on clear")
	}
}

func TestAddRowsColumns_Appends(t *testing.T) {
	g := New(Options{Rows: 10, Cols: 5})
	g.AddRows(3)
	g.AddColumns(2)
	if g.Rows() != 13 || g.Cols() != 7 {
		t.Fatalf("counts: got %dx%d, want 13x7", g.Rows(), g.Cols())
	}
}

func TestVersion_BumpsOnMutation(t *testing.T) {
	g := newTestGrid()
	v0 := g.Version()
	g.SetCell(0, 0, "a")
	if g.Version() == v0 {
		t.Fatalf("version must change after SetCell")
	}
	v1 := g.Version()
	g.SelectCell(CellRef{})
	if g.Version() == v1 {
		t.Fatalf("version must change after selection change")
	}
}

func TestUsedBounds_CoversStoredCells(t *testing.T) {
	g := newTestGrid()
	if _, ok := g.UsedBounds(); ok {
		t.Fatalf("empty grid must report no used bounds")
	}
	g.SetCell(2, 3, "a")
	g.SetCell(7, 1, "b")

	r, ok := g.UsedBounds()
	if !ok {
		t.Fatalf("used bounds missing")
	}
	if r != (Rect{R0: 2, C0: 1, R1: 7, C1: 3}) {
		t.Fatalf("used bounds: got %+v", r)
	}
}

func TestDisplayString_MissingCellIsEmpty(t *testing.T) {
	g := newTestGrid()
	if got := g.DisplayString(5, 5); got != "" {
		t.Fatalf("missing cell display: got %q, want \"\"", got)
	}
}
