package sheet

import (
	"testing"

	"github.com/iw2rmb/gridsheet/grid"
)

func TestSelectionTSV_RectangleWithHole(t *testing.T) {
	m := newTestModel(60, 20)
	g := m.Grid()
	g.SetCell(0, 0, "a")
	g.SetCell(0, 1, "b")
	g.SetCell(1, 1, "d")

	g.StartSelection(grid.CellRef{}, grid.SelectCells)
	g.DragSelectionTo(grid.CellRef{Row: 1, Col: 1})
	g.EndSelection()

	if got, want := m.selectionTSV(), "a\tb\n\td"; got != want {
		t.Fatalf("TSV: got %q, want %q", got, want)
	}
}

func TestSelectionTSV_MultiRectUsesBoundingBox(t *testing.T) {
	m := newTestModel(60, 20)
	g := m.Grid()
	g.SetCell(0, 0, "a")
	g.SetCell(2, 2, "z")
	g.SetCell(1, 1, "skip")

	g.StartSelection(grid.CellRef{}, grid.SelectCells)
	g.EndSelection()
	g.ToggleSelection(grid.CellRef{Row: 2, Col: 2}, grid.SelectCells)
	g.EndSelection()

	// (1, 1) is inside the bounding box but not selected: it exports empty.
	want := "a\t\t\n\t\t\n\t\tz"
	if got := m.selectionTSV(); got != want {
		t.Fatalf("TSV: got %q, want %q", got, want)
	}
}

func TestSelectionTSV_RowSelectionSpansAllColumns(t *testing.T) {
	m := New(Config{Grid: NewTerminalGrid(4, 3)})
	m = m.SetSize(60, 20)
	g := m.Grid()
	g.SetCell(1, 0, "a")
	g.SetCell(1, 2, "c")

	g.StartSelection(grid.CellRef{Row: 1}, grid.SelectRows)
	g.EndSelection()

	if got, want := m.selectionTSV(), "a\t\tc"; got != want {
		t.Fatalf("TSV: got %q, want %q", got, want)
	}
}

func TestSelectionTSV_EmptySelection(t *testing.T) {
	m := newTestModel(60, 20)
	if got := m.selectionTSV(); got != "" {
		t.Fatalf("TSV without a selection: got %q, want empty", got)
	}
}
