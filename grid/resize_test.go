package grid

import "testing"

func TestResize_SingleColumnDrag(t *testing.T) {
	g := newTestGrid()
	base := g.ColAxis().Size(2)
	g.BeginResize(AxisCols, 2)
	g.UpdateResize(40)
	g.EndResize()

	if got := g.ColAxis().Size(2); got != base+40 {
		t.Fatalf("resized width: got %d, want %d", got, base+40)
	}
	if got := g.ColAxis().Size(3); got != g.ColAxis().DefaultSize() {
		t.Fatalf("neighbor width must not change: got %d", got)
	}
}

func TestResize_FloorEnforcedOnEveryUpdate(t *testing.T) {
	g := newTestGrid()
	min := g.ColAxis().MinSize()
	g.BeginResize(AxisCols, 0)
	g.UpdateResize(-10000)
	if got := g.ColAxis().Size(0); got != min {
		t.Fatalf("mid-drag floor: got %d, want %d", got, min)
	}
	// Dragging back up applies against the drag-start size, not the floor.
	g.UpdateResize(25)
	if got := g.ColAxis().Size(0); got != g.ColAxis().DefaultSize()+25 {
		t.Fatalf("recover from floor: got %d, want %d", got, g.ColAxis().DefaultSize()+25)
	}
	g.EndResize()
}

func TestResize_LockstepAcrossColumnSelection(t *testing.T) {
	g := newTestGrid()
	g.StartSelection(CellRef{Row: 0, Col: 1}, SelectColumns)
	g.DragSelectionTo(CellRef{Row: 0, Col: 3})
	g.EndSelection()

	g.BeginResize(AxisCols, 2)
	if got := len(g.ResizeTargets()); got != 3 {
		t.Fatalf("lockstep targets: got %d, want 3", got)
	}
	g.UpdateResize(15)
	g.EndResize()

	for col := 1; col <= 3; col++ {
		want := g.ColAxis().DefaultSize() + 15
		if got := g.ColAxis().Size(col); got != want {
			t.Fatalf("col %d width: got %d, want %d", col, got, want)
		}
	}
	if got := g.ColAxis().Size(4); got != g.ColAxis().DefaultSize() {
		t.Fatalf("unselected column moved: got %d", got)
	}
}

func TestResize_NoLockstepWhenDragOutsideSelection(t *testing.T) {
	g := newTestGrid()
	g.StartSelection(CellRef{Row: 0, Col: 1}, SelectColumns)
	g.DragSelectionTo(CellRef{Row: 0, Col: 2})
	g.EndSelection()

	g.BeginResize(AxisCols, 5)
	if got := len(g.ResizeTargets()); got != 1 {
		t.Fatalf("outside-selection drag targets: got %d, want 1", got)
	}
	g.EndResize()
}

func TestResize_NoLockstepWhenTypeMismatches(t *testing.T) {
	g := newTestGrid()
	// A row selection must not spread a column drag.
	g.StartSelection(CellRef{Row: 2, Col: 0}, SelectRows)
	g.DragSelectionTo(CellRef{Row: 4, Col: 0})
	g.EndSelection()

	g.BeginResize(AxisCols, 2)
	if got := len(g.ResizeTargets()); got != 1 {
		t.Fatalf("type-mismatch targets: got %d, want 1", got)
	}
	g.EndResize()
}

func TestResize_RowDragUsesRowFloor(t *testing.T) {
	g := newTestGrid()
	g.BeginResize(AxisRows, 1)
	g.UpdateResize(-10000)
	g.EndResize()
	if got := g.RowAxis().Size(1); got != g.RowAxis().MinSize() {
		t.Fatalf("row floor: got %d, want %d", got, g.RowAxis().MinSize())
	}
}

func TestAutoFit_MeasuresColumnContents(t *testing.T) {
	measured := make(map[string]bool)
	g := New(Options{
		Parse: testParse,
		MeasureText: func(text string, _ *Formatting) int {
			measured[text] = true
			return 10 * len(text)
		},
	})
	g.SetCell(0, 0, "hdr")
	g.SetCell(1, 0, "longe")
	g.SetCell(2, 0, "ab")
	g.SetCell(1, 1, "elsewhere-in-another-column")

	w := g.AutoFitColumn(0)
	if w != 50 {
		t.Fatalf("auto-fit width: got %d, want 50", w)
	}
	if got := g.ColAxis().Size(0); got != 50 {
		t.Fatalf("applied width: got %d, want 50", got)
	}
	if measured["elsewhere-in-another-column"] {
		t.Fatalf("auto-fit scanned another column")
	}
}

func TestAutoFit_ClampsToMaxAndMin(t *testing.T) {
	g := New(Options{
		Parse:           testParse,
		MaxAutoFitWidth: 120,
		MeasureText:     func(text string, _ *Formatting) int { return 10000 },
	})
	g.SetCell(0, 0, "x")
	if w := g.AutoFitColumn(0); w != 120 {
		t.Fatalf("max clamp: got %d, want 120", w)
	}

	// An empty column fits to the minimum.
	if w := g.AutoFitColumn(3); w != g.ColAxis().MinSize() {
		t.Fatalf("min clamp: got %d, want %d", w, g.ColAxis().MinSize())
	}
}

func TestAutoFit_AppliesToColumnMultiSelection(t *testing.T) {
	g := New(Options{
		Parse:       testParse,
		MeasureText: func(text string, _ *Formatting) int { return 10 * len(text) },
	})
	g.SetCell(0, 1, "abcdefg")
	g.StartSelection(CellRef{Row: 0, Col: 1}, SelectColumns)
	g.DragSelectionTo(CellRef{Row: 0, Col: 2})
	g.EndSelection()

	w := g.AutoFitColumn(1)
	if got := g.ColAxis().Size(2); got != w {
		t.Fatalf("multi-selection auto-fit must apply to col 2: got %d, want %d", got, w)
	}
}

func TestAutoFit_DefaultEstimatorEmphasis(t *testing.T) {
	g := New(Options{Parse: testParse, FontSize: 10})
	plain := g.measureText("abcde", nil)
	bold := g.measureText("abcde", &Formatting{Bold: true})
	if plain != 30 {
		t.Fatalf("plain estimate: got %d, want 30", plain)
	}
	if bold <= plain {
		t.Fatalf("emphasized text must estimate wider: plain %d, bold %d", plain, bold)
	}
}
