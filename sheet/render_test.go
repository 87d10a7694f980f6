package sheet

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/gridsheet/grid"
)

// Render tests run with the zero Style so View output is plain text.

func TestView_HeaderLabelsAndGutterNumbers(t *testing.T) {
	m := newTestModel(30, 5)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 5 {
		t.Fatalf("line count: got %d, want 5", len(lines))
	}

	// 4-cell gutter corner, then column A at the first content cell.
	if !strings.HasPrefix(lines[0], "     A") {
		t.Fatalf("header line: got %q", lines[0])
	}
	if !strings.Contains(lines[0], " B") {
		t.Fatalf("header should show column B: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  1 ") {
		t.Fatalf("first row gutter: got %q", lines[1])
	}
	if !strings.HasPrefix(lines[4], "  4 ") {
		t.Fatalf("fourth row gutter: got %q", lines[4])
	}
}

func TestView_CellTextAndNumericAlignment(t *testing.T) {
	m := newTestModel(30, 5)
	g := m.Grid()
	g.SetCell(0, 0, "hi")
	g.SetCell(1, 0, "42")

	lines := strings.Split(m.View(), "\n")
	if !strings.HasPrefix(lines[1], "  1 hi        ") {
		t.Fatalf("text cell should left-align: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "  2         42") {
		t.Fatalf("number cell should right-align: %q", lines[2])
	}
}

func TestView_EditBufferReplacesCellText(t *testing.T) {
	m := newTestModel(30, 5)
	g := m.Grid()
	g.SetCell(0, 0, "old")
	g.BeginEdit(grid.CellRef{}, grid.EditReplace, "ne")

	view := m.View()
	if strings.Contains(view, "old") {
		t.Fatalf("stored text should not render during an edit:\n%s", view)
	}
	if !strings.Contains(view, "ne") {
		t.Fatalf("edit buffer missing from view:\n%s", view)
	}
}

func TestView_FilteredRowsAreSkipped(t *testing.T) {
	m := newTestModel(30, 6)
	g := m.Grid()
	g.SetCell(0, 0, "tag")
	g.SetCell(1, 0, "keep")
	g.SetCell(2, 0, "drop")
	g.SetCell(3, 0, "keep")
	tbl := g.AddTable(grid.RegionSpec{Name: "t", Rect: grid.Rect{R0: 0, C0: 0, R1: 3, C1: 0}, HeaderRow: true})
	g.SetFilter(tbl, 0, []string{"keep"})

	view := m.View()
	if strings.Contains(view, "drop") {
		t.Fatalf("filtered row rendered:\n%s", view)
	}
	// Rows 2 and 4 survive; the gutter numbering skips row 3.
	lines := strings.Split(view, "\n")
	if !strings.HasPrefix(lines[2], "  2 ") || !strings.HasPrefix(lines[3], "  4 ") {
		t.Fatalf("gutter should skip the filtered row:\n%s", view)
	}
}

func TestView_HideHeadersRemovesChrome(t *testing.T) {
	m := New(Config{Grid: NewTerminalGrid(10, 5), HideHeaders: true})
	m = m.SetSize(30, 4)
	m.Grid().SetCell(0, 0, "x")

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 4 {
		t.Fatalf("line count: got %d, want 4", len(lines))
	}
	if !strings.HasPrefix(lines[0], "x") {
		t.Fatalf("first line should start at cell (0, 0): %q", lines[0])
	}
}

func TestView_SortAndFilterMarkersInHeader(t *testing.T) {
	m := newTestModel(40, 6)
	g := m.Grid()
	g.SetCell(0, 0, "name")
	g.SetCell(1, 0, "b")
	g.SetCell(2, 0, "a")
	tbl := g.AddTable(grid.RegionSpec{Name: "t", Rect: grid.Rect{R0: 0, C0: 0, R1: 2, C1: 1}, HeaderRow: true})

	g.SortColumn(tbl, 0, grid.SortAsc)
	if view := m.View(); !strings.Contains(view, "A ▲") {
		t.Fatalf("ascending marker missing:\n%s", view)
	}

	g.SortColumn(tbl, 0, grid.SortDesc)
	if view := m.View(); !strings.Contains(view, "A ▼") {
		t.Fatalf("descending marker missing:\n%s", view)
	}

	g.SetFilter(tbl, 1, []string{"x"})
	if view := m.View(); !strings.Contains(view, "B ◈") {
		t.Fatalf("filter marker missing:\n%s", view)
	}
}

func TestRenderCell_ActiveCellUsesActiveStyle(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{
		Cell:       r.NewStyle(),
		ActiveCell: r.NewStyle().Reverse(true),
		Selection:  r.NewStyle().Faint(true),
	}
	m := New(Config{Grid: NewTerminalGrid(10, 5), Style: st})
	m = m.SetSize(30, 5)
	g := m.Grid()
	g.SetCell(0, 0, "hi")
	g.SelectCell(grid.CellRef{})

	got := m.renderCell(0, 0, 5, 0)
	want := st.ActiveCell.Render("hi   ")
	if got != want {
		t.Fatalf("active cell rendering:\n got: %q\nwant: %q", got, want)
	}

	got = m.renderCell(1, 0, 5, 0)
	want = st.Cell.Render("     ")
	if got != want {
		t.Fatalf("plain cell rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestColumnLabel(t *testing.T) {
	cases := []struct {
		col  int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tc := range cases {
		if got := ColumnLabel(tc.col); got != tc.want {
			t.Fatalf("ColumnLabel(%d): got %q, want %q", tc.col, got, tc.want)
		}
	}
}

func TestView_FilterPopupOverlaysChecklist(t *testing.T) {
	m := newTestModel(40, 8)
	g := m.Grid()
	g.SetCell(0, 0, "name")
	g.SetCell(1, 0, "beta")
	g.SetCell(2, 0, "alpha")
	g.AddTable(grid.RegionSpec{Name: "t", Rect: grid.Rect{R0: 0, C0: 0, R1: 2, C1: 0}, HeaderRow: true})
	g.SelectCell(grid.CellRef{})

	m = m.openFilterPopup()
	view := m.View()
	if !strings.Contains(view, "[x] alpha") || !strings.Contains(view, "[x] beta") {
		t.Fatalf("checklist missing from view:\n%s", view)
	}
}
