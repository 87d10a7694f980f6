package sheet

import "github.com/iw2rmb/gridsheet/grid"

// hitZone classifies what a screen coordinate landed on.
type hitZone uint8

const (
	hitNone hitZone = iota
	hitCells
	hitColHeader
	hitRowHeader
	hitCorner
	// hitColBoundary is the resize handle band at a column header's right
	// edge.
	hitColBoundary
)

// boundaryGrip is how many cells left of a column's right edge still count
// as its resize handle.
const boundaryGrip = 1

// hitTest maps widget-local screen coordinates to a zone and cell
// reference. For hitColBoundary the reference carries the column being
// resized; for headers it carries the hit row or column.
func (m *Model) hitTest(x, y int) (hitZone, grid.CellRef) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return hitNone, grid.CellRef{}
	}
	layout := m.ensureLayout()

	inGutter := x < layout.gutter
	inHeader := y < layout.headerH

	if inGutter && inHeader {
		return hitCorner, grid.CellRef{}
	}

	if inHeader {
		for _, cb := range layout.cols {
			if x >= cb.x+cb.w-boundaryGrip && x < cb.x+cb.w {
				return hitColBoundary, grid.CellRef{Col: cb.col}
			}
			if x >= cb.x && x < cb.x+cb.w {
				return hitColHeader, grid.CellRef{Col: cb.col}
			}
		}
		return hitNone, grid.CellRef{}
	}

	row, ok := rowAtY(layout, y)
	if !ok {
		return hitNone, grid.CellRef{}
	}

	if inGutter {
		return hitRowHeader, grid.CellRef{Row: row}
	}

	col := m.g.ColAxis().IndexAt(m.scrollX + x - layout.gutter)
	return hitCells, grid.CellRef{Row: row, Col: col}
}

func rowAtY(layout layoutCache, y int) (int, bool) {
	for _, rb := range layout.rows {
		if y >= rb.y && y < rb.y+rb.h {
			return rb.row, true
		}
	}
	// Below the last visible row clamps to it, matching pointer capture
	// during drags past the widget's bottom edge.
	if n := len(layout.rows); n > 0 && y >= layout.rows[n-1].y {
		return layout.rows[n-1].row, true
	}
	return 0, false
}

// ScreenToCell maps widget-local screen coordinates to a cell reference.
// ok is false for chrome (headers, gutter) and out-of-bounds coordinates.
func (m Model) ScreenToCell(x, y int) (grid.CellRef, bool) {
	zone, ref := (&m).hitTest(x, y)
	if zone != hitCells {
		return grid.CellRef{}, false
	}
	return ref, true
}

// CellToScreen maps a cell reference to the widget-local screen position of
// its top-left corner. ok is false when the cell is outside the visible
// viewport.
func (m Model) CellToScreen(ref grid.CellRef) (x, y int, ok bool) {
	layout := (&m).ensureLayout()
	for _, rb := range layout.rows {
		if rb.row != ref.Row {
			continue
		}
		for _, cb := range layout.cols {
			if cb.col != ref.Col {
				continue
			}
			if cb.x < layout.gutter || cb.x >= m.width {
				return 0, 0, false
			}
			return cb.x, rb.y, true
		}
	}
	return 0, 0, false
}

// clampToBounds pins coordinates inside the widget so drags keep tracking
// after the pointer leaves the grid's bounds.
func (m Model) clampToBounds(x, y int) (int, int) {
	if m.width > 0 {
		if x < 0 {
			x = 0
		}
		if x >= m.width {
			x = m.width - 1
		}
	}
	if m.height > 0 {
		if y < 0 {
			y = 0
		}
		if y >= m.height {
			y = m.height - 1
		}
	}
	return x, y
}
