package grid

import "fmt"

// CellRef addresses one cell by 0-based (row, column).
type CellRef struct {
	Row int
	Col int
}

func (r CellRef) String() string { return fmt.Sprintf("(%d,%d)", r.Row, r.Col) }

// Rect is an inclusive rectangle of cells: rows [R0,R1], columns [C0,C1].
type Rect struct {
	R0, C0 int
	R1, C1 int
}

// RectFrom builds the normalized rectangle spanned by two corners.
func RectFrom(a, b CellRef) Rect {
	r := Rect{R0: a.Row, C0: a.Col, R1: b.Row, C1: b.Col}
	if r.R0 > r.R1 {
		r.R0, r.R1 = r.R1, r.R0
	}
	if r.C0 > r.C1 {
		r.C0, r.C1 = r.C1, r.C0
	}
	return r
}

func (r Rect) Contains(row, col int) bool {
	return row >= r.R0 && row <= r.R1 && col >= r.C0 && col <= r.C1
}

func (r Rect) ContainsRow(row int) bool { return row >= r.R0 && row <= r.R1 }

func (r Rect) ContainsCol(col int) bool { return col >= r.C0 && col <= r.C1 }

func (r Rect) Rows() int { return r.R1 - r.R0 + 1 }

func (r Rect) Cols() int { return r.C1 - r.C0 + 1 }

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
