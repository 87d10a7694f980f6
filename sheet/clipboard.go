package sheet

import (
	"strings"

	"github.com/iw2rmb/gridsheet/grid"
)

// Clipboard bridges copy and cut to the host system clipboard.
// Implementations typically wrap a platform clipboard package.
type Clipboard interface {
	WriteText(string) error
}

// exportClipboard writes the current selection as tab-separated lines so
// external applications can paste it. The engine's own staged snapshot is
// the source of truth for in-sheet pastes; this path is one-way.
func (m Model) exportClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectionTSV()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

// selectionBox expands a range to its full span: row selections cover every
// column and column selections cover every row.
func (m Model) selectionBox(r grid.SelRange) grid.Rect {
	rect := r.Rect()
	switch r.Type {
	case grid.SelectRows:
		rect.C0, rect.C1 = 0, m.g.Cols()-1
	case grid.SelectColumns:
		rect.R0, rect.R1 = 0, m.g.Rows()-1
	}
	return rect
}

// selectionTSV renders the bounding box of the selection: one line per row,
// display strings joined by tabs. Cells outside the selection but inside
// the bounding box render empty.
func (m Model) selectionTSV() string {
	sel := m.g.Selection()
	if len(sel) == 0 {
		return ""
	}

	box := m.selectionBox(sel[0])
	for _, r := range sel[1:] {
		rect := m.selectionBox(r)
		if rect.R0 < box.R0 {
			box.R0 = rect.R0
		}
		if rect.C0 < box.C0 {
			box.C0 = rect.C0
		}
		if rect.R1 > box.R1 {
			box.R1 = rect.R1
		}
		if rect.C1 > box.C1 {
			box.C1 = rect.C1
		}
	}
	if box.R1 >= m.g.Rows() {
		box.R1 = m.g.Rows() - 1
	}
	if box.C1 >= m.g.Cols() {
		box.C1 = m.g.Cols() - 1
	}

	var sb strings.Builder
	for row := box.R0; row <= box.R1; row++ {
		if row > box.R0 {
			sb.WriteByte('\n')
		}
		for col := box.C0; col <= box.C1; col++ {
			if col > box.C0 {
				sb.WriteByte('\t')
			}
			if m.g.IsSelected(row, col) {
				sb.WriteString(m.g.DisplayString(row, col))
			}
		}
	}
	return sb.String()
}
