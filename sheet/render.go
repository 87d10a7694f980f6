package sheet

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/gridsheet/grid"
	"github.com/iw2rmb/gridsheet/internal/textwidth"
)

// View renders the visible viewport: header row, row gutter, and the cell
// region, styled per cell state. Only cells inside the viewport are touched.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	layout := m.ensureLayout()

	lines := make([]string, 0, m.height)
	if layout.headerH > 0 {
		lines = append(lines, m.renderHeader(layout))
	}
	for _, rb := range layout.rows {
		if len(lines) >= m.height {
			break
		}
		for i := 0; i < rb.h && len(lines) < m.height; i++ {
			lines = append(lines, m.renderRowLine(layout, rb, i))
		}
	}
	for len(lines) < m.height {
		lines = append(lines, strings.Repeat(" ", m.width))
	}

	base := strings.Join(lines, "\n")
	return m.renderFilterPopup(base)
}

func (m Model) renderHeader(layout layoutCache) string {
	var sb strings.Builder
	st := m.cfg.Style

	sb.WriteString(st.Header.Render(strings.Repeat(" ", layout.gutter)))
	used := layout.gutter

	selType, hasSel := m.g.SelectionType()
	for _, cb := range layout.cols {
		w := clipWidth(cb, layout.gutter, m.width)
		if w <= 0 {
			continue
		}
		label := ColumnLabel(cb.col) + m.headerMarkers(cb.col)
		cell := textwidth.Pad(" "+label, w)
		style := st.Header
		if hasSel && selType == grid.SelectColumns && m.g.IsSelected(0, cb.col) {
			style = st.HeaderSelected
		}
		sb.WriteString(style.Render(cell))
		used += w
	}
	if used < m.width {
		sb.WriteString(st.Header.Render(strings.Repeat(" ", m.width-used)))
	}
	return sb.String()
}

// headerMarkers returns the sort arrow and filter dot for a column, when
// the column heads a table with that state.
func (m Model) headerMarkers(col int) string {
	for _, t := range m.g.Tables() {
		if !t.HasHeader || !t.Rect.ContainsCol(col) {
			continue
		}
		var marks string
		if sc, dir := t.SortState(); sc == col {
			switch dir {
			case grid.SortAsc:
				marks += "▲"
			case grid.SortDesc:
				marks += "▼"
			}
		}
		if t.HasFilter(col) {
			marks += "◈"
		}
		if marks != "" {
			return " " + marks
		}
	}
	return ""
}

func (m Model) renderRowLine(layout layoutCache, rb rowBand, line int) string {
	var sb strings.Builder
	st := m.cfg.Style

	if layout.gutter > 0 {
		label := ""
		if line == 0 {
			label = strconv.Itoa(rb.row + 1)
		}
		gst := st.Gutter
		if ref, ok := m.g.ActiveCell(); ok && ref.Row == rb.row {
			gst = st.GutterActive
		}
		sb.WriteString(gst.Render(padLeft(label, layout.gutter-1) + " "))
	}
	used := layout.gutter

	for _, cb := range layout.cols {
		w := clipWidth(cb, layout.gutter, m.width)
		if w <= 0 {
			continue
		}
		sb.WriteString(m.renderCell(rb.row, cb.col, w, line))
		used += w
	}
	if used < m.width {
		sb.WriteString(strings.Repeat(" ", m.width-used))
	}
	return sb.String()
}

// clipWidth narrows a column band to the part inside the content region.
// The leftmost visible column may start behind the gutter.
func clipWidth(cb colBand, gutter, width int) int {
	w := cb.w
	if cb.x < gutter {
		w -= gutter - cb.x
	}
	if cb.x+cb.w > width {
		w -= cb.x + cb.w - width
	}
	return w
}

func (m Model) renderCell(row, col, width, line int) string {
	ref := grid.CellRef{Row: row, Col: col}

	if editRef, ok := m.g.EditRef(); ok && editRef == ref {
		return m.renderEditCell(width, line)
	}

	text := ""
	if line == 0 {
		text = m.g.DisplayString(row, col)
	}
	style := m.cellStyle(ref)
	align := grid.AlignDefault
	if cell, ok := m.g.Cell(row, col); ok {
		if cell.Format != nil {
			style = applyFormatting(style, cell.Format)
			align = cell.Format.Align
		}
		if align == grid.AlignDefault && alignsRight(cell.Value.Type) {
			align = grid.AlignRight
		}
	}
	return style.Render(alignCells(text, width, align))
}

// renderEditCell paints the in-progress edit buffer with a trailing cursor
// block, scrolled so the cursor stays visible in narrow columns.
func (m Model) renderEditCell(width, line int) string {
	if line != 0 || width <= 0 {
		return strings.Repeat(" ", maxInt(width, 0))
	}
	buf := m.g.EditBuffer()
	if textwidth.Cells(buf) > width-1 {
		buf = tailCells(buf, width-1)
	}
	st := m.cfg.Style
	pad := width - textwidth.Cells(buf) - 1
	return st.ActiveCell.Render(buf) + st.EditCursor.Render(" ") + st.Cell.Render(strings.Repeat(" ", maxInt(pad, 0)))
}

func (m Model) cellStyle(ref grid.CellRef) lipgloss.Style {
	st := m.cfg.Style
	switch {
	case m.isActive(ref):
		return st.ActiveCell
	case m.g.ClipboardIsCut() && m.g.ClipboardSource(ref):
		return st.CutSource
	case m.g.HeaderTableAt(ref.Row, ref.Col) != nil:
		if m.g.IsSelected(ref.Row, ref.Col) {
			return st.Selection
		}
		return st.TableHeader
	case m.g.IsSelected(ref.Row, ref.Col):
		return st.Selection
	default:
		return st.Cell
	}
}

func (m Model) isActive(ref grid.CellRef) bool {
	active, ok := m.g.ActiveCell()
	if !ok {
		return false
	}
	if typ, has := m.g.SelectionType(); has && typ != grid.SelectCells {
		return false
	}
	return active == ref
}

// applyFormatting folds stored cell formatting into the base style.
func applyFormatting(base lipgloss.Style, f *grid.Formatting) lipgloss.Style {
	if f.Bold {
		base = base.Bold(true)
	}
	if f.Italic {
		base = base.Italic(true)
	}
	if f.Underline {
		base = base.Underline(true)
	}
	if f.Color != "" {
		base = base.Foreground(lipgloss.Color(f.Color))
	}
	if f.Background != "" {
		base = base.Background(lipgloss.Color(f.Background))
	}
	return base
}

// alignsRight reports the types whose display text right-aligns by default.
func alignsRight(t grid.CellType) bool {
	switch t {
	case grid.TypeNumber, grid.TypePercent, grid.TypeCurrency, grid.TypeDuration:
		return true
	}
	return t.IsTemporal()
}

// alignCells lays text out in a fixed cell count, truncating with an
// ellipsis when it overflows.
func alignCells(text string, width int, align grid.Alignment) string {
	if width <= 0 {
		return ""
	}
	if textwidth.Cells(text) > width {
		return textwidth.Pad(text, width)
	}
	gap := width - textwidth.Cells(text)
	switch align {
	case grid.AlignRight:
		return strings.Repeat(" ", gap) + text
	case grid.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}

// ColumnLabel converts a zero-based column index to its spreadsheet name:
// A..Z, then AA, AB, and so on.
func ColumnLabel(col int) string {
	var b [8]byte
	i := len(b)
	for col >= 0 {
		i--
		b[i] = byte('A' + col%26)
		col = col/26 - 1
	}
	return string(b[i:])
}

func padLeft(s string, width int) string {
	if n := width - textwidth.Cells(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// tailCells keeps the last cells of a string that fit in width.
func tailCells(s string, width int) string {
	for s != "" && textwidth.Cells(s) > width {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
