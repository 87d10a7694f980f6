package sheet

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/gridsheet/grid"
	"github.com/iw2rmb/gridsheet/internal/textwidth"
)

const filterPopupMaxRows = 10

// filterPopup is the value-checklist opened over a table header cell. It is
// pure widget state; nothing touches the grid until apply.
type filterPopup struct {
	open  bool
	table *grid.Table
	col   int

	values  []string
	checked map[string]bool
	cursor  int
	top     int
}

// openFilterPopup opens the checklist for the active cell's table column.
// A no-op when the active cell is not inside a header table.
func (m Model) openFilterPopup() Model {
	ref, ok := m.g.ActiveCell()
	if !ok {
		return m
	}
	t := m.g.TableAt(ref.Row, ref.Col)
	if t == nil || !t.HasHeader {
		return m
	}

	values := m.g.ColumnDisplayValues(t, ref.Col)
	if len(values) == 0 {
		return m
	}

	checked := make(map[string]bool, len(values))
	if t.HasFilter(ref.Col) {
		allowed := make(map[string]struct{})
		for _, v := range t.FilterValues(ref.Col) {
			allowed[v] = struct{}{}
		}
		for _, v := range values {
			_, ok := allowed[v]
			checked[v] = ok
		}
	} else {
		for _, v := range values {
			checked[v] = true
		}
	}

	m.filter = filterPopup{
		open:    true,
		table:   t,
		col:     ref.Col,
		values:  values,
		checked: checked,
	}
	return m
}

func (m Model) updateFilterPopup(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap
	f := &m.filter

	switch {
	case key.Matches(msg, km.Up):
		if f.cursor > 0 {
			f.cursor--
		}
	case key.Matches(msg, km.Down):
		if f.cursor < len(f.values)-1 {
			f.cursor++
		}
	case key.Matches(msg, km.Enter):
		m.applyFilterPopup()
		m.filter = filterPopup{}
	case key.Matches(msg, km.Escape):
		m.filter = filterPopup{}
	default:
		if msg.Type == tea.KeySpace {
			v := f.values[f.cursor]
			f.checked[v] = !f.checked[v]
		}
	}

	if f.open {
		if f.cursor < f.top {
			f.top = f.cursor
		} else if f.cursor >= f.top+filterPopupMaxRows {
			f.top = f.cursor - filterPopupMaxRows + 1
		}
	}
	return m
}

// applyFilterPopup commits the checklist. Everything checked clears the
// column filter; otherwise the checked subset becomes the allow-list.
func (m Model) applyFilterPopup() {
	f := m.filter
	all := true
	allowed := make([]string, 0, len(f.values))
	for _, v := range f.values {
		if f.checked[v] {
			allowed = append(allowed, v)
		} else {
			all = false
		}
	}
	if all {
		m.g.ClearFilter(f.table, f.col)
		return
	}
	m.g.SetFilter(f.table, f.col, allowed)
}

// renderFilterPopup composites the checklist over the base view, anchored
// under the filtered column's header.
func (m Model) renderFilterPopup(base string) string {
	f := m.filter
	if !f.open {
		return base
	}

	width := 0
	for _, v := range f.values {
		if w := textwidth.Cells(v); w > width {
			width = w
		}
	}
	width += 4 // checkbox marker and padding
	if limit := m.width - 2; width > limit && limit > 0 {
		width = limit
	}

	end := f.top + filterPopupMaxRows
	if end > len(f.values) {
		end = len(f.values)
	}

	rows := make([]string, 0, end-f.top)
	for i := f.top; i < end; i++ {
		v := f.values[i]
		mark := "[ ] "
		if f.checked[v] {
			mark = "[x] "
		}
		line := textwidth.Pad(mark+v, width)
		st := m.cfg.Style.FilterPopup
		if i == f.cursor {
			st = m.cfg.Style.FilterPopupCursor
		}
		rows = append(rows, st.Render(line))
	}

	layout := m.ensureLayout()
	x, y := layout.gutter, layout.headerH
	for _, band := range layout.cols {
		if band.col == f.col {
			x = band.x
			break
		}
	}
	if maxX := m.width - width; x > maxX && maxX >= 0 {
		x = maxX
	}

	return overlay.Composite(strings.Join(rows, "\n"), base, overlay.Left, overlay.Top, x, y)
}
