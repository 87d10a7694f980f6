package sheet

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridsheet/grid"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}
	if m.filter.open {
		return m.updateFilterPopup(msg)
	}
	if m.g.EditActive() {
		return m.updateEditKey(msg)
	}
	return m.updateNavKey(msg)
}

func (m Model) updateEditKey(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Enter):
		// Enter commits and moves the selection to the cell below.
		m.g.CommitEditMove(1, 0)
		return m.followActive()
	case key.Matches(msg, km.Escape):
		m.g.CancelEdit()
		return m
	case key.Matches(msg, km.Backspace):
		m.g.EditBackspace()
		return m
	case key.Matches(msg, km.Tab):
		m.g.CommitEditMove(0, 1)
		return m.followActive()

	// Arrow keys commit the current cell and immediately open a new edit
	// session on the adjacent cell, clamped at the grid edges.
	case key.Matches(msg, km.Left):
		return m.commitAndEditAdjacent(0, -1)
	case key.Matches(msg, km.Right):
		return m.commitAndEditAdjacent(0, 1)
	case key.Matches(msg, km.Up):
		return m.commitAndEditAdjacent(-1, 0)
	case key.Matches(msg, km.Down):
		return m.commitAndEditAdjacent(1, 0)
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
		m.g.EditInsert(string(msg.Runes))
	} else if msg.Type == tea.KeySpace {
		m.g.EditInsert(" ")
	}
	return m
}

func (m Model) commitAndEditAdjacent(dr, dc int) Model {
	next, ok := m.g.CommitEditMove(dr, dc)
	if !ok {
		return m
	}
	m.g.BeginEdit(next, grid.EditExisting, "")
	return m.followActive()
}

func (m Model) updateNavKey(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Left):
		return m.moveActive(0, -1)
	case key.Matches(msg, km.Right):
		return m.moveActive(0, 1)
	case key.Matches(msg, km.Up):
		return m.moveActive(-1, 0)
	case key.Matches(msg, km.Down):
		return m.moveActive(1, 0)

	case key.Matches(msg, km.ShiftLeft):
		return m.extendActive(0, -1)
	case key.Matches(msg, km.ShiftRight):
		return m.extendActive(0, 1)
	case key.Matches(msg, km.ShiftUp):
		return m.extendActive(-1, 0)
	case key.Matches(msg, km.ShiftDown):
		return m.extendActive(1, 0)

	case key.Matches(msg, km.PageUp):
		_, ch := m.contentSize()
		return m.ScrollTo(m.scrollX, m.scrollY-ch)
	case key.Matches(msg, km.PageDown):
		_, ch := m.contentSize()
		return m.ScrollTo(m.scrollX, m.scrollY+ch)
	case key.Matches(msg, km.Home):
		m.g.SelectCell(grid.CellRef{})
		return m.ScrollTo(0, 0)

	case key.Matches(msg, km.Enter), key.Matches(msg, km.Edit):
		if ref, ok := m.g.ActiveCell(); ok {
			m.g.BeginEdit(ref, grid.EditExisting, "")
		}
		return m
	case key.Matches(msg, km.Backspace), key.Matches(msg, km.Delete):
		if ref, ok := m.g.SingleSelectedCell(); ok {
			m.g.BeginEdit(ref, grid.EditClear, "")
		}
		return m
	case key.Matches(msg, km.Escape):
		if m.g.ClipboardActive() {
			m.g.CancelClipboard()
		}
		return m

	case key.Matches(msg, km.Copy):
		if m.g.Copy() {
			m.exportClipboard()
		}
		return m
	case key.Matches(msg, km.Cut):
		if m.g.Cut() {
			m.exportClipboard()
		}
		return m
	case key.Matches(msg, km.Paste):
		m.g.PasteAtSelection()
		return m

	case key.Matches(msg, km.FillDown):
		m.g.FillDown()
		return m
	case key.Matches(msg, km.FillRight):
		m.g.FillRight()
		return m

	case key.Matches(msg, km.Sort):
		if ref, ok := m.g.ActiveCell(); ok {
			if t := m.g.HeaderTableAt(ref.Row, ref.Col); t != nil {
				m.g.CycleSort(t, ref.Col)
			}
		}
		return m
	case key.Matches(msg, km.Filter):
		return m.openFilterPopup()
	}

	// Typing a printable character with exactly one cell selected replaces
	// its content in a fresh edit session.
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
		if ref, ok := m.g.SingleSelectedCell(); ok {
			m.g.BeginEdit(ref, grid.EditReplace, string(msg.Runes))
		}
	}
	return m
}

func (m Model) moveActive(dr, dc int) Model {
	ref, ok := m.g.ActiveCell()
	if !ok {
		m.g.SelectCell(grid.CellRef{})
		return m.followActive()
	}
	m.g.SelectCell(grid.CellRef{Row: ref.Row + dr, Col: ref.Col + dc})
	return m.followActive()
}

func (m Model) extendActive(dr, dc int) Model {
	ref, ok := m.g.ActiveCell()
	if !ok {
		return m
	}
	m.g.ExtendSelection(grid.CellRef{Row: ref.Row + dr, Col: ref.Col + dc})
	m.g.EndSelection()
	return m.followActive()
}
