package sheet

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridsheet/grid"
)

const wheelStep = 3

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if !m.focused {
		return m
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.ScrollTo(m.scrollX, m.scrollY-wheelStep)
		case tea.MouseButtonWheelDown:
			return m.ScrollTo(m.scrollX, m.scrollY+wheelStep)
		case tea.MouseButtonWheelLeft:
			return m.ScrollTo(m.scrollX-wheelStep, m.scrollY)
		case tea.MouseButtonWheelRight:
			return m.ScrollTo(m.scrollX+wheelStep, m.scrollY)
		case tea.MouseButtonLeft:
			return m.mousePress(msg)
		}
		return m

	case tea.MouseActionMotion:
		return m.mouseMotion(msg)

	case tea.MouseActionRelease:
		return m.mouseRelease()
	}
	return m
}

func (m Model) mousePress(msg tea.MouseMsg) Model {
	now := time.Now()
	isDouble := msg.X == m.mouse.lastClickX && msg.Y == m.mouse.lastClickY &&
		now.Sub(m.mouse.lastClickAt) <= doubleClickWindow
	m.mouse.lastClickX, m.mouse.lastClickY = msg.X, msg.Y
	m.mouse.lastClickAt = now

	if m.filter.open {
		m.filter = filterPopup{}
	}

	zone, ref := m.hitTest(msg.X, msg.Y)
	switch zone {
	case hitColBoundary:
		if isDouble {
			m.g.CommitEdit()
			m.g.AutoFitColumn(ref.Col)
			return m
		}
		m.g.CommitEdit()
		m.g.BeginResize(grid.AxisCols, ref.Col)
		m.mouse.kind = dragResize
		m.mouse.startX = msg.X
		return m

	case hitColHeader:
		m.startOrExtend(msg, ref, grid.SelectColumns)
		m.mouse.kind = dragSelect
		return m

	case hitRowHeader:
		m.startOrExtend(msg, ref, grid.SelectRows)
		m.mouse.kind = dragSelect
		return m

	case hitCorner:
		m.g.StartSelection(grid.CellRef{}, grid.SelectCells)
		m.g.DragSelectionTo(grid.CellRef{Row: m.g.Rows() - 1, Col: m.g.Cols() - 1})
		m.g.EndSelection()
		return m

	case hitCells:
		if isDouble {
			// Double-press on a table header cycles its sort; on any other
			// cell it opens an edit session.
			if t := m.g.HeaderTableAt(ref.Row, ref.Col); t != nil {
				m.g.CycleSort(t, ref.Col)
				return m
			}
			m.g.BeginEdit(ref, grid.EditExisting, "")
			return m
		}
		m.startOrExtend(msg, ref, grid.SelectCells)
		m.mouse.kind = dragSelect
		return m
	}
	return m
}

// startOrExtend dispatches a press through the selection state machine:
// shift extends from the existing anchor, ctrl/alt appends an independent
// rectangle, a plain press starts fresh.
func (m Model) startOrExtend(msg tea.MouseMsg, ref grid.CellRef, typ grid.SelectionType) {
	switch {
	case msg.Shift:
		m.g.ExtendSelection(ref)
	case msg.Ctrl || msg.Alt:
		m.g.ToggleSelection(ref, typ)
	default:
		m.g.StartSelection(ref, typ)
	}
}

func (m Model) mouseMotion(msg tea.MouseMsg) Model {
	switch m.mouse.kind {
	case dragSelect:
		x, y := m.clampToBounds(msg.X, msg.Y)
		zone, ref := m.hitTest(x, y)
		if zone == hitNone {
			return m
		}
		m.g.DragSelectionTo(ref)
		return m

	case dragResize:
		m.g.UpdateResize(msg.X - m.mouse.startX)
		return m
	}
	return m
}

func (m Model) mouseRelease() Model {
	switch m.mouse.kind {
	case dragSelect:
		m.g.EndSelection()
	case dragResize:
		m.g.EndResize()
	}
	m.mouse.kind = dragNone
	return m
}
