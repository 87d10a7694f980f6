package sheet

import "github.com/iw2rmb/gridsheet/grid"

// ChangeEvent summarizes the grid state after a mutation, for hosts that
// persist or mirror the sheet elsewhere.
type ChangeEvent struct {
	Version   uint64
	Rows      int
	Cols      int
	CellCount int

	// ActiveCell is the focus corner of the selection, when one exists.
	ActiveCell    grid.CellRef
	HasActiveCell bool

	Editing bool
}

func buildChangeEvent(g *grid.Grid) ChangeEvent {
	ev := ChangeEvent{
		Version:   g.Version(),
		Rows:      g.Rows(),
		Cols:      g.Cols(),
		CellCount: g.CellCount(),
		Editing:   g.EditActive(),
	}
	ev.ActiveCell, ev.HasActiveCell = g.ActiveCell()
	return ev
}
