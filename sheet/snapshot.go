package sheet

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/iw2rmb/gridsheet/grid"
)

// SnapshotToken identifies one rendered frame. Equal tokens mean the frame
// would render identically, so hosts can map coordinates against a cached
// snapshot and detect staleness cheaply.
type SnapshotToken uint64

// ColMap is one visible column of a snapshot: its absolute index, screen x,
// and width.
type ColMap struct {
	Col   int
	X     int
	Width int
}

// RowMap is one visible row of a snapshot.
type RowMap struct {
	Row    int
	Y      int
	Height int
}

// RenderSnapshot is an immutable description of the current viewport.
type RenderSnapshot struct {
	Token       SnapshotToken
	GridVersion uint64

	Gutter  int
	HeaderH int

	Cols []ColMap
	Rows []RowMap
}

type snapshotSignature struct {
	gridVersion      uint64
	scrollX, scrollY int
	width, height    int
	hideHeaders      bool
	focused          bool
}

func (m *Model) currentSnapshotSignature() snapshotSignature {
	return snapshotSignature{
		gridVersion: m.g.Version(),
		scrollX:     m.scrollX,
		scrollY:     m.scrollY,
		width:       m.width,
		height:      m.height,
		hideHeaders: m.cfg.HideHeaders,
		focused:     m.focused,
	}
}

func hashSnapshotSignature(sig snapshotSignature) SnapshotToken {
	h := fnv.New64a()
	writeU64 := func(v uint64) {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v)
		_, _ = h.Write(b[:])
	}
	writeI := func(v int) { writeU64(uint64(v)) }
	writeB := func(v bool) {
		if v {
			writeU64(1)
			return
		}
		writeU64(0)
	}

	writeU64(sig.gridVersion)
	writeI(sig.scrollX)
	writeI(sig.scrollY)
	writeI(sig.width)
	writeI(sig.height)
	writeB(sig.hideHeaders)
	writeB(sig.focused)

	return SnapshotToken(h.Sum64())
}

func (m *Model) buildRenderSnapshot(token SnapshotToken) RenderSnapshot {
	layout := m.ensureLayout()
	s := RenderSnapshot{
		Token:       token,
		GridVersion: m.g.Version(),
		Gutter:      layout.gutter,
		HeaderH:     layout.headerH,
		Cols:        make([]ColMap, 0, len(layout.cols)),
		Rows:        make([]RowMap, 0, len(layout.rows)),
	}
	for _, cb := range layout.cols {
		s.Cols = append(s.Cols, ColMap{Col: cb.col, X: cb.x, Width: cb.w})
	}
	for _, rb := range layout.rows {
		s.Rows = append(s.Rows, RowMap{Row: rb.row, Y: rb.y, Height: rb.h})
	}
	return s
}

// RenderSnapshot captures the current frame.
func (m Model) RenderSnapshot() RenderSnapshot {
	sig := (&m).currentSnapshotSignature()
	tok := hashSnapshotSignature(sig)
	return (&m).buildRenderSnapshot(tok)
}

func (m Model) snapshotMatchesCurrent(s RenderSnapshot) bool {
	if s.Token == 0 {
		return false
	}
	sig := (&m).currentSnapshotSignature()
	return s.Token == hashSnapshotSignature(sig)
}

// ScreenToCellWithSnapshot maps screen coordinates through a snapshot,
// rejecting stale snapshots.
func (m Model) ScreenToCellWithSnapshot(s RenderSnapshot, x, y int) (grid.CellRef, bool) {
	if !m.snapshotMatchesCurrent(s) {
		return grid.CellRef{}, false
	}
	return m.ScreenToCell(x, y)
}

// CellToScreenWithSnapshot maps a cell reference through a snapshot,
// rejecting stale snapshots.
func (m Model) CellToScreenWithSnapshot(s RenderSnapshot, ref grid.CellRef) (x, y int, ok bool) {
	if !m.snapshotMatchesCurrent(s) {
		return 0, 0, false
	}
	return m.CellToScreen(ref)
}
