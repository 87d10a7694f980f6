package grid

// EditStart chooses the initial buffer for a new edit session.
type EditStart uint8

const (
	// EditExisting starts the buffer as the cell's current raw text
	// (double-activation on a cell).
	EditExisting EditStart = iota
	// EditReplace starts the buffer as the typed character, replacing the
	// cell content.
	EditReplace
	// EditClear starts the buffer empty (Backspace/Delete entry).
	EditClear
)

// editState is the at-most-one transient edit session: a target cell and a
// mutable raw-text buffer.
type editState struct {
	active bool
	ref    CellRef
	buf    string
}

// BeginEdit opens an edit session on ref. Any active session commits first
// (blur semantics), and any in-progress selection drag is cancelled: editing
// and dragging are mutually exclusive.
func (g *Grid) BeginEdit(ref CellRef, start EditStart, typed string) {
	g.CommitEdit()
	g.sel.dragging = false

	ref = g.clampRef(ref)
	buf := ""
	switch start {
	case EditExisting:
		if c, ok := g.cells[ref]; ok {
			buf = c.Value.Raw
		}
	case EditReplace:
		buf = typed
	case EditClear:
	}

	g.edit = editState{active: true, ref: ref, buf: buf}
	g.bump()
}

// EditActive reports whether an edit session is open.
func (g *Grid) EditActive() bool { return g.edit.active }

// EditRef returns the cell under edit.
func (g *Grid) EditRef() (CellRef, bool) {
	if !g.edit.active {
		return CellRef{}, false
	}
	return g.edit.ref, true
}

// EditBuffer returns the session's current raw text.
func (g *Grid) EditBuffer() string { return g.edit.buf }

// EditInsert appends text to the edit buffer.
func (g *Grid) EditInsert(s string) {
	if !g.edit.active || s == "" {
		return
	}
	g.edit.buf += s
	g.bump()
}

// EditBackspace removes the last rune from the edit buffer.
func (g *Grid) EditBackspace() {
	if !g.edit.active || g.edit.buf == "" {
		return
	}
	r := []rune(g.edit.buf)
	g.edit.buf = string(r[:len(r)-1])
	g.bump()
}

// CommitEdit parses the buffer and stores the result, closing the session.
// An empty buffer deletes the cell, including its formatting. A non-empty
// buffer stores a new cell preserving prior formatting and auto-applying any
// detected date/time display format. No-op without an active session.
func (g *Grid) CommitEdit() (CellRef, bool) {
	if !g.edit.active {
		return CellRef{}, false
	}
	ref := g.edit.ref
	buf := g.edit.buf
	g.edit = editState{}

	g.growTo(ref.Row, ref.Col)
	g.setCellRaw(ref, buf, true)
	g.bump()
	g.refreshTableState()
	return ref, true
}

// CancelEdit discards the session without touching the cell.
func (g *Grid) CancelEdit() {
	if !g.edit.active {
		return
	}
	g.edit = editState{}
	g.bump()
}

// CommitEditMove commits the session and moves the selection by (dr, dc)
// from the edited cell, clamped at the grid edges. It returns the cell the
// selection landed on. Used for Enter (move below) and for arrow-key
// commit-and-advance, where the caller immediately reopens an edit session
// on the returned cell.
func (g *Grid) CommitEditMove(dr, dc int) (CellRef, bool) {
	ref, ok := g.CommitEdit()
	if !ok {
		return CellRef{}, false
	}
	next := g.clampRef(CellRef{Row: ref.Row + dr, Col: ref.Col + dc})
	g.SelectCell(next)
	return next, true
}
