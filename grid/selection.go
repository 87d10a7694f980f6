package grid

// SelectionType distinguishes cell, whole-row, and whole-column selections.
// All rectangles of one selection share a single type.
type SelectionType uint8

const (
	SelectCells SelectionType = iota
	SelectRows
	SelectColumns
)

// SelRange is one selection rectangle between a fixed anchor and a moving
// focus corner. Row/column types span their full cross axis.
type SelRange struct {
	Anchor CellRef
	Focus  CellRef
	Type   SelectionType
}

func (r SelRange) Rect() Rect { return RectFrom(r.Anchor, r.Focus) }

// selectionState is the idle -> dragging -> committed machine plus the
// derived membership caches. The caches are recomputed on every range change
// so IsSelected stays O(1) per query.
type selectionState struct {
	ranges   []SelRange
	dragging bool

	cellKeys map[CellRef]struct{}
	rowKeys  map[int]struct{}
	colKeys  map[int]struct{}
}

func (s *selectionState) init() {
	s.ranges = nil
	s.dragging = false
	s.cellKeys = make(map[CellRef]struct{})
	s.rowKeys = make(map[int]struct{})
	s.colKeys = make(map[int]struct{})
}

// StartSelection replaces the selection with a single rectangle anchored at
// ref and enters the dragging state. Any active edit session commits first.
func (g *Grid) StartSelection(ref CellRef, typ SelectionType) {
	g.CommitEdit()
	ref = g.clampRef(ref)
	g.sel.ranges = []SelRange{{Anchor: ref, Focus: ref, Type: typ}}
	g.sel.dragging = true
	g.rebuildSelectionKeys()
	g.bump()
}

// ExtendSelection extends from the existing anchor (the first rectangle of a
// multi-set, or the current single rectangle) to ref, collapsing any
// multi-set to one rectangle.
func (g *Grid) ExtendSelection(ref CellRef) {
	g.CommitEdit()
	ref = g.clampRef(ref)
	anchor := ref
	typ := SelectCells
	if len(g.sel.ranges) > 0 {
		anchor = g.sel.ranges[0].Anchor
		typ = g.sel.ranges[0].Type
	}
	g.sel.ranges = []SelRange{{Anchor: anchor, Focus: ref, Type: typ}}
	g.sel.dragging = true
	g.rebuildSelectionKeys()
	g.bump()
}

// ToggleSelection appends an independent one-unit rectangle to the multi-set.
// The append is ignored when it would mix selection types.
func (g *Grid) ToggleSelection(ref CellRef, typ SelectionType) {
	g.CommitEdit()
	if len(g.sel.ranges) > 0 && g.sel.ranges[0].Type != typ {
		return
	}
	ref = g.clampRef(ref)
	g.sel.ranges = append(g.sel.ranges, SelRange{Anchor: ref, Focus: ref, Type: typ})
	g.sel.dragging = true
	g.rebuildSelectionKeys()
	g.bump()
}

// DragSelectionTo updates the moving corner of the most-recently-started
// rectangle. A no-op unless a drag is in progress.
func (g *Grid) DragSelectionTo(ref CellRef) {
	if !g.sel.dragging || len(g.sel.ranges) == 0 {
		return
	}
	ref = g.clampRef(ref)
	last := &g.sel.ranges[len(g.sel.ranges)-1]
	if last.Focus == ref {
		return
	}
	last.Focus = ref
	g.rebuildSelectionKeys()
	g.bump()
}

// EndSelection commits the in-progress drag.
func (g *Grid) EndSelection() {
	if !g.sel.dragging {
		return
	}
	g.sel.dragging = false
	g.bump()
}

// SelectCell replaces the selection with a single committed cell.
func (g *Grid) SelectCell(ref CellRef) {
	ref = g.clampRef(ref)
	g.sel.ranges = []SelRange{{Anchor: ref, Focus: ref, Type: SelectCells}}
	g.sel.dragging = false
	g.rebuildSelectionKeys()
	g.bump()
}

// ClearSelection drops all selection rectangles.
func (g *Grid) ClearSelection() {
	if len(g.sel.ranges) == 0 && !g.sel.dragging {
		return
	}
	g.sel.init()
	g.bump()
}

// Selection returns a copy of the active selection rectangles.
func (g *Grid) Selection() []SelRange {
	if len(g.sel.ranges) == 0 {
		return nil
	}
	out := make([]SelRange, len(g.sel.ranges))
	copy(out, g.sel.ranges)
	return out
}

// SelectionDragging reports whether a selection drag is in progress.
func (g *Grid) SelectionDragging() bool { return g.sel.dragging }

// SelectionType returns the shared type of the active selection.
func (g *Grid) SelectionType() (SelectionType, bool) {
	if len(g.sel.ranges) == 0 {
		return SelectCells, false
	}
	return g.sel.ranges[0].Type, true
}

// ActiveCell returns the focus corner of the most recent rectangle.
func (g *Grid) ActiveCell() (CellRef, bool) {
	if len(g.sel.ranges) == 0 {
		return CellRef{}, false
	}
	return g.sel.ranges[len(g.sel.ranges)-1].Focus, true
}

// IsSelected reports membership of (row, col) in the active selection.
// Row/column rectangles expand to their full span.
func (g *Grid) IsSelected(row, col int) bool {
	if _, ok := g.sel.cellKeys[CellRef{Row: row, Col: col}]; ok {
		return true
	}
	if _, ok := g.sel.rowKeys[row]; ok {
		return true
	}
	_, ok := g.sel.colKeys[col]
	return ok
}

func (g *Grid) rebuildSelectionKeys() {
	s := &g.sel
	clear(s.cellKeys)
	clear(s.rowKeys)
	clear(s.colKeys)
	for _, r := range s.ranges {
		rect := r.Rect()
		switch r.Type {
		case SelectRows:
			for row := rect.R0; row <= rect.R1; row++ {
				s.rowKeys[row] = struct{}{}
			}
		case SelectColumns:
			for col := rect.C0; col <= rect.C1; col++ {
				s.colKeys[col] = struct{}{}
			}
		default:
			for row := rect.R0; row <= rect.R1; row++ {
				for col := rect.C0; col <= rect.C1; col++ {
					s.cellKeys[CellRef{Row: row, Col: col}] = struct{}{}
				}
			}
		}
	}
}

// singleSelectedCell reports the sole selected cell, when the selection is
// exactly one one-unit cell rectangle.
func (g *Grid) singleSelectedCell() (CellRef, bool) {
	if len(g.sel.ranges) != 1 || g.sel.ranges[0].Type != SelectCells {
		return CellRef{}, false
	}
	r := g.sel.ranges[0]
	if r.Anchor != r.Focus {
		return CellRef{}, false
	}
	return r.Anchor, true
}

// SingleSelectedCell is the exported form of singleSelectedCell.
func (g *Grid) SingleSelectedCell() (CellRef, bool) { return g.singleSelectedCell() }

// selectedRefs expands the selection to concrete coordinates, capped by the
// grid counts. Row/column selections expand across their full span.
func (g *Grid) selectedRefs() []CellRef {
	refs := make([]CellRef, 0, len(g.sel.cellKeys))
	for ref := range g.sel.cellKeys {
		if ref.Row < g.Rows() && ref.Col < g.Cols() {
			refs = append(refs, ref)
		}
	}
	for row := range g.sel.rowKeys {
		if row >= g.Rows() {
			continue
		}
		for col := 0; col < g.Cols(); col++ {
			refs = append(refs, CellRef{Row: row, Col: col})
		}
	}
	for col := range g.sel.colKeys {
		if col >= g.Cols() {
			continue
		}
		for row := 0; row < g.Rows(); row++ {
			refs = append(refs, CellRef{Row: row, Col: col})
		}
	}
	return refs
}

// selectedRowSet / selectedColSet expose the spanning index sets for the
// resize engine's lockstep behavior.
func (g *Grid) selectedRowSet() map[int]struct{} { return g.sel.rowKeys }

func (g *Grid) selectedColSet() map[int]struct{} { return g.sel.colKeys }
