package grid

import "github.com/iw2rmb/gridsheet/internal/textwidth"

// resizeState is an explicit drag session for boundary resizing. Listener
// registration in hosts is scoped 1:1 to Begin/End; the core only tracks the
// session itself.
type resizeState struct {
	active  bool
	axis    AxisKind
	targets []int
	// base holds each target's size at drag start; deltas apply against it
	// so floors are enforced on every update without drift.
	base map[int]int
}

// BeginResize starts a resize drag on one index of an axis. When the index
// belongs to the current selection and the selection's type matches the axis,
// every selected index resizes in lockstep.
func (g *Grid) BeginResize(axis AxisKind, index int) {
	g.CommitEdit()
	a := g.Axis(axis)
	if index < 0 || index >= a.Count() {
		return
	}

	targets := []int{index}
	if set := g.matchingSelectionSet(axis); set != nil {
		if _, ok := set[index]; ok {
			targets = targets[:0]
			for i := range set {
				if i < a.Count() {
					targets = append(targets, i)
				}
			}
		}
	}

	base := make(map[int]int, len(targets))
	for _, i := range targets {
		base[i] = a.Size(i)
	}
	g.resize = resizeState{active: true, axis: axis, targets: targets, base: base}
	g.bump()
}

func (g *Grid) matchingSelectionSet(axis AxisKind) map[int]struct{} {
	typ, ok := g.SelectionType()
	if !ok {
		return nil
	}
	switch {
	case axis == AxisRows && typ == SelectRows:
		return g.selectedRowSet()
	case axis == AxisCols && typ == SelectColumns:
		return g.selectedColSet()
	}
	return nil
}

// UpdateResize applies the pointer delta to every drag target. Minimum-size
// floors are enforced here, on every update, not only at drag end.
func (g *Grid) UpdateResize(delta int) {
	if !g.resize.active {
		return
	}
	a := g.Axis(g.resize.axis)
	for _, i := range g.resize.targets {
		a.SetSize(i, g.resize.base[i]+delta)
	}
	g.bump()
}

// EndResize closes the drag session.
func (g *Grid) EndResize() {
	if !g.resize.active {
		return
	}
	g.resize = resizeState{}
	g.bump()
}

// ResizeActive reports whether a resize drag is in progress.
func (g *Grid) ResizeActive() bool { return g.resize.active }

// ResizeTargets returns the indices the active drag resizes.
func (g *Grid) ResizeTargets() []int {
	if !g.resize.active {
		return nil
	}
	out := make([]int, len(g.resize.targets))
	copy(out, g.resize.targets)
	return out
}

// AutoFitColumn sizes col to its widest content: every stored cell in the
// column (header cells included) is formatted and measured, and the maximum
// is clamped to [minimum, MaxAutoFitWidth]. When col is part of a column
// multi-selection the width applies to every selected column; otherwise to
// col alone. Returns the applied width.
func (g *Grid) AutoFitColumn(col int) int {
	if col < 0 || col >= g.Cols() {
		return 0
	}

	width := g.opt.MinColWidth
	for ref, c := range g.cells {
		if ref.Col != col {
			continue
		}
		text := g.opt.Format(c.Value, c.Format)
		if w := g.measureText(text, c.Format); w > width {
			width = w
		}
	}
	width = clampInt(width, g.opt.MinColWidth, g.opt.MaxAutoFitWidth)

	targets := []int{col}
	if set := g.matchingSelectionSet(AxisCols); set != nil {
		if _, ok := set[col]; ok {
			targets = targets[:0]
			for i := range set {
				targets = append(targets, i)
			}
		}
	}
	for _, i := range targets {
		g.colAxis.SetSize(i, width)
	}
	g.bump()
	return width
}

func (g *Grid) measureText(text string, f *Formatting) int {
	if g.opt.MeasureText != nil {
		return g.opt.MeasureText(text, f)
	}
	size := g.opt.FontSize
	if f != nil && f.FontSize > 0 {
		size = f.FontSize
	}
	w := float64(textwidth.Graphemes(text)) * float64(size) * 0.6
	if f != nil && f.emphasized() {
		w *= 1.1
	}
	return int(w + 0.5)
}
