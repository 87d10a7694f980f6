package grid

// clipEntry is one staged cell at an offset relative to the snapshot origin.
// hasCell false marks an explicitly empty source coordinate.
type clipEntry struct {
	dr, dc  int
	cell    Cell
	hasCell bool
}

// clipboardState is the staged relative-offset snapshot. A cut's source
// deletion is deferred until paste; cancelling a cut never deletes.
type clipboardState struct {
	active  bool
	cut     bool
	entries []clipEntry
	sources map[CellRef]struct{}
}

// Copy snapshots the selected coordinates relative to their bounding box
// top-left. Returns false when nothing is selected.
func (g *Grid) Copy() bool { return g.stageClipboard(false) }

// Cut stages the selected coordinates like Copy and marks the snapshot as a
// cut. Source cells are deleted only when the snapshot is pasted.
func (g *Grid) Cut() bool { return g.stageClipboard(true) }

func (g *Grid) stageClipboard(cut bool) bool {
	refs := g.selectedRefs()
	if len(refs) == 0 {
		return false
	}

	origin := refs[0]
	for _, ref := range refs[1:] {
		if ref.Row < origin.Row {
			origin.Row = ref.Row
		}
		if ref.Col < origin.Col {
			origin.Col = ref.Col
		}
	}

	entries := make([]clipEntry, 0, len(refs))
	sources := make(map[CellRef]struct{}, len(refs))
	for _, ref := range refs {
		e := clipEntry{dr: ref.Row - origin.Row, dc: ref.Col - origin.Col}
		if c, ok := g.cells[ref]; ok {
			e.cell = cloneCell(c)
			e.hasCell = true
		}
		entries = append(entries, e)
		sources[ref] = struct{}{}
	}

	g.clip = clipboardState{active: true, cut: cut, entries: entries, sources: sources}
	g.bump()
	return true
}

// Paste writes the staged snapshot at anchor: each entry lands at
// anchor+offset, deleting targets staged as empty. A cut deletes its source
// coordinates as part of the same operation, before the writes so a source
// overlapping the target range is not clobbered afterwards. The clipboard
// clears after success; a second paste without a new copy is a no-op.
func (g *Grid) Paste(anchor CellRef) bool {
	if !g.clip.active {
		return false
	}
	if anchor.Row < 0 || anchor.Col < 0 {
		return false
	}

	if g.clip.cut {
		for src := range g.clip.sources {
			g.deleteCell(src)
		}
	}

	for _, e := range g.clip.entries {
		target := CellRef{Row: anchor.Row + e.dr, Col: anchor.Col + e.dc}
		g.growTo(target.Row, target.Col)
		if e.hasCell {
			g.cells[target] = cloneCell(e.cell)
		} else {
			g.deleteCell(target)
		}
	}

	g.clip = clipboardState{}
	g.bump()
	g.refreshTableState()
	return true
}

// PasteAtSelection pastes at the bounding-box top-left of the current
// selection.
func (g *Grid) PasteAtSelection() bool {
	refs := g.selectedRefs()
	if len(refs) == 0 {
		return false
	}
	anchor := refs[0]
	for _, ref := range refs[1:] {
		if ref.Row < anchor.Row {
			anchor.Row = ref.Row
		}
		if ref.Col < anchor.Col {
			anchor.Col = ref.Col
		}
	}
	return g.Paste(anchor)
}

// ClipboardActive reports whether a snapshot is staged.
func (g *Grid) ClipboardActive() bool { return g.clip.active }

// ClipboardIsCut reports whether the staged snapshot is a cut.
func (g *Grid) ClipboardIsCut() bool { return g.clip.active && g.clip.cut }

// ClipboardSource reports whether ref is a staged source coordinate, letting
// hosts render cut/copy marching-ants feedback.
func (g *Grid) ClipboardSource(ref CellRef) bool {
	if !g.clip.active {
		return false
	}
	_, ok := g.clip.sources[ref]
	return ok
}

// CancelClipboard discards the staged snapshot. Cancelling a cut leaves the
// source cells untouched.
func (g *Grid) CancelClipboard() {
	if !g.clip.active {
		return
	}
	g.clip = clipboardState{}
	g.bump()
}
