package grid

// CellEdit is one (row, col, raw) write in a batch.
type CellEdit struct {
	Row int
	Col int
	Raw string
}

// BatchCell is one fully materialized cell produced by an import adapter.
type BatchCell struct {
	Row    int
	Col    int
	Raw    string
	Format *Formatting
}

// CellBatch is a ready-made set of cell writes handed to the core by an
// import adapter. The core never parses source file formats itself.
type CellBatch struct {
	Cells []BatchCell
}

// SetRange writes raw into every cell of the inclusive rectangle.
func (g *Grid) SetRange(r0, c0, r1, c1 int, raw string) {
	rect := RectFrom(CellRef{Row: r0, Col: c0}, CellRef{Row: r1, Col: c1})
	if rect.R0 < 0 {
		rect.R0 = 0
	}
	if rect.C0 < 0 {
		rect.C0 = 0
	}
	g.growTo(rect.R1, rect.C1)
	for row := rect.R0; row <= rect.R1; row++ {
		for col := rect.C0; col <= rect.C1; col++ {
			g.setCellRaw(CellRef{Row: row, Col: col}, raw, true)
		}
	}
	g.bump()
	g.refreshTableState()
}

// BatchSet applies a list of raw-text writes in order.
func (g *Grid) BatchSet(edits []CellEdit) {
	if len(edits) == 0 {
		return
	}
	for _, e := range edits {
		if e.Row < 0 || e.Col < 0 {
			continue
		}
		g.growTo(e.Row, e.Col)
		g.setCellRaw(CellRef{Row: e.Row, Col: e.Col}, e.Raw, true)
	}
	g.bump()
	g.refreshTableState()
}

// ImportCells assigns an adapter-produced batch. With autoExpand, counts grow
// to cover every batch coordinate; otherwise out-of-range cells are dropped
// (batch validation is the adapter's responsibility). A non-nil region
// creates a table region over the imported data.
func (g *Grid) ImportCells(batch CellBatch, autoExpand bool, region *RegionSpec) {
	for _, bc := range batch.Cells {
		if bc.Row < 0 || bc.Col < 0 {
			continue
		}
		if bc.Row >= g.Rows() || bc.Col >= g.Cols() {
			if !autoExpand {
				continue
			}
			g.growTo(bc.Row, bc.Col)
		}
		ref := CellRef{Row: bc.Row, Col: bc.Col}
		if bc.Raw == "" && bc.Format == nil {
			g.deleteCell(ref)
			continue
		}
		c := Cell{Value: g.opt.Parse(bc.Raw)}
		if bc.Format != nil {
			f := *bc.Format
			c.Format = &f
		}
		c = applyDetectedFormat(c)
		g.cells[ref] = c
	}
	if region != nil {
		g.AddTable(*region)
	}
	g.bump()
	g.refreshTableState()
}

// ApplyFormatting merges a partial formatting update into every selected
// cell. Empty coordinates get a cell with empty content so the style has a
// place to live.
func (g *Grid) ApplyFormatting(patch FormatPatch) {
	refs := g.selectedRefs()
	if len(refs) == 0 {
		return
	}
	for _, ref := range refs {
		c := g.cells[ref]
		var f Formatting
		if c.Format != nil {
			f = *c.Format
		}
		patch.apply(&f)
		if f.IsZero() {
			c.Format = nil
		} else {
			c.Format = &f
		}
		if c.Format == nil && c.Value.Raw == "" {
			g.deleteCell(ref)
			continue
		}
		g.cells[ref] = c
	}
	g.bump()
	g.refreshTableState()
}

// FillDown propagates the first row of each selected column down through the
// rest of the selection. Empty sources clear their targets.
func (g *Grid) FillDown() { g.fill(true) }

// FillRight propagates the first column of each selected row across the rest
// of the selection.
func (g *Grid) FillRight() { g.fill(false) }

func (g *Grid) fill(down bool) {
	changed := false
	for _, r := range g.Selection() {
		rect := r.Rect()
		rect.R1 = clampInt(rect.R1, 0, g.Rows()-1)
		rect.C1 = clampInt(rect.C1, 0, g.Cols()-1)
		if down {
			for col := rect.C0; col <= rect.C1; col++ {
				src, hasSrc := g.cells[CellRef{Row: rect.R0, Col: col}]
				for row := rect.R0 + 1; row <= rect.R1; row++ {
					g.copyInto(CellRef{Row: row, Col: col}, src, hasSrc)
					changed = true
				}
			}
		} else {
			for row := rect.R0; row <= rect.R1; row++ {
				src, hasSrc := g.cells[CellRef{Row: row, Col: rect.C0}]
				for col := rect.C0 + 1; col <= rect.C1; col++ {
					g.copyInto(CellRef{Row: row, Col: col}, src, hasSrc)
					changed = true
				}
			}
		}
	}
	if changed {
		g.bump()
		g.refreshTableState()
	}
}

func (g *Grid) copyInto(ref CellRef, src Cell, hasSrc bool) {
	if !hasSrc {
		g.deleteCell(ref)
		return
	}
	g.cells[ref] = cloneCell(src)
}

// SelectedCellType returns the shared type of all non-empty selected cells,
// or false when the selection is empty or mixed.
func (g *Grid) SelectedCellType() (CellType, bool) {
	var typ CellType
	found := false
	for _, ref := range g.selectedRefs() {
		c, ok := g.cells[ref]
		if !ok {
			continue
		}
		if !found {
			typ = c.Value.Type
			found = true
			continue
		}
		if c.Value.Type != typ {
			return TypeText, false
		}
	}
	if !found {
		return TypeText, false
	}
	return typ, true
}

// SetSelectedCellType force-relabels the selected cells' value type without
// reparsing their raw text.
func (g *Grid) SetSelectedCellType(typ CellType) {
	changed := false
	for _, ref := range g.selectedRefs() {
		c, ok := g.cells[ref]
		if !ok || c.Value.Type == typ {
			continue
		}
		c.Value.Type = typ
		g.cells[ref] = c
		changed = true
	}
	if changed {
		g.bump()
		g.refreshTableState()
	}
}
