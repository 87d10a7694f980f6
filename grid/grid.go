package grid

// Options configures a Grid. Zero fields take the documented defaults.
type Options struct {
	// Initial row/column counts. Defaults: 100 rows, 26 columns.
	Rows int
	Cols int

	// Default and minimum axis sizes, in host units.
	// Defaults: 24/100 default, 20/30 minimum (rows/columns).
	DefaultRowHeight int
	DefaultColWidth  int
	MinRowHeight     int
	MinColWidth      int

	// Trailing viewport slack per axis, in indices. Defaults: 10 rows,
	// 5 columns.
	RowSlack int
	ColSlack int

	// Parse is consulted on every commit and import. Defaults to TextValue.
	Parse ParseFunc
	// Format renders display strings for filters and auto-fit. Defaults to
	// returning Value.Raw.
	Format FormatFunc

	// MeasureText estimates rendered text width for auto-fit. The default
	// estimator multiplies the grapheme count by a font-size-scaled
	// per-character constant (x1.1 when bold or italic).
	MeasureText func(text string, f *Formatting) int

	// FontSize scales the default width estimator. Default 12.
	FontSize int
	// MaxAutoFitWidth clamps auto-fit results. Default 500.
	MaxAutoFitWidth int
}

func (o Options) withDefaults() Options {
	if o.Rows <= 0 {
		o.Rows = 100
	}
	if o.Cols <= 0 {
		o.Cols = 26
	}
	if o.DefaultRowHeight <= 0 {
		o.DefaultRowHeight = 24
	}
	if o.DefaultColWidth <= 0 {
		o.DefaultColWidth = 100
	}
	if o.MinRowHeight <= 0 {
		o.MinRowHeight = 20
	}
	if o.MinColWidth <= 0 {
		o.MinColWidth = 30
	}
	if o.RowSlack <= 0 {
		o.RowSlack = 10
	}
	if o.ColSlack <= 0 {
		o.ColSlack = 5
	}
	if o.Parse == nil {
		o.Parse = TextValue
	}
	if o.Format == nil {
		o.Format = func(v Value, _ *Formatting) string { return v.Raw }
	}
	if o.FontSize <= 0 {
		o.FontSize = 12
	}
	if o.MaxAutoFitWidth <= 0 {
		o.MaxAutoFitWidth = 500
	}
	return o
}

// Grid is the single-owner engine state. All mutation happens synchronously
// through its methods; hosts read derived state between events.
type Grid struct {
	opt Options

	cells map[CellRef]Cell

	rowAxis *Axis
	colAxis *Axis

	sel    selectionState
	edit   editState
	clip   clipboardState
	resize resizeState

	tables []*Table
	// headerIdx maps header cells to their owning table; rebuilt lazily.
	headerIdx      map[CellRef]*Table
	headerIdxStale bool

	version uint64
}

func New(opt Options) *Grid {
	opt = opt.withDefaults()
	g := &Grid{
		opt:     opt,
		cells:   make(map[CellRef]Cell),
		rowAxis: NewAxis(opt.Rows, opt.DefaultRowHeight, opt.MinRowHeight, opt.RowSlack),
		colAxis: NewAxis(opt.Cols, opt.DefaultColWidth, opt.MinColWidth, opt.ColSlack),
	}
	g.sel.init()
	return g
}

// Version is a monotonic counter bumped on every mutation. Hosts key their
// render caches on it.
func (g *Grid) Version() uint64 { return g.version }

func (g *Grid) bump() { g.version++ }

func (g *Grid) Rows() int { return g.rowAxis.Count() }

func (g *Grid) Cols() int { return g.colAxis.Count() }

// RowAxis exposes the row dimension index for layout queries.
func (g *Grid) RowAxis() *Axis { return g.rowAxis }

// ColAxis exposes the column dimension index for layout queries.
func (g *Grid) ColAxis() *Axis { return g.colAxis }

// Axis returns the dimension index for kind.
func (g *Grid) Axis(kind AxisKind) *Axis {
	if kind == AxisRows {
		return g.rowAxis
	}
	return g.colAxis
}

// Cell returns the stored cell at (row, col). A missing entry is an empty
// cell, not an error.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	c, ok := g.cells[CellRef{Row: row, Col: col}]
	return c, ok
}

// CellCount returns the number of stored (non-empty) cells.
func (g *Grid) CellCount() int { return len(g.cells) }

func (g *Grid) clampRef(r CellRef) CellRef {
	r.Row = clampInt(r.Row, 0, maxInt(g.Rows()-1, 0))
	r.Col = clampInt(r.Col, 0, maxInt(g.Cols()-1, 0))
	return r
}

// growTo expands counts so that (row, col) is addressable. Counts only grow;
// they shrink solely through Clear.
func (g *Grid) growTo(row, col int) {
	if row >= g.rowAxis.Count() {
		g.rowAxis.setCount(row + 1)
	}
	if col >= g.colAxis.Count() {
		g.colAxis.setCount(col + 1)
	}
}

// SetCell parses raw and stores the result at (row, col), growing counts to
// cover the target. An empty raw deletes the cell together with any
// formatting it carried.
func (g *Grid) SetCell(row, col int, raw string) {
	if row < 0 || col < 0 {
		return
	}
	g.growTo(row, col)
	g.setCellRaw(CellRef{Row: row, Col: col}, raw, true)
	g.bump()
	g.refreshTableState()
}

// setCellRaw writes one parsed cell without bumping the version. When
// keepFormat is set, existing formatting survives a value overwrite.
func (g *Grid) setCellRaw(ref CellRef, raw string, keepFormat bool) {
	if raw == "" {
		delete(g.cells, ref)
		return
	}
	v := g.opt.Parse(raw)
	c := Cell{Value: v}
	if keepFormat {
		if prev, ok := g.cells[ref]; ok {
			c.Format = prev.Format
		}
	}
	c = applyDetectedFormat(c)
	g.cells[ref] = c
}

// applyDetectedFormat auto-applies an inference-detected date/time display
// format when the cell does not already carry one.
func applyDetectedFormat(c Cell) Cell {
	if c.Value.DetectedFormat == "" || !c.Value.Type.IsTemporal() {
		return c
	}
	if c.Format != nil && c.Format.DisplayFormat != "" {
		return c
	}
	if c.Format == nil {
		c.Format = &Formatting{}
	} else {
		f := *c.Format
		c.Format = &f
	}
	c.Format.DisplayFormat = c.Value.DetectedFormat
	return c
}

func (g *Grid) deleteCell(ref CellRef) {
	delete(g.cells, ref)
}

// Clear resets the grid to its initial empty state: cells, size overrides,
// selection, edit session, clipboard, and table regions are all dropped, and
// counts return to their configured initial values.
func (g *Grid) Clear() {
	g.cells = make(map[CellRef]Cell)
	g.rowAxis = NewAxis(g.opt.Rows, g.opt.DefaultRowHeight, g.opt.MinRowHeight, g.opt.RowSlack)
	g.colAxis = NewAxis(g.opt.Cols, g.opt.DefaultColWidth, g.opt.MinColWidth, g.opt.ColSlack)
	g.sel.init()
	g.edit = editState{}
	g.clip = clipboardState{}
	g.resize = resizeState{}
	g.tables = nil
	g.headerIdx = nil
	g.headerIdxStale = false
	g.bump()
}

// AddRows appends n rows.
func (g *Grid) AddRows(n int) {
	if n <= 0 {
		return
	}
	g.rowAxis.setCount(g.rowAxis.Count() + n)
	g.bump()
}

// AddColumns appends n columns.
func (g *Grid) AddColumns(n int) {
	if n <= 0 {
		return
	}
	g.colAxis.setCount(g.colAxis.Count() + n)
	g.bump()
}

// UsedBounds returns the bounding rectangle of all stored cells.
func (g *Grid) UsedBounds() (Rect, bool) {
	if len(g.cells) == 0 {
		return Rect{}, false
	}
	first := true
	var r Rect
	for ref := range g.cells {
		if first {
			r = Rect{R0: ref.Row, C0: ref.Col, R1: ref.Row, C1: ref.Col}
			first = false
			continue
		}
		if ref.Row < r.R0 {
			r.R0 = ref.Row
		}
		if ref.Row > r.R1 {
			r.R1 = ref.Row
		}
		if ref.Col < r.C0 {
			r.C0 = ref.Col
		}
		if ref.Col > r.C1 {
			r.C1 = ref.Col
		}
	}
	return r, true
}

// DisplayString renders the cell at (row, col) through the configured format
// function. Missing cells render as "".
func (g *Grid) DisplayString(row, col int) string {
	c, ok := g.Cell(row, col)
	if !ok {
		return ""
	}
	return g.opt.Format(c.Value, c.Format)
}
