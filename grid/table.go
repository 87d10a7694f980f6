package grid

import (
	"sort"
	"strings"
)

// SortDirection is the three-state sort cycle of a table column.
type SortDirection uint8

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

func (d SortDirection) next() SortDirection {
	switch d {
	case SortAsc:
		return SortDesc
	case SortDesc:
		return SortNone
	default:
		return SortAsc
	}
}

// RegionSpec describes a table region to create, typically at import time.
type RegionSpec struct {
	Name      string
	Rect      Rect
	HeaderRow bool
}

// Table layers header, filter, and sort metadata over a rectangular grid
// region. Tables reference coordinates only; cells never point back to their
// region.
type Table struct {
	Name      string
	Rect      Rect
	HasHeader bool

	// filters maps absolute column index to the set of allowed display
	// strings. A column absent from the map has no active filter.
	filters map[int]map[string]struct{}

	sortCol int
	sortDir SortDirection

	// visible is the derived visible-row set over data rows; nil means no
	// filters are active and every row is visible.
	visible map[int]struct{}
}

// SortState returns the table's active sort column and direction.
func (t *Table) SortState() (col int, dir SortDirection) { return t.sortCol, t.sortDir }

// HasFilter reports whether col carries an active filter.
func (t *Table) HasFilter(col int) bool {
	_, ok := t.filters[col]
	return ok
}

// FilterValues returns a copy of the allowed display strings for col.
func (t *Table) FilterValues(col int) []string {
	set, ok := t.filters[col]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// dataStartRow is the first data row, skipping the header when present.
func (t *Table) dataStartRow() int {
	if t.HasHeader {
		return t.Rect.R0 + 1
	}
	return t.Rect.R0
}

// AddTable creates a table region, growing counts to cover its rectangle.
// With a header, the header row may sit one row above the grid (R0 of -1):
// the region then has no header cell and every on-grid row is data.
func (g *Grid) AddTable(spec RegionSpec) *Table {
	rect := RectFrom(CellRef{Row: spec.Rect.R0, Col: spec.Rect.C0}, CellRef{Row: spec.Rect.R1, Col: spec.Rect.C1})
	minRow := 0
	if spec.HeaderRow {
		minRow = -1
	}
	if rect.R0 < minRow {
		rect.R0 = minRow
	}
	if rect.C0 < 0 {
		rect.C0 = 0
	}
	g.growTo(rect.R1, rect.C1)

	t := &Table{
		Name:      spec.Name,
		Rect:      rect,
		HasHeader: spec.HeaderRow,
		filters:   make(map[int]map[string]struct{}),
		sortCol:   -1,
	}
	g.tables = append(g.tables, t)
	g.headerIdxStale = true
	g.bump()
	return t
}

// RemoveTable drops a table region. Its cells are untouched.
func (g *Grid) RemoveTable(t *Table) {
	for i, existing := range g.tables {
		if existing == t {
			g.tables = append(g.tables[:i], g.tables[i+1:]...)
			g.headerIdxStale = true
			g.bump()
			return
		}
	}
}

// Tables returns the live table regions.
func (g *Grid) Tables() []*Table { return g.tables }

// TableAt returns the table region containing (row, col).
func (g *Grid) TableAt(row, col int) *Table {
	for _, t := range g.tables {
		if t.Rect.Contains(row, col) {
			return t
		}
	}
	return nil
}

// HeaderTableAt returns the table owning (row, col) as a header cell. The
// reverse lookup is a derived index rebuilt lazily; cells never store
// back-pointers.
func (g *Grid) HeaderTableAt(row, col int) *Table {
	if g.headerIdxStale || g.headerIdx == nil {
		g.headerIdx = make(map[CellRef]*Table)
		for _, t := range g.tables {
			if !t.HasHeader {
				continue
			}
			for c := t.Rect.C0; c <= t.Rect.C1; c++ {
				g.headerIdx[CellRef{Row: t.Rect.R0, Col: c}] = t
			}
		}
		g.headerIdxStale = false
	}
	return g.headerIdx[CellRef{Row: row, Col: col}]
}

// CycleSort advances the sort state of a header column through
// asc -> desc -> none and applies the resulting order. A no-op for tables
// without a header or for columns outside the region. Cycling to none stops
// re-sorting; it does not restore the pre-sort order.
func (g *Grid) CycleSort(t *Table, col int) {
	if t == nil || !t.HasHeader || !t.Rect.ContainsCol(col) {
		return
	}
	if t.sortCol != col {
		t.sortCol = col
		t.sortDir = SortAsc
	} else {
		t.sortDir = t.sortDir.next()
	}
	if t.sortDir == SortNone {
		t.sortCol = -1
		g.bump()
		return
	}
	g.applySort(t)
	g.bump()
	g.refreshTableState()
}

// SortColumn applies a specific direction directly, bypassing the cycle.
func (g *Grid) SortColumn(t *Table, col int, dir SortDirection) {
	if t == nil || !t.HasHeader || !t.Rect.ContainsCol(col) {
		return
	}
	t.sortCol = col
	t.sortDir = dir
	if dir == SortNone {
		t.sortCol = -1
		g.bump()
		return
	}
	g.applySort(t)
	g.bump()
	g.refreshTableState()
}

// applySort gathers the region's data rows, stable-sorts them by the typed
// key in the sort column, and physically rewrites the region's cell entries
// into the new row order.
func (g *Grid) applySort(t *Table) {
	start := t.dataStartRow()
	if start > t.Rect.R1 {
		return
	}

	type rowSnapshot struct {
		cells  map[int]Cell
		key    Cell
		hasKey bool
	}
	rows := make([]rowSnapshot, 0, t.Rect.R1-start+1)
	for r := start; r <= t.Rect.R1; r++ {
		snap := rowSnapshot{cells: make(map[int]Cell)}
		for c := t.Rect.C0; c <= t.Rect.C1; c++ {
			if cell, ok := g.cells[CellRef{Row: r, Col: c}]; ok {
				snap.cells[c] = cell
				if c == t.sortCol {
					snap.key = cell
					snap.hasKey = true
				}
			}
		}
		rows = append(rows, snap)
	}

	desc := t.sortDir == SortDesc
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		// Empty keys sort after non-empty in either direction.
		if !a.hasKey || !b.hasKey {
			return a.hasKey && !b.hasKey
		}
		cmp := compareValues(a.key.Value, b.key.Value)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})

	for i, snap := range rows {
		r := start + i
		for c := t.Rect.C0; c <= t.Rect.C1; c++ {
			if cell, ok := snap.cells[c]; ok {
				g.cells[CellRef{Row: r, Col: c}] = cell
			} else {
				delete(g.cells, CellRef{Row: r, Col: c})
			}
		}
	}
}

// compareValues is the type-aware sort comparator: numeric difference for
// number-family values, epoch difference for temporal values, duration
// difference for durations, lexicographic for text, and raw-string coercion
// when the types differ.
func compareValues(a, b Value) int {
	switch {
	case numberFamily(a.Type) && numberFamily(b.Type):
		switch {
		case a.Number < b.Number:
			return -1
		case a.Number > b.Number:
			return 1
		}
		return 0
	case a.Type.IsTemporal() && b.Type.IsTemporal():
		switch {
		case a.Time.Before(b.Time):
			return -1
		case a.Time.After(b.Time):
			return 1
		}
		return 0
	case a.Type == TypeDuration && b.Type == TypeDuration:
		switch {
		case a.Duration < b.Duration:
			return -1
		case a.Duration > b.Duration:
			return 1
		}
		return 0
	case a.Type == TypeText && b.Type == TypeText:
		return strings.Compare(a.Text, b.Text)
	}
	return strings.Compare(a.Raw, b.Raw)
}

func numberFamily(t CellType) bool {
	return t == TypeNumber || t == TypePercent || t == TypeCurrency
}

// SetFilter replaces the filter on col with a required-membership set over
// display strings. An empty allowed set is still a filter: no value passes,
// so every data row hides. Use ClearFilter to remove the filter. No-op for
// tables without a header.
func (g *Grid) SetFilter(t *Table, col int, allowed []string) {
	if t == nil || !t.HasHeader || !t.Rect.ContainsCol(col) {
		return
	}
	set := make(map[string]struct{}, len(allowed))
	for _, s := range allowed {
		set[s] = struct{}{}
	}
	t.filters[col] = set
	g.recomputeVisible(t)
	g.bump()
}

// ClearFilter removes the filter on col.
func (g *Grid) ClearFilter(t *Table, col int) {
	if t == nil {
		return
	}
	if _, ok := t.filters[col]; !ok {
		return
	}
	delete(t.filters, col)
	g.recomputeVisible(t)
	g.bump()
}

// ClearFilters removes every filter on the table.
func (g *Grid) ClearFilters(t *Table) {
	if t == nil || len(t.filters) == 0 {
		return
	}
	t.filters = make(map[int]map[string]struct{})
	g.recomputeVisible(t)
	g.bump()
}

// RowVisible reports whether row passes its region's filters. Rows outside
// every region, and rows in regions without active filters, are visible.
func (g *Grid) RowVisible(row int) bool {
	for _, t := range g.tables {
		if !t.Rect.ContainsRow(row) {
			continue
		}
		if t.visible == nil {
			return true
		}
		if t.HasHeader && row == t.Rect.R0 {
			return true
		}
		_, ok := t.visible[row]
		return ok
	}
	return true
}

// recomputeVisible rebuilds the table's derived visible-row set: a data row
// is visible iff its formatted value is a member of every active column
// filter.
func (g *Grid) recomputeVisible(t *Table) {
	if len(t.filters) == 0 {
		t.visible = nil
		return
	}
	t.visible = make(map[int]struct{})
	for r := t.dataStartRow(); r <= t.Rect.R1; r++ {
		ok := true
		for col, set := range t.filters {
			if _, member := set[g.DisplayString(r, col)]; !member {
				ok = false
				break
			}
		}
		if ok {
			t.visible[r] = struct{}{}
		}
	}
}

// refreshTableState recomputes derived visible-row sets after cell
// mutations: filters depend on the cells under them.
func (g *Grid) refreshTableState() {
	for _, t := range g.tables {
		if len(t.filters) > 0 {
			g.recomputeVisible(t)
		}
	}
}

// ColumnDisplayValues returns the distinct display strings of a table
// column's data rows, sorted, for filter pickers.
func (g *Grid) ColumnDisplayValues(t *Table, col int) []string {
	if t == nil || !t.Rect.ContainsCol(col) {
		return nil
	}
	seen := make(map[string]struct{})
	out := make([]string, 0, 8)
	for r := t.dataStartRow(); r <= t.Rect.R1; r++ {
		s := g.DisplayString(r, col)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
