package sheet

// layoutKey is the structural signature the layout cache is keyed on. Any
// difference forces one rebuild at the next paint; repeated scroll events
// within a frame therefore cost a single viewport recompute.
type layoutKey struct {
	version          uint64
	scrollX, scrollY int
	width, height    int
	hideHeaders      bool
}

// colBand is one visible column: its absolute index, screen x, and width.
type colBand struct {
	col int
	x   int
	w   int
}

// rowBand is one visible (unfiltered) row: its absolute index, screen y,
// and height in terminal lines.
type rowBand struct {
	row int
	y   int
	h   int
}

type layoutCache struct {
	valid bool
	key   layoutKey

	gutter  int
	headerH int

	cols []colBand
	rows []rowBand
}

func (m *Model) layoutSignature() layoutKey {
	return layoutKey{
		version:     m.g.Version(),
		scrollX:     m.scrollX,
		scrollY:     m.scrollY,
		width:       m.width,
		height:      m.height,
		hideHeaders: m.cfg.HideHeaders,
	}
}

func (m *Model) contentSize() (w, h int) {
	gutter, headerH := m.chromeSize()
	return m.width - gutter, m.height - headerH
}

func (m *Model) chromeSize() (gutter, headerH int) {
	if m.cfg.HideHeaders {
		return 0, 0
	}
	return gutterDigits(m.g.Rows()) + 1, 1
}

func gutterDigits(rows int) int {
	digits := 1
	for rows >= 10 {
		rows /= 10
		digits++
	}
	return digits
}

func (m *Model) ensureLayout() layoutCache {
	key := m.layoutSignature()
	if m.layout.valid && m.layout.key == key {
		return m.layout
	}

	cache := layoutCache{valid: true, key: key}
	cache.gutter, cache.headerH = m.chromeSize()

	cw := m.width - cache.gutter
	ch := m.height - cache.headerH
	if cw <= 0 || ch <= 0 {
		m.layout = cache
		return cache
	}

	colAxis := m.g.ColAxis()
	c0, c1 := colAxis.VisibleRange(m.scrollX, cw)
	cache.cols = make([]colBand, 0, c1-c0)
	for col := c0; col < c1; col++ {
		cache.cols = append(cache.cols, colBand{
			col: col,
			x:   cache.gutter + colAxis.PositionOf(col) - m.scrollX,
			w:   colAxis.Size(col),
		})
	}

	// Rows stack top-down from the first row at the scroll offset, skipping
	// filtered-out rows, until the content region is full.
	rowAxis := m.g.RowAxis()
	y := cache.headerH
	for row := rowAxis.IndexAt(m.scrollY); row < rowAxis.Count() && y < m.height; row++ {
		if !m.g.RowVisible(row) {
			continue
		}
		h := rowAxis.Size(row)
		cache.rows = append(cache.rows, rowBand{row: row, y: y, h: h})
		y += h
	}

	m.layout = cache
	return cache
}
