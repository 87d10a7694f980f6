package grid

import "sort"

// AxisKind selects a grid axis.
type AxisKind uint8

const (
	AxisRows AxisKind = iota
	AxisCols
)

// Axis is the dimension index for one axis: a sparse size-override map over a
// default size, plus a cumulative offset cache for position lookups. The
// cache is rebuilt lazily whenever the count or any size changes.
type Axis struct {
	count int
	def   int
	min   int
	slack int

	overrides map[int]int

	// offsets[i] is the position of index i; offsets[count] is the total
	// extent. Valid only while !stale.
	offsets []int
	stale   bool
}

// NewAxis builds an axis of count indices with the given default size,
// minimum size floor, and trailing viewport slack (in indices).
func NewAxis(count, defaultSize, minSize, slack int) *Axis {
	if count < 0 {
		count = 0
	}
	if defaultSize < 1 {
		defaultSize = 1
	}
	if minSize < 1 {
		minSize = 1
	}
	if slack < 0 {
		slack = 0
	}
	return &Axis{
		count:     count,
		def:       defaultSize,
		min:       minSize,
		slack:     slack,
		overrides: make(map[int]int),
		stale:     true,
	}
}

func (a *Axis) Count() int { return a.count }

func (a *Axis) DefaultSize() int { return a.def }

func (a *Axis) MinSize() int { return a.min }

func (a *Axis) setCount(n int) {
	if n < 0 {
		n = 0
	}
	if n == a.count {
		return
	}
	a.count = n
	a.stale = true
}

// Size returns the effective size of index i.
func (a *Axis) Size(i int) int {
	if s, ok := a.overrides[i]; ok {
		return s
	}
	return a.def
}

// SetSize sets an explicit size override for index i, floored at the axis
// minimum.
func (a *Axis) SetSize(i, size int) {
	if i < 0 || i >= a.count {
		return
	}
	if size < a.min {
		size = a.min
	}
	if size == a.Size(i) {
		return
	}
	a.overrides[i] = size
	a.stale = true
}

// ClearSizes drops all explicit size overrides.
func (a *Axis) ClearSizes() {
	if len(a.overrides) == 0 {
		return
	}
	a.overrides = make(map[int]int)
	a.stale = true
}

func (a *Axis) rebuild() {
	if !a.stale {
		return
	}
	offsets := a.offsets
	if cap(offsets) < a.count+1 {
		offsets = make([]int, a.count+1)
	}
	offsets = offsets[:a.count+1]
	pos := 0
	for i := 0; i < a.count; i++ {
		offsets[i] = pos
		pos += a.Size(i)
	}
	offsets[a.count] = pos
	a.offsets = offsets
	a.stale = false
}

// PositionOf returns the cumulative offset of index i. Indices past the end
// report the total extent.
func (a *Axis) PositionOf(i int) int {
	a.rebuild()
	i = clampInt(i, 0, a.count)
	return a.offsets[i]
}

// Extent returns the total size of the axis.
func (a *Axis) Extent() int {
	a.rebuild()
	return a.offsets[a.count]
}

// SpanSize returns the total size of the half-open index range [i, j).
func (a *Axis) SpanSize(i, j int) int {
	a.rebuild()
	i = clampInt(i, 0, a.count)
	j = clampInt(j, i, a.count)
	return a.offsets[j] - a.offsets[i]
}

// IndexAt returns the index whose span contains offset: the last index whose
// position is <= offset. Offsets past the end clamp to the last index.
func (a *Axis) IndexAt(offset int) int {
	a.rebuild()
	if a.count == 0 || offset <= 0 {
		return 0
	}
	i := sort.Search(a.count, func(i int) bool { return a.offsets[i+1] > offset })
	if i >= a.count {
		return a.count - 1
	}
	return i
}

// VisibleRange resolves the half-open index range [start, end) covering the
// viewport [scroll, scroll+viewport), backed off by one index of slack below
// the first hit and extended by the axis trailing slack to absorb fast-scroll
// popping. For fixed sizes, start never decreases as scroll increases.
func (a *Axis) VisibleRange(scroll, viewport int) (start, end int) {
	a.rebuild()
	if a.count == 0 {
		return 0, 0
	}
	if scroll < 0 {
		scroll = 0
	}
	if viewport < 0 {
		viewport = 0
	}

	start = a.IndexAt(scroll)
	if start > 0 {
		start--
	}

	limit := scroll + viewport
	end = start
	for end < a.count && a.offsets[end] <= limit {
		end++
	}
	end += a.slack
	if end > a.count {
		end = a.count
	}
	return start, end
}
