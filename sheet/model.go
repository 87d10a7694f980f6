package sheet

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridsheet/grid"
)

// Model is a Bubble Tea component that renders and interacts with a grid.
type Model struct {
	cfg Config
	g   *grid.Grid

	focused       bool
	width, height int

	// Scroll offsets in axis units. Mutating them leaves the layout cache
	// stale; it rebuilds at most once per paint.
	scrollX, scrollY int

	layout layoutCache

	mouse  mouseState
	filter filterPopup

	lastEmitted uint64
}

type dragKind uint8

const (
	dragNone dragKind = iota
	dragSelect
	dragResize
)

type mouseState struct {
	kind   dragKind
	startX int

	lastClickX, lastClickY int
	lastClickAt            time.Time
}

const doubleClickWindow = 400 * time.Millisecond

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:     cfg,
		g:       cfg.Grid,
		focused: true,
	}
	m.lastEmitted = m.g.Version()
	return m
}

// Grid exposes the underlying engine. Hosts may mutate it directly; the
// next paint picks the change up through the version counter.
func (m Model) Grid() *grid.Grid { return m.g }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	return m
}

func (m Model) Width() int { return m.width }

func (m Model) Height() int { return m.height }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur drops focus. Focus loss commits any open edit session.
func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.g.CommitEdit()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// ScrollOffset returns the current (x, y) scroll position in axis units.
func (m Model) ScrollOffset() (x, y int) { return m.scrollX, m.scrollY }

// ScrollTo moves the viewport. Offsets clamp to the grid extent.
func (m Model) ScrollTo(x, y int) Model {
	m.scrollX = clampScroll(x, m.g.ColAxis().Extent())
	m.scrollY = clampScroll(y, m.g.RowAxis().Extent())
	return m
}

func clampScroll(v, extent int) int {
	if v < 0 {
		return 0
	}
	if v > extent {
		return extent
	}
	return v
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m = m.updateKey(msg)
	case tea.MouseMsg:
		m = m.updateMouse(msg)
	}

	m = m.emitChange()
	return m, nil
}

func (m Model) emitChange() Model {
	if m.cfg.OnChange == nil {
		return m
	}
	if v := m.g.Version(); v != m.lastEmitted {
		m.lastEmitted = v
		m.cfg.OnChange(buildChangeEvent(m.g))
	}
	return m
}

// followActive scrolls just enough to keep the active cell inside the
// content region.
func (m Model) followActive() Model {
	ref, ok := m.g.ActiveCell()
	if !ok {
		return m
	}

	cw, ch := m.contentSize()
	if cw <= 0 || ch <= 0 {
		return m
	}

	colAxis := m.g.ColAxis()
	x0 := colAxis.PositionOf(ref.Col)
	x1 := x0 + colAxis.Size(ref.Col)
	if x0 < m.scrollX {
		m.scrollX = x0
	} else if x1 > m.scrollX+cw {
		m.scrollX = x1 - cw
	}

	rowAxis := m.g.RowAxis()
	y0 := rowAxis.PositionOf(ref.Row)
	y1 := y0 + rowAxis.Size(ref.Row)
	if y0 < m.scrollY {
		m.scrollY = y0
	} else if y1 > m.scrollY+ch {
		m.scrollY = y1 - ch
	}
	return m
}
