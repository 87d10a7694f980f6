package sheet

import (
	"github.com/iw2rmb/gridsheet/grid"
	"github.com/iw2rmb/gridsheet/infer"
	"github.com/iw2rmb/gridsheet/internal/textwidth"
)

// Config configures the sheet Model.
type Config struct {
	// Grid is the engine to render and drive. When nil, New builds one via
	// NewTerminalGrid(100, 26).
	Grid *grid.Grid

	// HideHeaders removes the column header row and the row-number gutter.
	HideHeaders bool

	Style  Style
	KeyMap KeyMap

	// Clipboard, when set, receives a tab-separated rendering of every copy
	// and cut so external applications can paste it. Pasting into the sheet
	// always uses the engine's own staged snapshot. Errors are ignored.
	Clipboard Clipboard

	// OnChange, when set, is called after any Update that changed the grid.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.Grid == nil {
		c.Grid = NewTerminalGrid(100, 26)
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}

// NewTerminalGrid builds a grid tuned to terminal cells: one-cell row
// heights, character-count width measurement, and inference-backed parsing
// and display formatting.
func NewTerminalGrid(rows, cols int) *grid.Grid {
	return grid.New(grid.Options{
		Rows:             rows,
		Cols:             cols,
		DefaultRowHeight: 1,
		MinRowHeight:     1,
		DefaultColWidth:  10,
		MinColWidth:      3,
		MaxAutoFitWidth:  40,
		Parse:            infer.Parse,
		Format:           infer.Format,
		MeasureText: func(text string, _ *grid.Formatting) int {
			// One cell of padding keeps auto-fit columns readable.
			return textwidth.Cells(text) + 1
		},
	})
}
