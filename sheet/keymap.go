package sheet

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the sheet key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	PageUp, PageDown                          key.Binding
	Home                                      key.Binding

	Edit              key.Binding
	Enter             key.Binding
	Escape            key.Binding
	Backspace, Delete key.Binding
	Tab               key.Binding

	Copy, Cut, Paste key.Binding
	FillDown         key.Binding
	FillRight        key.Binding

	Sort   key.Binding
	Filter key.Binding
}

func (k KeyMap) isZero() bool { return len(k.Left.Keys()) == 0 }

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "extend left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "extend right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "extend up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "extend down")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("ctrl+home", "home"), key.WithHelp("home", "to origin")),

		Edit:      key.NewBinding(key.WithKeys("f2"), key.WithHelp("F2", "edit cell")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit / commit")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "clear and edit")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "clear and edit")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "commit right")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		FillDown:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "fill down")),
		FillRight: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "fill right")),

		Sort:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "cycle sort")),
		Filter: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "filter column")),
	}
}
