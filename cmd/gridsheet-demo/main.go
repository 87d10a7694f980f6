package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridsheet/grid"
	"github.com/iw2rmb/gridsheet/importer"
	"github.com/iw2rmb/gridsheet/sheet"
)

const helpText = `gridsheet demo

  arrows        move the selection
  shift+arrows  extend the selection
  type          edit the cell
  enter / f2    open an edit session
  ctrl+c/x/v    copy / cut / paste
  ctrl+d/r      fill down / right
  ctrl+s        cycle sort on a table header
  ctrl+f        filter a table column
  mouse         click, drag, resize column edges,
                double-click to edit or sort
  f1            toggle this help
  ctrl+q        quit
`

// osClipboard bridges copies to the system clipboard.
type osClipboard struct{}

func (osClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

type model struct {
	sheet    sheet.Model
	help     viewport.Model
	showHelp bool
}

func newModel() (model, error) {
	g := sheet.NewTerminalGrid(200, 26)

	if len(os.Args) > 1 {
		if err := loadFile(g, os.Args[1]); err != nil {
			return model{}, err
		}
	} else {
		seedDemo(g)
	}

	cfg := sheet.Config{
		Grid:      g,
		Style:     sheet.DefaultStyle(),
		Clipboard: osClipboard{},
	}

	help := viewport.New(0, 0)
	help.SetContent(helpText)
	return model{sheet: sheet.New(cfg), help: help}, nil
}

// loadFile imports a workbook or delimited file into the grid.
func loadFile(g *grid.Grid, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var res importer.Result
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		res, err = importer.ReadXLSX(f, importer.XLSXOptions{HeaderRow: true, CarryStyles: true})
	case ".tsv":
		res, err = importer.ReadDelimited(f, importer.DelimitedOptions{Comma: '\t', HeaderRow: true, Name: filepath.Base(path)})
	default:
		res, err = importer.ReadDelimited(f, importer.DelimitedOptions{HeaderRow: true, Name: filepath.Base(path)})
	}
	if err != nil {
		return err
	}

	g.ImportCells(res.Batch, true, res.Region)
	return nil
}

func seedDemo(g *grid.Grid) {
	rows := [][]string{
		{"task", "owner", "due", "done", "hours"},
		{"draft report", "alice", "2026-09-04", "false", "6.5"},
		{"review budget", "bob", "2026-09-01", "true", "2"},
		{"ship release", "carol", "2026-09-12", "false", "12"},
		{"plan offsite", "dave", "2026-10-02", "false", "3.25"},
	}
	for r, row := range rows {
		for c, raw := range row {
			g.SetCell(r, c, raw)
		}
	}
	g.AddTable(grid.RegionSpec{
		Name:      "tasks",
		Rect:      grid.Rect{R0: 0, C0: 0, R1: len(rows) - 1, C1: 4},
		HeaderRow: true,
	})
	g.SelectCell(grid.CellRef{})
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.help.Height = msg.Height
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.showHelp {
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}
	m.sheet, cmd = m.sheet.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.showHelp {
		return m.help.View()
	}
	return m.sheet.View()
}

func main() {
	m, err := newModel()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
