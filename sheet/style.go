package sheet

import "github.com/charmbracelet/lipgloss"

// Style controls the sheet's rendering. The zero value renders unstyled;
// hosts usually pass DefaultStyle.
type Style struct {
	Header         lipgloss.Style
	HeaderSelected lipgloss.Style
	Gutter         lipgloss.Style
	GutterActive   lipgloss.Style

	Cell        lipgloss.Style
	Selection   lipgloss.Style
	ActiveCell  lipgloss.Style
	EditCursor  lipgloss.Style
	CutSource   lipgloss.Style
	TableHeader lipgloss.Style

	FilterPopup       lipgloss.Style
	FilterPopupCursor lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	header := lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")).Bold(true)
	return Style{
		Header:         header,
		HeaderSelected: header.Background(lipgloss.Color("24")),
		Gutter:         gutter,
		GutterActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),

		Cell:        lipgloss.NewStyle(),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		ActiveCell:  lipgloss.NewStyle().Reverse(true),
		EditCursor:  lipgloss.NewStyle().Reverse(true),
		CutSource:   lipgloss.NewStyle().Faint(true),
		TableHeader: lipgloss.NewStyle().Bold(true).Underline(true),

		FilterPopup:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		FilterPopupCursor: lipgloss.NewStyle().Reverse(true),
	}
}
