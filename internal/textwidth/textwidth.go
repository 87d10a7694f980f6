package textwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Graphemes returns the number of grapheme clusters in s.
func Graphemes(s string) int {
	if s == "" {
		return 0
	}
	g := uniseg.NewGraphemes(s)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Cells returns the terminal cell width of s.
func Cells(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most w terminal cells, appending tail when cut.
func Truncate(s string, w int, tail string) string {
	return runewidth.Truncate(s, w, tail)
}

// Pad right-pads s with spaces to exactly w terminal cells, truncating first
// when s is wider.
func Pad(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if Cells(s) > w {
		s = Truncate(s, w, "…")
	}
	return runewidth.FillRight(s, w)
}
