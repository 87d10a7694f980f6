package infer

import (
	"testing"
	"time"

	"github.com/iw2rmb/gridsheet/grid"
)

func TestParse_TypeTable(t *testing.T) {
	cases := []struct {
		raw  string
		want grid.CellType
	}{
		{"hello", grid.TypeText},
		{"", grid.TypeText},
		{"42", grid.TypeNumber},
		{"-3.5", grid.TypeNumber},
		{"1,234.5", grid.TypeNumber},
		{"1,23", grid.TypeText},
		{"true", grid.TypeBool},
		{"FALSE", grid.TypeBool},
		{"2024-03-01", grid.TypeDate},
		{"01/02/2024", grid.TypeDate},
		{"Jan 2, 2024", grid.TypeDate},
		{"2024-03-01 10:30", grid.TypeDateTime},
		{"15:04", grid.TypeTime},
		{"3:04 PM", grid.TypeTime},
		{"1h30m", grid.TypeDuration},
		{"25:30", grid.TypeDuration},
		{"12%", grid.TypePercent},
		{"$19.99", grid.TypeCurrency},
		{"€5", grid.TypeCurrency},
		{"a@b.co", grid.TypeEmail},
		{"+1 (555) 123-4567", grid.TypePhone},
		{"https://example.com/x", grid.TypeURI},
		{"not://", grid.TypeText},
		{"6fa459ea-ee8a-3ca4-894e-db77e160355e", grid.TypeGUID},
	}

	for _, tc := range cases {
		got := Parse(tc.raw)
		if got.Type != tc.want {
			t.Fatalf("Parse(%q): got %v, want %v", tc.raw, got.Type, tc.want)
		}
		if got.Raw != tc.raw {
			t.Fatalf("Parse(%q): raw not preserved: got %q", tc.raw, got.Raw)
		}
	}
}

func TestParse_NumberNormalization(t *testing.T) {
	if v := Parse("1,234.5"); v.Number != 1234.5 {
		t.Fatalf("thousands: got %v, want 1234.5", v.Number)
	}
	if v := Parse("50%"); v.Number != 0.5 {
		t.Fatalf("percent normalizes to a fraction: got %v, want 0.5", v.Number)
	}
	if v := Parse("$19.99"); v.Number != 19.99 || v.Unit != "$" {
		t.Fatalf("currency: got %v %q", v.Number, v.Unit)
	}
}

func TestParse_DateCarriesDetectedFormat(t *testing.T) {
	v := Parse("01/02/2024")
	// The matching layout itself is the tag.
	if v.DetectedFormat != "01/02/2006" {
		t.Fatalf("detected format: got %q", v.DetectedFormat)
	}
	want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if !v.Time.Equal(want) {
		t.Fatalf("parsed date: got %v, want %v", v.Time, want)
	}
}

func TestParse_DurationClockSyntax(t *testing.T) {
	v := Parse("25:30")
	if v.Type != grid.TypeDuration {
		t.Fatalf("type: got %v, want duration", v.Type)
	}
	if want := 25*time.Hour + 30*time.Minute; v.Duration != want {
		t.Fatalf("duration: got %v, want %v", v.Duration, want)
	}
}

func TestFormat_RoundTripThroughDisplay(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"42", "42"},
		{"-3.5", "-3.5"},
		{"true", "TRUE"},
		{"50%", "50%"},
		{"$19.99", "$19.99"},
		{"1h30m", "1h30m0s"},
	}
	for _, tc := range cases {
		if got := Format(Parse(tc.raw), nil); got != tc.want {
			t.Fatalf("Format(Parse(%q)): got %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestFormat_DatePrefersFormattingOverDetected(t *testing.T) {
	v := Parse("2024-03-01")
	if got := Format(v, nil); got != "2024-03-01" {
		t.Fatalf("detected layout: got %q", got)
	}
	f := &grid.Formatting{DisplayFormat: "Jan 2, 2006"}
	if got := Format(v, f); got != "Mar 1, 2024" {
		t.Fatalf("display-format override: got %q", got)
	}
}

func TestParse_AsGridParseFunc(t *testing.T) {
	g := grid.New(grid.Options{Parse: Parse, Format: Format})
	g.SetCell(1, 1, "42")

	c, ok := g.Cell(1, 1)
	if !ok || c.Value.Type != grid.TypeNumber || c.Value.Number != 42 {
		t.Fatalf("grid round-trip: got %+v (%v)", c.Value, ok)
	}
	if got := g.DisplayString(1, 1); got != "42" {
		t.Fatalf("display through grid: got %q", got)
	}
}
