// Package infer provides the default type-inference and display-formatting
// functions consumed by the grid engine: raw input text maps to a typed
// grid.Value, and typed values map back to display strings for filtering and
// width estimation.
package infer

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/iw2rmb/gridsheet/grid"
)

var (
	emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	guidRE  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	phoneRE = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,}$`)
	clockRE = regexp.MustCompile(`^\d{1,3}:[0-5]\d(:[0-5]\d)?$`)
)

// Date and datetime layouts tried in order. The matching layout becomes the
// value's detected display format.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"02.01.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 15:04",
}

var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04 PM",
	"3:04PM",
}

var currencySymbols = []string{"$", "€", "£", "¥"}

// Parse infers the type of raw input text and returns the typed value. The
// original text is always preserved in Raw; unrecognized input is plain text.
func Parse(raw string) grid.Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return grid.TextValue(raw)
	}

	switch strings.ToLower(s) {
	case "true", "yes":
		return grid.Value{Type: grid.TypeBool, Raw: raw, Bool: true}
	case "false", "no":
		return grid.Value{Type: grid.TypeBool, Raw: raw, Bool: false}
	}

	if n, ok := parseNumber(s); ok {
		return grid.Value{Type: grid.TypeNumber, Raw: raw, Number: n}
	}
	if strings.HasSuffix(s, "%") {
		if n, ok := parseNumber(strings.TrimSuffix(s, "%")); ok {
			return grid.Value{Type: grid.TypePercent, Raw: raw, Number: n / 100}
		}
	}
	for _, sym := range currencySymbols {
		if rest, found := strings.CutPrefix(s, sym); found {
			if n, ok := parseNumber(strings.TrimSpace(rest)); ok {
				return grid.Value{Type: grid.TypeCurrency, Raw: raw, Number: n, Unit: sym}
			}
		}
	}

	for _, layout := range dateTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return grid.Value{Type: grid.TypeDateTime, Raw: raw, Time: ts, DetectedFormat: layout}
		}
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return grid.Value{Type: grid.TypeDate, Raw: raw, Time: ts, DetectedFormat: layout}
		}
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return grid.Value{Type: grid.TypeTime, Raw: raw, Time: ts, DetectedFormat: layout}
		}
	}

	if d, ok := parseDuration(s); ok {
		return grid.Value{Type: grid.TypeDuration, Raw: raw, Duration: d}
	}

	if emailRE.MatchString(s) {
		return grid.Value{Type: grid.TypeEmail, Raw: raw, Text: s}
	}
	if guidRE.MatchString(s) {
		return grid.Value{Type: grid.TypeGUID, Raw: raw, Text: strings.ToLower(s)}
	}
	if isURI(s) {
		return grid.Value{Type: grid.TypeURI, Raw: raw, Text: s}
	}
	if phoneRE.MatchString(s) && digitCount(s) >= 7 {
		return grid.Value{Type: grid.TypePhone, Raw: raw, Text: s}
	}

	return grid.TextValue(raw)
}

func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	// Thousands separators are accepted only in full groups of three.
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		for _, p := range parts[1:] {
			if len(strings.SplitN(p, ".", 2)[0]) != 3 {
				return 0, false
			}
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseDuration accepts Go duration syntax (1h30m) and clock-style spans
// (h:mm or h:mm:ss) longer than a valid wall time would allow.
func parseDuration(s string) (time.Duration, bool) {
	if d, err := time.ParseDuration(s); err == nil && hasDurationUnit(s) {
		return d, true
	}
	if clockRE.MatchString(s) {
		parts := strings.Split(s, ":")
		h, _ := strconv.Atoi(parts[0])
		if h < 24 {
			// A valid wall-clock time; handled by the time layouts.
			return 0, false
		}
		m, _ := strconv.Atoi(parts[1])
		d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
		if len(parts) == 3 {
			sec, _ := strconv.Atoi(parts[2])
			d += time.Duration(sec) * time.Second
		}
		return d, true
	}
	return 0, false
}

func hasDurationUnit(s string) bool {
	return strings.ContainsAny(s, "hmsµn") && strings.IndexFunc(s, func(r rune) bool {
		return r >= '0' && r <= '9'
	}) == 0
}

func isURI(s string) bool {
	if !strings.Contains(s, "://") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// Format renders a typed value for display. A formatting DisplayFormat or
// the value's detected format wins for temporal types; everything else falls
// back to a canonical rendering of the normalized value.
func Format(v grid.Value, f *grid.Formatting) string {
	switch v.Type {
	case grid.TypeNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case grid.TypePercent:
		return strconv.FormatFloat(v.Number*100, 'f', -1, 64) + "%"
	case grid.TypeCurrency:
		sym := v.Unit
		if sym == "" {
			sym = "$"
		}
		return sym + strconv.FormatFloat(v.Number, 'f', 2, 64)
	case grid.TypeBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	case grid.TypeDate, grid.TypeDateTime, grid.TypeTime:
		layout := v.DetectedFormat
		if f != nil && f.DisplayFormat != "" {
			layout = f.DisplayFormat
		}
		if layout == "" {
			layout = defaultLayout(v.Type)
		}
		return v.Time.Format(layout)
	case grid.TypeDuration:
		return v.Duration.String()
	}
	if v.Text != "" {
		return v.Text
	}
	return v.Raw
}

func defaultLayout(t grid.CellType) string {
	switch t {
	case grid.TypeDateTime:
		return "2006-01-02 15:04"
	case grid.TypeTime:
		return "15:04"
	default:
		return "2006-01-02"
	}
}
