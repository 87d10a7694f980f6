package grid

import "time"

// CellType labels the inferred type of a cell value.
type CellType uint8

const (
	TypeText CellType = iota
	TypeNumber
	TypeBool
	TypeDate
	TypeDateTime
	TypeTime
	TypeDuration
	TypePercent
	TypeCurrency
	TypeEmail
	TypePhone
	TypeURI
	TypeGUID
)

var cellTypeNames = map[CellType]string{
	TypeText:     "text",
	TypeNumber:   "number",
	TypeBool:     "boolean",
	TypeDate:     "date",
	TypeDateTime: "datetime",
	TypeTime:     "time",
	TypeDuration: "duration",
	TypePercent:  "percentage",
	TypeCurrency: "currency",
	TypeEmail:    "email",
	TypePhone:    "phone",
	TypeURI:      "uri",
	TypeGUID:     "guid",
}

func (t CellType) String() string {
	if s, ok := cellTypeNames[t]; ok {
		return s
	}
	return "text"
}

// IsTemporal reports whether t carries its normalized value in Value.Time.
func (t CellType) IsTemporal() bool {
	return t == TypeDate || t == TypeDateTime || t == TypeTime
}

// Value is the typed content of a cell. Type selects the carrying field;
// Raw always preserves the original input text.
type Value struct {
	Type CellType
	Raw  string

	Text     string
	Number   float64 // TypeNumber, TypePercent, TypeCurrency
	Bool     bool
	Time     time.Time // TypeDate, TypeDateTime, TypeTime
	Duration time.Duration

	// Unit is the currency symbol for TypeCurrency.
	Unit string
	// DetectedFormat is the display-format tag reported by type inference
	// (a time layout for temporal types), or empty.
	DetectedFormat string
}

// TextValue wraps s as a plain text value.
func TextValue(s string) Value {
	return Value{Type: TypeText, Raw: s, Text: s}
}

// Alignment is horizontal cell alignment.
type Alignment uint8

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// BorderEdge styles one edge of a cell border.
type BorderEdge struct {
	Set   bool
	Color string
}

// Borders holds per-edge border styling.
type Borders struct {
	Top, Bottom, Left, Right BorderEdge
}

// Formatting is optional cell styling. The zero value means unstyled.
type Formatting struct {
	Font     string
	FontSize int

	Bold      bool
	Italic    bool
	Underline bool

	Color      string
	Background string

	Borders Borders
	Align   Alignment

	// DisplayFormat is a type-specific display-format string (a time layout
	// for temporal values).
	DisplayFormat string
}

func (f Formatting) IsZero() bool { return f == Formatting{} }

func (f Formatting) emphasized() bool { return f.Bold || f.Italic }

// Cell is one stored grid entry. A nil Format means unstyled.
type Cell struct {
	Value  Value
	Format *Formatting
}

func cloneCell(c Cell) Cell {
	if c.Format != nil {
		f := *c.Format
		c.Format = &f
	}
	return c
}

// FormatPatch is a partial formatting update. Nil fields are left unchanged.
type FormatPatch struct {
	Font     *string
	FontSize *int

	Bold      *bool
	Italic    *bool
	Underline *bool

	Color      *string
	Background *string

	Borders *Borders
	Align   *Alignment

	DisplayFormat *string
}

func (p FormatPatch) apply(f *Formatting) {
	if p.Font != nil {
		f.Font = *p.Font
	}
	if p.FontSize != nil {
		f.FontSize = *p.FontSize
	}
	if p.Bold != nil {
		f.Bold = *p.Bold
	}
	if p.Italic != nil {
		f.Italic = *p.Italic
	}
	if p.Underline != nil {
		f.Underline = *p.Underline
	}
	if p.Color != nil {
		f.Color = *p.Color
	}
	if p.Background != nil {
		f.Background = *p.Background
	}
	if p.Borders != nil {
		f.Borders = *p.Borders
	}
	if p.Align != nil {
		f.Align = *p.Align
	}
	if p.DisplayFormat != nil {
		f.DisplayFormat = *p.DisplayFormat
	}
}

// ParseFunc turns raw input text into a typed Value. It is consulted on every
// edit commit and import; the default wraps input as plain text.
type ParseFunc func(raw string) Value

// FormatFunc renders a typed value to its display string. It is consulted for
// filter comparisons and auto-fit width estimation; the default returns Raw.
type FormatFunc func(v Value, f *Formatting) string
