package tabulate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// separator is the cell value that marks a separating line.
type separator struct{}

// SeparatingLine is a row that renders as a horizontal rule across the
// table. It takes no part in column typing, widths or the row index.
var SeparatingLine = []any{separator{}}

func isSeparator(row []any) bool {
	if len(row) == 0 {
		return false
	}
	_, ok := row[0].(separator)
	return ok
}

// Alignment controls horizontal alignment of a column or header.
type Alignment int

const (
	// AlignDefault leaves the choice to the next level: the global setting
	// for a per-column entry, the column type for a global setting.
	AlignDefault Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
	// AlignDecimal right-aligns numbers so their decimal points line up.
	AlignDecimal
	// AlignNone leaves cells unpadded.
	AlignNone
	// AlignSame gives a header the alignment of its column.
	AlignSame
)

var alignNames = map[Alignment]string{
	AlignDefault: "default",
	AlignLeft:    "left",
	AlignRight:   "right",
	AlignCenter:  "center",
	AlignDecimal: "decimal",
	AlignNone:    "none",
	AlignSame:    "same",
}

// String returns the alignment keyword.
func (a Alignment) String() string {
	if s, ok := alignNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment parses an alignment keyword. "global" and "" are synonyms
// for "default"; single letters l, r, c, d are accepted as well.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "global":
		return AlignDefault, nil
	case "left", "l":
		return AlignLeft, nil
	case "right", "r":
		return AlignRight, nil
	case "center", "centre", "c":
		return AlignCenter, nil
	case "decimal", "d":
		return AlignDecimal, nil
	case "none":
		return AlignNone, nil
	case "same":
		return AlignSame, nil
	}
	return AlignDefault, fmt.Errorf("%w: alignment %q", ErrInvalidConfig, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText accepts the keywords of [ParseAlignment].
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// VerticalAlignment places the lines of a short cell within a taller row.
type VerticalAlignment int

const (
	// AlignTop puts the lines of a short cell at the top of the row.
	AlignTop VerticalAlignment = iota
	// AlignMiddle centers them; it is spelled "center" or "middle".
	AlignMiddle
	AlignBottom
)

// String returns top, center or bottom.
func (v VerticalAlignment) String() string {
	switch v {
	case AlignTop:
		return "top"
	case AlignMiddle:
		return "center"
	case AlignBottom:
		return "bottom"
	}
	return fmt.Sprintf("VerticalAlignment(%d)", int(v))
}

// MarshalText implements [encoding.TextMarshaler].
func (v VerticalAlignment) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText accepts top, center, middle and bottom. Empty means top.
func (v *VerticalAlignment) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "top":
		*v = AlignTop
	case "center", "middle":
		*v = AlignMiddle
	case "bottom":
		*v = AlignBottom
	default:
		return fmt.Errorf("%w: vertical alignment %q", ErrInvalidConfig, text)
	}
	return nil
}

// HeaderMode selects where headers come from.
type HeaderMode int

const (
	// HeadersExplicit uses Options.Headers; no header row when it is empty.
	HeadersExplicit HeaderMode = iota
	// HeadersFirstRow takes the first data row as headers.
	HeadersFirstRow
	// HeadersKeys numbers the columns 0, 1, 2, ...
	HeadersKeys
)

// String returns the header mode keyword.
func (h HeaderMode) String() string {
	switch h {
	case HeadersExplicit:
		return "explicit"
	case HeadersFirstRow:
		return "firstrow"
	case HeadersKeys:
		return "keys"
	}
	return fmt.Sprintf("HeaderMode(%d)", int(h))
}

// MarshalText implements [encoding.TextMarshaler].
func (h HeaderMode) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText accepts explicit, firstrow and keys. Empty means explicit.
func (h *HeaderMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "explicit":
		*h = HeadersExplicit
	case "firstrow":
		*h = HeadersFirstRow
	case "keys":
		*h = HeadersKeys
	default:
		return fmt.Errorf("%w: header mode %q", ErrInvalidConfig, text)
	}
	return nil
}

// Options configures a single render. The zero value renders with the
// simple format, "g" floats and type-driven alignment.
//
// Per-column slices may be shorter than the number of columns; the
// remaining columns use the matching global field.
type Options struct {
	// Format names a registered table format. Empty means Simple.
	Format Format `yaml:"format,omitempty"`
	// TableFormat, when set, is used instead of Format.
	TableFormat *TableFormat `yaml:"table_format,omitempty"`

	Headers    []string   `yaml:"headers,omitempty"`
	HeaderMode HeaderMode `yaml:"header_mode,omitempty"`

	FloatFmt       string   `yaml:"floatfmt,omitempty"`
	ColumnFloatFmt []string `yaml:"column_floatfmt,omitempty"`
	IntFmt         string   `yaml:"intfmt,omitempty"`
	ColumnIntFmt   []string `yaml:"column_intfmt,omitempty"`

	NumAlign           Alignment   `yaml:"numalign,omitempty"`
	StrAlign           Alignment   `yaml:"stralign,omitempty"`
	ColGlobalAlign     Alignment   `yaml:"colglobalalign,omitempty"`
	ColAlign           []Alignment `yaml:"colalign,omitempty"`
	HeadersGlobalAlign Alignment   `yaml:"headersglobalalign,omitempty"`
	HeadersAlign       []Alignment `yaml:"headersalign,omitempty"`

	RowAlign  VerticalAlignment   `yaml:"rowalign,omitempty"`
	RowAligns []VerticalAlignment `yaml:"rowaligns,omitempty"`

	MissingVal       string   `yaml:"missingval,omitempty"`
	ColumnMissingVal []string `yaml:"column_missingval,omitempty"`

	// Maximum widths for wrapping cells and headers. Zero disables
	// wrapping for a column.
	MaxColWidth        int   `yaml:"maxcolwidth,omitempty"`
	MaxColWidths       []int `yaml:"maxcolwidths,omitempty"`
	MaxHeaderColWidth  int   `yaml:"maxheadercolwidth,omitempty"`
	MaxHeaderColWidths []int `yaml:"maxheadercolwidths,omitempty"`

	DisableNumParse        bool  `yaml:"disable_numparse,omitempty"`
	DisableNumParseColumns []int `yaml:"disable_numparse_columns,omitempty"`

	// ShowIndex prepends a 0-based row number column. A non-empty Index
	// is shown instead, with or without ShowIndex, and must have one entry
	// per data row.
	ShowIndex bool  `yaml:"showindex,omitempty"`
	Index     []any `yaml:"index,omitempty"`

	PreserveWhitespace bool `yaml:"preserve_whitespace,omitempty"`
	DisableWideChars   bool `yaml:"disable_widechars,omitempty"`
}

// Render formats rows as a table. Rows may have different lengths and may
// include SeparatingLine. Configuration errors are reported before any
// rendering takes place.
func Render(rows [][]any, opts Options) (string, error) {
	t, err := newTable(rows, opts)
	if err != nil {
		return "", err
	}
	return t.render(), nil
}

// Write renders rows and writes the table to w followed by a newline.
// Nothing is written for an empty table.
func Write(w io.Writer, rows [][]any, opts Options) error {
	s, err := Render(rows, opts)
	if err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	var buf bytes.Buffer
	buf.WriteString(s)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}
