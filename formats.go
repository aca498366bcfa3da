package tabulate

import (
	"fmt"
	"strings"
	"unicode"
)

// Format names a registered table format.
type Format string

const (
	Plain          Format = "plain"
	Simple         Format = "simple"
	Github         Format = "github"
	Grid           Format = "grid"
	SimpleGrid     Format = "simple_grid"
	RoundedGrid    Format = "rounded_grid"
	HeavyGrid      Format = "heavy_grid"
	MixedGrid      Format = "mixed_grid"
	DoubleGrid     Format = "double_grid"
	FancyGrid      Format = "fancy_grid"
	Outline        Format = "outline"
	SimpleOutline  Format = "simple_outline"
	RoundedOutline Format = "rounded_outline"
	HeavyOutline   Format = "heavy_outline"
	MixedOutline   Format = "mixed_outline"
	DoubleOutline  Format = "double_outline"
	FancyOutline   Format = "fancy_outline"
	Pipe           Format = "pipe"
	Orgtbl         Format = "orgtbl"
	Jira           Format = "jira"
	Presto         Format = "presto"
	Pretty         Format = "pretty"
	PSQL           Format = "psql"
	RST            Format = "rst"
	MediaWiki      Format = "mediawiki"
	MoinMoin       Format = "moinmoin"
	YouTrack       Format = "youtrack"
	HTML           Format = "html"
	UnsafeHTML     Format = "unsafehtml"
	LaTeX          Format = "latex"
	LaTeXRaw       Format = "latex_raw"
	LaTeXBooktabs  Format = "latex_booktabs"
	LaTeXLongtable Format = "latex_longtable"
	Textile        Format = "textile"
	TSV            Format = "tsv"
	AsciiDoc       Format = "asciidoc"
)

var formats = []Format{
	Plain, Simple, Github, Grid, SimpleGrid, RoundedGrid, HeavyGrid, MixedGrid, DoubleGrid, FancyGrid,
	Outline, SimpleOutline, RoundedOutline, HeavyOutline, MixedOutline, DoubleOutline, FancyOutline,
	Pipe, Orgtbl, Jira, Presto, Pretty, PSQL, RST, MediaWiki, MoinMoin, YouTrack,
	HTML, UnsafeHTML, LaTeX, LaTeXRaw, LaTeXBooktabs, LaTeXLongtable, Textile, TSV, AsciiDoc,
}

// String returns the format name.
// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all registered format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if _, ok := tableFormats[f]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Lookup returns the description of a registered format. The returned
// value is a copy and may be modified freely.
func Lookup(f Format) (TableFormat, error) {
	tf, ok := tableFormats[f]
	if !ok {
		return TableFormat{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return tf.clone(), nil
}

// Rule identifies one of the horizontal lines of a table.
type Rule int

// Rules in the order they are drawn. Their text forms are above,
// below_header, between_rows and below.
const (
	RuleAbove Rule = iota
	RuleBelowHeader
	RuleBetweenRows
	RuleBelow
)

var ruleNames = [...]string{"above", "below_header", "between_rows", "below"}

// String returns the rule name used in YAML.
func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return fmt.Sprintf("Rule(%d)", int(r))
	}
	return ruleNames[r]
}

// MarshalText implements [encoding.TextMarshaler].
func (r Rule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText accepts the names written by MarshalText.
func (r *Rule) UnmarshalText(text []byte) error {
	for i, name := range ruleNames {
		if name == string(text) {
			*r = Rule(i)
			return nil
		}
	}
	return fmt.Errorf("%w: rule %q", ErrInvalidConfig, text)
}

// LineFunc draws a horizontal line from the padded column widths and the
// column alignments.
type LineFunc func(colWidths []int, colAligns []Alignment) string

// RowFunc draws a row from padded cells.
type RowFunc func(cells []string, colWidths []int, colAligns []Alignment) string

// Line describes a horizontal line: Begin, then Fill repeated across each
// column joined by Sep, then End. With Colons set the column segments mark
// their alignment with colons. Func, when set, draws the line instead.
type Line struct {
	Begin  string   `yaml:"begin"`
	Fill   string   `yaml:"fill"`
	Sep    string   `yaml:"sep"`
	End    string   `yaml:"end"`
	Colons bool     `yaml:"colons"`
	Func   LineFunc `yaml:"-"`
}

// DataRow describes a header or data row: Begin, the cells joined by Sep,
// then End. Func, when set, draws the row instead.
type DataRow struct {
	Begin string  `yaml:"begin"`
	Sep   string  `yaml:"sep"`
	End   string  `yaml:"end"`
	Func  RowFunc `yaml:"-"`
}

// TableFormat describes how a table is drawn. Nil lines are not drawn.
type TableFormat struct {
	LineAbove       *Line   `yaml:"line_above"`
	LineBelowHeader *Line   `yaml:"line_below_header"`
	LineBetweenRows *Line   `yaml:"line_between_rows"`
	LineBelow       *Line   `yaml:"line_below"`
	HeaderRow       DataRow `yaml:"header_row"`
	DataRow         DataRow `yaml:"data_row"`
	// Padding is the number of spaces on each side of every cell.
	Padding int `yaml:"padding"`
	// HiddenWithHeader lists lines that are omitted when the table has
	// headers.
	HiddenWithHeader []Rule `yaml:"hidden_with_header"`
	// Multiline renders embedded newlines as separate lines of a row.
	Multiline bool `yaml:"multiline"`
	// NoHeaderPadding drops the two extra columns headers normally get.
	NoHeaderPadding bool `yaml:"no_header_padding"`
	// DisableNumParse treats every value as text.
	DisableNumParse bool `yaml:"disable_numparse"`
	// Default alignments used when Options leaves them unset.
	NumAlign Alignment `yaml:"numalign"`
	StrAlign Alignment `yaml:"stralign"`
	// EscapeEmpty replaces blank cells of the first column.
	EscapeEmpty string `yaml:"escape_empty"`
}

func (tf TableFormat) hidden(r Rule) bool {
	for _, h := range tf.HiddenWithHeader {
		if h == r {
			return true
		}
	}
	return false
}

func (tf TableFormat) clone() TableFormat {
	cp := tf
	for _, l := range []**Line{&cp.LineAbove, &cp.LineBelowHeader, &cp.LineBetweenRows, &cp.LineBelow} {
		if *l != nil {
			v := **l
			*l = &v
		}
	}
	cp.HiddenWithHeader = append([]Rule(nil), tf.HiddenWithHeader...)
	return cp
}

// SeparatedFormat returns a format without lines or padding whose columns
// are joined by sep.
func SeparatedFormat(sep string) TableFormat {
	row := DataRow{Sep: sep}
	return TableFormat{HeaderRow: row, DataRow: row}
}

func (l *Line) build(widths []int, aligns []Alignment) string {
	if l.Func != nil {
		return l.Func(widths, aligns)
	}
	cells := make([]string, len(widths))
	for i, w := range widths {
		if l.Colons {
			cells[i] = colonSegment(l.Fill, alignAt(aligns, i), w)
		} else {
			cells[i] = strings.Repeat(l.Fill, w)
		}
	}
	return trimRight(l.Begin + strings.Join(cells, l.Sep) + l.End)
}

func (r DataRow) build(cells []string, widths []int, aligns []Alignment) string {
	if r.Func != nil {
		return r.Func(cells, widths, aligns)
	}
	return trimRight(r.Begin + strings.Join(cells, r.Sep) + r.End)
}

func alignAt(aligns []Alignment, i int) Alignment {
	if i < len(aligns) {
		return aligns[i]
	}
	return AlignDefault
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func line(begin, fill, sep, end string) *Line {
	return &Line{Begin: begin, Fill: fill, Sep: sep, End: end}
}

// box describes the corners, tees and rules of a box-drawing format.
type box struct {
	top, header, between, bottom [4]string
	vertical                     string
}

func (b box) format(between bool) TableFormat {
	row := DataRow{Begin: b.vertical, Sep: b.vertical, End: b.vertical}
	tf := TableFormat{
		LineAbove:       line(b.top[0], b.top[1], b.top[2], b.top[3]),
		LineBelowHeader: line(b.header[0], b.header[1], b.header[2], b.header[3]),
		LineBelow:       line(b.bottom[0], b.bottom[1], b.bottom[2], b.bottom[3]),
		HeaderRow:       row,
		DataRow:         row,
		Padding:         1,
		Multiline:       true,
	}
	if between {
		tf.LineBetweenRows = line(b.between[0], b.between[1], b.between[2], b.between[3])
	}
	return tf
}

var (
	asciiBox = box{
		top:      [4]string{"+", "-", "+", "+"},
		header:   [4]string{"+", "=", "+", "+"},
		between:  [4]string{"+", "-", "+", "+"},
		bottom:   [4]string{"+", "-", "+", "+"},
		vertical: "|",
	}
	simpleBox = box{
		top:      [4]string{"┌", "─", "┬", "┐"},
		header:   [4]string{"├", "─", "┼", "┤"},
		between:  [4]string{"├", "─", "┼", "┤"},
		bottom:   [4]string{"└", "─", "┴", "┘"},
		vertical: "│",
	}
	roundedBox = box{
		top:      [4]string{"╭", "─", "┬", "╮"},
		header:   [4]string{"├", "─", "┼", "┤"},
		between:  [4]string{"├", "─", "┼", "┤"},
		bottom:   [4]string{"╰", "─", "┴", "╯"},
		vertical: "│",
	}
	heavyBox = box{
		top:      [4]string{"┏", "━", "┳", "┓"},
		header:   [4]string{"┣", "━", "╋", "┫"},
		between:  [4]string{"┣", "━", "╋", "┫"},
		bottom:   [4]string{"┗", "━", "┻", "┛"},
		vertical: "┃",
	}
	mixedBox = box{
		top:      [4]string{"┍", "━", "┯", "┑"},
		header:   [4]string{"┝", "━", "┿", "┥"},
		between:  [4]string{"├", "─", "┼", "┤"},
		bottom:   [4]string{"┕", "━", "┷", "┙"},
		vertical: "│",
	}
	doubleBox = box{
		top:      [4]string{"╔", "═", "╦", "╗"},
		header:   [4]string{"╠", "═", "╬", "╣"},
		between:  [4]string{"╠", "═", "╬", "╣"},
		bottom:   [4]string{"╚", "═", "╩", "╝"},
		vertical: "║",
	}
	fancyBox = box{
		top:      [4]string{"╒", "═", "╤", "╕"},
		header:   [4]string{"╞", "═", "╪", "╡"},
		between:  [4]string{"├", "─", "┼", "┤"},
		bottom:   [4]string{"╘", "═", "╧", "╛"},
		vertical: "│",
	}
)

var tableFormats = map[Format]TableFormat{
	Plain: {
		HeaderRow: DataRow{Sep: "  "},
		DataRow:   DataRow{Sep: "  "},
		Multiline: true,
	},
	Simple: {
		LineAbove:        line("", "-", "  ", ""),
		LineBelowHeader:  line("", "-", "  ", ""),
		LineBelow:        line("", "-", "  ", ""),
		HeaderRow:        DataRow{Sep: "  "},
		DataRow:          DataRow{Sep: "  "},
		HiddenWithHeader: []Rule{RuleAbove, RuleBelow},
		Multiline:        true,
	},
	Github: {
		LineAbove:        line("|", "-", "|", "|"),
		LineBelowHeader:  line("|", "-", "|", "|"),
		HeaderRow:        DataRow{Begin: "|", Sep: "|", End: "|"},
		DataRow:          DataRow{Begin: "|", Sep: "|", End: "|"},
		Padding:          1,
		HiddenWithHeader: []Rule{RuleAbove},
		Multiline:        true,
	},
	Grid:           asciiBox.format(true),
	SimpleGrid:     simpleBox.format(true),
	RoundedGrid:    roundedBox.format(true),
	HeavyGrid:      heavyBox.format(true),
	MixedGrid:      mixedBox.format(true),
	DoubleGrid:     doubleBox.format(true),
	FancyGrid:      fancyBox.format(true),
	Outline:        asciiBox.format(false),
	SimpleOutline:  simpleBox.format(false),
	RoundedOutline: roundedBox.format(false),
	HeavyOutline:   heavyBox.format(false),
	MixedOutline:   mixedBox.format(false),
	DoubleOutline:  doubleBox.format(false),
	FancyOutline:   fancyBox.format(false),
	Pipe: {
		LineAbove:        &Line{Begin: "|", Fill: "-", Sep: "|", End: "|", Colons: true},
		LineBelowHeader:  &Line{Begin: "|", Fill: "-", Sep: "|", End: "|", Colons: true},
		HeaderRow:        DataRow{Begin: "|", Sep: "|", End: "|"},
		DataRow:          DataRow{Begin: "|", Sep: "|", End: "|"},
		Padding:          1,
		HiddenWithHeader: []Rule{RuleAbove},
		Multiline:        true,
	},
	Orgtbl: {
		LineBelowHeader: line("|", "-", "+", "|"),
		HeaderRow:       DataRow{Begin: "|", Sep: "|", End: "|"},
		DataRow:         DataRow{Begin: "|", Sep: "|", End: "|"},
		Padding:         1,
		Multiline:       true,
	},
	Jira: {
		HeaderRow: DataRow{Begin: "||", Sep: "||", End: "||"},
		DataRow:   DataRow{Begin: "|", Sep: "|", End: "|"},
		Padding:   1,
		Multiline: true,
	},
	Presto: {
		LineBelowHeader: line("", "-", "+", ""),
		HeaderRow:       DataRow{Sep: "|"},
		DataRow:         DataRow{Sep: "|"},
		Padding:         1,
		Multiline:       true,
	},
	Pretty: {
		LineAbove:       line("+", "-", "+", "+"),
		LineBelowHeader: line("+", "-", "+", "+"),
		LineBelow:       line("+", "-", "+", "+"),
		HeaderRow:       DataRow{Begin: "|", Sep: "|", End: "|"},
		DataRow:         DataRow{Begin: "|", Sep: "|", End: "|"},
		Padding:         1,
		Multiline:       true,
		NoHeaderPadding: true,
		DisableNumParse: true,
		NumAlign:        AlignCenter,
		StrAlign:        AlignCenter,
	},
	PSQL: {
		LineAbove:       line("+", "-", "+", "+"),
		LineBelowHeader: line("|", "-", "+", "|"),
		LineBelow:       line("+", "-", "+", "+"),
		HeaderRow:       DataRow{Begin: "|", Sep: "|", End: "|"},
		DataRow:         DataRow{Begin: "|", Sep: "|", End: "|"},
		Padding:         1,
		Multiline:       true,
	},
	RST: {
		LineAbove:       line("", "=", "  ", ""),
		LineBelowHeader: line("", "=", "  ", ""),
		LineBelow:       line("", "=", "  ", ""),
		HeaderRow:       DataRow{Sep: "  "},
		DataRow:         DataRow{Sep: "  "},
		Multiline:       true,
		EscapeEmpty:     "..",
	},
	MediaWiki: {
		LineAbove:       line(`{| class="wikitable" style="text-align: left;"`, "", "", "\n|+ <!-- caption -->\n|-"),
		LineBelowHeader: line("|-", "", "", ""),
		LineBetweenRows: line("|-", "", "", ""),
		LineBelow:       line("|}", "", "", ""),
		HeaderRow:       DataRow{Func: mediawikiRow("!")},
		DataRow:         DataRow{Func: mediawikiRow("|")},
	},
	MoinMoin: {
		HeaderRow: DataRow{Func: moinRow("||", "'''")},
		DataRow:   DataRow{Func: moinRow("||", "")},
		Padding:   1,
	},
	YouTrack: {
		HeaderRow: DataRow{Begin: "|| ", Sep: " || ", End: " || "},
		DataRow:   DataRow{Begin: "| ", Sep: " | ", End: " |"},
		Padding:   1,
	},
	HTML: {
		LineAbove:        line("<table>\n<tbody>", "", "", ""),
		LineBelow:        line("</tbody>\n</table>", "", "", ""),
		HeaderRow:        DataRow{Func: htmlRow("th", true)},
		DataRow:          DataRow{Func: htmlRow("td", true)},
		HiddenWithHeader: []Rule{RuleAbove},
	},
	UnsafeHTML: {
		LineAbove:        line("<table>\n<tbody>", "", "", ""),
		LineBelow:        line("</tbody>\n</table>", "", "", ""),
		HeaderRow:        DataRow{Func: htmlRow("th", false)},
		DataRow:          DataRow{Func: htmlRow("td", false)},
		HiddenWithHeader: []Rule{RuleAbove},
	},
	LaTeX: {
		LineAbove:       &Line{Func: latexBegin(false, false)},
		LineBelowHeader: line(`\hline`, "", "", ""),
		LineBelow:       line("\\hline\n\\end{tabular}", "", "", ""),
		HeaderRow:       DataRow{Func: latexRow(true)},
		DataRow:         DataRow{Func: latexRow(true)},
		Padding:         1,
	},
	LaTeXRaw: {
		LineAbove:       &Line{Func: latexBegin(false, false)},
		LineBelowHeader: line(`\hline`, "", "", ""),
		LineBelow:       line("\\hline\n\\end{tabular}", "", "", ""),
		HeaderRow:       DataRow{Func: latexRow(false)},
		DataRow:         DataRow{Func: latexRow(false)},
		Padding:         1,
	},
	LaTeXBooktabs: {
		LineAbove:       &Line{Func: latexBegin(true, false)},
		LineBelowHeader: line(`\midrule`, "", "", ""),
		LineBelow:       line("\\bottomrule\n\\end{tabular}", "", "", ""),
		HeaderRow:       DataRow{Func: latexRow(true)},
		DataRow:         DataRow{Func: latexRow(true)},
		Padding:         1,
	},
	LaTeXLongtable: {
		LineAbove:       &Line{Func: latexBegin(false, true)},
		LineBelowHeader: line("\\hline\n\\endhead", "", "", ""),
		LineBelow:       line("\\hline\n\\end{longtable}", "", "", ""),
		HeaderRow:       DataRow{Func: latexRow(true)},
		DataRow:         DataRow{Func: latexRow(true)},
		Padding:         1,
	},
	Textile: {
		HeaderRow: DataRow{Begin: "|_. ", Sep: "|_.", End: "|"},
		DataRow:   DataRow{Func: textileRow},
		Padding:   1,
	},
	TSV: {
		HeaderRow: DataRow{Sep: "\t"},
		DataRow:   DataRow{Sep: "\t"},
	},
	AsciiDoc: {
		LineAbove:        &Line{Func: asciidocBegin},
		LineBelow:        line("|====", "", "", ""),
		HeaderRow:        DataRow{Func: asciidocRow(true)},
		DataRow:          DataRow{Func: asciidocRow(false)},
		Padding:          1,
		HiddenWithHeader: []Rule{RuleAbove},
	},
}
