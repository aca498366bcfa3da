package tabulate

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

const (
	defaultFloatFmt = "g"
	headerPadding   = 2
)

// table is a normalized render request: separators are lifted out of the
// data, headers are resolved and every row has exactly ncols cells.
type table struct {
	tf   TableFormat
	opts Options
	m    measurer

	headers    []string
	headersPad int
	rows       [][]any
	// seps holds, for every separating line, the number of data rows that
	// precede it.
	seps  []int
	ncols int

	floatSpecs []numberSpec
	intSpecs   []numberSpec
}

func newTable(rows [][]any, opts Options) (*table, error) {
	tf, err := resolveFormat(opts)
	errs := multierr.Append(err, opts.validate())
	if err == nil && tf.Padding < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: padding is negative (%d)", ErrInvalidConfig, tf.Padding))
	}

	t := &table{tf: tf, opts: opts, m: measurer{wide: !opts.DisableWideChars}}
	for _, r := range rows {
		if isSeparator(r) {
			t.seps = append(t.seps, len(t.rows))
			continue
		}
		t.rows = append(t.rows, r)
	}

	switch opts.HeaderMode {
	case HeadersFirstRow:
		if len(t.rows) > 0 {
			first := t.rows[0]
			t.headers = make([]string, len(first))
			for i, v := range first {
				t.headers[i] = toText(v)
			}
			t.rows = t.rows[1:]
			for i, s := range t.seps {
				t.seps[i] = max(0, s-1)
			}
		}
	case HeadersKeys:
		n := widest(t.rows)
		t.headers = make([]string, n)
		for i := range n {
			t.headers[i] = strconv.Itoa(i)
		}
	default:
		t.headers = slices.Clone(opts.Headers)
	}

	index := opts.Index
	if len(index) == 0 && opts.ShowIndex {
		index = make([]any, len(t.rows))
		for i := range index {
			index[i] = i
		}
	}
	if len(index) > 0 {
		if len(index) != len(t.rows) {
			errs = multierr.Append(errs, fmt.Errorf("%w: index has %d values for %d rows", ErrInvalidConfig, len(index), len(t.rows)))
		} else {
			for i, r := range t.rows {
				t.rows[i] = append([]any{index[i]}, r...)
			}
		}
	}

	t.ncols = max(widest(t.rows), len(t.headers))
	if len(t.headers) > 0 && len(t.rows) > 0 && len(t.headers) < t.ncols {
		t.headersPad = t.ncols - len(t.headers)
		t.headers = append(make([]string, t.headersPad), t.headers...)
	}
	for i, r := range t.rows {
		padded := make([]any, t.ncols)
		copy(padded, r)
		t.rows[i] = padded
	}

	if t.ncols > 0 {
		if len(opts.ColAlign) > t.ncols {
			errs = multierr.Append(errs, fmt.Errorf("%w: %d column alignments for %d columns", ErrInvalidConfig, len(opts.ColAlign), t.ncols))
		}
		if n := t.headersPad + len(opts.HeadersAlign); n > t.ncols {
			errs = multierr.Append(errs, fmt.Errorf("%w: %d header alignments for %d columns", ErrInvalidConfig, n, t.ncols))
		}
	}

	t.floatSpecs = make([]numberSpec, t.ncols)
	t.intSpecs = make([]numberSpec, t.ncols)
	for i := range t.ncols {
		fs, err := parseFloatSpec(specAt(opts.ColumnFloatFmt, i, opts.FloatFmt, defaultFloatFmt))
		errs = multierr.Append(errs, err)
		is, err := parseNumberSpec(specAt(opts.ColumnIntFmt, i, opts.IntFmt, ""))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: intfmt: %v", ErrInvalidConfig, err))
		}
		t.floatSpecs[i], t.intSpecs[i] = fs, is
	}
	// Global specs are checked even when no column ends up using them.
	if opts.FloatFmt != "" && t.ncols == 0 {
		_, err := parseFloatSpec(opts.FloatFmt)
		errs = multierr.Append(errs, err)
	}

	if errs != nil {
		return nil, dedupe(errs)
	}
	return t, nil
}

func resolveFormat(opts Options) (TableFormat, error) {
	if opts.TableFormat != nil {
		return opts.TableFormat.clone(), nil
	}
	f := opts.Format
	if f == "" {
		f = Simple
	}
	return Lookup(f)
}

func (o Options) validate() error {
	var errs error
	checkAlign := func(name string, a Alignment, allowSame bool) {
		if a < AlignDefault || a > AlignSame || (a == AlignSame && !allowSame) {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s cannot be %s", ErrInvalidConfig, name, a))
		}
	}
	checkAlign("numalign", o.NumAlign, false)
	checkAlign("stralign", o.StrAlign, false)
	checkAlign("colglobalalign", o.ColGlobalAlign, false)
	checkAlign("headersglobalalign", o.HeadersGlobalAlign, false)
	for i, a := range o.ColAlign {
		checkAlign("colalign["+strconv.Itoa(i)+"]", a, false)
	}
	for i, a := range o.HeadersAlign {
		checkAlign("headersalign["+strconv.Itoa(i)+"]", a, true)
	}

	checkVertical := func(name string, v VerticalAlignment) {
		if v < AlignTop || v > AlignBottom {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s cannot be %s", ErrInvalidConfig, name, v))
		}
	}
	checkVertical("rowalign", o.RowAlign)
	for i, v := range o.RowAligns {
		checkVertical("rowaligns["+strconv.Itoa(i)+"]", v)
	}

	if o.HeaderMode < HeadersExplicit || o.HeaderMode > HeadersKeys {
		errs = multierr.Append(errs, fmt.Errorf("%w: header mode %s", ErrInvalidConfig, o.HeaderMode))
	}

	checkWidth := func(name string, w int) {
		if w < 0 {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s is negative (%d)", ErrInvalidConfig, name, w))
		}
	}
	checkWidth("maxcolwidth", o.MaxColWidth)
	checkWidth("maxheadercolwidth", o.MaxHeaderColWidth)
	for i, w := range o.MaxColWidths {
		checkWidth("maxcolwidths["+strconv.Itoa(i)+"]", w)
	}
	for i, w := range o.MaxHeaderColWidths {
		checkWidth("maxheadercolwidths["+strconv.Itoa(i)+"]", w)
	}
	return errs
}

func parseFloatSpec(s string) (numberSpec, error) {
	ns, err := parseNumberSpec(s)
	if err != nil {
		return ns, fmt.Errorf("%w: floatfmt: %v", ErrInvalidConfig, err)
	}
	if ns.intOnly() {
		return ns, fmt.Errorf("%w: floatfmt %q: verb %q needs an integer", ErrInvalidConfig, s, ns.verb)
	}
	return ns, nil
}

// dedupe drops repeated messages, which arise when one bad global spec is
// resolved for several columns.
func dedupe(err error) error {
	var out error
	seen := make(map[string]bool)
	for _, e := range multierr.Errors(err) {
		if seen[e.Error()] {
			continue
		}
		seen[e.Error()] = true
		out = multierr.Append(out, e)
	}
	return out
}

func widest(rows [][]any) int {
	n := 0
	for _, r := range rows {
		n = max(n, len(r))
	}
	return n
}

func specAt(specs []string, i int, global, def string) string {
	if i < len(specs) && specs[i] != "" {
		return specs[i]
	}
	if global != "" {
		return global
	}
	return def
}

func widthAt(widths []int, i, global int) int {
	if i < len(widths) {
		return widths[i]
	}
	return global
}

func (t *table) numparse(col int) bool {
	return !t.tf.DisableNumParse && !t.opts.DisableNumParse && !slices.Contains(t.opts.DisableNumParseColumns, col)
}

// wrap breaks long cells and headers in place. Numbers are never wrapped
// in columns that parse them.
func (t *table) wrap() {
	o := t.opts
	if o.MaxColWidth > 0 || len(o.MaxColWidths) > 0 {
		for _, r := range t.rows {
			for i, v := range r {
				w := widthAt(o.MaxColWidths, i, o.MaxColWidth)
				if w <= 0 || v == nil || (t.numparse(i) && isNumberValue(v)) {
					continue
				}
				r[i] = t.wrapCell(toText(v), w)
			}
		}
	}
	if o.MaxHeaderColWidth > 0 || len(o.MaxHeaderColWidths) > 0 {
		for i, h := range t.headers {
			w := widthAt(o.MaxHeaderColWidths, i, o.MaxHeaderColWidth)
			if w <= 0 || (t.numparse(i) && isNumberString(h)) {
				continue
			}
			t.headers[i] = t.wrapCell(h, w)
		}
	}
}

func (t *table) wrapCell(s string, width int) string {
	w := &wrapper{width: width, m: t.m}
	return strings.Join(w.wrapText(s), "\n")
}

func (t *table) escapeEmpty() {
	esc := t.tf.EscapeEmpty
	if esc == "" {
		return
	}
	if len(t.headers) > 0 && strings.TrimSpace(t.headers[0]) == "" {
		t.headers[0] = esc
	}
	for _, r := range t.rows {
		if len(r) == 0 {
			continue
		}
		if s, ok := r[0].(string); ok && strings.TrimSpace(s) == "" {
			r[0] = esc
		}
	}
}

func (t *table) render() string {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return ""
	}
	t.wrap()
	t.escapeEmpty()

	tf, o := t.tf, t.opts
	minPadding := headerPadding
	if tf.NoHeaderPadding {
		minPadding = 0
	}
	numalign := firstAlign(o.NumAlign, tf.NumAlign, AlignDecimal)
	stralign := firstAlign(o.StrAlign, tf.StrAlign, AlignLeft)

	// Format every column.
	cols := make([][]string, t.ncols)
	kinds := make([]Kind, t.ncols)
	values := make([]any, len(t.rows))
	for c := range t.ncols {
		for r, row := range t.rows {
			values[r] = row[c]
		}
		kinds[c] = ResolveType(values, t.numparse(c))
		cf := columnFormat{
			float:   t.floatSpecs[c],
			int:     t.intSpecs[c],
			missing: o.MissingVal,
		}
		if c < len(o.ColumnMissingVal) {
			cf.missing = o.ColumnMissingVal[c]
		}
		cols[c] = make([]string, len(t.rows))
		for r, v := range values {
			cols[c][r] = cf.format(v, kinds[c])
		}
	}

	multiline := tf.Multiline && t.hasLineBreaks(cols)
	if multiline {
		for _, col := range cols {
			for r, s := range col {
				col[r] = lineBreak.ReplaceAllString(s, "\n")
			}
		}
		for i, h := range t.headers {
			t.headers[i] = lineBreak.ReplaceAllString(h, "\n")
		}
	}

	aligns := make([]Alignment, t.ncols)
	for c, k := range kinds {
		switch {
		case o.ColGlobalAlign != AlignDefault:
			aligns[c] = o.ColGlobalAlign
		case k.Numeric():
			aligns[c] = numalign
		default:
			aligns[c] = stralign
		}
		if a := alignAt(o.ColAlign, c); a != AlignDefault {
			aligns[c] = a
		}
	}

	hasHeaders := len(t.headers) > 0
	widths := make([]int, t.ncols)
	for c := range t.ncols {
		minWidth := 0
		if hasHeaders {
			minWidth = t.textWidth(t.headers[c], multiline) + minPadding
		}
		cols[c] = alignColumn(cols[c], aligns[c], minWidth, t.m, multiline, o.PreserveWhitespace)
		widths[c] = minWidth
		for _, s := range cols[c] {
			widths[c] = max(widths[c], t.textWidth(s, multiline))
		}
	}

	var headerAligns []Alignment
	if hasHeaders {
		headerAligns = make([]Alignment, t.ncols)
		for c := range headerAligns {
			switch {
			case o.HeadersGlobalAlign != AlignDefault:
				headerAligns[c] = o.HeadersGlobalAlign
			case len(t.rows) > 0:
				headerAligns[c] = aligns[c]
			default:
				headerAligns[c] = stralign
			}
		}
		for i, a := range o.HeadersAlign {
			c := t.headersPad + i
			if c >= t.ncols {
				break
			}
			switch a {
			case AlignSame:
				headerAligns[c] = aligns[c]
			case AlignDefault:
			default:
				headerAligns[c] = a
			}
		}
		for c, h := range t.headers {
			t.headers[c] = alignHeader(h, headerAligns[c], widths[c], t.m, multiline)
		}
	}

	lineAligns := aligns
	if len(t.rows) == 0 {
		lineAligns = make([]Alignment, t.ncols)
	}

	rows := make([][]string, len(t.rows))
	for r := range rows {
		rows[r] = make([]string, t.ncols)
		for c := range t.ncols {
			rows[r][c] = cols[c][r]
		}
	}

	l := layout{
		tf:         tf,
		widths:     widths,
		aligns:     lineAligns,
		multiline:  multiline,
		hasHeaders: hasHeaders,
	}
	return l.assemble(t.headers, headerAligns, rows, t.seps, t.rowAligns())
}

func (t *table) textWidth(s string, multiline bool) int {
	if multiline {
		return t.m.multilineWidth(s)
	}
	return t.m.width(s)
}

func (t *table) hasLineBreaks(cols [][]string) bool {
	for _, h := range t.headers {
		if hasLineBreak(h) {
			return true
		}
	}
	for _, col := range cols {
		for _, s := range col {
			if hasLineBreak(s) {
				return true
			}
		}
	}
	return false
}

func (t *table) rowAligns() []VerticalAlignment {
	out := make([]VerticalAlignment, len(t.rows))
	for i := range out {
		out[i] = t.opts.RowAlign
		if i < len(t.opts.RowAligns) {
			out[i] = t.opts.RowAligns[i]
		}
	}
	return out
}

func firstAlign(as ...Alignment) Alignment {
	for _, a := range as {
		if a != AlignDefault {
			return a
		}
	}
	return AlignDefault
}

// layout assembles aligned cells into the lines of a table.
type layout struct {
	tf         TableFormat
	widths     []int
	aligns     []Alignment
	multiline  bool
	hasHeaders bool
}

func (l layout) assemble(headers []string, headerAligns []Alignment, rows [][]string, seps []int, rowAligns []VerticalAlignment) string {
	tf := l.tf
	padded := make([]int, len(l.widths))
	for i, w := range l.widths {
		padded[i] = w + 2*tf.Padding
	}
	visible := func(ln *Line, r Rule) bool {
		return ln != nil && !(l.hasHeaders && tf.hidden(r))
	}

	var lines []string
	if visible(tf.LineAbove, RuleAbove) {
		lines = append(lines, tf.LineAbove.build(padded, l.aligns))
	}
	if l.hasHeaders {
		lines = l.appendRow(lines, headers, padded, headerAligns, tf.HeaderRow, AlignTop)
		if visible(tf.LineBelowHeader, RuleBelowHeader) {
			lines = append(lines, tf.LineBelowHeader.build(padded, l.aligns))
		}
	}

	if visible(tf.LineBetweenRows, RuleBetweenRows) {
		// Every row boundary already carries a rule, so separating lines
		// add nothing.
		for i, row := range rows {
			if i > 0 {
				lines = append(lines, tf.LineBetweenRows.build(padded, l.aligns))
			}
			lines = l.appendRow(lines, row, padded, l.aligns, tf.DataRow, rowAligns[i])
		}
	} else {
		sepLine := firstLine(tf.LineBetweenRows, tf.LineBelowHeader, tf.LineBelow, tf.LineAbove)
		s := 0
		for i := 0; i <= len(rows); i++ {
			for s < len(seps) && seps[s] == i {
				lines = append(lines, sepLine.build(padded, l.aligns))
				s++
			}
			if i < len(rows) {
				lines = l.appendRow(lines, rows[i], padded, l.aligns, tf.DataRow, rowAligns[i])
			}
		}
	}

	if visible(tf.LineBelow, RuleBelow) {
		lines = append(lines, tf.LineBelow.build(padded, l.aligns))
	}
	return strings.Join(lines, "\n")
}

// firstLine returns the first non-nil line, or an empty one.
func firstLine(ls ...*Line) *Line {
	for _, ln := range ls {
		if ln != nil {
			return ln
		}
	}
	return &Line{}
}

func (l layout) appendRow(lines, cells []string, padded []int, aligns []Alignment, row DataRow, va VerticalAlignment) []string {
	pad := strings.Repeat(" ", l.tf.Padding)
	if !l.multiline {
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = pad + c + pad
		}
		return append(lines, row.build(out, padded, aligns))
	}

	cellLines := make([][]string, len(cells))
	n := 0
	for i, c := range cells {
		cellLines[i] = cellSplit(c)
		n = max(n, len(cellLines[i]))
	}
	for i := range cellLines {
		cellLines[i] = alignVertical(cellLines[i], n, l.widths[i], va)
	}
	for j := range n {
		out := make([]string, len(cells))
		for i := range cells {
			out[i] = pad + cellLines[i][j] + pad
		}
		lines = append(lines, row.build(out, padded, aligns))
	}
	return lines
}

// cellSplit splits a cell into its lines. An empty cell has none and a
// trailing newline does not start a new line.
func cellSplit(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
