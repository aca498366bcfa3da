package tabulate

import (
	"strings"
	"unicode/utf8"
)

// afterPoint returns the number of characters after the decimal point (or,
// lacking one, after the exponent marker) of a numeric string. Integers,
// non-numbers and numbers without either marker return -1, which gives them
// one extra column of right padding in a decimal-aligned column.
func afterPoint(s string) int {
	if !isNumberString(s) && !isThousands(s) {
		return -1
	}
	if isIntString(s) {
		return -1
	}
	pos := strings.LastIndex(s, ".")
	if pos < 0 {
		pos = strings.LastIndex(strings.ToLower(s), "e")
	}
	if pos < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[pos+1:])
}

// alignColumn pads the cells of one column to a common width of at least
// minWidth. With multiline set every line of a cell is padded on its own.
func alignColumn(cells []string, mode Alignment, minWidth int, m measurer, multiline, preserve bool) []string {
	strs := make([]string, len(cells))
	copy(strs, cells)

	var pad func(string, int) string
	switch mode {
	case AlignRight:
		pad = m.padLeft
	case AlignCenter:
		pad = m.padBoth
	case AlignDecimal:
		decimals := make([]int, len(strs))
		most := -1
		for i, s := range strs {
			decimals[i] = afterPoint(StripANSI(s))
			most = max(most, decimals[i])
		}
		for i := range strs {
			strs[i] += strings.Repeat(" ", most-decimals[i])
		}
		pad = m.padLeft
	case AlignNone:
		pad = func(s string, _ int) string { return s }
	default:
		pad = m.padRight
	}
	if !preserve && mode != AlignDecimal && mode != AlignNone {
		for i := range strs {
			strs[i] = strings.TrimSpace(strs[i])
		}
	}

	width := minWidth
	for _, s := range strs {
		if multiline {
			width = max(width, m.multilineWidth(s))
		} else {
			width = max(width, m.width(s))
		}
	}

	out := make([]string, len(strs))
	for i, s := range strs {
		if !multiline {
			out[i] = pad(s, width)
			continue
		}
		lines := splitLines(s)
		for j, line := range lines {
			lines[j] = pad(line, width)
		}
		out[i] = strings.Join(lines, "\n")
	}
	return out
}

// alignHeader pads a header to width. Headers are never trimmed, and
// decimal alignment pads them on the left.
func alignHeader(h string, mode Alignment, width int, m measurer, multiline bool) string {
	var pad func(string, int) string
	switch mode {
	case AlignLeft:
		pad = m.padRight
	case AlignCenter:
		pad = m.padBoth
	case AlignNone:
		return h
	default:
		pad = m.padLeft
	}
	if !multiline {
		return pad(h, width)
	}
	lines := splitLines(h)
	for i, line := range lines {
		lines[i] = pad(line, width)
	}
	return strings.Join(lines, "\n")
}

// alignVertical pads the lines of one cell to n lines with blank lines of
// the given width. Centered cells get the smaller half of the padding on
// top.
func alignVertical(lines []string, n, width int, va VerticalAlignment) []string {
	delta := n - len(lines)
	if delta <= 0 {
		return lines
	}
	blank := strings.Repeat(" ", width)
	out := make([]string, 0, n)
	top := 0
	switch va {
	case AlignBottom:
		top = delta
	case AlignMiddle:
		top = delta / 2
	}
	for range top {
		out = append(out, blank)
	}
	out = append(out, lines...)
	for range delta - top {
		out = append(out, blank)
	}
	return out
}

func (m measurer) padLeft(s string, width int) string {
	return strings.Repeat(" ", max(0, width-m.width(s))) + s
}

func (m measurer) padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-m.width(s)))
}

// padBoth centers s; an odd leftover column goes to the right.
func (m measurer) padBoth(s string, width int) string {
	n := max(0, width-m.width(s))
	left := n / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-left)
}
