package tabulate

import (
	"strings"
	"unicode/utf8"

	"github.com/grafana/regexp"
	"github.com/mattn/go-runewidth"
)

// escapeSeq matches the zero-width sequences a cell may carry: CSI sequences
// (SGR colours among them) and the opening or closing half of an OSC 8
// hyperlink. The link text between the halves stays visible.
var escapeSeq = regexp.MustCompile(`\x1b\[[\x30-\x3f]*[\x20-\x2f]*[\x40-\x7e]|\x1b\]8;[^;\x1b]*;[^\x1b]*\x1b\\`)

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// eastAsian measures with the ambiguous-width characters treated as narrow,
// independent of the locale of the process.
var eastAsian = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// StripANSI removes terminal escape sequences from s, keeping hyperlink text.
func StripANSI(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return escapeSeq.ReplaceAllString(s, "")
}

// Width returns the number of terminal columns s occupies on a single line.
// Escape sequences are zero width and East Asian wide characters count as two.
func Width(s string) int {
	return measurer{wide: true}.width(s)
}

// MultilineWidth returns the width of the widest line of s.
func MultilineWidth(s string) int {
	return measurer{wide: true}.multilineWidth(s)
}

type measurer struct {
	wide bool
}

func (m measurer) width(s string) int {
	s = StripANSI(s)
	if !m.wide {
		return utf8.RuneCountInString(s)
	}
	return eastAsian.StringWidth(s)
}

func (m measurer) multilineWidth(s string) int {
	if !strings.ContainsAny(s, "\r\n") {
		return m.width(s)
	}
	w := 0
	for _, line := range lineBreak.Split(s, -1) {
		w = max(w, m.width(line))
	}
	return w
}

func (m measurer) runeWidth(r rune) int {
	if !m.wide {
		return 1
	}
	return eastAsian.RuneWidth(r)
}

func hasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

func splitLines(s string) []string {
	return lineBreak.Split(s, -1)
}
