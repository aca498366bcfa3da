package tabulate

import (
	"strconv"
	"strings"
)

func asciidocBegin(widths []int, aligns []Alignment) string {
	return asciidocHeader(false, widths, aligns)
}

// asciidocHeader opens the table with a column spec of padded widths and
// alignment markers, e.g. [cols="11<,11>",options="header"].
func asciidocHeader(header bool, widths []int, aligns []Alignment) string {
	specs := make([]string, len(widths))
	for i, w := range widths {
		mark := "<"
		switch alignAt(aligns, i) {
		case AlignRight, AlignDecimal:
			mark = ">"
		case AlignCenter:
			mark = "^"
		}
		specs[i] = strconv.Itoa(w) + mark
	}
	attrs := `cols="` + strings.Join(specs, ",") + `"`
	if header {
		attrs += `,options="header"`
	}
	return "[" + attrs + "]\n|===="
}

func asciidocRow(header bool) RowFunc {
	return func(cells []string, widths []int, aligns []Alignment) string {
		row := "|" + strings.Join(cells, "|")
		if header {
			return asciidocHeader(true, widths, aligns) + "\n" + row
		}
		return row
	}
}
