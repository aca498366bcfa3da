package tabulate

import (
	"html"
	"strings"
)

// htmlRow draws a <tr> of celltag cells. A header row also opens the table
// and its body.
func htmlRow(celltag string, escape bool) RowFunc {
	return func(cells []string, _ []int, aligns []Alignment) string {
		var b strings.Builder
		for i, cell := range cells {
			if escape {
				cell = html.EscapeString(cell)
			}
			b.WriteString("<" + celltag + htmlAlignStyle(alignAt(aligns, i)) + ">")
			b.WriteString(cell)
			b.WriteString("</" + celltag + ">")
		}
		row := "<tr>" + trimRight(b.String()) + "</tr>"
		if celltag == "th" {
			row = "<table>\n<thead>\n" + row + "\n</thead>\n<tbody>"
		}
		return row
	}
}

func htmlAlignStyle(a Alignment) string {
	switch a {
	case AlignRight, AlignDecimal:
		return ` style="text-align: right;"`
	case AlignCenter:
		return ` style="text-align: center;"`
	default:
		return ""
	}
}
