package tabulate

import "strings"

func mediawikiRow(sep string) RowFunc {
	return func(cells []string, _ []int, aligns []Alignment) string {
		values := make([]string, len(cells))
		for i, c := range cells {
			values[i] = " " + mediawikiAttr(alignAt(aligns, i)) + c + " "
		}
		return trimRight(sep + strings.Join(values, sep+sep))
	}
}

func mediawikiAttr(a Alignment) string {
	switch a {
	case AlignRight, AlignDecimal:
		return `style="text-align: right;"| `
	case AlignCenter:
		return `style="text-align: center;"| `
	default:
		return ""
	}
}

func moinRow(celltag, emphasis string) RowFunc {
	return func(cells []string, _ []int, aligns []Alignment) string {
		var b strings.Builder
		for i, c := range cells {
			b.WriteString(celltag + moinAttr(alignAt(aligns, i)) + " " + emphasis + c + emphasis + " ")
		}
		b.WriteString("||")
		return b.String()
	}
}

func moinAttr(a Alignment) string {
	switch a {
	case AlignRight, AlignDecimal:
		return `<style="text-align: right;">`
	case AlignCenter:
		return `<style="text-align: center;">`
	default:
		return ""
	}
}

func textileRow(cells []string, _ []int, aligns []Alignment) string {
	values := make([]string, len(cells))
	for i, c := range cells {
		if i == 0 {
			c += " "
		}
		values[i] = textileAttr(alignAt(aligns, i)) + c
	}
	return "|" + strings.Join(values, "|") + "|"
}

func textileAttr(a Alignment) string {
	switch a {
	case AlignLeft:
		return "<."
	case AlignRight, AlignDecimal:
		return ">."
	case AlignCenter:
		return "=."
	default:
		return ""
	}
}
