package tabulate

import "strings"

var latexEscaper = strings.NewReplacer(
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`^`, `\^{}`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`\`, `\textbackslash{}`,
	`<`, `\ensuremath{<}`,
	`>`, `\ensuremath{>}`,
)

func latexBegin(booktabs, longtable bool) LineFunc {
	return func(_ []int, aligns []Alignment) string {
		var cols strings.Builder
		for _, a := range aligns {
			switch a {
			case AlignRight, AlignDecimal:
				cols.WriteByte('r')
			case AlignCenter:
				cols.WriteByte('c')
			default:
				cols.WriteByte('l')
			}
		}
		env := `\begin{tabular}{`
		if longtable {
			env = `\begin{longtable}{`
		}
		rule := `\hline`
		if booktabs {
			rule = `\toprule`
		}
		return env + cols.String() + "}\n" + rule
	}
}

func latexRow(escape bool) RowFunc {
	return func(cells []string, _ []int, _ []Alignment) string {
		if escape {
			escaped := make([]string, len(cells))
			for i, c := range cells {
				escaped[i] = latexEscaper.Replace(c)
			}
			cells = escaped
		}
		return trimRight(strings.Join(cells, "&") + `\\`)
	}
}
