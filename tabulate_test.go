package tabulate_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/bjaus/tabulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testRows    = [][]any{{"spam", 41.9999}, {"eggs", "451.0"}}
	testHeaders = []string{"strings", "numbers"}
)

func withSep() [][]any {
	return [][]any{testRows[0], tabulate.SeparatingLine, testRows[1]}
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n")
}

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// --- Formats ---

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		want    tabulate.Format
		wantErr bool
	}{
		"plain":          {tabulate.Plain, false},
		"simple":         {tabulate.Simple, false},
		"fancy_grid":     {tabulate.FancyGrid, false},
		"latex_booktabs": {tabulate.LaTeXBooktabs, false},
		"asciidoc":       {tabulate.AsciiDoc, false},
		"xml":            {"", true},
		"":               {"", true},
	}
	for input, tt := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			got, err := tabulate.ParseFormat(input)
			if tt.wantErr {
				require.ErrorIs(t, err, tabulate.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()
	fs := tabulate.Formats()
	assert.Len(t, fs, 36)
	assert.Contains(t, fs, tabulate.Pipe)
	assert.Contains(t, fs, tabulate.RST)

	// every listed format renders
	for _, f := range fs {
		_, err := tabulate.Render(testRows, tabulate.Options{Format: f, Headers: testHeaders})
		assert.NoError(t, err, f)
	}

	// the returned slice is a copy
	fs[0] = "mutated"
	assert.Equal(t, tabulate.Plain, tabulate.Formats()[0])
}

func TestLookupReturnsCopy(t *testing.T) {
	t.Parallel()
	tf, err := tabulate.Lookup(tabulate.Grid)
	require.NoError(t, err)
	tf.LineAbove.Fill = "~"

	again, err := tabulate.Lookup(tabulate.Grid)
	require.NoError(t, err)
	assert.Equal(t, "-", again.LineAbove.Fill)
}

func TestRenderFormats(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		rows [][]any
		opts tabulate.Options
		want string
	}{
		"plain": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Plain, Headers: testHeaders},
			want: lines("strings      numbers", "spam         41.9999", "eggs        451"),
		},
		"plain headerless": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Plain},
			want: lines("spam   41.9999", "eggs  451"),
		},
		"simple": {
			rows: testRows,
			opts: tabulate.Options{Headers: testHeaders},
			want: lines(
				"strings      numbers",
				"---------  ---------",
				"spam         41.9999",
				"eggs        451",
			),
		},
		"simple with separating line": {
			rows: withSep(),
			opts: tabulate.Options{Headers: testHeaders},
			want: lines(
				"strings      numbers",
				"---------  ---------",
				"spam         41.9999",
				"---------  ---------",
				"eggs        451",
			),
		},
		"simple headerless": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Simple},
			want: lines("----  --------", "spam   41.9999", "eggs  451", "----  --------"),
		},
		"simple headerless with separating line": {
			rows: withSep(),
			opts: tabulate.Options{},
			want: lines("----  --------", "spam   41.9999", "----  --------", "eggs  451", "----  --------"),
		},
		"github": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Github, Headers: testHeaders},
			want: lines(
				"| strings   |   numbers |",
				"|-----------|-----------|",
				"| spam      |   41.9999 |",
				"| eggs      |  451      |",
			),
		},
		"grid": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Grid, Headers: testHeaders},
			want: lines(
				"+-----------+-----------+",
				"| strings   |   numbers |",
				"+===========+===========+",
				"| spam      |   41.9999 |",
				"+-----------+-----------+",
				"| eggs      |  451      |",
				"+-----------+-----------+",
			),
		},
		"grid headerless": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Grid},
			want: lines(
				"+------+----------+",
				"| spam |  41.9999 |",
				"+------+----------+",
				"| eggs | 451      |",
				"+------+----------+",
			),
		},
		"grid wide characters": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Grid, Headers: []string{"strings", "配列"}},
			want: lines(
				"+-----------+----------+",
				"| strings   |     配列 |",
				"+===========+==========+",
				"| spam      |  41.9999 |",
				"+-----------+----------+",
				"| eggs      | 451      |",
				"+-----------+----------+",
			),
		},
		"grid multiline": {
			rows: [][]any{{2, "foo\nbar"}},
			opts: tabulate.Options{
				Format:  tabulate.Grid,
				Headers: []string{"more\nspam \x1b[31meggs\x1b[0m", "more spam\n& eggs"},
			},
			want: lines(
				"+-------------+-------------+",
				"|        more | more spam   |",
				"|   spam \x1b[31meggs\x1b[0m | & eggs      |",
				"+=============+=============+",
				"|           2 | foo         |",
				"|             | bar         |",
				"+-------------+-------------+",
			),
		},
		"simple grid": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.SimpleGrid, Headers: testHeaders},
			want: lines(
				"┌───────────┬───────────┐",
				"│ strings   │   numbers │",
				"├───────────┼───────────┤",
				"│ spam      │   41.9999 │",
				"├───────────┼───────────┤",
				"│ eggs      │  451      │",
				"└───────────┴───────────┘",
			),
		},
		"fancy grid": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.FancyGrid, Headers: testHeaders},
			want: lines(
				"╒═══════════╤═══════════╕",
				"│ strings   │   numbers │",
				"╞═══════════╪═══════════╡",
				"│ spam      │   41.9999 │",
				"├───────────┼───────────┤",
				"│ eggs      │  451      │",
				"╘═══════════╧═══════════╛",
			),
		},
		"outline": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Outline, Headers: testHeaders},
			want: lines(
				"+-----------+-----------+",
				"| strings   |   numbers |",
				"+===========+===========+",
				"| spam      |   41.9999 |",
				"| eggs      |  451      |",
				"+-----------+-----------+",
			),
		},
		"rounded outline headerless": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.RoundedOutline},
			want: lines(
				"╭──────┬──────────╮",
				"│ spam │  41.9999 │",
				"│ eggs │ 451      │",
				"╰──────┴──────────╯",
			),
		},
		"pipe": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Pipe, Headers: testHeaders},
			want: lines(
				"| strings   |   numbers |",
				"|:----------|----------:|",
				"| spam      |   41.9999 |",
				"| eggs      |  451      |",
			),
		},
		"pipe headerless": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Pipe},
			want: lines("|:-----|---------:|", "| spam |  41.9999 |", "| eggs | 451      |"),
		},
		"presto": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Presto, Headers: testHeaders},
			want: lines(
				" strings   |   numbers",
				"-----------+-----------",
				" spam      |   41.9999",
				" eggs      |  451",
			),
		},
		"orgtbl": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Orgtbl, Headers: testHeaders},
			want: lines(
				"| strings   |   numbers |",
				"|-----------+-----------|",
				"| spam      |   41.9999 |",
				"| eggs      |  451      |",
			),
		},
		"asciidoc": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.AsciiDoc, Headers: testHeaders},
			want: lines(
				`[cols="11<,11>",options="header"]`,
				"|====",
				"| strings   |   numbers ",
				"| spam      |   41.9999 ",
				"| eggs      |  451      ",
				"|====",
			),
		},
		"asciidoc headerless": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.AsciiDoc},
			want: lines(
				`[cols="6<,10>"]`,
				"|====",
				"| spam |  41.9999 ",
				"| eggs | 451      ",
				"|====",
			),
		},
		"psql": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.PSQL, Headers: testHeaders},
			want: lines(
				"+-----------+-----------+",
				"| strings   |   numbers |",
				"|-----------+-----------|",
				"| spam      |   41.9999 |",
				"| eggs      |  451      |",
				"+-----------+-----------+",
			),
		},
		"pretty": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Pretty, Headers: testHeaders},
			want: lines(
				"+---------+---------+",
				"| strings | numbers |",
				"+---------+---------+",
				"|  spam   | 41.9999 |",
				"|  eggs   |  451.0  |",
				"+---------+---------+",
			),
		},
		"pretty headerless": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Pretty},
			want: lines(
				"+------+---------+",
				"| spam | 41.9999 |",
				"| eggs |  451.0  |",
				"+------+---------+",
			),
		},
		"jira": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Jira, Headers: testHeaders},
			want: lines(
				"|| strings   ||   numbers ||",
				"| spam      |   41.9999 |",
				"| eggs      |  451      |",
			),
		},
		"rst": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.RST, Headers: testHeaders},
			want: lines(
				"=========  =========",
				"strings      numbers",
				"=========  =========",
				"spam         41.9999",
				"eggs        451",
				"=========  =========",
			),
		},
		"rst escapes empty first column": {
			rows: [][]any{{"", "spam"}, {"", "eggs"}},
			opts: tabulate.Options{Format: tabulate.RST, Headers: []string{"", "what"}},
			want: lines(
				"====  ======",
				"..    what",
				"====  ======",
				"..    spam",
				"..    eggs",
				"====  ======",
			),
		},
		"mediawiki": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.MediaWiki, Headers: testHeaders},
			want: lines(
				`{| class="wikitable" style="text-align: left;"`,
				"|+ <!-- caption -->",
				"|-",
				`! strings   !! style="text-align: right;"|   numbers`,
				"|-",
				`| spam      || style="text-align: right;"|   41.9999`,
				"|-",
				`| eggs      || style="text-align: right;"|  451`,
				"|}",
			),
		},
		"moinmoin": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.MoinMoin, Headers: testHeaders},
			want: lines(
				`|| ''' strings   ''' ||<style="text-align: right;"> '''   numbers ''' ||`,
				`||  spam       ||<style="text-align: right;">    41.9999  ||`,
				`||  eggs       ||<style="text-align: right;">   451       ||`,
			),
		},
		"youtrack": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.YouTrack, Headers: testHeaders},
			want: lines(
				"||  strings    ||    numbers  ||",
				"|  spam       |    41.9999  |",
				"|  eggs       |   451       |",
			),
		},
		"html": {
			rows: [][]any{{"spam >", 41.9999}, {"eggs &", 451.0}},
			opts: tabulate.Options{Format: tabulate.HTML, Headers: []string{"<strings>", "<&numbers&>"}},
			want: lines(
				"<table>",
				"<thead>",
				`<tr><th>&lt;strings&gt;  </th><th style="text-align: right;">  &lt;&amp;numbers&amp;&gt;</th></tr>`,
				"</thead>",
				"<tbody>",
				`<tr><td>spam &gt;     </td><td style="text-align: right;">      41.9999</td></tr>`,
				`<tr><td>eggs &amp;     </td><td style="text-align: right;">     451     </td></tr>`,
				"</tbody>",
				"</table>",
			),
		},
		"html headerless": {
			rows: [][]any{{"spam >", 41.9999}, {"eggs &", 451.0}},
			opts: tabulate.Options{Format: tabulate.HTML},
			want: lines(
				"<table>",
				"<tbody>",
				`<tr><td>spam &gt;</td><td style="text-align: right;"> 41.9999</td></tr>`,
				`<tr><td>eggs &amp;</td><td style="text-align: right;">451     </td></tr>`,
				"</tbody>",
				"</table>",
			),
		},
		"unsafehtml": {
			rows: [][]any{
				{"spam", `<font color="red">41.9999</font>`},
				{"eggs", `<font color="red">451.0</font>`},
			},
			opts: tabulate.Options{Format: tabulate.UnsafeHTML, Headers: testHeaders},
			want: lines(
				"<table>",
				"<thead>",
				"<tr><th>strings  </th><th>numbers                         </th></tr>",
				"</thead>",
				"<tbody>",
				`<tr><td>spam     </td><td><font color="red">41.9999</font></td></tr>`,
				`<tr><td>eggs     </td><td><font color="red">451.0</font>  </td></tr>`,
				"</tbody>",
				"</table>",
			),
		},
		"latex": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.LaTeX, Headers: []string{"strings", "numbers ($N_0$)"}},
			want: lines(
				`\begin{tabular}{lr}`,
				`\hline`,
				` strings   &   numbers (\$N\_0\$) \\`,
				`\hline`,
				` spam      &           41.9999 \\`,
				` eggs      &          451      \\`,
				`\hline`,
				`\end{tabular}`,
			),
		},
		"latex raw": {
			rows: [][]any{{"spam$_1$", 41.9999}, {`\emph{eggs}`, "451.0"}},
			opts: tabulate.Options{Format: tabulate.LaTeXRaw, Headers: []string{"strings", "numbers ($N_0$)"}},
			want: lines(
				`\begin{tabular}{lr}`,
				`\hline`,
				` strings     &   numbers ($N_0$) \\`,
				`\hline`,
				` spam$_1$    &           41.9999 \\`,
				` \emph{eggs} &          451      \\`,
				`\hline`,
				`\end{tabular}`,
			),
		},
		"latex booktabs": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.LaTeXBooktabs, Headers: testHeaders},
			want: lines(
				`\begin{tabular}{lr}`,
				`\toprule`,
				` strings   &   numbers \\`,
				`\midrule`,
				` spam      &   41.9999 \\`,
				` eggs      &  451      \\`,
				`\bottomrule`,
				`\end{tabular}`,
			),
		},
		"latex longtable headerless": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.LaTeXLongtable},
			want: lines(
				`\begin{longtable}{lr}`,
				`\hline`,
				` spam &  41.9999 \\`,
				` eggs & 451      \\`,
				`\hline`,
				`\end{longtable}`,
			),
		},
		"textile": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Textile},
			want: lines("|<. spam  |>.  41.9999 |", "|<. eggs  |>. 451      |"),
		},
		"textile with header": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Textile, Headers: testHeaders},
			want: lines(
				"|_.  strings   |_.   numbers |",
				"|<. spam       |>.   41.9999 |",
				"|<. eggs       |>.  451      |",
			),
		},
		"textile centered": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.Textile, StrAlign: tabulate.AlignCenter},
			want: lines("|=. spam  |>.  41.9999 |", "|=. eggs  |>. 451      |"),
		},
		"tsv": {
			rows: testRows,
			opts: tabulate.Options{Format: tabulate.TSV, Headers: testHeaders},
			want: lines("strings  \t  numbers", "spam     \t  41.9999", "eggs     \t 451"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabulate.Render(tt.rows, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderFixtures(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		rows [][]any
		opts tabulate.Options
		want string
	}{
		"mixed ints and floats": {
			rows: [][]any{{1, 2.34}, {-56, "8.999"}, {"2", "10001"}},
			want: lines(
				"---  ---------",
				"  1      2.34",
				"-56      8.999",
				"  2  10001",
				"---  ---------",
			),
		},
		"missing values": {
			rows: [][]any{{"Alice", 10}, {"Bob", nil}},
			opts: tabulate.Options{Format: tabulate.Plain, MissingVal: "n/a"},
			want: "Alice   10\nBob    n/a",
		},
		"missing values per column": {
			rows: [][]any{{"Alice", "Bob", "Charlie"}, {nil, nil, nil}},
			opts: tabulate.Options{Format: tabulate.Plain, ColumnMissingVal: []string{"n/a", "?"}},
			want: "Alice  Bob  Charlie\nn/a    ?",
		},
		"ragged rows": {
			rows: [][]any{{"a", 1, 2}, {"b"}},
			opts: tabulate.Options{Format: tabulate.Plain, MissingVal: "-"},
			want: "a  1  2\nb  -  -",
		},
		"no data": {
			opts: tabulate.Options{Headers: testHeaders},
			want: lines("strings    numbers", "---------  ---------"),
		},
		"no data no headers": {
			want: "",
		},
		"only separating lines": {
			rows: [][]any{tabulate.SeparatingLine, tabulate.SeparatingLine},
			want: "",
		},
		"only separating lines grid": {
			rows: [][]any{tabulate.SeparatingLine},
			opts: tabulate.Options{Format: tabulate.Grid},
			want: "",
		},
		"firstrow of no data": {
			opts: tabulate.Options{HeaderMode: tabulate.HeadersFirstRow},
			want: "",
		},
		"intfmt": {
			rows: [][]any{{10000}, {10}},
			opts: tabulate.Options{Format: tabulate.Plain, IntFmt: ","},
			want: "10,000\n    10",
		},
		"floatfmt": {
			rows: [][]any{{"1.23456789"}, {1.0}},
			opts: tabulate.Options{Format: tabulate.Plain, FloatFmt: ".3f"},
			want: "1.235\n1.000",
		},
		"floatfmt per column": {
			rows: [][]any{{0.12345, 0.12345, 0.12345}},
			opts: tabulate.Options{Format: tabulate.Plain, ColumnFloatFmt: []string{".1f", ".3f"}},
			want: "0.1  0.123  0.12345",
		},
		"colalign shorter than columns": {
			rows: [][]any{{"one", "two"}, {"three", "four"}},
			opts: tabulate.Options{Format: tabulate.Plain, ColAlign: []tabulate.Alignment{tabulate.AlignRight}},
			want: "  one  two\nthree  four",
		},
		"separating line in plain": {
			rows: [][]any{{"one", "two"}, tabulate.SeparatingLine, {"three", "four"}},
			opts: tabulate.Options{Format: tabulate.Plain, ColAlign: []tabulate.Alignment{tabulate.AlignRight}},
			want: "  one  two\n\nthree  four",
		},
		"separating lines headerless": {
			rows: [][]any{{"Earth", 6371}, {"Mars", 3390}, tabulate.SeparatingLine, {"Moon", 1737}},
			want: lines("-----  ----", "Earth  6371", "Mars   3390", "-----  ----", "Moon   1737", "-----  ----"),
		},
		"global and specific column alignment": {
			rows: [][]any{{1, 2, 3, 4}, {111, 222, 333, 444}},
			opts: tabulate.Options{
				ColGlobalAlign: tabulate.AlignCenter,
				ColAlign:       []tabulate.Alignment{tabulate.AlignDefault, tabulate.AlignLeft, tabulate.AlignRight},
			},
			want: lines("---  ---  ---  ---", " 1   2      3   4", "111  222  333  444", "---  ---  ---  ---"),
		},
		"global and specific header alignment": {
			rows: [][]any{{1, 2, 3, 4, 5, 6}, {111, 222, 333, 444, 555, 666}},
			opts: tabulate.Options{
				Headers:            []string{"h", "e", "a", "d", "e", "r"},
				ColGlobalAlign:     tabulate.AlignCenter,
				ColAlign:           []tabulate.Alignment{tabulate.AlignLeft},
				HeadersGlobalAlign: tabulate.AlignRight,
				HeadersAlign: []tabulate.Alignment{
					tabulate.AlignSame, tabulate.AlignSame, tabulate.AlignLeft, tabulate.AlignDefault, tabulate.AlignCenter,
				},
			},
			want: lines(
				"h     e   a      d   e     r",
				"---  ---  ---  ---  ---  ---",
				"1     2    3    4    5    6",
				"111  222  333  444  555  666",
			),
		},
		"string and number alignment": {
			rows: [][]any{{"Alice", 1}, {"Bob", 333}},
			opts: tabulate.Options{StrAlign: tabulate.AlignRight, NumAlign: tabulate.AlignCenter},
			want: lines("-----  ---", "Alice   1", "  Bob  333", "-----  ---"),
		},
		"unaligned separated format": {
			rows: [][]any{{"Alice", 1}, {"Bob", 333}},
			opts: tabulate.Options{
				TableFormat: ptr(tabulate.SeparatedFormat("|")),
				Headers:     []string{"name", "score"},
				StrAlign:    tabulate.AlignNone,
				NumAlign:    tabulate.AlignNone,
			},
			want: lines("name|score", "Alice|1", "Bob|333"),
		},
		"float conversions": {
			rows: [][]any{
				{"spam", 41.9999, "123.345", "12.2", "nan", "0.123123"},
				{"eggs", "451.0", 66.2222, "inf", 123.1234, "-inf"},
				{"asd", "437e6548", 1.234e2, inf(), nan(), 0.22e23},
			},
			opts: tabulate.Options{
				Format:  tabulate.Grid,
				Headers: []string{"str", "bad_float", "just_float", "with_inf", "with_nan", "neg_inf"},
			},
			want: lines(
				"+-------+-------------+--------------+------------+------------+-------------+",
				"| str   | bad_float   |   just_float |   with_inf |   with_nan |     neg_inf |",
				"+=======+=============+==============+============+============+=============+",
				"| spam  | 41.9999     |     123.345  |       12.2 |    nan     |    0.123123 |",
				"+-------+-------------+--------------+------------+------------+-------------+",
				"| eggs  | 451.0       |      66.2222 |      inf   |    123.123 | -inf        |",
				"+-------+-------------+--------------+------------+------------+-------------+",
				"| asd   | 437e6548    |     123.4    |      inf   |    nan     |    2.2e+22  |",
				"+-------+-------------+--------------+------------+------------+-------------+",
			),
		},
		"keys as headers with index": {
			rows: [][]any{{101}, {102}, {103}},
			opts: tabulate.Options{HeaderMode: tabulate.HeadersKeys, ShowIndex: true},
			want: lines("      0", "--  ---", " 0  101", " 1  102", " 2  103"),
		},
		"running index": {
			rows: [][]any{{0, 101}, {1, 102}, {2, 103}},
			opts: tabulate.Options{Headers: []string{"a", "b"}, ShowIndex: true},
			want: lines("      a    b", "--  ---  ---", " 0    0  101", " 1    1  102", " 2    2  103"),
		},
		"running index skips separating lines": {
			rows: [][]any{{0, 101}, tabulate.SeparatingLine, {1, 102}, {2, 103}},
			opts: tabulate.Options{Headers: []string{"a", "b"}, ShowIndex: true},
			want: lines("      a    b", "--  ---  ---", " 0    0  101", "--  ---  ---", " 1    1  102", " 2    2  103"),
		},
		"supplied index": {
			rows: [][]any{{0, 101}, {1, 102}, {2, 103}},
			opts: tabulate.Options{Headers: []string{"a", "b"}, Index: []any{1, 2, 3}},
			want: lines("      a    b", "--  ---  ---", " 1    0  101", " 2    1  102", " 3    2  103"),
		},
		"firstrow with index": {
			rows: [][]any{{"a", "b"}, {0, 101}, {1, 102}, {2, 103}},
			opts: tabulate.Options{HeaderMode: tabulate.HeadersFirstRow, ShowIndex: true},
			want: lines("      a    b", "--  ---  ---", " 0    0  101", " 1    1  102", " 2    2  103"),
		},
		"numeric parsing disabled": {
			rows: testRows,
			opts: tabulate.Options{Headers: testHeaders, DisableNumParse: true},
			want: lines("strings    numbers", "---------  ---------", "spam       41.9999", "eggs       451.0"),
		},
		"numeric parsing disabled for one column": {
			rows: [][]any{{"foo", "bar", "42992e1"}},
			opts: tabulate.Options{Headers: []string{"h1", "h2", "h3"}, DisableNumParseColumns: []int{2}},
			want: lines("h1    h2    h3", "----  ----  -------", "foo   bar   42992e1"),
		},
		"numeric parsing disabled for other columns": {
			rows: [][]any{{"foo", "bar", "42992e1"}},
			opts: tabulate.Options{Headers: []string{"h1", "h2", "h3"}, DisableNumParseColumns: []int{0, 1}},
			want: lines("h1    h2        h3", "----  ----  ------", "foo   bar   429920"),
		},
		"preserve whitespace": {
			rows: [][]any{{"  foo", " bar   ", "foo"}},
			opts: tabulate.Options{Headers: []string{"h1", "h2", "h3"}, PreserveWhitespace: true},
			want: lines("h1     h2       h3", "-----  -------  ----", "  foo   bar     foo"),
		},
		"trim whitespace": {
			rows: [][]any{{"  foo", " bar   ", "foo"}},
			opts: tabulate.Options{Headers: []string{"h1", "h2", "h3"}},
			want: lines("h1    h2    h3", "----  ----  ----", "foo   bar   foo"),
		},
		"booleans": {
			rows: [][]any{{false, true}, {true, false}},
			opts: tabulate.Options{Format: tabulate.Plain},
			want: "False  True\nTrue   False",
		},
		"native and string booleans": {
			rows: [][]any{{true}, {"True"}, {"false"}},
			opts: tabulate.Options{Format: tabulate.Plain},
			want: "True\nTrue\nfalse",
		},
		"irregular thousands grouping": {
			rows: [][]any{{"12,34", "x"}, {"1", "y"}},
			opts: tabulate.Options{Format: tabulate.Plain},
			want: "12,34  x\n1      y",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabulate.Render(tt.rows, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderMultiline(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		rows [][]any
		opts tabulate.Options
		want string
	}{
		"plain headerless centered": {
			rows: [][]any{{"foo bar\nbaz\nbau", "hello"}, {"", "multiline\nworld"}},
			opts: tabulate.Options{Format: tabulate.Plain, StrAlign: tabulate.AlignCenter},
			want: lines("foo bar    hello", "  baz", "  bau", "         multiline", "           world"),
		},
		"plain with ANSI header": {
			rows: [][]any{{2, "foo\nbar"}},
			opts: tabulate.Options{
				Format:  tabulate.Plain,
				Headers: []string{"more\nspam \x1b[31meggs\x1b[0m", "more spam\n& eggs"},
			},
			want: lines(
				"       more  more spam",
				"  spam \x1b[31meggs\x1b[0m  & eggs",
				"          2  foo",
				"             bar",
			),
		},
		"plain with hyperlink header": {
			rows: [][]any{{2, "foo\nbar"}},
			opts: tabulate.Options{
				Format:  tabulate.Plain,
				Headers: []string{"more\nspam \x1b]8;;target\x1b\\eggs\x1b]8;;\x1b\\", "more spam\n& eggs"},
			},
			want: lines(
				"       more  more spam",
				"  spam \x1b]8;;target\x1b\\eggs\x1b]8;;\x1b\\  & eggs",
				"          2  foo",
				"             bar",
			),
		},
		"plain with empty cells": {
			rows: [][]any{{"hdr", "data", "fold"}, {"1", "", ""}, {"2", "very long data", "fold\nthis"}},
			opts: tabulate.Options{Format: tabulate.Plain, HeaderMode: tabulate.HeadersFirstRow},
			want: lines(
				"  hdr  data            fold",
				"    1",
				"    2  very long data  fold",
				"                       this",
			),
		},
		"plain with empty cells headerless": {
			rows: [][]any{{"0", "", ""}, {"1", "", ""}, {"2", "very long data", "fold\nthis"}},
			opts: tabulate.Options{Format: tabulate.Plain},
			want: lines("0", "1", "2  very long data  fold", "                   this"),
		},
		"simple centered firstrow": {
			rows: [][]any{{"key", "value"}, {"foo", "bar"}, {"spam", "multiline\nworld"}},
			opts: tabulate.Options{HeaderMode: tabulate.HeadersFirstRow, StrAlign: tabulate.AlignCenter},
			want: lines(
				" key     value",
				"-----  ---------",
				" foo      bar",
				"spam   multiline",
				"         world",
			),
		},
		"simple centered firstrow with separating line": {
			rows: [][]any{{"key", "value"}, {"foo", "bar"}, tabulate.SeparatingLine, {"spam", "multiline\nworld"}},
			opts: tabulate.Options{HeaderMode: tabulate.HeadersFirstRow, StrAlign: tabulate.AlignCenter},
			want: lines(
				" key     value",
				"-----  ---------",
				" foo      bar",
				"-----  ---------",
				"spam   multiline",
				"         world",
			),
		},
		"fancy grid row alignment": {
			rows: [][]any{
				{"0", "some\ndefault\ntext", "up\ntop"},
				{"1", "very\nlong\ndata\ncell", "mid\ntest"},
				{"2", "also\nvery\nlong\ndata\ncell", "fold\nthis"},
			},
			opts: tabulate.Options{
				Format:    tabulate.FancyGrid,
				RowAligns: []tabulate.VerticalAlignment{tabulate.AlignTop, tabulate.AlignMiddle, tabulate.AlignBottom},
			},
			want: lines(
				"╒═══╤═════════╤══════╕",
				"│ 0 │ some    │ up   │",
				"│   │ default │ top  │",
				"│   │ text    │      │",
				"├───┼─────────┼──────┤",
				"│   │ very    │      │",
				"│ 1 │ long    │ mid  │",
				"│   │ data    │ test │",
				"│   │ cell    │      │",
				"├───┼─────────┼──────┤",
				"│   │ also    │      │",
				"│   │ very    │      │",
				"│   │ long    │      │",
				"│   │ data    │ fold │",
				"│ 2 │ cell    │ this │",
				"╘═══╧═════════╧══════╛",
			),
		},
		"carriage returns are line breaks": {
			rows: [][]any{{"a\r\nb", "c\rd"}},
			opts: tabulate.Options{Format: tabulate.Plain},
			want: lines("a  c", "b  d"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabulate.Render(tt.rows, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderWrapping(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		rows [][]any
		opts tabulate.Options
		want string
	}{
		"numbers wrap where parsing is off": {
			rows: [][]any{{12345}},
			opts: tabulate.Options{Format: tabulate.Pretty, MaxColWidth: 3},
			want: lines("+-----+", "| 123 |", "| 45  |", "+-----+"),
		},
		"per column widths": {
			rows: [][]any{{"hdr", "fold"}, {"1", "very long data"}},
			opts: tabulate.Options{Format: tabulate.Plain, HeaderMode: tabulate.HeadersFirstRow, MaxColWidths: []int{10, 10}},
			want: lines("  hdr  fold", "    1  very long", "       data"),
		},
		"with separating line": {
			rows: [][]any{{"hdr", "fold"}, {"1", "very long data"}, tabulate.SeparatingLine, {"2", "last line"}},
			opts: tabulate.Options{Format: tabulate.Plain, HeaderMode: tabulate.HeadersFirstRow, MaxColWidths: []int{10, 10}},
			want: lines("  hdr  fold", "    1  very long", "       data", "", "    2  last line"),
		},
		"single width for every column": {
			rows: [][]any{{"hdr", "fold1", "fold2"}, {"mini", "this is short", "this is a bit longer"}},
			opts: tabulate.Options{Format: tabulate.Plain, HeaderMode: tabulate.HeadersFirstRow, MaxColWidth: 6},
			want: lines(
				"hdr    fold1    fold2",
				"mini   this     this",
				"       is       is a",
				"       short    bit",
				"                longer",
			),
		},
		"zero width leaves a column unwrapped": {
			rows: [][]any{{"hdr", "fold1", "fold2"}, {"mini", "this is short", "this is a bit longer"}},
			opts: tabulate.Options{Format: tabulate.Plain, HeaderMode: tabulate.HeadersFirstRow, MaxColWidths: []int{0, 6}},
			want: lines(
				"hdr    fold1    fold2",
				"mini   this     this is a bit longer",
				"       is",
				"       short",
			),
		},
		"numbers are not wrapped unless parsing is disabled": {
			rows: [][]any{
				{"first number", 123.456789, "123.456789"},
				{"second number", "987654321.123", "987654321.123"},
			},
			opts: tabulate.Options{Format: tabulate.Grid, MaxColWidth: 6, DisableNumParseColumns: []int{2}},
			want: lines(
				"+--------+---------------+--------+",
				"| first  | 123.457       | 123.45 |",
				"| number |               | 6789   |",
				"+--------+---------------+--------+",
				"| second |   9.87654e+08 | 987654 |",
				"| number |               | 321.12 |",
				"|        |               | 3      |",
				"+--------+---------------+--------+",
			),
		},
		"headers": {
			rows: [][]any{{"hdr", "fold"}, {"1", "very long data"}},
			opts: tabulate.Options{
				Format:             tabulate.Plain,
				HeaderMode:         tabulate.HeadersFirstRow,
				MaxColWidths:       []int{10, 10},
				MaxHeaderColWidths: []int{0, 2},
			},
			want: lines("  hdr  fo", "       ld", "    1  very long", "       data"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabulate.Render(tt.rows, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBetweenRowsFormatIgnoresSeparatingLine(t *testing.T) {
	t.Parallel()
	got, err := tabulate.Render(withSep(), tabulate.Options{Format: tabulate.Grid, Headers: testHeaders})
	require.NoError(t, err)
	want, err := tabulate.Render(testRows, tabulate.Options{Format: tabulate.Grid, Headers: testHeaders})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRenderDoesNotModifyRows(t *testing.T) {
	t.Parallel()
	rows := [][]any{{"a long cell", 1}, {"b"}}
	_, err := tabulate.Render(rows, tabulate.Options{MaxColWidth: 3, ShowIndex: true})
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"a long cell", 1}, {"b"}}, rows)
}

func TestRenderIsRepeatable(t *testing.T) {
	t.Parallel()
	opts := tabulate.Options{Format: tabulate.FancyGrid, Headers: testHeaders, MaxColWidth: 4}
	first, err := tabulate.Render(testRows, opts)
	require.NoError(t, err)
	second, err := tabulate.Render(testRows, opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderColumnWidthsAreUniform(t *testing.T) {
	t.Parallel()
	rows := [][]any{{"x", 1.5, "wide 表"}, {"longer", -20, nil}, {"", "3.25", "z"}}
	got, err := tabulate.Render(rows, tabulate.Options{Format: tabulate.Grid, Headers: []string{"a", "b", "c"}})
	require.NoError(t, err)
	ls := strings.Split(got, "\n")
	for _, l := range ls {
		assert.Equal(t, tabulate.Width(ls[0]), tabulate.Width(l), l)
	}
}

// --- Errors ---

func TestRenderErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		rows    [][]any
		opts    tabulate.Options
		wantErr error
	}{
		"unknown format": {testRows, tabulate.Options{Format: "nope"}, tabulate.ErrUnsupportedFormat},
		"too many column alignments": {
			[][]any{{1, 2}, {111, 222}},
			tabulate.Options{ColAlign: []tabulate.Alignment{tabulate.AlignDefault, tabulate.AlignLeft, tabulate.AlignCenter}},
			tabulate.ErrInvalidConfig,
		},
		"too many header alignments": {
			[][]any{{1, 2}, {111, 222}},
			tabulate.Options{
				Headers:      []string{"h"},
				HeadersAlign: []tabulate.Alignment{tabulate.AlignCenter, tabulate.AlignRight},
			},
			tabulate.ErrInvalidConfig,
		},
		"short index": {testRows, tabulate.Options{Index: []any{1}}, tabulate.ErrInvalidConfig},
		"short index after firstrow": {
			[][]any{{"a", "b"}, {0, 101}, {1, 102}, {2, 103}},
			tabulate.Options{HeaderMode: tabulate.HeadersFirstRow, Index: []any{1, 2}},
			tabulate.ErrInvalidConfig,
		},
		"integer verb for floats":    {testRows, tabulate.Options{FloatFmt: "d"}, tabulate.ErrInvalidConfig},
		"malformed float format":     {testRows, tabulate.Options{FloatFmt: ".q"}, tabulate.ErrInvalidConfig},
		"malformed int format":       {testRows, tabulate.Options{ColumnIntFmt: []string{"", "zz"}}, tabulate.ErrInvalidConfig},
		"negative width":             {testRows, tabulate.Options{MaxColWidth: -1}, tabulate.ErrInvalidConfig},
		"negative header width":      {testRows, tabulate.Options{MaxHeaderColWidths: []int{2, -3}}, tabulate.ErrInvalidConfig},
		"same for a column":          {testRows, tabulate.Options{ColAlign: []tabulate.Alignment{tabulate.AlignSame}}, tabulate.ErrInvalidConfig},
		"alignment out of range":     {testRows, tabulate.Options{NumAlign: tabulate.Alignment(42)}, tabulate.ErrInvalidConfig},
		"row alignment out of range": {testRows, tabulate.Options{RowAlign: tabulate.VerticalAlignment(9)}, tabulate.ErrInvalidConfig},
		"header mode out of range":   {testRows, tabulate.Options{HeaderMode: tabulate.HeaderMode(7)}, tabulate.ErrInvalidConfig},
		"negative padding":           {testRows, tabulate.Options{TableFormat: &tabulate.TableFormat{Padding: -1}}, tabulate.ErrInvalidConfig},
		"float width overflow":       {testRows, tabulate.Options{FloatFmt: "99999999999999999999f"}, tabulate.ErrInvalidConfig},
		"huge int precision":         {testRows, tabulate.Options{IntFmt: ".1000000d"}, tabulate.ErrInvalidConfig},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabulate.Render(tt.rows, tt.opts)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, got)
		})
	}
}

func TestRenderReportsEveryProblem(t *testing.T) {
	t.Parallel()
	_, err := tabulate.Render(testRows, tabulate.Options{Format: "nope", FloatFmt: "x", MaxColWidth: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, tabulate.ErrUnsupportedFormat)
	assert.ErrorIs(t, err, tabulate.ErrInvalidConfig)
	assert.Equal(t, 1, strings.Count(err.Error(), "floatfmt"))
}

// --- Write ---

func TestWrite(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := tabulate.Write(&buf, testRows, tabulate.Options{Format: tabulate.Plain})
	require.NoError(t, err)
	assert.Equal(t, "spam   41.9999\neggs  451\n", buf.String())
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, tabulate.Write(&buf, nil, tabulate.Options{}))
	assert.Empty(t, buf.String())
}

func TestWriteErrors(t *testing.T) {
	t.Parallel()
	err := tabulate.Write(&errWriter{}, testRows, tabulate.Options{})
	require.ErrorIs(t, err, errWriteFailed)

	var buf bytes.Buffer
	err = tabulate.Write(&buf, testRows, tabulate.Options{Format: "nope"})
	require.ErrorIs(t, err, tabulate.ErrUnsupportedFormat)
	assert.Empty(t, buf.String())
}

// --- Custom formats ---

func TestCustomTableFormat(t *testing.T) {
	t.Parallel()
	tf, err := tabulate.Lookup(tabulate.Simple)
	require.NoError(t, err)
	tf.LineBelowHeader = &tabulate.Line{Fill: "=", Sep: "  "}
	tf.HiddenWithHeader = nil

	got, err := tabulate.Render(testRows, tabulate.Options{TableFormat: &tf, Headers: testHeaders})
	require.NoError(t, err)
	assert.Equal(t, lines(
		"---------  ---------",
		"strings      numbers",
		"=========  =========",
		"spam         41.9999",
		"eggs        451",
		"---------  ---------",
	), got)
}

func TestCustomRowFunc(t *testing.T) {
	t.Parallel()
	row := tabulate.DataRow{Func: func(cells []string, _ []int, _ []tabulate.Alignment) string {
		return "<" + strings.Join(cells, ";") + ">"
	}}
	tf := tabulate.TableFormat{HeaderRow: row, DataRow: row}
	got, err := tabulate.Render([][]any{{"a", 1}}, tabulate.Options{TableFormat: &tf, Headers: []string{"x", "y"}})
	require.NoError(t, err)
	assert.Equal(t, "<x  ;  y>\n<a  ;  1>", got)
}

func TestParseAlignment(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		want    tabulate.Alignment
		wantErr bool
	}{
		"":         {tabulate.AlignDefault, false},
		"global":   {tabulate.AlignDefault, false},
		"left":     {tabulate.AlignLeft, false},
		"R":        {tabulate.AlignRight, false},
		"c":        {tabulate.AlignCenter, false},
		"decimal":  {tabulate.AlignDecimal, false},
		"none":     {tabulate.AlignNone, false},
		"same":     {tabulate.AlignSame, false},
		"sideways": {tabulate.AlignDefault, true},
	}
	for input, tt := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			got, err := tabulate.ParseAlignment(input)
			if tt.wantErr {
				require.ErrorIs(t, err, tabulate.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr[T any](v T) *T { return &v }

func inf() float64 { return math.Inf(1) }

func nan() float64 { return math.NaN() }
