// Package tabulate lays out rows of mixed values as plain-text tables.
//
// The central entry points are [Render] and [Write], which take rows of
// arbitrary values and an [Options] value. The zero Options renders the
// "simple" format:
//
//	s, err := tabulate.Render([][]any{
//		{"spam", 41.9999},
//		{"eggs", "451.0"},
//	}, tabulate.Options{Headers: []string{"strings", "numbers"}})
//
//	strings      numbers
//	---------  ---------
//	spam         41.9999
//	eggs        451
//
// # Column Types
//
// Every cell is classified as none, bool, int, float or text, and a column
// takes the most general kind among its cells. Numeric strings count as
// numbers unless numeric parsing is disabled. Numeric columns are formatted
// with [Options.FloatFmt] and [Options.IntFmt] and aligned on the decimal
// point by default; text is left aligned.
//
// # Formats
//
// A [Format] names one of the registered dialects; see [Formats] for the
// full list. [Lookup] returns a copy of a dialect's [TableFormat], which can
// be modified and passed back through [Options.TableFormat]. Custom dialects
// can also be built with [SeparatedFormat] or loaded with [LoadTableFormat].
//
// # Wrapping and Width
//
// Cells and headers wider than [Options.MaxColWidth] are wrapped onto
// several lines. Widths are measured in terminal columns: escape sequences
// are invisible and East Asian wide characters take two columns unless
// [Options.DisableWideChars] is set.
//
// # Separating Lines
//
// A [SeparatingLine] row draws a horizontal rule between the rows around
// it. It takes no part in typing, widths or the row index.
//
// # Errors
//
// Configuration problems are reported before anything is rendered, all at
// once, and match [ErrInvalidConfig] or [ErrUnsupportedFormat] with
// [errors.Is]. Values never cause an error: malformed numbers are text.
package tabulate
