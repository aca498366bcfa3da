package tabulate

import (
	"io"
	"iter"
)

// RenderIter renders rows produced by seq. Column widths depend on every
// row, so seq is consumed completely before anything is rendered.
func RenderIter(seq iter.Seq[[]any], opts Options) (string, error) {
	return Render(collect(seq), opts)
}

// WriteIter renders rows produced by seq and writes the table to w.
// See [RenderIter].
func WriteIter(w io.Writer, seq iter.Seq[[]any], opts Options) error {
	return Write(w, collect(seq), opts)
}

// WriteChan renders rows received from ch until it is closed.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, ch <-chan []any, opts Options) error {
	return WriteIter(w, chanToIter(ch), opts)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func collect(seq iter.Seq[[]any]) [][]any {
	var rows [][]any
	for row := range seq {
		rows = append(rows, row)
	}
	return rows
}
