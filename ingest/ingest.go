// Package ingest normalizes common input shapes into the rows and headers
// that [tabulate.Render] consumes.
//
// Every adapter returns a [Table]. Headers are filled in when the input
// carries names (map keys, struct fields, [Headed] records); otherwise they
// are left empty and the caller picks a [tabulate.HeaderMode].
package ingest

import (
	"io"
	"iter"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/bjaus/tabulate"
)

// Table is the canonical form: optional headers and rows of cell values.
type Table struct {
	Headers []string
	Rows    [][]any
}

// Options returns opts with the table's headers filled in, unless opts
// already selects headers of its own.
func (t Table) Options(opts tabulate.Options) tabulate.Options {
	if len(opts.Headers) == 0 && opts.HeaderMode == tabulate.HeadersExplicit {
		opts.Headers = t.Headers
	}
	return opts
}

// Render renders the table. See [Table.Options].
func (t Table) Render(opts tabulate.Options) (string, error) {
	return tabulate.Render(t.Rows, t.Options(opts))
}

// Write renders the table to w. See [Table.Options].
func (t Table) Write(w io.Writer, opts tabulate.Options) error {
	return tabulate.Write(w, t.Rows, t.Options(opts))
}

// Rower provides the cells of one record.
type Rower interface {
	Row() []string
}

// Headed provides column headers. It is checked on the first record only.
type Headed interface {
	Header() []string
}

// Grouped returns a group key for the record. A separating line is placed
// between consecutive records with different keys.
type Grouped interface {
	Group() string
}

// FromRows wraps rows that are already in canonical form.
func FromRows(rows [][]any) Table {
	return Table{Rows: rows}
}

// FromStrings converts rows of strings.
func FromStrings(rows [][]string) Table {
	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = toAny(r)
	}
	return Table{Rows: out}
}

// FromSeq consumes seq completely.
func FromSeq(seq iter.Seq[[]any]) Table {
	var rows [][]any
	for r := range seq {
		rows = append(rows, r)
	}
	return Table{Rows: rows}
}

// FromMaps converts a sequence of mappings. Columns follow keys when given;
// otherwise each record contributes its new keys in sorted order. Keys a
// record lacks are missing values.
func FromMaps(records []map[string]any, keys ...string) Table {
	if len(keys) == 0 {
		seen := make(map[string]bool)
		for _, rec := range records {
			var fresh []string
			for k := range rec {
				if !seen[k] {
					seen[k] = true
					fresh = append(fresh, k)
				}
			}
			sort.Strings(fresh)
			keys = append(keys, fresh...)
		}
	}
	return fromRecords(keys, records)
}

func fromRecords(keys []string, records []map[string]any) Table {
	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(keys))
		for j, k := range keys {
			row[j] = rec[k]
		}
		rows[i] = row
	}
	return Table{Headers: slices.Clone(keys), Rows: rows}
}

// FromColumns converts a mapping of column name to values. Columns follow
// keys when given, sorted names otherwise. Short columns are padded with
// missing values.
func FromColumns(columns map[string][]any, keys ...string) Table {
	if len(keys) == 0 {
		for k := range columns {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}
	n := 0
	for _, k := range keys {
		n = max(n, len(columns[k]))
	}
	rows := make([][]any, n)
	for i := range rows {
		row := make([]any, len(keys))
		for j, k := range keys {
			if col := columns[k]; i < len(col) {
				row[j] = col[i]
			}
		}
		rows[i] = row
	}
	return Table{Headers: slices.Clone(keys), Rows: rows}
}

// FromRowers converts records that describe their own cells.
func FromRowers[T Rower](items []T) Table {
	var t Table
	if len(items) == 0 {
		return t
	}
	if h, ok := any(items[0]).(Headed); ok {
		t.Headers = h.Header()
	}
	var group string
	for i, item := range items {
		if g, ok := any(item).(Grouped); ok {
			if key := g.Group(); i > 0 && key != group {
				t.Rows = append(t.Rows, tabulate.SeparatingLine)
				group = key
			} else if i == 0 {
				group = key
			}
		}
		t.Rows = append(t.Rows, toAny(item.Row()))
	}
	return t
}

// FromStructs converts a slice of structs or struct pointers. Exported
// fields become columns named by their `table` tag, or the field name.
// A tag of "-" skips the field. Fields of embedded structs are promoted.
func FromStructs[T any](items []T) Table {
	typ := reflect.TypeFor[T]()
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		rows := make([][]any, len(items))
		for i, item := range items {
			rows[i] = []any{item}
		}
		return Table{Rows: rows}
	}

	type column struct {
		name  string
		index []int
	}
	var cols []column
	for _, f := range reflect.VisibleFields(typ) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("table"); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		cols = append(cols, column{name: name, index: f.Index})
	}

	t := Table{Headers: make([]string, len(cols))}
	for i, c := range cols {
		t.Headers[i] = c.name
	}
	for _, item := range items {
		v := reflect.ValueOf(item)
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				break
			}
			v = v.Elem()
		}
		row := make([]any, len(cols))
		if v.Kind() == reflect.Struct {
			for i, c := range cols {
				row[i] = fieldValue(v, c.index)
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// fieldValue returns the field at index, or nil when it sits behind a nil
// pointer or is itself a nil pointer.
func fieldValue(v reflect.Value, index []int) any {
	f, err := v.FieldByIndexErr(index)
	if err != nil {
		return nil
	}
	for f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface {
		if f.IsNil() {
			return nil
		}
		if f.Kind() == reflect.Interface {
			break
		}
		f = f.Elem()
	}
	return f.Interface()
}

func toAny(cells []string) []any {
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
