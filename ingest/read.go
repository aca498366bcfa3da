package ingest

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/grafana/regexp"
	"gopkg.in/yaml.v3"
)

// ErrMalformed reports input that does not have the expected shape.
var ErrMalformed = errors.New("malformed input")

// ReadDelimited reads CSV-style records separated by sep. Records may have
// different lengths. Every cell is a string.
func ReadDelimited(r io.Reader, sep rune) (Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	var t Table
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return Table{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		t.Rows = append(t.Rows, toAny(rec))
	}
}

// ReadFields reads one row per non-blank line, splitting the line on
// matches of pattern. An empty pattern splits on runs of whitespace.
func ReadFields(r io.Reader, pattern string) (Table, error) {
	if pattern == "" {
		pattern = `\s+`
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Table{}, fmt.Errorf("%w: separator: %v", ErrMalformed, err)
	}
	var t Table
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r\n\v\f")
		if strings.TrimSpace(line) == "" {
			continue
		}
		t.Rows = append(t.Rows, toAny(re.Split(line, -1)))
	}
	if err := sc.Err(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// ReadJSON reads a JSON array of objects. Columns appear in the order their
// keys are first seen. Numbers keep their spelling.
func ReadJSON(r io.Reader) (Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return Table{}, fmt.Errorf("%w: expected a JSON array, got %v", ErrMalformed, tok)
	}
	var c collector
	for dec.More() {
		if err := c.decodeObject(dec); err != nil {
			return Table{}, err
		}
	}
	if _, err := dec.Token(); err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return c.table(), nil
}

// ReadJSONLines reads a stream of JSON objects, usually one per line.
func ReadJSONLines(r io.Reader) (Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var c collector
	for dec.More() {
		if err := c.decodeObject(dec); err != nil {
			return Table{}, err
		}
	}
	return c.table(), nil
}

// ReadYAML reads a YAML sequence of mappings. Columns appear in the order
// their keys are first seen.
func ReadYAML(r io.Reader) (Table, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, nil
		}
		return Table{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	seq := &doc
	if seq.Kind == yaml.DocumentNode && len(seq.Content) > 0 {
		seq = seq.Content[0]
	}
	if seq.Kind != yaml.SequenceNode {
		return Table{}, fmt.Errorf("%w: line %d: expected a sequence of mappings", ErrMalformed, seq.Line)
	}
	var c collector
	for _, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			return Table{}, fmt.Errorf("%w: line %d: expected a mapping", ErrMalformed, item.Line)
		}
		rec := make(map[string]any, len(item.Content)/2)
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, val := item.Content[i].Value, item.Content[i+1]
			var v any
			if err := val.Decode(&v); err != nil {
				return Table{}, fmt.Errorf("%w: line %d: %v", ErrMalformed, val.Line, err)
			}
			c.add(key, rec, scalar(v))
		}
		c.records = append(c.records, rec)
	}
	return c.table(), nil
}

// collector gathers records and remembers key order across them.
type collector struct {
	keys    []string
	seen    map[string]bool
	records []map[string]any
}

func (c *collector) add(key string, rec map[string]any, v any) {
	if c.seen == nil {
		c.seen = make(map[string]bool)
	}
	if !c.seen[key] {
		c.seen[key] = true
		c.keys = append(c.keys, key)
	}
	rec[key] = v
}

func (c *collector) decodeObject(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: expected a JSON object, got %v", ErrMalformed, tok)
	}
	return c.decodeFields(dec)
}

// decodeFields reads the members of an object whose opening brace has been
// consumed, and the closing brace.
func (c *collector) decodeFields(dec *json.Decoder) error {
	rec := make(map[string]any)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: expected an object key, got %v", ErrMalformed, tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		c.add(key, rec, scalar(v))
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	c.records = append(c.records, rec)
	return nil
}

// scalar flattens nested JSON values to their compact encoding so they
// render as a single cell.
func scalar(v any) any {
	switch v.(type) {
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
	return v
}

func (c *collector) table() Table {
	return fromRecords(c.keys, c.records)
}
