package tabulate

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadOptions reads Options from a YAML document. Keys match the yaml tags
// of Options and enumerations are spelled as words:
//
//	format: grid
//	floatfmt: .2f
//	colalign: [left, right, decimal]
//	headersalign: [same, center]
//
// An empty document yields the zero Options.
func LoadOptions(r io.Reader) (Options, error) {
	var opts Options
	if err := decodeYAML(r, &opts); err != nil {
		return Options{}, err
	}
	if opts.Format != "" {
		if _, err := ParseFormat(string(opts.Format)); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

// LoadTableFormat reads a custom dialect from a YAML document. Rows and
// lines are described by their literal strings; function-drawn dialects
// cannot be expressed this way.
func LoadTableFormat(r io.Reader) (TableFormat, error) {
	var tf TableFormat
	if err := decodeYAML(r, &tf); err != nil {
		return TableFormat{}, err
	}
	if tf.Padding < 0 {
		return TableFormat{}, fmt.Errorf("%w: padding is negative (%d)", ErrInvalidConfig, tf.Padding)
	}
	return tf, nil
}

// SaveOptions writes opts as a YAML document that LoadOptions reads back.
func SaveOptions(w io.Writer, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(opts); err != nil {
		return err
	}
	return enc.Close()
}

func decodeYAML(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
