// Command tabulate pretty-prints tabular data.
//
//	tabulate [flags] [FILE ...]
//
// Each FILE (or standard input when none is given, or for "-") is read and
// rendered as its own table.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"

	"github.com/bjaus/tabulate"
	"github.com/bjaus/tabulate/ingest"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

type config struct {
	header     bool
	output     string
	sep        string
	floatFmt   string
	intFmt     string
	colAlign   string
	format     string
	input      string
	configFile string
	logLevel   string
	list       bool
}

func (c *config) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.header, "header", "1", false, "use the first row of data as a table header")
	fs.StringVarP(&c.output, "output", "o", "", "print table to `FILE` (default: stdout)")
	fs.StringVarP(&c.sep, "sep", "s", "", "use a custom column separator `REGEXP` for text input (default: whitespace)")
	fs.StringVarP(&c.floatFmt, "float", "F", "", "floating point number `FORMAT` (default: g)")
	fs.StringVarP(&c.intFmt, "int", "I", "", "integer point number `FORMAT`")
	fs.StringVarP(&c.colAlign, "colalign", "C", "", "column alignments, e.g. \"l r c d\"")
	fs.StringVarP(&c.format, "format", "f", "", "set output table `FORMAT` (default: simple)")
	fs.StringVar(&c.input, "input", "text", "input `KIND`: text, csv, tsv, json, jsonl or yaml")
	fs.StringVar(&c.configFile, "config", "", "load rendering options from a YAML `FILE`; flags take precedence")
	fs.StringVar(&c.logLevel, "log.level", "warn", "only log messages with the given severity or above: debug, info, warn, error")
	fs.BoolVar(&c.list, "list-formats", false, "print the supported table formats and exit")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg config
	fs := pflag.NewFlagSet("tabulate", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.register(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logger, err := newLogger(cfg.logLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	err = cfg.execute(fs, logger, stdin, stdout)
	if err != nil {
		level.Error(logger).Log("msg", "tabulate failed", "err", err)
	}
	return err
}

func newLogger(lvl string, w io.Writer) (log.Logger, error) {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, fmt.Errorf("unrecognized log level %q", lvl)
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	return level.NewFilter(logger, opt), nil
}

func (c *config) execute(fs *pflag.FlagSet, logger log.Logger, stdin io.Reader, stdout io.Writer) (err error) {
	if c.list {
		for _, f := range tabulate.Formats() {
			if _, err := fmt.Fprintln(stdout, f); err != nil {
				return err
			}
		}
		return nil
	}

	opts, err := c.options(fs)
	if err != nil {
		return err
	}

	out := stdout
	if c.output != "" {
		var f *os.File
		f, err = os.Create(c.output)
		if err != nil {
			return err
		}
		bw := bufio.NewWriter(f)
		defer func() {
			if flushErr := bw.Flush(); flushErr != nil && err == nil {
				err = fmt.Errorf("write %s: %w", c.output, flushErr)
			}
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", c.output, closeErr)
			}
		}()
		out = bw
	}

	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		level.Debug(logger).Log("msg", "reading input", "file", name, "kind", c.input)
		t, err := c.read(name, stdin)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		level.Debug(logger).Log("msg", "rendering table", "file", name, "rows", len(t.Rows), "format", opts.Format)
		if err := t.Write(out, opts); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// options builds rendering options from the config file, if any, and the
// flags set on the command line.
func (c *config) options(fs *pflag.FlagSet) (tabulate.Options, error) {
	var opts tabulate.Options
	if c.configFile != "" {
		f, err := os.Open(c.configFile)
		if err != nil {
			return opts, err
		}
		defer f.Close()
		if opts, err = tabulate.LoadOptions(f); err != nil {
			return opts, fmt.Errorf("%s: %w", c.configFile, err)
		}
	}
	if fs.Changed("header") && c.header {
		opts.HeaderMode = tabulate.HeadersFirstRow
	}
	if fs.Changed("float") {
		opts.FloatFmt = c.floatFmt
	}
	if fs.Changed("int") {
		opts.IntFmt = c.intFmt
	}
	if fs.Changed("format") {
		f, err := tabulate.ParseFormat(c.format)
		if err != nil {
			return opts, err
		}
		opts.Format = f
	}
	if fs.Changed("colalign") {
		opts.ColAlign = nil
		for _, word := range strings.Fields(c.colAlign) {
			a, err := tabulate.ParseAlignment(word)
			if err != nil {
				return opts, err
			}
			opts.ColAlign = append(opts.ColAlign, a)
		}
	}
	return opts, nil
}

func (c *config) read(name string, stdin io.Reader) (ingest.Table, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return ingest.Table{}, err
		}
		defer f.Close()
		r = f
	}
	switch c.input {
	case "text", "":
		return ingest.ReadFields(r, c.sep)
	case "csv":
		return ingest.ReadDelimited(r, ',')
	case "tsv":
		return ingest.ReadDelimited(r, '\t')
	case "json":
		return ingest.ReadJSON(r)
	case "jsonl":
		return ingest.ReadJSONLines(r)
	case "yaml":
		return ingest.ReadYAML(r)
	}
	return ingest.Table{}, fmt.Errorf("unknown input kind %q", c.input)
}
