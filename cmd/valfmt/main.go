// Command valfmt formats values into text and parses text back into values
// using the engine a YAML element description configures.
//
// Usage:
//
//	valfmt [flags] format <value>
//	valfmt [flags] parse <text>
//	valfmt [flags] repl
//
// Flags:
//
//	-config string     Element description (YAML)
//	-multiple          Allow multiple values
//	-range             Allow ranges
//	-log-level string  Log level: debug, info, warn, error (default "warn")
//
// Values given to format are read the way an untyped element reads text:
// JSON arrays and objects, numbers and booleans are decoded, anything else
// is a string.
//
// Examples:
//
//	# Render a multiple of ranges with the default templates
//	valfmt -multiple -range format '[1,[10,15],20]'
//
//	# Parse roman numerals with a configured element
//	valfmt -config roman.yaml parse 'value: I, value: II to value: IV'
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/KimNorgaard/go-valfmt"
	"github.com/KimNorgaard/go-valfmt/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	config   string
	multiple bool
	rng      bool
	logLevel string
	set      map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, []string, error) {
	fs := flag.NewFlagSet("valfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &flags{set: make(map[string]bool)}
	fs.StringVar(&f.config, "config", "", "Element description (YAML)")
	fs.BoolVar(&f.multiple, "multiple", false, "Allow multiple values")
	fs.BoolVar(&f.rng, "range", false, "Allow ranges")
	fs.StringVar(&f.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: valfmt [flags] format <value> | parse <text> | repl")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, fs.Args(), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	f, rest, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if len(rest) == 0 {
		fmt.Fprintln(stderr, "valfmt: missing command")
		return 2
	}

	logger, err := newLogger(f.logLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "valfmt: %v\n", err)
		return 2
	}

	engine, err := newEngine(f, logger)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	cmd, input := rest[0], strings.Join(rest[1:], " ")
	switch cmd {
	case "format":
		out, err := formatValue(engine, input)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, out)
	case "parse":
		out, err := parseText(engine, input)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, out)
	case "repl":
		r, err := newREPL(engine)
		if err != nil {
			fmt.Fprintf(stderr, "valfmt: %v\n", err)
			return 1
		}
		r.Run()
	default:
		fmt.Fprintf(stderr, "valfmt: unknown command %q\n", cmd)
		return 2
	}
	return 0
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

// newEngine builds the engine from the config file, if any. Flags given on
// the command line override the configured shape.
func newEngine(f *flags, logger *slog.Logger) (*valfmt.Engine, error) {
	c := &config.Config{}
	if f.config != "" {
		var err error
		if c, err = config.LoadFile(f.config); err != nil {
			return nil, err
		}
	}
	if f.set["multiple"] {
		c.AllowMultiple = f.multiple
	}
	if f.set["range"] {
		c.AllowRange = f.rng
	}
	return c.Engine(valfmt.WithLogger(logger))
}

func formatValue(e *valfmt.Engine, input string) (string, error) {
	return e.Format(valfmt.Coerce(input))
}

func parseText(e *valfmt.Engine, input string) (string, error) {
	v, err := e.Parse(input)
	if err != nil {
		return "", err
	}
	return valfmt.Literal(v)
}
