package valfmt

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/KimNorgaard/go-valfmt/internal/ast"
	"github.com/KimNorgaard/go-valfmt/internal/composer"
	"github.com/KimNorgaard/go-valfmt/internal/lexer"
	"github.com/KimNorgaard/go-valfmt/internal/parser"
	"github.com/KimNorgaard/go-valfmt/internal/template"
	"github.com/KimNorgaard/go-valfmt/unit"
)

// Engine formats attribute values into text and parses text back into
// attribute values. Its configuration is fixed by New; an Engine is safe
// for concurrent use.
type Engine struct {
	opts     options
	units    *composer.Units // nil without a format spec
	rng      template.Range
	multiple template.Multiple
	log      *slog.Logger
}

// Settings describes the effective configuration of an Engine.
type Settings struct {
	Format         string
	Units          []string
	AllowMultiple  bool
	AllowRange     bool
	FormatMultiple string
	FormatRange    string
}

// New returns an Engine configured by opts. Configuration problems are
// reported as a *ConfigurationError.
func New(opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	e := &Engine{opts: o, log: o.logger}
	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}

	switch {
	case o.format != "" && o.registry.Len() == 0:
		return nil, configErr("format", fmt.Sprintf("%q needs at least one unit", o.format), nil)
	case o.format == "" && o.registry.Len() > 0:
		return nil, configErr("formats", "units are registered but no format is set", nil)
	case o.format != "":
		f, err := compile(o.format, o.registry.Names())
		if err != nil {
			return nil, err
		}
		e.units = &composer.Units{Format: f, Registry: o.registry}
	}

	var err error
	if e.rng, err = template.CompileRange(o.formatRange); err != nil {
		return nil, configErr("formatRange", "cannot compile template", err)
	}
	if e.multiple, err = template.CompileMultiple(o.formatMultiple); err != nil {
		return nil, configErr("formatMultiple", "cannot compile template", err)
	}

	e.log.Debug("valfmt: engine configured",
		slog.String("format", o.format),
		slog.Any("units", o.registry.Names()),
		slog.Bool("allow_multiple", o.allowMultiple),
		slog.Bool("allow_range", o.allowRange),
	)
	return e, nil
}

type cacheKey struct {
	spec  string
	names string
}

// formatCache caches compiled formats by spec and unit names. Compiling is
// pure, so entries are shared by every engine.
var formatCache sync.Map

func compile(spec string, names []string) (*ast.Format, error) {
	key := cacheKey{spec: spec, names: strings.Join(names, "\x00")}
	if f, ok := formatCache.Load(key); ok {
		return f.(*ast.Format), nil
	}

	p := parser.New(lexer.New(spec, names))
	f := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, configErr("format", fmt.Sprintf("cannot compile %q", spec), errors.New(strings.Join(errs, "; ")))
	}
	if len(f.Units()) == 0 {
		return nil, configErr("format", fmt.Sprintf("%q references no registered unit", spec), nil)
	}
	f.Source = spec

	formatCache.Store(key, f)
	return f, nil
}

// Settings returns the effective configuration.
func (e *Engine) Settings() Settings {
	return Settings{
		Format:         e.opts.format,
		Units:          e.opts.registry.Names(),
		AllowMultiple:  e.opts.allowMultiple,
		AllowRange:     e.opts.allowRange,
		FormatMultiple: e.multiple.String(),
		FormatRange:    e.rng.String(),
	}
}

// Format renders v as text. The shape of v must match the configuration:
// with AllowMultiple it must be a Multiple (or any slice), with AllowRange
// alone a Range (or a two-element slice), otherwise a scalar. nil renders
// as the empty string for every shape.
func (e *Engine) Format(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	switch {
	case e.opts.allowMultiple:
		items, ok := asList(v)
		if !ok {
			return "", &ShapeError{Shape: "multiple", Value: v}
		}
		return composer.FormatMultiple(e.formatItem, e.multiple, items)
	case e.opts.allowRange:
		return e.formatRange(v)
	}
	return e.formatScalar(v)
}

func (e *Engine) formatItem(v any) (string, error) {
	if e.opts.allowRange {
		if _, ok := asPair(v); ok {
			return e.formatRange(v)
		}
	}
	return e.formatScalar(v)
}

func (e *Engine) formatRange(v any) (string, error) {
	pair, ok := asPair(v)
	if !ok {
		return "", &ShapeError{Shape: "range", Value: v}
	}
	return composer.FormatRange(e.formatEndpoint, e.rng, pair)
}

// formatEndpoint formats one end of a range. Any list is rejected, not
// just the named composite types.
func (e *Engine) formatEndpoint(v any) (string, error) {
	if _, ok := asList(v); ok {
		return "", &ShapeError{Shape: "scalar", Value: v, Msg: "range endpoints must be scalars"}
	}
	return e.formatScalar(v)
}

func (e *Engine) formatScalar(v any) (string, error) {
	if isComposite(v) {
		return "", &ShapeError{Shape: "scalar", Value: v, Msg: "composite values nest one level at most"}
	}
	if e.units == nil {
		return Literal(v)
	}
	return e.units.Render(v)
}

// Parse recovers an attribute value from text, composing in the reverse
// order of Format: a Multiple outermost, then a Range, then the unit hash
// of a scalar. Without a format spec scalars are coerced with Coerce. The
// empty string parses as nil.
func (e *Engine) Parse(text string) (any, error) {
	if text == "" {
		return nil, nil
	}
	switch {
	case e.opts.allowMultiple:
		items, err := composer.ParseMultiple(e.parseItem, e.multiple, text)
		if err != nil {
			return nil, err
		}
		return Multiple(items), nil
	case e.opts.allowRange:
		return e.parseRange(text)
	}
	return e.parseScalar(text)
}

// parseItem reads an element of a collection as a range when its range
// anchors are present and as a scalar otherwise. Any anchor mismatch falls
// back to the scalar reading, including a literal missing from an endpoint:
// "v:a - x:b" with format "v:Y" is the scalar "a - x:b". Unit rejections
// are returned as is.
func (e *Engine) parseItem(text string) (any, error) {
	if !e.opts.allowRange {
		return e.parseScalar(text)
	}
	r, err := e.parseRange(text)
	var mismatch *FormatMismatchError
	if errors.As(err, &mismatch) && mismatch.Unit == "" && mismatch.Anchor != "" {
		return e.parseScalar(text)
	}
	return r, err
}

func (e *Engine) parseRange(text string) (any, error) {
	from, to, err := composer.ParseRange(e.parseScalar, e.rng, text)
	if err != nil {
		return nil, err
	}
	return Range{From: from, To: to}, nil
}

func (e *Engine) parseScalar(text string) (any, error) {
	if e.units == nil {
		return Coerce(text), nil
	}
	hash, err := e.ParseUnit(text)
	if err != nil {
		return nil, err
	}
	return e.FormatUnit(hash)
}

// FormatUnit turns a parsed unit hash into the attribute value. By default
// it returns x unchanged; a WithFormatUnit hook receives that result and may
// collapse the hash into a single value.
func (e *Engine) FormatUnit(x any) (any, error) {
	if e.opts.formatUnit == nil {
		return x, nil
	}
	return e.opts.formatUnit(x)
}

// ParseUnit extracts the unit hash of a single formatted scalar. Without a
// format spec it returns an empty hash.
func (e *Engine) ParseUnit(text string) (unit.Hash, error) {
	if e.units == nil {
		return unit.Hash{}, nil
	}
	hash, err := e.units.Extract(text)
	if err != nil {
		return nil, err
	}
	if e.opts.parseUnit == nil {
		return hash, nil
	}
	return e.opts.parseUnit(hash)
}
