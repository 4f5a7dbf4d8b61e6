package valfmt

import (
	"log/slog"

	"github.com/KimNorgaard/go-valfmt/internal/template"
	"github.com/KimNorgaard/go-valfmt/unit"
)

// Option configures an Engine.
type Option func(*options) error

// FormatUnitFunc decorates the default FormatUnit hook. It receives the
// result of the default (the unit hash itself) and returns the attribute
// value to use instead.
type FormatUnitFunc func(base any) (any, error)

// ParseUnitFunc decorates the default ParseUnit hook. It receives the hash
// extracted from the text and may post-process it.
type ParseUnitFunc func(base unit.Hash) (unit.Hash, error)

type options struct {
	format         string
	registry       *unit.Registry
	allowMultiple  bool
	allowRange     bool
	formatMultiple string
	formatRange    string
	formatUnit     FormatUnitFunc
	parseUnit      ParseUnitFunc
	logger         *slog.Logger
}

func defaultOptions() options {
	return options{
		registry:       unit.NewRegistry(),
		formatMultiple: template.DefaultMultiple,
		formatRange:    template.DefaultRange,
	}
}

// WithFormat sets the format spec scalars are rendered with. A format spec
// requires at least one unit.
func WithFormat(spec string) Option {
	return func(o *options) error {
		o.format = spec
		return nil
	}
}

// WithUnit registers a transform under name. Names are case-sensitive and
// may be a single character or a whole word.
func WithUnit(name string, t unit.Transform) Option {
	return func(o *options) error {
		if err := o.registry.Register(name, t); err != nil {
			return configErr("formats", "cannot register unit", err)
		}
		return nil
	}
}

// WithUnits registers every transform of units.
func WithUnits(units map[string]unit.Transform) Option {
	return func(o *options) error {
		for name, t := range units {
			if err := WithUnit(name, t)(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// AllowMultiple makes the engine format and parse collections of values.
func AllowMultiple(allow bool) Option {
	return func(o *options) error {
		o.allowMultiple = allow
		return nil
	}
}

// AllowRange makes the engine format and parse (from, to) pairs. Combined
// with AllowMultiple, each element of a collection may be a range.
func AllowRange(allow bool) Option {
	return func(o *options) error {
		o.allowRange = allow
		return nil
	}
}

// WithFormatMultiple sets the multiple template, "{, |, }" by default. The
// text before '{' prefixes the output, the text between '{' and '|'
// separates interior items, the text between '|' and '}' precedes the last
// item and the text after '}' ends the output.
func WithFormatMultiple(spec string) Option {
	return func(o *options) error {
		o.formatMultiple = spec
		return nil
	}
}

// WithFormatRange sets the range template, "{ - }" by default.
func WithFormatRange(spec string) Option {
	return func(o *options) error {
		o.formatRange = spec
		return nil
	}
}

// WithFormatUnit decorates the FormatUnit hook, which turns a parsed unit
// hash into the attribute value.
func WithFormatUnit(fn FormatUnitFunc) Option {
	return func(o *options) error {
		if fn == nil {
			return configErr("formatUnit", "hook must not be nil", nil)
		}
		o.formatUnit = fn
		return nil
	}
}

// WithParseUnit decorates the ParseUnit hook, which extracts the unit hash
// from text.
func WithParseUnit(fn ParseUnitFunc) Option {
	return func(o *options) error {
		if fn == nil {
			return configErr("parseUnit", "hook must not be nil", nil)
		}
		o.parseUnit = fn
		return nil
	}
}

// WithLogger sets the logger debug records are written to. Nothing is
// logged by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		o.logger = l
		return nil
	}
}
