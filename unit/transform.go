// Package unit defines the named bidirectional transforms a format spec
// refers to, and the registry that holds them.
package unit

// Hash maps a unit name to the raw fragment parsed for it.
type Hash map[string]any

// Transform converts one fragment of a value in both directions.
//
// Format receives the entire raw value for the occurrence being rendered and
// must derive its own fragment from it. Parse receives the substring matched
// for the unit and returns the raw fragment, or false when the text is not
// something the unit produces.
type Transform interface {
	Format(raw any) (string, error)
	Parse(text string) (any, bool)
}

// FormatFunc renders the fragment of raw a unit is responsible for.
type FormatFunc func(raw any) (string, error)

// ParseFunc recovers a raw fragment from matched text.
type ParseFunc func(text string) (any, bool)

type funcs struct {
	format FormatFunc
	parse  ParseFunc
}

func (f funcs) Format(raw any) (string, error) { return f.format(raw) }
func (f funcs) Parse(text string) (any, bool)  { return f.parse(text) }

// Funcs builds a Transform from a pair of functions. A nil parse accepts the
// matched text unchanged.
func Funcs(format FormatFunc, parse ParseFunc) Transform {
	if parse == nil {
		parse = identityParse
	}
	return funcs{format: format, parse: parse}
}

// Func builds a format-only Transform whose parse direction is the identity.
func Func(format func(raw any) string) Transform {
	return funcs{
		format: func(raw any) (string, error) { return format(raw), nil },
		parse:  identityParse,
	}
}

func identityParse(text string) (any, bool) { return text, true }
