// Package composer applies compiled formats and templates to values.
//
// Units renders and extracts the unit fragments of a single value. The range
// and multiple composers wrap a scalar formatter/parser pair with a template;
// a multiple may wrap a range, never anything deeper.
package composer

// FormatFunc renders one element of a composite value.
type FormatFunc func(v any) (string, error)

// ParseFunc recovers one element of a composite value.
type ParseFunc func(text string) (any, error)
