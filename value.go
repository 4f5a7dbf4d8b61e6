package valfmt

import "reflect"

// Range is a pair of scalars, rendered through the range template.
type Range struct {
	From any
	To   any
}

// Multiple is an ordered collection of scalars or ranges, rendered through
// the multiple template.
type Multiple []any

// asList reports the elements of v when v is a Multiple or any other slice
// or array. Strings and byte slices are scalars.
func asList(v any) ([]any, bool) {
	switch v := v.(type) {
	case Multiple:
		return []any(v), true
	case []any:
		return v, true
	case string, []byte, Range:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asPair reports the elements of v when v can be read as a range. The
// number of elements is checked by the range composer.
func asPair(v any) ([]any, bool) {
	switch v := v.(type) {
	case Range:
		return []any{v.From, v.To}, true
	case *Range:
		if v == nil {
			return nil, false
		}
		return []any{v.From, v.To}, true
	case Multiple:
		return nil, false
	}
	return asList(v)
}

// isComposite reports whether v is one of the named composite types.
func isComposite(v any) bool {
	switch v.(type) {
	case Range, *Range, Multiple:
		return true
	}
	return false
}
