package valfmt

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-valfmt/internal/lexer"
	"github.com/KimNorgaard/go-valfmt/internal/marshaler"
)

// coercion is one attempt at reading typed data out of text.
type coercion func(text string) (any, bool)

// coercions are tried in order; the first match wins.
var coercions = []coercion{
	coerceBool,
	coerceInt,
	coerceFloat,
	coerceJSON('[', ']'),
	coerceJSON('{', '}'),
}

// Coerce reads a typed value out of text: "true" and "false" become
// booleans, numeric literals become int64 or float64, JSON arrays and
// objects become []any and map[string]any, and anything else stays a
// string.
func Coerce(text string) any {
	for _, c := range coercions {
		if v, ok := c(text); ok {
			return v
		}
	}
	return text
}

// Literal is the inverse of Coerce: it renders v as literal text.
func Literal(v any) (string, error) {
	return marshaler.Text(v)
}

func coerceBool(text string) (any, bool) {
	switch text {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return nil, false
}

func coerceInt(text string) (any, bool) {
	if lexer.ClassifyNumber(text) != lexer.Integer {
		return nil, false
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, false
	}
	return n, true
}

func coerceFloat(text string) (any, bool) {
	if lexer.ClassifyNumber(text) == lexer.NotNumber {
		return nil, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, false
	}
	return f, true
}

func coerceJSON(open, close byte) coercion {
	return func(text string) (any, bool) {
		if len(text) < 2 || text[0] != open || text[len(text)-1] != close {
			return nil, false
		}
		dec := json.NewDecoder(strings.NewReader(text))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, false
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, false
		}
		return normalizeJSON(v), true
	}
}

// normalizeJSON replaces json.Number leaves with int64 or float64 using the
// same rules as the scalar coercions.
func normalizeJSON(v any) any {
	switch v := v.(type) {
	case json.Number:
		if n, ok := coerceInt(v.String()); ok {
			return n
		}
		if f, ok := coerceFloat(v.String()); ok {
			return f
		}
		return v.String()
	case []any:
		for i := range v {
			v[i] = normalizeJSON(v[i])
		}
	case map[string]any:
		for k := range v {
			v[k] = normalizeJSON(v[k])
		}
	}
	return v
}
