package unit

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// String renders a raw value as text. nil and nil pointers render as the
// empty string.
func String(raw any) string {
	if rv := reflect.ValueOf(raw); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ""
	}
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(raw)
}

// Identity renders the raw value as text and parses text back unchanged.
func Identity() Transform {
	return Func(String)
}

// Field renders hash[key] when the raw value is a Hash (or a string keyed
// map), and the raw value itself otherwise. Parsing is the identity, so a
// Field transform round-trips the hashes an engine's parse produces.
func Field(key string) Transform {
	return Func(func(raw any) string {
		switch m := raw.(type) {
		case Hash:
			return String(m[key])
		case map[string]any:
			return String(m[key])
		}
		return String(raw)
	})
}

// Upper renders the value upper-cased. Case folding is lossy: the parse
// direction returns the text as written.
func Upper() Transform {
	return Func(func(raw any) string { return strings.ToUpper(String(raw)) })
}

// Lower renders the value lower-cased. Like Upper it is not a true inverse.
func Lower() Transform {
	return Func(func(raw any) string { return strings.ToLower(String(raw)) })
}

// Lookup renders a value through table, keyed by the value's text form.
// Parsing accepts only texts present in the table and returns their key.
func Lookup(table map[string]string) Transform {
	reverse := make(map[string]string, len(table))
	for k, v := range table {
		reverse[v] = k
	}
	return Funcs(
		func(raw any) (string, error) {
			key := String(raw)
			text, ok := table[key]
			if !ok {
				return "", fmt.Errorf("no entry for %q", key)
			}
			return text, nil
		},
		func(text string) (any, bool) {
			key, ok := reverse[text]
			return key, ok
		},
	)
}

// Pattern renders the value's text form and parses with re. The first
// capture group is returned when re has one, the whole match otherwise.
func Pattern(expr string) (Transform, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("unit: invalid pattern: %w", err)
	}
	return Funcs(
		func(raw any) (string, error) { return String(raw), nil },
		func(text string) (any, bool) {
			m := re.FindStringSubmatch(text)
			if m == nil {
				return nil, false
			}
			if len(m) > 1 {
				return m[1], true
			}
			return m[0], true
		},
	), nil
}
