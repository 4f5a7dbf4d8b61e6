package composer

import (
	"fmt"
	"strings"

	valerr "github.com/KimNorgaard/go-valfmt/errors"
	"github.com/KimNorgaard/go-valfmt/internal/template"
)

// FormatRange renders pair with tmpl. pair must hold exactly two elements.
func FormatRange(format FormatFunc, tmpl template.Range, pair []any) (string, error) {
	if len(pair) != 2 {
		return "", &valerr.ShapeError{Shape: "range", Value: pair, Msg: fmt.Sprintf("need exactly 2 elements, got %d", len(pair))}
	}
	from, err := format(pair[0])
	if err != nil {
		return "", err
	}
	to, err := format(pair[1])
	if err != nil {
		return "", err
	}
	return tmpl.Pre + from + tmpl.Mid + to + tmpl.Post, nil
}

// ParseRange splits text on the anchors of tmpl and parses both halves.
// The separator must occur exactly once between the prefix and suffix.
func ParseRange(parse ParseFunc, tmpl template.Range, text string) (from, to any, err error) {
	body, err := strip(text, tmpl.Pre, tmpl.Post)
	if err != nil {
		return nil, nil, err
	}
	switch strings.Count(body, tmpl.Mid) {
	case 0:
		return nil, nil, &valerr.FormatMismatchError{Anchor: tmpl.Mid, Offset: len(tmpl.Pre), Input: text, Msg: "range separator not found"}
	case 1:
	default:
		return nil, nil, &valerr.FormatMismatchError{Anchor: tmpl.Mid, Offset: len(tmpl.Pre), Input: text, Msg: "range separator is ambiguous"}
	}
	a, b, _ := strings.Cut(body, tmpl.Mid)
	if from, err = parse(a); err != nil {
		return nil, nil, err
	}
	if to, err = parse(b); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

// strip removes the prefix and suffix anchors of a template from text.
func strip(text, pre, post string) (string, error) {
	if !strings.HasPrefix(text, pre) {
		return "", &valerr.FormatMismatchError{Anchor: pre, Input: text, Msg: "text does not start with the expected literal"}
	}
	if len(text) < len(pre)+len(post) || !strings.HasSuffix(text, post) {
		return "", &valerr.FormatMismatchError{Anchor: post, Offset: len(pre), Input: text, Msg: "text does not end with the expected literal"}
	}
	return text[len(pre) : len(text)-len(post)], nil
}
