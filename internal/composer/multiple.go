package composer

import (
	"strings"

	valerr "github.com/KimNorgaard/go-valfmt/errors"
	"github.com/KimNorgaard/go-valfmt/internal/template"
)

// FormatMultiple renders items with tmpl. The first item follows Pre,
// interior items follow MidSep and the last item follows LastSep.
func FormatMultiple(format FormatFunc, tmpl template.Multiple, items []any) (string, error) {
	if len(items) == 0 {
		return "", &valerr.ShapeError{Shape: "multiple", Value: items, Msg: "need at least one element"}
	}
	var out strings.Builder
	out.WriteString(tmpl.Pre)
	for i, item := range items {
		switch {
		case i == 0:
		case i == len(items)-1:
			out.WriteString(tmpl.LastSep)
		default:
			out.WriteString(tmpl.MidSep)
		}
		s, err := format(item)
		if err != nil {
			return "", err
		}
		out.WriteString(s)
	}
	out.WriteString(tmpl.Post)
	return out.String(), nil
}

// ParseMultiple splits text into items and parses each in order. The last
// item starts after the final LastSep; everything before it is split on
// MidSep. Without a LastSep the whole body is split on MidSep.
func ParseMultiple(parse ParseFunc, tmpl template.Multiple, text string) ([]any, error) {
	body, err := strip(text, tmpl.Pre, tmpl.Post)
	if err != nil {
		return nil, err
	}
	var parts []string
	if i := strings.LastIndex(body, tmpl.LastSep); i >= 0 && tmpl.LastSep != tmpl.MidSep {
		parts = append(strings.Split(body[:i], tmpl.MidSep), body[i+len(tmpl.LastSep):])
	} else {
		parts = strings.Split(body, tmpl.MidSep)
	}
	items := make([]any, 0, len(parts))
	for _, part := range parts {
		v, err := parse(part)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}
