// Package template compiles the range and multiple templates. Both use the
// fixed markers '{', '|' and '}' to separate their slots.
package template

import (
	"fmt"
	"strings"
)

// Template markers.
const (
	Open  = "{"
	Split = "|"
	Close = "}"
)

// Default template specs.
const (
	DefaultRange    = "{ - }"
	DefaultMultiple = "{, |, }"
)

// Range renders a pair as Pre + from + Mid + to + Post.
type Range struct {
	Pre  string
	Mid  string
	Post string
}

// String returns the template text.
func (r Range) String() string {
	return r.Pre + Open + r.Mid + Close + r.Post
}

// Multiple renders a collection as Pre + first + (MidSep + item)... +
// LastSep + last + Post.
type Multiple struct {
	Pre     string
	MidSep  string
	LastSep string
	Post    string
}

// String returns the template text.
func (m Multiple) String() string {
	return m.Pre + Open + m.MidSep + Split + m.LastSep + Close + m.Post
}

// CompileRange compiles a range spec such as "{ - }" or "From: {. To: }.".
func CompileRange(spec string) (Range, error) {
	if strings.Contains(spec, Split) {
		return Range{}, fmt.Errorf("range template %q must not contain %q", spec, Split)
	}
	pre, rest, err := cutOnce(spec, Open)
	if err != nil {
		return Range{}, err
	}
	mid, post, err := cutOnce(rest, Close)
	if err != nil {
		return Range{}, err
	}
	if strings.Contains(pre, Close) {
		return Range{}, fmt.Errorf("template %q has %q before %q", spec, Close, Open)
	}
	if mid == "" {
		return Range{}, fmt.Errorf("range template %q has an empty separator", spec)
	}
	return Range{Pre: pre, Mid: mid, Post: post}, nil
}

// CompileMultiple compiles a multiple spec such as "{, |, }".
func CompileMultiple(spec string) (Multiple, error) {
	pre, rest, err := cutOnce(spec, Open)
	if err != nil {
		return Multiple{}, err
	}
	midSep, rest, err := cutOnce(rest, Split)
	if err != nil {
		return Multiple{}, err
	}
	lastSep, post, err := cutOnce(rest, Close)
	if err != nil {
		return Multiple{}, err
	}
	if strings.ContainsAny(pre, Split+Close) || strings.Contains(midSep, Close) {
		return Multiple{}, fmt.Errorf("template %q must contain %q, %q and %q in that order", spec, Open, Split, Close)
	}
	if midSep == "" || lastSep == "" {
		return Multiple{}, fmt.Errorf("multiple template %q has an empty separator", spec)
	}
	return Multiple{Pre: pre, MidSep: midSep, LastSep: lastSep, Post: post}, nil
}

// cutOnce splits s around the only occurrence of marker.
func cutOnce(s, marker string) (before, after string, err error) {
	switch strings.Count(s, marker) {
	case 0:
		return "", "", fmt.Errorf("template %q is missing %q", s, marker)
	case 1:
		before, after, _ = strings.Cut(s, marker)
		return before, after, nil
	}
	return "", "", fmt.Errorf("template %q contains %q more than once", s, marker)
}
