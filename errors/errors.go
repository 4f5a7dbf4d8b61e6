// Package errors defines the error taxonomy shared by the valfmt engine and
// its internal composers.
package errors

import (
	"errors"
	"fmt"
)

// Sentinels that match the corresponding error types through errors.Is.
var (
	ErrConfiguration  = errors.New("valfmt: configuration error")
	ErrShape          = errors.New("valfmt: shape error")
	ErrFormatMismatch = errors.New("valfmt: format mismatch")
)

// ConfigurationError reports an invalid engine configuration. It is raised
// at construction time and never recovered.
type ConfigurationError struct {
	Option string // the offending option, e.g. "format" or "formatRange"
	Msg    string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := "valfmt: invalid " + e.Option + ": " + e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// ShapeError reports a value that does not match the configured scalar,
// range or multiple shape.
type ShapeError struct {
	Shape string // expected shape
	Value any
	Msg   string
}

func (e *ShapeError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("valfmt: expected %s value, got %T: %s", e.Shape, e.Value, e.Msg)
	}
	return fmt.Sprintf("valfmt: expected %s value, got %T", e.Shape, e.Value)
}

func (e *ShapeError) Is(target error) bool { return target == ErrShape }

// FormatMismatchError reports formatted text that does not contain the
// anchors or unit fragments the active format expects.
type FormatMismatchError struct {
	Unit   string // unit whose fragment failed to parse, if any
	Anchor string // literal anchor that was expected, if any
	Offset int    // byte offset into Input
	Input  string
	Msg    string
}

func (e *FormatMismatchError) Error() string {
	switch {
	case e.Unit != "":
		return fmt.Sprintf("valfmt: cannot parse unit %q at offset %d in %q: %s", e.Unit, e.Offset, e.Input, e.Msg)
	case e.Anchor != "":
		return fmt.Sprintf("valfmt: expected %q at offset %d in %q: %s", e.Anchor, e.Offset, e.Input, e.Msg)
	}
	return fmt.Sprintf("valfmt: cannot parse %q: %s", e.Input, e.Msg)
}

func (e *FormatMismatchError) Is(target error) bool { return target == ErrFormatMismatch }

// A UnitError represents an error returned by a unit transform's Format
// method.
type UnitError struct {
	Unit string
	Err  error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("valfmt: error calling Format for unit %q: %s", e.Unit, e.Err)
}

func (e *UnitError) Unwrap() error { return e.Err }
