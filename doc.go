/*
Package valfmt formats structured attribute values into editable text and
parses edited text back into structured values. It is the value layer of a
data-bound form element: the element keeps a typed value (its select) and a
text value (its value) in sync through an Engine.

An Engine is configured with functional options and handles four shapes of
value:

  - a scalar, rendered through an optional format spec;
  - a Range, a (from, to) pair rendered through a range template;
  - a Multiple, an ordered collection rendered through a multiple template;
  - a Multiple whose elements may themselves be ranges.

1. Format Specs and Units

A format spec interleaves literal text with references to named units. Each
unit is a unit.Transform with a Format and a Parse direction. Unit names are
matched greedily, longest first, and text in square brackets is never read
as a unit name:

	e, err := valfmt.New(
		valfmt.WithFormat("value: roman [roman]"),
		valfmt.WithUnit("roman", unit.Lookup(map[string]string{"1": "I", "4": "IV"})),
	)
	if err != nil {
		// handle error
	}
	text, _ := e.Format(4)          // "value: IV roman"
	v, _ := e.Parse("value: I roman") // unit.Hash{"roman": "1"}

Parsing a formatted scalar yields a unit.Hash with one entry per unit. The
WithFormatUnit option decorates the step that turns that hash into the
attribute value.

2. Ranges and Collections

Templates use the fixed markers '{', '|' and '}'. The default range
template is "{ - }" and the default multiple template is "{, |, }":

	e, _ := valfmt.New(valfmt.AllowMultiple(true), valfmt.AllowRange(true))
	text, _ := e.Format([]any{1, []any{10, 15}, 20}) // "1, 10 - 15, 20"
	v, _ := e.Parse(text) // valfmt.Multiple{int64(1), valfmt.Range{From: int64(10), To: int64(15)}, int64(20)}

Without a format spec scalars are coerced: "true" and "false" become
booleans, numeric literals become int64 or float64, and JSON arrays and
objects are decoded. Anything else stays a string.

Errors are typed: *ConfigurationError from New, *ShapeError when a value
does not match the configured shape and *FormatMismatchError when text does
not match the configured format.
*/
package valfmt
