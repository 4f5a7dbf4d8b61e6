//go:build go1.18

package valfmt_test

import (
	"strings"
	"testing"

	"github.com/KimNorgaard/go-valfmt"
	"github.com/KimNorgaard/go-valfmt/unit"
	"github.com/stretchr/testify/require"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add("a", "b", "c")
	f.Add("hello world", "from here", "to there")
	f.Add("x ", " y", "[z]")
	f.Add("{", "}", "|")

	e, err := valfmt.New(valfmt.AllowMultiple(true), valfmt.AllowRange(true))
	require.NoError(f, err)

	f.Fuzz(func(t *testing.T, a, b, c string) {
		for _, s := range []string{a, b, c} {
			// Separator characters make the split ambiguous, and coercible
			// text does not come back as a string.
			if s == "" || strings.ContainsAny(s, ",-") || valfmt.Coerce(s) != any(s) {
				return
			}
		}

		v := valfmt.Multiple{a, valfmt.Range{From: b, To: c}}
		text, err := e.Format(v)
		require.NoError(t, err)

		parsed, err := e.Parse(text)
		require.NoError(t, err, "Parse failed on our own formatted output %q", text)
		require.Equal(t, v, parsed)
	})
}

func FuzzParse(f *testing.F) {
	f.Add("1, 10 - 15, 20")
	f.Add("2024-01-31")
	f.Add("2024-01-31 - 2024-02-01, 2024-03-01")
	f.Add("")
	f.Add(" - , - ")

	e, err := valfmt.New(
		valfmt.AllowMultiple(true),
		valfmt.AllowRange(true),
		valfmt.WithFormat("Y-M-D"),
		valfmt.WithUnits(map[string]unit.Transform{
			"Y": unit.Field("Y"),
			"M": unit.Field("M"),
			"D": unit.Field("D"),
		}),
	)
	require.NoError(f, err)

	f.Fuzz(func(t *testing.T, text string) {
		v, err := e.Parse(text)
		if err != nil {
			require.ErrorIs(t, err, valfmt.ErrFormatMismatch)
			return
		}
		_, err = e.Format(v)
		require.NoError(t, err, "Format failed on a successfully parsed value")
	})
}

func FuzzCompile(f *testing.F) {
	f.Add("Y-M-D")
	f.Add("[Y]")
	f.Add("YM")
	f.Add("[")
	f.Add("value: Y]")

	f.Fuzz(func(t *testing.T, spec string) {
		_, err := valfmt.New(
			valfmt.WithFormat(spec),
			valfmt.WithUnit("Y", unit.Identity()),
			valfmt.WithUnit("M", unit.Identity()),
		)
		if err != nil {
			require.ErrorIs(t, err, valfmt.ErrConfiguration)
		}
	})
}
