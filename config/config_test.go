package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KimNorgaard/go-valfmt"
	"github.com/KimNorgaard/go-valfmt/config"
	"github.com/KimNorgaard/go-valfmt/internal/testutil"
	"github.com/KimNorgaard/go-valfmt/unit"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, name string) *config.Config {
	t.Helper()
	c, err := config.Load(testutil.MustReadTestData(t, name))
	require.NoError(t, err)
	return c
}

func TestLoadRoman(t *testing.T) {
	c := load(t, "roman.yaml")
	require.Equal(t, "value: roman", c.Format)
	require.True(t, c.AllowMultiple)
	require.Equal(t, config.KindLookup, c.Units["roman"].Kind)
	require.Equal(t, "IV", c.Units["roman"].Table["4"])

	el, err := c.Element()
	require.NoError(t, err)

	value, err := el.Get(valfmt.AttrValue)
	require.NoError(t, err)
	require.Equal(t, "value: I, value: II to value: IV", value)

	require.NoError(t, el.Set(valfmt.AttrValue, "value: V"))
	sel, err := el.Get(valfmt.AttrSelect)
	require.NoError(t, err)
	require.Equal(t, valfmt.Multiple{unit.Hash{"roman": "5"}}, sel)
}

func TestLoadDate(t *testing.T) {
	c := load(t, "date.yaml")

	el, err := c.Element()
	require.NoError(t, err)

	sel, err := el.Get(valfmt.AttrSelect)
	require.NoError(t, err)
	want := valfmt.Range{
		From: unit.Hash{"Y": "2024", "M": "01", "D": "01"},
		To:   unit.Hash{"Y": "2024", "M": "12", "D": "31"},
	}
	if diff := cmp.Diff(want, sel); diff != "" {
		t.Errorf("select mismatch (-want +got):\n%s", diff)
	}

	e := el.Engine()
	require.Equal(t, []string{"D", "M", "Y"}, e.Settings().Units)
	require.Equal(t, "from { until }", e.Settings().FormatRange)
}

func TestLoadUntyped(t *testing.T) {
	e, err := load(t, "untyped.yaml").Engine()
	require.NoError(t, err)

	text, err := e.Format([]any{1, "a", true})
	require.NoError(t, err)
	require.Equal(t, "[1; a & true]", text)

	v, err := e.Parse(text)
	require.NoError(t, err)
	require.Equal(t, valfmt.Multiple{int64(1), "a", true}, v)
}

func TestLoadEmpty(t *testing.T) {
	c, err := config.Load(nil)
	require.NoError(t, err)

	e, err := c.Engine()
	require.NoError(t, err)
	require.Equal(t, valfmt.Settings{Units: []string{}, FormatMultiple: "{, |, }", FormatRange: "{ - }"}, e.Settings())
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		file     string
		expected string
	}{
		{"unknown_key.yaml", "config: failed to parse YAML"},
		{"bad_unit.yaml", `config: unit "Y": unknown unit kind "soundex"`},
		{"bad_pattern.yaml", `config: unit "n": unit: invalid pattern`},
	}

	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			_, err := config.Load(testutil.MustReadTestData(t, tc.file))
			var le *config.LoadError
			require.ErrorAs(t, err, &le)
			require.ErrorContains(t, err, tc.expected)
		})
	}
}

func TestMissingTestData(t *testing.T) {
	_, err := testutil.ReadTestData("missing.yaml")
	require.ErrorContains(t, err, `testutil: cannot read "missing.yaml"`)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "element.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: \"x\"\nunits:\n  x: {kind: field}\n"), 0o600))

	_, err := config.LoadFile(path)
	require.EqualError(t, err, "config: "+path+`: unit "x": field unit needs a key`)

	_, err = config.LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestUnitTransform(t *testing.T) {
	testCases := []struct {
		name     string
		unit     config.Unit
		raw      any
		expected string
	}{
		{"Default kind", config.Unit{}, "As Is", "As Is"},
		{"Upper", config.Unit{Kind: config.KindUpper}, "hi", "HI"},
		{"Lower", config.Unit{Kind: config.KindLower}, "HI", "hi"},
		{"Field", config.Unit{Kind: config.KindField, Key: "k"}, unit.Hash{"k": 7}, "7"},
		{"Lookup", config.Unit{Kind: config.KindLookup, Table: map[string]string{"1": "one"}}, 1, "one"},
		{"Pattern", config.Unit{Kind: config.KindPattern, Pattern: `(\d+)`}, 12, "12"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := tc.unit.Transform()
			require.NoError(t, err)
			got, err := tr.Format(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}
