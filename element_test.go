package valfmt_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/KimNorgaard/go-valfmt"
	"github.com/KimNorgaard/go-valfmt/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustElement(t *testing.T, attrs valfmt.Attrs, opts ...valfmt.Option) *valfmt.Element {
	t.Helper()
	el, err := valfmt.NewElement(attrs, opts...)
	require.NoError(t, err)
	return el
}

func attr(t *testing.T, el *valfmt.Element, name string) any {
	t.Helper()
	v, err := el.Get(name)
	require.NoError(t, err)
	return v
}

// caseUnit renders the Y or y entry of a hash, or the whole raw value, in
// the given case.
func caseUnit(upper bool) unit.Transform {
	return unit.Func(func(raw any) string {
		s := unit.String(raw)
		if h, ok := raw.(unit.Hash); ok {
			s = unit.String(h["y"]) + unit.String(h["Y"])
		}
		if upper {
			return strings.ToUpper(s)
		}
		return strings.ToLower(s)
	})
}

func TestNewElement(t *testing.T) {
	t.Run("ID", func(t *testing.T) {
		el := mustElement(t, nil)
		require.True(t, strings.HasPrefix(el.ID(), "dataElement-"))
		require.NotEqual(t, el.ID(), mustElement(t, nil).ID())
	})

	t.Run("No value", func(t *testing.T) {
		el := mustElement(t, nil)
		require.Nil(t, attr(t, el, valfmt.AttrSelect))
		require.Equal(t, "", attr(t, el, valfmt.AttrValue))
	})

	t.Run("Value from select", func(t *testing.T) {
		el := mustElement(t, valfmt.Attrs{valfmt.AttrSelect: "hi"},
			valfmt.WithFormat("Y y"),
			valfmt.WithUnit("Y", caseUnit(true)),
			valfmt.WithUnit("y", caseUnit(false)),
		)
		require.Equal(t, "HI hi", attr(t, el, valfmt.AttrValue))
	})

	t.Run("Select from value", func(t *testing.T) {
		el := mustElement(t, valfmt.Attrs{valfmt.AttrValue: "true"})
		require.Equal(t, true, attr(t, el, valfmt.AttrSelect))
	})

	t.Run("Value of select", func(t *testing.T) {
		el := mustElement(t, valfmt.Attrs{valfmt.AttrSelect: true})
		require.Equal(t, "true", attr(t, el, valfmt.AttrValue))
	})

	t.Run("Value must be text", func(t *testing.T) {
		_, err := valfmt.NewElement(valfmt.Attrs{valfmt.AttrValue: []string{"something"}})
		require.ErrorIs(t, err, valfmt.ErrShape)
	})

	t.Run("Configuration error", func(t *testing.T) {
		_, err := valfmt.NewElement(nil, valfmt.WithUnit("Y", unit.Identity()))
		require.ErrorIs(t, err, valfmt.ErrConfiguration)
	})

	t.Run("Range select", func(t *testing.T) {
		el := mustElement(t,
			valfmt.Attrs{valfmt.AttrSelect: []any{unit.Hash{"y": "hi"}, unit.Hash{"Y": "THERE"}}},
			valfmt.AllowRange(true),
			valfmt.WithFormat("y"),
			valfmt.WithUnit("Y", caseUnit(true)),
			valfmt.WithUnit("y", caseUnit(false)),
		)
		require.Equal(t, "hi - there", attr(t, el, valfmt.AttrValue))
	})
}

func TestElementMirror(t *testing.T) {
	el := mustElement(t, nil)

	testCases := []struct {
		name     string
		sel      any
		expected string
	}{
		{"Empty string", "", ""},
		{"Number", 4, "4"},
		{"Array", []int{4, 20}, "[4,20]"},
		{"Object", map[string]string{"very": "cool"}, `{"very":"cool"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, el.Set(valfmt.AttrSelect, tc.sel))
			require.Equal(t, tc.expected, attr(t, el, valfmt.AttrValue))
		})
	}

	valueCases := []struct {
		value    string
		expected any
	}{
		{"awesome", "awesome"},
		{"4", int64(4)},
		{"[4,20]", []any{int64(4), int64(20)}},
		{`{"very":"cool"}`, map[string]any{"very": "cool"}},
	}
	for _, tc := range valueCases {
		t.Run(tc.value, func(t *testing.T) {
			require.NoError(t, el.Set(valfmt.AttrValue, tc.value))
			require.Equal(t, tc.expected, attr(t, el, valfmt.AttrSelect))
		})
	}
}

func TestElementRejectedValue(t *testing.T) {
	el := mustElement(t, valfmt.Attrs{valfmt.AttrSelect: []int{1, 2}}, valfmt.AllowRange(true))

	err := el.Set(valfmt.AttrValue, "1 to 2")
	require.ErrorIs(t, err, valfmt.ErrFormatMismatch)
	require.Equal(t, []int{1, 2}, attr(t, el, valfmt.AttrSelect))
	require.Equal(t, "1 - 2", attr(t, el, valfmt.AttrValue))

	require.ErrorIs(t, el.Set(valfmt.AttrSelect, 3), valfmt.ErrShape)
	require.ErrorIs(t, el.Set(valfmt.AttrValue, 3), valfmt.ErrShape)
}

func TestElementGet(t *testing.T) {
	el := mustElement(t,
		valfmt.Attrs{"something": true, "anotherThing": "awesome"},
		valfmt.WithFormat("value: Y"),
		valfmt.WithUnit("Y", unit.Identity()),
	)

	require.Equal(t, true, attr(t, el, "something"))
	require.Equal(t, "awesome", attr(t, el, "anotherThing"))
	require.Nil(t, attr(t, el, "nonExistent"))

	v, err := el.Get("something", valfmt.Formatted())
	require.NoError(t, err)
	require.Equal(t, "value: true", v)

	v, err = el.Get("anotherThing", valfmt.Formatted())
	require.NoError(t, err)
	require.Equal(t, "value: awesome", v)
}

func TestElementConfigure(t *testing.T) {
	units := []valfmt.Option{
		valfmt.WithUnit("Y", caseUnit(true)),
		valfmt.WithUnit("y", caseUnit(false)),
	}

	t.Run("Format", func(t *testing.T) {
		el := mustElement(t, valfmt.Attrs{valfmt.AttrValue: "hi"}, append(units, valfmt.WithFormat("y"))...)
		require.Equal(t, "hi", attr(t, el, valfmt.AttrValue))
		require.Equal(t, unit.Hash{"y": "hi"}, attr(t, el, valfmt.AttrSelect))

		require.NoError(t, el.Configure(append(units, valfmt.WithFormat("Y"))...))
		require.Equal(t, "HI", attr(t, el, valfmt.AttrValue))
		require.Equal(t, "Y", el.Engine().Settings().Format)
	})

	t.Run("Range format", func(t *testing.T) {
		opts := append(units, valfmt.WithFormat("y"), valfmt.AllowRange(true))
		el := mustElement(t,
			valfmt.Attrs{valfmt.AttrSelect: []any{unit.Hash{"y": "hi"}, unit.Hash{"Y": "THERE"}}},
			opts...,
		)
		require.Equal(t, "hi - there", attr(t, el, valfmt.AttrValue))

		require.NoError(t, el.Configure(append(opts, valfmt.WithFormatRange("from { to }."))...))
		require.Equal(t, "from hi to there.", attr(t, el, valfmt.AttrValue))
	})

	t.Run("Invalid configuration keeps engine", func(t *testing.T) {
		el := mustElement(t, valfmt.Attrs{valfmt.AttrSelect: valfmt.Range{From: 1, To: 2}}, valfmt.AllowRange(true))
		before := el.Engine()

		require.ErrorIs(t, el.Configure(valfmt.AllowRange(true), valfmt.WithFormatRange("nope")), valfmt.ErrConfiguration)
		require.ErrorIs(t, el.Configure(), valfmt.ErrShape)
		require.Same(t, before, el.Engine())
		require.Equal(t, "1 - 2", attr(t, el, valfmt.AttrValue))
	})
}

func TestElementOnChange(t *testing.T) {
	el := mustElement(t, nil)

	var mu sync.Mutex
	var changes []valfmt.Change
	el.OnChange(func(c valfmt.Change) {
		mu.Lock()
		defer mu.Unlock()
		changes = append(changes, c)
	})

	require.NoError(t, el.Set(valfmt.AttrSelect, 4))
	require.NoError(t, el.Set("hiddenInput", true))

	require.Equal(t, []valfmt.Change{
		{Name: valfmt.AttrSelect, Old: nil, New: 4},
		{Name: valfmt.AttrValue, Old: "", New: "4"},
		{Name: "hiddenInput", Old: nil, New: true},
	}, changes)
}

func TestElementAttrsIsACopy(t *testing.T) {
	el := mustElement(t, valfmt.Attrs{"a": 1})
	attrs := el.Attrs()
	attrs["a"] = 2
	require.Equal(t, 1, attr(t, el, "a"))
}

func TestElementConcurrentAccess(t *testing.T) {
	el := mustElement(t, nil, valfmt.AllowMultiple(true))

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				assert.NoError(t, el.Set(valfmt.AttrSelect, []int{i, j}))
				_, err := el.Get(valfmt.AttrValue, valfmt.Formatted())
				assert.ErrorIs(t, err, valfmt.ErrShape) // value is text, not a collection
			}
		}()
	}
	wg.Wait()
}
