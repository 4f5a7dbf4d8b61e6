package valfmt

import (
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/google/uuid"
)

// Attribute names an Element mirrors between each other.
const (
	AttrSelect = "select" // the typed value
	AttrValue  = "value"  // its text
)

// Attrs holds the attributes of an Element.
type Attrs map[string]any

// Change describes an attribute update made by an Element.
type Change struct {
	Name string
	Old  any
	New  any
}

// Element is the attribute store of a data-bound form element. It keeps
// the select attribute and the value attribute in sync through its Engine:
// setting select renders value, setting value parses select.
type Element struct {
	mu        sync.RWMutex
	id        string
	engine    *Engine
	attrs     Attrs
	listeners []func(Change)
	log       *slog.Logger
}

// NewElement creates an Element from its initial attributes and the
// options of its Engine. A non-nil select takes precedence over value;
// with neither, select is nil and value is the empty string.
func NewElement(attrs Attrs, opts ...Option) (*Element, error) {
	engine, err := New(opts...)
	if err != nil {
		return nil, err
	}
	el := &Element{
		id:     "dataElement-" + uuid.NewString(),
		engine: engine,
		attrs:  maps.Clone(attrs),
		log:    engine.log,
	}
	if el.attrs == nil {
		el.attrs = Attrs{}
	}

	switch sel, val := el.attrs[AttrSelect], el.attrs[AttrValue]; {
	case sel != nil:
		text, err := engine.Format(sel)
		if err != nil {
			return nil, err
		}
		el.attrs[AttrValue] = text
	case val != nil:
		text, ok := val.(string)
		if !ok {
			return nil, &ShapeError{Shape: "text", Value: val}
		}
		parsed, err := engine.Parse(text)
		if err != nil {
			return nil, err
		}
		el.attrs[AttrSelect] = parsed
	default:
		el.attrs[AttrSelect] = nil
		el.attrs[AttrValue] = ""
	}
	return el, nil
}

// ID returns the unique identifier of the element.
func (el *Element) ID() string { return el.id }

// Engine returns the engine the element currently formats with.
func (el *Element) Engine() *Engine {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return el.engine
}

// GetOption configures Get.
type GetOption func(*getOptions)

type getOptions struct {
	formatted bool
}

// Formatted makes Get return the attribute rendered through the engine.
func Formatted() GetOption {
	return func(o *getOptions) { o.formatted = true }
}

// Get returns the named attribute, or nil when it is not set.
func (el *Element) Get(name string, opts ...GetOption) (any, error) {
	var o getOptions
	for _, opt := range opts {
		opt(&o)
	}
	el.mu.RLock()
	v, engine := el.attrs[name], el.engine
	el.mu.RUnlock()

	if !o.formatted {
		return v, nil
	}
	return engine.Format(v)
}

// Attrs returns a copy of the element's attributes.
func (el *Element) Attrs() Attrs {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return maps.Clone(el.attrs)
}

// Set updates the named attribute. Setting select re-renders value and
// setting value (which must be a string) re-parses select. When the new
// value cannot be parsed, both attributes keep their prior state and the
// error is returned.
func (el *Element) Set(name string, v any) error {
	el.mu.Lock()
	var changes []Change
	var err error
	switch name {
	case AttrSelect:
		changes, err = el.setSelect(v)
	case AttrValue:
		changes, err = el.setValue(v)
	default:
		changes = []Change{el.store(name, v)}
	}
	listeners, log := el.listeners, el.log
	el.mu.Unlock()

	if err != nil {
		log.Debug("valfmt: attribute update rejected",
			slog.String("element", el.id),
			slog.String("attr", name),
			slog.Any("error", err),
		)
		return err
	}
	el.notify(log, listeners, changes)
	return nil
}

// Configure replaces the element's engine and re-renders value from
// select. On error the previous engine stays in place.
func (el *Element) Configure(opts ...Option) error {
	engine, err := New(opts...)
	if err != nil {
		return err
	}
	el.mu.Lock()
	text, err := engine.Format(el.attrs[AttrSelect])
	if err != nil {
		el.mu.Unlock()
		return err
	}
	el.engine = engine
	el.log = engine.log
	changes := []Change{el.store(AttrValue, text)}
	listeners, log := el.listeners, el.log
	el.mu.Unlock()

	el.notify(log, listeners, changes)
	return nil
}

// OnChange registers fn to be called after every attribute update. It is
// the seam a binding layer uses to mirror value into an input element.
func (el *Element) OnChange(fn func(Change)) {
	el.mu.Lock()
	defer el.mu.Unlock()
	el.listeners = append(el.listeners, fn)
}

func (el *Element) setSelect(v any) ([]Change, error) {
	text, err := el.engine.Format(v)
	if err != nil {
		return nil, err
	}
	return []Change{el.store(AttrSelect, v), el.store(AttrValue, text)}, nil
}

func (el *Element) setValue(v any) ([]Change, error) {
	text, ok := v.(string)
	if !ok {
		return nil, &ShapeError{Shape: "text", Value: v, Msg: fmt.Sprintf("%s must be a string", AttrValue)}
	}
	parsed, err := el.engine.Parse(text)
	if err != nil {
		return nil, err
	}
	return []Change{el.store(AttrValue, text), el.store(AttrSelect, parsed)}, nil
}

func (el *Element) store(name string, v any) Change {
	c := Change{Name: name, Old: el.attrs[name], New: v}
	el.attrs[name] = v
	return c
}

func (el *Element) notify(log *slog.Logger, listeners []func(Change), changes []Change) {
	for _, c := range changes {
		log.Debug("valfmt: attribute updated",
			slog.String("element", el.id),
			slog.String("attr", c.Name),
			slog.Any("value", c.New),
		)
		for _, fn := range listeners {
			fn(c)
		}
	}
}
