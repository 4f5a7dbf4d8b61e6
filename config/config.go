// Package config loads the declarative description of a data element from
// YAML and turns it into engine options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/KimNorgaard/go-valfmt"
	"github.com/KimNorgaard/go-valfmt/unit"
	"gopkg.in/yaml.v3"
)

// Unit kinds understood by Unit.Transform.
const (
	KindIdentity = "identity"
	KindUpper    = "upper"
	KindLower    = "lower"
	KindField    = "field"
	KindLookup   = "lookup"
	KindPattern  = "pattern"
)

// Config describes an element: its engine settings, its units and its
// initial attributes.
type Config struct {
	Format         string          `yaml:"format"`
	AllowMultiple  bool            `yaml:"allowMultiple"`
	AllowRange     bool            `yaml:"allowRange"`
	FormatMultiple string          `yaml:"formatMultiple"`
	FormatRange    string          `yaml:"formatRange"`
	Units          map[string]Unit `yaml:"units"`
	Attrs          valfmt.Attrs    `yaml:"attrs"`
}

// Unit describes one of the built-in transforms.
type Unit struct {
	Kind    string            `yaml:"kind"`
	Key     string            `yaml:"key,omitempty"`     // field
	Table   map[string]string `yaml:"table,omitempty"`   // lookup
	Pattern string            `yaml:"pattern,omitempty"` // pattern
}

// A LoadError describes a configuration document that could not be read.
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := "config: "
	if e.File != "" {
		msg += e.File + ": "
	}
	msg += e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Cause }

// Load parses a YAML document. Unknown keys are rejected. An empty document
// yields the zero Config, which describes an untyped element.
func Load(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Config
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}
	for _, name := range c.unitNames() {
		if _, err := c.Units[name].Transform(); err != nil {
			return nil, &LoadError{Message: fmt.Sprintf("unit %q", name), Cause: err}
		}
	}
	return &c, nil
}

// LoadFile reads and parses the YAML document at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}
	c, err := Load(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
		}
		return nil, err
	}
	return c, nil
}

// Options returns the engine options the configuration describes. Units
// are registered in name order.
func (c *Config) Options() ([]valfmt.Option, error) {
	var opts []valfmt.Option
	if c.Format != "" {
		opts = append(opts, valfmt.WithFormat(c.Format))
	}
	for _, name := range c.unitNames() {
		t, err := c.Units[name].Transform()
		if err != nil {
			return nil, fmt.Errorf("config: unit %q: %w", name, err)
		}
		opts = append(opts, valfmt.WithUnit(name, t))
	}
	opts = append(opts, valfmt.AllowMultiple(c.AllowMultiple), valfmt.AllowRange(c.AllowRange))
	if c.FormatMultiple != "" {
		opts = append(opts, valfmt.WithFormatMultiple(c.FormatMultiple))
	}
	if c.FormatRange != "" {
		opts = append(opts, valfmt.WithFormatRange(c.FormatRange))
	}
	return opts, nil
}

// Engine builds the engine the configuration describes. Extra options are
// applied after the configured ones.
func (c *Config) Engine(extra ...valfmt.Option) (*valfmt.Engine, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return valfmt.New(append(opts, extra...)...)
}

// Element builds an element from the configured attributes.
func (c *Config) Element(extra ...valfmt.Option) (*valfmt.Element, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return valfmt.NewElement(c.Attrs, append(opts, extra...)...)
}

func (c *Config) unitNames() []string {
	names := make([]string, 0, len(c.Units))
	for name := range c.Units {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Transform builds the transform u describes.
func (u Unit) Transform() (unit.Transform, error) {
	switch u.Kind {
	case KindIdentity, "":
		return unit.Identity(), nil
	case KindUpper:
		return unit.Upper(), nil
	case KindLower:
		return unit.Lower(), nil
	case KindField:
		if u.Key == "" {
			return nil, errors.New("field unit needs a key")
		}
		return unit.Field(u.Key), nil
	case KindLookup:
		if len(u.Table) == 0 {
			return nil, errors.New("lookup unit needs a table")
		}
		return unit.Lookup(u.Table), nil
	case KindPattern:
		if u.Pattern == "" {
			return nil, errors.New("pattern unit needs a pattern")
		}
		return unit.Pattern(u.Pattern)
	}
	return nil, fmt.Errorf("unknown unit kind %q", u.Kind)
}
