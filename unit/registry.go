package unit

import (
	"fmt"
	"sort"
)

// Registry holds the transforms of one engine. It is written while the
// engine is being configured and only read afterwards, so it needs no
// locking.
type Registry struct {
	transforms map[string]Transform
	names      []string // longest first
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{transforms: make(map[string]Transform)}
}

// Register adds t under name. Names are case-sensitive and must be unique.
func (r *Registry) Register(name string, t Transform) error {
	if name == "" {
		return fmt.Errorf("unit: empty unit name")
	}
	if t == nil {
		return fmt.Errorf("unit: nil transform for %q", name)
	}
	if _, exists := r.transforms[name]; exists {
		return fmt.Errorf("unit: duplicate unit %q", name)
	}
	r.transforms[name] = t
	r.names = append(r.names, name)
	sort.SliceStable(r.names, func(i, j int) bool {
		if len(r.names[i]) != len(r.names[j]) {
			return len(r.names[i]) > len(r.names[j])
		}
		return r.names[i] < r.names[j]
	})
	return nil
}

// Resolve returns the transform registered under name.
func (r *Registry) Resolve(name string) (Transform, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.transforms[name]
	return t, ok
}

// Names returns the registered names ordered for greedy matching: longest
// first, ties broken alphabetically.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len reports the number of registered transforms.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.transforms)
}
