package format

import (
	"fmt"
	"reflect"
)

// DuplicatePolicy selects what happens when Register is called twice for
// the same type within one Formats registry.
type DuplicatePolicy int

const (
	// DuplicateIgnore keeps the first registration and silently discards
	// the second.
	DuplicateIgnore DuplicatePolicy = iota
	// DuplicateReplace overwrites the first registration.
	DuplicateReplace
	// DuplicatePanic panics on a second registration for the same type.
	// Useful during setup to catch accidental double-registration.
	DuplicatePanic
)

// Formats is a registry mapping Go types to Adapters. A registry may
// compose one or more parents: a lookup that misses locally searches each
// parent in order, depth-first, so an application-level registry can
// extend a shared base registry (e.g. format/builtin's) without copying
// its entries.
type Formats struct {
	adapters    map[reflect.Type]Adapter
	parents     []*Formats
	onDuplicate DuplicatePolicy
}

// New returns an empty registry composed from the given parents, searched
// in order when a lookup misses locally.
func New(parents ...*Formats) *Formats {
	return &Formats{
		adapters: make(map[reflect.Type]Adapter),
		parents:  parents,
	}
}

// WithDuplicatePolicy sets how Register reacts to a type already
// registered locally (not in a parent; shadowing a parent's adapter is
// always permitted). Default DuplicateIgnore.
func (f *Formats) WithDuplicatePolicy(policy DuplicatePolicy) *Formats {
	f.onDuplicate = policy
	return f
}

// Register associates typ with adapter in this registry.
func (f *Formats) Register(typ reflect.Type, adapter Adapter) {
	if _, exists := f.adapters[typ]; exists {
		switch f.onDuplicate {
		case DuplicateIgnore:
			return
		case DuplicatePanic:
			panic(fmt.Sprintf("format: duplicate registration for %s", typ))
		}
	}
	f.adapters[typ] = adapter
}

// RegisterFor is a convenience wrapper for Register using a zero value of
// T to obtain its reflect.Type.
func RegisterFor[T any](f *Formats, adapter Adapter) {
	var zero T
	f.Register(reflect.TypeOf(zero), adapter)
}

// Lookup resolves the adapter for typ, searching this registry first and
// then each parent depth-first. The bool reports whether one was found.
func (f *Formats) Lookup(typ reflect.Type) (Adapter, bool) {
	return f.lookup(typ, make(map[*Formats]bool))
}

func (f *Formats) lookup(typ reflect.Type, seen map[*Formats]bool) (Adapter, bool) {
	if seen[f] {
		return nil, false
	}
	seen[f] = true

	if a, ok := f.adapters[typ]; ok {
		return a, true
	}
	for _, p := range f.parents {
		if a, ok := p.lookup(typ, seen); ok {
			return a, true
		}
	}
	return nil, false
}

// LookupFor is the generic counterpart to Lookup.
func LookupFor[T any](f *Formats) (Adapter, bool) {
	var zero T
	return f.Lookup(reflect.TypeOf(zero))
}
