package goforge

import "sort"

// Args is a read-only view over a builder's collected arguments. It reflects
// the exact key-value set of the builder that produced it and cannot be used
// to mutate that builder.
type Args struct {
	m map[string]any
}

// Get returns the value collected for name.
func (a Args) Get(name string) (any, bool) {
	v, ok := a.m[name]
	return v, ok
}

// Has reports whether a value has been collected for name.
func (a Args) Has(name string) bool {
	_, ok := a.m[name]
	return ok
}

// Len returns the number of collected arguments.
func (a Args) Len() int { return len(a.m) }

// Keys returns the collected field names, sorted.
func (a Args) Keys() []string {
	ks := make([]string, 0, len(a.m))
	for k := range a.m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// ForEach visits the collected arguments in sorted key order. Returning false
// from fn stops the iteration.
func (a Args) ForEach(fn func(name string, v any) bool) {
	for _, k := range a.Keys() {
		if !fn(k, a.m[k]) {
			return
		}
	}
}

// Copy returns a fresh map holding the collected arguments. Mutating the copy
// has no effect on the builder.
func (a Args) Copy() map[string]any {
	out := make(map[string]any, len(a.m))
	for k, v := range a.m {
		out[k] = v
	}
	return out
}

// FieldSet is an immutable set of field names.
type FieldSet struct {
	m map[string]struct{}
}

// Has reports whether name is in the set.
func (s FieldSet) Has(name string) bool {
	_, ok := s.m[name]
	return ok
}

// Len returns the number of names in the set.
func (s FieldSet) Len() int { return len(s.m) }

// Names returns the member names, sorted.
func (s FieldSet) Names() []string {
	ks := make([]string, 0, len(s.m))
	for k := range s.m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
