package objects

import (
	"github.com/samber/lo"
)

// Frozen is a read-only snapshot of a map. There are no operations to change
// it; With and Without create modified copies, leaving the original frozen
// map as it is.
//
// Frozen values are safe for concurrent reads.
type Frozen[K comparable, V any] struct {
	m map[K]V
}

// Freeze takes a snapshot of m. Later changes to m do not show through.
func Freeze[K comparable, V any](m map[K]V) Frozen[K, V] {
	return Frozen[K, V]{m: lo.Assign(m)}
}

// Get returns the value stored for k.
func (f Frozen[K, V]) Get(k K) (V, bool) {
	v, ok := f.m[k]
	return v, ok
}

// Has returns true if f holds key k.
func (f Frozen[K, V]) Has(k K) bool {
	_, ok := f.m[k]
	return ok
}

// Len returns the number of entries.
func (f Frozen[K, V]) Len() int {
	return len(f.m)
}

// Keys returns the keys of f in no particular order.
func (f Frozen[K, V]) Keys() []K {
	return lo.Keys(f.m)
}

// Range calls fn for every entry until fn returns false.
func (f Frozen[K, V]) Range(fn func(K, V) bool) {
	for k, v := range f.m {
		if !fn(k, v) {
			return
		}
	}
}

// Map returns a mutable shallow copy of the entries.
func (f Frozen[K, V]) Map() map[K]V {
	return lo.Assign(f.m)
}

// With returns a copy of f with k set to v.
func (f Frozen[K, V]) With(k K, v V) Frozen[K, V] {
	m := lo.Assign(f.m)
	m[k] = v
	return Frozen[K, V]{m: m}
}

// Without returns a copy of f with the given keys removed.
func (f Frozen[K, V]) Without(keys ...K) Frozen[K, V] {
	return Frozen[K, V]{m: lo.OmitByKeys(f.m, keys)}
}
