package objects

import (
	"github.com/samber/lo"
)

// ShallowCopy returns a new map holding the same entries as m.
// A nil map yields an empty, non-nil map.
func ShallowCopy[K comparable, V any](m map[K]V) map[K]V {
	return lo.Assign(m)
}

// Merge merges maps into a single new map. Values for keys present in more
// than one map are summed up.
//
//	Merge(map{a: 1, b: 2}, map{b: 3, c: 5}) => map{a: 1, b: 5, c: 5}
func Merge[K comparable, V Number](maps ...map[K]V) map[K]V {
	return lo.Reduce(maps, func(acc map[K]V, m map[K]V, _ int) map[K]V {
		for k, v := range m {
			acc[k] += v
		}
		return acc
	}, make(map[K]V))
}

// RemoveProperties returns a copy of m without the given keys. Keys not
// present in m are ignored.
func RemoveProperties[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	return lo.OmitByKeys(m, keys)
}

// Compare returns true if a and b hold the same keys with equal values.
// Values are compared with ==, there is no descent into nested structures.
func Compare[K, V comparable](a, b map[K]V) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

// IsEmpty returns true if m holds no entries.
func IsEmpty[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}
