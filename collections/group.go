package collections

import (
	"github.com/elliotchance/orderedmap/v3"
)

// Group builds a multimap from items. Keys are extracted with keyOf, values
// with valueOf. Keys appear in the order they are first seen, values per key
// in input order.
//
//	Group(cities, func(c City) string { return c.Country },
//	              func(c City) string { return c.City })
//	  => { "Belarus": ["Brest", "Grodno", "Minsk"], "Russia": ["Omsk", "Samara"], … }
func Group[T any, K comparable, V any](items []T, keyOf func(T) K, valueOf func(T) V) *orderedmap.OrderedMap[K, []V] {
	multimap := orderedmap.NewOrderedMap[K, []V]()
	for _, item := range items {
		key := keyOf(item)
		values, _ := multimap.Get(key)
		multimap.Set(key, append(values, valueOf(item)))
	}
	return multimap
}
