/*
Package objects provides small helpers for working with maps as plain
objects: copying, merging, comparing, freezing, and converting them to and
from JSON.

All functions leave their arguments unchanged and return fresh values.
Values stored in maps are copied shallowly: a nested map or slice is shared
between the original and its copy.

Decoding JSON into a Go type works in two steps. The JSON text is decoded
into a generic key-value tree first, then fields are copied into a new value
of the target type, matching keys against `json` struct tags. What happens
with keys the target type has no field for is decided by the caller, see
FieldPolicy.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package objects

// Number is the set of types Merge is able to sum up.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
