// Package mapz provides generic multimap containers: maps in which a single
// key can be associated with more than one value.
package mapz

import (
	"slices"

	"golang.org/x/exp/maps"
)

// ReadOnlyMultimap is a read-only multimap.
type ReadOnlyMultimap[T comparable, Q comparable] interface {
	// Has returns true if the key is found in the map.
	Has(key T) bool

	// Get returns the values for the given key in the map and whether the key
	// existed.
	// If the key does not exist, an empty slice is returned.
	Get(key T) ([]Q, bool)

	// IsEmpty returns true if the map is currently empty.
	IsEmpty() bool

	// Len returns the length of the map, e.g. the number of *keys* present.
	Len() int

	// Count returns the total number of (key, value) pairs in the map.
	Count() int

	// Keys returns the keys of the map.
	Keys() []T

	// Values returns all values in the map.
	Values() []Q
}

// Multimap is the full mutable multimap capability: a ReadOnlyMultimap plus
// the mutation and iteration surface.
type Multimap[T comparable, Q comparable] interface {
	ReadOnlyMultimap[T, Q]

	// Add inserts the value into the map at the given key.
	Add(key T, value Q)

	// RemoveOne removes the first occurrence of the value under the given key,
	// returning the removed pair and whether anything was removed.
	RemoveOne(key T, value Q) (Entry[T, Q], bool)

	// RemoveAll removes the key and all its values, returning them in their
	// prior insertion order and whether the key existed.
	RemoveAll(key T) ([]Q, bool)

	// Iterator returns a cursor over a snapshot of the map's pairs.
	Iterator() *Iterator[T, Q]
}

// NewMultiMap initializes a new MultiMap.
func NewMultiMap[T comparable, Q comparable]() *MultiMap[T, Q] {
	return &MultiMap[T, Q]{items: map[T][]Q{}}
}

// NewMultiMapWithCap initializes with the provided capacity for the top-level
// map.
func NewMultiMapWithCap[T comparable, Q comparable](capacity uint32) *MultiMap[T, Q] {
	return &MultiMap[T, Q]{items: make(map[T][]Q, capacity)}
}

// MultiMap represents a map that can contain 1 or more values for each key.
// Values under a key keep their insertion order and may repeat.
//
// A key is only present while it holds at least one value: removals that
// drain a key's values delete the key itself.
//
// MultiMap is not safe for concurrent use; callers requiring concurrent
// mutation must synchronize externally (or see CountingMultiMap).
type MultiMap[T comparable, Q comparable] struct {
	items map[T][]Q
}

// Clear clears all entries in the map.
func (mm *MultiMap[T, Q]) Clear() {
	mm.items = map[T][]Q{}
}

// Add inserts the value into the map at the given key.
//
// If there exists an existing value, then this value is appended
// *without comparison*. Put another way, a value can be added twice, if this
// method is called twice for the same value. Add cannot fail.
func (mm *MultiMap[T, Q]) Add(key T, value Q) {
	mm.items[key] = append(mm.items[key], value)
}

// RemoveOne removes the first occurrence of the value under the given key,
// scanning in insertion order and comparing by equality.
//
// On success the removed pair and true are returned; if the key is absent or
// the value is not found under it, the zero Entry and false are returned and
// the map is left unchanged. If the removal drains the key's last value, the
// key is removed from the map entirely.
func (mm *MultiMap[T, Q]) RemoveOne(key T, value Q) (Entry[T, Q], bool) {
	values, ok := mm.items[key]
	if !ok {
		return Entry[T, Q]{}, false
	}

	index := slices.Index(values, value)
	if index < 0 {
		return Entry[T, Q]{}, false
	}

	if len(values) == 1 {
		delete(mm.items, key)
	} else {
		mm.items[key] = slices.Delete(values, index, index+1)
	}

	return Entry[T, Q]{Key: key, Value: value}, true
}

// RemoveAll removes the given key and all its values in one step, returning
// the removed values in their prior insertion order and whether the key
// existed.
func (mm *MultiMap[T, Q]) RemoveAll(key T) ([]Q, bool) {
	values, ok := mm.items[key]
	if !ok {
		return nil, false
	}

	delete(mm.items, key)
	return values, true
}

// RemoveKey removes the given key from the map, discarding its values.
func (mm *MultiMap[T, Q]) RemoveKey(key T) {
	delete(mm.items, key)
}

// Has returns true if the key is found in the map.
func (mm *MultiMap[T, Q]) Has(key T) bool {
	_, ok := mm.items[key]
	return ok
}

// Get returns the values stored in the map for the provided key, in insertion
// order, and whether the key existed.
//
// The returned slice is a copy taken at call time and is not affected by
// later mutation of the map. If the key does not exist, an empty slice is
// returned.
func (mm *MultiMap[T, Q]) Get(key T) ([]Q, bool) {
	found, ok := mm.items[key]
	if !ok {
		return []Q{}, false
	}

	return slices.Clone(found), true
}

// Set sets the values in the multimap to those provided, replacing any
// existing values for the key. Setting an empty or nil slice removes the key.
func (mm *MultiMap[T, Q]) Set(key T, values []Q) {
	if len(values) == 0 {
		delete(mm.items, key)
		return
	}

	mm.items[key] = values
}

// IsEmpty returns true if the map is currently empty.
func (mm *MultiMap[T, Q]) IsEmpty() bool { return len(mm.items) == 0 }

// Len returns the length of the map, e.g. the number of *keys* present.
func (mm *MultiMap[T, Q]) Len() int { return len(mm.items) }

// Count returns the total number of (key, value) pairs in the map.
func (mm *MultiMap[T, Q]) Count() int {
	count := 0
	for _, values := range mm.items {
		count += len(values)
	}
	return count
}

// CountOf returns the number of values stored for the given key.
func (mm *MultiMap[T, Q]) CountOf(key T) int {
	return len(mm.items[key])
}

// Keys returns the keys of the map.
func (mm *MultiMap[T, Q]) Keys() []T { return maps.Keys(mm.items) }

// Values returns all values in the map. Key order is unspecified; within a
// key, values appear in insertion order.
func (mm *MultiMap[T, Q]) Values() []Q {
	values := make([]Q, 0, len(mm.items)*2)
	for _, valueSlice := range maps.Values(mm.items) {
		values = append(values, valueSlice...)
	}
	return values
}

// Clone returns a clone of the map.
func (mm *MultiMap[T, Q]) Clone() *MultiMap[T, Q] {
	return &MultiMap[T, Q]{cloneItems(mm.items)}
}

// AsReadOnly returns a read-only *copy* of the multimap.
func (mm *MultiMap[T, Q]) AsReadOnly() ReadOnlyMultimap[T, Q] {
	return readOnlyMultimap[T, Q]{
		cloneItems(mm.items),
	}
}

// cloneItems deep-copies the mapping, including each value slice.
func cloneItems[T comparable, Q comparable](items map[T][]Q) map[T][]Q {
	cloned := make(map[T][]Q, len(items))
	for key, values := range items {
		cloned[key] = slices.Clone(values)
	}
	return cloned
}

type readOnlyMultimap[T comparable, Q comparable] struct {
	items map[T][]Q
}

// Has returns true if the key is found in the map.
func (mm readOnlyMultimap[T, Q]) Has(key T) bool {
	_, ok := mm.items[key]
	return ok
}

// Get returns the values for the given key in the map and whether the key
// existed. If the key does not exist, an empty slice is returned.
func (mm readOnlyMultimap[T, Q]) Get(key T) ([]Q, bool) {
	found, ok := mm.items[key]
	if !ok {
		return []Q{}, false
	}

	return slices.Clone(found), true
}

// IsEmpty returns true if the map is currently empty.
func (mm readOnlyMultimap[T, Q]) IsEmpty() bool { return len(mm.items) == 0 }

// Len returns the length of the map, e.g. the number of *keys* present.
func (mm readOnlyMultimap[T, Q]) Len() int { return len(mm.items) }

// Count returns the total number of (key, value) pairs in the map.
func (mm readOnlyMultimap[T, Q]) Count() int {
	count := 0
	for _, values := range mm.items {
		count += len(values)
	}
	return count
}

// Keys returns the keys of the map.
func (mm readOnlyMultimap[T, Q]) Keys() []T { return maps.Keys(mm.items) }

// Values returns all values in the map.
func (mm readOnlyMultimap[T, Q]) Values() []Q {
	values := make([]Q, 0, len(mm.items)*2)
	for _, valueSlice := range maps.Values(mm.items) {
		values = append(values, valueSlice...)
	}
	return values
}
