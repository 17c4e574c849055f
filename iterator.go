package mapz

import (
	"iter"

	"golang.org/x/exp/maps"
)

// Entry is a single (key, value) pair held by a multimap.
type Entry[T comparable, Q comparable] struct {
	Key   T
	Value Q
}

// Iterator is a single-use cursor over the (key, value) pairs of a MultiMap.
//
// The pairs are snapshotted into a working copy when the Iterator is created;
// Next consumes the working copy as it yields, so the live map is never
// touched and mutations made after creation are never observed. Each pair is
// yielded exactly once. An exhausted Iterator cannot be restarted; request a
// new one.
type Iterator[T comparable, Q comparable] struct {
	remaining map[T][]Q
	keys      []T
}

// Iterator returns a cursor over all pairs currently in the map.
//
// Key visit order is unspecified; within a key, values are visited in
// insertion order.
func (mm *MultiMap[T, Q]) Iterator() *Iterator[T, Q] {
	remaining := cloneItems(mm.items)
	return &Iterator[T, Q]{
		remaining: remaining,
		keys:      maps.Keys(remaining),
	}
}

// Next returns the next pair and true, or the zero Entry and false once all
// pairs have been yielded.
func (it *Iterator[T, Q]) Next() (Entry[T, Q], bool) {
	for len(it.keys) > 0 {
		key := it.keys[0]
		values := it.remaining[key]
		if len(values) == 0 {
			delete(it.remaining, key)
			it.keys = it.keys[1:]
			continue
		}

		it.remaining[key] = values[1:]
		return Entry[T, Q]{Key: key, Value: values[0]}, true
	}

	return Entry[T, Q]{}, false
}

// All returns an iterator over all pairs in the map, for use with a range
// statement.
//
// The map is snapshotted when iteration begins, with the same semantics as
// Iterator: ranging never mutates the live map, and each range over the
// returned sequence takes a fresh snapshot.
func (mm *MultiMap[T, Q]) All() iter.Seq2[T, Q] {
	return func(yield func(T, Q) bool) {
		it := mm.Iterator()
		for entry, ok := it.Next(); ok; entry, ok = it.Next() {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}
