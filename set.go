package mapz

import (
	"golang.org/x/exp/maps"
)

// NewSet constructs a new set, with the given items added to the set.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{values: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.values[item] = struct{}{}
	}
	return s
}

// Set implements a very basic unsorted set.
type Set[T comparable] struct {
	values map[T]struct{}
}

// Has returns true if the set contains the given value.
func (s *Set[T]) Has(value T) bool {
	_, ok := s.values[value]
	return ok
}

// Add adds the given value to the set and returns true. If the value is
// already present, returns false.
func (s *Set[T]) Add(value T) bool {
	if _, ok := s.values[value]; ok {
		return false
	}

	s.values[value] = struct{}{}
	return true
}

// Delete removes the value from the set, no-oping if not present.
func (s *Set[T]) Delete(value T) {
	delete(s.values, value)
}

// IsEmpty returns true if the set is empty.
func (s *Set[T]) IsEmpty() bool { return len(s.values) == 0 }

// Len returns the number of values in the set.
func (s *Set[T]) Len() int { return len(s.values) }

// AsSlice returns the values in the set as a slice, in no particular order.
func (s *Set[T]) AsSlice() []T {
	return maps.Keys(s.values)
}
