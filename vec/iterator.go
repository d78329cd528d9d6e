// File: vec/iterator.go
// License: Apache-2.0
//
// Bidirectional iteration over the live elements.

package vec

import "iter"

// Iterator walks the live elements of a vector in either direction.
// It is restartable via Reset and cheap to copy. Like any view into
// the storage, it is invalidated by reallocation; Clear moves the
// logical end back to the start.
type Iterator[T any] struct {
	v    *Vector[T]
	next int
}

// Iter returns an iterator positioned before the first element.
// For an empty vector the first Next immediately reports false.
func (v *Vector[T]) Iter() *Iterator[T] {
	return &Iterator[T]{v: v}
}

// Next returns the next element and advances, or false when the
// iterator has passed the last live element.
func (it *Iterator[T]) Next() (T, bool) {
	if it.next >= it.v.size {
		var zero T
		return zero, false
	}
	elem := it.v.buf[it.next]
	it.next++
	return elem, true
}

// Prev steps back and returns the element it moved onto, or false when
// the iterator is at the start.
func (it *Iterator[T]) Prev() (T, bool) {
	if it.next == 0 {
		var zero T
		return zero, false
	}
	it.next--
	return it.v.buf[it.next], true
}

// Reset repositions the iterator before the first element.
func (it *Iterator[T]) Reset() { it.next = 0 }

// All returns a range-over-func sequence of (index, element) pairs for
// the live elements. The vector must not be mutated during the walk.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns a range-over-func sequence of the live elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}
