// File: vec/access.go
// License: Apache-2.0
//
// Element access and size/capacity queries.

package vec

import "github.com/MrAwesomeRocks/libds/api"

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of slots currently backed by storage.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool { return v.size == 0 }

// Get returns the element at pos without bounds checking against the
// live size. The caller must guarantee 0 <= pos < Len(); reading a
// spare slot returns an unspecified value. This is the zero-overhead
// hot-path accessor; use At when the position is unvalidated.
func (v *Vector[T]) Get(pos int) T { return v.buf[pos] }

// Set writes the element at pos without bounds checking against the
// live size. The caller must guarantee 0 <= pos < Len().
func (v *Vector[T]) Set(pos int, elem T) { v.buf[pos] = elem }

// At returns the element at pos, failing with ErrOutOfRange when pos
// is not in [0, Len()).
func (v *Vector[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= v.size {
		var zero T
		return zero, v.outOfRange(pos)
	}
	return v.buf[pos], nil
}

// SetAt writes the element at pos, failing with ErrOutOfRange when pos
// is not in [0, Len()).
func (v *Vector[T]) SetAt(pos int, elem T) error {
	if pos < 0 || pos >= v.size {
		return v.outOfRange(pos)
	}
	v.buf[pos] = elem
	return nil
}

// Front returns the first element. Calling Front on an empty vector is
// a caller error and panics, spare capacity or not.
func (v *Vector[T]) Front() T { return v.buf[:v.size][0] }

// Back returns the last element. Calling Back on an empty vector is a
// caller error and panics, spare capacity or not.
func (v *Vector[T]) Back() T { return v.buf[:v.size][v.size-1] }

// Data returns a non-owning view of the live elements [0, Len()).
// The view aliases the vector's storage: writes through it are visible
// to the vector, and any capacity-changing operation invalidates it.
// The caller must not release the storage.
func (v *Vector[T]) Data() []T {
	if v.size == 0 {
		return nil
	}
	return v.buf[:v.size:v.size]
}

func (v *Vector[T]) outOfRange(pos int) error {
	return api.NewError(api.CodeOutOfRange, "vec: index out of range").
		WithContext("pos", pos).
		WithContext("size", v.size)
}
