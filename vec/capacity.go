// File: vec/capacity.go
// License: Apache-2.0
//
// Capacity management: reservation, shrinking, clearing.

package vec

import "github.com/MrAwesomeRocks/libds/alloc"

// Reserve grows the capacity to exactly n slots. Requests already
// covered by the current capacity are a no-op; elements and their
// order are preserved. On failure the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.buf) {
		return nil
	}
	v.init()
	buf, err := v.alloc.Reallocate(v.buf, n)
	if err != nil {
		return err
	}
	v.buf = buf
	return nil
}

// ShrinkToFit removes spare capacity, reallocating to exactly Len()
// slots. An empty vector returns to the nil-range state.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == len(v.buf) {
		return nil
	}
	v.init()
	buf, err := v.alloc.Reallocate(v.buf, v.size)
	if err != nil {
		return err
	}
	v.buf = buf
	return nil
}

// Clear drops all elements without touching capacity. Vacated slots
// are zeroed for pointer-carrying element types so the collector can
// reclaim referents.
func (v *Vector[T]) Clear() {
	if v.scrub {
		var zero T
		for i := 0; i < v.size; i++ {
			v.buf[i] = zero
		}
	}
	v.size = 0
}

// ensureRoom guarantees capacity for extra more elements, growing on
// the geometric schedule. A single reallocation preserves [0, size).
func (v *Vector[T]) ensureRoom(extra int) error {
	need := v.size + extra
	if need <= len(v.buf) {
		return nil
	}
	v.init()
	buf, err := v.alloc.Reallocate(v.buf, alloc.GrowCapacity(len(v.buf), need))
	if err != nil {
		return err
	}
	v.buf = buf
	return nil
}
