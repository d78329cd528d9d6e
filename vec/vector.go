// File: vec/vector.go
// License: Apache-2.0
//
// Vector construction, destruction, and ownership transfer.

package vec

import (
	"github.com/MrAwesomeRocks/libds/alloc"
	"github.com/MrAwesomeRocks/libds/internal/trait"
)

// DefaultCapacity is the eager allocation made by New. A small up-front
// range trades a few idle slots for a branch-free first append.
const DefaultCapacity = 10

// Vector is a contiguous, growable sequence of T.
//
// Invariants: size <= len(buf); buf is nil exactly when capacity is
// zero; slots [0, size) hold live values and [size, len(buf)) are
// spare storage. The zero value is a valid empty vector.
type Vector[T any] struct {
	size  int
	buf   []T // len(buf) is the capacity
	alloc alloc.Allocator[T]
	scrub bool // vacated slots must be zeroed so the GC can collect referents
}

// New returns an empty vector with DefaultCapacity slots pre-allocated.
func New[T any]() *Vector[T] {
	return WithCapacity[T](DefaultCapacity)
}

// WithCapacity returns an empty vector with exactly capacity slots
// pre-allocated. It panics on a negative capacity; use NewIn to handle
// allocator errors explicitly.
func WithCapacity[T any](capacity int) *Vector[T] {
	v, err := NewIn(alloc.Default[T](), capacity)
	if err != nil {
		panic(err)
	}
	return v
}

// Fill returns a vector holding n copies of elem, with size == capacity == n.
func Fill[T any](n int, elem T) *Vector[T] {
	v := WithCapacity[T](n)
	for i := range v.buf {
		v.buf[i] = elem
	}
	v.size = n
	return v
}

// Of returns a vector holding elems in order, with size == capacity == len(elems).
func Of[T any](elems ...T) *Vector[T] {
	v := WithCapacity[T](len(elems))
	copy(v.buf, elems)
	v.size = len(elems)
	return v
}

// NewIn returns an empty vector with capacity slots obtained from a.
// The vector keeps using a for every later capacity change, so storage
// is always released by the allocator that produced it.
func NewIn[T any](a alloc.Allocator[T], capacity int) (*Vector[T], error) {
	if a == nil {
		a = alloc.Default[T]()
	}
	buf, err := a.Allocate(capacity)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{
		buf:   buf,
		alloc: a,
		scrub: !trait.PointerFree[T](),
	}, nil
}

// init backfills the allocator for zero-value vectors before the first
// allocating operation.
func (v *Vector[T]) init() {
	if v.alloc == nil {
		v.alloc = alloc.Default[T]()
		v.scrub = !trait.PointerFree[T]()
	}
}

// Clone returns an independent copy of v. The new vector's capacity is
// trimmed to v's live elements.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.init()
	out, err := NewIn(v.alloc, v.size)
	if err != nil {
		return nil, err
	}
	copy(out.buf, v.buf[:v.size])
	out.size = v.size
	return out, nil
}

// CopyFrom replaces v's contents with a copy of other's live elements.
// The existing range is reused when its capacity already covers
// other's size; otherwise it is handed back to the allocator for an
// exact-size replacement. Self-assignment is a no-op.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	v.init()
	if len(v.buf) < other.size {
		buf, err := v.alloc.Reallocate(v.buf, other.size)
		if err != nil {
			return err
		}
		v.buf = buf
	} else if v.scrub {
		var zero T
		for i := other.size; i < v.size; i++ {
			v.buf[i] = zero
		}
	}
	copy(v.buf, other.buf[:other.size])
	v.size = other.size
	return nil
}

// MoveFrom adopts other's storage without copying elements and leaves
// other valid but empty (nil range, zero size and capacity). Any range
// v previously owned is released first. Self-move is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Release()
	if other.alloc != nil {
		v.alloc = other.alloc
		v.scrub = other.scrub
	}
	v.buf = other.buf
	v.size = other.size
	other.buf = nil
	other.size = 0
}

// Release hands the backing range to the allocator and resets the
// vector to the empty state. Element cleanup is the collector's job
// once the range is unreachable. Release is idempotent: a second call,
// or a call on a moved-from vector, does nothing.
func (v *Vector[T]) Release() {
	if v.buf == nil {
		v.size = 0
		return
	}
	v.alloc.Release(v.buf)
	v.buf = nil
	v.size = 0
}
