// File: alloc/allocator.go
// License: Apache-2.0
//
// Allocator adapter: raw slot-range allocation behind a uniform contract.

package alloc

import "github.com/MrAwesomeRocks/libds/api"

// Allocator hands out storage for n slots of T at a time.
//
// Returned slices always have len == n, the capacity of the range;
// callers track how many leading slots hold live values. A request for
// zero slots is legal and yields nil without touching the underlying
// memory system.
type Allocator[T any] interface {
	// Allocate returns ownership of storage for n slots.
	Allocate(n int) ([]T, error)

	// Reallocate resizes a range previously obtained from this
	// allocator. Slots [0, min(len(old), n)) are preserved at the same
	// offsets; the backing address may change, invalidating every
	// previously taken element address. Reallocate(nil, n) behaves as
	// Allocate(n); Reallocate(old, 0) releases old and returns nil.
	Reallocate(old []T, n int) ([]T, error)

	// Release returns the range to the allocator. The caller must pass
	// the full range obtained from Allocate/Reallocate and must not
	// touch it afterwards.
	Release(buf []T)
}

// Heap is the Go-runtime-backed allocator. Release is a no-op since
// the garbage collector reclaims unreachable ranges; Allocate can only
// fail on a negative request because the runtime aborts on OOM.
type Heap[T any] struct{}

func (Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, api.NewError(api.CodeInvalidArgument, "alloc: negative slot count").
			WithContext("n", n)
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

func (h Heap[T]) Reallocate(old []T, n int) ([]T, error) {
	if n < 0 {
		return nil, api.NewError(api.CodeInvalidArgument, "alloc: negative slot count").
			WithContext("n", n)
	}
	if n == 0 {
		h.Release(old)
		return nil, nil
	}
	if n == len(old) {
		return old, nil
	}
	buf := make([]T, n)
	copy(buf, old)
	return buf, nil
}

func (Heap[T]) Release([]T) {}

// Default returns the allocator used when a container is built without
// an explicit one.
func Default[T any]() Allocator[T] {
	return Heap[T]{}
}
