// File: alloc/page_linux.go
//go:build linux

// Package alloc: Linux page allocator backed by anonymous mmap.
//
// Storage comes straight from the kernel, so ranges live outside the
// Go heap and Reallocate is a true remap (mremap may extend the
// mapping in place). The garbage collector never scans these ranges,
// which restricts the allocator to pointer-free element types.
//
// License: Apache-2.0

package alloc

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/MrAwesomeRocks/libds/api"
	"github.com/MrAwesomeRocks/libds/internal/trait"
)

// Pages allocates slot ranges from anonymous private mappings.
type Pages[T any] struct {
	mu      sync.Mutex
	regions map[uintptr][]byte // first-slot address -> full mapping
	statCounters
}

// NewPages builds a page allocator for T. It fails with CodeNotSupported
// when T carries pointers (the collector cannot see them off-heap) or
// has zero size (nothing to map).
func NewPages[T any]() (*Pages[T], error) {
	if !trait.PointerFree[T]() {
		return nil, api.NewError(api.CodeNotSupported,
			"alloc: page allocator requires pointer-free elements")
	}
	if trait.Size[T]() == 0 {
		return nil, api.NewError(api.CodeNotSupported,
			"alloc: zero-size elements have no backing storage")
	}
	return &Pages[T]{regions: make(map[uintptr][]byte)}, nil
}

func (p *Pages[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, api.NewError(api.CodeInvalidArgument, "alloc: negative slot count").
			WithContext("n", n)
	}
	if n == 0 {
		return nil, nil
	}
	length := n * int(trait.Size[T]())
	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, api.NewError(api.CodeAllocationFailure, "alloc: mmap failed").
			WithCause(err).
			WithContext("bytes", length)
	}
	ptr := unsafe.Pointer(&data[0])

	p.mu.Lock()
	p.regions[uintptr(ptr)] = data
	p.mu.Unlock()
	p.recordAlloc(len(data))

	return unsafe.Slice((*T)(ptr), n), nil
}

func (p *Pages[T]) Reallocate(old []T, n int) ([]T, error) {
	if len(old) == 0 {
		return p.Allocate(n)
	}
	if n < 0 {
		return nil, api.NewError(api.CodeInvalidArgument, "alloc: negative slot count").
			WithContext("n", n)
	}
	if n == 0 {
		p.Release(old)
		return nil, nil
	}

	key := uintptr(unsafe.Pointer(&old[0]))
	p.mu.Lock()
	region, ok := p.regions[key]
	p.mu.Unlock()
	if !ok {
		return nil, api.NewError(api.CodeInvalidArgument,
			"alloc: range not owned by this allocator")
	}

	length := n * int(trait.Size[T]())
	oldBytes := len(region)
	data, err := unix.Mremap(region, length, unix.MREMAP_MAYMOVE)
	if err != nil {
		// The old mapping is untouched on mremap failure.
		return nil, api.NewError(api.CodeAllocationFailure, "alloc: mremap failed").
			WithCause(err).
			WithContext("bytes", length)
	}
	ptr := unsafe.Pointer(&data[0])

	p.mu.Lock()
	delete(p.regions, key)
	p.regions[uintptr(ptr)] = data
	p.mu.Unlock()
	p.bytesInUse.Add(int64(len(data) - oldBytes))

	return unsafe.Slice((*T)(ptr), n), nil
}

func (p *Pages[T]) Release(buf []T) {
	if len(buf) == 0 {
		return
	}
	key := uintptr(unsafe.Pointer(&buf[0]))

	p.mu.Lock()
	region, ok := p.regions[key]
	delete(p.regions, key)
	p.mu.Unlock()
	if !ok {
		return
	}

	unix.Munmap(region)
	p.recordFree(len(region))
}

// Stats reports allocation accounting for this allocator.
func (p *Pages[T]) Stats() Stats {
	return p.snapshot()
}
