// File: alloc/page_fallback.go
//go:build !linux

// Package alloc: portable Pages fallback.
//
// Platforms without mremap fall back to runtime-backed storage while
// keeping the same constructor gates and accounting surface.
//
// License: Apache-2.0

package alloc

import (
	"github.com/MrAwesomeRocks/libds/api"
	"github.com/MrAwesomeRocks/libds/internal/trait"
)

// Pages delegates to the Heap allocator on non-Linux platforms.
type Pages[T any] struct {
	heap Heap[T]
	statCounters
}

// NewPages builds the fallback allocator with the same element gates as
// the Linux implementation so code paths stay portable.
func NewPages[T any]() (*Pages[T], error) {
	if !trait.PointerFree[T]() {
		return nil, api.NewError(api.CodeNotSupported,
			"alloc: page allocator requires pointer-free elements")
	}
	if trait.Size[T]() == 0 {
		return nil, api.NewError(api.CodeNotSupported,
			"alloc: zero-size elements have no backing storage")
	}
	return &Pages[T]{}, nil
}

func (p *Pages[T]) Allocate(n int) ([]T, error) {
	buf, err := p.heap.Allocate(n)
	if err == nil && buf != nil {
		p.recordAlloc(len(buf) * int(trait.Size[T]()))
	}
	return buf, err
}

func (p *Pages[T]) Reallocate(old []T, n int) ([]T, error) {
	buf, err := p.heap.Reallocate(old, n)
	if err != nil {
		return nil, err
	}
	if len(old) > 0 {
		p.recordFree(len(old) * int(trait.Size[T]()))
	}
	if buf != nil {
		p.recordAlloc(len(buf) * int(trait.Size[T]()))
	}
	return buf, nil
}

func (p *Pages[T]) Release(buf []T) {
	if len(buf) == 0 {
		return
	}
	p.heap.Release(buf)
	p.recordFree(len(buf) * int(trait.Size[T]()))
}

// Stats reports allocation accounting for this allocator.
func (p *Pages[T]) Stats() Stats {
	return p.snapshot()
}
