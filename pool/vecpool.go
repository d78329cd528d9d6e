// File: pool/vecpool.go
// License: Apache-2.0
//
// Bounded FIFO recycling pool for vectors.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/MrAwesomeRocks/libds/vec"
)

// DefaultMaxIdle bounds how many cleared vectors a pool parks before
// dropping further returns on the floor.
const DefaultMaxIdle = 256

// Stats aggregates reuse accounting for a VectorPool.
type Stats struct {
	Hits   int64 // Gets served from the free-list
	Misses int64 // Gets that constructed a fresh vector
	Idle   int64 // vectors currently parked
}

// VectorPool recycles vectors so their grown storage survives between
// uses. Get hands out a cleared vector with at least the requested
// capacity; Put clears and parks one. The pool is safe for concurrent
// use; the vectors it hands out are not.
type VectorPool[T any] struct {
	mu      sync.Mutex
	idle    *queue.Queue
	maxIdle int

	hits   atomic.Int64
	misses atomic.Int64
}

// NewVectorPool builds a pool parking at most maxIdle vectors;
// maxIdle <= 0 selects DefaultMaxIdle.
func NewVectorPool[T any](maxIdle int) *VectorPool[T] {
	if maxIdle <= 0 {
		maxIdle = DefaultMaxIdle
	}
	return &VectorPool[T]{
		idle:    queue.New(),
		maxIdle: maxIdle,
	}
}

// Get returns an empty vector with capacity at least capacity,
// reusing a parked one when available.
func (p *VectorPool[T]) Get(capacity int) *vec.Vector[T] {
	p.mu.Lock()
	if p.idle.Length() > 0 {
		v := p.idle.Remove().(*vec.Vector[T])
		p.mu.Unlock()
		if v.Cap() < capacity {
			if err := v.Reserve(capacity); err != nil {
				p.misses.Add(1)
				return vec.WithCapacity[T](capacity)
			}
		}
		p.hits.Add(1)
		return v
	}
	p.mu.Unlock()

	p.misses.Add(1)
	return vec.WithCapacity[T](capacity)
}

// Put clears v and parks it for reuse. When the free-list is full the
// vector's storage is released instead.
func (p *VectorPool[T]) Put(v *vec.Vector[T]) {
	if v == nil {
		return
	}
	v.Clear()

	p.mu.Lock()
	if p.idle.Length() >= p.maxIdle {
		p.mu.Unlock()
		v.Release()
		return
	}
	p.idle.Add(v)
	p.mu.Unlock()
}

// Stats reports reuse accounting.
func (p *VectorPool[T]) Stats() Stats {
	p.mu.Lock()
	idle := int64(p.idle.Length())
	p.mu.Unlock()
	return Stats{
		Hits:   p.hits.Load(),
		Misses: p.misses.Load(),
		Idle:   idle,
	}
}
