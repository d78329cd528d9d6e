// File: pool/syncpool.go
// License: Apache-2.0

package pool

import (
	"sync"

	"github.com/MrAwesomeRocks/libds/vec"
)

// SyncPool recycles vectors through a sync.Pool. Unlike VectorPool it
// has no bound: the collector trims parked vectors under memory
// pressure, which suits bursty workloads better than a fixed
// free-list. All vectors it constructs start with the same capacity
// hint; recycled ones keep whatever capacity they grew to.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a pool whose fresh vectors are pre-allocated to
// capacity slots.
func NewSyncPool[T any](capacity int) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return vec.WithCapacity[T](capacity) }},
	}
}

// Get returns an empty vector, reusing a parked one when available.
func (sp *SyncPool[T]) Get() *vec.Vector[T] {
	return sp.pool.Get().(*vec.Vector[T])
}

// Put clears v and parks it for reuse. v must not be used afterwards.
func (sp *SyncPool[T]) Put(v *vec.Vector[T]) {
	if v == nil {
		return
	}
	v.Clear()
	sp.pool.Put(v)
}
