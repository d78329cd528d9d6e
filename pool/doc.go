// Package pool
// License: Apache-2.0
//
// Recycling pools for libds containers.
// A VectorPool parks cleared vectors on a bounded FIFO free-list so
// hot paths can reuse grown storage instead of reallocating; SyncPool
// is the GC-cooperative alternative for burst-shaped workloads.
// See vecpool.go and syncpool.go for implementation details.
package pool
