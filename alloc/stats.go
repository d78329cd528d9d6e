// File: alloc/stats.go
// License: Apache-2.0

package alloc

import "sync/atomic"

// Stats aggregates allocation accounting for allocators that track it.
type Stats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	BytesInUse int64
}

// statCounters is embedded by accounting allocators.
type statCounters struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	bytesInUse atomic.Int64
}

func (c *statCounters) recordAlloc(bytes int) {
	c.totalAlloc.Add(1)
	c.bytesInUse.Add(int64(bytes))
}

func (c *statCounters) recordFree(bytes int) {
	c.totalFree.Add(1)
	c.bytesInUse.Add(-int64(bytes))
}

func (c *statCounters) snapshot() Stats {
	alloc := c.totalAlloc.Load()
	free := c.totalFree.Load()
	return Stats{
		TotalAlloc: alloc,
		TotalFree:  free,
		InUse:      alloc - free,
		BytesInUse: c.bytesInUse.Load(),
	}
}
