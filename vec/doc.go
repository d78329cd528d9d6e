// Package vec
// License: Apache-2.0
//
// Generic, contiguous, dynamically-resizable array container.
// A Vector owns exactly one contiguous slot range obtained from an
// alloc.Allocator; all capacity changes funnel through the allocator
// adapter and the geometric growth policy. Vectors have value-semantic
// ownership: Clone/CopyFrom duplicate storage, MoveFrom transfers it
// wholesale and leaves the source empty.
//
// Vectors are not safe for concurrent use. Any reallocating operation
// invalidates every slice, address, or iterator previously obtained
// from the vector.
package vec
