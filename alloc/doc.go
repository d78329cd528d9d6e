// Package alloc
// License: Apache-2.0
//
// Storage management primitives for the libds containers.
// Implements the allocator adapter (Allocate/Reallocate/Release over
// typed slots), the geometric growth policy, and allocation accounting.
// See allocator.go, growth.go, page_linux.go for implementation details.
package alloc
