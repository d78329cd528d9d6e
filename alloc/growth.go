// File: alloc/growth.go
// License: Apache-2.0
//
// Geometric growth policy shared by all capacity-changing operations.

package alloc

// NextCapacity returns the capacity to grow to from the current one.
// The factor is 1.5 (c + c/2) rather than 2: doubling retains more
// unusable freed memory, while fixed increments lose the amortized O(1)
// append guarantee. Capacities 0 and 1 step straight to 2 so the policy
// always makes progress.
func NextCapacity(c int) int {
	if c < 2 {
		return 2
	}
	return c + c/2
}

// GrowCapacity applies NextCapacity repeatedly until the result covers
// need. Stepping through the policy instead of jumping to need keeps
// bulk insertion on the same amortized-cost schedule as single appends.
func GrowCapacity(cur, need int) int {
	c := cur
	for c < need {
		c = NextCapacity(c)
	}
	return c
}
