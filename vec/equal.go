// File: vec/equal.go
// License: Apache-2.0

package vec

// Equal reports whether a and b hold the same elements in the same
// order. Identity short-circuits to true; capacity is not compared.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf[i] != b.buf[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal for element types without built-in comparison,
// using eq to compare corresponding elements.
func (v *Vector[T]) EqualFunc(other *Vector[T], eq func(a, b T) bool) bool {
	if v == other {
		return true
	}
	if other == nil || v.size != other.size {
		return false
	}
	for i := 0; i < v.size; i++ {
		if !eq(v.buf[i], other.buf[i]) {
			return false
		}
	}
	return true
}
