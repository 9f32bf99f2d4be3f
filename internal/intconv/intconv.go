// Package intconv provides safe narrowing integer conversions used when
// allocating automaton state IDs.
package intconv

import "math"

// ToInt32 safely converts an int to int32.
// Panics if n is outside the int32 range, since that indicates a pattern
// produced more automaton states than the implementation can index — a
// programming error to surface loudly rather than silently truncate.
func ToInt32(n int) int32 {
	if n < math.MinInt32 || n > math.MaxInt32 {
		panic("refa/intconv: state count overflows int32")
	}
	return int32(n)
}
