package stats

import "math"

// Missing returns the marker for a missing observation. Go has no None for
// float64; the numeric convention is a quiet NaN, and every function in this
// package treats NaN as "no value here".
func Missing() float64 {
	return math.NaN()
}

// IsMissing reports whether v is the missing-value marker.
// NaN is the only float64 that is not equal to itself, but math.IsNaN says
// what we mean.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// DropMissing returns a new slice holding the non-missing values of xs, in
// order. The input is not mutated; an all-missing or empty input yields an
// empty, non-nil slice.
//
// Complexity: O(n) time, O(k) memory for k kept.
func DropMissing(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !IsMissing(v) {
			out = append(out, v)
		}
	}

	return out
}
