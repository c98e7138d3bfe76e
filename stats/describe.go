package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean: Σxᵢ / n.
// Empty input ⇒ ErrNoData.
//
// Complexity: O(n).
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrNoData
	}

	sum := 0.0
	for _, v := range xs {
		sum += v
	}

	return sum / float64(len(xs)), nil
}

// Median returns the middle value of the sorted sample; for an even count,
// the average of the two middle values. The input is not mutated — sorting
// happens on a copy.
// Empty input ⇒ ErrNoData.
//
// Complexity: O(n log n) time, O(n) memory.
func Median(xs []float64) (float64, error) {
	n := len(xs)
	if n == 0 {
		return 0, ErrNoData
	}

	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid], nil
	}

	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

// Variance returns the population variance: Σ(xᵢ−mean)² / n.
// Empty input ⇒ ErrNoData.
//
// Complexity: O(n).
func Variance(xs []float64) (float64, error) {
	mean, err := Mean(xs)
	if err != nil {
		return 0, err
	}

	sumSq := 0.0
	var dev float64
	for _, v := range xs {
		dev = v - mean
		sumSq += dev * dev
	}

	return sumSq / float64(len(xs)), nil
}

// StdDev returns the population standard deviation: √Variance.
// Empty input ⇒ ErrNoData.
//
// Complexity: O(n).
func StdDev(xs []float64) (float64, error) {
	variance, err := Variance(xs)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(variance), nil
}

// Min returns the smallest value. Empty input ⇒ ErrNoData.
func Min(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrNoData
	}

	lo := xs[0]
	for _, v := range xs[1:] {
		lo = math.Min(lo, v)
	}

	return lo, nil
}

// Max returns the largest value. Empty input ⇒ ErrNoData.
func Max(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrNoData
	}

	hi := xs[0]
	for _, v := range xs[1:] {
		hi = math.Max(hi, v)
	}

	return hi, nil
}
