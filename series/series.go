package series

import "math"

// percentFactor converts a ratio into percentage points.
const percentFactor = 100.0

// PercentChange — period-over-period growth
//
// Description:
//
//	For a series x₀..x_{n−1}, returns the n−1 values
//	(x_i − x_{i−1}) / x_{i−1} · 100 — the classic month-over-month
//	growth view of a sales series.
//
// Validation:
//   - len(xs) < 2       ⇒ ErrTooShort.
//   - any base x_{i−1} == 0 ⇒ ErrZeroBase (division would be undefined).
//
// Complexity: O(n) time, O(n) memory.
func PercentChange(xs []float64) ([]float64, error) {
	if len(xs) < 2 {
		return nil, ErrTooShort
	}

	out := make([]float64, len(xs)-1)
	for i := 1; i < len(xs); i++ {
		base := xs[i-1]
		if base == 0 {
			return nil, ErrZeroBase
		}
		out[i-1] = (xs[i] - base) / base * percentFactor
	}

	return out, nil
}

// CumulativeSum returns the running total of xs: out[i] = Σ xs[0..i].
// An empty input yields an empty, non-nil slice.
//
// Complexity: O(n) time, O(n) memory.
func CumulativeSum(xs []float64) []float64 {
	out := make([]float64, len(xs))
	total := 0.0
	for i, v := range xs {
		total += v
		out[i] = total
	}

	return out
}

// MovingAverage returns the mean of every length-window slice of xs, in
// order: len(xs) − window + 1 points. The window sum rolls forward, so the
// whole computation is a single pass.
//
// Validation:
//   - window < 1 or window > len(xs) ⇒ ErrBadWindow.
//
// Complexity: O(n) time, O(n−w+1) memory.
func MovingAverage(xs []float64, window int) ([]float64, error) {
	if window < 1 || window > len(xs) {
		return nil, ErrBadWindow
	}

	out := make([]float64, 0, len(xs)-window+1)

	// Seed the rolling sum with the first window.
	sum := 0.0
	for i := 0; i < window; i++ {
		sum += xs[i]
	}
	out = append(out, sum/float64(window))

	// Roll: drop the oldest sample, add the newest.
	for i := window; i < len(xs); i++ {
		sum += xs[i] - xs[i-window]
		out = append(out, sum/float64(window))
	}

	return out, nil
}

// MinMaxNormalize rescales xs linearly so min → 0 and max → 1.
//
// Validation:
//   - len(xs) == 0 ⇒ ErrTooShort.
//   - min == max   ⇒ ErrConstantSeries (the scale collapses).
//
// Complexity: O(n) time, O(n) memory.
func MinMaxNormalize(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrTooShort
	}

	lo, hi := xs[0], xs[0]
	for _, v := range xs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return nil, ErrConstantSeries
	}

	span := hi - lo
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = (v - lo) / span
	}

	return out, nil
}

// CAGR — compound annual (per-period) growth rate
//
// Description:
//
//	The constant per-period growth rate that carries first to last over
//	the given number of periods:
//
//	  CAGR = (last/first)^(1/periods) − 1
//
//	Returned as a ratio (0.15 means 15% per period).
//
// Validation:
//   - first ≤ 0, last ≤ 0 or periods ≤ 0 ⇒ ErrNonPositive.
//
// Complexity: O(1).
func CAGR(first, last, periods float64) (float64, error) {
	if first <= 0 || last <= 0 || periods <= 0 {
		return 0, ErrNonPositive
	}

	return math.Pow(last/first, 1/periods) - 1, nil
}
