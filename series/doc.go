// Package series computes period-over-period views of a numeric series —
// growth rates, running totals, smoothing and normalization.
//
// What:
//
//   - PercentChange:   % growth from each period to the next.
//   - CumulativeSum:   running total.
//   - MovingAverage:   mean of a sliding window (length − window + 1 points).
//   - MinMaxNormalize: rescale to [0,1].
//   - CAGR:            compound growth rate per period between two endpoints.
//
// Why:
//
//   - Sales reviews: month-over-month growth, smoothed trend lines.
//   - Dashboards: normalized series plotted on a shared axis.
//   - Projections: annualized growth from first and last observations.
//
// Errors:
//
//   - ErrTooShort:       fewer than two points where a delta is required.
//   - ErrZeroBase:       a zero base period makes percent change undefined.
//   - ErrBadWindow:      MovingAverage window outside [1, len(xs)].
//   - ErrConstantSeries: min == max makes min-max scaling undefined.
//   - ErrNonPositive:    CAGR endpoints or period count ≤ 0.
//
// Contract: inputs are never mutated; results are fresh allocations; every
// function is a single O(n) pass (MovingAverage uses a rolling window sum).
//
// See example_test.go for the lesson outputs and docs/TUTORIAL.md §3.
package series
