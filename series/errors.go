package series

import "errors"

var (
	// ErrTooShort indicates a series with fewer than two points where a
	// period-over-period delta is required.
	ErrTooShort = errors.New("series: need at least two points")
	// ErrZeroBase indicates a zero base period, making percent change undefined.
	ErrZeroBase = errors.New("series: percent change undefined for a zero base period")
	// ErrBadWindow indicates a moving-average window outside [1, len(series)].
	ErrBadWindow = errors.New("series: window must be within [1, len(series)]")
	// ErrConstantSeries indicates min == max, making min-max scaling undefined.
	ErrConstantSeries = errors.New("series: min-max normalization undefined for a constant series")
	// ErrNonPositive indicates CAGR inputs that must be strictly positive.
	ErrNonPositive = errors.New("series: CAGR requires positive endpoints and periods")
)
