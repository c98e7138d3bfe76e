package stats

import "errors"

var (
	// ErrNoData indicates a statistic was requested of an empty sample
	// (or one whose values were all missing).
	ErrNoData = errors.New("stats: no data")
)
