package series_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/datakata/series"
)

// floatTolerance bounds rounding noise when comparing derived percentages.
const floatTolerance = 1e-9

// TestPercentChange_Sales reproduces the sales-series lesson:
// [100 120 115 140 135] → ≈[20.00 −4.17 21.74 −3.57].
func TestPercentChange_Sales(t *testing.T) {
	sales := []float64{100, 120, 115, 140, 135}

	changes, err := series.PercentChange(sales)
	require.NoError(t, err, "well-formed series must not error")
	require.Len(t, changes, 4, "n points yield n−1 changes")

	want := []float64{20.0, -25.0 / 6.0, 500.0 / 23.0, -25.0 / 7.0}
	for i := range want {
		assert.InDelta(t, want[i], changes[i], floatTolerance, "change %d", i)
	}
}

// TestPercentChange_TooShort verifies the minimum-length sentinel.
func TestPercentChange_TooShort(t *testing.T) {
	_, err := series.PercentChange([]float64{42})
	assert.ErrorIs(t, err, series.ErrTooShort, "one point has no period-over-period change")
}

// TestPercentChange_ZeroBase verifies division-by-zero protection.
func TestPercentChange_ZeroBase(t *testing.T) {
	_, err := series.PercentChange([]float64{10, 0, 5})
	assert.ErrorIs(t, err, series.ErrZeroBase, "a zero base period must error")
}

// TestCumulativeSum_RunningTotal checks the running total and the empty case.
func TestCumulativeSum_RunningTotal(t *testing.T) {
	assert.Equal(t, []float64{1, 3, 6, 10}, series.CumulativeSum([]float64{1, 2, 3, 4}),
		"running totals of 1..4")

	empty := series.CumulativeSum(nil)
	assert.NotNil(t, empty, "empty input yields non-nil result")
	assert.Len(t, empty, 0, "empty input yields zero elements")
}

// TestMovingAverage_Window3 verifies the rolling mean against hand arithmetic.
func TestMovingAverage_Window3(t *testing.T) {
	got, err := series.MovingAverage([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err, "valid window must not error")
	assert.Equal(t, []float64{2, 3, 4}, got, "window-3 means of 1..5")
}

// TestMovingAverage_WindowBounds verifies both invalid-window directions and
// the degenerate window of one.
func TestMovingAverage_WindowBounds(t *testing.T) {
	xs := []float64{1, 2, 3}

	_, err := series.MovingAverage(xs, 0)
	assert.ErrorIs(t, err, series.ErrBadWindow, "window 0 must error")

	_, err = series.MovingAverage(xs, 4)
	assert.ErrorIs(t, err, series.ErrBadWindow, "window beyond length must error")

	got, err := series.MovingAverage(xs, 1)
	require.NoError(t, err, "window 1 is valid")
	assert.Equal(t, xs, got, "window 1 reproduces the series")
}

// TestMinMaxNormalize_Rescale verifies endpoints land on 0 and 1.
func TestMinMaxNormalize_Rescale(t *testing.T) {
	got, err := series.MinMaxNormalize([]float64{10, 15, 20})
	require.NoError(t, err, "non-constant series must not error")
	assert.Equal(t, []float64{0, 0.5, 1}, got, "linear rescale to [0,1]")
}

// TestMinMaxNormalize_Degenerate covers empty and constant series.
func TestMinMaxNormalize_Degenerate(t *testing.T) {
	_, err := series.MinMaxNormalize(nil)
	assert.ErrorIs(t, err, series.ErrTooShort, "empty series must error")

	_, err = series.MinMaxNormalize([]float64{7, 7, 7})
	assert.ErrorIs(t, err, series.ErrConstantSeries, "constant series must error")
}

// TestCAGR_DoublingInTwoPeriods verifies the closed-form answer √2 − 1.
func TestCAGR_DoublingInTwoPeriods(t *testing.T) {
	rate, err := series.CAGR(100, 200, 2)
	require.NoError(t, err, "positive inputs must not error")
	assert.InDelta(t, 0.41421356, rate, 1e-8, "doubling over two periods grows √2−1 per period")
}

// TestCAGR_NonPositiveInputs verifies each rejected argument.
func TestCAGR_NonPositiveInputs(t *testing.T) {
	for _, args := range [][3]float64{{0, 10, 1}, {10, 0, 1}, {10, 20, 0}, {-5, 10, 3}} {
		_, err := series.CAGR(args[0], args[1], args[2])
		assert.ErrorIs(t, err, series.ErrNonPositive, "CAGR(%v) must reject non-positive input", args)
	}
}
