package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/datakata/stats"
)

// TestParseValues_Heterogeneous coerces the course's mixed record: floats,
// ints and numeric strings convert; junk is skipped and counted.
func TestParseValues_Heterogeneous(t *testing.T) {
	raw := []any{10, "20.5", 30.25, "oops", nil, int64(7), " 12 ", true}

	values, skipped := stats.ParseValues(raw)

	assert.Equal(t, []float64{10, 20.5, 30.25, 7, 12}, values, "convertible values in order")
	assert.Equal(t, 3, skipped, `"oops", nil and true are skipped`)
}

// TestParseValues_AllWidths ensures every integer width converts.
func TestParseValues_AllWidths(t *testing.T) {
	raw := []any{int8(1), int16(2), int32(3), int64(4), uint(5), uint8(6), uint16(7), uint32(8), uint64(9), float32(10)}

	values, skipped := stats.ParseValues(raw)

	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, values, "all numeric widths convert")
	assert.Zero(t, skipped, "nothing to skip")
}

// TestParseValues_Empty yields an empty, non-nil slice and zero skips.
func TestParseValues_Empty(t *testing.T) {
	values, skipped := stats.ParseValues(nil)
	assert.NotNil(t, values, "empty input yields non-nil result")
	assert.Len(t, values, 0, "empty input yields zero values")
	assert.Zero(t, skipped, "nothing skipped from nothing")
}

// TestParseValues_OnlyJunk skips everything and converts nothing.
func TestParseValues_OnlyJunk(t *testing.T) {
	values, skipped := stats.ParseValues([]any{"n/a", struct{}{}, []int{1}})
	assert.Len(t, values, 0, "no convertible values")
	assert.Equal(t, 3, skipped, "every element skipped")
}
