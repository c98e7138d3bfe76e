// Package stats covers the final stretch of the course: coercing messy input
// into numbers, dealing with missing values, and summarizing a sample with
// the textbook formulas — first as free functions, then as small analyzer
// types composed via embedding.
//
// What:
//
//   - Missing / IsMissing / DropMissing: NaN as the missing-value marker.
//   - ParseValues: coerce heterogeneous input ([]any) to []float64, skipping
//     whatever does not convert — defensive parsing, not silent failure.
//   - Mean, Median, Variance, StdDev, Min, Max: the textbook definitions
//     (population standard deviation; median averages the two middle values
//     for an even count).
//   - Analyzer: a named, cleaned sample with the cheap observations
//     (Len, Dropped, Min, Max, Range).
//   - DescriptiveAnalyzer: embeds Analyzer and adds Mean/Median/StdDev and a
//     formatted Summary — Go's composition idiom where a classroom would
//     reach for inheritance.
//
// Why:
//
//   - Survey responses arrive as strings, ints and floats mixed together.
//   - Real datasets have holes; statistics must be computed on what remains.
//
// Errors:
//
//   - ErrNoData: a statistic of an empty (or fully missing) sample.
//
// Contract: inputs are never mutated (Median sorts a copy); no panics on
// data paths; results are deterministic.
//
// See example_test.go for the lesson outputs and docs/TUTORIAL.md §4–§5.
package stats
