// Package transform builds new slices from old ones — the map/filter/flatten
// trio that replaces hand-rolled accumulator loops.
//
// What:
//
//   - Apply:       produce a new slice by applying fn to every element.
//   - Keep:        produce a new slice holding only elements that satisfy pred.
//   - ApplyKept:   filter and map in a single pass (no intermediate slice).
//   - ApplyStrings / KeepStrings: the same idioms over []string.
//   - Flatten:     collapse a 2-D grid into one row-major slice.
//
// Why:
//
//   - Data cleanup: square a measurement series, drop out-of-range readings.
//   - Report prep: uppercase labels, keep only the names that match a rule.
//   - Shaping: flatten a matrix of daily readings into one timeline.
//
// Contract:
//
//   - Inputs are never mutated; every result is a fresh allocation.
//   - Empty (or nil) input yields an empty, non-nil result.
//   - A nil fn/pred is a programmer error: helpers return nil, never panic.
//
// Complexity: every helper is a single O(n) pass with one allocation.
//
// See example_test.go for the lesson outputs and docs/TUTORIAL.md §1 for the
// full walkthrough.
package transform
