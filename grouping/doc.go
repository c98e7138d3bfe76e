// Package grouping builds maps from slices — counting, bucketing and summing
// by label, the dictionary-building idioms of everyday data work.
//
// What:
//
//   - CountBy:    label → number of occurrences (frequency table).
//   - GroupBy:    label → slice of the values that carried it.
//   - SumBy:      label → total of the values that carried it.
//   - Index:      label → index of its first occurrence.
//   - KeepCounts: filter a frequency table by a minimum count.
//   - SortedKeys: keys in sorted order, because map iteration order is
//     unspecified and lessons must print deterministically.
//
// Why:
//
//   - Transaction logs: how many purchases per category, spend per category.
//   - Inventories: first position of each SKU, labels seen at least twice.
//
// Contract:
//
//   - Inputs are never mutated; results are fresh maps/slices.
//   - Empty input yields an empty, non-nil map.
//   - Paired-slice helpers (GroupBy, SumBy) return ErrLengthMismatch when the
//     label and value slices disagree in length.
//
// Complexity: every helper is a single O(n) pass (SortedKeys adds the sort).
//
// See example_test.go for the lesson outputs and docs/TUTORIAL.md §2.
package grouping
