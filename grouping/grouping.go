package grouping

import "sort"

// CountBy returns the frequency of every unique label, preserving nothing but
// the counts: order of first appearance is irrelevant to a map.
//
//	CountBy([]string{"rent", "food", "food"}) // → map[food:2 rent:1]
//
// Complexity: O(n) time, O(u) memory for u unique labels.
func CountBy(labels []string) map[string]int {
	counts := make(map[string]int, len(labels))
	for _, label := range labels {
		counts[label]++
	}

	return counts
}

// GroupBy buckets values[i] under labels[i], preserving per-label value order.
// Returns ErrLengthMismatch when the slices disagree in length.
//
// Complexity: O(n) time, O(n) memory.
func GroupBy(labels []string, values []float64) (map[string][]float64, error) {
	if len(labels) != len(values) {
		return nil, ErrLengthMismatch
	}

	groups := make(map[string][]float64, len(labels))
	for i, label := range labels {
		groups[label] = append(groups[label], values[i])
	}

	return groups, nil
}

// SumBy totals values[i] under labels[i].
// Returns ErrLengthMismatch when the slices disagree in length.
//
// Complexity: O(n) time, O(u) memory.
func SumBy(labels []string, values []float64) (map[string]float64, error) {
	if len(labels) != len(values) {
		return nil, ErrLengthMismatch
	}

	totals := make(map[string]float64, len(labels))
	for i, label := range labels {
		totals[label] += values[i]
	}

	return totals, nil
}

// Index maps every unique label to the index of its first occurrence.
// Later duplicates do not overwrite the first position.
//
// Complexity: O(n) time, O(u) memory.
func Index(labels []string) map[string]int {
	first := make(map[string]int, len(labels))
	for i, label := range labels {
		if _, seen := first[label]; !seen {
			first[label] = i
		}
	}

	return first
}

// KeepCounts returns a fresh frequency table holding only the entries of
// counts with a value ≥ min. The input map is not mutated.
//
// Complexity: O(u) time and memory.
func KeepCounts(counts map[string]int, min int) map[string]int {
	kept := make(map[string]int, len(counts))
	for label, n := range counts {
		if n >= min {
			kept[label] = n
		}
	}

	return kept
}

// SortedKeys returns the keys of m in ascending order. Go map iteration order
// is unspecified; every lesson that prints a map goes through this helper so
// the output is stable.
//
// Complexity: O(u log u) time, O(u) memory.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
