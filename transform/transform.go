package transform

// Apply returns a new slice with fn applied to every element of xs.
//
// The classic first example: squaring a series.
//
//	Apply([]float64{1, 2, 3, 4, 5}, func(v float64) float64 { return v * v })
//	// → [1 4 9 16 25]
//
// A nil fn returns nil (programmer error, no panic). An empty xs returns an
// empty, non-nil slice so callers can range/append without nil checks.
//
// Complexity: O(n) time, O(n) memory.
func Apply(xs []float64, fn func(float64) float64) []float64 {
	if fn == nil {
		return nil // Contract: invalid input → no data, never panic.
	}

	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = fn(v)
	}

	return out
}

// Keep returns a new slice holding only the elements of xs for which pred
// reports true, preserving order.
//
//	Keep([]float64{1, 2, 3, 4, 5, 6}, func(v float64) bool { return math.Mod(v, 2) == 0 })
//	// → [2 4 6]
//
// A nil pred returns nil. Complexity: O(n) time, O(k) memory for k kept.
func Keep(xs []float64, pred func(float64) bool) []float64 {
	if pred == nil {
		return nil
	}

	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if pred(v) {
			out = append(out, v)
		}
	}

	return out
}

// ApplyKept filters with pred and maps with fn in one pass: the result holds
// fn(v) for every v in xs with pred(v) true, in order.
//
// Equivalent to Apply(Keep(xs, pred), fn) without the intermediate slice.
// Either callback nil → nil. Complexity: O(n) time, O(k) memory.
func ApplyKept(xs []float64, pred func(float64) bool, fn func(float64) float64) []float64 {
	if pred == nil || fn == nil {
		return nil
	}

	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if pred(v) {
			out = append(out, fn(v))
		}
	}

	return out
}

// ApplyStrings returns a new slice with fn applied to every element of xs.
// Same contract as Apply.
func ApplyStrings(xs []string, fn func(string) string) []string {
	if fn == nil {
		return nil
	}

	out := make([]string, len(xs))
	for i, s := range xs {
		out[i] = fn(s)
	}

	return out
}

// KeepStrings returns the elements of xs for which pred reports true,
// preserving order. Same contract as Keep.
func KeepStrings(xs []string, pred func(string) bool) []string {
	if pred == nil {
		return nil
	}

	out := make([]string, 0, len(xs))
	for _, s := range xs {
		if pred(s) {
			out = append(out, s)
		}
	}

	return out
}

// Flatten collapses a 2-D grid into a single row-major slice.
// Ragged rows are fine; each row contributes its own length.
//
//	Flatten([][]float64{{1, 2}, {3, 4}, {5}}) // → [1 2 3 4 5]
//
// Complexity: O(total elements) time and memory.
func Flatten(rows [][]float64) []float64 {
	total := 0
	for _, row := range rows {
		total += len(row)
	}

	out := make([]float64, 0, total)
	for _, row := range rows {
		out = append(out, row...)
	}

	return out
}
