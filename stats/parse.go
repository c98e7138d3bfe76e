package stats

import (
	"strconv"
	"strings"
)

// ParseValues coerces a heterogeneous record ([]any) into a []float64,
// skipping every element that does not convert — the defensive-parsing
// lesson: bad input is expected, counted, and stepped over, never fatal.
//
// Accepted element kinds:
//   - float64 / float32
//   - every signed and unsigned integer width
//   - string holding a decimal number (surrounding spaces tolerated)
//
// Everything else (bools, nils, nested structures, non-numeric strings)
// counts as skipped. The returned slice is non-nil even when everything was
// skipped, and skipped reports how many elements were dropped.
//
// Complexity: O(n) time, O(k) memory for k parsed.
func ParseValues(raw []any) (values []float64, skipped int) {
	values = make([]float64, 0, len(raw))

	for _, item := range raw {
		switch v := item.(type) {
		case float64:
			values = append(values, v)
		case float32:
			values = append(values, float64(v))
		case int:
			values = append(values, float64(v))
		case int8:
			values = append(values, float64(v))
		case int16:
			values = append(values, float64(v))
		case int32:
			values = append(values, float64(v))
		case int64:
			values = append(values, float64(v))
		case uint:
			values = append(values, float64(v))
		case uint8:
			values = append(values, float64(v))
		case uint16:
			values = append(values, float64(v))
		case uint32:
			values = append(values, float64(v))
		case uint64:
			values = append(values, float64(v))
		case string:
			// The conversion that can fail: parse, and skip on error rather
			// than abort the whole record.
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				skipped++

				continue
			}
			values = append(values, parsed)
		default:
			skipped++
		}
	}

	return values, skipped
}
