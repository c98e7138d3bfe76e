package stats

import (
	"fmt"
	"strings"
)

// Analyzer holds a named, cleaned sample. The constructor drops missing
// values once, so every method works on complete data and the number of
// holes stays on record.
//
// Analyzer knows only the cheap observations; DescriptiveAnalyzer embeds it
// and adds the moments. That split is the course's composition lesson: the
// "base class / subclass" pair of the classroom becomes a struct embedded in
// a larger struct.
type Analyzer struct {
	name    string
	values  []float64
	dropped int
}

// NewAnalyzer copies values, drops the missing ones, and remembers how many
// were dropped. The caller's slice is never retained.
func NewAnalyzer(name string, values []float64) *Analyzer {
	clean := DropMissing(values)

	return &Analyzer{
		name:    name,
		values:  clean,
		dropped: len(values) - len(clean),
	}
}

// Name returns the sample's label.
func (a *Analyzer) Name() string { return a.name }

// Len returns the number of usable (non-missing) observations.
func (a *Analyzer) Len() int { return len(a.values) }

// Dropped returns how many missing values the constructor removed.
func (a *Analyzer) Dropped() int { return a.dropped }

// Values returns a copy of the cleaned sample; mutating it cannot corrupt
// the analyzer.
func (a *Analyzer) Values() []float64 {
	out := make([]float64, len(a.values))
	copy(out, a.values)

	return out
}

// Min returns the smallest observation. Empty sample ⇒ ErrNoData.
func (a *Analyzer) Min() (float64, error) { return Min(a.values) }

// Max returns the largest observation. Empty sample ⇒ ErrNoData.
func (a *Analyzer) Max() (float64, error) { return Max(a.values) }

// Range returns Max − Min. Empty sample ⇒ ErrNoData.
func (a *Analyzer) Range() (float64, error) {
	hi, err := Max(a.values)
	if err != nil {
		return 0, err
	}
	lo, _ := Min(a.values) // Max succeeded, so Min cannot fail.

	return hi - lo, nil
}

// DescriptiveAnalyzer embeds Analyzer and adds the moment statistics.
// Everything Analyzer can do, DescriptiveAnalyzer can do — promotion, not
// inheritance.
type DescriptiveAnalyzer struct {
	Analyzer
}

// NewDescriptiveAnalyzer builds the embedded Analyzer the same way
// NewAnalyzer does (copy, clean, count the holes).
func NewDescriptiveAnalyzer(name string, values []float64) *DescriptiveAnalyzer {
	return &DescriptiveAnalyzer{Analyzer: *NewAnalyzer(name, values)}
}

// Mean returns the arithmetic mean of the cleaned sample. ErrNoData when empty.
func (d *DescriptiveAnalyzer) Mean() (float64, error) { return Mean(d.values) }

// Median returns the median of the cleaned sample. ErrNoData when empty.
func (d *DescriptiveAnalyzer) Median() (float64, error) { return Median(d.values) }

// StdDev returns the population standard deviation. ErrNoData when empty.
func (d *DescriptiveAnalyzer) StdDev() (float64, error) { return StdDev(d.values) }

// Summary renders the whole report in one call:
//
//	survey: n=5 (1 missing dropped)
//	  mean   30.00
//	  median 30.00
//	  stddev 14.14
//
// Empty sample ⇒ ErrNoData.
func (d *DescriptiveAnalyzer) Summary() (string, error) {
	mean, err := d.Mean()
	if err != nil {
		return "", err
	}
	// Mean succeeded, so the sample is non-empty and the rest cannot fail.
	median, _ := d.Median()
	stddev, _ := d.StdDev()

	var b strings.Builder
	fmt.Fprintf(&b, "%s: n=%d (%d missing dropped)\n", d.Name(), d.Len(), d.Dropped())
	fmt.Fprintf(&b, "  mean   %.2f\n", mean)
	fmt.Fprintf(&b, "  median %.2f\n", median)
	fmt.Fprintf(&b, "  stddev %.2f", stddev)

	return b.String(), nil
}
