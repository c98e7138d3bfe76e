package series_test

import (
	"fmt"

	"github.com/katalvlaran/datakata/series"
)

// //////////////////////////////////////////////////////////////////////////////
// ExamplePercentChange — month-over-month sales growth
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Five months of sales: [100 120 115 140 135].
//	How did each month compare to the one before it?
//
// Use case:
//
//	The first question every sales review asks.
//
// Complexity: O(n) time, O(n) memory
func ExamplePercentChange() {
	sales := []float64{100, 120, 115, 140, 135}

	changes, err := series.PercentChange(sales)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for i, change := range changes {
		fmt.Printf("month %d: %+.2f%%\n", i+2, change)
	}
	// Output:
	// month 2: +20.00%
	// month 3: -4.17%
	// month 4: +21.74%
	// month 5: -3.57%
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMovingAverage — smoothing a noisy week
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Seven daily visitor counts, smoothed with a 3-day window to expose
//	the trend behind the noise.
//
// Complexity: O(n) time (rolling window sum)
func ExampleMovingAverage() {
	visitors := []float64{120, 95, 130, 110, 150, 140, 160}

	smooth, err := series.MovingAverage(visitors, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("%.1f\n", smooth)
	// Output:
	// [115.0 111.7 130.0 133.3 150.0]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCumulativeSum — running revenue
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Quarterly revenue, accumulated into a year-to-date view.
//
// Complexity: O(n)
func ExampleCumulativeSum() {
	quarters := []float64{250, 300, 275, 325}

	ytd := series.CumulativeSum(quarters)

	fmt.Println(ytd)
	// Output:
	// [250 550 825 1150]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCAGR — annualized growth between two endpoints
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Revenue grew from 100 to 150 over 3 years. What constant yearly
//	growth rate produces that path? (The practice exercise from the
//	tutorial, solved.)
//
// Complexity: O(1)
func ExampleCAGR() {
	rate, err := series.CAGR(100, 150, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("CAGR: %.2f%% per year\n", rate*100)
	// Output:
	// CAGR: 14.47% per year
}
