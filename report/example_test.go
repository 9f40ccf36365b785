package report_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pairing/pair"
	"github.com/katalvlaran/pairing/report"
	"github.com/katalvlaran/pairing/search"
)

// ExampleWrite prints a report without the other-results section.
func ExampleWrite() {
	res, err := search.Solve(8, search.WithCollectOthers(false))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = report.Write(os.Stdout, res, report.DefaultOptions())
	// Output:
	// Sum: 8
	// Best Result: (Solved in 8 runs)
	// 49.26722297084675
	//
	// Best Number Combination:
	// 1.6906 and 6.3094 -> 8 (Difference: 4.6188, Product: 10.6667 -> Result: 49.2672)
}

// ExamplePairLong shows the multi-line pair layout.
func ExamplePairLong() {
	fmt.Print(report.PairLong(pair.New(2, 8)))
	// Output:
	// Numbers: 2 and 6 -> 8
	// Product: 12
	// Difference: 4
	// Result: 48
}
