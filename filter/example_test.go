package filter_test

import (
	"fmt"

	"github.com/cwbudde/algo-biostat/filter"
	"github.com/cwbudde/algo-biostat/table"
)

func ExampleAbundanceMask() {
	tab, _ := table.DenseFromRows([][]float64{
		{0, 1, 1},
		{4, 4, 4},
	})

	// Row sums are 2 and 12.
	mask, _ := filter.AbundanceMask(tab, table.AxisRows, 2, false)
	fmt.Println(mask)

	mask, _ = filter.AbundanceMask(tab, table.AxisRows, 2, true)
	fmt.Println(mask)

	// Output:
	// [true true]
	// [false true]
}

func ExamplePrevalenceMask() {
	tab, _ := table.DenseFromRows([][]float64{
		{0, 3},
		{1, 3},
		{2, 0},
		{3, 0},
	})

	// At cutoff 2, the first feature is carried by 2 of 4 samples and the
	// second by 2 of 4; requiring half of the samples keeps both.
	mask, _ := filter.PrevalenceMask(tab, 2, 0.5)
	fmt.Println(mask)

	mask, _ = filter.PrevalenceMask(tab, 2, 0.51)
	fmt.Println(mask)

	// Output:
	// [true true]
	// [false false]
}
