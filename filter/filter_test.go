package filter

import (
	"testing"

	"github.com/cwbudde/algo-biostat/table"
)

// mustDense builds a Dense table from rows, failing the test on error.
func mustDense(t *testing.T, rows [][]float64) *table.Dense {
	t.Helper()
	d, err := table.DenseFromRows(rows)
	if err != nil {
		t.Fatalf("DenseFromRows: %v", err)
	}
	return d
}

// pass applies the threshold comparison of the abundance filter.
func pass(sum, cutoff float64, strict bool) bool {
	if strict {
		return sum > cutoff
	}
	return sum >= cutoff
}

// naiveAbundanceMask is the elementwise-apply reference implementation,
// used only to cross-check the vectorized production path.
func naiveAbundanceMask(m table.Matrix, axis table.Axis, cutoff float64, strict bool) []bool {
	rows, cols := m.Dims()

	var mask []bool
	switch axis {
	case table.AxisRows:
		mask = make([]bool, rows)
		for i := range rows {
			var sum float64
			for j := range cols {
				sum += m.At(i, j)
			}
			mask[i] = pass(sum, cutoff, strict)
		}
	case table.AxisColumns:
		mask = make([]bool, cols)
		for j := range cols {
			var sum float64
			for i := range rows {
				sum += m.At(i, j)
			}
			mask[j] = pass(sum, cutoff, strict)
		}
	}

	return mask
}

// naivePrevalenceMask is the elementwise reference for PrevalenceMask.
func naivePrevalenceMask(m table.Matrix, cutoff, fraction float64) []bool {
	rows, cols := m.Dims()

	mask := make([]bool, cols)
	for j := range cols {
		if rows == 0 {
			mask[j] = fraction <= 0
			continue
		}

		n := 0
		for i := range rows {
			if m.At(i, j) >= cutoff {
				n++
			}
		}
		mask[j] = float64(n)/float64(rows) >= fraction
	}

	return mask
}
