package filter

import "github.com/cwbudde/algo-biostat/table"

const (
	// DefaultPrevalenceCutoff is the default per-cell abundance a sample
	// must reach to count as carrying a feature.
	DefaultPrevalenceCutoff = 1.0 / 10000

	// DefaultPrevalenceFraction is the default minimum fraction of
	// samples that must carry a feature.
	DefaultPrevalenceFraction = 0.1
)

// PrevalenceMask reports, for every column, whether the fraction of rows
// with a value >= cutoff reaches the required fraction (inclusive, so an
// observed fraction exactly equal to the requirement passes).
//
// The result always has one entry per column. A table with no rows has an
// observed fraction of zero for every column, so the mask is all false
// unless fraction is zero.
func PrevalenceMask(m table.Matrix, cutoff, fraction float64) ([]bool, error) {
	if fraction < 0 || fraction > 1 {
		return nil, ErrInvalidFraction
	}

	rows, cols := m.Dims()

	mask := make([]bool, cols)
	if rows == 0 {
		for j := range mask {
			mask[j] = fraction <= 0
		}

		return mask, nil
	}

	counts := m.CountAtLeast(cutoff)
	for j, n := range counts {
		mask[j] = float64(n)/float64(rows) >= fraction
	}

	return mask, nil
}
