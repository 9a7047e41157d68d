package abundance

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-biostat/table"
)

// PrevalenceCurve returns, for each distinct value of a feature across
// samples, the fraction of samples strictly above it. Cutoffs are the
// sorted distinct values in ascending order; prevalence[i] is the
// fraction of samples with a value greater than cutoffs[i], so the curve
// is non-increasing and ends at zero. Both results are nil for empty
// input.
func PrevalenceCurve(values []float64) (cutoffs, prevalence []float64) {
	if len(values) == 0 {
		return nil, nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}

		cutoffs = append(cutoffs, sorted[i])
		prevalence = append(prevalence, float64(len(sorted)-j)/n)
		i = j
	}

	return cutoffs, prevalence
}

// RankCurve returns values sorted in descending order with trailing zeros
// removed, the series plotted on a rank-abundance (Whittaker) chart.
func RankCurve(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))

	for len(out) > 0 && out[len(out)-1] == 0 {
		out = out[:len(out)-1]
	}

	return out
}

// MeanRankCurve returns the rank curve of the per-feature mean across all
// samples. It returns nil for a table with no rows.
func MeanRankCurve(m table.Matrix) []float64 {
	rows, _ := m.Dims()
	if rows == 0 {
		return nil
	}

	means := m.SumAxis(table.AxisColumns)
	floats.Scale(1/float64(rows), means)

	return RankCurve(means)
}
