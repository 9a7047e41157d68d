package filter

import (
	"errors"

	"github.com/cwbudde/algo-biostat/table"
)

// DefaultAbundanceCutoff is the default minimum axis sum.
const DefaultAbundanceCutoff = 10.0

// Errors returned by the filters.
var (
	ErrInvalidAxis     = errors.New("filter: invalid axis")
	ErrInvalidFraction = errors.New("filter: fraction must be within [0, 1]")
)

// AbundanceMask reports, for every row (table.AxisRows) or column
// (table.AxisColumns), whether its sum reaches cutoff. The comparison is
// inclusive (>=) unless strict is set, in which case the sum must exceed
// the cutoff.
//
// The result length equals the row count for AxisRows and the column
// count for AxisColumns. An axis slice with no elements sums to zero and
// is compared like any other.
func AbundanceMask(m table.Matrix, axis table.Axis, cutoff float64, strict bool) ([]bool, error) {
	if !axis.Valid() {
		return nil, ErrInvalidAxis
	}

	sums := m.SumAxis(axis)

	mask := make([]bool, len(sums))
	for i, s := range sums {
		if strict {
			mask[i] = s > cutoff
		} else {
			mask[i] = s >= cutoff
		}
	}

	return mask, nil
}
