package table

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by table constructors and mask application.
var (
	ErrNegativeDim  = errors.New("table: dimensions must be non-negative")
	ErrDataLength   = errors.New("table: data length does not match dimensions")
	ErrRaggedRows   = errors.New("table: rows have unequal lengths")
	ErrMalformedCSR = errors.New("table: malformed compressed-row structure")
	ErrMaskLength   = errors.New("table: mask length does not match dimension")
)

// Axis selects which slices of a table a reduction sums. The axis names
// the slices that are summed: AxisRows sums each row (collapsing columns)
// and yields one value per row, AxisColumns sums each column and yields
// one value per column.
type Axis int

const (
	// AxisRows reduces each row to a single value; result length equals
	// the row count.
	AxisRows Axis = iota
	// AxisColumns reduces each column to a single value; result length
	// equals the column count.
	AxisColumns
)

// Valid reports whether a is a known axis value.
func (a Axis) Valid() bool {
	return a == AxisRows || a == AxisColumns
}

// String returns "rows", "columns", or "invalid".
func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "rows"
	case AxisColumns:
		return "columns"
	default:
		return "invalid"
	}
}

// Matrix is the capability contract shared by the dense and sparse
// backends. It extends the gonum matrix interface with the two reductions
// the filters rely on, so callers never branch on the concrete
// representation.
//
// Implementations do not mutate the underlying data and return freshly
// allocated slices.
type Matrix interface {
	mat.Matrix

	// SumAxis returns the sum of every row (AxisRows) or every column
	// (AxisColumns). It panics on an invalid axis value; callers holding
	// untrusted input validate with Axis.Valid first.
	SumAxis(axis Axis) []float64

	// CountAtLeast returns, for every column, the number of entries whose
	// value is >= cutoff. Implicit zeros of a sparse representation count
	// whenever 0 >= cutoff.
	CountAtLeast(cutoff float64) []int
}
