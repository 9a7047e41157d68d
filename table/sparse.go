package table

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Sparse stores only the non-zero cells of a table in compressed-sparse-row
// form, backed by a CSR matrix from github.com/james-bowman/sparse.
// Reductions visit stored entries only and never densify.
type Sparse struct {
	rows, cols int
	csr        *sparse.CSR // nil when rows == 0 or cols == 0
}

// NewSparse builds a Sparse table from raw compressed-row structure:
// indptr holds rows+1 offsets into indices and data, indices the column
// index of each stored value. All three slices are copied and validated.
func NewSparse(rows, cols int, indptr, indices []int, data []float64) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrNegativeDim
	}

	if len(indptr) != rows+1 || indptr[0] != 0 || indptr[rows] != len(data) || len(indices) != len(data) {
		return nil, ErrMalformedCSR
	}

	for i := range rows {
		if indptr[i] > indptr[i+1] {
			return nil, ErrMalformedCSR
		}
	}

	for _, j := range indices {
		if j < 0 || j >= cols {
			return nil, ErrMalformedCSR
		}
	}

	s := &Sparse{rows: rows, cols: cols}
	if rows == 0 || cols == 0 {
		return s, nil
	}

	ia := make([]int, len(indptr))
	copy(ia, indptr)
	ja := make([]int, len(indices))
	copy(ja, indices)
	values := make([]float64, len(data))
	copy(values, data)

	s.csr = sparse.NewCSR(rows, cols, ia, ja, values)

	return s, nil
}

// SparseFromMatrix copies the non-zero cells of an arbitrary gonum matrix
// into a Sparse table.
func SparseFromMatrix(m mat.Matrix) *Sparse {
	r, c := m.Dims()

	s := &Sparse{rows: r, cols: c}
	if r == 0 || c == 0 {
		return s
	}

	dok := sparse.NewDOK(r, c)
	for i := range r {
		for j := range c {
			if v := m.At(i, j); v != 0 {
				dok.Set(i, j, v)
			}
		}
	}

	s.csr = dok.ToCSR()

	return s
}

// Dims returns the number of rows and columns.
func (s *Sparse) Dims() (r, c int) {
	return s.rows, s.cols
}

// At returns the value at (i, j); cells that are not stored are zero.
func (s *Sparse) At(i, j int) float64 {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		panic("table: index out of range")
	}

	return s.csr.At(i, j)
}

// T returns the transpose, implementing mat.Matrix.
func (s *Sparse) T() mat.Matrix {
	return mat.Transpose{Matrix: s}
}

// NNZ returns the number of stored entries.
func (s *Sparse) NNZ() int {
	if s.csr == nil {
		return 0
	}

	return s.csr.NNZ()
}

// SumAxis returns per-row (AxisRows) or per-column (AxisColumns) sums,
// accumulated from stored entries only.
func (s *Sparse) SumAxis(axis Axis) []float64 {
	var sums []float64

	switch axis {
	case AxisRows:
		sums = make([]float64, s.rows)
		if s.csr != nil {
			s.csr.DoNonZero(func(i, _ int, v float64) {
				sums[i] += v
			})
		}

	case AxisColumns:
		sums = make([]float64, s.cols)
		if s.csr != nil {
			s.csr.DoNonZero(func(_, j int, v float64) {
				sums[j] += v
			})
		}

	default:
		panic("table: invalid axis")
	}

	return sums
}

// CountAtLeast returns, for every column, how many entries are >= cutoff.
// Stored entries are tested directly; when 0 >= cutoff the implicit zeros
// of each column pass as well.
func (s *Sparse) CountAtLeast(cutoff float64) []int {
	counts := make([]int, s.cols)
	if s.csr == nil {
		return counts
	}

	stored := make([]int, s.cols)
	s.csr.DoNonZero(func(_, j int, v float64) {
		stored[j]++
		if v >= cutoff {
			counts[j]++
		}
	})

	if cutoff <= 0 {
		for j := range counts {
			counts[j] += s.rows - stored[j]
		}
	}

	return counts
}
