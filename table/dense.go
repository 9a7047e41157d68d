package table

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// Dense stores every cell of the table in row-major order. Zero-sized
// dimensions are allowed: a table with no rows or no columns is empty but
// still carries its extents, so reductions over it return empty (or
// all-zero) results of the documented length.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense creates a rows-by-cols table backed by a copy of data, which
// must hold rows*cols values in row-major order. A nil data slice
// allocates a zero-filled table.
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrNegativeDim
	}

	d := &Dense{rows: rows, cols: cols}
	if data == nil {
		d.data = make([]float64, rows*cols)
		return d, nil
	}

	if len(data) != rows*cols {
		return nil, ErrDataLength
	}

	d.data = make([]float64, len(data))
	copy(d.data, data)

	return d, nil
}

// DenseFromRows creates a table from one slice per row. All rows must
// have the same length.
func DenseFromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil
	}

	c := len(rows[0])
	d := &Dense{rows: r, cols: c, data: make([]float64, 0, r*c)}

	for _, row := range rows {
		if len(row) != c {
			return nil, ErrRaggedRows
		}

		d.data = append(d.data, row...)
	}

	return d, nil
}

// FromMatrix copies an arbitrary gonum matrix into a Dense table.
func FromMatrix(m mat.Matrix) *Dense {
	r, c := m.Dims()
	d := &Dense{rows: r, cols: c, data: make([]float64, r*c)}

	for i := range r {
		for j := range c {
			d.data[i*c+j] = m.At(i, j)
		}
	}

	return d
}

// Dims returns the number of rows and columns.
func (d *Dense) Dims() (r, c int) {
	return d.rows, d.cols
}

// At returns the value at (i, j). It panics if the indices are out of range.
func (d *Dense) At(i, j int) float64 {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic("table: index out of range")
	}

	return d.data[i*d.cols+j]
}

// T returns the transpose, implementing mat.Matrix.
func (d *Dense) T() mat.Matrix {
	return mat.Transpose{Matrix: d}
}

// RowView returns row i as a slice sharing the table's backing array.
// The caller must not modify it.
func (d *Dense) RowView(i int) []float64 {
	if i < 0 || i >= d.rows {
		panic("table: row index out of range")
	}

	return d.data[i*d.cols : (i+1)*d.cols]
}

// SumAxis returns per-row (AxisRows) or per-column (AxisColumns) sums.
// Rows are contiguous in memory, so the row reduction is a single
// vectorized pass per row; the column reduction accumulates whole rows
// into the result vector.
func (d *Dense) SumAxis(axis Axis) []float64 {
	switch axis {
	case AxisRows:
		sums := make([]float64, d.rows)
		for i := range sums {
			sums[i] = vecmath.Sum(d.RowView(i))
		}

		return sums

	case AxisColumns:
		sums := make([]float64, d.cols)
		for i := range d.rows {
			vecmath.AddBlockInPlace(sums, d.RowView(i))
		}

		return sums

	default:
		panic("table: invalid axis")
	}
}

// CountAtLeast returns, for every column, how many entries are >= cutoff.
func (d *Dense) CountAtLeast(cutoff float64) []int {
	counts := make([]int, d.cols)

	for i := range d.rows {
		for j, v := range d.RowView(i) {
			if v >= cutoff {
				counts[j]++
			}
		}
	}

	return counts
}

// SelectRows returns a new table containing only the rows where keep is
// true, preserving order. len(keep) must equal the row count.
func (d *Dense) SelectRows(keep []bool) (*Dense, error) {
	if len(keep) != d.rows {
		return nil, ErrMaskLength
	}

	out := &Dense{cols: d.cols}
	for i, k := range keep {
		if !k {
			continue
		}

		out.rows++
		out.data = append(out.data, d.RowView(i)...)
	}

	return out, nil
}

// SelectColumns returns a new table containing only the columns where
// keep is true, preserving order. len(keep) must equal the column count.
func (d *Dense) SelectColumns(keep []bool) (*Dense, error) {
	if len(keep) != d.cols {
		return nil, ErrMaskLength
	}

	kept := 0
	for _, k := range keep {
		if k {
			kept++
		}
	}

	out := &Dense{rows: d.rows, cols: kept, data: make([]float64, 0, d.rows*kept)}

	for i := range d.rows {
		row := d.RowView(i)
		for j, k := range keep {
			if k {
				out.data = append(out.data, row[j])
			}
		}
	}

	return out, nil
}
