package table

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-biostat/internal/testutil"
)

// csrFixture is the 3x4 table
//
//	1 0 2 0
//	0 0 0 0
//	0 3 0 4
func csrFixture(t *testing.T) *Sparse {
	t.Helper()
	s, err := NewSparse(3, 4,
		[]int{0, 2, 2, 4},
		[]int{0, 2, 1, 3},
		[]float64{1, 2, 3, 4},
	)
	if err != nil {
		t.Fatalf("NewSparse: %v", err)
	}
	return s
}

func TestNewSparse(t *testing.T) {
	s := csrFixture(t)

	if r, c := s.Dims(); r != 3 || c != 4 {
		t.Fatalf("Dims: got %dx%d, want 3x4", r, c)
	}
	if got := s.NNZ(); got != 4 {
		t.Fatalf("NNZ: got %d, want 4", got)
	}

	want := [][]float64{
		{1, 0, 2, 0},
		{0, 0, 0, 0},
		{0, 3, 0, 4},
	}
	for i := range 3 {
		for j := range 4 {
			if got := s.At(i, j); got != want[i][j] {
				t.Fatalf("At(%d,%d): got %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

func TestNewSparse_Errors(t *testing.T) {
	cases := []struct {
		name    string
		rows    int
		cols    int
		indptr  []int
		indices []int
		data    []float64
		want    error
	}{
		{"negative dims", -1, 2, []int{0}, nil, nil, ErrNegativeDim},
		{"short indptr", 2, 2, []int{0, 1}, []int{0}, []float64{1}, ErrMalformedCSR},
		{"nonzero first offset", 1, 2, []int{1, 1}, nil, nil, ErrMalformedCSR},
		{"final offset mismatch", 1, 2, []int{0, 2}, []int{0}, []float64{1}, ErrMalformedCSR},
		{"decreasing offsets", 2, 2, []int{0, 2, 1}, []int{0, 1}, []float64{1, 2}, ErrMalformedCSR},
		{"column out of range", 1, 2, []int{0, 1}, []int{2}, []float64{1}, ErrMalformedCSR},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSparse(tc.rows, tc.cols, tc.indptr, tc.indices, tc.data); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSparseFromMatrix(t *testing.T) {
	src := mat.NewDense(3, 4, []float64{
		1, 0, 2, 0,
		0, 0, 0, 0,
		0, 3, 0, 4,
	})
	s := SparseFromMatrix(src)

	if got := s.NNZ(); got != 4 {
		t.Fatalf("NNZ: got %d, want 4", got)
	}
	for i := range 3 {
		for j := range 4 {
			if got := s.At(i, j); got != src.At(i, j) {
				t.Fatalf("At(%d,%d): got %v, want %v", i, j, got, src.At(i, j))
			}
		}
	}
}

func TestSparse_SumAxis(t *testing.T) {
	s := csrFixture(t)

	testutil.RequireSliceNearlyEqual(t, s.SumAxis(AxisRows), []float64{3, 0, 7}, eps)
	testutil.RequireSliceNearlyEqual(t, s.SumAxis(AxisColumns), []float64{1, 3, 2, 4}, eps)
}

func TestSparse_SumAxisAgreesWithDense(t *testing.T) {
	rows := testutil.RandomSparseRows(13, 25, 35, 0.12, 50)

	dense, err := DenseFromRows(rows)
	if err != nil {
		t.Fatalf("DenseFromRows: %v", err)
	}
	sp := SparseFromMatrix(dense)

	for _, axis := range []Axis{AxisRows, AxisColumns} {
		testutil.RequireSliceNearlyEqual(t, sp.SumAxis(axis), dense.SumAxis(axis), 1e-9)
	}
}

func TestSparse_CountAtLeast(t *testing.T) {
	s := csrFixture(t)

	// Positive cutoffs see stored entries only.
	testutil.RequireIntsEqual(t, s.CountAtLeast(2), []int{0, 1, 1, 1})
	testutil.RequireIntsEqual(t, s.CountAtLeast(5), []int{0, 0, 0, 0})

	// At cutoff <= 0 the implicit zeros pass as well.
	testutil.RequireIntsEqual(t, s.CountAtLeast(0), []int{3, 3, 3, 3})
	testutil.RequireIntsEqual(t, s.CountAtLeast(-1), []int{3, 3, 3, 3})
}

func TestSparse_CountAtLeastAgreesWithDense(t *testing.T) {
	rows := testutil.RandomSparseRows(17, 20, 30, 0.2, 10)

	dense, err := DenseFromRows(rows)
	if err != nil {
		t.Fatalf("DenseFromRows: %v", err)
	}
	sp := SparseFromMatrix(dense)

	for _, cutoff := range []float64{-3, 0, 0.5, 2, 11} {
		testutil.RequireIntsEqual(t, sp.CountAtLeast(cutoff), dense.CountAtLeast(cutoff))
	}
}

func TestSparse_ZeroDimensions(t *testing.T) {
	s, err := NewSparse(0, 5, []int{0}, nil, nil)
	if err != nil {
		t.Fatalf("NewSparse: %v", err)
	}

	if got := s.SumAxis(AxisRows); len(got) != 0 {
		t.Fatalf("row sums: got length %d, want 0", len(got))
	}
	testutil.RequireSliceNearlyEqual(t, s.SumAxis(AxisColumns), []float64{0, 0, 0, 0, 0}, 0)
	testutil.RequireIntsEqual(t, s.CountAtLeast(1), []int{0, 0, 0, 0, 0})
	if got := s.NNZ(); got != 0 {
		t.Fatalf("NNZ: got %d, want 0", got)
	}

	s, err = NewSparse(2, 0, []int{0, 0, 0}, nil, nil)
	if err != nil {
		t.Fatalf("NewSparse: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, s.SumAxis(AxisRows), []float64{0, 0}, 0)
}

func TestSparse_Transpose(t *testing.T) {
	s := csrFixture(t)

	tr := s.T()
	if r, c := tr.Dims(); r != 4 || c != 3 {
		t.Fatalf("T Dims: got %dx%d, want 4x3", r, c)
	}
	if got := tr.At(3, 2); got != 4 {
		t.Fatalf("T At(3,2): got %v, want 4", got)
	}
}
