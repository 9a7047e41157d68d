package testutil

import "math/rand"

// RandomRows generates a rows-by-cols table of uniform values in [0, max)
// with a fixed seed for reproducibility.
func RandomRows(seed int64, rows, cols int, max float64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = rng.Float64() * max
		}
	}

	return out
}

// RandomSparseRows generates a rows-by-cols table where each cell is
// non-zero with probability density, using a fixed seed. Non-zero cells
// are uniform in (0, max).
func RandomSparseRows(seed int64, rows, cols int, density, max float64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			if rng.Float64() < density {
				out[i][j] = rng.Float64() * max
			}
		}
	}

	return out
}
