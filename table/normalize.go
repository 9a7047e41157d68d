package table

import "github.com/cwbudde/algo-vecmath"

// NormalizeRows scales every row in place so it sums to one, turning raw
// counts into relative abundances per sample (total-sum scaling). Rows
// that sum to zero are left unchanged.
func (d *Dense) NormalizeRows() {
	for i := range d.rows {
		row := d.RowView(i)

		sum := vecmath.Sum(row)
		if sum == 0 {
			continue
		}

		vecmath.ScaleBlockInPlace(row, 1/sum)
	}
}
