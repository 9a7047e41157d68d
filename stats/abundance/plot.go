package abundance

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/cwbudde/algo-biostat/table"
)

// PrevalencePlot builds a chart with one prevalence curve per feature,
// skipping features carried by no more than minPrev of the samples. A
// bundle of steep curves indicates a core set of features shared across
// the population. The caller is responsible for saving the returned plot.
func PrevalencePlot(m table.Matrix, minPrev float64) (*plot.Plot, error) {
	rows, cols := m.Dims()

	p := plot.New()
	p.Title.Text = "abundance vs prevalence"
	p.X.Label.Text = "abundance cutoff"
	p.Y.Label.Text = "prevalence"

	if rows == 0 {
		return p, nil
	}

	minCount := float64(rows) * minPrev
	col := make([]float64, rows)

	for j := range cols {
		nonzero := 0
		for i := range rows {
			col[i] = m.At(i, j)
			if col[i] != 0 {
				nonzero++
			}
		}

		if float64(nonzero) <= minCount {
			continue
		}

		cutoffs, prev := PrevalenceCurve(col)

		xy := make(plotter.XYs, len(cutoffs))
		for k := range cutoffs {
			xy[k] = plotter.XY{X: cutoffs[k], Y: prev[k]}
		}

		line, err := plotter.NewLine(xy)
		if err != nil {
			return nil, fmt.Errorf("abundance: building curve for feature %d: %w", j, err)
		}

		line.Color = color.NRGBA{R: 0x1b, G: 0x9e, B: 0x77, A: 0x80}
		p.Add(line)
	}

	return p, nil
}
