// Command tablefilter filters a CSV feature table by abundance and
// prevalence.
//
// The input's first row names the features and its first column holds
// sample identifiers; every other cell is numeric. Features whose total
// abundance or prevalence across samples falls below the configured
// cutoffs are dropped.
//
// Usage:
//
//	tablefilter [flags] input.csv
//
// Examples:
//
//	tablefilter -min-abundance 25 table.csv
//	tablefilter -prev-cutoff 0.001 -min-prev 0.2 -o filtered.csv table.csv
//	tablefilter -normalize -plot prevalence.png table.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/lmittmann/tint"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-biostat/filter"
	"github.com/cwbudde/algo-biostat/stats/abundance"
	"github.com/cwbudde/algo-biostat/table"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

type config struct {
	minAbundance float64
	strict       bool
	prevCutoff   float64
	minPrev      float64
	normalize    bool
	plotFile     string
}

func main() {
	var (
		output = flag.String("o", "-", "output file (- for stdout)")
		cfg    config
	)

	flag.Float64Var(&cfg.minAbundance, "min-abundance", filter.DefaultAbundanceCutoff,
		"minimum total abundance per feature")
	flag.BoolVar(&cfg.strict, "strict", false,
		"use a strict (>) abundance comparison")
	flag.Float64Var(&cfg.prevCutoff, "prev-cutoff", filter.DefaultPrevalenceCutoff,
		"per-cell cutoff for counting a sample as carrying a feature")
	flag.Float64Var(&cfg.minPrev, "min-prev", filter.DefaultPrevalenceFraction,
		"minimum fraction of samples carrying a feature")
	flag.BoolVar(&cfg.normalize, "normalize", false,
		"convert rows to relative abundance after filtering")
	flag.StringVar(&cfg.plotFile, "plot", "",
		"write a prevalence-curve PNG of the filtered table")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tablefilter [flags] input.csv")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *output, cfg); err != nil {
		slog.Error("tablefilter failed", "err", err)
		os.Exit(1)
	}
}

func run(input, output string, cfg config) error {
	samples, features, tab, err := readTable(input)
	if err != nil {
		return err
	}

	rows, cols := tab.Dims()
	slog.Info("loaded table", "samples", rows, "features", cols)

	abundMask, err := filter.AbundanceMask(tab, table.AxisColumns, cfg.minAbundance, cfg.strict)
	if err != nil {
		return err
	}

	prevMask, err := filter.PrevalenceMask(tab, cfg.prevCutoff, cfg.minPrev)
	if err != nil {
		return err
	}

	keep := make([]bool, cols)
	kept := 0
	for j := range keep {
		keep[j] = abundMask[j] && prevMask[j]
		if keep[j] {
			kept++
		}
	}

	filtered, err := tab.SelectColumns(keep)
	if err != nil {
		return err
	}

	slog.Info("filtered features", "kept", kept, "dropped", cols-kept)

	if cfg.normalize {
		filtered.NormalizeRows()
	}

	keptFeatures := make([]string, 0, kept)
	for j, k := range keep {
		if k {
			keptFeatures = append(keptFeatures, features[j])
		}
	}

	if err := writeTable(output, samples, keptFeatures, filtered); err != nil {
		return err
	}

	if cfg.plotFile != "" {
		p, err := abundance.PrevalencePlot(filtered, cfg.minPrev)
		if err != nil {
			return err
		}

		if err := p.Save(6*vg.Inch, 4*vg.Inch, cfg.plotFile); err != nil {
			return fmt.Errorf("saving plot: %w", err)
		}

		slog.Info("wrote prevalence plot", "file", cfg.plotFile)
	}

	return nil
}

func readTable(path string) (samples, features []string, tab *table.Dense, err error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, nil, err
		}
		defer f.Close()
		r = f
	}

	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(records) == 0 || len(records[0]) < 2 {
		return nil, nil, nil, fmt.Errorf("%s: need a header row with at least one feature column", path)
	}

	features = records[0][1:]

	data := make([][]float64, 0, len(records)-1)
	for n, rec := range records[1:] {
		samples = append(samples, rec[0])

		row := make([]float64, len(rec)-1)
		for j, cell := range rec[1:] {
			row[j], err = strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("%s: row %d, column %s: %w", path, n+2, features[j], err)
			}
		}

		data = append(data, row)
	}

	tab, err = table.DenseFromRows(data)
	if err != nil {
		return nil, nil, nil, err
	}

	return samples, features, tab, nil
}

func writeTable(path string, samples, features []string, tab *table.Dense) error {
	var out io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)

	header := append([]string{"sample"}, features...)
	if err := w.Write(header); err != nil {
		return err
	}

	rows, cols := tab.Dims()
	rec := make([]string, cols+1)
	for i := range rows {
		rec[0] = samples[i]
		for j, v := range tab.RowView(i) {
			rec[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}

		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
