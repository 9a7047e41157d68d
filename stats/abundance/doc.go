// Package abundance provides descriptive curves over feature tables:
// prevalence-vs-cutoff curves and rank-abundance series, plus chart
// construction for visual inspection.
package abundance
