// Package filter implements feature-table quality filters: the abundance
// mask (axis sum against a cutoff) and the prevalence mask (fraction of
// samples in which a feature reaches a per-cell cutoff).
//
// Both filters are pure functions over a table.Matrix: they allocate
// their boolean result, never mutate the input, and behave identically
// for dense and sparse representations.
package filter
