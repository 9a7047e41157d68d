// Package table provides dense and compressed-sparse-row feature tables
// together with the axis reductions needed for abundance and prevalence
// filtering.
//
// Rows are samples and columns are features. Both backends implement the
// Matrix interface and are interchangeable: every reduction yields the
// same result regardless of representation, up to floating-point
// summation order.
//
// # Axis convention
//
// The axis names the slices that are summed, not the dimension that
// remains: AxisRows sums each row (collapsing columns) and produces one
// value per row, AxisColumns sums each column and produces one value per
// column.
package table
