// Package report exports analysis results as tables.
//
// One [Row] is written per analysed curve. Landmarks a result does not have,
// such as the hyper point of a curve that never falls to its half-maximum or
// every landmark but the maximum of an oxygenscan, are null in JSON, empty
// in CSV and NaN in Parquet.
package report
