// Package loader reads Lorrca measurement exports.
//
// An export is a delimiter-separated text file. Metadata rows (integration
// limits, date, instrument and measurement identifiers) precede a header row
// whose first cell is "#". Every following row carries a sample index in its
// first cell and one value per header column; decimals may use a comma.
// Rows whose width does not match the header are skipped.
//
// A [Schema] names the columns a measurement kind requires and which of them
// form the stress and response axes of its curve.
package loader
