// Package curve holds the immutable input of the osmoscan feature engine.
//
// A [Curve] pairs a monotonically swept stress axis (osmolality for an
// osmoscan, pO2 for an oxygenscan) with the measured response (the
// elongation index) and the two stress bounds used for area integration.
// Curves are validated once, at construction; every analysis package treats
// an existing Curve as well-formed.
//
// The package also owns the error taxonomy shared by the analysis packages:
//
//   - [ErrDataColumnNotFound]: a required named column is missing
//   - [ErrInsufficientData]: a sequence or segment is too short
//   - [ErrNoProminentExtremum]: a search domain has no local extremum
//   - [ErrInvalidLimits]: integration bounds do not select any sample
//
// Classify failures with [errors.Is].
package curve
