package curve

import "errors"

var (
	// ErrDataColumnNotFound reports a required named column missing from the input.
	ErrDataColumnNotFound = errors.New("data column not found")

	// ErrInsufficientData reports a sequence or sub-range with fewer samples
	// than an operation requires.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrNoProminentExtremum reports a search domain without any local extremum,
	// for example a monotonic segment.
	ErrNoProminentExtremum = errors.New("no prominent extremum found")

	// ErrInvalidLimits reports integration bounds that are inverted or select
	// no sample of the stress axis.
	ErrInvalidLimits = errors.New("invalid limits")

	// ErrMismatchedLength reports stress and response sequences of different length.
	ErrMismatchedLength = errors.New("stress and response must have same length")

	// ErrNonFinite reports a NaN or infinite sample.
	ErrNonFinite = errors.New("non-finite sample")
)
