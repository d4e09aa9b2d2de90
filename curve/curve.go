package curve

import (
	"fmt"
	"math"
)

// MinSamples is the smallest number of samples a Curve may hold.
const MinSamples = 2

// Limits are the stress-axis bounds of the integrated area.
type Limits struct {
	Lower float64
	Upper float64
}

// Metadata describes the measurement a curve was recorded in.
// All fields are optional.
type Metadata struct {
	MeasurementID  string
	Date           string
	InstrumentInfo string
	PatientName    string
}

// Curve is an immutable pair of index-aligned stress and response samples.
//
// The stress axis is assumed to be non-decreasing (a monotonic sweep). This
// is a caller precondition and is not checked.
type Curve struct {
	stress   []float64
	response []float64
	limits   Limits
	meta     Metadata
}

// New validates its input and returns a Curve holding private copies of
// stress and response.
//
// It fails with [ErrMismatchedLength] when the sequences differ in length,
// [ErrInsufficientData] when they hold fewer than [MinSamples] samples,
// [ErrNonFinite] for NaN or infinite samples and [ErrInvalidLimits] unless
// limits.Lower < limits.Upper.
func New(stress, response []float64, limits Limits, meta Metadata) (*Curve, error) {
	if len(stress) != len(response) {
		return nil, fmt.Errorf("curve: %w: stress=%d response=%d", ErrMismatchedLength, len(stress), len(response))
	}

	if len(stress) < MinSamples {
		return nil, fmt.Errorf("curve: %w: %d samples, need at least %d", ErrInsufficientData, len(stress), MinSamples)
	}

	if err := validateFinite("stress", stress); err != nil {
		return nil, err
	}

	if err := validateFinite("response", response); err != nil {
		return nil, err
	}

	if err := validateLimits(limits); err != nil {
		return nil, err
	}

	return &Curve{
		stress:   append([]float64(nil), stress...),
		response: append([]float64(nil), response...),
		limits:   limits,
		meta:     meta,
	}, nil
}

// FromColumns builds a Curve from named columns, as produced by a file
// loader. It fails with [ErrDataColumnNotFound] if stressKey or responseKey
// is missing and otherwise behaves like [New].
func FromColumns(columns map[string][]float64, stressKey, responseKey string, limits Limits, meta Metadata) (*Curve, error) {
	stress, ok := columns[stressKey]
	if !ok {
		return nil, fmt.Errorf("curve: %w: %q", ErrDataColumnNotFound, stressKey)
	}

	response, ok := columns[responseKey]
	if !ok {
		return nil, fmt.Errorf("curve: %w: %q", ErrDataColumnNotFound, responseKey)
	}

	return New(stress, response, limits, meta)
}

// Len returns the number of samples.
func (c *Curve) Len() int { return len(c.stress) }

// Stress returns a copy of the stress samples.
func (c *Curve) Stress() []float64 { return append([]float64(nil), c.stress...) }

// Response returns a copy of the response samples.
func (c *Curve) Response() []float64 { return append([]float64(nil), c.response...) }

// StressAt returns the stress sample at index i.
func (c *Curve) StressAt(i int) float64 { return c.stress[i] }

// ResponseAt returns the response sample at index i.
func (c *Curve) ResponseAt(i int) float64 { return c.response[i] }

// Limits returns the integration bounds.
func (c *Curve) Limits() Limits { return c.limits }

// Metadata returns the measurement metadata.
func (c *Curve) Metadata() Metadata { return c.meta }

// View calls fn with the internal sample slices. fn must not modify or
// retain them; it exists so analysis code can avoid copying.
func (c *Curve) View(fn func(stress, response []float64)) {
	fn(c.stress, c.response)
}

func validateFinite(name string, x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("curve: %w: %s[%d] = %v", ErrNonFinite, name, i, v)
		}
	}
	return nil
}

func validateLimits(l Limits) error {
	if math.IsNaN(l.Lower) || math.IsNaN(l.Upper) {
		return fmt.Errorf("curve: %w: NaN bound", ErrInvalidLimits)
	}
	if l.Lower >= l.Upper {
		return fmt.Errorf("curve: %w: lower %g must be below upper %g", ErrInvalidLimits, l.Lower, l.Upper)
	}
	return nil
}
