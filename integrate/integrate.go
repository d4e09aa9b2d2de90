package integrate

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-osmo/curve"
)

// Result is an integrated curve segment.
type Result struct {
	Area     float64
	Stress   []float64
	Response []float64
}

// Trapezoid integrates y over x with the trapezoidal rule.
func Trapezoid(x, y []float64) (float64, error) {
	if err := validateSamples(x, y); err != nil {
		return 0, err
	}

	var sum float64
	for i := 1; i < len(x); i++ {
		sum += 0.5 * (x[i] - x[i-1]) * (y[i] + y[i-1])
	}

	return sum, nil
}

// Simpson integrates y over x with the composite Simpson rule for
// non-uniform spacing. x must be non-decreasing. Runs of equal x are
// collapsed into one sample holding the mean of their y before integrating;
// a single remaining sample spans no width and integrates to zero.
func Simpson(x, y []float64) (float64, error) {
	if err := validateSamples(x, y); err != nil {
		return 0, err
	}

	x, y = collapse(x, y)

	n := len(y)
	switch {
	case n < 2:
		return 0, nil
	case n == 2:
		return Trapezoid(x, y)
	case n%2 == 1:
		return panels(x, y, n-1), nil
	}

	area := panels(x, y, n-2)

	h0 := x[n-2] - x[n-3]
	h1 := x[n-1] - x[n-2]
	alpha := (2*h1*h1 + 3*h0*h1) / (6 * (h1 + h0))
	beta := (h1*h1 + 3*h0*h1) / (6 * h0)
	eta := h1 * h1 * h1 / (6 * h0 * (h0 + h1))

	return area + alpha*y[n-1] + beta*y[n-2] - eta*y[n-3], nil
}

// Bounds returns the inclusive index range of stress selected by limits:
// the first index with stress >= limits.Lower and the last index with
// stress <= limits.Upper. hi may be below lo when both bounds fall between
// the same pair of samples.
func Bounds(stress []float64, limits curve.Limits) (lo, hi int, err error) {
	lo = -1
	for i, s := range stress {
		if s >= limits.Lower {
			lo = i
			break
		}
	}
	if lo < 0 {
		return 0, 0, fmt.Errorf("integrate: %w: no stress sample >= lower limit %g", curve.ErrInvalidLimits, limits.Lower)
	}

	hi = -1
	for i := len(stress) - 1; i >= 0; i-- {
		if stress[i] <= limits.Upper {
			hi = i
			break
		}
	}
	if hi < 0 {
		return 0, 0, fmt.Errorf("integrate: %w: no stress sample <= upper limit %g", curve.ErrInvalidLimits, limits.Upper)
	}

	return lo, hi, nil
}

// Segment integrates response over stress between limits with [Simpson].
// It fails with [curve.ErrInvalidLimits] if a bound selects no sample and
// with [curve.ErrInsufficientData] if the segment holds fewer than two.
func Segment(stress, response []float64, limits curve.Limits) (Result, error) {
	if len(stress) != len(response) {
		return Result{}, fmt.Errorf("integrate: %w: stress=%d response=%d", curve.ErrMismatchedLength, len(stress), len(response))
	}

	lo, hi, err := Bounds(stress, limits)
	if err != nil {
		return Result{}, err
	}

	if hi-lo+1 < 2 {
		return Result{}, fmt.Errorf("integrate: %w: %d samples between limits [%g, %g]", curve.ErrInsufficientData, max(hi-lo+1, 0), limits.Lower, limits.Upper)
	}

	s := append([]float64(nil), stress[lo:hi+1]...)
	r := append([]float64(nil), response[lo:hi+1]...)

	area, err := Simpson(s, r)
	if err != nil {
		return Result{}, err
	}

	return Result{Area: area, Stress: s, Response: r}, nil
}

// Area integrates c between its own limits, see [Segment].
func Area(c *curve.Curve) (Result, error) {
	var (
		res Result
		err error
	)
	c.View(func(stress, response []float64) {
		res, err = Segment(stress, response, c.Limits())
	})
	return res, err
}

// panels sums the parabolic panels starting at even indices below stop.
func panels(x, y []float64, stop int) float64 {
	terms := make([]float64, 0, stop/2)
	for i := 0; i < stop; i += 2 {
		h0 := x[i+1] - x[i]
		h1 := x[i+2] - x[i+1]
		hsum := h0 + h1

		terms = append(terms, hsum/6*(y[i]*(2-h1/h0)+
			y[i+1]*hsum*hsum/(h0*h1)+
			y[i+2]*(2-h0/h1)))
	}
	return vecmath.Sum(terms)
}

// collapse merges runs of equal x into one sample at the mean of their y.
// It returns its inputs unchanged when no x repeats.
func collapse(x, y []float64) ([]float64, []float64) {
	repeated := false
	for i := 1; i < len(x); i++ {
		if x[i] == x[i-1] {
			repeated = true
			break
		}
	}
	if !repeated {
		return x, y
	}

	cx := make([]float64, 0, len(x))
	cy := make([]float64, 0, len(y))
	for i := 0; i < len(x); {
		j := i + 1
		for j < len(x) && x[j] == x[i] {
			j++
		}
		cx = append(cx, x[i])
		cy = append(cy, vecmath.Sum(y[i:j])/float64(j-i))
		i = j
	}
	return cx, cy
}

func validateSamples(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("integrate: %w: x=%d y=%d", curve.ErrMismatchedLength, len(x), len(y))
	}
	if len(x) < 2 {
		return fmt.Errorf("integrate: %w: %d samples, need at least 2", curve.ErrInsufficientData, len(x))
	}
	return nil
}
