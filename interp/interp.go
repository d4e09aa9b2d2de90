package interp

import (
	"fmt"

	"github.com/cwbudde/algo-osmo/curve"
)

// Linear2 returns the x position where the line through (x1, y1) and
// (x2, y2) reaches y. The caller must ensure y1 != y2.
func Linear2(x1, y1, x2, y2, y float64) float64 {
	return x1 + (x2-x1)*(y-y1)/(y2-y1)
}

// Crossing walks y[start:] forward and returns the x position where y first
// reaches target from above.
//
// A sample exactly equal to target returns its x directly. The first sample
// strictly below target is interpolated against its predecessor with
// [Linear2]. If that sample is the first one scanned there is no predecessor
// and ok is false; ok is also false if y never drops to target.
//
// It fails with [curve.ErrInsufficientData] if fewer than two samples remain
// from start on, and with a plain error for mismatched lengths or an
// out-of-range start.
func Crossing(x, y []float64, start int, target float64) (pos float64, ok bool, err error) {
	if len(x) != len(y) {
		return 0, false, fmt.Errorf("interp: %w: x=%d y=%d", curve.ErrMismatchedLength, len(x), len(y))
	}
	if start < 0 || start > len(y) {
		return 0, false, fmt.Errorf("interp: start %d out of range for %d samples", start, len(y))
	}
	if len(y)-start < 2 {
		return 0, false, fmt.Errorf("interp: %w: %d samples from index %d, need 2", curve.ErrInsufficientData, len(y)-start, start)
	}

	for k := start; k < len(y); k++ {
		switch {
		case y[k] == target:
			return x[k], true, nil
		case y[k] < target:
			if k == start {
				return 0, false, nil
			}
			return Linear2(x[k-1], y[k-1], x[k], y[k], target), true, nil
		}
	}

	return 0, false, nil
}
