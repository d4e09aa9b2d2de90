package testutil

import "math"

// Osmoscan generates a deterministic osmoscan-like curve of n samples on a
// stress axis from 100 to 500 mOsm/kg. The response has a low shoulder peak
// near 150, a valley behind it and the main hump near 290, so every
// landmark of the feature set exists.
func Osmoscan(n int) (stress, response []float64) {
	stress = make([]float64, n)
	response = make([]float64, n)
	if n == 0 {
		return stress, response
	}

	step := 0.0
	if n > 1 {
		step = 400 / float64(n-1)
	}

	for i := range stress {
		o := 100 + step*float64(i)
		stress[i] = o
		response[i] = 0.05 + gauss(o, 150, 15, 0.12) + gauss(o, 290, 70, 0.6)
	}

	return stress, response
}

// Ramp returns n samples rising linearly from start by step.
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func gauss(x, center, width, height float64) float64 {
	d := (x - center) / width
	return height * math.Exp(-d*d)
}
