// Package interp provides the interpolation primitives used to place
// landmarks between samples of a measured curve.
//
//   - [Linear2]:  2-point linear interpolation of x at a given y
//   - [Crossing]: first downward crossing of a threshold, located with [Linear2]
//
// A crossing that does not exist is reported through the boolean result,
// not through an error: a curve that never falls to the threshold inside
// the observed window is a valid measurement.
package interp
