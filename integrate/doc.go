// Package integrate computes the area under a sampled curve between two
// stress-axis bounds.
//
// [Simpson] implements the composite Simpson rule for non-uniformly spaced
// samples. An odd number of samples is covered by parabolic panels only. For
// an even number the panels cover all but the last interval, which is
// closed with Cartwright's three-point correction; two samples fall back to
// [Trapezoid]. When the stress sweep repeats a value, the repeated samples
// are first merged into one at the mean response, so every interval the
// rule weighs has positive width.
//
// [Segment] selects the integrated samples: the first sample at or above the
// lower bound up to the last sample at or below the upper bound. The segment
// slices are returned with the area so that renderers can shade the
// integrated region. [Area] applies [Segment] to a curve and its own limits.
package integrate
