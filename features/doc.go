// Package features derives the clinical landmarks of an osmoscan curve.
//
// [Extract] computes, in dependency order:
//
//  1. the global maximum of the response and the stress where it occurs
//  2. the half-maximum, response_max / 2
//  3. the first peak: the most prominent local maximum before the maximum
//  4. the valley: the most prominent local minimum between the first peak
//     and the maximum
//  5. the stress at which the response first falls to the half-maximum
//     after the maximum (the hyper point), which may be absent
//  6. the area under the curve between the curve's integration limits
//
// [Extractor.Maximum] and [Extractor.HyperPoint] run the first steps alone
// for analyses that need no more than the maximum.
//
// Every step is computed eagerly; the first failing step aborts the
// extraction and no partial [FeatureSet] is returned. An [Extractor] holds
// only its configuration and may be shared between goroutines; feature
// sets of different curves can be extracted in parallel.
package features
