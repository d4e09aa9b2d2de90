// Package peaks locates local extrema and ranks them by topographic prominence.
//
// A local maximum is a sample that is strictly higher than its left
// neighbour and is followed, possibly after a plateau of equal samples, by a
// strictly lower one. Plateaus yield a single candidate at their first
// index. The first and last sample of a searched range are never candidates,
// so a monotonic range has none.
//
// Prominence measures how far a peak stands out from its surroundings. From
// the peak, the range is scanned left and right until a strictly higher
// sample or the range boundary is reached; the lowest sample seen on each
// side is that side's base. The prominence is the peak value minus the
// higher of the two bases.
//
// Equal-valued samples near a chosen peak or valley are resolved by
// [TieBreak]: within ±window samples of the choice, the middle one of all
// samples holding exactly the same value wins. [DefaultTieWindow] is the
// window used by osmoscan analysis. [GlobalMax] takes no window; it picks the
// middle of every sample equal to the maximum.
//
// Valleys are found by searching the negated range, see [MostProminentValley].
package peaks
