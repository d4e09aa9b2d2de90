package peaks

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-osmo/curve"
)

// DefaultTieWindow is the half-width, in samples, of the window searched for
// equal-valued samples around a chosen extremum.
const DefaultTieWindow = 10

// Peak is a local maximum of a sequence.
type Peak struct {
	Index      int
	Value      float64
	Prominence float64
}

// LocalMaxima returns the indices of all local maxima of x in ascending order.
// Sequences shorter than three samples have none.
func LocalMaxima(x []float64) []int {
	n := len(x)
	if n < 3 {
		return nil
	}

	var out []int
	for i := 1; i < n-1; i++ {
		if x[i-1] >= x[i] {
			continue
		}

		ahead := i + 1
		for ahead < n-1 && x[ahead] == x[i] {
			ahead++
		}

		if x[ahead] < x[i] {
			out = append(out, i)
			i = ahead
		}
	}

	return out
}

// Prominence returns the topographic prominence of the sample at index i.
// The scan is bounded by x itself; pass a sub-slice to restrict it.
func Prominence(x []float64, i int) float64 {
	v := x[i]

	leftBase := v
	for j := i - 1; j >= 0 && x[j] <= v; j-- {
		if x[j] < leftBase {
			leftBase = x[j]
		}
	}

	rightBase := v
	for j := i + 1; j < len(x) && x[j] <= v; j++ {
		if x[j] < rightBase {
			rightBase = x[j]
		}
	}

	return v - math.Max(leftBase, rightBase)
}

// Find returns every local maximum of x together with its prominence.
func Find(x []float64) []Peak {
	idx := LocalMaxima(x)
	if len(idx) == 0 {
		return nil
	}

	out := make([]Peak, len(idx))
	for k, i := range idx {
		out[k] = Peak{Index: i, Value: x[i], Prominence: Prominence(x, i)}
	}

	return out
}

// TieBreak resolves equal-valued samples around index. Among the samples of
// x[index-window : index+window+1] (clipped to x) that equal x[index]
// exactly, it returns the index of the middle one. A negative window is
// treated as zero.
func TieBreak(x []float64, index, window int) int {
	window = max(window, 0)
	lo := max(0, index-window)
	hi := min(len(x), index+window+1)
	v := x[index]

	var matches []int
	for j := lo; j < hi; j++ {
		if x[j] == v {
			matches = append(matches, j)
		}
	}

	if len(matches) == 0 {
		// NaN never compares equal, not even to itself.
		return index
	}

	return matches[len(matches)/2]
}

// MostProminent returns the index, in x's coordinates, of the most prominent
// local maximum of x[start:end] after tie-breaking with the given window.
// Local maxima, prominence and the tie window are all bounded by the
// sub-range. Among equally prominent peaks the first one wins.
//
// It fails with [curve.ErrNoProminentExtremum] when the sub-range holds no
// local maximum.
func MostProminent(x []float64, start, end, window int) (int, error) {
	if err := validateRange(len(x), start, end); err != nil {
		return 0, err
	}

	view := x[start:end]
	found := Find(view)
	if len(found) == 0 {
		return 0, fmt.Errorf("peaks: %w in [%d, %d)", curve.ErrNoProminentExtremum, start, end)
	}

	best := found[0]
	for _, p := range found[1:] {
		if p.Prominence > best.Prominence {
			best = p
		}
	}

	return start + TieBreak(view, best.Index, window), nil
}

// MostProminentValley is the local-minimum counterpart of [MostProminent]:
// it searches the elementwise negation of x[start:end].
func MostProminentValley(x []float64, start, end, window int) (int, error) {
	if err := validateRange(len(x), start, end); err != nil {
		return 0, err
	}

	negated := make([]float64, end-start)
	vecmath.ScaleBlock(negated, x[start:end], -1)

	i, err := MostProminent(negated, 0, len(negated), window)
	if err != nil {
		return 0, fmt.Errorf("peaks: valley in [%d, %d): %w", start, end, err)
	}

	return start + i, nil
}

// GlobalMax returns the index of the maximum of x. When several samples hold
// the maximum, the middle one of all of them is returned, however far apart
// they lie.
//
// It fails with [curve.ErrInsufficientData] for an empty x.
func GlobalMax(x []float64) (int, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("peaks: %w: empty sequence", curve.ErrInsufficientData)
	}

	first := 0
	for i, v := range x {
		if v > x[first] {
			first = i
		}
	}

	v := x[first]
	matches := []int{first}
	for j := first + 1; j < len(x); j++ {
		if x[j] == v {
			matches = append(matches, j)
		}
	}

	return matches[len(matches)/2], nil
}

func validateRange(n, start, end int) error {
	if start < 0 || end > n || start > end {
		return fmt.Errorf("peaks: invalid range [%d, %d) for %d samples", start, end, n)
	}
	return nil
}
