package peaks

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cwbudde/algo-osmo/curve"
)

func TestLocalMaxima(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want []int
	}{
		{"empty", nil, nil},
		{"too short", []float64{0, 1}, nil},
		{"single peak", []float64{0, 2, 0}, []int{1}},
		{"two peaks", []float64{0, 2, 1, 4, 1, 6, 0}, []int{1, 3, 5}},
		{"plateau first index", []float64{0, 3, 3, 3, 1}, []int{1}},
		{"plateau to end", []float64{0, 3, 3, 3}, nil},
		{"edge maxima ignored", []float64{5, 1, 5}, nil},
		{"monotonic", []float64{1, 2, 3, 4, 5}, nil},
		{"step then fall", []float64{0, 1, 1, 2, 0}, []int{3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := LocalMaxima(tc.x)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("LocalMaxima(%v) = %v, want %v", tc.x, got, tc.want)
			}
		})
	}
}

func TestProminence(t *testing.T) {
	x := []float64{0, 2, 1, 4, 1}

	if got := Prominence(x, 1); got != 1 {
		t.Fatalf("Prominence(x, 1) = %v, want 1", got)
	}
	if got := Prominence(x, 3); got != 3 {
		t.Fatalf("Prominence(x, 3) = %v, want 3", got)
	}
}

func TestProminenceStopsAtHigherSample(t *testing.T) {
	// The left scan from index 3 stops at the 9, so the 0 beyond it is unseen.
	x := []float64{0, 9, 2, 5, 3, 1}
	if got := Prominence(x, 3); got != 3 {
		t.Fatalf("Prominence = %v, want 3", got)
	}
}

func TestFind(t *testing.T) {
	got := Find([]float64{0, 2, 1, 4, 1})
	want := []Peak{
		{Index: 1, Value: 2, Prominence: 1},
		{Index: 3, Value: 4, Prominence: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Find() = %+v, want %+v", got, want)
	}
}

func TestMostProminentBeforeMaximum(t *testing.T) {
	response := []float64{0, 2, 1, 4, 1, 6, 0}

	got, err := MostProminent(response, 0, 5, DefaultTieWindow)
	if err != nil {
		t.Fatalf("MostProminent() error = %v", err)
	}
	if got != 3 {
		t.Fatalf("MostProminent() = %d, want 3", got)
	}
}

func TestMostProminentFirstWinsOnEqualProminence(t *testing.T) {
	x := []float64{0, 3, 0, 3, 0}
	got, err := MostProminent(x, 0, len(x), 0)
	if err != nil {
		t.Fatalf("MostProminent() error = %v", err)
	}
	if got != 1 {
		t.Fatalf("MostProminent() = %d, want 1", got)
	}
}

func TestMostProminentOffset(t *testing.T) {
	x := []float64{9, 9, 0, 1, 5, 1, 0}
	got, err := MostProminent(x, 2, len(x), DefaultTieWindow)
	if err != nil {
		t.Fatalf("MostProminent() error = %v", err)
	}
	if got != 4 {
		t.Fatalf("MostProminent() = %d, want 4", got)
	}
}

func TestMostProminentMonotonic(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	_, err := MostProminent(x, 0, 5, DefaultTieWindow)
	if !errors.Is(err, curve.ErrNoProminentExtremum) {
		t.Fatalf("error = %v, want ErrNoProminentExtremum", err)
	}
}

func TestMostProminentInvalidRange(t *testing.T) {
	x := []float64{0, 1, 0}
	for _, r := range [][2]int{{-1, 2}, {0, 4}, {2, 1}} {
		if _, err := MostProminent(x, r[0], r[1], 0); err == nil {
			t.Fatalf("range %v: expected error", r)
		}
	}
}

func TestMostProminentPlateauTieBreak(t *testing.T) {
	// The plateau candidate is index 2; the tie window moves it to the middle.
	x := []float64{0, 1, 4, 4, 4, 1, 0}
	got, err := MostProminent(x, 0, len(x), DefaultTieWindow)
	if err != nil {
		t.Fatalf("MostProminent() error = %v", err)
	}
	if got != 3 {
		t.Fatalf("MostProminent() = %d, want 3", got)
	}
}

func TestMostProminentValley(t *testing.T) {
	x := []float64{0, 5, 3, 4, 1, 2, 8, 0}

	got, err := MostProminentValley(x, 1, 6, DefaultTieWindow)
	if err != nil {
		t.Fatalf("MostProminentValley() error = %v", err)
	}
	if got != 2 {
		// Both interior minima of [5,3,4,1,2] have prominence 1; the first wins.
		t.Fatalf("MostProminentValley() = %d, want 2", got)
	}

	got, err = MostProminentValley(x, 1, 7, DefaultTieWindow)
	if err != nil {
		t.Fatalf("MostProminentValley() error = %v", err)
	}
	if got != 4 {
		t.Fatalf("MostProminentValley() = %d, want 4", got)
	}
}

func TestMostProminentValleyNone(t *testing.T) {
	x := []float64{5, 4, 3, 2, 1}
	_, err := MostProminentValley(x, 0, len(x), DefaultTieWindow)
	if !errors.Is(err, curve.ErrNoProminentExtremum) {
		t.Fatalf("error = %v, want ErrNoProminentExtremum", err)
	}
}

func TestMostProminentValleyLeavesInputUntouched(t *testing.T) {
	x := []float64{3, 1, 3}
	if _, err := MostProminentValley(x, 0, 3, 0); err != nil {
		t.Fatalf("MostProminentValley() error = %v", err)
	}
	if !reflect.DeepEqual(x, []float64{3, 1, 3}) {
		t.Fatalf("input modified: %v", x)
	}
}

func TestTieBreak(t *testing.T) {
	tests := []struct {
		name   string
		x      []float64
		index  int
		window int
		want   int
	}{
		{"single match", []float64{1, 5, 1}, 1, 10, 1},
		{"three matches", []float64{1, 2, 5, 5, 5, 2, 1}, 2, 10, 3},
		{"two matches picks upper middle", []float64{5, 5, 1}, 0, 10, 1},
		{"window excludes far match", []float64{5, 0, 0, 5}, 0, 2, 0},
		{"window includes far match", []float64{5, 0, 0, 5}, 0, 3, 3},
		{"zero window", []float64{5, 5, 5}, 1, 0, 1},
		{"negative window", []float64{5, 5, 5}, 0, -4, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TieBreak(tc.x, tc.index, tc.window); got != tc.want {
				t.Fatalf("TieBreak() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestGlobalMax(t *testing.T) {
	got, err := GlobalMax([]float64{1, 2, 5, 5, 5, 2, 1})
	if err != nil {
		t.Fatalf("GlobalMax() error = %v", err)
	}
	if got != 3 {
		t.Fatalf("GlobalMax() = %d, want 3", got)
	}

	got, err = GlobalMax([]float64{0, 1, 3, 1, 0})
	if err != nil {
		t.Fatalf("GlobalMax() error = %v", err)
	}
	if got != 2 {
		t.Fatalf("GlobalMax() = %d, want 2", got)
	}

	if _, err := GlobalMax(nil); !errors.Is(err, curve.ErrInsufficientData) {
		t.Fatalf("empty: error = %v, want ErrInsufficientData", err)
	}
}

func TestGlobalMaxDistantTies(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want int
	}{
		{"two far apart", func() []float64 { x := make([]float64, 25); x[2], x[20] = 5, 5; return x }(), 20},
		{"three far apart", func() []float64 { x := make([]float64, 40); x[1], x[15], x[38] = 7, 7, 7; return x }(), 15},
		{"all equal", []float64{1, 1, 1, 1}, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GlobalMax(tc.x)
			if err != nil {
				t.Fatalf("GlobalMax() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("GlobalMax() = %d, want %d", got, tc.want)
			}
		})
	}
}
