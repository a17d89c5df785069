package peak

import (
	"github.com/chawaici/Programs-for-Data-Analysis/dsp/series"
	"gonum.org/v1/gonum/floats"
)

// Peak is the largest sample inside a search window.
type Peak struct {
	// Index is the position of the sample within the window's sub-series,
	// not within the full input.
	Index int
	X     float64
	Y     float64
}

// Find returns the sample with the largest y among those whose x lies in
// [center-window, center+window]. Ties resolve to the first occurrence.
// ok is false when no sample falls inside the window.
//
// Find panics if len(x) != len(y).
func Find(x, y []float64, center, window float64) (Peak, bool) {
	sub := series.New(x, y).Window(center, window)
	return findIn(sub)
}

func findIn(sub series.Series) (Peak, bool) {
	if sub.Len() == 0 {
		return Peak{}, false
	}
	i := floats.MaxIdx(sub.Y)
	return Peak{Index: i, X: sub.X[i], Y: sub.Y[i]}, true
}
