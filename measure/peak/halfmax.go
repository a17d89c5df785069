package peak

import (
	"github.com/chawaici/Programs-for-Data-Analysis/dsp/series"
	"gonum.org/v1/gonum/floats"
)

// HalfMax describes the half-maximum crossings of a peak.
type HalfMax struct {
	Peak Peak

	// Baseline is the smallest intensity inside the window.
	Baseline float64
	// HalfHeight is Baseline + (Peak.Y-Baseline)/2.
	HalfHeight float64

	Left     float64
	Right    float64
	Midpoint float64
}

// Width returns the full width at half maximum, Right - Left.
func (h HalfMax) Width() float64 {
	return h.Right - h.Left
}

// Estimate locates the peak in [center-window, center+window] and returns
// the midpoint between its left and right half-maximum crossings. ok is
// false only when no sample falls inside the window; a single-sample window
// yields Midpoint == Peak.X.
//
// Estimate panics if len(x) != len(y).
func Estimate(x, y []float64, center, window float64) (HalfMax, bool) {
	sub := series.New(x, y).Window(center, window)
	return estimateIn(sub)
}

func estimateIn(sub series.Series) (HalfMax, bool) {
	pk, ok := findIn(sub)
	if !ok {
		return HalfMax{}, false
	}

	xs, ys := sub.X, sub.Y
	baseline := floats.Min(ys)
	half := baseline + 0.5*(pk.Y-baseline)

	left := pk.X
	i := pk.Index
	for i > 0 && ys[i] > half {
		i--
	}
	if i != pk.Index {
		left = crossing(xs[i], xs[i+1], ys[i], ys[i+1], half, xs[i])
	}

	right := pk.X
	j := pk.Index
	for j < len(ys)-1 && ys[j] > half {
		j++
	}
	if j != pk.Index {
		right = crossing(xs[j-1], xs[j], ys[j-1], ys[j], half, xs[j])
	}

	return HalfMax{
		Peak:       pk,
		Baseline:   baseline,
		HalfHeight: half,
		Left:       left,
		Right:      right,
		Midpoint:   0.5 * (left + right),
	}, true
}

// crossing interpolates the x where the segment (x1,y1)-(x2,y2) reaches
// level. flat is returned when y1 == y2.
func crossing(x1, x2, y1, y2, level, flat float64) float64 {
	if y2 == y1 {
		return flat
	}
	return x1 + (level-y1)*(x2-x1)/(y2-y1)
}
