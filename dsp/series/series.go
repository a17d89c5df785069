package series

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Series is an ordered set of (X, Y) samples. X is expected to be
// non-decreasing; Y is arbitrary. len(X) == len(Y) always holds for values
// built through [New].
type Series struct {
	X []float64
	Y []float64
}

// New returns a series over x and y. The slices are used as-is, not copied.
// It panics if the lengths differ.
func New(x, y []float64) Series {
	MustMatch(x, y)
	return Series{X: x, Y: y}
}

// MustMatch panics if x and y have different lengths.
func MustMatch(x, y []float64) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("series: length mismatch: len(x)=%d len(y)=%d", len(x), len(y)))
	}
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.X) }

// Bounds returns the smallest and largest X. ok is false for an empty series.
func (s Series) Bounds() (lo, hi float64, ok bool) {
	if len(s.X) == 0 {
		return 0, 0, false
	}
	return floats.Min(s.X), floats.Max(s.X), true
}

// Range returns the smallest and largest Y. ok is false for an empty series.
func (s Series) Range() (lo, hi float64, ok bool) {
	if len(s.Y) == 0 {
		return 0, 0, false
	}
	return floats.Min(s.Y), floats.Max(s.Y), true
}

// Crop keeps the samples with lo <= X <= hi, preserving order.
func (s Series) Crop(lo, hi float64) Series {
	MustMatch(s.X, s.Y)

	var out Series
	for i, x := range s.X {
		if x >= lo && x <= hi {
			out.X = append(out.X, x)
			out.Y = append(out.Y, s.Y[i])
		}
	}
	return out
}

// Window returns the sub-series inside the closed interval
// [center-half, center+half].
func (s Series) Window(center, half float64) Series {
	return s.Crop(center-half, center+half)
}

// Normalize returns a copy whose intensities are scaled so that the largest
// absolute value equals 1. X values are copied unchanged.
func (s Series) Normalize() (Series, error) {
	if s.Len() == 0 {
		return Series{}, ErrEmpty
	}

	peak := vecmath.MaxAbs(s.Y)
	if peak == 0 {
		return Series{}, ErrZeroPeak
	}

	out := Series{
		X: append([]float64(nil), s.X...),
		Y: make([]float64, len(s.Y)),
	}
	vecmath.ScaleBlock(out.Y, s.Y, 1/peak)
	return out, nil
}
