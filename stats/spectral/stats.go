// Package spectral computes summary statistics of a sampled spectrum given
// as wavelength/intensity pairs.
package spectral

import (
	"sort"

	"github.com/chawaici/Programs-for-Data-Analysis/dsp/series"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// Stats holds descriptive statistics of a spectrum.
type Stats struct {
	Count int
	XMin  float64 // shortest wavelength
	XMax  float64 // longest wavelength
	Min   float64
	MinX  float64 // wavelength of Min (first occurrence)
	Max   float64
	MaxX  float64 // wavelength of Max (first occurrence)
	Mean  float64
	Range float64
	// Shape descriptors. Negative intensities are treated as zero weight.
	Centroid float64 // intensity-weighted mean wavelength
	Spread   float64 // intensity-weighted standard deviation around Centroid
	Area     float64 // trapezoidal integral of intensity over wavelength
}

// Calculate computes all statistics for s. An empty series yields the zero
// value.
func Calculate(s series.Series) Stats {
	series.MustMatch(s.X, s.Y)

	n := s.Len()
	if n == 0 {
		return Stats{}
	}

	st := Stats{
		Count: n,
		XMin:  s.X[0],
		XMax:  s.X[0],
		Min:   s.Y[0],
		MinX:  s.X[0],
		Max:   s.Y[0],
		MaxX:  s.X[0],
	}
	for i, v := range s.Y {
		x := s.X[i]
		if x < st.XMin {
			st.XMin = x
		}
		if x > st.XMax {
			st.XMax = x
		}
		if v > st.Max {
			st.Max = v
			st.MaxX = x
		}
		if v < st.Min {
			st.Min = v
			st.MinX = x
		}
	}
	st.Range = st.Max - st.Min
	st.Mean = stat.Mean(s.Y, nil)

	st.Centroid, st.Spread = Centroid(s)
	st.Area = Area(s)
	return st
}

// Centroid returns the intensity-weighted mean wavelength and the weighted
// standard deviation around it. Both are 0 when no intensity is positive.
//
//	centroid = sum(x_i * y_i) / sum(y_i)
func Centroid(s series.Series) (centroid, spread float64) {
	series.MustMatch(s.X, s.Y)

	w := make([]float64, len(s.Y))
	total := 0.0
	for i, v := range s.Y {
		if v > 0 {
			w[i] = v
			total += v
		}
	}
	if total == 0 {
		return 0, 0
	}
	return stat.PopMeanStdDev(s.X, w)
}

// Area returns the trapezoidal integral of intensity over wavelength.
// Series with fewer than two samples or unsorted wavelengths yield 0.
func Area(s series.Series) float64 {
	series.MustMatch(s.X, s.Y)

	if s.Len() < 2 || !sort.Float64sAreSorted(s.X) {
		return 0
	}
	return integrate.Trapezoidal(s.X, s.Y)
}
