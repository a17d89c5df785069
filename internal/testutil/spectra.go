package testutil

import (
	"math"
	"math/rand"
)

// Grid returns n evenly spaced wavelengths starting at start with the given
// step.
func Grid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Triangle evaluates a symmetric triangular line of the given height and
// half base width centered at center, sitting on baseline.
func Triangle(x []float64, center, halfBase, height, baseline float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := math.Abs(v - center)
		out[i] = baseline
		if d < halfBase {
			out[i] += height * (1 - d/halfBase)
		}
	}
	return out
}

// Gaussian evaluates a Gaussian line with the given full width at half
// maximum, centered at center, sitting on baseline.
func Gaussian(x []float64, center, fwhm, height, baseline float64) []float64 {
	sigma := fwhm / (2 * math.Sqrt(2*math.Ln2))
	out := make([]float64, len(x))
	for i, v := range x {
		d := (v - center) / sigma
		out[i] = baseline + height*math.Exp(-0.5*d*d)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Add returns the element-wise sum of a and b. The result has the length of
// the shorter input.
func Add(a, b []float64) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
