// Package peak locates single spectral lines inside fixed search windows.
//
// Two estimators are provided:
//
//   - [Find] returns the raw maximum of the samples inside the window.
//   - [Estimate] returns the midpoint of the two half-maximum crossings
//     (the center of the full width at half maximum), measured against the
//     window's own minimum as baseline.
//
// Both take parallel wavelength and intensity slices plus a window center
// and half-width, and report an empty window through a false ok value
// rather than an error. Mismatched slice lengths are a programming error
// and panic.
//
// # Crossing search
//
// Starting at the peak, [Estimate] walks outward on each side while the
// intensity stays strictly above the half height. The crossing is then
// linearly interpolated between the last sample above and the first sample
// at or below the half height. When the walk cannot move (the peak is the
// first or last sample of the window) the peak position itself is used.
// If a walk reaches the window edge while still above the half height, the
// last segment is extended to the half height, so the crossing may lie
// outside the window. A flat last segment falls back to the sample where the
// walk stopped.
//
// [Locate] wraps both estimators behind a [Method] selector for callers
// that work with [series.Series] values and named [Target] windows.
package peak
