package peak

import (
	"fmt"
	"strings"

	"github.com/chawaici/Programs-for-Data-Analysis/dsp/series"
)

// Method selects how a window's peak position is reported.
type Method int

const (
	// MethodHalfMax reports the FWHM midpoint (see [Estimate]).
	MethodHalfMax Method = iota
	// MethodMaximum reports the raw maximum (see [Find]).
	MethodMaximum
)

var methodNames = map[Method]string{
	MethodHalfMax: "fwhm",
	MethodMaximum: "max",
}

// String returns the short name used in configuration files.
func (m Method) String() string {
	if n, ok := methodNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod resolves a method name. Matching is case-insensitive and
// accepts "fwhm", "halfmax", "max" and "maximum".
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fwhm", "halfmax", "half-max":
		return MethodHalfMax, nil
	case "max", "maximum":
		return MethodMaximum, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Target is a named search window [Center-Window, Center+Window].
type Target struct {
	Name   string
	Center float64
	Window float64
}

// Validate reports whether the window is usable.
func (t Target) Validate() error {
	if err := validateTarget(t.Center, t.Window); err != nil {
		if t.Name != "" {
			return fmt.Errorf("target %q: %w", t.Name, err)
		}
		return err
	}
	return nil
}

// Marker is the annotated position of one target.
type Marker struct {
	Target Target
	Method Method

	// X is the reported position: Peak.X for MethodMaximum, the FWHM
	// midpoint for MethodHalfMax.
	X float64
	// Y is Peak.Y for MethodMaximum and the half height for MethodHalfMax.
	Y float64

	Peak Peak
	// HalfMax is set for MethodHalfMax only.
	HalfMax *HalfMax
}

// Label formats the marker position in nanometres.
func (m Marker) Label() string {
	return fmt.Sprintf("%.1f nm", m.X)
}

// Locate applies method to the samples of s inside t. ok is false when the
// window holds no samples.
func Locate(s series.Series, t Target, method Method) (Marker, bool) {
	sub := s.Window(t.Center, t.Window)

	if method == MethodMaximum {
		pk, ok := findIn(sub)
		if !ok {
			return Marker{}, false
		}
		return Marker{Target: t, Method: method, X: pk.X, Y: pk.Y, Peak: pk}, true
	}

	hm, ok := estimateIn(sub)
	if !ok {
		return Marker{}, false
	}
	return Marker{
		Target:  t,
		Method:  MethodHalfMax,
		X:       hm.Midpoint,
		Y:       hm.HalfHeight,
		Peak:    hm.Peak,
		HalfMax: &hm,
	}, true
}

// LocateAll runs [Locate] for every target and returns the markers that were
// found together with the targets whose windows were empty.
func LocateAll(s series.Series, targets []Target, method Method) (found []Marker, missing []Target) {
	for _, t := range targets {
		m, ok := Locate(s, t, method)
		if !ok {
			missing = append(missing, t)
			continue
		}
		found = append(found, m)
	}
	return found, missing
}
