package peak

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownMethod is returned by [ParseMethod] for unrecognized names.
	ErrUnknownMethod = errors.New("unknown peak method")
	// ErrInvalidTarget is returned by [Target.Validate].
	ErrInvalidTarget = errors.New("invalid peak target")
)

func validateTarget(center, window float64) error {
	if math.IsNaN(center) || math.IsInf(center, 0) {
		return fmt.Errorf("%w: center must be finite: %f", ErrInvalidTarget, center)
	}
	if !(window > 0) || math.IsInf(window, 0) {
		return fmt.Errorf("%w: window must be > 0 and finite: %f", ErrInvalidTarget, window)
	}
	return nil
}
