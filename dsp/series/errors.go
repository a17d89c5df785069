package series

import "errors"

var (
	// ErrEmpty is returned when an operation needs at least one sample.
	ErrEmpty = errors.New("series is empty")
	// ErrZeroPeak is returned by [Series.Normalize] when every intensity is zero.
	ErrZeroPeak = errors.New("series has no non-zero intensity")
)
