package engine

import "errors"

var (
	// ErrDivisionByZero is returned when the normalized duration is zero and
	// the economic exposure cannot be spread over it.
	ErrDivisionByZero = errors.New("normalized duration is zero")

	// ErrInvalidDuration is returned for negative durations and for
	// timeToElapse values above MaxTimeToElapse.
	ErrInvalidDuration = errors.New("duration out of range")

	// ErrProjectionOverflow is returned when a projection no longer fits a
	// float64, e.g. infections doubled over thousands of days.
	ErrProjectionOverflow = errors.New("projection exceeds representable range")
)
