package core

import "errors"

var (
	// ErrMissingSelector is returned when a record series is passed without a
	// way to project it onto numbers.
	ErrMissingSelector = errors.New("target selector must be specified")
	// ErrUnknownField is returned for a field name that is not part of a Bar.
	ErrUnknownField = errors.New("unknown bar field")
	// ErrInvalidPeriod is returned for a period, order or window size below 1.
	ErrInvalidPeriod = errors.New("period must be at least 1")
	// ErrInsufficientData is returned when a series is shorter than the
	// look-back an indicator needs.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidMultiplier is returned for a negative band multiplier.
	ErrInvalidMultiplier = errors.New("multiplier must not be negative")
	// ErrLengthMismatch is returned by binary operators that need equal lengths.
	ErrLengthMismatch = errors.New("series lengths differ")
)
