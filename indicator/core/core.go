// Package core holds the series primitives every indicator is assembled
// from: the Bar record and field selectors, the sliding-window evaluator,
// tail-aligned results, statistics, vector operators and error metrics.
package core

import "fmt"

// -----------------------------------------------------------------------------
// Generic helpers
// -----------------------------------------------------------------------------

func copySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

// CopySlice exposes the defensive copy helper to other packages.
func CopySlice[T any](src []T) []T {
	return copySlice(src)
}

// CheckPeriod validates a look-back parameter. name is used in the message.
func CheckPeriod(name string, period int) error {
	if period < 1 {
		return fmt.Errorf("%s: %w, got %d", name, ErrInvalidPeriod, period)
	}
	return nil
}

// NeedAtLeast reports ErrInsufficientData when have < need.
func NeedAtLeast(name string, need, have int) error {
	if have < need {
		return fmt.Errorf("%s: %w: need %d, have %d", name, ErrInsufficientData, need, have)
	}
	return nil
}
