package core

import (
	"fmt"
	"math"
)

// Diff returns a-b elementwise. The result has the length of the longer
// series; positions missing from the shorter one read as 0.
func Diff[N Number](a, b []N) []float64 {
	size := len(a)
	if len(b) > size {
		size = len(b)
	}
	out := make([]float64, size)
	for i := range out {
		var x, y float64
		if i < len(a) {
			x = float64(a[i])
		}
		if i < len(b) {
			y = float64(b[i])
		}
		out[i] = x - y
	}
	return out
}

// DiffOf is Diff over two record series projected through sel.
func DiffOf[T any](a, b []T, sel Selector[T]) ([]float64, error) {
	pa, err := Project(a, sel)
	if err != nil {
		return nil, err
	}
	pb, err := Project(b, sel)
	if err != nil {
		return nil, err
	}
	return Diff(pa, pb), nil
}

// Square raises every element to the 2nd power.
func Square[N Number](values []N) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		f := float64(v)
		out[i] = f * f
	}
	return out
}

// Abs returns the absolute value of every element.
func Abs[N Number](values []N) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Abs(float64(v))
	}
	return out
}

// Div returns a/b elementwise. Division by zero is not guarded.
func Div[N Number](a, b []N) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("div: %w (%d vs %d)", ErrLengthMismatch, len(a), len(b))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = float64(a[i]) / float64(b[i])
	}
	return out, nil
}

// Sum adds every element, 0 for an empty series.
func Sum[N Number](values []N) float64 {
	sum := 0.0
	for _, v := range values {
		sum += float64(v)
	}
	return sum
}

// SumOf is Sum over the projection of series through sel.
func SumOf[T any](series []T, sel Selector[T]) (float64, error) {
	values, err := Project(series, sel)
	if err != nil {
		return 0, err
	}
	return Sum(values), nil
}

// Avg is the average of the sum of all elements, 0 for an empty series.
func Avg[N Number](values []N) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// AvgOf is Avg over the projection of series through sel.
func AvgOf[T any](series []T, sel Selector[T]) (float64, error) {
	values, err := Project(series, sel)
	if err != nil {
		return 0, err
	}
	return Avg(values), nil
}

// Combine merges two equally long series position by position.
func Combine[A, B, R any](a []A, b []B, fn func(A, B) R) ([]R, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("combine: %w (%d vs %d)", ErrLengthMismatch, len(a), len(b))
	}
	out := make([]R, len(a))
	for i := range a {
		out[i] = fn(a[i], b[i])
	}
	return out, nil
}
