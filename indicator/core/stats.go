package core

import "math"

// -----------------------------------------------------------------------------
// Reductions over raw numeric series
// -----------------------------------------------------------------------------

// Max returns the largest element. An empty series yields -math.MaxFloat64.
func Max[N Number](values []N) float64 {
	ret := -math.MaxFloat64
	for _, v := range values {
		if f := float64(v); f > ret {
			ret = f
		}
	}
	return ret
}

// Min returns the smallest element. An empty series yields math.MaxFloat64.
func Min[N Number](values []N) float64 {
	ret := math.MaxFloat64
	for _, v := range values {
		if f := float64(v); f < ret {
			ret = f
		}
	}
	return ret
}

// Mean returns the arithmetic mean, 0 for an empty series.
func Mean[N Number](values []N) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation (divisor N), 0 for an
// empty series.
func StdDev[N Number](values []N) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		diff := float64(v) - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// -----------------------------------------------------------------------------
// Reductions over projected record series
// -----------------------------------------------------------------------------

// MaxOf is Max over the projection of series through sel.
func MaxOf[T any](series []T, sel Selector[T]) (float64, error) {
	values, err := Project(series, sel)
	if err != nil {
		return 0, err
	}
	return Max(values), nil
}

// MinOf is Min over the projection of series through sel.
func MinOf[T any](series []T, sel Selector[T]) (float64, error) {
	values, err := Project(series, sel)
	if err != nil {
		return 0, err
	}
	return Min(values), nil
}

// MeanOf is Mean over the projection of series through sel.
func MeanOf[T any](series []T, sel Selector[T]) (float64, error) {
	values, err := Project(series, sel)
	if err != nil {
		return 0, err
	}
	return Mean(values), nil
}

// StdDevOf is StdDev over the projection of series through sel.
func StdDevOf[T any](series []T, sel Selector[T]) (float64, error) {
	values, err := Project(series, sel)
	if err != nil {
		return 0, err
	}
	return StdDev(values), nil
}
