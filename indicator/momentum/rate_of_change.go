package momentum

import (
	"fmt"

	"github.com/OkanPinar/trendyways/indicator/core"
)

// Momentum returns value[t] - value[t-order] for every t >= order.
//
//	Momentum([]float64{12, 34, 23, 81}, 1) // [22, -11, 58]
func Momentum(values []float64, order int) (core.Aligned[float64], error) {
	if err := core.CheckPeriod("momentum", order); err != nil {
		return core.Aligned[float64]{}, err
	}
	mom := core.Window(values, order+1, func(w []float64) float64 {
		return w[len(w)-1] - w[0]
	})
	return core.Align(len(values), mom), nil
}

// MomentumOf is Momentum over the projection of series through sel.
func MomentumOf[T any](series []T, order int, sel core.Selector[T]) (core.Aligned[float64], error) {
	values, err := core.Project(series, sel)
	if err != nil {
		return core.Aligned[float64]{}, fmt.Errorf("momentum: %w", err)
	}
	return Momentum(values, order)
}

// ROC returns the rate of change (value[t]-value[t-order])/value[t-order].
//
//	ROC([]float64{12, 11, 15, 10}, 1) // [-0.083, 0.364, -0.333]
func ROC(values []float64, order int) (core.Aligned[float64], error) {
	if err := core.CheckPeriod("roc", order); err != nil {
		return core.Aligned[float64]{}, err
	}
	roc := core.Window(values, order+1, func(w []float64) float64 {
		return (w[len(w)-1] - w[0]) / w[0]
	})
	return core.Align(len(values), roc), nil
}

// ROCOf is ROC over the projection of series through sel.
func ROCOf[T any](series []T, order int, sel core.Selector[T]) (core.Aligned[float64], error) {
	values, err := core.Project(series, sel)
	if err != nil {
		return core.Aligned[float64]{}, fmt.Errorf("roc: %w", err)
	}
	return ROC(values, order)
}
