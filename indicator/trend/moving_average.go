package trend

import (
	"fmt"

	"github.com/OkanPinar/trendyways/indicator/core"
)

// MovingAverageType names one of the smoothers in this package.
type MovingAverageType string

const (
	SMAMovingAverage MovingAverageType = "SMA"
	EMAMovingAverage MovingAverageType = "EMA"
	WMAMovingAverage MovingAverageType = "WMA"
)

// ---------------------------------------------------------------------------
// Simple moving average
// ---------------------------------------------------------------------------

// SMA is the arithmetic mean of every window of the given period. The result
// holds max(0, len(values)-period+1) values aligned to the tail of values.
func SMA(values []float64, period int) (core.Aligned[float64], error) {
	if err := core.CheckPeriod("sma", period); err != nil {
		return core.Aligned[float64]{}, err
	}
	return core.Align(len(values), core.Window(values, period, core.Mean[float64])), nil
}

// SMAOf is SMA over the projection of series through sel.
func SMAOf[T any](series []T, period int, sel core.Selector[T]) (core.Aligned[float64], error) {
	values, err := core.Project(series, sel)
	if err != nil {
		return core.Aligned[float64]{}, fmt.Errorf("sma: %w", err)
	}
	return SMA(values, period)
}

// ---------------------------------------------------------------------------
// Exponential moving average
// ---------------------------------------------------------------------------

// EMASmoothingFactor returns k = 2/(period+1).
func EMASmoothingFactor(period int) float64 {
	return 2.0 / float64(period+1)
}

// EMA seeds with the simple mean of the first period values and then applies
// ema[t] = v[t]*k + ema[t-1]*(1-k). The first value belongs to input index
// period-1. A series shorter than period yields no values.
func EMA(values []float64, period int) (core.Aligned[float64], error) {
	if err := core.CheckPeriod("ema", period); err != nil {
		return core.Aligned[float64]{}, err
	}
	if len(values) < period {
		return core.Align[float64](len(values), nil), nil
	}

	k := EMASmoothingFactor(period)
	out := make([]float64, 0, len(values)-period+1)
	prev := core.Avg(values[:period])
	out = append(out, prev)
	for _, v := range values[period:] {
		prev = v*k + prev*(1-k)
		out = append(out, prev)
	}
	return core.Align(len(values), out), nil
}

// EMAOf is EMA over the projection of series through sel.
func EMAOf[T any](series []T, period int, sel core.Selector[T]) (core.Aligned[float64], error) {
	values, err := core.Project(series, sel)
	if err != nil {
		return core.Aligned[float64]{}, fmt.Errorf("ema: %w", err)
	}
	return EMA(values, period)
}

// ---------------------------------------------------------------------------
// Weighted moving average
// ---------------------------------------------------------------------------

// WMA applies weights to every window of len(weights) values, weights[0]
// going to the oldest element, and divides the weighted sum by the window
// length. Weights are used as given; callers wanting a mean-like result must
// pass weights summing to 1.
func WMA(values []float64, weights []float64) (core.Aligned[float64], error) {
	if len(weights) == 0 {
		return core.Aligned[float64]{}, fmt.Errorf("wma: %w: no weights", core.ErrInvalidPeriod)
	}
	weighted := func(window []float64) float64 {
		sum := 0.0
		for j, v := range window {
			sum += v * weights[j]
		}
		return sum / float64(len(window))
	}
	return core.Align(len(values), core.Window(values, len(weights), weighted)), nil
}

// WMAOf is WMA over the projection of series through sel.
func WMAOf[T any](series []T, weights []float64, sel core.Selector[T]) (core.Aligned[float64], error) {
	values, err := core.Project(series, sel)
	if err != nil {
		return core.Aligned[float64]{}, fmt.Errorf("wma: %w", err)
	}
	return WMA(values, weights)
}

// ---------------------------------------------------------------------------
// Dispatch by type
// ---------------------------------------------------------------------------

// MovingAverage computes the average of the given type. WMA uses equal weights
// of 1/period and, since WMA divides by the window length, its values are
// the SMA scaled by 1/period. Call WMA directly for other weightings.
func MovingAverage(maType MovingAverageType, values []float64, period int) (core.Aligned[float64], error) {
	switch maType {
	case SMAMovingAverage:
		return SMA(values, period)
	case EMAMovingAverage:
		return EMA(values, period)
	case WMAMovingAverage:
		if err := core.CheckPeriod("wma", period); err != nil {
			return core.Aligned[float64]{}, err
		}
		return WMA(values, EqualWeights(period))
	default:
		return core.Aligned[float64]{}, fmt.Errorf("unsupported moving-average type %q", maType)
	}
}

// EqualWeights returns period weights of 1/period each.
func EqualWeights(period int) []float64 {
	if period < 1 {
		return nil
	}
	w := make([]float64, period)
	for i := range w {
		w[i] = 1 / float64(period)
	}
	return w
}
