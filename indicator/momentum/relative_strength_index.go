package momentum

import (
	"fmt"

	"github.com/OkanPinar/trendyways/indicator/core"
)

// DefaultRSIOrder is Wilder's original look-back.
const DefaultRSIOrder = 14

// rsiState holds the smoothed averages carried across transitions.
type rsiState struct {
	avgGain float64
	avgLoss float64
}

// value derives the RSI from the current averages. A zero average loss is not
// guarded: RS becomes +Inf (RSI 100) or NaN when both averages are zero.
func (s rsiState) value() float64 {
	rs := s.avgGain / s.avgLoss
	return 100 - (100 / (1 + rs))
}

// wilder folds one more gain/loss into the averages.
func (s rsiState) wilder(gain, loss float64, order int) rsiState {
	n := float64(order)
	return rsiState{
		avgGain: (s.avgGain*(n-1) + gain) / n,
		avgLoss: (s.avgLoss*(n-1) + loss) / n,
	}
}

// gainsAndLosses splits the N-1 price changes into positive gains and
// positive-magnitude losses.
func gainsAndLosses(values []float64) (gains, losses []float64) {
	if len(values) < 2 {
		return nil, nil
	}
	gains = make([]float64, len(values)-1)
	losses = make([]float64, len(values)-1)
	for i := 0; i < len(values)-1; i++ {
		diff := values[i+1] - values[i]
		if diff > 0 {
			gains[i] = diff
		} else if diff < 0 {
			losses[i] = -diff
		}
	}
	return gains, losses
}

// RSI computes the Relative Strength Index following J. Wilder:
//   - the first value uses the simple average gain/loss of the first order
//     transitions;
//   - later values apply Wilder smoothing with the single newest gain/loss.
//
// The first value belongs to input index order. Series with fewer than
// order+1 values return ErrInsufficientData.
func RSI(values []float64, order int) (core.Aligned[float64], error) {
	if err := core.CheckPeriod("rsi", order); err != nil {
		return core.Aligned[float64]{}, err
	}
	if err := core.NeedAtLeast("rsi", order+1, len(values)); err != nil {
		return core.Aligned[float64]{}, err
	}

	gains, losses := gainsAndLosses(values)
	state := rsiState{
		avgGain: core.Avg(gains[:order]),
		avgLoss: core.Avg(losses[:order]),
	}
	out := make([]float64, 0, len(values)-order)
	out = append(out, state.value())
	for i := order; i < len(gains); i++ {
		state = state.wilder(gains[i], losses[i], order)
		out = append(out, state.value())
	}
	return core.Align(len(values), out), nil
}

// RSIOf is RSI over the projection of series through sel.
func RSIOf[T any](series []T, order int, sel core.Selector[T]) (core.Aligned[float64], error) {
	values, err := core.Project(series, sel)
	if err != nil {
		return core.Aligned[float64]{}, fmt.Errorf("rsi: %w", err)
	}
	return RSI(values, order)
}
