package momentum

import (
	"fmt"

	"github.com/OkanPinar/trendyways/indicator/core"
	"github.com/OkanPinar/trendyways/indicator/trend"
)

const (
	DefaultMACDFastPeriod   = 12
	DefaultMACDSlowPeriod   = 26
	DefaultMACDSignalPeriod = 9
)

// MACDPoint is the oscillator line, its signal line and their difference at
// one input position.
type MACDPoint struct {
	Line   float64
	Signal float64
	Hist   float64
}

// MACD computes the percentage MACD with the standard 12/26/9 periods.
func MACD(values []float64) ([]MACDPoint, error) {
	return MACDWithParams(values, DefaultMACDFastPeriod, DefaultMACDSlowPeriod, DefaultMACDSignalPeriod)
}

// MACDWithParams computes the percentage MACD with custom periods.
//
// The line is 100*(fastEMA/slowEMA - 1) and is 0 wherever the slow EMA is not
// yet defined or is 0. The signal line is the EMA of the line taken from index
// slow-1 onward, so the zero padding never enters it; it reads 0 until its
// first value. The result has one point per input value.
func MACDWithParams(values []float64, fast, slow, signal int) ([]MACDPoint, error) {
	for _, p := range []struct {
		name   string
		period int
	}{{"macd fast", fast}, {"macd slow", slow}, {"macd signal", signal}} {
		if err := core.CheckPeriod(p.name, p.period); err != nil {
			return nil, err
		}
	}
	if fast >= slow {
		return nil, fmt.Errorf("macd: %w: fast period %d must be less than slow period %d", core.ErrInvalidPeriod, fast, slow)
	}
	if err := core.NeedAtLeast("macd", slow+signal-1, len(values)); err != nil {
		return nil, err
	}

	fastEMA, err := trend.EMA(values, fast)
	if err != nil {
		return nil, fmt.Errorf("macd: failed to compute fast EMA: %w", err)
	}
	slowEMA, err := trend.EMA(values, slow)
	if err != nil {
		return nil, fmt.Errorf("macd: failed to compute slow EMA: %w", err)
	}

	line, err := core.Combine(fastEMA.Dense(0), slowEMA.Dense(0), func(f, s float64) float64 {
		if s == 0 {
			return 0 // slow EMA undefined or zero
		}
		return 100 * ((f / s) - 1)
	})
	if err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}

	padding := slow - 1
	signalEMA, err := trend.EMA(line[padding:], signal)
	if err != nil {
		return nil, fmt.Errorf("macd: failed to compute signal EMA: %w", err)
	}
	signalLine := make([]float64, padding, len(values))
	signalLine = append(signalLine, signalEMA.Dense(0)...)

	return core.Combine(line, signalLine, func(l, s float64) MACDPoint {
		return MACDPoint{Line: l, Signal: s, Hist: l - s}
	})
}

// MACDOf is MACD over the projection of series through sel.
func MACDOf[T any](series []T, sel core.Selector[T]) ([]MACDPoint, error) {
	values, err := core.Project(series, sel)
	if err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}
	return MACD(values)
}

// SplitMACD returns the line, signal and histogram as separate slices.
func SplitMACD(points []MACDPoint) (line, signal, hist []float64) {
	line = make([]float64, len(points))
	signal = make([]float64, len(points))
	hist = make([]float64, len(points))
	for i, p := range points {
		line[i], signal[i], hist[i] = p.Line, p.Signal, p.Hist
	}
	return line, signal, hist
}
