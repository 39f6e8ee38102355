package volatility

import (
	"math"

	"github.com/OkanPinar/trendyways/indicator/core"
)

// DefaultATRPeriod is the classic Wilder look-back.
const DefaultATRPeriod = 14

// TrueRangePoint is the true range of one bar and the ATR reached at it.
type TrueRangePoint struct {
	TR  float64
	ATR float64
}

// trueRange is max(high-low, |high-prevClose|, |low-prevClose|).
func trueRange(prev, cur core.Bar) float64 {
	highLow := cur.High - cur.Low
	highPrevClose := math.Abs(cur.High - prev.Close)
	lowPrevClose := math.Abs(cur.Low - prev.Close)
	return math.Max(highLow, math.Max(highPrevClose, lowPrevClose))
}

// ATR computes the Average True Range with one point per bar.
//
//   - The first bar's true range is high-low and its ATR is 0.
//   - At bar period-1 the ATR is the mean of every true range so far.
//   - After that it is Wilder-smoothed: (prev*(period-1) + tr) / period.
//   - Bars before period-1 report an ATR of 0.
func ATR(bars []core.Bar, period int) ([]TrueRangePoint, error) {
	if err := core.CheckPeriod("atr", period); err != nil {
		return nil, err
	}
	out := make([]TrueRangePoint, 0, len(bars))
	trSum := 0.0
	for i, bar := range bars {
		if i == 0 {
			tr := bar.Range()
			trSum += tr
			out = append(out, TrueRangePoint{TR: tr})
			continue
		}
		tr := trueRange(bars[i-1], bar)
		trSum += tr

		var atr float64
		switch {
		case i == period-1:
			atr = trSum / float64(period)
		case i > period-1:
			atr = (out[i-1].ATR*float64(period-1) + tr) / float64(period)
		}
		out = append(out, TrueRangePoint{TR: tr, ATR: atr})
	}
	return out, nil
}

// ATRValues returns just the ATR column of points.
func ATRValues(points []TrueRangePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.ATR
	}
	return out
}
