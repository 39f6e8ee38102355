package volume

import "github.com/OkanPinar/trendyways/indicator/core"

// OBV computes On-Balance Volume. The first value is the first bar's
// volume; afterwards volume is added on an up close, subtracted on a down
// close and the running total carries over on an unchanged close.
func OBV(bars []core.Bar) []float64 {
	if len(bars) == 0 {
		return []float64{}
	}
	out := make([]float64, len(bars))
	obv := bars[0].Volume
	out[0] = obv
	for i := 1; i < len(bars); i++ {
		switch {
		case bars[i].Close > bars[i-1].Close:
			obv += bars[i].Volume
		case bars[i].Close < bars[i-1].Close:
			obv -= bars[i].Volume
		}
		out[i] = obv
	}
	return out
}

// VPT computes the Volume-Price Trend, seeded with the first bar's volume.
// A zero previous close propagates as ±Inf or NaN.
func VPT(bars []core.Bar) []float64 {
	if len(bars) == 0 {
		return []float64{}
	}
	out := make([]float64, len(bars))
	vpt := bars[0].Volume
	out[0] = vpt
	for i := 1; i < len(bars); i++ {
		prevClose := bars[i-1].Close
		vpt += bars[i].Volume * ((bars[i].Close - prevClose) / prevClose)
		out[i] = vpt
	}
	return out
}
