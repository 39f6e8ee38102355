package volume

import (
	"fmt"

	"github.com/OkanPinar/trendyways/indicator/core"
)

// VWAP computes the cumulative Volume Weighted Average Price from the typical
// price of every bar. Bars before the first traded volume carry no value.
func VWAP(bars []core.Bar) (core.Aligned[float64], error) {
	var cumPV, cumVol float64
	out := make([]float64, 0, len(bars))
	for i, bar := range bars {
		if bar.Volume < 0 {
			return core.Aligned[float64]{}, fmt.Errorf("vwap: volume (%f) must be non-negative at bar %d", bar.Volume, i)
		}
		cumPV += bar.TypicalPrice() * bar.Volume
		cumVol += bar.Volume
		if cumVol > 0 {
			out = append(out, cumPV/cumVol)
		}
	}
	return core.Align(len(bars), out), nil
}
