package volume

import (
	"fmt"

	"github.com/OkanPinar/trendyways/indicator/core"
)

// DefaultMFIPeriod is the look-back used by MFI.
const DefaultMFIPeriod = 14

// MFI computes the Money Flow Index with the default 14-bar window.
func MFI(bars []core.Bar) (core.Aligned[float64], error) {
	return MFIWithPeriod(bars, DefaultMFIPeriod)
}

// MFIWithPeriod computes the Money Flow Index over period transitions.
//
// Raw flow is typical price times volume. A transition whose typical price
// did not fall counts as positive flow, one that fell counts as negative.
// The first value sits at index period. A window without negative flow
// divides by zero and yields 100 (or NaN when both sides are zero).
func MFIWithPeriod(bars []core.Bar, period int) (core.Aligned[float64], error) {
	if err := core.CheckPeriod("mfi", period); err != nil {
		return core.Aligned[float64]{}, err
	}
	pos, neg := moneyFlows(bars)

	sumPos := core.Window(pos, period, core.Sum[float64])
	sumNeg := core.Window(neg, period, core.Sum[float64])
	ratio, err := core.Div(sumPos, sumNeg)
	if err != nil {
		return core.Aligned[float64]{}, fmt.Errorf("mfi: %w", err)
	}

	out := make([]float64, len(ratio))
	for i, r := range ratio {
		out[i] = 100 - 100/(1+r)
	}
	return core.Align(len(bars), out), nil
}

// moneyFlows splits the raw money flow of every transition into its
// positive and negative side. Both slices hold len(bars)-1 entries.
func moneyFlows(bars []core.Bar) (pos, neg []float64) {
	if len(bars) < 2 {
		return nil, nil
	}
	pos = make([]float64, len(bars)-1)
	neg = make([]float64, len(bars)-1)
	prev := bars[0].TypicalPrice()
	for i := 1; i < len(bars); i++ {
		tp := bars[i].TypicalPrice()
		flow := tp * bars[i].Volume
		if prev <= tp {
			pos[i-1] = flow
		} else {
			neg[i-1] = flow
		}
		prev = tp
	}
	return pos, neg
}
