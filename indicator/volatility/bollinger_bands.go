package volatility

import (
	"fmt"

	"github.com/OkanPinar/trendyways/indicator/core"
	"github.com/OkanPinar/trendyways/indicator/trend"
)

const (
	DefaultBollingerPeriod     = 20
	DefaultBollingerMultiplier = 2.0
)

// Band is one position of the Bollinger envelope.
type Band struct {
	Middle float64
	Upper  float64
	Lower  float64
}

// Width returns Upper-Lower.
func (b Band) Width() float64 { return b.Upper - b.Lower }

// Bollinger computes bands around the simple moving average of period n,
// k population standard deviations of the same window wide on each side.
// k = 0 collapses both bands onto the average; a negative k is rejected.
// Values[i] covers the window values[i:i+n] and is aligned to its last member.
func Bollinger(values []float64, n int, k float64) (core.Aligned[Band], error) {
	if err := core.CheckPeriod("bollinger", n); err != nil {
		return core.Aligned[Band]{}, err
	}
	if k < 0 {
		return core.Aligned[Band]{}, fmt.Errorf("bollinger: %w: %g", core.ErrInvalidMultiplier, k)
	}

	ma, err := trend.SMA(values, n)
	if err != nil {
		return core.Aligned[Band]{}, fmt.Errorf("bollinger: %w", err)
	}
	sd := core.Window(values, n, core.StdDev[float64])

	bands, err := core.Combine(ma.Values, sd, func(mid, dev float64) Band {
		width := dev * k
		return Band{Middle: mid, Upper: mid + width, Lower: mid - width}
	})
	if err != nil {
		return core.Aligned[Band]{}, fmt.Errorf("bollinger: %w", err)
	}
	return core.Align(len(values), bands), nil
}

// BollingerOf is Bollinger over the projection of series through sel.
func BollingerOf[T any](series []T, n int, k float64, sel core.Selector[T]) (core.Aligned[Band], error) {
	values, err := core.Project(series, sel)
	if err != nil {
		return core.Aligned[Band]{}, fmt.Errorf("bollinger: %w", err)
	}
	return Bollinger(values, n, k)
}
