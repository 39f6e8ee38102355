package levels

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OkanPinar/trendyways/indicator/core"
)

// ErrUnknownTrend is returned by ParseTrend for anything but the two trend
// names.
var ErrUnknownTrend = errors.New("unknown trend")

// Trend selects the direction retracements are measured from.
type Trend int

const (
	Uptrend Trend = iota
	Downtrend
)

func (t Trend) String() string {
	if t == Downtrend {
		return "DOWNTREND"
	}
	return "UPTREND"
}

// ParseTrend accepts UPTREND or DOWNTREND in any case.
func ParseTrend(s string) (Trend, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UPTREND":
		return Uptrend, nil
	case "DOWNTREND":
		return Downtrend, nil
	}
	return Uptrend, fmt.Errorf("levels: %w %q", ErrUnknownTrend, s)
}

// FibonacciRatios are the retracement ratios, from the full move down to none.
var FibonacciRatios = [6]float64{1, 0.618, 0.5, 0.382, 0.236, 0}

// FibonacciRetracements returns the six retracement levels of every bar's
// range. In an uptrend level j is low + range*ratio[j]; in a downtrend it is
// high - range*ratio[j].
func FibonacciRetracements(bars []core.Bar, trend Trend) [][6]float64 {
	out := make([][6]float64, len(bars))
	for i, b := range bars {
		diff := b.High - b.Low
		for j, r := range FibonacciRatios {
			if trend == Downtrend {
				out[i][j] = b.High - diff*r
			} else {
				out[i][j] = b.Low + diff*r
			}
		}
	}
	return out
}
