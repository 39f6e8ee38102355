// Package levels derives support and resistance levels from single bars.
// Every function maps bar i to level i; a level computed from yesterday's
// bar is meant to be read as today's prediction.
package levels

import "github.com/OkanPinar/trendyways/indicator/core"

// FloorPivot holds the classic floor pivot level with three resistance and
// three support levels.
type FloorPivot struct {
	PL float64
	R1 float64
	R2 float64
	R3 float64
	S1 float64
	S2 float64
	S3 float64
}

// TomDemarkPoint is the predicted low and high of the next period.
type TomDemarkPoint struct {
	NewLow  float64
	NewHigh float64
}

// WoodiePoint holds Woodie's close-weighted pivot and two levels either side.
type WoodiePoint struct {
	Pivot float64
	R1    float64
	R2    float64
	S1    float64
	S2    float64
}

// CamarillaPoint holds the four Camarilla resistances and supports.
type CamarillaPoint struct {
	R1, R2, R3, R4 float64
	S1, S2, S3, S4 float64
}

// FloorPivots returns one FloorPivot per bar.
func FloorPivots(bars []core.Bar) []FloorPivot {
	out := make([]FloorPivot, len(bars))
	for i, b := range bars {
		rng := b.High - b.Low
		pl := b.TypicalPrice()
		r1 := 2*pl - b.Low
		s1 := 2*pl - b.High
		out[i] = FloorPivot{
			PL: pl,
			R1: r1,
			R2: pl + rng,
			R3: r1 + rng,
			S1: s1,
			S2: pl - rng,
			S3: s1 - rng,
		}
	}
	return out
}

// TomDemarkPoints returns the predicted low and high for every bar. The
// weighting of x depends on whether the bar closed below, above or at its
// open.
func TomDemarkPoints(bars []core.Bar) []TomDemarkPoint {
	out := make([]TomDemarkPoint, len(bars))
	for i, b := range bars {
		var x float64
		switch {
		case b.Close < b.Open:
			x = b.High + 2*b.Low + b.Close
		case b.Close > b.Open:
			x = 2*b.High + b.Low + b.Close
		default:
			x = b.High + b.Low + 2*b.Close
		}
		out[i] = TomDemarkPoint{
			NewLow:  x/2 - b.High,
			NewHigh: x/2 - b.Low,
		}
	}
	return out
}

// WoodiePoints returns one WoodiePoint per bar.
func WoodiePoints(bars []core.Bar) []WoodiePoint {
	out := make([]WoodiePoint, len(bars))
	for i, b := range bars {
		pivot := (b.High + b.Low + 2*b.Close) / 4
		out[i] = WoodiePoint{
			Pivot: pivot,
			R1:    2*pivot - b.Low,
			R2:    pivot + b.High - b.Low,
			S1:    2*pivot - b.High,
			S2:    pivot - b.High + b.Low,
		}
	}
	return out
}

// camarillaFactor scales the bar range before it is split into levels.
const camarillaFactor = 1.1

// CamarillaPoints returns one CamarillaPoint per bar.
func CamarillaPoints(bars []core.Bar) []CamarillaPoint {
	out := make([]CamarillaPoint, len(bars))
	for i, b := range bars {
		d := (b.High - b.Low) * camarillaFactor
		out[i] = CamarillaPoint{
			R4: d/2 + b.Close,
			R3: d/4 + b.Close,
			R2: d/6 + b.Close,
			R1: d/12 + b.Close,
			S1: b.Close - d/12,
			S2: b.Close - d/6,
			S3: b.Close - d/4,
			S4: b.Close - d/2,
		}
	}
	return out
}
