package trend

import (
	"fmt"
	"math"

	"github.com/OkanPinar/trendyways/indicator/core"
)

// DefaultADXOrder is the classic Wilder look-back.
const DefaultADXOrder = 14

// DirectionalMovement is the raw step between two adjacent bars.
type DirectionalMovement struct {
	Plus      float64 // +DM
	Minus     float64 // -DM
	TrueRange float64
}

// DirectionalIndex carries the smoothed sums and the indicators derived from
// them for one bar.
type DirectionalIndex struct {
	TrueRange float64 // smoothed true range (TR14 for the default order)
	PlusDM    float64 // smoothed +DM
	MinusDM   float64 // smoothed -DM
	PlusDI    float64 // 100 * PlusDM / TrueRange
	MinusDI   float64 // 100 * MinusDM / TrueRange
	DX        float64
}

// ADXResult holds every stage of the Average Directional Index.
//
//   - Movement has one entry per bar; entry 0 is a zero pseudo-record so that
//     indices match the input.
//   - Index starts at bar `order`.
//   - ADX starts at bar 2*order and is empty for shorter series.
type ADXResult struct {
	Order    int
	Movement []DirectionalMovement
	Index    core.Aligned[DirectionalIndex]
	ADX      core.Aligned[float64]
}

// adxState is the running aggregate carried from one bar to the next.
type adxState struct {
	tr, dmp, dmn float64
}

func (s adxState) smooth(m DirectionalMovement, order float64) adxState {
	return adxState{
		tr:  s.tr - s.tr/order + m.TrueRange,
		dmp: s.dmp - s.dmp/order + m.Plus,
		dmn: s.dmn - s.dmn/order + m.Minus,
	}
}

func (s adxState) index() DirectionalIndex {
	di := DirectionalIndex{
		TrueRange: s.tr,
		PlusDM:    s.dmp,
		MinusDM:   s.dmn,
		PlusDI:    100 * (s.dmp / s.tr),
		MinusDI:   100 * (s.dmn / s.tr),
	}
	di.DX = 100 * (math.Abs(di.PlusDI-di.MinusDI) / (di.PlusDI + di.MinusDI))
	return di
}

// directionalMovement is the pair-window reducer. The true range repeats the
// |high-prevClose| term instead of using |low-prevClose|; existing results
// depend on it.
func directionalMovement(pair []core.Bar) DirectionalMovement {
	prev, cur := pair[0], pair[1]
	upMove := cur.High - prev.High
	downMove := prev.Low - cur.Low

	var dm DirectionalMovement
	if upMove > 0 || downMove > 0 {
		if upMove > downMove {
			dm.Plus = math.Abs(upMove)
		}
		if downMove > upMove {
			dm.Minus = math.Abs(downMove)
		}
	}
	dm.TrueRange = math.Max(math.Abs(cur.High-cur.Low),
		math.Max(math.Abs(cur.High-prev.Close), math.Abs(cur.High-prev.Close)))
	return dm
}

// ADX computes the Average Directional Index with the default order (14).
func ADX(bars []core.Bar) (ADXResult, error) {
	return ADXWithOrder(bars, DefaultADXOrder)
}

// ADXWithOrder computes the Average Directional Index.
//
// The sums of the first order+1 movements (pseudo-record included) seed the
// smoothed aggregates at bar `order`; each later bar applies
// x = x - x/order + current. ADX at bar 2*order is the mean DX of bars
// [order, 2*order) and is Wilder-smoothed afterwards.
func ADXWithOrder(bars []core.Bar, order int) (ADXResult, error) {
	if err := core.CheckPeriod("adx", order); err != nil {
		return ADXResult{}, err
	}
	if err := core.NeedAtLeast("adx", order+1, len(bars)); err != nil {
		return ADXResult{}, err
	}

	movement := make([]DirectionalMovement, 1, len(bars))
	movement = append(movement, core.Window(bars, 2, directionalMovement)...)

	var state adxState
	for _, m := range movement[:order+1] {
		state.tr += m.TrueRange
		state.dmp += m.Plus
		state.dmn += m.Minus
	}

	n := float64(order)
	indices := make([]DirectionalIndex, 0, len(bars)-order)
	indices = append(indices, state.index())
	for _, m := range movement[order+1:] {
		state = state.smooth(m, n)
		indices = append(indices, state.index())
	}

	var adx []float64
	if len(indices) > order {
		adx = make([]float64, 0, len(indices)-order)
		seed := 0.0
		for _, di := range indices[:order] {
			seed += di.DX
		}
		prev := seed / n
		adx = append(adx, prev)
		for _, di := range indices[order+1:] {
			prev = (prev*(n-1) + di.DX) / n
			adx = append(adx, prev)
		}
	}

	return ADXResult{
		Order:    order,
		Movement: movement,
		Index:    core.Align(len(bars), indices),
		ADX:      core.Align(len(bars), adx),
	}, nil
}

// Last returns the most recent ADX value.
func (r ADXResult) Last() (float64, error) {
	v, ok := r.ADX.Last()
	if !ok {
		return 0, fmt.Errorf("adx: %w: need more than %d bars", core.ErrInsufficientData, 2*r.Order)
	}
	return v, nil
}
