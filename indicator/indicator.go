// Package indicator gathers the category packages under one import.
package indicator

import (
	"github.com/OkanPinar/trendyways/indicator/core"
	"github.com/OkanPinar/trendyways/indicator/levels"
	"github.com/OkanPinar/trendyways/indicator/momentum"
	"github.com/OkanPinar/trendyways/indicator/trend"
	"github.com/OkanPinar/trendyways/indicator/volatility"
	"github.com/OkanPinar/trendyways/indicator/volume"
)

// ---- Series model ----
type (
	Bar             = core.Bar
	Field           = core.Field
	Number          = core.Number
	Selector[T any] = core.Selector[T]
	Aligned[T any]  = core.Aligned[T]
)

const (
	FieldOpen   = core.FieldOpen
	FieldHigh   = core.FieldHigh
	FieldLow    = core.FieldLow
	FieldClose  = core.FieldClose
	FieldVolume = core.FieldVolume
)

var (
	ErrMissingSelector   = core.ErrMissingSelector
	ErrUnknownField      = core.ErrUnknownField
	ErrInvalidPeriod     = core.ErrInvalidPeriod
	ErrInsufficientData  = core.ErrInsufficientData
	ErrLengthMismatch    = core.ErrLengthMismatch
	ErrInvalidMultiplier = core.ErrInvalidMultiplier
)

func ParseField(name string) (Field, error) { return core.ParseField(name) }
func FieldSelector(f Field) (Selector[Bar], error) { return core.FieldSelector(f) }
func Project[T any](series []T, sel Selector[T]) ([]float64, error) { return core.Project(series, sel) }

func Window[T, R any](series []T, size int, reduce func([]T) R) []R {
	return core.Window(series, size, reduce)
}

// ---- Statistics, vectors, error metrics ----
func Max[N Number](values []N) float64 { return core.Max(values) }
func Min[N Number](values []N) float64 { return core.Min(values) }
func Mean[N Number](values []N) float64 { return core.Mean(values) }
func StdDev[N Number](values []N) float64 { return core.StdDev(values) }
func Sum[N Number](values []N) float64 { return core.Sum(values) }
func Avg[N Number](values []N) float64 { return core.Avg(values) }
func Diff[N Number](a, b []N) []float64 { return core.Diff(a, b) }
func MSE[N Number](a, b []N) float64 { return core.MSE(a, b) }
func RMSE[N Number](a, b []N) float64 { return core.RMSE(a, b) }
func MAE[N Number](a, b []N) float64 { return core.MAE(a, b) }

func Combine[A, B, R any](a []A, b []B, fn func(A, B) R) ([]R, error) {
	return core.Combine(a, b, fn)
}

// ---- Moving averages ----
type MovingAverageType = trend.MovingAverageType

const (
	EMAMovingAverage MovingAverageType = trend.EMAMovingAverage
	SMAMovingAverage MovingAverageType = trend.SMAMovingAverage
	WMAMovingAverage MovingAverageType = trend.WMAMovingAverage
)

func SMA(values []float64, period int) (Aligned[float64], error) { return trend.SMA(values, period) }
func EMA(values []float64, period int) (Aligned[float64], error) { return trend.EMA(values, period) }
func WMA(values, weights []float64) (Aligned[float64], error) { return trend.WMA(values, weights) }

func SMAOf[T any](series []T, period int, sel Selector[T]) (Aligned[float64], error) {
	return trend.SMAOf(series, period, sel)
}

func EMAOf[T any](series []T, period int, sel Selector[T]) (Aligned[float64], error) {
	return trend.EMAOf(series, period, sel)
}

func WMAOf[T any](series []T, weights []float64, sel Selector[T]) (Aligned[float64], error) {
	return trend.WMAOf(series, weights, sel)
}

func MovingAverage(maType MovingAverageType, values []float64, period int) (Aligned[float64], error) {
	return trend.MovingAverage(maType, values, period)
}

func EMASmoothingFactor(period int) float64 { return trend.EMASmoothingFactor(period) }

// ---- Trend ----
type (
	ADXResult           = trend.ADXResult
	DirectionalIndex    = trend.DirectionalIndex
	DirectionalMovement = trend.DirectionalMovement
)

func ADX(bars []Bar) (ADXResult, error) { return trend.ADX(bars) }
func ADXWithOrder(bars []Bar, order int) (ADXResult, error) { return trend.ADXWithOrder(bars, order) }

// ---- Momentum ----
type MACDPoint = momentum.MACDPoint

func RSI(values []float64, order int) (Aligned[float64], error) { return momentum.RSI(values, order) }

func RSIOf[T any](series []T, order int, sel Selector[T]) (Aligned[float64], error) {
	return momentum.RSIOf(series, order, sel)
}

func MACD(values []float64) ([]MACDPoint, error) { return momentum.MACD(values) }

func MACDWithParams(values []float64, fast, slow, signal int) ([]MACDPoint, error) {
	return momentum.MACDWithParams(values, fast, slow, signal)
}

func MACDOf[T any](series []T, sel Selector[T]) ([]MACDPoint, error) {
	return momentum.MACDOf(series, sel)
}

func Momentum(values []float64, order int) (Aligned[float64], error) {
	return momentum.Momentum(values, order)
}

func ROC(values []float64, order int) (Aligned[float64], error) { return momentum.ROC(values, order) }

// ---- Volatility ----
type (
	TrueRangePoint = volatility.TrueRangePoint
	Band           = volatility.Band
)

func ATR(bars []Bar, period int) ([]TrueRangePoint, error) { return volatility.ATR(bars, period) }

func Bollinger(values []float64, n int, k float64) (Aligned[Band], error) {
	return volatility.Bollinger(values, n, k)
}

func BollingerOf[T any](series []T, n int, k float64, sel Selector[T]) (Aligned[Band], error) {
	return volatility.BollingerOf(series, n, k, sel)
}

// ---- Volume ----
func OBV(bars []Bar) []float64 { return volume.OBV(bars) }
func VPT(bars []Bar) []float64 { return volume.VPT(bars) }
func MFI(bars []Bar) (Aligned[float64], error) { return volume.MFI(bars) }
func VWAP(bars []Bar) (Aligned[float64], error) { return volume.VWAP(bars) }

func MFIWithPeriod(bars []Bar, period int) (Aligned[float64], error) {
	return volume.MFIWithPeriod(bars, period)
}

// ---- Support and resistance ----
type (
	FloorPivot     = levels.FloorPivot
	TomDemarkPoint = levels.TomDemarkPoint
	WoodiePoint    = levels.WoodiePoint
	CamarillaPoint = levels.CamarillaPoint
	Trend          = levels.Trend
)

const (
	Uptrend   = levels.Uptrend
	Downtrend = levels.Downtrend
)

func ParseTrend(s string) (Trend, error) { return levels.ParseTrend(s) }
func FloorPivots(bars []Bar) []FloorPivot { return levels.FloorPivots(bars) }
func TomDemarkPoints(bars []Bar) []TomDemarkPoint { return levels.TomDemarkPoints(bars) }
func WoodiePoints(bars []Bar) []WoodiePoint { return levels.WoodiePoints(bars) }
func CamarillaPoints(bars []Bar) []CamarillaPoint { return levels.CamarillaPoints(bars) }

func FibonacciRetracements(bars []Bar, t Trend) [][6]float64 {
	return levels.FibonacciRetracements(bars, t)
}
