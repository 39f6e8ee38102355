// Package trendyways computes technical-analysis indicators over ordered
// OHLCV bar series: moving averages, oscillators, volatility bands, volume
// indicators, support/resistance levels and error metrics between series.
package trendyways

import (
	"io"

	"github.com/OkanPinar/trendyways/config"
	"github.com/OkanPinar/trendyways/indicator"
	"github.com/OkanPinar/trendyways/suite"
)

// ---- Series model ----
type (
	Bar             = indicator.Bar
	Field           = indicator.Field
	Selector[T any] = indicator.Selector[T]
	Aligned[T any]  = indicator.Aligned[T]
)

const (
	FieldOpen   = indicator.FieldOpen
	FieldHigh   = indicator.FieldHigh
	FieldLow    = indicator.FieldLow
	FieldClose  = indicator.FieldClose
	FieldVolume = indicator.FieldVolume
)

var (
	ErrMissingSelector   = indicator.ErrMissingSelector
	ErrUnknownField      = indicator.ErrUnknownField
	ErrInvalidPeriod     = indicator.ErrInvalidPeriod
	ErrInsufficientData  = indicator.ErrInsufficientData
	ErrLengthMismatch    = indicator.ErrLengthMismatch
	ErrInvalidMultiplier = indicator.ErrInvalidMultiplier
)

func FieldSelector(f Field) (Selector[Bar], error) { return indicator.FieldSelector(f) }
func ParseField(name string) (Field, error) { return indicator.ParseField(name) }

// ---- Statistics and error metrics ----
func Max(values []float64) float64 { return indicator.Max(values) }
func Min(values []float64) float64 { return indicator.Min(values) }
func Mean(values []float64) float64 { return indicator.Mean(values) }
func StdDev(values []float64) float64 { return indicator.StdDev(values) }
func MSE(a, b []float64) float64 { return indicator.MSE(a, b) }
func RMSE(a, b []float64) float64 { return indicator.RMSE(a, b) }
func MAE(a, b []float64) float64 { return indicator.MAE(a, b) }

// ---- Moving averages ----
type MovingAverageType = indicator.MovingAverageType

const (
	EMAMovingAverage MovingAverageType = indicator.EMAMovingAverage
	SMAMovingAverage MovingAverageType = indicator.SMAMovingAverage
	WMAMovingAverage MovingAverageType = indicator.WMAMovingAverage
)

func SMA(values []float64, period int) (Aligned[float64], error) {
	return indicator.SMA(values, period)
}

func EMA(values []float64, period int) (Aligned[float64], error) {
	return indicator.EMA(values, period)
}

func WMA(values, weights []float64) (Aligned[float64], error) {
	return indicator.WMA(values, weights)
}

func MovingAverage(maType MovingAverageType, values []float64, period int) (Aligned[float64], error) {
	return indicator.MovingAverage(maType, values, period)
}

// ---- Recurrence indicators ----
type (
	ADXResult      = indicator.ADXResult
	MACDPoint      = indicator.MACDPoint
	TrueRangePoint = indicator.TrueRangePoint
	Band           = indicator.Band
)

func ADX(bars []Bar) (ADXResult, error) { return indicator.ADX(bars) }

func RSI(values []float64, order int) (Aligned[float64], error) {
	return indicator.RSI(values, order)
}

func MACD(values []float64) ([]MACDPoint, error) { return indicator.MACD(values) }

func ATR(bars []Bar, period int) ([]TrueRangePoint, error) { return indicator.ATR(bars, period) }

func Bollinger(values []float64, n int, k float64) (Aligned[Band], error) {
	return indicator.Bollinger(values, n, k)
}

func MFI(bars []Bar) (Aligned[float64], error) { return indicator.MFI(bars) }
func OBV(bars []Bar) []float64 { return indicator.OBV(bars) }
func VPT(bars []Bar) []float64 { return indicator.VPT(bars) }

func Momentum(values []float64, order int) (Aligned[float64], error) {
	return indicator.Momentum(values, order)
}

func ROC(values []float64, order int) (Aligned[float64], error) {
	return indicator.ROC(values, order)
}

// ---- Support and resistance ----
type (
	FloorPivot     = indicator.FloorPivot
	TomDemarkPoint = indicator.TomDemarkPoint
	WoodiePoint    = indicator.WoodiePoint
	CamarillaPoint = indicator.CamarillaPoint
	Trend          = indicator.Trend
)

const (
	Uptrend   = indicator.Uptrend
	Downtrend = indicator.Downtrend
)

func FloorPivots(bars []Bar) []FloorPivot { return indicator.FloorPivots(bars) }
func TomDemarkPoints(bars []Bar) []TomDemarkPoint { return indicator.TomDemarkPoints(bars) }
func WoodiePoints(bars []Bar) []WoodiePoint { return indicator.WoodiePoints(bars) }
func CamarillaPoints(bars []Bar) []CamarillaPoint { return indicator.CamarillaPoints(bars) }

func FibonacciRetracements(bars []Bar, t Trend) [][6]float64 {
	return indicator.FibonacciRetracements(bars, t)
}

// ---- Configuration ----
type IndicatorConfig = config.IndicatorConfig

func DefaultConfig() IndicatorConfig { return config.DefaultConfig() }

func ParseConfig(data []byte) (IndicatorConfig, error) { return config.Parse(data) }

func DecodeConfig(r io.Reader) (IndicatorConfig, error) { return config.Decode(r) }

// ---- Indicator suite ----
type (
	Suite       = suite.Suite
	Report      = suite.Report
	SuiteOption = suite.Option
)

func NewSuite(cfg IndicatorConfig, opts ...SuiteOption) (*Suite, error) {
	return suite.New(cfg, opts...)
}

func NewDefaultSuite(opts ...SuiteOption) (*Suite, error) {
	return suite.NewDefault(opts...)
}
