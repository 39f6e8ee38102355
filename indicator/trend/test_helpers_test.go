package trend

import (
	"math"

	"github.com/OkanPinar/trendyways/indicator/core"
	"github.com/shopspring/decimal"
)

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	return math.Abs(a-b) <= eps
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func closeBars(closes ...float64) []core.Bar {
	bars := make([]core.Bar, len(closes))
	for i, c := range closes {
		bars[i] = core.Bar{Close: c}
	}
	return bars
}

var emaFixture = []float64{64.75, 63.79, 63.73, 63.73, 63.55,
	63.19, 63.91, 63.85, 62.95, 63.37,
	61.33, 61.51, 61.87, 60.25, 59.35,
	59.95, 58.93, 57.68, 58.82, 58.87}

var emaFixtureExpected = []float64{63.682, 63.254, 62.937, 62.743, 62.290,
	61.755, 61.427, 60.973, 60.374, 60.092,
	59.870}

// adxFixture is a 37-bar OHLC sample with a known ADX of 33.71 at bar 28.
var adxFixture = []core.Bar{
	{High: 30.20, Low: 29.41, Close: 29.87}, {High: 30.28, Low: 29.32, Close: 30.24}, {High: 30.45, Low: 29.96, Close: 30.10},
	{High: 29.35, Low: 28.74, Close: 28.90}, {High: 29.35, Low: 28.56, Close: 28.92}, {High: 29.29, Low: 28.41, Close: 28.48},
	{High: 28.83, Low: 28.08, Close: 28.56}, {High: 28.73, Low: 27.43, Close: 27.56}, {High: 28.67, Low: 27.66, Close: 28.47},
	{High: 28.85, Low: 27.83, Close: 28.28}, {High: 28.64, Low: 27.40, Close: 27.49}, {High: 27.68, Low: 27.09, Close: 27.23},
	{High: 27.21, Low: 26.18, Close: 26.35}, {High: 26.87, Low: 26.13, Close: 26.33}, {High: 27.41, Low: 26.63, Close: 27.03},
	{High: 26.94, Low: 26.13, Close: 26.22}, {High: 26.52, Low: 25.43, Close: 26.01}, {High: 26.52, Low: 25.35, Close: 25.46},
	{High: 27.09, Low: 25.88, Close: 27.03}, {High: 27.69, Low: 26.96, Close: 27.45}, {High: 28.45, Low: 27.14, Close: 28.36},
	{High: 28.53, Low: 28.01, Close: 28.43}, {High: 28.67, Low: 27.88, Close: 27.95}, {High: 29.01, Low: 27.99, Close: 29.01},
	{High: 29.87, Low: 28.76, Close: 29.38}, {High: 29.80, Low: 29.14, Close: 29.36}, {High: 29.75, Low: 28.71, Close: 28.91},
	{High: 30.65, Low: 28.93, Close: 30.61}, {High: 30.60, Low: 30.03, Close: 30.05}, {High: 30.76, Low: 29.39, Close: 30.19},
	{High: 31.17, Low: 30.14, Close: 31.12}, {High: 30.89, Low: 30.43, Close: 30.54}, {High: 30.04, Low: 29.35, Close: 29.78},
	{High: 30.66, Low: 29.99, Close: 30.04}, {High: 30.60, Low: 29.52, Close: 30.49}, {High: 31.97, Low: 30.94, Close: 31.47},
	{High: 32.10, Low: 31.54, Close: 32.05}, {High: 32.03, Low: 31.36, Close: 31.97},
}
