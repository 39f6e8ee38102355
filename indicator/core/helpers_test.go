package core

import "github.com/shopspring/decimal"

// round mirrors how the reference fixtures state their expectations.
func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
