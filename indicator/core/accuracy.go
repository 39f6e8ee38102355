package core

import "math"

// MSE returns the mean squared error between two series. Series of different
// lengths are compared as if the shorter one were padded with zeros.
func MSE[N Number](a, b []N) float64 {
	return Avg(Square(Diff(a, b)))
}

// RMSE is the square root of MSE.
func RMSE[N Number](a, b []N) float64 {
	return math.Sqrt(MSE(a, b))
}

// MAE returns the mean absolute error between two series.
func MAE[N Number](a, b []N) float64 {
	return Avg(Abs(Diff(a, b)))
}
