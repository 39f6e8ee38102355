package trendyways

import (
	"math/rand"
	"testing"
)

func nrandVals(n int) []float64 {
	r := rand.New(rand.NewSource(42))
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = r.Float64() * 100
	}
	return vals
}

/*
   MovingAverage benchmarks
   -----------------------
   Each supported type (SMA, EMA, WMA) is benchmarked for three periods:
   small (5), medium (20) and large (200), always over the same 5 000 values.
*/

func benchmarkMovingAverage(b *testing.B, maType MovingAverageType, period int) {
	values := nrandVals(5_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := MovingAverage(maType, values, period); err != nil {
			b.Fatalf("MovingAverage error: %v", err)
		}
	}
}

func BenchmarkMovingAverage_SMA_Small(b *testing.B)  { benchmarkMovingAverage(b, SMAMovingAverage, 5) }
func BenchmarkMovingAverage_SMA_Medium(b *testing.B) { benchmarkMovingAverage(b, SMAMovingAverage, 20) }
func BenchmarkMovingAverage_SMA_Large(b *testing.B)  { benchmarkMovingAverage(b, SMAMovingAverage, 200) }

func BenchmarkMovingAverage_EMA_Small(b *testing.B)  { benchmarkMovingAverage(b, EMAMovingAverage, 5) }
func BenchmarkMovingAverage_EMA_Medium(b *testing.B) { benchmarkMovingAverage(b, EMAMovingAverage, 20) }
func BenchmarkMovingAverage_EMA_Large(b *testing.B)  { benchmarkMovingAverage(b, EMAMovingAverage, 200) }

func BenchmarkMovingAverage_WMA_Small(b *testing.B)  { benchmarkMovingAverage(b, WMAMovingAverage, 5) }
func BenchmarkMovingAverage_WMA_Medium(b *testing.B) { benchmarkMovingAverage(b, WMAMovingAverage, 20) }
func BenchmarkMovingAverage_WMA_Large(b *testing.B)  { benchmarkMovingAverage(b, WMAMovingAverage, 200) }

/*
   Statistics benchmarks
   ---------------------
   StdDev dominates Bollinger bands, so it gets its own numbers.
*/

func benchmarkStdDev(b *testing.B, n int) {
	values := nrandVals(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = StdDev(values)
	}
}

func BenchmarkStdDev_20(b *testing.B)   { benchmarkStdDev(b, 20) }
func BenchmarkStdDev_200(b *testing.B)  { benchmarkStdDev(b, 200) }
func BenchmarkStdDev_2000(b *testing.B) { benchmarkStdDev(b, 2000) }
