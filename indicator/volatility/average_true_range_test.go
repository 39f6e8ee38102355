package volatility

import (
	"errors"
	"math"
	"testing"

	"github.com/OkanPinar/trendyways/indicator/core"
)

var atrBars = []core.Bar{
	{High: 10, Low: 8, Close: 9},
	{High: 11, Low: 9, Close: 10},
	{High: 12, Low: 9, Close: 11},
	{High: 11, Low: 7, Close: 8},
	{High: 15, Low: 12, Close: 14}, // gap up
}

func TestATR_Recurrence(t *testing.T) {
	points, err := ATR(atrBars, 3)
	if err != nil {
		t.Fatalf("ATR returned error: %v", err)
	}
	want := []TrueRangePoint{
		{TR: 2, ATR: 0},
		{TR: 2, ATR: 0},
		{TR: 3, ATR: 7.0 / 3},
		{TR: 4, ATR: 26.0 / 9},
		{TR: 7, ATR: 115.0 / 27},
	}
	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(points))
	}
	for i := range want {
		if math.Abs(points[i].TR-want[i].TR) > 1e-12 || math.Abs(points[i].ATR-want[i].ATR) > 1e-12 {
			t.Fatalf("point %d: got %+v, want %+v", i, points[i], want[i])
		}
	}
	atr := ATRValues(points)
	if atr[4] != points[4].ATR {
		t.Fatalf("ATRValues mismatch")
	}
}

func TestATR_ShortSeriesStaysZero(t *testing.T) {
	points, err := ATR(atrBars, DefaultATRPeriod)
	if err != nil {
		t.Fatalf("ATR returned error: %v", err)
	}
	for i, p := range points {
		if p.ATR != 0 {
			t.Fatalf("ATR[%d] = %v before the first full period", i, p.ATR)
		}
	}
}

func TestATR_PeriodOne(t *testing.T) {
	points, err := ATR(atrBars, 1)
	if err != nil {
		t.Fatalf("ATR returned error: %v", err)
	}
	if points[0].ATR != 0 {
		t.Fatalf("first bar ATR must be 0, got %v", points[0].ATR)
	}
	for i := 1; i < len(points); i++ {
		if points[i].ATR != points[i].TR {
			t.Fatalf("period 1 ATR should equal TR at %d", i)
		}
	}
}

func TestATR_InvalidPeriod(t *testing.T) {
	_, err := ATR(atrBars, 0)
	if !errors.Is(err, core.ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
	points, err := ATR(nil, 14)
	if err != nil || len(points) != 0 {
		t.Fatalf("empty input: %v, %v", points, err)
	}
}
