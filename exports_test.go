package trendyways

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExports_Statistics(t *testing.T) {
	serie := []float64{-3, -1, -7}
	assert.Equal(t, -1.0, Max(serie))
	assert.Equal(t, -7.0, Min(serie))
	assert.Equal(t, -11.0/3, Mean(serie))
	assert.Equal(t, 0.0, StdDev([]float64{4, 4, 4}))
	assert.Equal(t, 0.0, MSE(serie, serie))
	assert.Equal(t, 0.0, RMSE(serie, serie))
	assert.Equal(t, 0.0, MAE(serie, serie))
}

func TestExports_Indicators(t *testing.T) {
	closes := make([]float64, 40)
	bars := make([]Bar, 40)
	for i := range closes {
		c := 50 + float64(i%7) - float64(i%3)
		closes[i] = c
		bars[i] = Bar{Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 10}
	}

	rsi, err := RSI(closes, 14)
	require.NoError(t, err)
	assert.Equal(t, 14, rsi.Start)

	macd, err := MACD(closes)
	require.NoError(t, err)
	assert.Len(t, macd, len(closes))

	bands, err := Bollinger(closes, 20, 2)
	require.NoError(t, err)
	assert.Equal(t, 19, bands.Start)

	adx, err := ADX(bars)
	require.NoError(t, err)
	assert.Equal(t, 28, adx.ADX.Start)

	assert.Len(t, OBV(bars), len(bars))
	assert.Len(t, FloorPivots(bars), len(bars))

	_, err = RSI(closes[:5], 14)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestExports_SuiteFromYAML(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader("indicators: [sma, obv]\nsma_period: 3\n"))
	require.NoError(t, err)

	s, err := NewSuite(cfg)
	require.NoError(t, err)
	report, err := s.Run([]Bar{{Close: 1, Volume: 1}, {Close: 2, Volume: 1}, {Close: 3, Volume: 1}})
	require.NoError(t, err)
	assert.Equal(t, []string{"sma", "obv"}, report.Computed)
	assert.Equal(t, []float64{2}, report.SMA.Values)
	assert.Equal(t, []float64{1, 2, 3}, report.OBV)

	_, err = ParseConfig([]byte("target_field: nope\n"))
	assert.ErrorIs(t, err, ErrUnknownField)
}
