package trend

import (
	"math"
	"testing"

	"github.com/OkanPinar/trendyways/indicator/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestADX_Fixture(t *testing.T) {
	res, err := ADX(adxFixture)
	require.NoError(t, err)

	adx, ok := res.ADX.At(28)
	require.True(t, ok, "adx must be defined at bar 28")
	assert.Equal(t, 33.71, round(adx, 2))

	last, err := res.Last()
	require.NoError(t, err)
	assert.False(t, math.IsNaN(last))
}

func TestADX_Alignment(t *testing.T) {
	res, err := ADX(adxFixture)
	require.NoError(t, err)

	assert.Len(t, res.Movement, len(adxFixture))
	assert.Equal(t, DirectionalMovement{}, res.Movement[0])

	assert.Equal(t, 14, res.Index.Start)
	assert.Equal(t, len(adxFixture), res.Index.Len())
	_, ok := res.Index.At(13)
	assert.False(t, ok)

	assert.Equal(t, 28, res.ADX.Start)
	_, ok = res.ADX.At(27)
	assert.False(t, ok)
}

func TestADX_SeedAndRecurrence(t *testing.T) {
	res, err := ADX(adxFixture)
	require.NoError(t, err)

	var tr, dmp, dmn float64
	for _, m := range res.Movement[:15] {
		tr += m.TrueRange
		dmp += m.Plus
		dmn += m.Minus
	}
	seed := res.Index.Values[0]
	assert.Equal(t, tr, seed.TrueRange)
	assert.Equal(t, dmp, seed.PlusDM)
	assert.Equal(t, dmn, seed.MinusDM)
	assert.True(t, approxEqual(100*dmp/tr, seed.PlusDI))

	next := res.Index.Values[1]
	m := res.Movement[15]
	assert.True(t, approxEqual(tr-tr/14+m.TrueRange, next.TrueRange))

	dxs := make([]float64, 14)
	for i := range dxs {
		dxs[i] = res.Index.Values[i].DX
	}
	assert.True(t, approxEqual(core.Mean(dxs), res.ADX.Values[0]))
	assert.True(t, approxEqual((res.ADX.Values[0]*13+res.Index.Values[15].DX)/14, res.ADX.Values[1]))
}

func TestDirectionalMovement(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur core.Bar
		want      DirectionalMovement
	}{
		{
			name: "up move dominates",
			prev: core.Bar{High: 10, Low: 8, Close: 9},
			cur:  core.Bar{High: 12, Low: 9, Close: 11},
			want: DirectionalMovement{Plus: 2, TrueRange: 3},
		},
		{
			name: "down move dominates",
			prev: core.Bar{High: 10, Low: 8, Close: 9},
			cur:  core.Bar{High: 10, Low: 5, Close: 6},
			want: DirectionalMovement{Minus: 3, TrueRange: 5},
		},
		{
			name: "inside bar has no movement",
			prev: core.Bar{High: 10, Low: 8, Close: 9},
			cur:  core.Bar{High: 9.5, Low: 8.5, Close: 9},
			want: DirectionalMovement{TrueRange: 1},
		},
		{
			name: "tie collapses both",
			prev: core.Bar{High: 10, Low: 8, Close: 9},
			cur:  core.Bar{High: 11, Low: 7, Close: 9},
			want: DirectionalMovement{TrueRange: 4},
		},
		{
			name: "gap uses high to previous close",
			prev: core.Bar{High: 10, Low: 8, Close: 9},
			cur:  core.Bar{High: 14, Low: 13, Close: 13.5},
			want: DirectionalMovement{Plus: 4, TrueRange: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := directionalMovement([]core.Bar{tt.prev, tt.cur})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectionalMovement_IgnoresLowToPreviousClose(t *testing.T) {
	// A gap down: |low-prevClose| = 5 would win the textbook max, but the
	// indicator only looks at high-low and high-prevClose.
	got := directionalMovement([]core.Bar{
		{High: 20, Low: 18, Close: 19},
		{High: 15, Low: 14, Close: 14.5},
	})
	assert.Equal(t, 4.0, got.TrueRange)
}

func TestADX_ShortSeries(t *testing.T) {
	_, err := ADX(adxFixture[:14])
	assert.ErrorIs(t, err, core.ErrInsufficientData)

	res, err := ADX(adxFixture[:20])
	require.NoError(t, err)
	assert.Len(t, res.Index.Values, 6)
	assert.True(t, res.ADX.Empty())
	_, err = res.Last()
	assert.ErrorIs(t, err, core.ErrInsufficientData)

	res, err = ADX(adxFixture[:29])
	require.NoError(t, err)
	assert.Len(t, res.ADX.Values, 1)

	_, err = ADXWithOrder(adxFixture, 0)
	assert.ErrorIs(t, err, core.ErrInvalidPeriod)
}

func TestADXWithOrder_Small(t *testing.T) {
	res, err := ADXWithOrder(adxFixture, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Index.Start)
	assert.Equal(t, 6, res.ADX.Start)
	assert.Len(t, res.ADX.Values, len(adxFixture)-6)
}
