package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestT3_FlatSeriesMapsOntoItself(t *testing.T) {
	flat := []float64{7, 7, 7, 7, 7, 7, 7, 7}
	assert.InDeltaSlice(t, flat, T3(flat, BollPeriod, BollVFactor), 1e-9)
}

func TestRollingStdDev(t *testing.T) {
	got := RollingStdDev([]float64{1, 2, 3, 4}, 2)
	assert.InDeltaSlice(t, []float64{0, 0.5, 0.5, 0.5}, got, 1e-12)
}

func TestRollingHighLow(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5}
	assert.Equal(t, []float64{3, 3, 4, 4, 5}, RollingHigh(values, 3))
	assert.Equal(t, []float64{3, 1, 1, 1, 1}, RollingLow(values, 3))
}

func TestBollingerT3_Ordering(t *testing.T) {
	closes := randomWalk(200, 8)
	upper, middle, lower, err := BollingerT3(closes, BollPeriod, BollNbDev, BollVFactor)
	require.NoError(t, err)
	require.Len(t, upper, len(closes))
	require.Len(t, middle, len(closes))
	require.Len(t, lower, len(closes))

	sd := RollingStdDev(closes, BollPeriod)
	for i := range closes {
		assert.GreaterOrEqual(t, upper[i], middle[i])
		assert.GreaterOrEqual(t, middle[i], lower[i])
		assert.InDelta(t, 2*BollNbDev*sd[i], upper[i]-lower[i], 1e-9)
	}
}

func TestBollingerT3_FlatSeries(t *testing.T) {
	flat := make([]float64, 40)
	for i := range flat {
		flat[i] = 10
	}
	upper, middle, lower, err := BollingerT3(flat, BollPeriod, BollNbDev, BollVFactor)
	require.NoError(t, err)
	for i := range flat {
		assert.InDelta(t, 10, upper[i], 1e-9)
		assert.InDelta(t, 10, middle[i], 1e-9)
		assert.InDelta(t, 10, lower[i], 1e-9)
	}
}

func TestBollingerT3_InvalidPeriod(t *testing.T) {
	_, _, _, err := BollingerT3([]float64{1}, 0, 2, 0.7)
	assert.Error(t, err)
}
