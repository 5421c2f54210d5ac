package calculator

import (
	"errors"
	"math"
)

// T3 computes Tillson's triple-exponential moving average: six chained EMAs
// blended with coefficients derived from the volume factor. The coefficients
// sum to one, so a flat series maps onto itself.
func T3(values []float64, period int, vFactor float64) []float64 {
	e1 := EMA(values, period)
	e2 := EMA(e1, period)
	e3 := EMA(e2, period)
	e4 := EMA(e3, period)
	e5 := EMA(e4, period)
	e6 := EMA(e5, period)

	a := vFactor
	c1 := -a * a * a
	c2 := 3*a*a + 3*a*a*a
	c3 := -6*a*a - 3*a - 3*a*a*a
	c4 := 1 + 3*a + a*a*a + 3*a*a

	out := make([]float64, len(values))
	for i := range values {
		out[i] = c1*e6[i] + c2*e5[i] + c3*e4[i] + c4*e3[i]
	}
	return out
}

// RollingStdDev returns the population standard deviation over the look-back
// window ending at each index; early indices use the shorter available window.
func RollingStdDev(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		start := i - period + 1
		if start < 0 {
			start = 0
		}
		window := values[start : i+1]
		mean := 0.0
		for _, v := range window {
			mean += v
		}
		mean /= float64(len(window))
		variance := 0.0
		for _, v := range window {
			diff := v - mean
			variance += diff * diff
		}
		out[i] = math.Sqrt(variance / float64(len(window)))
	}
	return out
}

// BollingerT3 computes bands around a T3 middle line, offset by nbDev standard
// deviations of the closes.
func BollingerT3(closes []float64, period int, nbDev, vFactor float64) (upper, middle, lower []float64, err error) {
	if period <= 0 {
		return nil, nil, nil, errors.New("period must be positive")
	}
	middle = T3(closes, period, vFactor)
	sd := RollingStdDev(closes, period)

	upper = make([]float64, len(closes))
	lower = make([]float64, len(closes))
	for i := range closes {
		upper[i] = middle[i] + nbDev*sd[i]
		lower[i] = middle[i] - nbDev*sd[i]
	}
	return upper, middle, lower, nil
}
