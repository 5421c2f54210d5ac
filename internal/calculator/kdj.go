package calculator

import (
	"errors"
)

// neutralKDJ fills K, D and J before the first full look-back window and seeds the smoothing.
const neutralKDJ = 50.0

// KDJ computes the stochastic oscillator.
//
// RSV is the close's position within the highest high / lowest low of the last
// `period` bars, scaled to 0~100. K and D are 1/smooth exponential smoothings of
// RSV and K respectively, and J = 3K - 2D.
func KDJ(closes, highs, lows []float64, period, smooth int) (k, d, j []float64, err error) {
	if period <= 0 || smooth <= 0 {
		return nil, nil, nil, errors.New("period and smooth must be positive")
	}
	n := len(closes)
	if len(highs) != n || len(lows) != n {
		return nil, nil, nil, errors.New("close, high and low must have equal length")
	}

	k = make([]float64, n)
	d = make([]float64, n)
	j = make([]float64, n)

	hh := RollingHigh(highs, period)
	ll := RollingLow(lows, period)
	m := float64(smooth)
	prevK, prevD := neutralKDJ, neutralKDJ

	for i := 0; i < n; i++ {
		if i < period-1 {
			k[i], d[i], j[i] = neutralKDJ, neutralKDJ, neutralKDJ
			continue
		}
		rsv := neutralKDJ
		if pos, err := RangePosition(closes[i], hh[i], ll[i]); err == nil {
			rsv = pos * 100
		}
		curK := ((m-1)*prevK + rsv) / m
		curD := ((m-1)*prevD + curK) / m
		k[i], d[i], j[i] = curK, curD, 3*curK-2*curD
		prevK, prevD = curK, curD
	}
	return k, d, j, nil
}
