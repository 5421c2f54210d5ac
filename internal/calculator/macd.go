package calculator

import (
	"errors"
)

// MACD computes the convergence oscillator: DIF = EMA(fast) - EMA(slow),
// DEA = EMA(signal) of DIF, and the histogram 2 * (DIF - DEA).
func MACD(closes []float64, fast, slow, signal int) (dif, dea, hist []float64, err error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return nil, nil, nil, errors.New("periods must be positive")
	}
	if fast >= slow {
		return nil, nil, nil, errors.New("fast period must be shorter than slow period")
	}

	fastEMA := EMA(closes, fast)
	slowEMA := EMA(closes, slow)

	dif = make([]float64, len(closes))
	for i := range closes {
		dif[i] = fastEMA[i] - slowEMA[i]
	}
	dea = EMA(dif, signal)

	hist = make([]float64, len(closes))
	for i := range closes {
		hist[i] = 2 * (dif[i] - dea[i])
	}
	return dif, dea, hist, nil
}
