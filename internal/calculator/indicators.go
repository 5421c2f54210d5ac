package calculator

import (
	"fmt"

	"StockResearch/internal/model"
)

// Indicator parameters used by the technical section.
const (
	MinTechnicalHistory = 30

	KDJPeriod = 9
	KDJSmooth = 3

	MACDFast   = 12
	MACDSlow   = 26
	MACDSignal = 9

	BollPeriod  = 5
	BollNbDev   = 2.0
	BollVFactor = 0.7
)

// RSIPeriods are the look-backs reported for the relative-strength index.
var RSIPeriods = [3]int{6, 12, 24}

// ComputeIndicators runs every indicator family over the full close/high/low
// history of the bundle.
func ComputeIndicators(b *model.TimeSeriesBundle) (*model.IndicatorSet, error) {
	n := len(b.Close)
	if n < MinTechnicalHistory {
		return nil, &model.InsufficientHistoryError{Section: "technical", Have: n, Need: MinTechnicalHistory}
	}

	set := &model.IndicatorSet{}
	var err error

	if set.K, set.D, set.J, err = KDJ(b.Close, b.High, b.Low, KDJPeriod, KDJSmooth); err != nil {
		return nil, fmt.Errorf("kdj: %w", err)
	}
	if set.DIF, set.DEA, set.MACDHist, err = MACD(b.Close, MACDFast, MACDSlow, MACDSignal); err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}

	rsi := make([][]float64, len(RSIPeriods))
	for i, p := range RSIPeriods {
		if rsi[i], err = RSISeries(b.Close, p); err != nil {
			return nil, fmt.Errorf("rsi(%d): %w", p, err)
		}
	}
	set.RSI6, set.RSI12, set.RSI24 = rsi[0], rsi[1], rsi[2]

	if set.BollUpper, set.BollMiddle, set.BollLower, err = BollingerT3(b.Close, BollPeriod, BollNbDev, BollVFactor); err != nil {
		return nil, fmt.Errorf("bbands: %w", err)
	}
	return set, nil
}
