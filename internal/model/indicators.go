package model

// IndicatorSet holds full-length indicator series aligned to the bundle dates.
type IndicatorSet struct {
	K, D, J []float64

	DIF, DEA, MACDHist []float64

	RSI6, RSI12, RSI24 []float64

	BollUpper, BollMiddle, BollLower []float64
}

// WindowStats holds the trailing-window aggregates of one series.
type WindowStats struct {
	Window int
	Mean   float64
	Max    float64
	Min    float64
	Sum    float64
}
