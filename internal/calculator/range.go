package calculator

import (
	"errors"
	"math"
)

// RollingHigh returns, for every index, the highest value over the look-back
// window ending there. Early indices use the shorter available window.
func RollingHigh(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		start := i - period + 1
		if start < 0 {
			start = 0
		}
		high := math.Inf(-1)
		for j := start; j <= i; j++ {
			if values[j] > high {
				high = values[j]
			}
		}
		out[i] = high
	}
	return out
}

// RollingLow returns, for every index, the lowest value over the look-back
// window ending there. Early indices use the shorter available window.
func RollingLow(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		start := i - period + 1
		if start < 0 {
			start = 0
		}
		low := math.Inf(1)
		for j := start; j <= i; j++ {
			if values[j] < low {
				low = values[j]
			}
		}
		out[i] = low
	}
	return out
}

// RangePosition returns where current sits within [low, high] (0.0~1.0).
// A flat range is reported as the midpoint.
func RangePosition(current, high, low float64) (float64, error) {
	if high == low {
		return 0.5, nil
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	pos := (current - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, nil
}
