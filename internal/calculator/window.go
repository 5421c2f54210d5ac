package calculator

import (
	"errors"
	"math"

	"StockResearch/internal/model"
)

// CanonicalWindows are the trading-day windows reported for every series:
// one week, one month, one quarter, half a year and one year.
var CanonicalWindows = []int{5, 20, 60, 120, 240}

// SupportedWindows returns the candidates the series can fill, in input order.
// Windows longer than the series are dropped, never padded.
func SupportedWindows(n int, candidates []int) []int {
	out := make([]int, 0, len(candidates))
	for _, w := range candidates {
		if w > 0 && w <= n {
			out = append(out, w)
		}
	}
	return out
}

// Trailing returns the last w values (most recent inclusive).
func Trailing(values []float64, w int) []float64 {
	return values[len(values)-w:]
}

func checkWindow(values []float64, w int) error {
	if w <= 0 {
		return errors.New("window must be positive")
	}
	if w > len(values) {
		return &model.InsufficientHistoryError{Section: "window", Have: len(values), Need: w}
	}
	return nil
}

// TrailingSum returns the sum of the last w values.
func TrailingSum(values []float64, w int) (float64, error) {
	if err := checkWindow(values, w); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range Trailing(values, w) {
		sum += v
	}
	return sum, nil
}

// TrailingMean returns the mean of the last w values.
func TrailingMean(values []float64, w int) (float64, error) {
	return CalculateSMA(values, w)
}

// TrailingMax returns the maximum of the last w values.
func TrailingMax(values []float64, w int) (float64, error) {
	if err := checkWindow(values, w); err != nil {
		return 0, err
	}
	high := math.Inf(-1)
	for _, v := range Trailing(values, w) {
		if v > high {
			high = v
		}
	}
	return high, nil
}

// TrailingMin returns the minimum of the last w values.
func TrailingMin(values []float64, w int) (float64, error) {
	if err := checkWindow(values, w); err != nil {
		return 0, err
	}
	low := math.Inf(1)
	for _, v := range Trailing(values, w) {
		if v < low {
			low = v
		}
	}
	return low, nil
}

// ComputeWindows aggregates the series over every supported window.
func ComputeWindows(values []float64, windows []int) []model.WindowStats {
	supported := SupportedWindows(len(values), windows)
	out := make([]model.WindowStats, 0, len(supported))
	for _, w := range supported {
		// w is within bounds, errors cannot occur here
		sum, _ := TrailingSum(values, w)
		mean, _ := TrailingMean(values, w)
		high, _ := TrailingMax(values, w)
		low, _ := TrailingMin(values, w)
		out = append(out, model.WindowStats{
			Window: w,
			Mean:   mean,
			Max:    high,
			Min:    low,
			Sum:    sum,
		})
	}
	return out
}

// Latest returns the most recent value, i.e. a window of one.
func Latest(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, &model.InsufficientHistoryError{Section: "latest", Have: 0, Need: 1}
	}
	return values[len(values)-1], nil
}

// PreviousChange returns last / second-to-last - 1.
func PreviousChange(values []float64) (float64, error) {
	n := len(values)
	if n < 2 {
		return 0, &model.InsufficientHistoryError{Section: "change", Have: n, Need: 2}
	}
	return values[n-1]/values[n-2] - 1, nil
}

// CumulativeReturn returns the change from the first close of the trailing
// window to the latest close.
func CumulativeReturn(values []float64, w int) (float64, error) {
	if err := checkWindow(values, w); err != nil {
		return 0, err
	}
	n := len(values)
	return values[n-1]/values[n-w] - 1, nil
}

// DayAmplitude compares today's high with the previous session's low.
func DayAmplitude(high, low []float64) (float64, error) {
	if len(high) < 1 || len(low) < 2 {
		return 0, &model.InsufficientHistoryError{Section: "amplitude", Have: min(len(high), len(low)), Need: 2}
	}
	return high[len(high)-1]/low[len(low)-2] - 1, nil
}

// WindowAmplitude returns max(high) / min(low) - 1 over the trailing window.
func WindowAmplitude(high, low []float64, w int) (float64, error) {
	hi, err := TrailingMax(high, w)
	if err != nil {
		return 0, err
	}
	lo, err := TrailingMin(low, w)
	if err != nil {
		return 0, err
	}
	return hi/lo - 1, nil
}
