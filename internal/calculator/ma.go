package calculator

// CalculateSMA computes the simple moving average of the last period values.
// A period longer than the series reports *model.InsufficientHistoryError.
func CalculateSMA(values []float64, period int) (float64, error) {
	if err := checkWindow(values, period); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range Trailing(values, period) {
		sum += v
	}
	return sum / float64(period), nil
}

// EMA returns the exponential moving average series with smoothing 2/(period+1),
// seeded with the first value so the output is as long as the input.
func EMA(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 || period <= 0 {
		return out
	}
	alpha := 2.0 / float64(period+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}
