package calculator

// EMA computes the exponential moving average of the whole series and returns
// a series of equal length. The first output is seeded with the first raw
// value rather than a simple-average seed; the deviation from canonical EMA
// is small and identical across both MACD legs.
func EMA(series []float64, period int) []float64 {
	if len(series) == 0 {
		return nil
	}
	k := 2.0 / (float64(period) + 1.0)
	out := make([]float64, len(series))
	out[0] = series[0]
	for i := 1; i < len(series); i++ {
		out[i] = series[i]*k + out[i-1]*(1.0-k)
	}
	return out
}
