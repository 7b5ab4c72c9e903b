package calculator

// MACD default periods.
const (
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
)

// MACD computes the Moving Average Convergence Divergence line and its signal
// line, returning the latest value of each. Requires at least slow+signal
// prices so the signal EMA has a meaningful window.
func MACD(prices []float64, fast, slow, signal int) (macdLine, signalLine float64, err error) {
	if len(prices) < slow+signal {
		return 0, 0, ErrInsufficientData
	}

	emaFast := EMA(prices, fast)
	emaSlow := EMA(prices, slow)

	// Both series are computed over the same input and have equal length;
	// the trailing alignment guards against that ever changing.
	if len(emaFast) > len(emaSlow) {
		emaFast = emaFast[len(emaFast)-len(emaSlow):]
	}

	macdSeries := make([]float64, len(emaSlow))
	for i := range emaSlow {
		macdSeries[i] = emaFast[i] - emaSlow[i]
	}
	signalSeries := EMA(macdSeries, signal)

	return macdSeries[len(macdSeries)-1], signalSeries[len(signalSeries)-1], nil
}
