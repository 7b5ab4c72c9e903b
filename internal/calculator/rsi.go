package calculator

import "errors"

// DefaultRSIPeriod is the RSI period used by the helper.
const DefaultRSIPeriod = 14

// RSI computes the Relative Strength Index over the most recent `period`
// deltas, using simple averages of gains and losses (no Wilder smoothing).
// Requires at least period+1 prices. Result is in [0, 100]; a window with no
// losses saturates at exactly 100.
func RSI(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period+1 {
		return 0, ErrInsufficientData
	}

	var gains, losses float64
	for i := len(prices) - period; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change // make positive
		}
	}
	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	if avgLoss == 0 {
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), nil
}
