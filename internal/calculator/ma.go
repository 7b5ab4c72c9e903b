package calculator

import "errors"

// ErrInsufficientData is returned when a window does not yet hold enough
// prices for the requested indicator.
var ErrInsufficientData = errors.New("not enough data")

// DefaultMAPeriod is the moving-average period used by the helper.
const DefaultMAPeriod = 20

// MovingAverage computes the simple moving average of the last `period`
// prices. Prices are oldest-first.
func MovingAverage(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}
