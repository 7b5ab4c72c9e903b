package model

// DefaultHistoryCapacity is the number of recent prices kept when no capacity
// is configured.
const DefaultHistoryCapacity = 60

// PriceHistory holds a fixed-capacity rolling window of spot prices,
// oldest-first. When a new price would exceed the capacity, the oldest
// entry is evicted.
type PriceHistory struct {
	capacity int
	prices   []float64
}

// NewPriceHistory creates an empty history. Non-positive capacities fall back
// to DefaultHistoryCapacity.
func NewPriceHistory(capacity int) *PriceHistory {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &PriceHistory{
		capacity: capacity,
		prices:   make([]float64, 0, capacity),
	}
}

// Append adds the latest observed price, evicting the oldest entry if the
// window is full.
func (h *PriceHistory) Append(price float64) {
	h.prices = append(h.prices, price)
	if len(h.prices) > h.capacity {
		h.prices = h.prices[len(h.prices)-h.capacity:]
	}
}

// Values returns a copy of the window, oldest-first.
func (h *PriceHistory) Values() []float64 {
	out := make([]float64, len(h.prices))
	copy(out, h.prices)
	return out
}

// Len returns the number of prices currently held.
func (h *PriceHistory) Len() int { return len(h.prices) }

// Cap returns the configured capacity.
func (h *PriceHistory) Cap() int { return h.capacity }

// Last returns the most recent price, or 0 if the history is empty.
func (h *PriceHistory) Last() float64 {
	if len(h.prices) == 0 {
		return 0
	}
	return h.prices[len(h.prices)-1]
}
