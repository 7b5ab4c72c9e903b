package model

// IndicatorSnapshot holds the indicators derived from the full price history
// on a single tick. It is recomputed fresh every tick and never persisted.
//
// Each indicator carries a presence flag: with a short history the window is
// too small to compute it, and the corresponding value must be ignored.
type IndicatorSnapshot struct {
	Symbol string
	Price  float64

	MA20  float64
	HasMA bool

	RSI14  float64
	HasRSI bool

	MACDLine   float64
	MACDSignal float64
	HasMACD    bool
}

// Complete reports whether every indicator is present.
func (s *IndicatorSnapshot) Complete() bool {
	return s.HasMA && s.HasRSI && s.HasMACD
}
