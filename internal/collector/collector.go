package collector

import (
	"context"
	"errors"
	"fmt"
	"math"

	"SpotWatch/internal/calculator"
	"SpotWatch/internal/model"
)

// MockFetcher returns a scripted price sequence for development and testing.
type MockFetcher struct {
	Prices []float64
	Err    error
	next   int
}

func (m *MockFetcher) Name() string { return "mock" }

// FetchSpotPrice returns the next scripted price; once the script runs out it
// keeps returning the last one.
func (m *MockFetcher) FetchSpotPrice(_ context.Context, _ string) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if len(m.Prices) == 0 {
		return 0, errors.New("mock: no prices scripted")
	}
	if m.next >= len(m.Prices) {
		return m.Prices[len(m.Prices)-1], nil
	}
	p := m.Prices[m.next]
	m.next++
	return p, nil
}

// Collector fetches the latest spot price, maintains the rolling history, and
// computes the per-tick indicator snapshot.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
	History *model.PriceHistory
}

// NewCollector creates a Collector with an empty history.
func NewCollector(fetcher Fetcher, symbol string, historyCap int) *Collector {
	return &Collector{
		Fetcher: fetcher,
		Symbol:  symbol,
		History: model.NewPriceHistory(historyCap),
	}
}

// Observe fetches one price, appends it to the history, and computes all
// indicators over the updated window. A non-finite or non-positive price is
// rejected and reported like any other fetch failure.
func (c *Collector) Observe(ctx context.Context) (*model.IndicatorSnapshot, error) {
	price, err := c.Fetcher.FetchSpotPrice(ctx, c.Symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", c.Symbol, err)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return nil, fmt.Errorf("fetch %s: invalid price %v", c.Symbol, price)
	}

	c.History.Append(price)
	return c.Snapshot(), nil
}

// Snapshot computes the indicators over the current history without fetching.
func (c *Collector) Snapshot() *model.IndicatorSnapshot {
	prices := c.History.Values()
	snap := &model.IndicatorSnapshot{
		Symbol: c.Symbol,
		Price:  c.History.Last(),
	}

	if ma, err := calculator.MovingAverage(prices, calculator.DefaultMAPeriod); err == nil {
		snap.MA20 = ma
		snap.HasMA = true
	}
	if rsi, err := calculator.RSI(prices, calculator.DefaultRSIPeriod); err == nil {
		snap.RSI14 = rsi
		snap.HasRSI = true
	}
	if macd, sig, err := calculator.MACD(prices, calculator.DefaultMACDFast,
		calculator.DefaultMACDSlow, calculator.DefaultMACDSignal); err == nil {
		snap.MACDLine = macd
		snap.MACDSignal = sig
		snap.HasMACD = true
	}
	return snap
}

// MinReadyTicks is the number of observations needed before every indicator
// is present: the MACD signal line is the slowest to warm up.
const MinReadyTicks = calculator.DefaultMACDSlow + calculator.DefaultMACDSignal
