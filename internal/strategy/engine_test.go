package strategy

import (
	"testing"

	"SpotWatch/internal/model"
)

func fullSnapshot(price, ma, rsi, macd, sig float64) *model.IndicatorSnapshot {
	return &model.IndicatorSnapshot{
		Symbol: "SOLEUR",
		Price:  price,
		MA20:   ma, HasMA: true,
		RSI14: rsi, HasRSI: true,
		MACDLine: macd, MACDSignal: sig, HasMACD: true,
	}
}

func TestDecide_Buy(t *testing.T) {
	snap := fullSnapshot(110, 100, 30, 1, 0.5)
	if got := Decide(snap); got != model.ActionBuy {
		t.Errorf("expected BUY, got %s", got)
	}
}

func TestDecide_Sell(t *testing.T) {
	snap := fullSnapshot(90, 100, 70, -1, -0.5)
	if got := Decide(snap); got != model.ActionSell {
		t.Errorf("expected SELL, got %s", got)
	}
}

func TestDecide_HoldCases(t *testing.T) {
	tests := []struct {
		name string
		snap *model.IndicatorSnapshot
	}{
		{"neutral rsi", fullSnapshot(110, 100, 50, 1, 0.5)},
		{"price below ma blocks buy", fullSnapshot(95, 100, 30, 1, 0.5)},
		{"bearish macd blocks buy", fullSnapshot(110, 100, 30, 0.5, 1)},
		{"price above ma blocks sell", fullSnapshot(110, 100, 70, -1, -0.5)},
		{"bullish macd blocks sell", fullSnapshot(90, 100, 70, -0.5, -1)},
		{"rsi at buy threshold", fullSnapshot(110, 100, RSIBuyThreshold, 1, 0.5)},
		{"rsi at sell threshold", fullSnapshot(90, 100, RSISellThreshold, -1, -0.5)},
	}
	for _, tt := range tests {
		if got := Decide(tt.snap); got != model.ActionHold {
			t.Errorf("%s: expected HOLD, got %s", tt.name, got)
		}
	}
}

func TestDecide_AbsentIndicatorForcesHold(t *testing.T) {
	// Strong BUY setup, but each indicator missing in turn.
	base := func() *model.IndicatorSnapshot { return fullSnapshot(110, 100, 30, 1, 0.5) }

	noMA := base()
	noMA.HasMA = false
	noRSI := base()
	noRSI.HasRSI = false
	noMACD := base()
	noMACD.HasMACD = false

	for name, snap := range map[string]*model.IndicatorSnapshot{
		"no ma": noMA, "no rsi": noRSI, "no macd": noMACD,
	} {
		if got := Decide(snap); got != model.ActionHold {
			t.Errorf("%s: expected HOLD, got %s", name, got)
		}
	}
}
