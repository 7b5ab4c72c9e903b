package strategy

import "SpotWatch/internal/model"

// Tunable RSI thresholds.
const (
	RSIBuyThreshold  = 35.0
	RSISellThreshold = 65.0
)

// Decide maps an indicator snapshot to a market action.
//
// BUY requires price above MA20, RSI below the buy threshold, and a bullish
// MACD (line above signal). SELL is the mirror image. Everything else,
// including any absent indicator, is HOLD.
func Decide(snap *model.IndicatorSnapshot) model.Action {
	if !snap.Complete() {
		return model.ActionHold
	}

	if snap.Price > snap.MA20 && snap.RSI14 < RSIBuyThreshold && snap.MACDLine > snap.MACDSignal {
		return model.ActionBuy
	}
	if snap.Price < snap.MA20 && snap.RSI14 > RSISellThreshold && snap.MACDLine < snap.MACDSignal {
		return model.ActionSell
	}
	return model.ActionHold
}
