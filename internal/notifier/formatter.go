package notifier

import (
	"fmt"
	"strings"
	"time"

	"SpotWatch/internal/model"
)

// FormatActionAlert formats a suggestion change into a Telegram message.
func FormatActionAlert(snap *model.IndicatorSnapshot, prev, next model.Action) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🔔 <b>%s suggestion changed</b> | %s\n\n", snap.Symbol, time.Now().Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("%s → <b>%s</b>\n\n", prev, next))
	b.WriteString(fmt.Sprintf("Price: %.4f\n", snap.Price))
	if snap.HasMA {
		b.WriteString(fmt.Sprintf("MA20: %.4f\n", snap.MA20))
	}
	if snap.HasRSI {
		b.WriteString(fmt.Sprintf("RSI14: %.2f\n", snap.RSI14))
	}
	if snap.HasMACD {
		b.WriteString(fmt.Sprintf("MACD: %.4f | Signal: %.4f\n", snap.MACDLine, snap.MACDSignal))
	}

	return b.String()
}

// FormatStatus formats the latest snapshot for the /status command. have and
// need describe warmup progress while indicators are still incomplete.
func FormatStatus(snap *model.IndicatorSnapshot, action model.Action, have, need int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s status</b>\n\n", snap.Symbol))
	b.WriteString(fmt.Sprintf("Price: %.4f\n", snap.Price))
	if snap.HasMA {
		b.WriteString(fmt.Sprintf("MA20: %.4f\n", snap.MA20))
	}
	if snap.HasRSI {
		b.WriteString(fmt.Sprintf("RSI14: %.2f\n", snap.RSI14))
	}
	if snap.HasMACD {
		b.WriteString(fmt.Sprintf("MACD: %.4f | Signal: %.4f\n", snap.MACDLine, snap.MACDSignal))
	}
	if !snap.Complete() {
		b.WriteString(fmt.Sprintf("\nCollecting data… (%d/%d)\n", have, need))
	} else {
		b.WriteString(fmt.Sprintf("\nSuggestion: <b>%s</b>\n", action))
	}

	return b.String()
}
