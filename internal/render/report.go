package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"SpotWatch/internal/model"
)

// Terminal control sequences. The bell is emitted exactly when the suggestion
// changes between ticks.
const (
	ClearScreen = "\033[H\033[2J"
	Bell        = "\a"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	buyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
	sellStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
	holdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
)

// actionLabel returns the styled suggestion text.
func actionLabel(action model.Action) string {
	switch action {
	case model.ActionBuy:
		return buyStyle.Render("BUY ✅")
	case model.ActionSell:
		return sellStyle.Render("SELL ❌")
	default:
		return holdStyle.Render("HOLD ⚖️")
	}
}

// Report renders the full per-tick frame: header, sparkline over the visible
// history, current price, each indicator that is present, and the suggestion.
func Report(snap *model.IndicatorSnapshot, prices []float64, action model.Action) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s Spot (Binance) – Real-time Helper", snap.Symbol)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Price History:"), Sparkline(prices)))
	b.WriteString(fmt.Sprintf("Current Price: %.4f\n", snap.Price))
	if snap.HasMA {
		b.WriteString(fmt.Sprintf("MA20: %.4f\n", snap.MA20))
	}
	if snap.HasRSI {
		b.WriteString(fmt.Sprintf("RSI14: %.2f\n", snap.RSI14))
	}
	if snap.HasMACD {
		b.WriteString(fmt.Sprintf("MACD: %.4f | Signal: %.4f\n", snap.MACDLine, snap.MACDSignal))
	}
	b.WriteString(fmt.Sprintf("Suggestion: %s\n", actionLabel(action)))

	return b.String()
}

// Collecting renders the warmup progress shown while the history is too short
// for every indicator.
func Collecting(have, need int) string {
	return labelStyle.Render(fmt.Sprintf("Collecting data… (%d/%d)", have, need)) + "\n"
}
