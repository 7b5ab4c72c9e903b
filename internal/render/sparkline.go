package render

import (
	"strings"

	"SpotWatch/internal/calculator"
)

// sparkGlyphs is the 8-level bar used for the price history chart.
var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the price window as a compact glyph chart, quantizing
// each price into the window's min..max range. A flat window (max == min)
// degenerates to the lowest glyph repeated.
func Sparkline(prices []float64) string {
	if len(prices) == 0 {
		return ""
	}
	high, low, err := calculator.Range(prices)
	if err != nil || high == low {
		return strings.Repeat(string(sparkGlyphs[0]), len(prices))
	}

	var b strings.Builder
	for _, p := range prices {
		idx := int((p - low) / (high - low) * float64(len(sparkGlyphs)-1))
		b.WriteRune(sparkGlyphs[idx])
	}
	return b.String()
}
