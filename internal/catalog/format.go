package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a price with a dollar prefix and two decimals.
func FormatPrice(price decimal.Decimal) string {
	return "$" + price.StringFixed(2)
}

// Truncate shortens text to at most limit runes, ending with an ellipsis when cut.
func Truncate(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	cut := strings.TrimRight(string(runes[:limit-1]), " ")
	return cut + "…"
}
