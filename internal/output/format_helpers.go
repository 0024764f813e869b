package output

import (
	"github.com/shopspring/decimal"
)

// FormatCurrency renders a decimal as a dollar figure rounded to whole
// dollars for console display.
func FormatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(0)
}

// FormatCurrencyCents renders a decimal as dollars and cents. Export
// rounding to two decimals happens here, never inside the simulation core.
func FormatCurrencyCents(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatPercent renders a rate (0.065) as a percentage string (6.50%).
func FormatPercent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
