package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimal places shown for money.
const DisplayPrecision = 2

// FormatAmount formats an amount for display with DisplayPrecision places.
// Example: 12.3456 returns "12.35", 7 returns "7.00"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayPrecision)
}

// RoundAmount rounds an amount to DisplayPrecision places, used for derived
// figures such as percentages and averages.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(DisplayPrecision)
}
