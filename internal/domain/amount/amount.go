// Package amount holds the presentation-time helpers for monetary values.
// Arithmetic elsewhere stays in float64; rounding happens here, once.
package amount

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency used for display.
const Currency = money.EUR

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Format renders v with the currency symbol and separators.
func Format(v float64) string {
	cents := decimal.NewFromFloat(v).Round(2).Shift(2).IntPart()
	return money.New(cents, Currency).Display()
}
