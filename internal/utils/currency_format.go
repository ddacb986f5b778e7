package utils

import (
	"github.com/shopspring/decimal"
)

// FormatDepositAmount renders an amount in the fixed EUR notation used by
// deposit payloads: the literal "EUR " prefix, the integer part left-padded
// to four digits, and exactly two decimals.
// Example: amount 100.5 returns "EUR 0100.50"
func FormatDepositAmount(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	for len(fixed) < 7 {
		fixed = "0" + fixed
	}
	return "EUR " + fixed
}
