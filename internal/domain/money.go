package domain

import "github.com/shopspring/decimal"

// ResaleCapRatio is the maximum resale price as a multiple of face value.
var ResaleCapRatio = decimal.RequireFromString("1.10")

// ResaleCap returns the highest price a ticket with the given face value may be listed at.
func ResaleCap(faceValue decimal.Decimal) decimal.Decimal {
	return faceValue.Mul(ResaleCapRatio)
}

// FormatAmount renders a currency amount with two decimals, e.g. "22.00".
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
