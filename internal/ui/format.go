package ui

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount in the backend's display convention:
// "Rp 1.234.567" for IDR, "<code> 1.234.567" otherwise. Amounts are shown
// without fraction digits, matching the web client.
func FormatCurrency(code string, amount decimal.Decimal) string {
	prefix := code + " "
	if code == "IDR" {
		prefix = "Rp "
	}

	s := amount.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := prefix + b.String()
	if neg {
		out = "-" + out
	}
	return out
}

// CurrencyFormatter binds FormatCurrency to a currency code.
func CurrencyFormatter(code string) func(decimal.Decimal) string {
	return func(amount decimal.Decimal) string {
		return FormatCurrency(code, amount)
	}
}
