package utils

import (
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with exactly the given number of decimal places.
// Example: 12.3456 with precision 2 returns "12.35", 720 returns "720.00"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatMoney prefixes the formatted amount with the currency symbol, e.g. "£576.00".
// The code is used when a currency has no symbol.
func FormatMoney(amount decimal.Decimal, currency domain.Currency, precision int) string {
	prefix := currency.Symbol
	if prefix == "" {
		prefix = currency.CurrencyCode + " "
	}
	return prefix + FormatWithPrecision(amount, precision)
}
