package domain

import "github.com/shopspring/decimal"

// Currency represents a currency a location can be priced in.
//
// ConversionRate is relative to the base currency: amount_in_target = amount_in_base * rate.
// Exactly one currency (the base) carries a rate of 1.0.
type Currency struct {
	CurrencyCode   string          `json:"currencyCode"` // Primary Key (e.g., "GBP")
	Name           string          `json:"name"`         // e.g., "British Pound"
	Symbol         string          `json:"symbol"`       // e.g., "£"
	ConversionRate decimal.Decimal `json:"conversionRate"`
}

// IsBase reports whether this is the pivot currency with a fixed rate of 1.0.
func (c Currency) IsBase() bool {
	return c.ConversionRate.Equal(decimal.NewFromInt(1))
}
