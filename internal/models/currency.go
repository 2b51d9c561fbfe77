package models

import "github.com/shopspring/decimal"

// Currency represents a supported currency.
type Currency struct {
	CurrencyCode   string          `db:"currency_code"` // Primary Key (e.g., "GBP")
	Name           string          `db:"name"`
	Symbol         string          `db:"symbol"`
	ConversionRate decimal.Decimal `db:"conversion_rate"` // units per 1 GBP
}
