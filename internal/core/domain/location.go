package domain

import "github.com/shopspring/decimal"

// Location is a hotel location with its seasonal nightly rates.
// Both prices are denominated in the location's own currency.
type Location struct {
	LocationID   int64           `json:"locationID"`
	Name         string          `json:"name"`
	CurrencyCode string          `json:"currencyCode"` // FK -> currencies.currency_code
	PeakPrice    decimal.Decimal `json:"peakPrice"`
	OffPeakPrice decimal.Decimal `json:"offPeakPrice"`
}
