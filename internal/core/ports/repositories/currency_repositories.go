package repositories

import (
	"context"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data.
// Currencies themselves are seeded by migrations; only their rates change.
type CurrencyWriter interface {
	// UpdateConversionRate sets the rate of a currency against the base currency.
	// Returns apperrors.ErrNotFound if the currency does not exist.
	UpdateConversionRate(ctx context.Context, currencyCode string, rate decimal.Decimal) (*domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
