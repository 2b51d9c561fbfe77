package services

import (
	"context"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a currency by its code, case-insensitively.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// LocationReaderSvc defines read operations for locations
type LocationReaderSvc interface {
	GetLocation(ctx context.Context, locationID int64) (*domain.Location, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

// RoomTypeReaderSvc defines read operations for room types
type RoomTypeReaderSvc interface {
	GetRoomType(ctx context.Context, roomTypeID int64) (*domain.RoomType, error)
	ListRoomTypes(ctx context.Context) ([]domain.RoomType, error)
}

// ReferenceSvcFacade combines the read-only inventory services
type ReferenceSvcFacade interface {
	CurrencyReaderSvc
	LocationReaderSvc
	RoomTypeReaderSvc
}
