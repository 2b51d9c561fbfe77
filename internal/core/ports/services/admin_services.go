package services

import (
	"context"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
)

// PricingAdminSvc changes the inputs of every quote: rates and conversion rates.
type PricingAdminSvc interface {
	// UpdateLocationRates sets a location's peak and off-peak nightly rates.
	UpdateLocationRates(ctx context.Context, locationID int64, req dto.UpdateLocationRatesRequest) (*domain.Location, error)

	// UpdateConversionRate sets a currency's rate against the base currency.
	// The base currency's rate is fixed.
	UpdateConversionRate(ctx context.Context, currencyCode string, req dto.UpdateConversionRateRequest) (*domain.Currency, error)
}

// InventoryAdminSvc manages room types and the rooms at each location.
type InventoryAdminSvc interface {
	CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest) (*domain.RoomType, error)
	UpdateRoomType(ctx context.Context, roomTypeID int64, req dto.UpdateRoomTypeRequest) (*domain.RoomType, error)

	// CreateRoom adds a room to a location.
	CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (*domain.Room, error)

	// DeleteRoom removes a room that has never been booked.
	DeleteRoom(ctx context.Context, roomID int64) error
}

// AdminSvcFacade combines the admin write services
type AdminSvcFacade interface {
	PricingAdminSvc
	InventoryAdminSvc
}
