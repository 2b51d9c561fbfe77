package dto

import (
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateLocationRatesRequest sets a location's nightly rates, in the location's currency.
type UpdateLocationRatesRequest struct {
	PeakPrice    *decimal.Decimal `json:"peakPrice" binding:"required"`
	OffPeakPrice *decimal.Decimal `json:"offPeakPrice" binding:"required"`
}

// UpdateConversionRateRequest sets a currency's rate against the base currency.
type UpdateConversionRateRequest struct {
	ConversionRate *decimal.Decimal `json:"conversionRate" binding:"required"`
}

// CreateRoomTypeRequest defines a new room type. The code selects its price multiplier.
type CreateRoomTypeRequest struct {
	Code         string `json:"code" binding:"required,len=1,alpha"`
	Name         string `json:"name" binding:"required,max=50"`
	MaxOccupants int    `json:"maxOccupants" binding:"required,min=1"`
}

// UpdateRoomTypeRequest renames a room type or changes how many it sleeps.
type UpdateRoomTypeRequest struct {
	Name         string `json:"name" binding:"required,max=50"`
	MaxOccupants int    `json:"maxOccupants" binding:"required,min=1"`
}

// CreateRoomRequest adds a room of the given type to a location.
type CreateRoomRequest struct {
	LocationID int64 `json:"locationID" binding:"required,min=1"`
	RoomTypeID int64 `json:"roomTypeID" binding:"required,min=1"`
}

// RoomResponse defines the data returned for a room.
type RoomResponse struct {
	RoomID     int64 `json:"roomID"`
	LocationID int64 `json:"locationID"`
	RoomTypeID int64 `json:"roomTypeID"`
}

func ToRoomResponse(room *domain.Room) RoomResponse {
	return RoomResponse{
		RoomID:     room.RoomID,
		LocationID: room.LocationID,
		RoomTypeID: room.RoomTypeID,
	}
}

// UpdateAccountRequest changes the caller's username, password or both.
// Empty fields are left as they are.
type UpdateAccountRequest struct {
	Username string `json:"username" binding:"omitempty,max=20"`
	Password string `json:"password" binding:"omitempty,min=8,max=72"`
}
