package dto

import (
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode   string          `json:"currencyCode"`
	Symbol         string          `json:"symbol"`
	Name           string          `json:"name"`
	ConversionRate decimal.Decimal `json:"conversionRate"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:   curr.CurrencyCode,
		Symbol:         curr.Symbol,
		Name:           curr.Name,
		ConversionRate: curr.ConversionRate,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}

// LocationResponse defines the data returned for a location.
type LocationResponse struct {
	LocationID   int64           `json:"locationID"`
	Name         string          `json:"name"`
	CurrencyCode string          `json:"currencyCode"`
	PeakPrice    decimal.Decimal `json:"peakPrice"`
	OffPeakPrice decimal.Decimal `json:"offPeakPrice"`
}

func ToLocationResponse(loc *domain.Location) LocationResponse {
	return LocationResponse{
		LocationID:   loc.LocationID,
		Name:         loc.Name,
		CurrencyCode: loc.CurrencyCode,
		PeakPrice:    loc.PeakPrice,
		OffPeakPrice: loc.OffPeakPrice,
	}
}

func ToListLocationResponse(locations []domain.Location) []LocationResponse {
	res := make([]LocationResponse, len(locations))
	for i := range locations {
		res[i] = ToLocationResponse(&locations[i])
	}
	return res
}

// RoomTypeResponse defines the data returned for a room type.
type RoomTypeResponse struct {
	RoomTypeID   int64  `json:"roomTypeID"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	MaxOccupants int    `json:"maxOccupants"`
}

func ToRoomTypeResponse(rt *domain.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		RoomTypeID:   rt.RoomTypeID,
		Code:         string(rt.Code),
		Name:         rt.Name,
		MaxOccupants: rt.MaxOccupants,
	}
}

func ToListRoomTypeResponse(roomTypes []domain.RoomType) []RoomTypeResponse {
	res := make([]RoomTypeResponse, len(roomTypes))
	for i := range roomTypes {
		res[i] = ToRoomTypeResponse(&roomTypes[i])
	}
	return res
}
