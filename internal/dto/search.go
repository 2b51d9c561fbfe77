package dto

import (
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/core/pricing"
	"github.com/SscSPs/hotel_booking_app/internal/utils"
	"github.com/shopspring/decimal"
)

// SearchRequest defines the query parameters of a room search.
// LocationID is optional; without it every location is searched.
type SearchRequest struct {
	LocationID *int64 `form:"locationID" json:"locationID" binding:"omitempty,min=1"`
	StayRequest
}

// QuoteRequest prices a stay in a specific room type at a location.
type QuoteRequest struct {
	LocationID int64 `form:"locationID" json:"locationID" binding:"required,min=1"`
	RoomTypeID int64 `form:"roomTypeID" json:"roomTypeID" binding:"required,min=1"`
	StayRequest
}

// SegmentResponse is one calendar month of a priced stay.
type SegmentResponse struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Days  int             `json:"days"`
	Peak  bool            `json:"peak"`
	Rate  decimal.Decimal `json:"rate"`
}

// QuoteResponse is a computed price in the requested currency.
type QuoteResponse struct {
	CurrencyCode   string            `json:"currencyCode"`
	CurrencySymbol string            `json:"currencySymbol"`
	Total          decimal.Decimal   `json:"total"`
	Discounted     *decimal.Decimal  `json:"discounted,omitempty"`
	Display        string            `json:"display"` // payable amount with symbol, e.g. "£576.00"
	DaysInAdvance  int               `json:"daysInAdvance"`
	Multiplier     decimal.Decimal   `json:"multiplier"`
	Segments       []SegmentResponse `json:"segments"`
}

// ToQuoteResponse converts a pricing.Quote to QuoteResponse DTO
func ToQuoteResponse(q pricing.Quote, currency domain.Currency) QuoteResponse {
	segments := make([]SegmentResponse, len(q.Segments))
	for i, s := range q.Segments {
		segments[i] = SegmentResponse{Year: s.Year, Month: int(s.Month), Days: s.Days, Peak: s.Peak, Rate: s.Rate}
	}
	return QuoteResponse{
		CurrencyCode:   q.CurrencyCode,
		CurrencySymbol: currency.Symbol,
		Total:          q.Total.Round(pricing.MoneyPlaces),
		Discounted:     q.Discounted,
		Display:        utils.FormatMoney(q.Payable(), currency, pricing.MoneyPlaces),
		DaysInAdvance:  q.DaysInAdvance,
		Multiplier:     q.Multiplier,
		Segments:       segments,
	}
}

// RoomOfferResponse is one search result.
type RoomOfferResponse struct {
	Location  LocationResponse `json:"location"`
	RoomType  RoomTypeResponse `json:"roomType"`
	FreeRooms int              `json:"freeRooms"`
	Quote     QuoteResponse    `json:"quote"`
}

// SearchResponse wraps the list of offers.
type SearchResponse struct {
	Start  string              `json:"start"`
	End    string              `json:"end"`
	Guests int                 `json:"guests"`
	Offers []RoomOfferResponse `json:"offers"`
}
