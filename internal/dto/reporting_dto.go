package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
)

// MonthLayout is the wire format of a calendar month, e.g. "2024-08".
const MonthLayout = "2006-01"

// TopLocationsRequest defines the query parameters of the top locations report.
type TopLocationsRequest struct {
	Limit int `form:"limit,default=5" binding:"min=1,max=50"`
}

// MonthlyBookingsRequest selects bookings at one location in one month.
type MonthlyBookingsRequest struct {
	LocationID int64  `form:"locationID" binding:"required,min=1"`
	Month      string `form:"month" binding:"required,datetime=2006-01"`
}

// CompareBookingsRequest selects several locations for one month.
type CompareBookingsRequest struct {
	LocationIDs []int64 `form:"locationID" binding:"required,min=1,dive,min=1"`
	Month       string  `form:"month" binding:"required,datetime=2006-01"`
}

// RoomsAvailableRequest counts free rooms at a location.
// RoomTypeIDs is optional, but when the parameter is present it may not be empty.
type RoomsAvailableRequest struct {
	LocationID  int64   `form:"locationID" binding:"required,min=1"`
	Start       string  `form:"start" binding:"required,datetime=2006-01-02"`
	End         string  `form:"end" binding:"required,datetime=2006-01-02"`
	RoomTypeIDs []int64 `form:"roomTypeID"`
}

// ParseMonth parses a MonthLayout string to the first day of that month.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("month %q: %w", s, apperrors.ErrValidation)
	}
	return t, nil
}

// RoomsAvailableResponse is the number of free rooms.
type RoomsAvailableResponse struct {
	LocationID int64 `json:"locationID"`
	Available  int   `json:"available"`
}

// MonthlyBookingResponse is one booking row in the monthly report.
type MonthlyBookingResponse struct {
	BookingID  string `json:"bookingID"`
	RoomID     int64  `json:"roomID"`
	RoomTypeID int64  `json:"roomTypeID"`
	Guests     int    `json:"guests"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

// MonthlyBookingsResponse lists bookings overlapping a month.
type MonthlyBookingsResponse struct {
	LocationID int64                    `json:"locationID"`
	Month      string                   `json:"month"`
	Count      int                      `json:"count"`
	Bookings   []MonthlyBookingResponse `json:"bookings"`
}
