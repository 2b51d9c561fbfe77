package domain

import "time"

// LocationBookingCount is one row of the "top locations" report.
type LocationBookingCount struct {
	LocationID   int64  `json:"locationID"`
	LocationName string `json:"locationName"`
	Bookings     int    `json:"bookings"`
}

// RoomTypeBookingCount counts bookings of a single room type.
type RoomTypeBookingCount struct {
	RoomTypeID int64        `json:"roomTypeID"`
	Code       RoomTypeCode `json:"code"`
	Bookings   int          `json:"bookings"`
}

// LocationComparison summarises bookings at one location for a month.
type LocationComparison struct {
	LocationID   int64                  `json:"locationID"`
	LocationName string                 `json:"locationName"`
	Total        int                    `json:"total"`
	ByRoomType   []RoomTypeBookingCount `json:"byRoomType"`
}

// MonthlyBookingReport lists bookings at a location that overlap a calendar month.
type MonthlyBookingReport struct {
	LocationID int64     `json:"locationID"`
	Month      time.Time `json:"month"` // first day of the month
	Bookings   []Booking `json:"bookings"`
}
