package domain

import (
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
)

// ContactDetails are stored with a booking but never used for pricing.
type ContactDetails struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	Postcode     string `json:"postcode"`
	Country      string `json:"country"`
}

// CardDetails is opaque payment metadata. Nothing is ever charged.
type CardDetails struct {
	CardType       string `json:"cardType"`
	CardholderName string `json:"cardholderName"`
	Last4          string `json:"last4"`
	ExpiryMonth    int    `json:"expiryMonth"`
	ExpiryYear     int    `json:"expiryYear"`
}

// Booking is a reservation of one room for an inclusive date range.
type Booking struct {
	BookingID    string         `json:"bookingID"` // Primary Key (UUID)
	RoomID       int64          `json:"roomID"`
	LocationID   int64          `json:"locationID"`
	RoomTypeID   int64          `json:"roomTypeID"`
	UserID       string         `json:"userID"`
	Guests       int            `json:"guests"`
	BookingStart time.Time      `json:"bookingStart"`
	BookingEnd   time.Time      `json:"bookingEnd"`
	CurrencyCode string         `json:"currencyCode"`
	Contact      ContactDetails `json:"contact"`
	Card         CardDetails    `json:"card"`
	AuditFields
}

// Interval returns the booked dates as an inclusive interval.
func (b Booking) Interval() calendar.Interval {
	return calendar.Interval{Start: calendar.Normalize(b.BookingStart), End: calendar.Normalize(b.BookingEnd)}
}

// IsOwnedBy reports whether the given user made the booking.
func (b Booking) IsOwnedBy(userID string) bool {
	return b.UserID == userID
}
