package services

import (
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/core/pricing"
)

// RoomOffer is a priced (location, room type) pair with its free room count.
type RoomOffer struct {
	Location  domain.Location
	RoomType  domain.RoomType
	Currency  domain.Currency
	FreeRooms int
	Quote     pricing.Quote
}

// BookingDetails is a booking with its resolved references and price.
type BookingDetails struct {
	Booking  domain.Booking
	Location domain.Location
	RoomType domain.RoomType
	Currency domain.Currency
	Quote    pricing.Quote
}

// BookingPage is one page of a user's bookings. NextToken is nil on the last page.
type BookingPage struct {
	Bookings  []BookingDetails
	NextToken *string
}

// CancellationPreview is what a user would be charged for cancelling now.
type CancellationPreview struct {
	Details BookingDetails
	Fee     pricing.CancellationQuote
}
