package services

import (
	"context"

	"github.com/SscSPs/hotel_booking_app/internal/dto"
)

// BookingReaderSvc defines read operations for bookings
type BookingReaderSvc interface {
	// QuoteRoom prices a stay in a specific room type and reports how many rooms are free.
	QuoteRoom(ctx context.Context, req dto.QuoteRequest) (*RoomOffer, error)

	// GetBooking returns a booking if the caller owns it or is an admin.
	GetBooking(ctx context.Context, bookingID, userID string, isAdmin bool) (*BookingDetails, error)

	// ListUserBookings returns a page of a user's bookings, newest first.
	ListUserBookings(ctx context.Context, userID string, params dto.ListBookingsParams) (*BookingPage, error)
}

// BookingWriterSvc defines write operations for bookings
type BookingWriterSvc interface {
	// CreateBooking books the first free room matching the request.
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest, userID string) (*BookingDetails, error)

	// PreviewCancellation computes the fee for cancelling today without cancelling.
	PreviewCancellation(ctx context.Context, bookingID, userID string) (*CancellationPreview, error)

	// CancelBooking deletes the booking and returns the fee charged.
	CancelBooking(ctx context.Context, bookingID, userID string) (*CancellationPreview, error)
}

// BookingSvcFacade combines all booking-related service interfaces
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingWriterSvc
}
