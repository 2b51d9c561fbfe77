package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/core/availability"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
	"github.com/SscSPs/hotel_booking_app/internal/utils/pagination"
)

// BookingReader defines read operations for bookings
type BookingReader interface {
	// FindBookingByID retrieves a booking by its ID.
	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// FindBookingsByUser retrieves up to limit of a user's bookings that end on or
	// after activeOn, newest first, starting after the cursor when one is given.
	FindBookingsByUser(ctx context.Context, userID string, activeOn time.Time, limit int, after *pagination.Cursor) ([]domain.Booking, error)

	// FindOverlappingBookings retrieves bookings at the given locations (all when empty)
	// that overlap the interval, using the inclusive overlap predicate.
	FindOverlappingBookings(ctx context.Context, locationIDs []int64, interval calendar.Interval) ([]domain.Booking, error)
}

// BookingWriter defines write operations for bookings
type BookingWriter interface {
	// ReserveFirstAvailable resolves free rooms for the query and stores the booking
	// on the lowest numbered one, atomically. It returns apperrors.ErrRoomUnavailable
	// when no room is free or a concurrent booking won the race.
	ReserveFirstAvailable(ctx context.Context, booking domain.Booking, query availability.Query) (*domain.Booking, error)

	// DeleteBooking removes a booking.
	DeleteBooking(ctx context.Context, bookingID string, deletedAt time.Time) error
}

// BookingRepositoryFacade combines all booking-related repository interfaces
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}

// BookingRepositoryWithTx extends BookingRepositoryFacade with transaction capabilities
type BookingRepositoryWithTx interface {
	BookingRepositoryFacade
	TransactionManager
}
