package services

import (
	"context"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
)

// ReportingService defines the admin booking analytics
type ReportingService interface {
	// TopLocations returns the most booked locations.
	TopLocations(ctx context.Context, limit int) ([]domain.LocationBookingCount, error)

	// MonthlyBookings lists bookings at a location overlapping a calendar month.
	MonthlyBookings(ctx context.Context, req dto.MonthlyBookingsRequest) (*domain.MonthlyBookingReport, error)

	// CompareBookings counts bookings per room type for several locations in a month.
	CompareBookings(ctx context.Context, req dto.CompareBookingsRequest) ([]domain.LocationComparison, error)

	// RoomsAvailable counts free rooms of the given types at a location.
	RoomsAvailable(ctx context.Context, req dto.RoomsAvailableRequest) (int, error)
}
