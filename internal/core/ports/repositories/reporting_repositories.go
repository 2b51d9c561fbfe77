package repositories

import (
	"context"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
)

// ReportingRepository defines aggregate queries over bookings
type ReportingRepository interface {
	// TopLocations returns locations ordered by booking count (descending), then name.
	TopLocations(ctx context.Context, limit int) ([]domain.LocationBookingCount, error)
}
