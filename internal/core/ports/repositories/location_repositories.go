package repositories

import (
	"context"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LocationReader defines read operations for hotel locations
type LocationReader interface {
	// FindLocationByID retrieves a location by its ID.
	FindLocationByID(ctx context.Context, locationID int64) (*domain.Location, error)

	// ListLocations retrieves all locations ordered by name.
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

// LocationWriter defines write operations for hotel locations
type LocationWriter interface {
	// UpdateLocationRates sets the nightly peak and off-peak prices of a location.
	// Returns apperrors.ErrNotFound if the location does not exist.
	UpdateLocationRates(ctx context.Context, locationID int64, peak, offPeak decimal.Decimal) (*domain.Location, error)
}

// LocationRepositoryFacade combines all location-related repository interfaces
type LocationRepositoryFacade interface {
	LocationReader
	LocationWriter
}
