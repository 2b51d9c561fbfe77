package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hotel_booking_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLocationRepository struct {
	BaseRepository
}

func newPgxLocationRepository(pool *pgxpool.Pool) portsrepo.LocationRepositoryFacade {
	return &PgxLocationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LocationRepositoryFacade = (*PgxLocationRepository)(nil)

const locationColumns = `location_id, name, currency_code, peak_price, off_peak_price`

func scanLocation(row rowScanner) (domain.Location, error) {
	var l domain.Location
	err := row.Scan(&l.LocationID, &l.Name, &l.CurrencyCode, &l.PeakPrice, &l.OffPeakPrice)
	return l, err
}

// FindLocationByID retrieves a location by its ID.
func (r *PgxLocationRepository) FindLocationByID(ctx context.Context, locationID int64) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE location_id = $1;`
	location, err := scanLocation(r.Pool.QueryRow(ctx, query, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("location %d: %w", locationID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find location %d: %w", locationID, err)
	}
	return &location, nil
}

// ListLocations retrieves all locations ordered by name.
func (r *PgxLocationRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	locations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Location, error) {
		return scanLocation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan locations: %w", err)
	}
	return locations, nil
}

// UpdateLocationRates sets a location's nightly rates and returns the updated row.
func (r *PgxLocationRepository) UpdateLocationRates(ctx context.Context, locationID int64, peak, offPeak decimal.Decimal) (*domain.Location, error) {
	query := `UPDATE locations SET peak_price = $2, off_peak_price = $3
		WHERE location_id = $1
		RETURNING ` + locationColumns + `;`
	location, err := scanLocation(r.Pool.QueryRow(ctx, query, locationID, peak, offPeak))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("location %d: %w", locationID, apperrors.ErrNotFound)
		}
		if mapped := constraintError(err, fmt.Sprintf("rates of location %d", locationID), nil); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update rates of location %d: %w", locationID, err)
	}
	return &location, nil
}
