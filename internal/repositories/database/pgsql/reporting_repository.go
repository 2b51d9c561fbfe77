package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hotel_booking_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// TopLocations counts active bookings per location. Locations without rooms are left out,
// locations with rooms but no bookings are reported with zero.
func (r *reportingRepository) TopLocations(ctx context.Context, limit int) ([]domain.LocationBookingCount, error) {
	query := `
		SELECT
			l.location_id,
			l.name,
			COUNT(b.booking_id) AS bookings
		FROM locations l
		JOIN rooms r ON r.location_id = l.location_id
		LEFT JOIN bookings b ON b.room_id = r.room_id AND b.deleted_at IS NULL
		GROUP BY l.location_id, l.name
		ORDER BY bookings DESC, l.name
		LIMIT $1
	`

	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying top locations: %w", err)
	}
	defer rows.Close()

	var result []domain.LocationBookingCount
	for rows.Next() {
		var row domain.LocationBookingCount
		if err := rows.Scan(&row.LocationID, &row.LocationName, &row.Bookings); err != nil {
			return nil, fmt.Errorf("error scanning top locations row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top locations rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.LocationBookingCount{}, nil
	}

	return result, nil
}
