package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/availability"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hotel_booking_app/internal/core/ports/repositories"
	"github.com/SscSPs/hotel_booking_app/internal/models"
	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
	"github.com/SscSPs/hotel_booking_app/internal/utils/mapping"
	"github.com/SscSPs/hotel_booking_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBookingRepository struct {
	BaseRepository
}

func newPgxBookingRepository(pool *pgxpool.Pool) portsrepo.BookingRepositoryWithTx {
	return &PgxBookingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BookingRepositoryWithTx = (*PgxBookingRepository)(nil)

const bookingColumns = `
	booking_id, room_id, location_id, room_type_id, user_id, guests, booking_start, booking_end, currency_code,
	full_name, email, address_line1, address_line2, postcode, country,
	card_type, cardholder_name, card_last4, card_exp_month, card_exp_year,
	created_at, last_updated_at`

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.BookingID, &b.RoomID, &b.LocationID, &b.RoomTypeID, &b.UserID, &b.Guests, &b.BookingStart, &b.BookingEnd, &b.CurrencyCode,
		&b.FullName, &b.Email, &b.AddressLine1, &b.AddressLine2, &b.Postcode, &b.Country,
		&b.CardType, &b.CardholderName, &b.CardLast4, &b.CardExpMonth, &b.CardExpYear,
		&b.CreatedAt, &b.LastUpdatedAt,
	)
	return b, err
}

func collectBookings(rows pgx.Rows) ([]domain.Booking, error) {
	modelBookings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Booking, error) {
		return scanBooking(row)
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainBookingSlice(modelBookings), nil
}

// FindBookingByID retrieves a booking by its ID.
func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1 AND deleted_at IS NULL;`
	m, err := scanBooking(r.Pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking %s: %w", bookingID, err)
	}
	booking := mapping.ToDomainBooking(m)
	return &booking, nil
}

// FindBookingsByUser retrieves a page of a user's current and upcoming bookings, newest first.
func (r *PgxBookingRepository) FindBookingsByUser(ctx context.Context, userID string, activeOn time.Time, limit int, after *pagination.Cursor) ([]domain.Booking, error) {
	var (
		afterCreatedAt *time.Time
		afterID        *string
	)
	if after != nil {
		afterCreatedAt, afterID = &after.CreatedAt, &after.ID
	}

	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1 AND deleted_at IS NULL
			AND booking_end >= $2::date
			AND ($3::timestamptz IS NULL OR (created_at, booking_id) < ($3, $4::text))
		ORDER BY created_at DESC, booking_id DESC
		LIMIT $5;`
	rows, err := r.Pool.Query(ctx, query, userID, calendar.Normalize(activeOn), afterCreatedAt, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings for user %s: %w", userID, err)
	}
	defer rows.Close()

	bookings, err := collectBookings(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings: %w", err)
	}
	return bookings, nil
}

// FindOverlappingBookings retrieves bookings overlapping the interval at the given locations,
// or at every location when none are given.
func (r *PgxBookingRepository) FindOverlappingBookings(ctx context.Context, locationIDs []int64, interval calendar.Interval) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE deleted_at IS NULL
			AND booking_start <= $2
			AND $1 <= booking_end`
	args := []any{interval.Start, interval.End}
	if len(locationIDs) > 0 {
		query += ` AND location_id = ANY($3)`
		args = append(args, locationIDs)
	}
	query += ` ORDER BY booking_start, booking_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings overlapping %s: %w", interval, err)
	}
	defer rows.Close()

	bookings, err := collectBookings(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings: %w", err)
	}
	return bookings, nil
}

// ReserveFirstAvailable resolves the free rooms and inserts the booking on the first one
// inside a serializable transaction. The exclusion constraint on bookings backs this up
// for inserts that race past the availability check.
func (r *PgxBookingRepository) ReserveFirstAvailable(ctx context.Context, booking domain.Booking, query availability.Query) (*domain.Booking, error) {
	tx, err := r.Begin(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	snapshot, err := loadSnapshot(ctx, tx, query.LocationID, query.Stay)
	if err != nil {
		return nil, mapReserveError(err)
	}
	free, err := availability.FindAvailableRooms(snapshot, query)
	if err != nil {
		return nil, err
	}
	if len(free) == 0 {
		return nil, fmt.Errorf("stay %s: %w", query.Stay, apperrors.ErrRoomUnavailable)
	}

	room := free[0]
	booking.RoomID = room.RoomID
	booking.LocationID = room.LocationID
	booking.RoomTypeID = room.RoomTypeID
	m := mapping.ToModelBooking(booking)

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`,
		m.BookingID, m.RoomID, m.LocationID, m.RoomTypeID, m.UserID, m.Guests, m.BookingStart, m.BookingEnd, m.CurrencyCode,
		m.FullName, m.Email, m.AddressLine1, m.AddressLine2, m.Postcode, m.Country,
		m.CardType, m.CardholderName, m.CardLast4, m.CardExpMonth, m.CardExpYear,
		m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return nil, mapReserveError(err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, mapReserveError(err)
	}

	saved := mapping.ToDomainBooking(m)
	return &saved, nil
}

// mapReserveError reports lost booking races as ErrRoomUnavailable.
func mapReserveError(err error) error {
	switch pgErrorCode(err) {
	case pgExclusionViolation, pgSerializationFailure:
		return fmt.Errorf("room taken by a concurrent booking: %w", apperrors.ErrRoomUnavailable)
	case pgForeignKeyViolation, pgCheckViolation:
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return fmt.Errorf("failed to reserve room: %w", err)
}

// DeleteBooking soft deletes a booking, releasing its room.
func (r *PgxBookingRepository) DeleteBooking(ctx context.Context, bookingID string, deletedAt time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE bookings
		SET deleted_at = $1, last_updated_at = $1
		WHERE booking_id = $2 AND deleted_at IS NULL;
	`, deletedAt, bookingID)
	if err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", bookingID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found or already cancelled: %w", bookingID, apperrors.ErrNotFound)
	}
	return nil
}
