package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/availability"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hotel_booking_app/internal/core/ports/repositories"
	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxInventoryRepository reads room types, rooms and the bookings occupying them.
type PgxInventoryRepository struct {
	BaseRepository
}

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

const roomTypeColumns = `room_type_id, code, name, max_occupants`

func scanRoomType(row rowScanner) (domain.RoomType, error) {
	var rt domain.RoomType
	var code string
	err := row.Scan(&rt.RoomTypeID, &code, &rt.Name, &rt.MaxOccupants)
	rt.Code = domain.RoomTypeCode(code)
	return rt, err
}

// FindRoomTypeByID retrieves a room type by its ID.
func (r *PgxInventoryRepository) FindRoomTypeByID(ctx context.Context, roomTypeID int64) (*domain.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE room_type_id = $1;`
	rt, err := scanRoomType(r.Pool.QueryRow(ctx, query, roomTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("room type %d: %w", roomTypeID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find room type %d: %w", roomTypeID, err)
	}
	return &rt, nil
}

// ListRoomTypes retrieves all room types ordered by max occupants.
func (r *PgxInventoryRepository) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return listRoomTypes(ctx, r.Pool)
}

// LoadSnapshot returns the inventory an availability query runs against.
func (r *PgxInventoryRepository) LoadSnapshot(ctx context.Context, locationID *int64, stay calendar.Interval) (availability.Snapshot, error) {
	return loadSnapshot(ctx, r.Pool, locationID, stay)
}

// SaveRoomType inserts a room type.
func (r *PgxInventoryRepository) SaveRoomType(ctx context.Context, roomType domain.RoomType) (*domain.RoomType, error) {
	query := `INSERT INTO room_types (code, name, max_occupants) VALUES ($1, $2, $3)
		RETURNING ` + roomTypeColumns + `;`
	saved, err := scanRoomType(r.Pool.QueryRow(ctx, query, string(roomType.Code), roomType.Name, roomType.MaxOccupants))
	if err != nil {
		if mapped := constraintError(err, fmt.Sprintf("room type %s", roomType.Code), nil); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to save room type %s: %w", roomType.Code, err)
	}
	return &saved, nil
}

// UpdateRoomType renames a room type and changes its capacity.
func (r *PgxInventoryRepository) UpdateRoomType(ctx context.Context, roomType domain.RoomType) (*domain.RoomType, error) {
	query := `UPDATE room_types SET name = $2, max_occupants = $3
		WHERE room_type_id = $1
		RETURNING ` + roomTypeColumns + `;`
	saved, err := scanRoomType(r.Pool.QueryRow(ctx, query, roomType.RoomTypeID, roomType.Name, roomType.MaxOccupants))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("room type %d: %w", roomType.RoomTypeID, apperrors.ErrNotFound)
		}
		if mapped := constraintError(err, fmt.Sprintf("room type %d", roomType.RoomTypeID), nil); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update room type %d: %w", roomType.RoomTypeID, err)
	}
	return &saved, nil
}

// SaveRoom adds a room to a location.
func (r *PgxInventoryRepository) SaveRoom(ctx context.Context, room domain.Room) (*domain.Room, error) {
	query := `INSERT INTO rooms (location_id, room_type_id) VALUES ($1, $2)
		RETURNING room_id, location_id, room_type_id;`
	var saved domain.Room
	err := r.Pool.QueryRow(ctx, query, room.LocationID, room.RoomTypeID).
		Scan(&saved.RoomID, &saved.LocationID, &saved.RoomTypeID)
	if err != nil {
		subject := fmt.Sprintf("location %d or room type %d", room.LocationID, room.RoomTypeID)
		if mapped := constraintError(err, subject, apperrors.ErrNotFound); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to save room: %w", err)
	}
	return &saved, nil
}

// DeleteRoom removes a room that no booking refers to.
func (r *PgxInventoryRepository) DeleteRoom(ctx context.Context, roomID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM rooms WHERE room_id = $1;`, roomID)
	if err != nil {
		if mapped := constraintError(err, fmt.Sprintf("room %d is booked", roomID), apperrors.ErrConflict); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to delete room %d: %w", roomID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("room %d: %w", roomID, apperrors.ErrNotFound)
	}
	return nil
}

func listRoomTypes(ctx context.Context, q querier) ([]domain.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types ORDER BY max_occupants, room_type_id;`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query room types: %w", err)
	}
	defer rows.Close()

	roomTypes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RoomType, error) {
		return scanRoomType(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan room types: %w", err)
	}
	return roomTypes, nil
}

// loadSnapshot reads rooms and overlapping bookings through q, so the booking
// insert can run it inside its own transaction.
func loadSnapshot(ctx context.Context, q querier, locationID *int64, stay calendar.Interval) (availability.Snapshot, error) {
	roomTypes, err := listRoomTypes(ctx, q)
	if err != nil {
		return availability.Snapshot{}, err
	}

	roomRows, err := q.Query(ctx, `
		SELECT room_id, location_id, room_type_id
		FROM rooms
		WHERE ($1::bigint IS NULL OR location_id = $1)
		ORDER BY room_id;
	`, locationID)
	if err != nil {
		return availability.Snapshot{}, fmt.Errorf("failed to query rooms: %w", err)
	}
	rooms, err := pgx.CollectRows(roomRows, func(row pgx.CollectableRow) (domain.Room, error) {
		var room domain.Room
		err := row.Scan(&room.RoomID, &room.LocationID, &room.RoomTypeID)
		return room, err
	})
	if err != nil {
		return availability.Snapshot{}, fmt.Errorf("failed to scan rooms: %w", err)
	}

	// inclusive overlap: start <= other.end AND other.start <= end
	bookingRows, err := q.Query(ctx, `
		SELECT booking_id, room_id, location_id, room_type_id, booking_start, booking_end
		FROM bookings
		WHERE deleted_at IS NULL
			AND ($1::bigint IS NULL OR location_id = $1)
			AND booking_start <= $3
			AND $2 <= booking_end;
	`, locationID, stay.Start, stay.End)
	if err != nil {
		return availability.Snapshot{}, fmt.Errorf("failed to query overlapping bookings: %w", err)
	}
	bookings, err := pgx.CollectRows(bookingRows, func(row pgx.CollectableRow) (domain.Booking, error) {
		var b domain.Booking
		err := row.Scan(&b.BookingID, &b.RoomID, &b.LocationID, &b.RoomTypeID, &b.BookingStart, &b.BookingEnd)
		return b, err
	})
	if err != nil {
		return availability.Snapshot{}, fmt.Errorf("failed to scan overlapping bookings: %w", err)
	}

	return availability.Snapshot{
		Rooms:     rooms,
		RoomTypes: roomTypes,
		Bookings:  bookings,
	}, nil
}
