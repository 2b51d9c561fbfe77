package repositories

import (
	"context"

	"github.com/SscSPs/hotel_booking_app/internal/core/availability"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
)

// RoomTypeReader defines read operations for room types
type RoomTypeReader interface {
	// FindRoomTypeByID retrieves a room type by its ID.
	FindRoomTypeByID(ctx context.Context, roomTypeID int64) (*domain.RoomType, error)

	// ListRoomTypes retrieves all room types ordered by max occupants.
	ListRoomTypes(ctx context.Context) ([]domain.RoomType, error)
}

// RoomTypeWriter defines write operations for room types
type RoomTypeWriter interface {
	// SaveRoomType inserts a room type and returns it with its new ID.
	// Returns apperrors.ErrDuplicate if the code is taken.
	SaveRoomType(ctx context.Context, roomType domain.RoomType) (*domain.RoomType, error)

	// UpdateRoomType changes the name and capacity of a room type; the code is fixed.
	UpdateRoomType(ctx context.Context, roomType domain.RoomType) (*domain.RoomType, error)
}

// RoomWriter defines write operations for physical rooms
type RoomWriter interface {
	// SaveRoom inserts a room and returns it with its new ID.
	SaveRoom(ctx context.Context, room domain.Room) (*domain.Room, error)

	// DeleteRoom removes a room. Returns apperrors.ErrConflict if any booking,
	// past or cancelled, still references it.
	DeleteRoom(ctx context.Context, roomID int64) error
}

// InventoryReader loads the rooms and bookings an availability query runs against.
type InventoryReader interface {
	// LoadSnapshot returns the rooms at the location (all locations when nil),
	// every room type and the bookings on those rooms overlapping the stay.
	LoadSnapshot(ctx context.Context, locationID *int64, stay calendar.Interval) (availability.Snapshot, error)
}

// InventoryRepositoryFacade combines all room-related repository interfaces
type InventoryRepositoryFacade interface {
	RoomTypeReader
	RoomTypeWriter
	RoomWriter
	InventoryReader
}
