// Package availability decides which physical rooms are free for a stay.
// It works on data already fetched by the storage layer and never blocks.
package availability

import (
	"fmt"
	"sort"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
)

// Snapshot is the slice of inventory a query runs against. Bookings may be
// pre-filtered to those near the requested stay; extra bookings are harmless.
type Snapshot struct {
	Rooms     []domain.Room
	RoomTypes []domain.RoomType
	Bookings  []domain.Booking
}

// Query selects candidate rooms. Nil LocationID or RoomTypeID means unfiltered.
type Query struct {
	LocationID *int64
	RoomTypeID *int64
	Stay       calendar.Interval
	Guests     int
}

// RoomTypeFilter restricts a count to some room types.
// A nil filter matches every type; a non-nil empty filter is rejected.
type RoomTypeFilter []int64

// FindAvailableRooms returns the distinct rooms matching the query that have
// no booking overlapping the stay, ordered by room id.
func FindAvailableRooms(s Snapshot, q Query) ([]domain.Room, error) {
	if q.Stay.Start.IsZero() || q.Stay.End.IsZero() {
		return nil, fmt.Errorf("find available rooms: %w", apperrors.ErrInvalidInterval)
	}
	if q.Guests < 1 {
		return nil, fmt.Errorf("find available rooms: %d guests: %w", q.Guests, apperrors.ErrInvalidGuestCount)
	}

	types := indexRoomTypes(s.RoomTypes)
	if q.RoomTypeID != nil {
		rt, ok := types[*q.RoomTypeID]
		if !ok {
			return nil, fmt.Errorf("room type %d: %w", *q.RoomTypeID, apperrors.ErrNotFound)
		}
		if !rt.Fits(q.Guests) {
			return nil, fmt.Errorf("room type %s sleeps at most %d, got %d guests: %w",
				rt.Code, rt.MaxOccupants, q.Guests, apperrors.ErrInvalidGuestCount)
		}
	}

	booked := BookedRoomIDs(s.Bookings, q.Stay)
	seen := make(map[int64]struct{})
	var free []domain.Room
	for _, room := range s.Rooms {
		if q.LocationID != nil && room.LocationID != *q.LocationID {
			continue
		}
		if q.RoomTypeID != nil && room.RoomTypeID != *q.RoomTypeID {
			continue
		}
		rt, ok := types[room.RoomTypeID]
		if !ok || !rt.Fits(q.Guests) {
			continue
		}
		if _, taken := booked[room.RoomID]; taken {
			continue
		}
		if _, dup := seen[room.RoomID]; dup {
			continue
		}
		seen[room.RoomID] = struct{}{}
		free = append(free, room)
	}

	sort.Slice(free, func(i, j int) bool { return free[i].RoomID < free[j].RoomID })
	return free, nil
}

// CountAvailable returns the number of rooms of the filtered types at a
// location minus those with at least one booking overlapping the stay.
// A room with several overlapping bookings is only subtracted once.
func CountAvailable(s Snapshot, locationID int64, stay calendar.Interval, filter RoomTypeFilter) (int, error) {
	if stay.Start.IsZero() || stay.End.IsZero() {
		return 0, fmt.Errorf("count available rooms: %w", apperrors.ErrInvalidInterval)
	}
	wanted, err := resolveFilter(filter, s.RoomTypes)
	if err != nil {
		return 0, err
	}

	booked := BookedRoomIDs(s.Bookings, stay)
	total := make(map[int64]struct{})
	taken := make(map[int64]struct{})
	for _, room := range s.Rooms {
		if room.LocationID != locationID {
			continue
		}
		if _, ok := wanted[room.RoomTypeID]; !ok {
			continue
		}
		total[room.RoomID] = struct{}{}
		if _, ok := booked[room.RoomID]; ok {
			taken[room.RoomID] = struct{}{}
		}
	}
	return len(total) - len(taken), nil
}

// BookedRoomIDs returns the distinct rooms with a booking overlapping the stay.
func BookedRoomIDs(bookings []domain.Booking, stay calendar.Interval) map[int64]struct{} {
	ids := make(map[int64]struct{})
	for _, b := range bookings {
		if b.Interval().Overlaps(stay) {
			ids[b.RoomID] = struct{}{}
		}
	}
	return ids
}

func resolveFilter(filter RoomTypeFilter, roomTypes []domain.RoomType) (map[int64]struct{}, error) {
	types := indexRoomTypes(roomTypes)
	wanted := make(map[int64]struct{})
	if filter == nil {
		for id := range types {
			wanted[id] = struct{}{}
		}
		return wanted, nil
	}
	if len(filter) == 0 {
		return nil, fmt.Errorf("room type filter is empty: %w", apperrors.ErrInvalidFilter)
	}
	for _, id := range filter {
		if _, ok := types[id]; !ok {
			return nil, fmt.Errorf("unknown room type %d in filter: %w", id, apperrors.ErrInvalidFilter)
		}
		wanted[id] = struct{}{}
	}
	return wanted, nil
}

func indexRoomTypes(roomTypes []domain.RoomType) map[int64]domain.RoomType {
	m := make(map[int64]domain.RoomType, len(roomTypes))
	for _, rt := range roomTypes {
		m[rt.RoomTypeID] = rt
	}
	return m
}
