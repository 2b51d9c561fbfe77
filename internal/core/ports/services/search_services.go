package services

import (
	"context"

	"github.com/SscSPs/hotel_booking_app/internal/dto"
)

// SearchSvc finds priced, available rooms.
type SearchSvc interface {
	// Search returns one offer per (location, room type) with at least one
	// free room that fits the guests, ordered by location name then room size.
	Search(ctx context.Context, req dto.SearchRequest) ([]RoomOffer, error)
}
