package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/hotel_booking_app/internal/core/availability"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/core/pricing"
	portsrepo "github.com/SscSPs/hotel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
)

// searchService resolves free rooms and prices them.
type searchService struct {
	BaseService
	reference  portssvc.ReferenceSvcFacade
	inventory  portsrepo.InventoryReader
	calculator *pricing.Calculator
	rules      StayRules
}

// NewSearchService creates a new search service.
func NewSearchService(
	reference portssvc.ReferenceSvcFacade,
	inventory portsrepo.InventoryReader,
	calculator *pricing.Calculator,
	rules StayRules,
	options ...ServiceOption,
) portssvc.SearchSvc {
	svc := &searchService{
		reference:  reference,
		inventory:  inventory,
		calculator: calculator,
		rules:      rules,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.SearchSvc = (*searchService)(nil)

type offerKey struct {
	locationID int64
	roomTypeID int64
}

func (s *searchService) Search(ctx context.Context, req dto.SearchRequest) ([]portssvc.RoomOffer, error) {
	today := s.Today()
	stay, err := validateStay(req.StayRequest, s.rules, s.calculator, today)
	if err != nil {
		return nil, err
	}
	currency, err := resolveCurrency(ctx, s.reference, req.CurrencyCode, s.rules)
	if err != nil {
		return nil, err
	}

	var locations []domain.Location
	if req.LocationID != nil {
		location, err := s.reference.GetLocation(ctx, *req.LocationID)
		if err != nil {
			return nil, err
		}
		locations = []domain.Location{*location}
	} else {
		locations, err = s.reference.ListLocations(ctx)
		if err != nil {
			return nil, err
		}
	}

	snapshot, err := s.inventory.LoadSnapshot(ctx, req.LocationID, stay)
	if err != nil {
		s.LogError(ctx, err, "Failed to load inventory for search", slog.String("stay", stay.String()))
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	free, err := availability.FindAvailableRooms(snapshot, availability.Query{
		LocationID: req.LocationID,
		Stay:       stay,
		Guests:     req.Guests,
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[offerKey]int)
	for _, room := range free {
		counts[offerKey{room.LocationID, room.RoomTypeID}]++
	}

	roomTypes := make(map[int64]domain.RoomType, len(snapshot.RoomTypes))
	for _, rt := range snapshot.RoomTypes {
		roomTypes[rt.RoomTypeID] = rt
	}

	offers := make([]portssvc.RoomOffer, 0, len(counts))
	for _, location := range locations {
		for roomTypeID, roomType := range roomTypes {
			n := counts[offerKey{location.LocationID, roomTypeID}]
			if n == 0 {
				continue
			}
			quote, err := s.calculator.Compute(pricing.QuoteInput{
				Location: location,
				RoomType: roomType,
				Stay:     stay,
				Guests:   req.Guests,
				Currency: *currency,
				BookedOn: today,
			})
			if err != nil {
				return nil, fmt.Errorf("pricing %s %s: %w", location.Name, roomType.Code, err)
			}
			offers = append(offers, portssvc.RoomOffer{
				Location:  location,
				RoomType:  roomType,
				Currency:  *currency,
				FreeRooms: n,
				Quote:     quote,
			})
		}
	}

	sort.Slice(offers, func(i, j int) bool {
		a, b := offers[i], offers[j]
		if a.Location.Name != b.Location.Name {
			return a.Location.Name < b.Location.Name
		}
		if a.RoomType.MaxOccupants != b.RoomType.MaxOccupants {
			return a.RoomType.MaxOccupants < b.RoomType.MaxOccupants
		}
		return a.RoomType.RoomTypeID < b.RoomType.RoomTypeID
	})

	s.LogDebug(ctx, "Search completed",
		slog.String("stay", stay.String()),
		slog.Int("guests", req.Guests),
		slog.Int("offers", len(offers)))
	return offers, nil
}
