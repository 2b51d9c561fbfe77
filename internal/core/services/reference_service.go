package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hotel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
)

// referenceService serves the read-only inventory: currencies, locations and room types.
type referenceService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
	locationRepo portsrepo.LocationReader
	roomTypeRepo portsrepo.RoomTypeReader
}

// NewReferenceService creates a new reference data service.
func NewReferenceService(
	currencyRepo portsrepo.CurrencyReader,
	locationRepo portsrepo.LocationReader,
	roomTypeRepo portsrepo.RoomTypeReader,
	options ...ServiceOption,
) portssvc.ReferenceSvcFacade {
	svc := &referenceService{
		currencyRepo: currencyRepo,
		locationRepo: locationRepo,
		roomTypeRepo: roomTypeRepo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.ReferenceSvcFacade = (*referenceService)(nil)

// GetCurrencyByCode retrieves a currency by its 3 letter code, ignoring case.
func (s *referenceService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters, got %q", apperrors.ErrValidation, currencyCode)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		// Repository layer handles ErrNotFound mapping
		s.LogDebug(ctx, "Currency lookup failed", slog.String("currency_code", code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("currency %s: %w", code, err)
	}
	return currency, nil
}

func (s *referenceService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *referenceService) GetLocation(ctx context.Context, locationID int64) (*domain.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("location %d: %w", locationID, err)
	}
	return location, nil
}

func (s *referenceService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.locationRepo.ListLocations(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list locations")
		return nil, fmt.Errorf("failed to list locations in service: %w", err)
	}
	if locations == nil {
		return []domain.Location{}, nil
	}
	return locations, nil
}

func (s *referenceService) GetRoomType(ctx context.Context, roomTypeID int64) (*domain.RoomType, error) {
	roomType, err := s.roomTypeRepo.FindRoomTypeByID(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("room type %d: %w", roomTypeID, err)
	}
	return roomType, nil
}

func (s *referenceService) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	roomTypes, err := s.roomTypeRepo.ListRoomTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list room types")
		return nil, fmt.Errorf("failed to list room types in service: %w", err)
	}
	if roomTypes == nil {
		return []domain.RoomType{}, nil
	}
	return roomTypes, nil
}
