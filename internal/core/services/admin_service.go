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
	"github.com/SscSPs/hotel_booking_app/internal/core/pricing"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ratePlaces matches the scale of currencies.conversion_rate.
const ratePlaces = 4

// adminService applies admin changes to prices and inventory.
type adminService struct {
	BaseService
	currencyRepo  portsrepo.CurrencyRepositoryFacade
	locationRepo  portsrepo.LocationWriter
	inventoryRepo portsrepo.InventoryRepositoryFacade
	policy        pricing.Policy
}

// NewAdminService creates the admin service. Room types are checked against
// the pricing policy so every stored code can be priced.
func NewAdminService(
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	locationRepo portsrepo.LocationWriter,
	inventoryRepo portsrepo.InventoryRepositoryFacade,
	policy pricing.Policy,
	options ...ServiceOption,
) portssvc.AdminSvcFacade {
	svc := &adminService{
		currencyRepo:  currencyRepo,
		locationRepo:  locationRepo,
		inventoryRepo: inventoryRepo,
		policy:        policy,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.AdminSvcFacade = (*adminService)(nil)

// UpdateLocationRates stores new nightly rates, rounded to whole pence.
func (s *adminService) UpdateLocationRates(ctx context.Context, locationID int64, req dto.UpdateLocationRatesRequest) (*domain.Location, error) {
	if req.PeakPrice == nil || req.OffPeakPrice == nil {
		return nil, apperrors.NewValidationError("peak and off-peak prices are required")
	}
	peak := req.PeakPrice.Round(pricing.MoneyPlaces)
	offPeak := req.OffPeakPrice.Round(pricing.MoneyPlaces)
	if peak.IsNegative() || offPeak.IsNegative() {
		return nil, fmt.Errorf("%w: prices must not be negative", apperrors.ErrValidation)
	}

	location, err := s.locationRepo.UpdateLocationRates(ctx, locationID, peak, offPeak)
	if err != nil {
		s.LogDebug(ctx, "Location rate update failed", slog.Int64("location_id", locationID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("location %d: %w", locationID, err)
	}

	s.LogInfo(ctx, "Location rates updated",
		slog.Int64("location_id", locationID),
		slog.String("peak", peak.StringFixed(pricing.MoneyPlaces)),
		slog.String("off_peak", offPeak.StringFixed(pricing.MoneyPlaces)))
	return location, nil
}

// UpdateConversionRate changes the rate of any currency except the base one.
// A second currency at exactly 1.0 is refused, since that rate marks the base.
func (s *adminService) UpdateConversionRate(ctx context.Context, currencyCode string, req dto.UpdateConversionRateRequest) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters, got %q", apperrors.ErrValidation, currencyCode)
	}
	if req.ConversionRate == nil {
		return nil, apperrors.NewValidationError("conversion rate is required")
	}
	rate := req.ConversionRate.Round(ratePlaces)
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%w: conversion rate must be positive", apperrors.ErrValidation)
	}

	current, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("currency %s: %w", code, err)
	}
	if current.IsBase() {
		return nil, fmt.Errorf("%w: %s is the base currency and its rate is fixed at 1", apperrors.ErrValidation, code)
	}
	if rate.Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: only the base currency may have a rate of 1", apperrors.ErrValidation)
	}

	updated, err := s.currencyRepo.UpdateConversionRate(ctx, code, rate)
	if err != nil {
		s.LogError(ctx, err, "Failed to update conversion rate", slog.String("currency_code", code))
		return nil, fmt.Errorf("currency %s: %w", code, err)
	}

	s.LogInfo(ctx, "Conversion rate updated",
		slog.String("currency_code", code),
		slog.String("from", current.ConversionRate.String()),
		slog.String("to", updated.ConversionRate.String()))
	return updated, nil
}

// CreateRoomType adds a room type for a code the pricing policy has a multiplier for.
func (s *adminService) CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest) (*domain.RoomType, error) {
	code := domain.RoomTypeCode(strings.ToUpper(strings.TrimSpace(req.Code)))
	if _, err := s.policy.Multiplier(code, 1); err != nil {
		return nil, fmt.Errorf("%w: room type code %q has no price multiplier", apperrors.ErrValidation, code)
	}
	roomType := domain.RoomType{Code: code, Name: strings.TrimSpace(req.Name), MaxOccupants: req.MaxOccupants}
	if err := s.checkRoomType(roomType); err != nil {
		return nil, err
	}

	saved, err := s.inventoryRepo.SaveRoomType(ctx, roomType)
	if err != nil {
		return nil, fmt.Errorf("failed to create room type %s: %w", code, err)
	}
	s.LogInfo(ctx, "Room type created", slog.Int64("room_type_id", saved.RoomTypeID), slog.String("code", string(code)))
	return saved, nil
}

// UpdateRoomType renames a room type or changes its capacity. Existing
// bookings are not re-checked against a smaller capacity.
func (s *adminService) UpdateRoomType(ctx context.Context, roomTypeID int64, req dto.UpdateRoomTypeRequest) (*domain.RoomType, error) {
	existing, err := s.inventoryRepo.FindRoomTypeByID(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("room type %d: %w", roomTypeID, err)
	}
	roomType := *existing
	roomType.Name = strings.TrimSpace(req.Name)
	roomType.MaxOccupants = req.MaxOccupants
	if err := s.checkRoomType(roomType); err != nil {
		return nil, err
	}

	saved, err := s.inventoryRepo.UpdateRoomType(ctx, roomType)
	if err != nil {
		return nil, fmt.Errorf("failed to update room type %d: %w", roomTypeID, err)
	}
	s.LogInfo(ctx, "Room type updated", slog.Int64("room_type_id", roomTypeID))
	return saved, nil
}

func (s *adminService) checkRoomType(rt domain.RoomType) error {
	if rt.Name == "" || len(rt.Name) > 50 {
		return fmt.Errorf("%w: room type name must be 1 to 50 characters", apperrors.ErrValidation)
	}
	if rt.MaxOccupants < 1 || rt.MaxOccupants > s.policy.MaxGuests {
		return fmt.Errorf("%w: max occupants must be between 1 and %d", apperrors.ErrValidation, s.policy.MaxGuests)
	}
	return nil
}

// CreateRoom adds a room of an existing type to an existing location.
func (s *adminService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (*domain.Room, error) {
	if req.LocationID <= 0 || req.RoomTypeID <= 0 {
		return nil, apperrors.NewValidationError("location and room type are required")
	}
	room, err := s.inventoryRepo.SaveRoom(ctx, domain.Room{LocationID: req.LocationID, RoomTypeID: req.RoomTypeID})
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	s.LogInfo(ctx, "Room created",
		slog.Int64("room_id", room.RoomID),
		slog.Int64("location_id", room.LocationID),
		slog.Int64("room_type_id", room.RoomTypeID))
	return room, nil
}

// DeleteRoom removes a room. Rooms with bookings, cancelled ones included, stay.
func (s *adminService) DeleteRoom(ctx context.Context, roomID int64) error {
	if err := s.inventoryRepo.DeleteRoom(ctx, roomID); err != nil {
		return fmt.Errorf("failed to delete room %d: %w", roomID, err)
	}
	s.LogInfo(ctx, "Room deleted", slog.Int64("room_id", roomID))
	return nil
}
