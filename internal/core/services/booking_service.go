package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/availability"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/core/ports"
	"github.com/SscSPs/hotel_booking_app/internal/core/pricing"
	portsrepo "github.com/SscSPs/hotel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/SscSPs/hotel_booking_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// bookingService implements the booking workflow on top of the pricing and availability core.
type bookingService struct {
	BaseService
	reference   portssvc.ReferenceSvcFacade
	inventory   portsrepo.InventoryReader
	bookingRepo portsrepo.BookingRepositoryFacade
	calculator  *pricing.Calculator
	publisher   ports.BookingEventPublisher
	rules       StayRules
}

// NewBookingService creates a new booking service.
func NewBookingService(
	reference portssvc.ReferenceSvcFacade,
	inventory portsrepo.InventoryReader,
	bookingRepo portsrepo.BookingRepositoryFacade,
	calculator *pricing.Calculator,
	publisher ports.BookingEventPublisher,
	rules StayRules,
	options ...ServiceOption,
) portssvc.BookingSvcFacade {
	svc := &bookingService{
		reference:   reference,
		inventory:   inventory,
		bookingRepo: bookingRepo,
		calculator:  calculator,
		publisher:   publisher,
		rules:       rules,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

// roomRequest is a validated request for a specific room type at a location.
type roomRequest struct {
	location domain.Location
	roomType domain.RoomType
	currency domain.Currency
	query    availability.Query
}

func (s *bookingService) resolveRoomRequest(ctx context.Context, locationID, roomTypeID int64, stayReq dto.StayRequest) (*roomRequest, error) {
	stay, err := validateStay(stayReq, s.rules, s.calculator, s.Today())
	if err != nil {
		return nil, err
	}
	location, err := s.reference.GetLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	roomType, err := s.reference.GetRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	if err := s.calculator.ValidateGuests(stayReq.Guests, roomType); err != nil {
		return nil, err
	}
	currency, err := resolveCurrency(ctx, s.reference, stayReq.CurrencyCode, s.rules)
	if err != nil {
		return nil, err
	}
	return &roomRequest{
		location: *location,
		roomType: *roomType,
		currency: *currency,
		query: availability.Query{
			LocationID: &location.LocationID,
			RoomTypeID: &roomType.RoomTypeID,
			Stay:       stay,
			Guests:     stayReq.Guests,
		},
	}, nil
}

// QuoteRoom prices a stay and counts the free rooms of the requested type.
func (s *bookingService) QuoteRoom(ctx context.Context, req dto.QuoteRequest) (*portssvc.RoomOffer, error) {
	rr, err := s.resolveRoomRequest(ctx, req.LocationID, req.RoomTypeID, req.StayRequest)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.inventory.LoadSnapshot(ctx, rr.query.LocationID, rr.query.Stay)
	if err != nil {
		s.LogError(ctx, err, "Failed to load inventory for quote", slog.Int64("location_id", rr.location.LocationID))
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	free, err := availability.FindAvailableRooms(snapshot, rr.query)
	if err != nil {
		return nil, err
	}

	quote, err := s.calculator.Compute(pricing.QuoteInput{
		Location: rr.location,
		RoomType: rr.roomType,
		Stay:     rr.query.Stay,
		Guests:   rr.query.Guests,
		Currency: rr.currency,
		BookedOn: s.Today(),
	})
	if err != nil {
		return nil, err
	}

	return &portssvc.RoomOffer{
		Location:  rr.location,
		RoomType:  rr.roomType,
		Currency:  rr.currency,
		FreeRooms: len(free),
		Quote:     quote,
	}, nil
}

// CreateBooking stores the booking on the first free room and publishes booking.created.
func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, userID string) (*portssvc.BookingDetails, error) {
	rr, err := s.resolveRoomRequest(ctx, req.LocationID, req.RoomTypeID, req.StayRequest)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	booking := domain.Booking{
		BookingID:    uuid.NewString(),
		LocationID:   rr.location.LocationID,
		RoomTypeID:   rr.roomType.RoomTypeID,
		UserID:       userID,
		Guests:       req.Guests,
		BookingStart: rr.query.Stay.Start,
		BookingEnd:   rr.query.Stay.End,
		CurrencyCode: rr.currency.CurrencyCode,
		Contact:      req.Contact.ToContactDetails(),
		Card:         req.Card.ToCardDetails(),
		AuditFields:  domain.NewAuditFields(now),
	}

	saved, err := s.bookingRepo.ReserveFirstAvailable(ctx, booking, rr.query)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoomUnavailable) {
			s.LogInfo(ctx, "No room available for booking",
				slog.Int64("location_id", rr.location.LocationID),
				slog.Int64("room_type_id", rr.roomType.RoomTypeID),
				slog.String("stay", rr.query.Stay.String()))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to create booking", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create booking in service: %w", err)
	}

	quote, err := s.calculator.Compute(pricing.QuoteInput{
		Location: rr.location,
		RoomType: rr.roomType,
		Stay:     rr.query.Stay,
		Guests:   saved.Guests,
		Currency: rr.currency,
		BookedOn: saved.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Booking created",
		slog.String("booking_id", saved.BookingID),
		slog.Int64("room_id", saved.RoomID),
		slog.String("user_id", userID))
	s.publish(ctx, domain.BookingCreated, *saved)

	return &portssvc.BookingDetails{
		Booking:  *saved,
		Location: rr.location,
		RoomType: rr.roomType,
		Currency: rr.currency,
		Quote:    quote,
	}, nil
}

// GetBooking returns a current or future booking to its owner or an admin.
func (s *bookingService) GetBooking(ctx context.Context, bookingID, userID string, isAdmin bool) (*portssvc.BookingDetails, error) {
	booking, err := s.findCurrentBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && !booking.IsOwnedBy(userID) {
		return nil, fmt.Errorf("%w: booking %s belongs to another user", apperrors.ErrForbidden, bookingID)
	}
	return s.describe(ctx, *booking)
}

// ListUserBookings returns one page of the user's bookings that have not ended yet, newest first.
func (s *bookingService) ListUserBookings(ctx context.Context, userID string, params dto.ListBookingsParams) (*portssvc.BookingPage, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = dto.DefaultBookingPageSize
	}
	var after *pagination.Cursor
	if params.NextToken != "" {
		cursor, err := pagination.DecodeCursor(params.NextToken)
		if err != nil {
			return nil, err
		}
		after = &cursor
	}

	// one extra row tells whether another page exists
	bookings, err := s.bookingRepo.FindBookingsByUser(ctx, userID, s.Today(), limit+1, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bookings", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list bookings in service: %w", err)
	}

	page := &portssvc.BookingPage{}
	if len(bookings) > limit {
		bookings = bookings[:limit]
		last := bookings[limit-1]
		token := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.BookingID})
		page.NextToken = &token
	}

	page.Bookings = make([]portssvc.BookingDetails, 0, len(bookings))
	for _, b := range bookings {
		d, err := s.describe(ctx, b)
		if err != nil {
			return nil, err
		}
		page.Bookings = append(page.Bookings, *d)
	}
	return page, nil
}

// PreviewCancellation computes what cancelling today would cost.
func (s *bookingService) PreviewCancellation(ctx context.Context, bookingID, userID string) (*portssvc.CancellationPreview, error) {
	booking, err := s.findCurrentBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.IsOwnedBy(userID) {
		return nil, fmt.Errorf("%w: only the guest who made booking %s can cancel it", apperrors.ErrForbidden, bookingID)
	}
	details, err := s.describe(ctx, *booking)
	if err != nil {
		return nil, err
	}
	return &portssvc.CancellationPreview{
		Details: *details,
		Fee:     s.calculator.CancellationFee(details.Quote, booking.BookingStart, s.Today()),
	}, nil
}

// CancelBooking deletes the booking and publishes booking.cancelled.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID, userID string) (*portssvc.CancellationPreview, error) {
	preview, err := s.PreviewCancellation(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.bookingRepo.DeleteBooking(ctx, bookingID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to cancel booking", slog.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to cancel booking in service: %w", err)
	}

	s.LogInfo(ctx, "Booking cancelled",
		slog.String("booking_id", bookingID),
		slog.String("fee", preview.Fee.Fee.String()),
		slog.Int("lead_days", preview.Fee.LeadDays))
	s.publish(ctx, domain.BookingCancelled, preview.Details.Booking)
	return preview, nil
}

// findCurrentBooking loads a booking and rejects ones that have already ended.
func (s *bookingService) findCurrentBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, err)
	}
	if booking.Interval().End.Before(s.Today()) {
		return nil, fmt.Errorf("%w: booking %s is in the past", apperrors.ErrValidation, bookingID)
	}
	return booking, nil
}

// describe resolves a booking's references and recomputes its price as of the day it was made.
func (s *bookingService) describe(ctx context.Context, b domain.Booking) (*portssvc.BookingDetails, error) {
	location, err := s.reference.GetLocation(ctx, b.LocationID)
	if err != nil {
		return nil, err
	}
	roomType, err := s.reference.GetRoomType(ctx, b.RoomTypeID)
	if err != nil {
		return nil, err
	}
	currency, err := s.reference.GetCurrencyByCode(ctx, b.CurrencyCode)
	if err != nil {
		return nil, err
	}
	quote, err := s.calculator.Compute(pricing.QuoteInput{
		Location: *location,
		RoomType: *roomType,
		Stay:     b.Interval(),
		Guests:   b.Guests,
		Currency: *currency,
		BookedOn: b.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("pricing booking %s: %w", b.BookingID, err)
	}
	return &portssvc.BookingDetails{
		Booking:  b,
		Location: *location,
		RoomType: *roomType,
		Currency: *currency,
		Quote:    quote,
	}, nil
}

func (s *bookingService) publish(ctx context.Context, t domain.BookingEventType, b domain.Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishBookingEvent(ctx, domain.NewBookingEvent(t, b, s.Now())); err != nil {
		s.LogError(ctx, err, "Failed to publish booking event",
			slog.String("type", string(t)),
			slog.String("booking_id", b.BookingID))
	}
}
