package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/hotel_booking_app/internal/core/availability"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hotel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	bookingRepo   portsrepo.BookingReader
	inventory     portsrepo.InventoryRepositoryFacade
	reference     portssvc.ReferenceSvcFacade
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	bookingRepo portsrepo.BookingReader,
	inventory portsrepo.InventoryRepositoryFacade,
	reference portssvc.ReferenceSvcFacade,
	options ...ServiceOption,
) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: reportingRepo,
		bookingRepo:   bookingRepo,
		inventory:     inventory,
		reference:     reference,
	}
	svc.apply(options)
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TopLocations returns the most booked locations
func (s *reportingService) TopLocations(ctx context.Context, limit int) ([]domain.LocationBookingCount, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := s.reportingRepo.TopLocations(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to get top locations", slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to get top locations: %w", err)
	}
	if rows == nil {
		rows = []domain.LocationBookingCount{}
	}
	return rows, nil
}

// MonthlyBookings lists the bookings at a location that overlap a calendar month
func (s *reportingService) MonthlyBookings(ctx context.Context, req dto.MonthlyBookingsRequest) (*domain.MonthlyBookingReport, error) {
	first, err := dto.ParseMonth(req.Month)
	if err != nil {
		return nil, err
	}
	if _, err := s.reference.GetLocation(ctx, req.LocationID); err != nil {
		return nil, err
	}

	month := calendar.MonthOf(first.Year(), first.Month())
	bookings, err := s.bookingRepo.FindOverlappingBookings(ctx, []int64{req.LocationID}, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to get monthly bookings",
			slog.Int64("location_id", req.LocationID),
			slog.String("month", req.Month))
		return nil, fmt.Errorf("failed to get monthly bookings: %w", err)
	}

	report := &domain.MonthlyBookingReport{
		LocationID: req.LocationID,
		Month:      month.Start,
		Bookings:   make([]domain.Booking, 0, len(bookings)),
	}
	for _, b := range bookings {
		if b.LocationID == req.LocationID && b.Interval().Overlaps(month) {
			report.Bookings = append(report.Bookings, b)
		}
	}
	sort.SliceStable(report.Bookings, func(i, j int) bool {
		return report.Bookings[i].BookingStart.Before(report.Bookings[j].BookingStart)
	})
	return report, nil
}

// CompareBookings counts bookings per room type at each location for a month
func (s *reportingService) CompareBookings(ctx context.Context, req dto.CompareBookingsRequest) ([]domain.LocationComparison, error) {
	first, err := dto.ParseMonth(req.Month)
	if err != nil {
		return nil, err
	}
	month := calendar.MonthOf(first.Year(), first.Month())

	roomTypes, err := s.reference.ListRoomTypes(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool)
	var locations []domain.Location
	for _, id := range req.LocationIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		location, err := s.reference.GetLocation(ctx, id)
		if err != nil {
			return nil, err
		}
		locations = append(locations, *location)
	}

	ids := make([]int64, len(locations))
	for i, l := range locations {
		ids[i] = l.LocationID
	}
	bookings, err := s.bookingRepo.FindOverlappingBookings(ctx, ids, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to compare bookings", slog.String("month", req.Month))
		return nil, fmt.Errorf("failed to compare bookings: %w", err)
	}

	type key struct{ location, roomType int64 }
	counts := make(map[key]int)
	totals := make(map[int64]int)
	for _, b := range bookings {
		if !b.Interval().Overlaps(month) {
			continue
		}
		counts[key{b.LocationID, b.RoomTypeID}]++
		totals[b.LocationID]++
	}

	out := make([]domain.LocationComparison, 0, len(locations))
	for _, l := range locations {
		cmp := domain.LocationComparison{
			LocationID:   l.LocationID,
			LocationName: l.Name,
			Total:        totals[l.LocationID],
			ByRoomType:   make([]domain.RoomTypeBookingCount, 0, len(roomTypes)),
		}
		for _, rt := range roomTypes {
			cmp.ByRoomType = append(cmp.ByRoomType, domain.RoomTypeBookingCount{
				RoomTypeID: rt.RoomTypeID,
				Code:       rt.Code,
				Bookings:   counts[key{l.LocationID, rt.RoomTypeID}],
			})
		}
		out = append(out, cmp)
	}
	return out, nil
}

// RoomsAvailable counts free rooms of the requested types at a location
func (s *reportingService) RoomsAvailable(ctx context.Context, req dto.RoomsAvailableRequest) (int, error) {
	stay, err := dto.ParseInterval(req.Start, req.End)
	if err != nil {
		return 0, err
	}
	if _, err := s.reference.GetLocation(ctx, req.LocationID); err != nil {
		return 0, err
	}

	var filter availability.RoomTypeFilter
	if req.RoomTypeIDs != nil {
		filter = availability.RoomTypeFilter(req.RoomTypeIDs)
	}

	snapshot, err := s.inventory.LoadSnapshot(ctx, &req.LocationID, stay)
	if err != nil {
		s.LogError(ctx, err, "Failed to load inventory for availability count", slog.Int64("location_id", req.LocationID))
		return 0, fmt.Errorf("failed to load inventory: %w", err)
	}
	return availability.CountAvailable(snapshot, req.LocationID, stay, filter)
}
