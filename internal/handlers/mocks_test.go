package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ReferenceService ---
type MockReferenceService struct {
	mock.Mock
}

func (m *MockReferenceService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockReferenceService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockReferenceService) GetLocation(ctx context.Context, locationID int64) (*domain.Location, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockReferenceService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockReferenceService) GetRoomType(ctx context.Context, roomTypeID int64) (*domain.RoomType, error) {
	args := m.Called(ctx, roomTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockReferenceService) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomType), args.Error(1)
}

var _ portssvc.ReferenceSvcFacade = (*MockReferenceService)(nil)

// --- Mock SearchService ---
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, req dto.SearchRequest) ([]portssvc.RoomOffer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portssvc.RoomOffer), args.Error(1)
}

var _ portssvc.SearchSvc = (*MockSearchService)(nil)

// --- Mock BookingService ---
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) QuoteRoom(ctx context.Context, req dto.QuoteRequest) (*portssvc.RoomOffer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.RoomOffer), args.Error(1)
}

func (m *MockBookingService) GetBooking(ctx context.Context, bookingID, userID string, isAdmin bool) (*portssvc.BookingDetails, error) {
	args := m.Called(ctx, bookingID, userID, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.BookingDetails), args.Error(1)
}

func (m *MockBookingService) ListUserBookings(ctx context.Context, userID string, params dto.ListBookingsParams) (*portssvc.BookingPage, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.BookingPage), args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, userID string) (*portssvc.BookingDetails, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.BookingDetails), args.Error(1)
}

func (m *MockBookingService) PreviewCancellation(ctx context.Context, bookingID, userID string) (*portssvc.CancellationPreview, error) {
	args := m.Called(ctx, bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.CancellationPreview), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, bookingID, userID string) (*portssvc.CancellationPreview, error) {
	args := m.Called(ctx, bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.CancellationPreview), args.Error(1)
}

var _ portssvc.BookingSvcFacade = (*MockBookingService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TopLocations(ctx context.Context, limit int) ([]domain.LocationBookingCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationBookingCount), args.Error(1)
}

func (m *MockReportingService) MonthlyBookings(ctx context.Context, req dto.MonthlyBookingsRequest) (*domain.MonthlyBookingReport, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyBookingReport), args.Error(1)
}

func (m *MockReportingService) CompareBookings(ctx context.Context, req dto.CompareBookingsRequest) ([]domain.LocationComparison, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationComparison), args.Error(1)
}

func (m *MockReportingService) RoomsAvailable(ctx context.Context, req dto.RoomsAvailableRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (string, time.Time, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context, username, password string) (*domain.User, bool, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Bool(1), args.Error(2)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

func (m *MockAuthService) UpdateAccount(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock AdminService ---
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) UpdateLocationRates(ctx context.Context, locationID int64, req dto.UpdateLocationRatesRequest) (*domain.Location, error) {
	args := m.Called(ctx, locationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockAdminService) UpdateConversionRate(ctx context.Context, currencyCode string, req dto.UpdateConversionRateRequest) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockAdminService) CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest) (*domain.RoomType, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockAdminService) UpdateRoomType(ctx context.Context, roomTypeID int64, req dto.UpdateRoomTypeRequest) (*domain.RoomType, error) {
	args := m.Called(ctx, roomTypeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockAdminService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (*domain.Room, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockAdminService) DeleteRoom(ctx context.Context, roomID int64) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

var _ portssvc.AdminSvcFacade = (*MockAdminService)(nil)
