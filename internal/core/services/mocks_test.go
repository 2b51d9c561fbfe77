package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/core/availability"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
	"github.com/SscSPs/hotel_booking_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) UpdateConversionRate(ctx context.Context, currencyCode string, rate decimal.Decimal) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

// --- Mock LocationRepository ---
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) FindLocationByID(ctx context.Context, locationID int64) (*domain.Location, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockLocationRepository) UpdateLocationRates(ctx context.Context, locationID int64, peak, offPeak decimal.Decimal) (*domain.Location, error) {
	args := m.Called(ctx, locationID, peak, offPeak)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

// --- Mock InventoryRepository ---
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindRoomTypeByID(ctx context.Context, roomTypeID int64) (*domain.RoomType, error) {
	args := m.Called(ctx, roomTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockInventoryRepository) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomType), args.Error(1)
}

func (m *MockInventoryRepository) SaveRoomType(ctx context.Context, roomType domain.RoomType) (*domain.RoomType, error) {
	args := m.Called(ctx, roomType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockInventoryRepository) UpdateRoomType(ctx context.Context, roomType domain.RoomType) (*domain.RoomType, error) {
	args := m.Called(ctx, roomType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockInventoryRepository) SaveRoom(ctx context.Context, room domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, room)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockInventoryRepository) DeleteRoom(ctx context.Context, roomID int64) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

func (m *MockInventoryRepository) LoadSnapshot(ctx context.Context, locationID *int64, stay calendar.Interval) (availability.Snapshot, error) {
	args := m.Called(ctx, locationID, stay)
	return args.Get(0).(availability.Snapshot), args.Error(1)
}

// --- Mock BookingRepository ---
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindBookingsByUser(ctx context.Context, userID string, activeOn time.Time, limit int, after *pagination.Cursor) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, activeOn, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindOverlappingBookings(ctx context.Context, locationIDs []int64, interval calendar.Interval) ([]domain.Booking, error) {
	args := m.Called(ctx, locationIDs, interval)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ReserveFirstAvailable(ctx context.Context, booking domain.Booking, query availability.Query) (*domain.Booking, error) {
	args := m.Called(ctx, booking, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, domain.Booking, availability.Query) *domain.Booking); ok {
		return fn(ctx, booking, query), args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) DeleteBooking(ctx context.Context, bookingID string, deletedAt time.Time) error {
	args := m.Called(ctx, bookingID, deletedAt)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) TopLocations(ctx context.Context, limit int) ([]domain.LocationBookingCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationBookingCount), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock BookingEventPublisher ---
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// --- Fixtures ---

var (
	gbp = domain.Currency{CurrencyCode: "GBP", Name: "British Pound", Symbol: "£", ConversionRate: decimal.NewFromInt(1)}
	usd = domain.Currency{CurrencyCode: "USD", Name: "US Dollar", Symbol: "$", ConversionRate: decimal.RequireFromString("1.6")}

	aberdeen = domain.Location{LocationID: 1, Name: "Aberdeen", CurrencyCode: "GBP",
		PeakPrice: decimal.RequireFromString("140.00"), OffPeakPrice: decimal.RequireFromString("60.00")}
	london = domain.Location{LocationID: 8, Name: "London", CurrencyCode: "GBP",
		PeakPrice: decimal.RequireFromString("200.00"), OffPeakPrice: decimal.RequireFromString("80.00")}

	singleRoom = domain.RoomType{RoomTypeID: 1, Code: domain.RoomTypeSingle, Name: "Single", MaxOccupants: 1}
	doubleRoom = domain.RoomType{RoomTypeID: 2, Code: domain.RoomTypeDouble, Name: "Double", MaxOccupants: 2}
	familyRoom = domain.RoomType{RoomTypeID: 3, Code: domain.RoomTypeFamily, Name: "Family", MaxOccupants: 6}
)

func allRoomTypes() []domain.RoomType {
	return []domain.RoomType{singleRoom, doubleRoom, familyRoom}
}

func inventorySnapshot() availability.Snapshot {
	return availability.Snapshot{
		RoomTypes: allRoomTypes(),
		Rooms: []domain.Room{
			{RoomID: 101, LocationID: london.LocationID, RoomTypeID: singleRoom.RoomTypeID},
			{RoomID: 102, LocationID: london.LocationID, RoomTypeID: doubleRoom.RoomTypeID},
			{RoomID: 103, LocationID: london.LocationID, RoomTypeID: doubleRoom.RoomTypeID},
			{RoomID: 104, LocationID: london.LocationID, RoomTypeID: familyRoom.RoomTypeID},
			{RoomID: 201, LocationID: aberdeen.LocationID, RoomTypeID: doubleRoom.RoomTypeID},
			{RoomID: 202, LocationID: aberdeen.LocationID, RoomTypeID: familyRoom.RoomTypeID},
		},
		Bookings: []domain.Booking{
			{BookingID: "existing", RoomID: 201, LocationID: aberdeen.LocationID, RoomTypeID: doubleRoom.RoomTypeID,
				BookingStart: day(2024, time.August, 11), BookingEnd: day(2024, time.August, 15), Guests: 2},
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return calendar.Date(year, month, d)
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
