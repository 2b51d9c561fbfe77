package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/availability"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/core/services"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/SscSPs/hotel_booking_app/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BookingServiceTestSuite struct {
	referenceSuite
	bookingRepo *MockBookingRepository
	publisher   *MockPublisher
	service     portssvc.BookingSvcFacade
}

func (suite *BookingServiceTestSuite) SetupTest() {
	suite.setupReference()
	suite.bookingRepo = new(MockBookingRepository)
	suite.publisher = new(MockPublisher)
	suite.service = services.NewBookingService(
		suite.reference,
		suite.inventoryRepo,
		suite.bookingRepo,
		suite.calculator,
		suite.publisher,
		suite.rules,
		suite.clockOption(),
	)
}

func createBookingRequest(roomType domain.RoomType, guests int) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		LocationID:  london.LocationID,
		RoomTypeID:  roomType.RoomTypeID,
		StayRequest: dto.StayRequest{Start: "2024-08-10", End: "2024-08-12", Guests: guests},
		Contact: dto.ContactRequest{
			FullName:     "Ada Lovelace",
			Email:        "ada@example.com",
			AddressLine1: "1 St James's Square",
			Postcode:     "SW1Y 4JU",
			Country:      "GB",
		},
		Card: dto.CardRequest{
			CardType:       "visa",
			CardholderName: "A Lovelace",
			CardNumber:     "4111111111111111",
			ExpiryMonth:    12,
			ExpiryYear:     2027,
			CVV:            "123",
		},
	}
}

// storedBooking is a London single room booking made on 20 May for 10-12 August.
func storedBooking(userID string) *domain.Booking {
	createdAt := time.Date(2024, time.May, 20, 9, 30, 0, 0, time.UTC)
	return &domain.Booking{
		BookingID:    "booking-1",
		RoomID:       101,
		LocationID:   london.LocationID,
		RoomTypeID:   singleRoom.RoomTypeID,
		UserID:       userID,
		Guests:       1,
		BookingStart: day(2024, time.August, 10),
		BookingEnd:   day(2024, time.August, 12),
		CurrencyCode: "GBP",
		AuditFields:  domain.AuditFields{CreatedAt: createdAt, LastUpdatedAt: createdAt},
	}
}

func (suite *BookingServiceTestSuite) TestQuoteRoom_Success() {
	ctx := context.Background()
	locationID := london.LocationID
	suite.inventoryRepo.On("LoadSnapshot", ctx, &locationID, mock.Anything).Return(inventorySnapshot(), nil).Once()

	offer, err := suite.service.QuoteRoom(ctx, dto.QuoteRequest{
		LocationID:  london.LocationID,
		RoomTypeID:  doubleRoom.RoomTypeID,
		StayRequest: dto.StayRequest{Start: "2024-08-10", End: "2024-08-12", Guests: 1},
	})

	suite.Require().NoError(err)
	suite.Equal(2, offer.FreeRooms)
	// 3 peak nights x 200 x 1.2 for a double with one guest
	suite.True(mustDecimal("720.00").Equal(offer.Quote.Total))
	suite.Require().NotNil(offer.Quote.Discounted)
	suite.True(mustDecimal("576.00").Equal(*offer.Quote.Discounted))
}

func (suite *BookingServiceTestSuite) TestQuoteRoom_TooManyGuestsForRoomType() {
	_, err := suite.service.QuoteRoom(context.Background(), dto.QuoteRequest{
		LocationID:  london.LocationID,
		RoomTypeID:  doubleRoom.RoomTypeID,
		StayRequest: dto.StayRequest{Start: "2024-08-10", End: "2024-08-12", Guests: 3},
	})

	suite.ErrorIs(err, apperrors.ErrInvalidGuestCount)
	suite.inventoryRepo.AssertNotCalled(suite.T(), "LoadSnapshot", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_Success() {
	ctx := context.Background()
	userID := "user-1"

	suite.bookingRepo.On("ReserveFirstAvailable", ctx,
		mock.MatchedBy(func(b domain.Booking) bool {
			return b.UserID == userID &&
				b.BookingID != "" &&
				b.Guests == 2 &&
				b.CurrencyCode == "GBP" &&
				b.Card.Last4 == "1111" &&
				b.Contact.Email == "ada@example.com" &&
				b.CreatedAt.Equal(suite.now)
		}),
		mock.MatchedBy(func(q availability.Query) bool {
			return *q.LocationID == london.LocationID &&
				*q.RoomTypeID == doubleRoom.RoomTypeID &&
				q.Guests == 2 &&
				q.Stay.Start.Equal(day(2024, time.August, 10))
		}),
	).Return(func(_ context.Context, b domain.Booking, _ availability.Query) *domain.Booking {
		b.RoomID = 102
		return &b
	}, nil).Once()
	suite.publisher.On("PublishBookingEvent", ctx, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == domain.BookingCreated && e.RoomID == 102 && e.Start == "2024-08-10"
	})).Return(nil).Once()

	details, err := suite.service.CreateBooking(ctx, createBookingRequest(doubleRoom, 2), userID)

	suite.Require().NoError(err)
	suite.Equal(int64(102), details.Booking.RoomID)
	suite.Equal("London", details.Location.Name)
	suite.True(mustDecimal("780.00").Equal(details.Quote.Total))
	suite.Require().NotNil(details.Quote.Discounted)
	suite.True(mustDecimal("624.00").Equal(*details.Quote.Discounted))

	suite.bookingRepo.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestQuoteMatchesBookingAcrossTimeZones() {
	ctx := context.Background()
	// 00:30 on 20 May in CEST is 22:30 on 19 May in UTC
	suite.now = time.Date(2024, time.May, 20, 0, 30, 0, 0, time.FixedZone("CEST", 2*60*60))
	locationID := london.LocationID
	stayReq := dto.StayRequest{Start: "2024-08-07", End: "2024-08-08", Guests: 1}

	suite.inventoryRepo.On("LoadSnapshot", ctx, &locationID, mock.Anything).Return(inventorySnapshot(), nil).Once()
	suite.bookingRepo.On("ReserveFirstAvailable", ctx, mock.Anything, mock.Anything).
		Return(func(_ context.Context, b domain.Booking, _ availability.Query) *domain.Booking {
			b.RoomID = 102
			return &b
		}, nil).Once()
	suite.publisher.On("PublishBookingEvent", ctx, mock.Anything).Return(nil).Once()

	offer, err := suite.service.QuoteRoom(ctx, dto.QuoteRequest{
		LocationID:  london.LocationID,
		RoomTypeID:  doubleRoom.RoomTypeID,
		StayRequest: stayReq,
	})
	suite.Require().NoError(err)

	req := createBookingRequest(doubleRoom, 1)
	req.StayRequest = stayReq
	details, err := suite.service.CreateBooking(ctx, req, "user-1")
	suite.Require().NoError(err)

	suite.Equal(80, offer.Quote.DaysInAdvance)
	suite.Equal(offer.Quote.DaysInAdvance, details.Quote.DaysInAdvance)
	suite.Require().NotNil(offer.Quote.Discounted)
	suite.Require().NotNil(details.Quote.Discounted)
	suite.True(mustDecimal("384.00").Equal(*offer.Quote.Discounted))
	suite.True(offer.Quote.Discounted.Equal(*details.Quote.Discounted))
}

func (suite *BookingServiceTestSuite) TestCreateBooking_RoomUnavailable() {
	ctx := context.Background()
	suite.bookingRepo.On("ReserveFirstAvailable", ctx, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("reserve: %w", apperrors.ErrRoomUnavailable)).Once()

	details, err := suite.service.CreateBooking(ctx, createBookingRequest(familyRoom, 4), "user-1")

	suite.Nil(details)
	suite.ErrorIs(err, apperrors.ErrRoomUnavailable)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.publisher.AssertNotCalled(suite.T(), "PublishBookingEvent", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_PublishFailureDoesNotFailBooking() {
	ctx := context.Background()
	suite.bookingRepo.On("ReserveFirstAvailable", ctx, mock.Anything, mock.Anything).
		Return(func(_ context.Context, b domain.Booking, _ availability.Query) *domain.Booking {
			b.RoomID = 101
			return &b
		}, nil).Once()
	suite.publisher.On("PublishBookingEvent", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	details, err := suite.service.CreateBooking(ctx, createBookingRequest(singleRoom, 1), "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(101), details.Booking.RoomID)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_InvalidRequest() {
	ctx := context.Background()

	req := createBookingRequest(singleRoom, 2)
	_, err := suite.service.CreateBooking(ctx, req, "user-1")
	suite.ErrorIs(err, apperrors.ErrInvalidGuestCount)

	req = createBookingRequest(singleRoom, 1)
	req.RoomTypeID = 42
	_, err = suite.service.CreateBooking(ctx, req, "user-1")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	req = createBookingRequest(singleRoom, 1)
	req.Start = "2024-05-01"
	_, err = suite.service.CreateBooking(ctx, req, "user-1")
	suite.ErrorIs(err, apperrors.ErrInvalidInterval)

	suite.bookingRepo.AssertNotCalled(suite.T(), "ReserveFirstAvailable", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestGetBooking_Access() {
	ctx := context.Background()
	suite.bookingRepo.On("FindBookingByID", ctx, "booking-1").Return(storedBooking("owner"), nil)

	details, err := suite.service.GetBooking(ctx, "booking-1", "owner", false)
	suite.Require().NoError(err)
	suite.Equal("booking-1", details.Booking.BookingID)
	// recomputed as of the booking date: 3 peak nights x 200, 82 days ahead
	suite.True(mustDecimal("600.00").Equal(details.Quote.Total))
	suite.Require().NotNil(details.Quote.Discounted)
	suite.True(mustDecimal("480.00").Equal(*details.Quote.Discounted))

	_, err = suite.service.GetBooking(ctx, "booking-1", "someone-else", false)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.service.GetBooking(ctx, "booking-1", "admin", true)
	suite.NoError(err)
}

func (suite *BookingServiceTestSuite) TestGetBooking_PastBookingRejected() {
	ctx := context.Background()
	suite.now = time.Date(2024, time.August, 13, 8, 0, 0, 0, time.UTC)
	suite.bookingRepo.On("FindBookingByID", ctx, "booking-1").Return(storedBooking("owner"), nil)

	_, err := suite.service.GetBooking(ctx, "booking-1", "owner", false)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// the last day of a stay still counts as current
	suite.now = time.Date(2024, time.August, 12, 8, 0, 0, 0, time.UTC)
	_, err = suite.service.GetBooking(ctx, "booking-1", "owner", false)
	suite.NoError(err)
}

func (suite *BookingServiceTestSuite) TestGetBooking_NotFound() {
	ctx := context.Background()
	suite.bookingRepo.On("FindBookingByID", ctx, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.GetBooking(ctx, "missing", "owner", true)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BookingServiceTestSuite) TestPreviewCancellation_FeeTiers() {
	ctx := context.Background()
	suite.bookingRepo.On("FindBookingByID", ctx, "booking-1").Return(storedBooking("owner"), nil)

	tests := []struct {
		today    time.Time
		lead     int
		expected string
	}{
		{day(2024, time.July, 20), 21, "480.00"},
		{day(2024, time.June, 25), 46, "240.00"},
		{day(2024, time.June, 1), 70, "0"},
	}
	for _, tt := range tests {
		suite.now = tt.today
		preview, err := suite.service.PreviewCancellation(ctx, "booking-1", "owner")
		suite.Require().NoError(err)
		suite.Equal(tt.lead, preview.Fee.LeadDays)
		suite.True(mustDecimal(tt.expected).Equal(preview.Fee.Fee), "expected %s got %s", tt.expected, preview.Fee.Fee)
		suite.Equal("GBP", preview.Fee.CurrencyCode)
	}
}

func (suite *BookingServiceTestSuite) TestPreviewCancellation_OnlyOwner() {
	ctx := context.Background()
	suite.bookingRepo.On("FindBookingByID", ctx, "booking-1").Return(storedBooking("owner"), nil)

	_, err := suite.service.PreviewCancellation(ctx, "booking-1", "admin-user")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *BookingServiceTestSuite) TestCancelBooking_Success() {
	ctx := context.Background()
	suite.now = time.Date(2024, time.July, 20, 10, 0, 0, 0, time.UTC)
	suite.bookingRepo.On("FindBookingByID", ctx, "booking-1").Return(storedBooking("owner"), nil).Once()
	suite.bookingRepo.On("DeleteBooking", ctx, "booking-1", suite.now).Return(nil).Once()
	suite.publisher.On("PublishBookingEvent", ctx, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == domain.BookingCancelled && e.BookingID == "booking-1"
	})).Return(nil).Once()

	preview, err := suite.service.CancelBooking(ctx, "booking-1", "owner")

	suite.Require().NoError(err)
	suite.True(mustDecimal("480.00").Equal(preview.Fee.Fee))
	suite.bookingRepo.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCancelBooking_DeleteFails() {
	ctx := context.Background()
	suite.bookingRepo.On("FindBookingByID", ctx, "booking-1").Return(storedBooking("owner"), nil).Once()
	suite.bookingRepo.On("DeleteBooking", ctx, "booking-1", mock.Anything).Return(errors.New("db down")).Once()

	_, err := suite.service.CancelBooking(ctx, "booking-1", "owner")

	suite.Error(err)
	suite.publisher.AssertNotCalled(suite.T(), "PublishBookingEvent", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestListUserBookings() {
	ctx := context.Background()
	first := storedBooking("owner")
	second := storedBooking("owner")
	second.BookingID = "booking-2"
	second.CurrencyCode = "USD"
	suite.bookingRepo.On("FindBookingsByUser", ctx, "owner", day(2024, time.May, 20), dto.DefaultBookingPageSize+1, (*pagination.Cursor)(nil)).
		Return([]domain.Booking{*second, *first}, nil).Once()

	page, err := suite.service.ListUserBookings(ctx, "owner", dto.ListBookingsParams{})

	suite.Require().NoError(err)
	suite.Nil(page.NextToken)
	suite.Require().Len(page.Bookings, 2)
	suite.Equal("booking-2", page.Bookings[0].Booking.BookingID)
	suite.True(mustDecimal("960.00").Equal(page.Bookings[0].Quote.Total))
	suite.Equal("USD", page.Bookings[0].Currency.CurrencyCode)
	suite.Equal("booking-1", page.Bookings[1].Booking.BookingID)
}

func (suite *BookingServiceTestSuite) TestListUserBookings_Pages() {
	ctx := context.Background()
	first := storedBooking("owner")
	second := storedBooking("owner")
	second.BookingID = "booking-2"
	second.CreatedAt = first.CreatedAt.Add(-time.Hour)
	third := storedBooking("owner")
	third.BookingID = "booking-3"
	third.CreatedAt = first.CreatedAt.Add(-2 * time.Hour)

	suite.bookingRepo.On("FindBookingsByUser", ctx, "owner", day(2024, time.May, 20), 3, (*pagination.Cursor)(nil)).
		Return([]domain.Booking{*first, *second, *third}, nil).Once()

	page, err := suite.service.ListUserBookings(ctx, "owner", dto.ListBookingsParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Require().Len(page.Bookings, 2)
	suite.Require().NotNil(page.NextToken)

	cursor, err := pagination.DecodeCursor(*page.NextToken)
	suite.Require().NoError(err)
	suite.Equal("booking-2", cursor.ID)
	suite.True(second.CreatedAt.Equal(cursor.CreatedAt))

	suite.bookingRepo.On("FindBookingsByUser", ctx, "owner", day(2024, time.May, 20), 3, mock.MatchedBy(func(c *pagination.Cursor) bool {
		return c != nil && c.ID == "booking-2"
	})).Return([]domain.Booking{*third}, nil).Once()

	page, err = suite.service.ListUserBookings(ctx, "owner", dto.ListBookingsParams{Limit: 2, NextToken: *page.NextToken})

	suite.Require().NoError(err)
	suite.Nil(page.NextToken)
	suite.Require().Len(page.Bookings, 1)
	suite.Equal("booking-3", page.Bookings[0].Booking.BookingID)
}

func (suite *BookingServiceTestSuite) TestListUserBookings_OnlyBookingsNotYetEnded() {
	ctx := context.Background()
	// 23:30 on 12 August UTC, already 13 August in CEST
	suite.now = time.Date(2024, time.August, 13, 1, 30, 0, 0, time.FixedZone("CEST", 2*60*60))
	suite.bookingRepo.On("FindBookingsByUser", ctx, "owner", day(2024, time.August, 12), dto.DefaultBookingPageSize+1, (*pagination.Cursor)(nil)).
		Return([]domain.Booking{*storedBooking("owner")}, nil).Once()

	page, err := suite.service.ListUserBookings(ctx, "owner", dto.ListBookingsParams{})

	suite.Require().NoError(err)
	suite.Require().Len(page.Bookings, 1, "a stay ending today is still listed")
	suite.bookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestListUserBookings_BadToken() {
	_, err := suite.service.ListUserBookings(context.Background(), "owner", dto.ListBookingsParams{NextToken: "%%%"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.bookingRepo.AssertNotCalled(suite.T(), "FindBookingsByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}
