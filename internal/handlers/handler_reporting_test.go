package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingHandlerTestSuite struct {
	handlerSuite
	adminToken string
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	suite.handlerSuite.SetupTest()
	suite.adminToken = suite.token("admin-1", true)
}

func (suite *ReportingHandlerTestSuite) TestReports_RequireAdmin() {
	userToken := suite.token("user-1", false)
	for _, target := range []string{
		"/api/v1/admin/reports/top-locations",
		"/api/v1/admin/reports/monthly-bookings?locationID=1&month=2024-08",
		"/api/v1/admin/reports/compare?locationID=1&month=2024-08",
		"/api/v1/admin/reports/rooms-available?locationID=1&start=2024-08-10&end=2024-08-12",
	} {
		w := suite.do(http.MethodGet, target, nil, withToken(userToken))
		suite.Equal(http.StatusForbidden, w.Code, target)

		w = suite.do(http.MethodGet, target, nil)
		suite.Equal(http.StatusUnauthorized, w.Code, target)
	}
	suite.reporting.AssertNotCalled(suite.T(), "TopLocations", mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestTopLocations_DefaultLimit() {
	rows := []domain.LocationBookingCount{
		{LocationID: 1, LocationName: "London", Bookings: 12},
		{LocationID: 7, LocationName: "Edinburgh", Bookings: 9},
	}
	suite.reporting.On("TopLocations", mock.Anything, 5).Return(rows, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/reports/top-locations", nil, withToken(suite.adminToken))

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp []domain.LocationBookingCount
	suite.decode(w, &resp)
	suite.Equal(rows, resp)
	suite.reporting.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestTopLocations_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/admin/reports/top-locations?limit=500", nil, withToken(suite.adminToken))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestMonthlyBookings() {
	report := &domain.MonthlyBookingReport{
		LocationID: 1,
		Month:      calendar.Date(2024, time.August, 1),
		Bookings: []domain.Booking{
			{BookingID: "b1", RoomID: 101, RoomTypeID: 1, Guests: 1,
				BookingStart: calendar.Date(2024, time.July, 30), BookingEnd: calendar.Date(2024, time.August, 2)},
			{BookingID: "b3", RoomID: 104, RoomTypeID: 2, Guests: 2,
				BookingStart: calendar.Date(2024, time.August, 20), BookingEnd: calendar.Date(2024, time.September, 3)},
		},
	}
	suite.reporting.On("MonthlyBookings", mock.Anything, dto.MonthlyBookingsRequest{LocationID: 1, Month: "2024-08"}).
		Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/reports/monthly-bookings?locationID=1&month=2024-08", nil, withToken(suite.adminToken))

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.MonthlyBookingsResponse
	suite.decode(w, &resp)
	suite.Equal("2024-08", resp.Month)
	suite.Equal(2, resp.Count)
	suite.Equal("2024-07-30", resp.Bookings[0].Start)
	suite.Equal("2024-09-03", resp.Bookings[1].End)
}

func (suite *ReportingHandlerTestSuite) TestMonthlyBookings_InvalidMonth() {
	w := suite.do(http.MethodGet, "/api/v1/admin/reports/monthly-bookings?locationID=1&month=2024-13", nil, withToken(suite.adminToken))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.reporting.AssertNotCalled(suite.T(), "MonthlyBookings", mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestCompareBookings_MultipleLocations() {
	rows := []domain.LocationComparison{
		{LocationID: 1, LocationName: "London", Total: 3, ByRoomType: []domain.RoomTypeBookingCount{
			{RoomTypeID: 2, Code: domain.RoomTypeDouble, Bookings: 2},
			{RoomTypeID: 3, Code: domain.RoomTypeFamily, Bookings: 1},
		}},
		{LocationID: 2, LocationName: "Aberdeen", Total: 0},
	}
	suite.reporting.On("CompareBookings", mock.Anything, mock.MatchedBy(func(r dto.CompareBookingsRequest) bool {
		return len(r.LocationIDs) == 2 && r.LocationIDs[0] == 1 && r.LocationIDs[1] == 2 && r.Month == "2024-08"
	})).Return(rows, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/reports/compare?locationID=1&locationID=2&month=2024-08", nil, withToken(suite.adminToken))

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp []domain.LocationComparison
	suite.decode(w, &resp)
	suite.Require().Len(resp, 2)
	suite.Equal(3, resp[0].Total)
	suite.reporting.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestCompareBookings_UnknownLocation() {
	suite.reporting.On("CompareBookings", mock.Anything, mock.Anything).Return(nil, apperrors.NewNotFoundError("location 99 not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/reports/compare?locationID=99&month=2024-08", nil, withToken(suite.adminToken))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestRoomsAvailable() {
	suite.reporting.On("RoomsAvailable", mock.Anything, mock.MatchedBy(func(r dto.RoomsAvailableRequest) bool {
		return r.LocationID == 1 && len(r.RoomTypeIDs) == 2
	})).Return(4, nil).Once()
	suite.reporting.On("RoomsAvailable", mock.Anything, mock.MatchedBy(func(r dto.RoomsAvailableRequest) bool {
		return r.LocationID == 1 && r.RoomTypeIDs == nil
	})).Return(9, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/reports/rooms-available?locationID=1&start=2024-08-10&end=2024-08-12&roomTypeID=1&roomTypeID=2",
		nil, withToken(suite.adminToken))
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.RoomsAvailableResponse
	suite.decode(w, &resp)
	suite.Equal(4, resp.Available)

	w = suite.do(http.MethodGet, "/api/v1/admin/reports/rooms-available?locationID=1&start=2024-08-10&end=2024-08-12",
		nil, withToken(suite.adminToken))
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.decode(w, &resp)
	suite.Equal(9, resp.Available)
	suite.reporting.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestRoomsAvailable_ReversedInterval() {
	suite.reporting.On("RoomsAvailable", mock.Anything, mock.Anything).Return(0, apperrors.ErrInvalidInterval).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/reports/rooms-available?locationID=1&start=2024-08-12&end=2024-08-10",
		nil, withToken(suite.adminToken))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
