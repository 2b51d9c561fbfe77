package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/core/pricing"
	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/handlers"
	"github.com/SscSPs/hotel_booking_app/internal/middleware"
	"github.com/SscSPs/hotel_booking_app/internal/platform/config"
	"github.com/SscSPs/hotel_booking_app/internal/utils"
	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// handlerSuite wires every route against mocked services.
type handlerSuite struct {
	suite.Suite
	router    *gin.Engine
	reference *MockReferenceService
	search    *MockSearchService
	booking   *MockBookingService
	reporting *MockReportingService
	auth      *MockAuthService
	admin     *MockAdminService
}

func (suite *handlerSuite) SetupTest() {
	suite.setupRouter(&config.Config{
		JWTSecret:       testJWTSecret,
		IsProduction:    true, // no swagger
		DefaultCurrency: "GBP",
	}, nil)
}

// setupRouter builds a fresh router and mocks. cache may be nil.
func (suite *handlerSuite) setupRouter(cfg *config.Config, cache middleware.CacheStore) {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.reference = new(MockReferenceService)
	suite.search = new(MockSearchService)
	suite.booking = new(MockBookingService)
	suite.reporting = new(MockReportingService)
	suite.auth = new(MockAuthService)
	suite.admin = new(MockAdminService)

	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Reference: suite.reference,
		Search:    suite.search,
		Booking:   suite.booking,
		Reporting: suite.reporting,
		Auth:      suite.auth,
		Admin:     suite.admin,
	}, cache)
}

// token creates a signed access token for the given user.
func (suite *handlerSuite) token(userID string, admin bool) string {
	token, err := utils.GenerateJWT(userID, admin, testJWTSecret, time.Hour, "hotel-booking-test", time.Now())
	suite.Require().NoError(err)
	return token
}

type requestOption func(*http.Request)

func withToken(token string) requestOption {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func withCookie(name, value string) requestOption {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: name, Value: value}) }
}

func (suite *handlerSuite) do(method, target string, body any, opts ...requestOption) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		bs, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(bs)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *handlerSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

var (
	london = domain.Location{
		LocationID:   1,
		Name:         "London",
		CurrencyCode: "GBP",
		PeakPrice:    decimal.NewFromInt(300),
		OffPeakPrice: decimal.NewFromInt(200),
	}
	doubleRoom = domain.RoomType{RoomTypeID: 2, Code: domain.RoomTypeDouble, Name: "Double", MaxOccupants: 2}
	gbp        = domain.Currency{CurrencyCode: "GBP", Name: "British Pound", Symbol: "£", ConversionRate: decimal.NewFromInt(1)}
)

func sampleQuote() pricing.Quote {
	discounted := decimal.RequireFromString("576.00")
	return pricing.Quote{
		Total:         decimal.RequireFromString("720.00"),
		Discounted:    &discounted,
		CurrencyCode:  "GBP",
		Multiplier:    decimal.RequireFromString("1.2"),
		DaysInAdvance: 82,
		Segments: []pricing.SegmentPrice{{
			Segment: calendar.Segment{Year: 2024, Month: time.August, Days: 2},
			Peak:    true,
			Rate:    decimal.NewFromInt(300),
			Amount:  decimal.NewFromInt(720),
		}},
	}
}

func sampleDetails(bookingID, userID string) *portssvc.BookingDetails {
	return &portssvc.BookingDetails{
		Booking: domain.Booking{
			BookingID:    bookingID,
			RoomID:       102,
			LocationID:   london.LocationID,
			RoomTypeID:   doubleRoom.RoomTypeID,
			UserID:       userID,
			Guests:       1,
			BookingStart: calendar.Date(2024, time.August, 10),
			BookingEnd:   calendar.Date(2024, time.August, 11),
			CurrencyCode: "GBP",
			Contact:      domain.ContactDetails{FullName: "Ada Lovelace", Email: "ada@example.com"},
			Card:         domain.CardDetails{CardType: "visa", Last4: "1111"},
		},
		Location: london,
		RoomType: doubleRoom,
		Currency: gbp,
		Quote:    sampleQuote(),
	}
}
