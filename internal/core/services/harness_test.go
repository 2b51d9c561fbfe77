package services_test

import (
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/core/pricing"
	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// referenceSuite wires a real reference service over mocked repositories
// and a controllable clock. Suites for the services built on top embed it.
type referenceSuite struct {
	suite.Suite
	now           time.Time
	currencyRepo  *MockCurrencyRepository
	locationRepo  *MockLocationRepository
	inventoryRepo *MockInventoryRepository
	reference     portssvc.ReferenceSvcFacade
	calculator    *pricing.Calculator
	rules         services.StayRules
}

func (s *referenceSuite) setupReference() {
	s.now = time.Date(2024, time.May, 20, 9, 30, 0, 0, time.UTC)
	s.currencyRepo = new(MockCurrencyRepository)
	s.locationRepo = new(MockLocationRepository)
	s.inventoryRepo = new(MockInventoryRepository)

	calculator, err := pricing.NewCalculator(pricing.DefaultPolicy())
	s.Require().NoError(err)
	s.calculator = calculator
	s.rules = services.StayRules{SearchWindowDays: 90, DefaultCurrency: "GBP"}

	gbpCopy, usdCopy := gbp, usd
	s.currencyRepo.On("FindCurrencyByCode", mock.Anything, "GBP").Return(&gbpCopy, nil).Maybe()
	s.currencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&usdCopy, nil).Maybe()
	s.currencyRepo.On("FindCurrencyByCode", mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound).Maybe()

	aberdeenCopy, londonCopy := aberdeen, london
	s.locationRepo.On("FindLocationByID", mock.Anything, aberdeen.LocationID).Return(&aberdeenCopy, nil).Maybe()
	s.locationRepo.On("FindLocationByID", mock.Anything, london.LocationID).Return(&londonCopy, nil).Maybe()
	s.locationRepo.On("FindLocationByID", mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound).Maybe()
	s.locationRepo.On("ListLocations", mock.Anything).Return([]domain.Location{aberdeen, london}, nil).Maybe()

	for _, rt := range allRoomTypes() {
		rtCopy := rt
		s.inventoryRepo.On("FindRoomTypeByID", mock.Anything, rt.RoomTypeID).Return(&rtCopy, nil).Maybe()
	}
	s.inventoryRepo.On("FindRoomTypeByID", mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound).Maybe()
	s.inventoryRepo.On("ListRoomTypes", mock.Anything).Return(allRoomTypes(), nil).Maybe()

	s.reference = services.NewReferenceService(s.currencyRepo, s.locationRepo, s.inventoryRepo, s.clockOption())
}

func (s *referenceSuite) clockOption() services.ServiceOption {
	return services.WithClock(func() time.Time { return s.now })
}
