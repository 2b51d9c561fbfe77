package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/core/pricing"
	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
)

// StayRules are the request limits shared by search and booking.
type StayRules struct {
	// SearchWindowDays is how far ahead of today a stay may end.
	SearchWindowDays int
	// DefaultCurrency is used when a request names no currency.
	DefaultCurrency string
}

// validateStay parses and checks the dates and guest count of a request
// before any lookup or computation happens.
func validateStay(req dto.StayRequest, rules StayRules, calc *pricing.Calculator, today time.Time) (calendar.Interval, error) {
	stay, err := req.Interval()
	if err != nil {
		return calendar.Interval{}, err
	}
	if stay.Start.Before(today) {
		return calendar.Interval{}, fmt.Errorf("stay cannot start before %s: %w", today.Format(dto.DateLayout), apperrors.ErrInvalidInterval)
	}
	if rules.SearchWindowDays > 0 {
		last := today.AddDate(0, 0, rules.SearchWindowDays)
		if stay.End.After(last) {
			return calendar.Interval{}, fmt.Errorf("stay must end by %s: %w", last.Format(dto.DateLayout), apperrors.ErrInvalidInterval)
		}
	}
	if err := calc.ValidateGuests(req.Guests, nil); err != nil {
		return calendar.Interval{}, err
	}
	return stay, nil
}

// resolveCurrency looks up the requested currency, or the default when none is given.
// An unknown code is never replaced by the default.
func resolveCurrency(ctx context.Context, ref portssvc.CurrencyReaderSvc, code string, rules StayRules) (*domain.Currency, error) {
	if code == "" {
		code = rules.DefaultCurrency
	}
	currency, err := ref.GetCurrencyByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return currency, nil
}
