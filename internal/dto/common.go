package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
)

// DateLayout is the wire format of every date in requests and responses.
const DateLayout = time.DateOnly

// StayRequest holds the fields shared by search, quote and booking requests.
type StayRequest struct {
	Start        string `form:"start" json:"start" binding:"required,datetime=2006-01-02"`
	End          string `form:"end" json:"end" binding:"required,datetime=2006-01-02"`
	Guests       int    `form:"guests" json:"guests" binding:"required,min=1"`
	CurrencyCode string `form:"currency" json:"currencyCode" binding:"omitempty,currencycode"`
}

// Interval parses the stay dates.
func (r StayRequest) Interval() (calendar.Interval, error) {
	return ParseInterval(r.Start, r.End)
}

// ParseInterval parses two dates in DateLayout into an inclusive interval.
func ParseInterval(start, end string) (calendar.Interval, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return calendar.Interval{}, fmt.Errorf("start date %q: %w", start, apperrors.ErrInvalidInterval)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return calendar.Interval{}, fmt.Errorf("end date %q: %w", end, apperrors.ErrInvalidInterval)
	}
	return calendar.NewInterval(s, e)
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HomeResponse describes the API root.
type HomeResponse struct {
	Message         string `json:"message"`
	Version         string `json:"version"`
	DefaultCurrency string `json:"defaultCurrency"`
	CurrentCurrency string `json:"currentCurrency,omitempty"`
}
