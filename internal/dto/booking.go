package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ContactRequest are the guest's contact details.
type ContactRequest struct {
	FullName     string `json:"fullName" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email"`
	AddressLine1 string `json:"addressLine1" binding:"required,max=200"`
	AddressLine2 string `json:"addressLine2" binding:"max=200"`
	Postcode     string `json:"postcode" binding:"required,min=1,max=15"`
	Country      string `json:"country" binding:"required,iso3166_1_alpha2"`
}

// CardRequest holds card details. Only the last four digits are kept.
type CardRequest struct {
	CardType       string `json:"cardType" binding:"required,oneof=visa mastercard amex"`
	CardholderName string `json:"cardholderName" binding:"required,max=100"`
	CardNumber     string `json:"cardNumber" binding:"required,credit_card"`
	ExpiryMonth    int    `json:"expiryMonth" binding:"required,min=1,max=12"`
	ExpiryYear     int    `json:"expiryYear" binding:"required,min=2000"`
	CVV            string `json:"cvv" binding:"required,numeric,min=3,max=4"`
}

// CreateBookingRequest defines the data needed to create a new booking.
type CreateBookingRequest struct {
	LocationID int64 `json:"locationID" binding:"required,min=1"`
	RoomTypeID int64 `json:"roomTypeID" binding:"required,min=1"`
	StayRequest
	Contact ContactRequest `json:"contact" binding:"required"`
	Card    CardRequest    `json:"card" binding:"required"`
}

// ToContactDetails copies the contact fields onto the domain type.
func (r ContactRequest) ToContactDetails() domain.ContactDetails {
	return domain.ContactDetails{
		FullName:     r.FullName,
		Email:        r.Email,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		Postcode:     r.Postcode,
		Country:      r.Country,
	}
}

// ToCardDetails keeps the card metadata, dropping the full number and CVV.
// Spaces and other separators in the number are ignored.
func (r CardRequest) ToCardDetails() domain.CardDetails {
	last4 := strings.Map(func(c rune) rune {
		if c < '0' || c > '9' {
			return -1
		}
		return c
	}, r.CardNumber)
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	return domain.CardDetails{
		CardType:       r.CardType,
		CardholderName: r.CardholderName,
		Last4:          last4,
		ExpiryMonth:    r.ExpiryMonth,
		ExpiryYear:     r.ExpiryYear,
	}
}

// BookingResponse defines the data returned for a booking.
type BookingResponse struct {
	BookingID string                `json:"bookingID"`
	RoomID    int64                 `json:"roomID"`
	Location  LocationResponse      `json:"location"`
	RoomType  RoomTypeResponse      `json:"roomType"`
	Guests    int                   `json:"guests"`
	Start     string                `json:"start"`
	End       string                `json:"end"`
	Contact   domain.ContactDetails `json:"contact"`
	Card      domain.CardDetails    `json:"card"`
	Quote     QuoteResponse         `json:"quote"`
	CreatedAt time.Time             `json:"createdAt"`
}

// DefaultBookingPageSize is used when a listing names no limit.
const DefaultBookingPageSize = 20

// ListBookingsParams pages through the caller's bookings.
type ListBookingsParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListBookingsResponse is one page of bookings.
type ListBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// CancellationResponse describes the fee for cancelling a booking.
type CancellationResponse struct {
	BookingID    string          `json:"bookingID"`
	LeadDays     int             `json:"leadDays"`
	FeeFraction  decimal.Decimal `json:"feeFraction"`
	Fee          decimal.Decimal `json:"fee"`
	CurrencyCode string          `json:"currencyCode"`
	Cancelled    bool            `json:"cancelled"`
}
