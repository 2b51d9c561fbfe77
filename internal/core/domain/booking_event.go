package domain

import "time"

// BookingEventType names a booking lifecycle event.
type BookingEventType string

const (
	BookingCreated   BookingEventType = "booking.created"
	BookingCancelled BookingEventType = "booking.cancelled"
)

// BookingEvent is published when a booking is created or cancelled.
type BookingEvent struct {
	Type         BookingEventType `json:"type"`
	BookingID    string           `json:"bookingID"`
	UserID       string           `json:"userID"`
	RoomID       int64            `json:"roomID"`
	LocationID   int64            `json:"locationID"`
	Start        string           `json:"start"`
	End          string           `json:"end"`
	Guests       int              `json:"guests"`
	CurrencyCode string           `json:"currencyCode"`
	OccurredAt   time.Time        `json:"occurredAt"`
}

// NewBookingEvent builds an event from a booking.
func NewBookingEvent(t BookingEventType, b Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:         t,
		BookingID:    b.BookingID,
		UserID:       b.UserID,
		RoomID:       b.RoomID,
		LocationID:   b.LocationID,
		Start:        b.BookingStart.Format(time.DateOnly),
		End:          b.BookingEnd.Format(time.DateOnly),
		Guests:       b.Guests,
		CurrencyCode: b.CurrencyCode,
		OccurredAt:   at.UTC(),
	}
}
