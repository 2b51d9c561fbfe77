package mapping

import (
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/models"
	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
)

// ToModelBooking converts a domain Booking to a model Booking
func ToModelBooking(d domain.Booking) models.Booking {
	m := models.Booking{
		BookingID:      d.BookingID,
		RoomID:         d.RoomID,
		LocationID:     d.LocationID,
		RoomTypeID:     d.RoomTypeID,
		UserID:         d.UserID,
		Guests:         d.Guests,
		BookingStart:   calendar.Normalize(d.BookingStart),
		BookingEnd:     calendar.Normalize(d.BookingEnd),
		CurrencyCode:   d.CurrencyCode,
		FullName:       d.Contact.FullName,
		Email:          d.Contact.Email,
		AddressLine1:   d.Contact.AddressLine1,
		Postcode:       d.Contact.Postcode,
		Country:        d.Contact.Country,
		CardType:       d.Card.CardType,
		CardholderName: d.Card.CardholderName,
		CardLast4:      d.Card.Last4,
		CardExpMonth:   d.Card.ExpiryMonth,
		CardExpYear:    d.Card.ExpiryYear,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.Contact.AddressLine2 != "" {
		line2 := d.Contact.AddressLine2
		m.AddressLine2 = &line2
	}
	return m
}

// ToDomainBooking converts a model Booking to a domain Booking
func ToDomainBooking(m models.Booking) domain.Booking {
	d := domain.Booking{
		BookingID:    m.BookingID,
		RoomID:       m.RoomID,
		LocationID:   m.LocationID,
		RoomTypeID:   m.RoomTypeID,
		UserID:       m.UserID,
		Guests:       m.Guests,
		BookingStart: calendar.Normalize(m.BookingStart),
		BookingEnd:   calendar.Normalize(m.BookingEnd),
		CurrencyCode: m.CurrencyCode,
		Contact: domain.ContactDetails{
			FullName:     m.FullName,
			Email:        m.Email,
			AddressLine1: m.AddressLine1,
			Postcode:     m.Postcode,
			Country:      m.Country,
		},
		Card: domain.CardDetails{
			CardType:       m.CardType,
			CardholderName: m.CardholderName,
			Last4:          m.CardLast4,
			ExpiryMonth:    m.CardExpMonth,
			ExpiryYear:     m.CardExpYear,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.AddressLine2 != nil {
		d.Contact.AddressLine2 = *m.AddressLine2
	}
	return d
}

// ToDomainBookingSlice converts a slice of model Bookings to a slice of domain Bookings
func ToDomainBookingSlice(ms []models.Booking) []domain.Booking {
	ds := make([]domain.Booking, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBooking(m)
	}
	return ds
}
