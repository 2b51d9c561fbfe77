package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBookingMapping_OptionalAddressLine(t *testing.T) {
	created := time.Date(2024, time.May, 20, 9, 30, 0, 0, time.UTC)
	booking := domain.Booking{
		BookingID:    "b1",
		RoomID:       101,
		LocationID:   8,
		RoomTypeID:   1,
		UserID:       "u1",
		Guests:       1,
		BookingStart: time.Date(2024, time.August, 10, 15, 0, 0, 0, time.UTC),
		BookingEnd:   time.Date(2024, time.August, 12, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "GBP",
		Contact:      domain.ContactDetails{FullName: "Ada", Email: "ada@example.com", AddressLine1: "1 Square", Postcode: "SW1", Country: "GB"},
		Card:         domain.CardDetails{CardType: "visa", CardholderName: "Ada", Last4: "1111", ExpiryMonth: 12, ExpiryYear: 2027},
		AuditFields:  domain.AuditFields{CreatedAt: created, LastUpdatedAt: created},
	}

	m := ToModelBooking(booking)
	assert.Nil(t, m.AddressLine2)
	assert.Equal(t, time.Date(2024, time.August, 10, 0, 0, 0, 0, time.UTC), m.BookingStart)
	assert.Equal(t, "1111", m.CardLast4)

	back := ToDomainBooking(m)
	assert.Equal(t, "", back.Contact.AddressLine2)
	assert.Equal(t, booking.Card, back.Card)
	assert.Equal(t, booking.AuditFields, back.AuditFields)

	booking.Contact.AddressLine2 = "Flat 2"
	m = ToModelBooking(booking)
	if assert.NotNil(t, m.AddressLine2) {
		assert.Equal(t, "Flat 2", *m.AddressLine2)
	}
	assert.Equal(t, "Flat 2", ToDomainBooking(m).Contact.AddressLine2)
}

func TestAuditFieldsMapping_NormalizesToUTC(t *testing.T) {
	paris := time.FixedZone("CEST", 2*60*60)
	stored := time.Date(2024, time.May, 20, 11, 30, 0, 0, paris)

	d := ToDomainAuditFields(ToModelAuditFields(domain.AuditFields{CreatedAt: stored, LastUpdatedAt: stored}))

	assert.Equal(t, time.UTC, d.CreatedAt.Location())
	assert.Equal(t, 9, d.CreatedAt.Hour())
	assert.True(t, stored.Equal(d.LastUpdatedAt))
}
