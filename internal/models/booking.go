package models

import "time"

// Booking is a row of the bookings table. Contact and card details are
// flattened into columns; optional ones are nullable.
type Booking struct {
	BookingID    string    `db:"booking_id"`
	RoomID       int64     `db:"room_id"`
	LocationID   int64     `db:"location_id"`
	RoomTypeID   int64     `db:"room_type_id"`
	UserID       string    `db:"user_id"`
	Guests       int       `db:"guests"`
	BookingStart time.Time `db:"booking_start"`
	BookingEnd   time.Time `db:"booking_end"`
	CurrencyCode string    `db:"currency_code"`

	FullName     string  `db:"full_name"`
	Email        string  `db:"email"`
	AddressLine1 string  `db:"address_line1"`
	AddressLine2 *string `db:"address_line2"`
	Postcode     string  `db:"postcode"`
	Country      string  `db:"country"`

	CardType       string `db:"card_type"`
	CardholderName string `db:"cardholder_name"`
	CardLast4      string `db:"card_last4"`
	CardExpMonth   int    `db:"card_exp_month"`
	CardExpYear    int    `db:"card_exp_year"`

	AuditFields
}
