package pricing

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places of caller-facing amounts.
const MoneyPlaces = 2

// QuoteInput is everything needed to price a stay.
type QuoteInput struct {
	Location domain.Location
	RoomType domain.RoomType
	Stay     calendar.Interval
	Guests   int
	Currency domain.Currency // target currency
	BookedOn time.Time       // discount anchor, taken as a UTC date
}

// SegmentPrice is the priced portion of a stay within one calendar month.
type SegmentPrice struct {
	calendar.Segment
	Peak   bool            `json:"peak"`
	Rate   decimal.Decimal `json:"rate"`   // nightly rate in the location currency
	Amount decimal.Decimal `json:"amount"` // rate * multiplier * days, unrounded
}

// Quote is the result of pricing a stay. Total and Discounted are rounded to MoneyPlaces.
type Quote struct {
	Total         decimal.Decimal  `json:"total"`
	Discounted    *decimal.Decimal `json:"discounted,omitempty"`
	CurrencyCode  string           `json:"currencyCode"`
	Multiplier    decimal.Decimal  `json:"multiplier"`
	DaysInAdvance int              `json:"daysInAdvance"`
	Segments      []SegmentPrice   `json:"segments"`
}

// Payable is the amount actually due: the discounted price when one applies.
func (q Quote) Payable() decimal.Decimal {
	if q.Discounted != nil {
		return *q.Discounted
	}
	return q.Total
}

// Calculator prices stays according to a Policy. It holds no mutable state
// and is safe for concurrent use.
type Calculator struct {
	policy Policy
}

// NewCalculator validates the policy and returns a calculator using it.
func NewCalculator(policy Policy) (*Calculator, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pricing policy: %w", err)
	}
	return &Calculator{policy: policy.sorted()}, nil
}

// Policy returns the policy the calculator was built with.
func (c *Calculator) Policy() Policy {
	return c.policy
}

// ValidateGuests checks a guest count against the global maximum and the room type.
func (c *Calculator) ValidateGuests(guests int, roomType *domain.RoomType) error {
	if guests < 1 || guests > c.policy.MaxGuests {
		return fmt.Errorf("guests must be between 1 and %d, got %d: %w", c.policy.MaxGuests, guests, apperrors.ErrInvalidGuestCount)
	}
	if roomType != nil && guests > roomType.MaxOccupants {
		return fmt.Errorf("room type %s sleeps at most %d, got %d guests: %w",
			roomType.Code, roomType.MaxOccupants, guests, apperrors.ErrInvalidGuestCount)
	}
	return nil
}

// Compute prices a stay: it splits the stay by month, picks the peak or
// off-peak rate per month, applies the room multiplier, converts into the
// target currency and finally applies at most one early booking discount.
func (c *Calculator) Compute(in QuoteInput) (Quote, error) {
	if err := c.ValidateGuests(in.Guests, &in.RoomType); err != nil {
		return Quote{}, err
	}
	if in.Currency.CurrencyCode == "" {
		return Quote{}, fmt.Errorf("target currency is required: %w", apperrors.ErrValidation)
	}
	if in.Location.PeakPrice.IsNegative() || in.Location.OffPeakPrice.IsNegative() {
		return Quote{}, fmt.Errorf("location %d has a negative rate: %w", in.Location.LocationID, apperrors.ErrValidation)
	}

	segments, err := in.Stay.Segments()
	if err != nil {
		return Quote{}, err
	}
	multiplier, err := c.policy.Multiplier(in.RoomType.Code, in.Guests)
	if err != nil {
		return Quote{}, err
	}

	total := decimal.Zero
	priced := make([]SegmentPrice, 0, len(segments))
	for _, s := range segments {
		peak := c.policy.IsPeak(s.Month)
		rate := in.Location.OffPeakPrice
		if peak {
			rate = in.Location.PeakPrice
		}
		amount := rate.Mul(multiplier).Mul(decimal.NewFromInt(int64(s.Days)))
		total = total.Add(amount)
		priced = append(priced, SegmentPrice{Segment: s, Peak: peak, Rate: rate, Amount: amount})
	}

	// Conversion always multiplies by the target's rate against the base
	// currency, so it is only exact for locations priced in the base currency.
	if !strings.EqualFold(in.Currency.CurrencyCode, in.Location.CurrencyCode) {
		total = total.Mul(in.Currency.ConversionRate)
	}

	bookedOn := in.BookedOn
	if bookedOn.IsZero() {
		bookedOn = time.Now()
	}
	daysInAdvance := calendar.DaysBetween(calendar.DayOf(bookedOn), in.Stay.Start)

	q := Quote{
		Total:         total.Round(MoneyPlaces),
		CurrencyCode:  strings.ToUpper(in.Currency.CurrencyCode),
		Multiplier:    multiplier,
		DaysInAdvance: daysInAdvance,
		Segments:      priced,
	}
	if factor, ok := c.policy.DiscountFactor(daysInAdvance); ok {
		discounted := total.Mul(factor).Round(MoneyPlaces)
		q.Discounted = &discounted
	}
	return q, nil
}
