package pricing

import (
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
	"github.com/shopspring/decimal"
)

// CancellationQuote is the fee for cancelling a booking on a given day.
type CancellationQuote struct {
	LeadDays     int             `json:"leadDays"`
	FeeFraction  decimal.Decimal `json:"feeFraction"`
	Fee          decimal.Decimal `json:"fee"`
	CurrencyCode string          `json:"currencyCode"`
}

// CancellationFee charges a share of the payable price depending on how many
// days before the stay the booking is cancelled.
func (c *Calculator) CancellationFee(q Quote, stayStart, cancelledOn time.Time) CancellationQuote {
	lead := calendar.DaysBetween(calendar.DayOf(cancelledOn), stayStart)
	fraction := c.policy.CancellationFraction(lead)
	return CancellationQuote{
		LeadDays:     lead,
		FeeFraction:  fraction,
		Fee:          q.Payable().Mul(fraction).Round(MoneyPlaces),
		CurrencyCode: q.CurrencyCode,
	}
}
