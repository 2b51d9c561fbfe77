package pricing

import (
	"testing"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/utils/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCancellationFee(t *testing.T) {
	c := newCalculator(t)
	start := calendar.Date(2024, time.August, 1)
	discounted := decimal.RequireFromString("160.00")

	withDiscount := Quote{Total: decimal.RequireFromString("200.00"), Discounted: &discounted, CurrencyCode: "GBP"}
	noDiscount := Quote{Total: decimal.RequireFromString("200.00"), CurrencyCode: "GBP"}

	tests := []struct {
		name     string
		quote    Quote
		lead     int
		expected string
	}{
		{"same day full fee", noDiscount, 0, "200.00"},
		{"29 days full fee", noDiscount, 29, "200.00"},
		{"30 days half fee", noDiscount, 30, "100.00"},
		{"59 days half fee", noDiscount, 59, "100.00"},
		{"60 days free", noDiscount, 60, "0"},
		{"fee based on discounted price", withDiscount, 10, "160.00"},
		{"half of discounted price", withDiscount, 45, "80.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := c.CancellationFee(tt.quote, start, start.AddDate(0, 0, -tt.lead))
			assert.Equal(t, tt.lead, fee.LeadDays)
			assertDecimal(t, tt.expected, fee.Fee)
			assert.Equal(t, "GBP", fee.CurrencyCode)
		})
	}
}

func TestCancellationFee_CancelledOnIsTakenAsUTCDate(t *testing.T) {
	c := newCalculator(t)
	start := calendar.Date(2024, time.August, 1)
	q := Quote{Total: decimal.RequireFromString("200.00"), CurrencyCode: "GBP"}
	cest := time.FixedZone("CEST", 2*60*60)

	// 00:30 on 3 June in CEST is 2 June in UTC, 60 days ahead of the stay
	fee := c.CancellationFee(q, start, time.Date(2024, time.June, 3, 0, 30, 0, 0, cest))

	assert.Equal(t, 60, fee.LeadDays)
	assertDecimal(t, "0", fee.Fee)
}
