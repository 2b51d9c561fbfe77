package pricing

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Multipliers scale a location's nightly rate by room type and occupancy.
type Multipliers struct {
	Single          decimal.Decimal
	DoubleOneGuest  decimal.Decimal
	DoubleTwoGuests decimal.Decimal
	Family          decimal.Decimal
	// DoubleGuestThreshold is the guest count from which DoubleTwoGuests applies.
	DoubleGuestThreshold int
}

// DiscountTier maps a booking lead time to a price factor.
type DiscountTier struct {
	MinDaysInAdvance int
	Factor           decimal.Decimal
}

// CancellationTier charges FeeFraction of the booking price when the
// stay starts fewer than WithinDays days after cancellation.
type CancellationTier struct {
	WithinDays  int
	FeeFraction decimal.Decimal
}

// Policy is the injectable configuration of the pricing engine.
type Policy struct {
	PeakMonths        map[time.Month]bool
	Multipliers       Multipliers
	DiscountTiers     []DiscountTier
	CancellationTiers []CancellationTier
	MaxGuests         int
}

// DefaultPolicy returns the reference policy: April to September are peak,
// multipliers 1.0/1.2/1.3/1.5 and discounts of 20/10/5 percent at 80/60/45 days.
func DefaultPolicy() Policy {
	return Policy{
		PeakMonths: map[time.Month]bool{
			time.April: true, time.May: true, time.June: true,
			time.July: true, time.August: true, time.September: true,
		},
		Multipliers: Multipliers{
			Single:               decimal.RequireFromString("1.0"),
			DoubleOneGuest:       decimal.RequireFromString("1.2"),
			DoubleTwoGuests:      decimal.RequireFromString("1.3"),
			Family:               decimal.RequireFromString("1.5"),
			DoubleGuestThreshold: 2,
		},
		DiscountTiers: []DiscountTier{
			{MinDaysInAdvance: 80, Factor: decimal.RequireFromString("0.80")},
			{MinDaysInAdvance: 60, Factor: decimal.RequireFromString("0.90")},
			{MinDaysInAdvance: 45, Factor: decimal.RequireFromString("0.95")},
		},
		CancellationTiers: []CancellationTier{
			{WithinDays: 30, FeeFraction: decimal.NewFromInt(1)},
			{WithinDays: 60, FeeFraction: decimal.RequireFromString("0.5")},
		},
		MaxGuests: 6,
	}
}

// Validate checks the policy is internally consistent.
func (p Policy) Validate() error {
	m := p.Multipliers
	for name, v := range map[string]decimal.Decimal{
		"single": m.Single, "double one guest": m.DoubleOneGuest,
		"double two guests": m.DoubleTwoGuests, "family": m.Family,
	} {
		if !v.IsPositive() {
			return fmt.Errorf("%s multiplier must be positive: %w", name, apperrors.ErrValidation)
		}
	}
	if m.DoubleGuestThreshold < 1 {
		return fmt.Errorf("double room guest threshold must be at least 1: %w", apperrors.ErrValidation)
	}
	if p.MaxGuests < 1 {
		return fmt.Errorf("max guests must be at least 1: %w", apperrors.ErrValidation)
	}
	for _, t := range p.DiscountTiers {
		if t.MinDaysInAdvance < 0 || !t.Factor.IsPositive() || t.Factor.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("invalid discount tier %d:%s: %w", t.MinDaysInAdvance, t.Factor, apperrors.ErrValidation)
		}
	}
	for _, t := range p.CancellationTiers {
		if t.WithinDays < 0 || t.FeeFraction.IsNegative() || t.FeeFraction.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("invalid cancellation tier %d:%s: %w", t.WithinDays, t.FeeFraction, apperrors.ErrValidation)
		}
	}
	return nil
}

// IsPeak reports whether the month is charged at the peak rate.
func (p Policy) IsPeak(month time.Month) bool {
	return p.PeakMonths[month]
}

// Multiplier returns the rate multiplier for a room type at the given occupancy.
func (p Policy) Multiplier(code domain.RoomTypeCode, guests int) (decimal.Decimal, error) {
	switch code {
	case domain.RoomTypeSingle:
		return p.Multipliers.Single, nil
	case domain.RoomTypeDouble:
		if guests >= p.Multipliers.DoubleGuestThreshold {
			return p.Multipliers.DoubleTwoGuests, nil
		}
		return p.Multipliers.DoubleOneGuest, nil
	case domain.RoomTypeFamily:
		return p.Multipliers.Family, nil
	default:
		return decimal.Zero, fmt.Errorf("no multiplier for room type %q: %w", code, apperrors.ErrValidation)
	}
}

// DiscountFactor returns the factor of the highest tier the lead time qualifies for.
// Tiers must be sorted by descending threshold.
func (p Policy) DiscountFactor(daysInAdvance int) (decimal.Decimal, bool) {
	for _, t := range p.DiscountTiers {
		if daysInAdvance >= t.MinDaysInAdvance {
			return t.Factor, true
		}
	}
	return decimal.Zero, false
}

// CancellationFraction returns the share of the price charged when cancelling
// leadDays before the stay starts. Tiers must be sorted by ascending window.
func (p Policy) CancellationFraction(leadDays int) decimal.Decimal {
	for _, t := range p.CancellationTiers {
		if leadDays < t.WithinDays {
			return t.FeeFraction
		}
	}
	return decimal.Zero
}

// sorted returns a copy with discount tiers in descending and cancellation
// tiers in ascending threshold order.
func (p Policy) sorted() Policy {
	out := p
	out.DiscountTiers = append([]DiscountTier(nil), p.DiscountTiers...)
	sort.SliceStable(out.DiscountTiers, func(i, j int) bool {
		return out.DiscountTiers[i].MinDaysInAdvance > out.DiscountTiers[j].MinDaysInAdvance
	})
	out.CancellationTiers = append([]CancellationTier(nil), p.CancellationTiers...)
	sort.SliceStable(out.CancellationTiers, func(i, j int) bool {
		return out.CancellationTiers[i].WithinDays < out.CancellationTiers[j].WithinDays
	})
	out.PeakMonths = make(map[time.Month]bool, len(p.PeakMonths))
	for m, v := range p.PeakMonths {
		out.PeakMonths[m] = v
	}
	return out
}

// ParsePeakMonths parses a comma separated list of month numbers, e.g. "4,5,6".
func ParsePeakMonths(s string) (map[time.Month]bool, error) {
	months := make(map[time.Month]bool)
	for _, part := range splitList(s) {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > 12 {
			return nil, fmt.Errorf("invalid peak month %q: %w", part, apperrors.ErrValidation)
		}
		months[time.Month(n)] = true
	}
	return months, nil
}

// ParseDiscountTiers parses "days:factor" pairs, e.g. "80:0.80,60:0.90".
func ParseDiscountTiers(s string) ([]DiscountTier, error) {
	var tiers []DiscountTier
	for _, part := range splitList(s) {
		days, factor, err := parsePair(part)
		if err != nil {
			return nil, fmt.Errorf("invalid discount tier: %w", err)
		}
		tiers = append(tiers, DiscountTier{MinDaysInAdvance: days, Factor: factor})
	}
	return tiers, nil
}

// ParseCancellationTiers parses "days:fraction" pairs, e.g. "30:1.0,60:0.5".
func ParseCancellationTiers(s string) ([]CancellationTier, error) {
	var tiers []CancellationTier
	for _, part := range splitList(s) {
		days, fraction, err := parsePair(part)
		if err != nil {
			return nil, fmt.Errorf("invalid cancellation tier: %w", err)
		}
		tiers = append(tiers, CancellationTier{WithinDays: days, FeeFraction: fraction})
	}
	return tiers, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parsePair(s string) (int, decimal.Decimal, error) {
	days, value, ok := strings.Cut(s, ":")
	if !ok {
		return 0, decimal.Zero, fmt.Errorf("%q is not days:value: %w", s, apperrors.ErrValidation)
	}
	n, err := strconv.Atoi(strings.TrimSpace(days))
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("%q: %w", s, apperrors.ErrValidation)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("%q: %w", s, apperrors.ErrValidation)
	}
	return n, d, nil
}
