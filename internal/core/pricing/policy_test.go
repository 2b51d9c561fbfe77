package pricing

import (
	"testing"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy_PeakMonths(t *testing.T) {
	p := DefaultPolicy()
	for m := time.January; m <= time.December; m++ {
		assert.Equal(t, m >= time.April && m <= time.September, p.IsPeak(m), m.String())
	}
	require.NoError(t, p.Validate())
}

func TestPolicy_DoubleThresholdIsConfigurable(t *testing.T) {
	p := DefaultPolicy()
	p.Multipliers.DoubleGuestThreshold = 3

	m, err := p.Multiplier(domain.RoomTypeDouble, 2)
	require.NoError(t, err)
	assertDecimal(t, "1.2", m)
}

func TestParsePeakMonths(t *testing.T) {
	months, err := ParsePeakMonths("6, 7,8")
	require.NoError(t, err)
	assert.Equal(t, map[time.Month]bool{time.June: true, time.July: true, time.August: true}, months)

	_, err = ParsePeakMonths("4,13")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = ParsePeakMonths("april")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseDiscountTiers(t *testing.T) {
	tiers, err := ParseDiscountTiers("80:0.80, 60:0.90,45:0.95")
	require.NoError(t, err)
	require.Len(t, tiers, 3)
	assert.Equal(t, 60, tiers[1].MinDaysInAdvance)
	assertDecimal(t, "0.90", tiers[1].Factor)

	_, err = ParseDiscountTiers("80-0.8")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = ParseDiscountTiers("x:0.8")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseCancellationTiers(t *testing.T) {
	tiers, err := ParseCancellationTiers("30:1.0,60:0.5")
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	assert.Equal(t, 30, tiers[0].WithinDays)

	_, err = ParseCancellationTiers("30:abc")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
