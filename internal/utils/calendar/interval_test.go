package calendar

import (
	"testing"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(t *testing.T, start, end time.Time) Interval {
	t.Helper()
	i, err := NewInterval(start, end)
	require.NoError(t, err)
	return i
}

func TestNewInterval(t *testing.T) {
	i, err := NewInterval(time.Date(2024, time.August, 1, 15, 4, 5, 0, time.UTC), Date(2024, time.August, 1))
	require.NoError(t, err)
	assert.Equal(t, Date(2024, time.August, 1), i.Start)
	assert.Equal(t, 1, i.Days())

	_, err = NewInterval(Date(2024, time.August, 2), Date(2024, time.August, 1))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInterval)

	_, err = NewInterval(Date(2024, time.August, 2), time.Time{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInterval)
}

func TestInterval_Overlaps(t *testing.T) {
	booked := interval(t, Date(2024, time.August, 1), Date(2024, time.August, 5))

	tests := []struct {
		name     string
		query    Interval
		expected bool
	}{
		{"touching end boundary", interval(t, Date(2024, time.August, 5), Date(2024, time.August, 10)), true},
		{"day after", interval(t, Date(2024, time.August, 6), Date(2024, time.August, 10)), false},
		{"touching start boundary", interval(t, Date(2024, time.July, 25), Date(2024, time.August, 1)), true},
		{"day before", interval(t, Date(2024, time.July, 25), Date(2024, time.July, 31)), false},
		{"contained", interval(t, Date(2024, time.August, 2), Date(2024, time.August, 3)), true},
		{"containing", interval(t, Date(2024, time.July, 1), Date(2024, time.September, 1)), true},
		{"single day inside", interval(t, Date(2024, time.August, 3), Date(2024, time.August, 3)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, booked.Overlaps(tt.query))
			assert.Equal(t, tt.expected, tt.query.Overlaps(booked), "overlap must be symmetric")
		})
	}
}

func TestInterval_OverlapsIsSymmetric(t *testing.T) {
	base := Date(2024, time.January, 1)
	var intervals []Interval
	for s := 0; s < 10; s += 2 {
		for l := 0; l < 5; l++ {
			intervals = append(intervals, Interval{Start: base.AddDate(0, 0, s), End: base.AddDate(0, 0, s+l)})
		}
	}
	for _, a := range intervals {
		for _, b := range intervals {
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "%s vs %s", a, b)
		}
	}
}

func TestMonthOf(t *testing.T) {
	feb := MonthOf(2024, time.February)
	assert.Equal(t, Date(2024, time.February, 1), feb.Start)
	assert.Equal(t, Date(2024, time.February, 29), feb.End)
	assert.Equal(t, 29, feb.Days())
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(Date(2024, time.March, 1), time.Date(2024, time.March, 1, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, 100, DaysBetween(Date(2024, time.May, 20), Date(2024, time.August, 28)))
	assert.Equal(t, -1, DaysBetween(Date(2024, time.March, 2), Date(2024, time.March, 1)))
}
