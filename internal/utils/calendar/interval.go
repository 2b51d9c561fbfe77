package calendar

import (
	"fmt"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
)

// Interval is an inclusive range of calendar dates. A single-day stay has Start == End.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewInterval validates and normalizes a date range.
func NewInterval(start, end time.Time) (Interval, error) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, fmt.Errorf("both dates are required: %w", apperrors.ErrInvalidInterval)
	}
	i := Interval{Start: Normalize(start), End: Normalize(end)}
	if i.End.Before(i.Start) {
		return Interval{}, fmt.Errorf("end %s is before start %s: %w",
			i.End.Format(time.DateOnly), i.Start.Format(time.DateOnly), apperrors.ErrInvalidInterval)
	}
	return i, nil
}

// MonthOf returns the interval covering every day of a calendar month.
func MonthOf(year int, month time.Month) Interval {
	return Interval{Start: Date(year, month, 1), End: Date(year, month, DaysIn(year, month))}
}

// Overlaps reports whether two inclusive intervals share at least one day.
// Intervals that only touch on a boundary day overlap.
func (i Interval) Overlaps(other Interval) bool {
	return !i.Start.After(other.End) && !other.Start.After(i.End)
}

// Days is the number of days in the interval, counting both ends.
func (i Interval) Days() int {
	return DaysBetween(i.Start, i.End) + 1
}

// Segments splits the interval by calendar month.
func (i Interval) Segments() ([]Segment, error) {
	return SplitByMonth(i.Start, i.End)
}

func (i Interval) String() string {
	return i.Start.Format(time.DateOnly) + ".." + i.End.Format(time.DateOnly)
}
