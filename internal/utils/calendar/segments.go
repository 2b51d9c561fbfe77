package calendar

import (
	"fmt"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
)

// Segment is the portion of a stay falling within a single calendar month.
type Segment struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Days  int        `json:"days"`
}

// Date returns midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize drops the clock and location, keeping only the calendar date.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// DayOf returns the UTC calendar date containing the instant t. Booking and
// cancellation dates are always taken this way so the result does not depend
// on the server's time zone.
func DayOf(t time.Time) time.Time {
	return Normalize(t.UTC())
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return Date(year, month+1, 0).Day()
}

// DaysBetween returns the whole number of calendar days from -> to (negative if to is earlier).
func DaysBetween(from, to time.Time) int {
	return int(Normalize(to).Sub(Normalize(from)).Hours() / 24)
}

// SplitByMonth splits the inclusive range [start, end] into chronological
// month segments. Every day in the range is counted exactly once.
func SplitByMonth(start, end time.Time) ([]Segment, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("split by month: %w", apperrors.ErrInvalidInterval)
	}
	start, end = Normalize(start), Normalize(end)
	if end.Before(start) {
		return nil, fmt.Errorf("split by month: end %s before start %s: %w",
			end.Format(time.DateOnly), start.Format(time.DateOnly), apperrors.ErrInvalidInterval)
	}

	var segments []Segment
	year, month := start.Year(), start.Month()
	for {
		first := 1
		if year == start.Year() && month == start.Month() {
			first = start.Day()
		}
		isLast := year == end.Year() && month == end.Month()
		last := DaysIn(year, month)
		if isLast {
			last = end.Day()
		}
		segments = append(segments, Segment{Year: year, Month: month, Days: last - first + 1})
		if isLast {
			return segments, nil
		}

		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
}
