package dateutil

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date truncates a time to midnight UTC. All engine date math works on
// these normalized values so map keys and comparisons line up.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize drops the time-of-day component.
func Normalize(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// MonthBounds returns the first and last day of a month.
func MonthBounds(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("month out of range: %d", month)
	}
	start := Date(year, time.Month(month), 1)
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// DaysInMonth returns the day count of a month.
func DaysInMonth(year, month int) int {
	return Date(year, time.Month(month), 1).AddDate(0, 1, -1).Day()
}

// IsWeekend reports Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysBetween returns the whole-day distance from a to b (negative when b
// precedes a). Both arguments are normalized first.
func DaysBetween(a, b time.Time) int {
	return int(Normalize(b).Sub(Normalize(a)).Hours() / 24)
}

// Parse parses a "2006-01-02" date string into a normalized date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Normalize(t), nil
}

// Format renders a normalized date as "2006-01-02".
func Format(t time.Time) string {
	return t.Format(dateLayout)
}
