package entities

import (
	"fmt"
	"strings"
	"time"
)

// ReminderDelayDays is the number of calendar days between an event and its reminder
const ReminderDelayDays = 7

const (
	// DateInputLayout accepts one or two digit day and month
	DateInputLayout = "2/1/2006"

	// DateDisplayLayout is used whenever a date is shown to users
	DateDisplayLayout = "02/01/2006"
)

// ParseEventDate parses a J/M/AAAA date into a civil date
func ParseEventDate(input string) (time.Time, error) {
	parsed, err := time.Parse(DateInputLayout, strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}
	return CivilDate(parsed), nil
}

// CivilDate strips the time of day, keeping the calendar date as seen in t's location.
// The result is midnight UTC so dates compare and round-trip through DATE columns cleanly.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current civil date in the given location
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return CivilDate(now.In(loc))
}

// ReminderDueDate returns the first date on which the event's reminder is due
func ReminderDueDate(eventDate time.Time) time.Time {
	return CivilDate(eventDate).AddDate(0, 0, ReminderDelayDays)
}

// IsReminderDue reports whether an event dated eventDate is due as of asOf
func IsReminderDue(eventDate, asOf time.Time) bool {
	return !ReminderDueDate(eventDate).After(CivilDate(asOf))
}

// FormatEventDate renders a date as DD/MM/YYYY
func FormatEventDate(t time.Time) string {
	return t.Format(DateDisplayLayout)
}
