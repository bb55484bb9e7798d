package models

import (
	"strconv"
	"strings"
	"time"
)

// ParseLocalDate parses a YYYY-MM-DD value as a local calendar date.
// A trailing time part ("2024-03-05T12:00:00Z") is discarded before
// parsing; the date is never interpreted as a UTC instant, which would
// shift records across a day boundary in western timezones.
// The boolean is false when the value cannot be parsed.
func ParseLocalDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	datePart, _, _ := strings.Cut(value, "T")
	parts := strings.Split(datePart, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil || year == 0 || month == 0 || day == 0 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}

// EndOfDay returns the last representable millisecond of the given day,
// used to make range filters inclusive of their end date.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}
