// Package timeofday provides a compact clock-time representation for
// availability windows: minutes since midnight, serialized as "HH:MM".
package timeofday

import (
	"encoding/json"
	"fmt"
	"time"
)

// Clock is a time of day expressed in minutes since midnight.
type Clock int

// New builds a Clock from an hour and minute.
func New(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// Parse parses a 24-hour "HH:MM" string.
func Parse(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return New(t.Hour(), t.Minute()), nil
}

// FromTime extracts the clock time from a timestamp.
func FromTime(t time.Time) Clock {
	return New(t.Hour(), t.Minute())
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// Minutes returns the raw minutes-since-midnight value.
func (c Clock) Minutes() int { return int(c) }

// String renders the 24-hour form, e.g. "09:00".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Display renders the 12-hour form used in API responses, e.g. "09:00 AM".
func (c Clock) Display() string {
	ref := time.Date(0, 1, 1, c.Hour(), c.Minute(), 0, 0, time.UTC)
	return ref.Format("03:04 PM")
}

// On combines the clock time with a calendar date in the date's location.
func (c Clock) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, date.Location())
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// dayNames is indexed by the Monday-based day-of-week used across the
// schedule tables (0=Monday .. 6=Sunday).
var dayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayOfWeek converts a timestamp's weekday to the Monday-based index.
func DayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DayName returns the English name for a Monday-based day index.
// Out-of-range indexes return an empty string.
func DayName(day int) string {
	if day < 0 || day > 6 {
		return ""
	}
	return dayNames[day]
}
