package entity

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar date format used throughout the store.
	DateLayout = "2006-01-02"
	// ClockLayout is the minute-precision time of day format.
	ClockLayout = "15:04"
)

// ErrInvalidDefinition is returned when a trigger definition breaks an invariant.
var ErrInvalidDefinition = errors.New("invalid trigger definition")

// ErrInvalidClock is returned for a time of day that is not HH:MM.
var ErrInvalidClock = errors.New("invalid time of day")

// ParseClock converts an HH:MM string (00:00-23:59) to minutes since midnight.
func ParseClock(value string) (int, error) {
	if len(value) != len(ClockLayout) || value[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	hour, ok := twoDigits(value[0], value[1])
	if !ok || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	minute, ok := twoDigits(value[3], value[4])
	if !ok || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	return hour*60 + minute, nil
}

// IsDate reports whether value is a valid YYYY-MM-DD calendar date.
func IsDate(value string) bool {
	_, err := time.Parse(DateLayout, value)

	return err == nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}

	return int(a-'0')*10 + int(b-'0'), true
}
