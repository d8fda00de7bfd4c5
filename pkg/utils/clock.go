package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Times of day (facility opening hours, booking slots, class start times)
// are stored as minutes since midnight and exchanged as "HH:MM" strings.

const minutesPerDay = 24 * 60

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", value)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q out of range", value)
	}

	return hour*60 + minute, nil
}

// FormatClock converts minutes since midnight into "HH:MM".
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
