package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DaysInWeek is the length of the weekday cycle
const DaysInWeek = 7

// Monday-first weekday indices
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// ErrInvalidWeekday is returned when a weekday cannot be parsed or is out of range
var ErrInvalidWeekday = errors.New("invalid weekday")

var weekdayNames = [DaysInWeek]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Mod7 returns n modulo 7, always in range 0..6
func Mod7(n int) int {
	m := n % DaysInWeek
	if m < 0 {
		m += DaysInWeek
	}
	return m
}

// WeekdayIndex converts time.Weekday (Sunday=0) to a Monday=0 index
func WeekdayIndex(weekday time.Weekday) int {
	return Mod7(int(weekday) + 6)
}

// WeekdayName returns the English name for a Monday=0 index
func WeekdayName(index int) string {
	return weekdayNames[Mod7(index)]
}

// IsWeekendIndex returns true for Saturday and Sunday (Monday=0 convention)
func IsWeekendIndex(index int) bool {
	return Mod7(index) >= Saturday
}

// ValidWeekday reports whether index is within 0..6
func ValidWeekday(index int) bool {
	return index >= Monday && index <= Sunday
}

// ParseWeekday parses a weekday given as an index (0-6), a full English
// name or a three letter abbreviation. Returns a Monday=0 index.
func ParseWeekday(s string) (int, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidWeekday)
	}

	if n, err := strconv.Atoi(value); err == nil {
		if !ValidWeekday(n) {
			return 0, fmt.Errorf("%w: %d is outside 0..6", ErrInvalidWeekday, n)
		}
		return n, nil
	}

	for i, name := range weekdayNames {
		lower := strings.ToLower(name)
		if value == lower || value == lower[:3] {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}
