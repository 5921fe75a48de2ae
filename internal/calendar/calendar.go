package calendar

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MonthsPerPage is the number of months laid out side by side
	MonthsPerPage = 3

	MinMonthDays = 28
	MaxMonthDays = 31
)

// ErrInvalidMonthData is returned for a month with an empty name or a day
// count outside MinMonthDays..MaxMonthDays
var ErrInvalidMonthData = errors.New("invalid month data")

// Month represents one column group of the calendar
type Month struct {
	Name          string
	Days          int
	LeadingBlanks int // Blank cells before day 1, relative to the grid's first row
}

// NewMonth creates a validated month without padding
func NewMonth(name string, days int) (Month, error) {
	m := Month{Name: strings.TrimSpace(name), Days: days}
	if err := m.Validate(); err != nil {
		return Month{}, err
	}
	return m, nil
}

// Validate checks month name and day count
func (m Month) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: month name is required", ErrInvalidMonthData)
	}
	if m.Days < MinMonthDays || m.Days > MaxMonthDays {
		return fmt.Errorf("%w: %s has %d days, must be between %d and %d",
			ErrInvalidMonthData, m.Name, m.Days, MinMonthDays, MaxMonthDays)
	}
	return nil
}

// CombinedLength returns the number of rows the month occupies including padding
func (m Month) CombinedLength() int {
	return m.LeadingBlanks + m.Days
}

// withPadding returns a copy of the month with the given leading blank count
func (m Month) withPadding(blanks int) Month {
	m.LeadingBlanks = blanks
	return m
}
