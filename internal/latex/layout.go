package latex

import (
	"fmt"
	"strings"
)

// SeparatorMode controls when a horizontal rule is drawn between two rows
type SeparatorMode string

const (
	// SeparatorShared draws a rule for a month only where both rows have a day
	SeparatorShared SeparatorMode = "shared"
	// SeparatorBoxed draws a rule for a month where either row has a day,
	// closing every day cell on all four sides
	SeparatorBoxed SeparatorMode = "boxed"
)

// ParseSeparatorMode parses a mode name, empty means SeparatorShared
func ParseSeparatorMode(s string) (SeparatorMode, error) {
	switch SeparatorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", SeparatorShared:
		return SeparatorShared, nil
	case SeparatorBoxed:
		return SeparatorBoxed, nil
	default:
		return "", fmt.Errorf("separator mode must be '%s' or '%s', got '%s'", SeparatorShared, SeparatorBoxed, s)
	}
}

// Layout holds the page geometry and colours of the generated document
type Layout struct {
	TopMargin     string
	BottomMargin  string
	SideMargin    string
	EntryWidth    string
	Colour        string // "R, G, B"
	SeparatorMode SeparatorMode
}

// DefaultLayout returns the A4 layout the calendar was designed for
func DefaultLayout() Layout {
	return Layout{
		TopMargin:     "14mm",
		BottomMargin:  "6mm",
		SideMargin:    "4mm",
		EntryWidth:    "52mm",
		Colour:        "160, 220, 255",
		SeparatorMode: SeparatorShared,
	}
}
