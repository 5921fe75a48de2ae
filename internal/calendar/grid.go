package calendar

import (
	"fmt"
	"math"

	"github.com/username/tricalendar/pkg/dateutil"
)

// MaxRowsHeight is the printable height (mm) shared by all rows of the grid
const MaxRowsHeight = 116.0

// Grid holds the computed date layout for three consecutive months.
// Rows[i][r] is the day of month i shown on row r, 0 for a blank cell.
type Grid struct {
	Months       [MonthsPerPage]Month
	StartWeekday int // Weekday of row 0, Monday=0
	Rows         [MonthsPerPage][]int
	RowHeight    float64
}

// ComputeStartingDays returns the weekday each month starts on and the
// smallest of them, which becomes the weekday of the grid's first row.
func ComputeStartingDays(startWeekday int, dayCounts [MonthsPerPage]int) (starts [MonthsPerPage]int, reference int) {
	offset := startWeekday
	for i, days := range dayCounts {
		starts[i] = dateutil.Mod7(offset)
		offset += days
	}

	reference = starts[0]
	for _, s := range starts[1:] {
		if s < reference {
			reference = s
		}
	}
	return starts, reference
}

// BuildRows lays out each month as leading blanks followed by 1..Days and
// pads every sequence with trailing blanks to the same length.
func BuildRows(months [MonthsPerPage]Month) [MonthsPerPage][]int {
	numberOfRows := 0
	for _, m := range months {
		if l := m.CombinedLength(); l > numberOfRows {
			numberOfRows = l
		}
	}

	var rows [MonthsPerPage][]int
	for i, m := range months {
		seq := make([]int, numberOfRows)
		for day := 1; day <= m.Days; day++ {
			seq[m.LeadingBlanks+day-1] = day
		}
		rows[i] = seq
	}
	return rows
}

// RowHeight divides MaxRowsHeight evenly between rows, rounded to 5 decimals
func RowHeight(numberOfRows int) float64 {
	if numberOfRows <= 0 {
		return 0
	}
	return math.Round(MaxRowsHeight/float64(numberOfRows)*1e5) / 1e5
}

// IsWeekend reports whether the row falls on Saturday or Sunday given the
// weekday of row 0
func IsWeekend(rowIndex, startWeekday int) bool {
	return dateutil.IsWeekendIndex(startWeekday + rowIndex)
}

// NewGrid validates the input and computes the full layout
func NewGrid(startWeekday int, months [MonthsPerPage]Month) (*Grid, error) {
	if !dateutil.ValidWeekday(startWeekday) {
		return nil, fmt.Errorf("%w: starting weekday %d is outside 0..6",
			dateutil.ErrInvalidWeekday, startWeekday)
	}

	var dayCounts [MonthsPerPage]int
	for i, m := range months {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("month %d: %w", i+1, err)
		}
		dayCounts[i] = m.Days
	}

	starts, reference := ComputeStartingDays(startWeekday, dayCounts)

	g := &Grid{StartWeekday: reference}
	for i, m := range months {
		g.Months[i] = m.withPadding(max(0, starts[i]-reference))
	}
	g.Rows = BuildRows(g.Months)
	g.RowHeight = RowHeight(g.NumberOfRows())

	return g, nil
}

// NumberOfRows returns the shared length of the row sequences
func (g *Grid) NumberOfRows() int {
	return len(g.Rows[0])
}

// Day returns the day shown for month on row, 0 when blank or out of range
func (g *Grid) Day(month, row int) int {
	if month < 0 || month >= MonthsPerPage || row < 0 || row >= len(g.Rows[month]) {
		return 0
	}
	return g.Rows[month][row]
}

// Populated reports whether month has a day on row. Row rendering and
// separator placement both rely on it.
func (g *Grid) Populated(month, row int) bool {
	return g.Day(month, row) != 0
}

// PopulatedRow returns Populated for all three months on row
func (g *Grid) PopulatedRow(row int) [MonthsPerPage]bool {
	var p [MonthsPerPage]bool
	for i := range p {
		p[i] = g.Populated(i, row)
	}
	return p
}

// IsWeekendRow reports whether row falls on a weekend
func (g *Grid) IsWeekendRow(row int) bool {
	return IsWeekend(row, g.StartWeekday)
}

// RowWeekday returns the Monday=0 weekday of row
func (g *Grid) RowWeekday(row int) int {
	return dateutil.Mod7(g.StartWeekday + row)
}
