package calendar

import "github.com/username/tricalendar/pkg/dateutil"

// GridExport is a serializable snapshot of a Grid
type GridExport struct {
	StartWeekday string        `json:"start_weekday" yaml:"start_weekday"`
	NumberOfRows int           `json:"number_of_rows" yaml:"number_of_rows"`
	RowHeightMM  float64       `json:"row_height_mm" yaml:"row_height_mm"`
	Months       []MonthExport `json:"months" yaml:"months"`
	Rows         []RowExport   `json:"rows" yaml:"rows"`
}

// MonthExport describes one month column
type MonthExport struct {
	Name          string `json:"name" yaml:"name"`
	Days          int    `json:"days" yaml:"days"`
	LeadingBlanks int    `json:"leading_blanks" yaml:"leading_blanks"`
}

// RowExport describes one grid row, 0 marks a blank cell
type RowExport struct {
	Weekday string `json:"weekday" yaml:"weekday"`
	Weekend bool   `json:"weekend" yaml:"weekend"`
	Days    []int  `json:"days" yaml:"days,flow"`
}

// Export returns a snapshot of the grid
func (g *Grid) Export() GridExport {
	e := GridExport{
		StartWeekday: dateutil.WeekdayName(g.StartWeekday),
		NumberOfRows: g.NumberOfRows(),
		RowHeightMM:  g.RowHeight,
		Months:       make([]MonthExport, 0, MonthsPerPage),
		Rows:         make([]RowExport, 0, g.NumberOfRows()),
	}

	for _, m := range g.Months {
		e.Months = append(e.Months, MonthExport{
			Name:          m.Name,
			Days:          m.Days,
			LeadingBlanks: m.LeadingBlanks,
		})
	}

	for row := 0; row < g.NumberOfRows(); row++ {
		days := make([]int, MonthsPerPage)
		for i := range days {
			days[i] = g.Day(i, row)
		}
		e.Rows = append(e.Rows, RowExport{
			Weekday: dateutil.WeekdayName(g.RowWeekday(row)),
			Weekend: g.IsWeekendRow(row),
			Days:    days,
		})
	}

	return e
}
