package latex

import (
	"strconv"
	"strings"

	"github.com/username/tricalendar/internal/calendar"
)

const (
	colourName   = "calendarColour"
	cellColour   = `\cellcolor{` + colourName + `}`
	rowColour    = `\rowcolor{` + colourName + `}`
	rowEnd       = `\tabularnewline[\entryheight]`
	hline        = `\hline`
	cellPadding  = "          "     // width of a two digit day
	blankPadding = "              " // aligns blank spans with coloured cells
)

// blankSpan is the placeholder covering both columns of a month without a day.
// Only the first month draws the table's left border.
func blankSpan(month int) string {
	if month == 0 {
		return `\multicolumn{2}{|c|}{}`
	}
	return `\multicolumn{2}{ c|}{}`
}

// RenderRow renders one table row for days a, b and c (0 = blank).
// Weekend rows highlight the cells that hold a day.
func RenderRow(a, b, c int, weekend bool) []string {
	days := [calendar.MonthsPerPage]int{a, b, c}
	if !weekend {
		return []string{plainRow(days)}
	}
	if a != 0 && b != 0 && c != 0 {
		return []string{rowColour, plainRow(days)}
	}
	return highlightedRow(days)
}

// plainRow renders the row on a single line
func plainRow(days [calendar.MonthsPerPage]int) string {
	var sb strings.Builder
	last := len(days) - 1
	for i, day := range days {
		if day != 0 {
			sb.WriteString(strconv.Itoa(day) + " &")
			if i < last {
				sb.WriteString("& ")
			}
		} else {
			sb.WriteString(blankSpan(i))
			if i < last {
				sb.WriteString(" & ")
			}
		}
	}
	sb.WriteString(" " + rowEnd)
	return sb.String()
}

// highlightedRow renders a partially filled weekend row with one line per cell
func highlightedRow(days [calendar.MonthsPerPage]int) []string {
	lines := make([]string, 0, 2*len(days)+1)
	last := len(days) - 1
	for i, day := range days {
		if day != 0 {
			lines = append(lines, cellColour+strconv.Itoa(day)+"&")
			if i < last {
				lines = append(lines, cellColour+cellPadding+"&")
			} else {
				lines = append(lines, cellColour)
			}
			continue
		}
		if i < last {
			lines = append(lines, blankSpan(i)+blankPadding+"&")
		} else {
			lines = append(lines, blankSpan(i))
		}
	}
	return append(lines, rowEnd)
}

// columnRange returns the table columns covered by month
func columnRange(month int) (first, last int) {
	return 2*month + 1, 2*month + 2
}

// RenderSeparator renders the rule between the current and the next row.
// Each month's column range gets a rule when it is needed under mode; adjacent
// ranges are merged and a rule across all three collapses to \hline.
// Returns nil when no rule is needed.
func RenderSeparator(current, next [calendar.MonthsPerPage]bool, mode SeparatorMode) []string {
	var needed [calendar.MonthsPerPage]bool
	all := true
	for i := range needed {
		if mode == SeparatorBoxed {
			needed[i] = current[i] || next[i]
		} else {
			needed[i] = current[i] && next[i]
		}
		all = all && needed[i]
	}

	if all {
		return []string{hline}
	}

	var sb strings.Builder
	for i := 0; i < len(needed); {
		if !needed[i] {
			i++
			continue
		}
		j := i
		for j+1 < len(needed) && needed[j+1] {
			j++
		}
		first, _ := columnRange(i)
		_, last := columnRange(j)
		sb.WriteString(`\cline{` + strconv.Itoa(first) + "-" + strconv.Itoa(last) + "}")
		i = j + 1
	}

	if sb.Len() == 0 {
		return nil
	}
	return []string{sb.String()}
}
