package latex

import (
	"strconv"
	"strings"

	"github.com/username/tricalendar/internal/calendar"
)

// Document is the rendered LaTeX source as an ordered sequence of lines
type Document struct {
	lines []string
}

// Lines returns a copy of the document lines
func (d Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Len returns the number of lines
func (d Document) Len() int {
	return len(d.lines)
}

// String returns the document with every line terminated by a newline
func (d Document) String() string {
	var sb strings.Builder
	for _, line := range d.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Renderer turns a computed grid into a Document
type Renderer struct {
	grid   *calendar.Grid
	layout Layout
}

// NewRenderer creates a renderer for grid using layout
func NewRenderer(grid *calendar.Grid, layout Layout) *Renderer {
	return &Renderer{
		grid:   grid,
		layout: layout,
	}
}

// Render builds the complete document: preamble and table header, one row
// plus separator per grid row, and the closing block
func (r *Renderer) Render() Document {
	lines := r.Header()

	n := r.grid.NumberOfRows()
	for row := 0; row < n; row++ {
		lines = append(lines, RenderRow(
			r.grid.Day(0, row),
			r.grid.Day(1, row),
			r.grid.Day(2, row),
			r.grid.IsWeekendRow(row),
		)...)

		if row+1 < n {
			lines = append(lines, RenderSeparator(
				r.grid.PopulatedRow(row),
				r.grid.PopulatedRow(row+1),
				r.layout.SeparatorMode,
			)...)
		} else {
			lines = append(lines, hline)
		}
	}

	lines = append(lines, Footer()...)
	return Document{lines: lines}
}

// Header returns the preamble, the table column spec and the month name row
func (r *Renderer) Header() []string {
	l := r.layout
	months := r.grid.Months

	return []string{
		`\documentclass[a4paper]{article}`,
		`\usepackage[top=` + l.TopMargin + `, bottom=` + l.BottomMargin +
			`, left=` + l.SideMargin + `, right=` + l.SideMargin + `]{geometry}`,
		`\usepackage{color, colortbl}`,
		`\pagestyle{empty}`,
		``,
		``,
		`\definecolor{` + colourName + `}{RGB}{` + l.Colour + `}`,
		``,
		`\newcommand{\entrywidth}{` + l.EntryWidth + `}`,
		`\newcommand{\entryheight}{` + FormatLength(r.grid.RowHeight) + `}`,
		``,
		`\begin{document}`,
		`\sffamily `,
		`\begin{center}`,
		``,
		`\begin{tabular}{|c|p{\entrywidth}|c|p{\entrywidth}|c|p{\entrywidth}|}`,
		hline,
		`\multicolumn{2}{|c|}{` + Escape(months[0].Name) + `}`,
		`&`,
		`\multicolumn{2}{ c|}{` + Escape(months[1].Name) + `}`,
		`&`,
		`\multicolumn{2}{ c|}{` + Escape(months[2].Name) + `}`,
		`\\`,
		hline,
	}
}

// Footer closes the table and the document
func Footer() []string {
	return []string{
		`\end{tabular}`,
		``,
		`\end{center}`,
		`\end{document}`,
	}
}

// FormatLength formats a length in millimetres
func FormatLength(mm float64) string {
	return strconv.FormatFloat(mm, 'f', -1, 64) + "mm"
}

var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape escapes LaTeX special characters in plain text
func Escape(s string) string {
	return escaper.Replace(s)
}
