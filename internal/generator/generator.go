package generator

import (
	"fmt"
	"io"
	"time"

	"github.com/username/tricalendar/internal/calendar"
	"github.com/username/tricalendar/internal/latex"
	"github.com/username/tricalendar/pkg/dateutil"
	"go.uber.org/zap"
)

// StdoutDestination writes the document to the generator's stdout writer
const StdoutDestination = "-"

// Generator builds the calendar grid and writes the LaTeX document
type Generator struct {
	startWeekday int
	months       [calendar.MonthsPerPage]calendar.Month
	layout       latex.Layout
	writer       *latex.FileWriter
	stdout       io.Writer
	logger       *zap.Logger
}

// Result summarizes a generation run
type Result struct {
	Destination  string
	NumberOfRows int
	RowHeight    float64
	Lines        int
	Written      bool
	Duration     time.Duration
}

// NewGenerator creates a new generator. Input is validated by Grid.
func NewGenerator(startWeekday int, months [calendar.MonthsPerPage]calendar.Month, layout latex.Layout, stdout io.Writer, logger *zap.Logger) *Generator {
	return &Generator{
		startWeekday: startWeekday,
		months:       months,
		layout:       layout,
		writer:       latex.NewFileWriter(logger),
		stdout:       stdout,
		logger:       logger,
	}
}

// Grid computes the date layout
func (g *Generator) Grid() (*calendar.Grid, error) {
	grid, err := calendar.NewGrid(g.startWeekday, g.months)
	if err != nil {
		return nil, fmt.Errorf("failed to compute layout: %w", err)
	}

	g.logger.Debug("Grid computed",
		zap.String("start_weekday", dateutil.WeekdayName(grid.StartWeekday)),
		zap.Int("rows", grid.NumberOfRows()),
		zap.Float64("row_height_mm", grid.RowHeight),
		zap.Int("padding_0", grid.Months[0].LeadingBlanks),
		zap.Int("padding_1", grid.Months[1].LeadingBlanks),
		zap.Int("padding_2", grid.Months[2].LeadingBlanks))

	return grid, nil
}

// Render computes the layout and renders the document
func (g *Generator) Render() (*calendar.Grid, latex.Document, error) {
	grid, err := g.Grid()
	if err != nil {
		return nil, latex.Document{}, err
	}
	return grid, latex.NewRenderer(grid, g.layout).Render(), nil
}

// Generate renders the document and writes it to destination.
// With dryRun the document is rendered but not written.
func (g *Generator) Generate(destination string, dryRun bool) (*Result, error) {
	startTime := time.Now()

	grid, doc, err := g.Render()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Destination:  destination,
		NumberOfRows: grid.NumberOfRows(),
		RowHeight:    grid.RowHeight,
		Lines:        doc.Len(),
	}

	if dryRun {
		g.logger.Info("Dry run, document not written",
			zap.String("destination", destination),
			zap.Int("lines", doc.Len()))
	} else if destination == StdoutDestination {
		if err := latex.Write(g.stdout, doc); err != nil {
			return nil, err
		}
		result.Written = true
	} else {
		if err := g.writer.WriteFile(destination, doc); err != nil {
			return nil, err
		}
		result.Written = true
	}

	result.Duration = time.Since(startTime)

	g.logger.Info("Calendar generated",
		zap.String("destination", destination),
		zap.String("months", fmt.Sprintf("%s/%s/%s", g.months[0].Name, g.months[1].Name, g.months[2].Name)),
		zap.Int("rows", result.NumberOfRows),
		zap.Bool("written", result.Written),
		zap.Duration("duration", result.Duration))

	return result, nil
}
