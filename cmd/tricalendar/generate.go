package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/tricalendar/internal/generator"
	"github.com/username/tricalendar/pkg/dateutil"
	"go.uber.org/zap"
)

func generateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the three-month calendar as a LaTeX document",
		Example: `  tricalendar generate --start tuesday --month October:31 --month November:30 --month December:31 -o 2019-Oct_Nov_Dec.tex
  tricalendar generate -c calendar.yaml -o -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := newGenerator()
			if err != nil {
				return err
			}

			result, err := gen.Generate(cfg.Output.File, dryRun)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			if result.Destination != generator.StdoutDestination {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %d rows, row height %vmm, %d lines (%s)\n",
					getIcon(dryRun),
					result.Destination,
					result.NumberOfRows,
					result.RowHeight,
					result.Lines,
					result.Duration.Round(time.Microsecond))
			}
			return nil
		},
	}

	addCalendarFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Destination .tex file, - for stdout (default: output.file from config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render the document without writing it")

	return cmd
}

// newGenerator builds a generator from the loaded configuration
func newGenerator() (*generator.Generator, error) {
	start, err := cfg.Calendar.GetStartWeekday()
	if err != nil {
		return nil, fmt.Errorf("invalid start weekday: %w", err)
	}

	months, err := cfg.Calendar.GetMonths()
	if err != nil {
		return nil, err
	}

	logger.Debug("Configuration loaded",
		zap.String("start_weekday", dateutil.WeekdayName(start)),
		zap.String("separators", cfg.Layout.Separators),
		zap.String("output", cfg.Output.File))

	return generator.NewGenerator(start, months, cfg.Layout.GetLayout(), stdout, logger), nil
}

func getIcon(dryRun bool) string {
	if dryRun {
		return "📋"
	}
	return "✅"
}
