package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/username/tricalendar/internal/calendar"
	"gopkg.in/yaml.v3"
)

func gridCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the computed date layout without rendering LaTeX",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := newGenerator()
			if err != nil {
				return err
			}

			grid, err := gen.Grid()
			if err != nil {
				return err
			}

			switch format {
			case "table":
				printGridTable(stdout, grid)
				return nil
			case "json":
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(grid.Export()); err != nil {
					return fmt.Errorf("failed to encode grid: %w", err)
				}
				return nil
			case "yaml":
				enc := yaml.NewEncoder(stdout)
				enc.SetIndent(2)
				defer enc.Close()
				if err := enc.Encode(grid.Export()); err != nil {
					return fmt.Errorf("failed to encode grid: %w", err)
				}
				return nil
			default:
				return fmt.Errorf("format must be 'table', 'json' or 'yaml', got '%s'", format)
			}
		},
	}

	addCalendarFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json or yaml")

	return cmd
}

func printGridTable(w io.Writer, grid *calendar.Grid) {
	e := grid.Export()

	fmt.Fprintf(w, "Start weekday: %s, rows: %d, row height: %vmm\n",
		e.StartWeekday, e.NumberOfRows, e.RowHeightMM)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════")

	fmt.Fprintf(w, "  Row | %-9s", "Weekday")
	for _, m := range e.Months {
		fmt.Fprintf(w, " | %10s", m.Name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "------+-----------"+strings.Repeat("+------------", len(e.Months)))

	for i, row := range e.Rows {
		marker := " "
		if row.Weekend {
			marker = "*"
		}
		fmt.Fprintf(w, "%s%4d | %-9s", marker, i, row.Weekday)
		for _, day := range row.Days {
			if day == 0 {
				fmt.Fprintf(w, " | %10s", "")
			} else {
				fmt.Fprintf(w, " | %10d", day)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\nLegend: '*' = weekend row (highlighted in the document)")
}
