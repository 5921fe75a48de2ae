package generator

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/username/tricalendar/internal/calendar"
	"github.com/username/tricalendar/internal/latex"
	"github.com/username/tricalendar/pkg/dateutil"
	"go.uber.org/zap"
)

var autumn = [calendar.MonthsPerPage]calendar.Month{
	{Name: "October", Days: 31},
	{Name: "November", Days: 30},
	{Name: "December", Days: 31},
}

func TestGenerator_Generate(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	gen := NewGenerator(dateutil.Tuesday, autumn, latex.DefaultLayout(), &bytes.Buffer{}, logger)

	path := filepath.Join(t.TempDir(), "2019-Oct_Nov_Dec.tex")
	result, err := gen.Generate(path, false)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !result.Written {
		t.Error("Written = false, want true")
	}
	if result.NumberOfRows != 36 {
		t.Errorf("NumberOfRows = %d, want 36", result.NumberOfRows)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != result.Lines {
		t.Errorf("file has %d lines, want %d", got, result.Lines)
	}
	if !strings.HasPrefix(string(data), `\documentclass[a4paper]{article}`) {
		t.Errorf("file does not start with the document class")
	}
}

func TestGenerator_GenerateStdout(t *testing.T) {
	var out bytes.Buffer
	gen := NewGenerator(dateutil.Tuesday, autumn, latex.DefaultLayout(), &out, zap.NewNop())

	if _, err := gen.Generate(StdoutDestination, false); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.HasSuffix(out.String(), "\\end{document}\n") {
		t.Errorf("stdout output does not end with the closing line")
	}
}

func TestGenerator_DryRun(t *testing.T) {
	gen := NewGenerator(dateutil.Tuesday, autumn, latex.DefaultLayout(), &bytes.Buffer{}, zap.NewNop())

	path := filepath.Join(t.TempDir(), "dry.tex")
	result, err := gen.Generate(path, true)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.Written {
		t.Error("Written = true on dry run")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("dry run created %s", path)
	}
}

func TestGenerator_InvalidMonth(t *testing.T) {
	months := autumn
	months[2].Days = 40
	gen := NewGenerator(dateutil.Tuesday, months, latex.DefaultLayout(), &bytes.Buffer{}, zap.NewNop())

	path := filepath.Join(t.TempDir(), "never.tex")
	_, err := gen.Generate(path, false)
	if !errors.Is(err, calendar.ErrInvalidMonthData) {
		t.Fatalf("Generate() error = %v, want ErrInvalidMonthData", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("invalid input still created %s", path)
	}
}

func TestGenerator_WriteFailure(t *testing.T) {
	gen := NewGenerator(dateutil.Tuesday, autumn, latex.DefaultLayout(), &bytes.Buffer{}, zap.NewNop())

	_, err := gen.Generate(t.TempDir(), false)
	if !errors.Is(err, latex.ErrDestinationWrite) {
		t.Errorf("Generate(dir) error = %v, want ErrDestinationWrite", err)
	}
}
