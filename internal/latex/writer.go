package latex

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ErrDestinationWrite is returned when the output cannot be written
var ErrDestinationWrite = errors.New("failed to write document")

// Write writes every document line followed by a newline to w
func Write(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	for _, line := range doc.lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("%w: %v", ErrDestinationWrite, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %v", ErrDestinationWrite, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrDestinationWrite, err)
	}
	return nil
}

// FileWriter writes documents to files
type FileWriter struct {
	logger *zap.Logger
}

// NewFileWriter creates a new FileWriter
func NewFileWriter(logger *zap.Logger) *FileWriter {
	return &FileWriter{logger: logger}
}

// WriteFile writes doc to path, creating parent directories as needed.
// The file is closed on every path; a failed write is not retried.
func (fw *FileWriter) WriteFile(path string, doc Document) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: failed to create %s: %v", ErrDestinationWrite, dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: failed to open %s: %v", ErrDestinationWrite, path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: failed to close %s: %v", ErrDestinationWrite, path, closeErr)
		}
	}()

	if err := Write(f, doc); err != nil {
		fw.logger.Error("Document write failed",
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%s: %w", path, err)
	}

	fw.logger.Info("Document written",
		zap.String("path", path),
		zap.Int("lines", doc.Len()))

	return nil
}
