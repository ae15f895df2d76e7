package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"contactnorm/internal/models"
)

// Writer emits normalization results as a delimited table with the same
// shape as the input. Whether skipped rows appear (with their raw values)
// is an output policy, not an engine concern.
type Writer struct {
	delimiter      rune
	includeSkipped bool
}

// NewWriter creates a writer. A zero delimiter falls back to the default.
func NewWriter(delimiter rune, includeSkipped bool) *Writer {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	return &Writer{delimiter: delimiter, includeSkipped: includeSkipped}
}

// WriteFile writes all results to the file at path, creating parent
// directories as needed.
func (w *Writer) WriteFile(path string, results []models.NormalizationResult) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := w.Write(f, results); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Write emits the header plus one row per result to dst.
func (w *Writer) Write(dst io.Writer, results []models.NormalizationResult) error {
	cw := csv.NewWriter(dst)
	cw.Comma = w.delimiter

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, res := range results {
		if res.Status == models.StatusSkipped && !w.includeSkipped {
			continue
		}

		if err := cw.Write([]string{res.ID, res.Phone, res.DOB}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}
