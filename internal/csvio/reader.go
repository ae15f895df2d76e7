// Package csvio reads and writes the delimited contact tables consumed and
// produced by the normalization pipeline.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"contactnorm/internal/models"
	"contactnorm/pkg/utils"
)

// DefaultDelimiter separates fields in the contact tables.
const DefaultDelimiter = ';'

// Input errors. These are the only fatal input conditions; malformed field
// values inside rows are the engine's concern, not the reader's.
var (
	ErrEmptyInput = errors.New("input is empty or has no header")
	ErrBadHeader  = errors.New("unexpected header")
)

var header = []string{"id", "phone", "dob"}

// Reader loads contact records from a delimited table.
type Reader struct {
	delimiter rune
}

// NewReader creates a reader. A zero delimiter falls back to the default.
func NewReader(delimiter rune) *Reader {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	return &Reader{delimiter: delimiter}
}

// ReadFile loads all records from the file at path.
func (r *Reader) ReadFile(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return r.Read(f)
}

// Read loads all records from src. The first row must be the id;phone;dob
// header (case-insensitive, leading BOM tolerated).
func (r *Reader) Read(src io.Reader) ([]models.Record, error) {
	cr := csv.NewReader(src)
	cr.Comma = r.delimiter
	cr.FieldsPerRecord = -1

	first, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if err := checkHeader(first); err != nil {
		return nil, err
	}

	var records []models.Record

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		records = append(records, rowToRecord(row))
	}

	return records, nil
}

func rowToRecord(row []string) models.Record {
	var rec models.Record

	if len(row) > 0 {
		rec.ID = row[0]
	}

	if len(row) > 1 {
		rec.Phone = row[1]
	}

	if len(row) > 2 {
		rec.DOB = row[2]
	}

	return rec
}

func checkHeader(got []string) error {
	if len(got) < len(header) {
		return fmt.Errorf("%w: got %d columns, want %d", ErrBadHeader, len(got), len(header))
	}

	for i, want := range header {
		col := strings.ToLower(strings.TrimSpace(utils.StripBOM(got[i])))
		if col != want {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i, got[i], want)
		}
	}

	return nil
}
