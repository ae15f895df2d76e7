package normalizer

import (
	"errors"
	"testing"
	"time"
)

func newTestDateNormalizer() *DateNormalizer {
	n := NewDateNormalizer(DefaultDatePolicy())
	// Pin "now" so future-date checks are stable.
	n.now = func() time.Time {
		return time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	}

	return n
}

func TestDateNormalizer_Normalize(t *testing.T) {
	n := newTestDateNormalizer()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Already canonical", "1990-02-01", "1990-02-01"},
		{"Day-first default", "01/02/1990", "1990-02-01"},
		{"Day forced by first slot", "13/02/1990", "1990-02-13"},
		{"Day forced by second slot", "02/13/1990", "1990-02-13"},
		{"Two-digit year below pivot", "01/02/20", "2020-02-01"},
		{"Two-digit year above pivot", "01/02/77", "1977-02-01"},
		{"Dash separators", "5-1-1990", "1990-01-05"},
		{"Dot separators", "05.01.1990", "1990-01-05"},
		{"Year first", "1990/02/13", "1990-02-13"},
		{"Year first month-then-day", "1990/02/01", "1990-02-01"},
		{"Year first dot separators", "1990.02.01", "1990-02-01"},
		{"Year first unpadded", "1990-2-1", "1990-02-01"},
		{"Year first day forced by last slot", "1990/13/02", "1990-02-13"},
		{"Textual month abbreviation", "05-Jan-1990", "1990-01-05"},
		{"Textual month full name", "5 January 1990", "1990-01-05"},
		{"Textual month comma form", "Jan 5, 1990", "1990-01-05"},
		{"Textual month year first", "1990 Jan 5", "1990-01-05"},
		{"Textual month two-digit year", "05-Jan-90", "1990-01-05"},
		{"Compact form", "19900105", "1990-01-05"},
		{"Leap day", "29/02/2020", "2020-02-29"},
		{"Whitespace around input", "  01/02/1990  ", "1990-02-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.raw)
			if err != nil {
				t.Fatalf("Normalize(%q) returned unexpected error: %v", tt.raw, err)
			}

			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDateNormalizer_Normalize_Errors(t *testing.T) {
	n := newTestDateNormalizer()

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"No Feb 30", "1990-02-30", ErrInvalidCalendarDate},
		{"No Feb 30 numeric", "30/02/1990", ErrInvalidCalendarDate},
		{"Leap day in non-leap year", "29/02/2019", ErrInvalidCalendarDate},
		{"Month zero", "1990-00-10", ErrInvalidCalendarDate},
		{"Day zero", "00/05/1990", ErrInvalidCalendarDate},
		{"Both slots above twelve", "13/14/1990", ErrInvalidCalendarDate},
		{"Future date", "2030-01-01", ErrInvalidCalendarDate},
		{"Empty input", "", ErrUnparsableDate},
		{"Two components", "05/1990", ErrUnparsableDate},
		{"Four components", "1/2/3/4", ErrUnparsableDate},
		{"Unknown month name", "05-Foo-1990", ErrUnparsableDate},
		{"Two month names", "Jan-Feb-1990", ErrUnparsableDate},
		{"Free text", "born in spring", ErrUnparsableDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.Normalize(tt.raw)
			if err == nil {
				t.Fatalf("Normalize(%q) expected error but got nil", tt.raw)
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Normalize(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
		})
	}
}

func TestDateNormalizer_PivotBoundaries(t *testing.T) {
	n := newTestDateNormalizer()

	tests := []struct {
		raw  string
		want string
	}{
		{"01/02/00", "2000-02-01"},
		{"01/02/25", "2025-02-01"},
		{"01/02/26", "1926-02-01"},
		{"01/02/99", "1999-02-01"},
	}

	for _, tt := range tests {
		got, err := n.Normalize(tt.raw)
		if err != nil {
			t.Fatalf("Normalize(%q) returned unexpected error: %v", tt.raw, err)
		}

		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDateNormalizer_Idempotent(t *testing.T) {
	n := newTestDateNormalizer()

	once, err := n.Normalize("13/02/1990")
	if err != nil {
		t.Fatalf("Normalize returned unexpected error: %v", err)
	}

	twice, err := n.Normalize(once)
	if err != nil {
		t.Fatalf("Normalize(%q) returned unexpected error: %v", once, err)
	}

	if twice != once {
		t.Errorf("Normalize not idempotent: first %q, second %q", once, twice)
	}
}
