// Package models defines the contact record types shared across the pipeline.
package models

// Status classifies the outcome of normalizing a single record.
type Status string

// Record statuses.
const (
	StatusNormalized Status = "normalized"
	StatusSkipped    Status = "skipped"
)

// Record is one input row: an opaque id plus raw phone and date-of-birth
// strings, exactly as they appeared in the source table.
type Record struct {
	ID    string
	Phone string
	DOB   string
}

// NormalizationResult is the outcome of processing one Record. Phone and DOB
// hold canonical values when Status is StatusNormalized; for skipped records
// the original raw values are retained for audit.
type NormalizationResult struct {
	ID     string
	Phone  string
	DOB    string
	Status Status
	Reason string
}

// SkipReason pairs a record id with the reason the record was skipped.
type SkipReason struct {
	ID     string
	Reason string
}
