// Package normalizer provides the contact normalization engine: heuristic
// phone and date-of-birth rewriting plus per-record classification.
package normalizer

import (
	"fmt"
	"strings"

	"contactnorm/internal/models"
	"contactnorm/pkg/utils"
)

// Processor classifies records as normalized or skipped. It is stateless
// after construction and safe for concurrent use on disjoint records.
type Processor struct {
	phone *PhoneNormalizer
	date  *DateNormalizer
}

// NewProcessor creates a processor with the given field policies.
func NewProcessor(phonePolicy PhonePolicy, datePolicy DatePolicy) *Processor {
	return &Processor{
		phone: NewPhoneNormalizer(phonePolicy),
		date:  NewDateNormalizer(datePolicy),
	}
}

// Process maps one record to exactly one result. Field failures degrade to a
// skip with a reason; Process itself never fails.
func (p *Processor) Process(rec models.Record) models.NormalizationResult {
	id := utils.CleanField(rec.ID)
	rawPhone := strings.TrimSpace(rec.Phone)
	rawDOB := strings.TrimSpace(rec.DOB)

	if id == "" {
		return models.NormalizationResult{
			Phone:  rawPhone,
			DOB:    rawDOB,
			Status: models.StatusSkipped,
			Reason: "missing id",
		}
	}

	var reasons []string

	phone, err := p.phone.Normalize(rawPhone)
	if err != nil {
		reasons = append(reasons, fmt.Sprintf("phone: %v", err))
	}

	dob, err := p.date.Normalize(rawDOB)
	if err != nil {
		reasons = append(reasons, fmt.Sprintf("dob: %v", err))
	}

	if len(reasons) > 0 {
		return models.NormalizationResult{
			ID:     id,
			Phone:  rawPhone,
			DOB:    rawDOB,
			Status: models.StatusSkipped,
			Reason: strings.Join(reasons, "; "),
		}
	}

	return models.NormalizationResult{
		ID:     id,
		Phone:  phone,
		DOB:    dob,
		Status: models.StatusNormalized,
	}
}
