package models

// Summary accumulates run counters. Total always equals Normalized + Skipped.
type Summary struct {
	Total      int
	Normalized int
	Skipped    int
	Reasons    []SkipReason
}

// Add folds one result into the summary.
func (s *Summary) Add(r NormalizationResult) {
	s.Total++

	if r.Status == StatusSkipped {
		s.Skipped++
		s.Reasons = append(s.Reasons, SkipReason{ID: r.ID, Reason: r.Reason})

		return
	}

	s.Normalized++
}

// Merge combines a partial summary into this one, appending its reasons
// after any already recorded.
func (s *Summary) Merge(other Summary) {
	s.Total += other.Total
	s.Normalized += other.Normalized
	s.Skipped += other.Skipped
	s.Reasons = append(s.Reasons, other.Reasons...)
}

// SuccessRate returns the normalized percentage, 0 for an empty run.
func (s *Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}

	return float64(s.Normalized) / float64(s.Total) * 100
}
