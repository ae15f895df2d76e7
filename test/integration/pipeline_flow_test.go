package integration

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"contactnorm/internal/config"
	"contactnorm/internal/csvio"
	"contactnorm/internal/models"
	"contactnorm/internal/normalizer"
	"contactnorm/internal/pipeline"
)

func loadFixture(t *testing.T) []models.Record {
	t.Helper()

	fixturePath := filepath.Join("..", "fixtures", "contacts.csv")

	records, err := csvio.NewReader(0).ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}

	return records
}

func TestPipeline_EndToEnd(t *testing.T) {
	cfg := config.Default()
	records := loadFixture(t)

	if len(records) != 10 {
		t.Fatalf("Expected 10 fixture records, got %d", len(records))
	}

	proc := normalizer.NewProcessor(cfg.PhonePolicy(), cfg.DatePolicy())
	results, summary := pipeline.Run(context.Background(), proc, records, cfg.Workers)

	if summary.Total != 10 {
		t.Fatalf("Total = %d, want 10", summary.Total)
	}

	if summary.Normalized != 7 {
		t.Errorf("Normalized = %d, want 7", summary.Normalized)
	}

	if summary.Skipped != 3 {
		t.Errorf("Skipped = %d, want 3", summary.Skipped)
	}

	if summary.Total != summary.Normalized+summary.Skipped {
		t.Errorf("Summary invariant broken: %+v", summary)
	}

	// Spot-check canonical rewrites.
	wantNormalized := map[string][2]string{
		"C1001": {"+971501234567", "1990-02-01"},
		"C1002": {"+971501234568", "1990-02-13"},
		"C1003": {"+971501234569", "1990-01-05"},
		"C1004": {"+971501234570", "1990-02-13"},
		"C1008": {"+971501234573", "1990-02-13"},
		"C1009": {"+971501234574", "1977-02-01"},
		"C1010": {"+971501234575", "1990-01-05"},
	}

	for _, res := range results {
		want, ok := wantNormalized[res.ID]
		if !ok {
			continue
		}

		if res.Status != models.StatusNormalized {
			t.Errorf("%s: status = %v (reason %q)", res.ID, res.Status, res.Reason)

			continue
		}

		if res.Phone != want[0] || res.DOB != want[1] {
			t.Errorf("%s: got (%q, %q), want (%q, %q)", res.ID, res.Phone, res.DOB, want[0], want[1])
		}
	}

	// Skip reasons name the failing field.
	reasonByID := map[string]string{}
	for _, r := range summary.Reasons {
		reasonByID[r.ID] = r.Reason
	}

	if !strings.Contains(reasonByID["C1005"], "phone:") {
		t.Errorf("C1005 reason = %q, want phone failure", reasonByID["C1005"])
	}

	if !strings.Contains(reasonByID["C1006"], "dob:") {
		t.Errorf("C1006 reason = %q, want dob failure", reasonByID["C1006"])
	}

	if !strings.Contains(reasonByID[""], "missing id") {
		t.Errorf("blank-id reason = %q, want missing id", reasonByID[""])
	}
}

func TestPipeline_EndToEnd_ParallelMatchesSequential(t *testing.T) {
	cfg := config.Default()
	records := loadFixture(t)
	proc := normalizer.NewProcessor(cfg.PhonePolicy(), cfg.DatePolicy())

	seqResults, seqSummary := pipeline.Run(context.Background(), proc, records, 0)

	for _, workers := range []int{1, 2, 3, 4, 100} {
		results, summary := pipeline.Run(context.Background(), proc, records, workers)

		if !reflect.DeepEqual(results, seqResults) {
			t.Fatalf("workers=%d: results differ from sequential run", workers)
		}

		if !reflect.DeepEqual(summary, seqSummary) {
			t.Fatalf("workers=%d: summary differs from sequential run", workers)
		}
	}
}

func TestPipeline_EndToEnd_WriteAndReread(t *testing.T) {
	cfg := config.Default()
	records := loadFixture(t)
	proc := normalizer.NewProcessor(cfg.PhonePolicy(), cfg.DatePolicy())

	results, _ := pipeline.Run(context.Background(), proc, records, 2)

	outPath := filepath.Join(t.TempDir(), "normalized_contacts.csv")

	if err := csvio.NewWriter(0, false).WriteFile(outPath, results); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	reread, err := csvio.NewReader(0).ReadFile(outPath)
	if err != nil {
		t.Fatalf("Failed to re-read output: %v", err)
	}

	// Skipped rows were omitted; everything left is canonical.
	if len(reread) != 7 {
		t.Fatalf("Expected 7 output rows, got %d", len(reread))
	}

	for _, rec := range reread {
		if !strings.HasPrefix(rec.Phone, "+") {
			t.Errorf("%s: phone %q not canonical", rec.ID, rec.Phone)
		}

		if len(rec.DOB) != 10 || rec.DOB[4] != '-' || rec.DOB[7] != '-' {
			t.Errorf("%s: dob %q not canonical", rec.ID, rec.DOB)
		}
	}
}
