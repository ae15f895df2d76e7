// Package pipeline runs the normalization engine over a record sequence,
// optionally fanning processing out across worker goroutines while keeping
// output in input order.
package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"contactnorm/internal/models"
	"contactnorm/internal/normalizer"
)

// Run processes records in order and returns one result per record plus the
// aggregated summary. workers <= 1 runs sequentially. Larger values are
// silently clamped to the number of available CPUs (and to the record
// count); requesting more than available is never an error.
func Run(ctx context.Context, proc *normalizer.Processor, records []models.Record, workers int) ([]models.NormalizationResult, models.Summary) {
	if n := runtime.NumCPU(); workers > n {
		workers = n
	}

	if workers > len(records) {
		workers = len(records)
	}

	if workers <= 1 {
		return runSequential(proc, records)
	}

	chunks := Partition(records, workers)
	partialResults := make([][]models.NormalizationResult, len(chunks))
	partialSummaries := make([]models.Summary, len(chunks))

	g, _ := errgroup.WithContext(ctx)

	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			results := make([]models.NormalizationResult, 0, len(chunk))

			var summary models.Summary

			for _, rec := range chunk {
				res := proc.Process(rec)
				results = append(results, res)
				summary.Add(res)
			}

			partialResults[i] = results
			partialSummaries[i] = summary

			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	// Reassemble by chunk index, not completion order.
	results := make([]models.NormalizationResult, 0, len(records))

	var summary models.Summary

	for i := range chunks {
		results = append(results, partialResults[i]...)
		summary.Merge(partialSummaries[i])
	}

	return results, summary
}

// Partition splits records into n contiguous chunks whose concatenation in
// index order is the original sequence. Leading chunks absorb the remainder
// when the split is uneven.
func Partition(records []models.Record, n int) [][]models.Record {
	if n < 1 {
		n = 1
	}

	if n > len(records) {
		n = len(records)
	}

	chunks := make([][]models.Record, 0, n)
	size := len(records) / n
	rem := len(records) % n
	start := 0

	for i := 0; i < n; i++ {
		end := start + size
		if i < rem {
			end++
		}

		chunks = append(chunks, records[start:end])
		start = end
	}

	return chunks
}

func runSequential(proc *normalizer.Processor, records []models.Record) ([]models.NormalizationResult, models.Summary) {
	results := make([]models.NormalizationResult, 0, len(records))

	var summary models.Summary

	for _, rec := range records {
		res := proc.Process(rec)
		results = append(results, res)
		summary.Add(res)
	}

	return results, summary
}
