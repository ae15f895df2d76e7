// Package main provides the normalizer command-line tool: it reads a
// semicolon-delimited contact table, rewrites phone numbers to E.164 and
// dates of birth to YYYY-MM-DD, and writes the result plus a run summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"contactnorm/internal/config"
	"contactnorm/internal/csvio"
	"contactnorm/internal/formatter"
	"contactnorm/internal/logger"
	"contactnorm/internal/normalizer"
	"contactnorm/internal/pipeline"
)

func main() {
	inputPath := flag.String("input", "", "Path to input CSV (id;phone;dob)")
	outputPath := flag.String("output", "", "Path to output CSV (default: normalized_<input name>)")
	configPath := flag.String("config", "", "Path to YAML config (optional)")
	workers := flag.Int("workers", -1, "Worker count: 0 = sequential, N > 0 = parallel chunks (default: from config)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: normalizer -input <contacts.csv> [-output <out.csv>] [-config <cfg.yaml>] [-workers N]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if *workers >= 0 {
		cfg.Workers = *workers
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	out := *outputPath
	if out == "" {
		out = filepath.Join(filepath.Dir(*inputPath), "normalized_"+filepath.Base(*inputPath))
	}

	log.Info("🚀 Starting contact normalization",
		"input", *inputPath,
		"output", out,
		"workers", cfg.Workers,
	)

	startTime := time.Now()

	// 1. Ingestion
	reader := csvio.NewReader(cfg.DelimiterRune())

	records, err := reader.ReadFile(*inputPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Reading input failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Loaded %d records in %v", len(records), time.Since(startTime)))

	// 2. Normalization
	proc := normalizer.NewProcessor(cfg.PhonePolicy(), cfg.DatePolicy())

	processStart := time.Now()
	results, summary := pipeline.Run(context.Background(), proc, records, cfg.Workers)
	log.Info(fmt.Sprintf("✅ Processed %d records in %v", summary.Total, time.Since(processStart)))

	// 3. Output
	writer := csvio.NewWriter(cfg.DelimiterRune(), cfg.CSV.IncludeSkipped)

	if err := writer.WriteFile(out, results); err != nil {
		log.Error(fmt.Sprintf("❌ Writing output failed: %v", err))
		os.Exit(1)
	}

	fmt.Println()
	fmt.Print(formatter.Summary(summary, time.Since(startTime)))
}
