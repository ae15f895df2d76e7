// Package main provides the seed command-line tool. It generates a sample
// contacts CSV with a configurable mix of clean and malformed rows, for
// manual pipeline runs and benchmarking.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
)

// Config holds the seeder configuration.
type Config struct {
	OutputPath string
	Rows       int
	DirtyRatio float64
	Seed       int64
}

func logInfo(msg string) {
	fmt.Printf("%s[SEED]%s %s\n", colorGreen, colorReset, msg)
}

func logWarn(msg string) {
	fmt.Printf("%s[SEED]%s %s\n", colorYellow, colorReset, msg)
}

func logError(msg string) {
	fmt.Printf("%s[SEED]%s %s\n", colorRed, colorReset, msg)
}

func main() {
	cfg := parseConfig()

	if cfg.Rows < 1 {
		logError("-rows must be at least 1")
		os.Exit(1)
	}

	if cfg.DirtyRatio < 0 || cfg.DirtyRatio > 1 {
		logError("-dirty-ratio must be between 0 and 1")
		os.Exit(1)
	}

	if err := generate(cfg); err != nil {
		logError(fmt.Sprintf("Generation failed: %v", err))
		os.Exit(1)
	}

	logInfo(fmt.Sprintf("Wrote %d rows to %s (dirty ratio %.2f)", cfg.Rows, cfg.OutputPath, cfg.DirtyRatio))
}

func parseConfig() Config {
	outputPath := flag.String("output", "./data/contacts_sample.csv", "Output CSV path")
	rows := flag.Int("rows", 1000, "Number of data rows to generate")
	dirtyRatio := flag.Float64("dirty-ratio", 0.2, "Fraction of rows with malformed fields")
	seed := flag.Int64("seed", 42, "Random seed (fixed for reproducible files)")
	flag.Parse()

	return Config{
		OutputPath: *outputPath,
		Rows:       *rows,
		DirtyRatio: *dirtyRatio,
		Seed:       *seed,
	}
}

func generate(cfg Config) error {
	if dir := filepath.Dir(cfg.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write([]string{"id", "phone", "dob"}); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	dirty := 0

	for i := 1; i <= cfg.Rows; i++ {
		id := "C" + strconv.Itoa(100000+i)
		phone := cleanPhone(rng)
		dob := cleanDOB(rng)

		if rng.Float64() < cfg.DirtyRatio {
			dirty++

			switch rng.Intn(3) {
			case 0:
				phone = dirtyPhone(rng)
			case 1:
				dob = dirtyDOB(rng)
			default:
				id = ""
			}
		}

		if err := w.Write([]string{id, phone, dob}); err != nil {
			return err
		}
	}

	w.Flush()

	if dirty == 0 && cfg.DirtyRatio > 0 {
		logWarn("No dirty rows generated; try a larger -rows")
	}

	return w.Error()
}

func cleanPhone(rng *rand.Rand) string {
	subscriber := fmt.Sprintf("5%08d", rng.Intn(100000000))

	switch rng.Intn(4) {
	case 0:
		return "+971" + subscriber
	case 1:
		return "0" + subscriber
	case 2:
		return "00971" + subscriber
	default:
		return fmt.Sprintf("0%s %s %s", subscriber[:1], subscriber[1:5], subscriber[5:])
	}
}

func dirtyPhone(rng *rand.Rand) string {
	switch rng.Intn(3) {
	case 0:
		return "call-me-maybe"
	case 1:
		return strconv.Itoa(rng.Intn(99999)) // too short for any format
	default:
		return "+9715" + strconv.Itoa(rng.Intn(9)) // far below E.164 minimum
	}
}

func cleanDOB(rng *rand.Rand) string {
	year := 1950 + rng.Intn(60)
	month := 1 + rng.Intn(12)
	day := 1 + rng.Intn(28)

	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	switch rng.Intn(4) {
	case 0:
		return fmt.Sprintf("%02d/%02d/%d", day, month, year)
	case 1:
		return fmt.Sprintf("%d-%02d-%02d", year, month, day)
	case 2:
		return fmt.Sprintf("%d-%d-%02d", day, month, year%100)
	default:
		return fmt.Sprintf("%02d-%s-%d", day, months[month-1], year)
	}
}

func dirtyDOB(rng *rand.Rand) string {
	switch rng.Intn(3) {
	case 0:
		return "30/02/1990" // no Feb 30
	case 1:
		return "sometime in the 80s"
	default:
		return fmt.Sprintf("%d/%d", 1+rng.Intn(12), 1980+rng.Intn(20)) // two components
	}
}
