// Package formatter renders the run summary as an aligned text report.
package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"contactnorm/internal/models"
	"contactnorm/pkg/utils"
)

const (
	bannerWidth = 60

	// maxReasonWidth caps reason cells so a pathological raw value quoted
	// inside an error cannot blow up the report layout.
	maxReasonWidth = 120
)

// Summary renders counters, success rate and per-row skip reasons as a
// plain-text report suitable for terminal output.
func Summary(s models.Summary, elapsed time.Duration) string {
	var b strings.Builder

	banner := strings.Repeat("=", bannerWidth)

	b.WriteString(banner + "\n")
	b.WriteString("NORMALIZATION SUMMARY\n")
	b.WriteString(banner + "\n")

	counters := [][]string{
		{"Rows processed:", strconv.Itoa(s.Total)},
		{"Normalized:", strconv.Itoa(s.Normalized)},
		{"Skipped:", strconv.Itoa(s.Skipped)},
		{"Success rate:", fmt.Sprintf("%.2f%%", s.SuccessRate())},
	}

	if elapsed > 0 {
		counters = append(counters, []string{"Elapsed:", elapsed.Round(time.Millisecond).String()})
	}

	writeAligned(&b, counters, "")

	if len(s.Reasons) > 0 {
		b.WriteString("\nSkipped rows (with reasons):\n")

		rows := make([][]string, 0, len(s.Reasons))

		for _, r := range s.Reasons {
			id := r.ID
			if id == "" {
				id = "unknown"
			}

			rows = append(rows, []string{id, utils.TruncateString(r.Reason, maxReasonWidth)})
		}

		writeAligned(&b, rows, "  - ")
	}

	b.WriteString(banner + "\n")

	return b.String()
}

// writeAligned pads every column but the last to the widest cell in that
// column, measured by display width so wide runes line up.
func writeAligned(b *strings.Builder, rows [][]string, prefix string) {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	widths := make([]int, colCount)

	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for _, row := range rows {
		b.WriteString(prefix)

		for i, cell := range row {
			b.WriteString(cell)

			if i == len(row)-1 {
				break
			}

			if padding := widths[i] - runewidth.StringWidth(cell); padding > 0 {
				b.WriteString(strings.Repeat(" ", padding))
			}

			b.WriteString(" ")
		}

		b.WriteString("\n")
	}
}
