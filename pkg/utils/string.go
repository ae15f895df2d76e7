// Package utils provides small string helpers shared across packages.
package utils

import "strings"

const bom = "\uFEFF"

// StripBOM removes a leading UTF-8 byte order mark.
func StripBOM(s string) string {
	return strings.TrimPrefix(s, bom)
}

// CleanField trims surrounding whitespace and collapses internal whitespace
// runs to single spaces.
func CleanField(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateString truncates a string to max length, appending an ellipsis.
func TruncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}

	return s[:maxLength] + "..."
}
