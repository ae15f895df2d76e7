package utils

import "testing"

func TestStripBOM(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Leading BOM", "\uFEFFid", "id"},
		{"No BOM", "id", "id"},
		{"BOM only", "\uFEFF", ""},
		{"BOM not leading", "id\uFEFF", "id\uFEFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripBOM(tt.in); got != tt.want {
				t.Errorf("StripBOM(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanField(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Surrounding whitespace", "  C1001  ", "C1001"},
		{"Internal runs collapsed", "C  1001\t2", "C 1001 2"},
		{"Whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanField(tt.in); got != tt.want {
				t.Errorf("CleanField(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("abcdef", 4); got != "abcd..." {
		t.Errorf("TruncateString = %q, want %q", got, "abcd...")
	}

	if got := TruncateString("abc", 4); got != "abc" {
		t.Errorf("TruncateString = %q, want %q", got, "abc")
	}
}
