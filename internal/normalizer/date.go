package normalizer

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date normalization errors.
var (
	ErrUnparsableDate      = errors.New("date could not be parsed")
	ErrInvalidCalendarDate = errors.New("date is not a valid calendar date")
)

// DatePolicy controls two-digit year expansion: years 00..PivotYear map to
// the 2000s, the rest to the 1900s.
type DatePolicy struct {
	PivotYear int
}

// DefaultDatePolicy uses pivot 25 (00-25 -> 2000-2025, 26-99 -> 1926-1999).
func DefaultDatePolicy() DatePolicy {
	return DatePolicy{PivotYear: 25}
}

// monthNames maps textual month components (lowercased) to month numbers.
var monthNames = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// DateNormalizer rewrites free-form date strings into YYYY-MM-DD.
type DateNormalizer struct {
	policy           DatePolicy
	canonicalPattern *regexp.Regexp
	compactPattern   *regexp.Regexp
	separatorPattern *regexp.Regexp

	// now is swappable for tests; dates of birth past it are rejected.
	now func() time.Time
}

// NewDateNormalizer creates a date normalizer with the given policy.
func NewDateNormalizer(policy DatePolicy) *DateNormalizer {
	return &DateNormalizer{
		policy:           policy,
		canonicalPattern: regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`),
		compactPattern:   regexp.MustCompile(`^\d{8}$`),
		separatorPattern: regexp.MustCompile(`[/\-.,\s]+`),
		now:              time.Now,
	}
}

// Normalize converts raw input to zero-padded YYYY-MM-DD or reports why it
// cannot. Numeric ambiguity resolves day-first unless a component larger
// than 12 forces the day position.
func (n *DateNormalizer) Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty input", ErrUnparsableDate)
	}

	// Already canonical: validate and pass through.
	if m := n.canonicalPattern.FindStringSubmatch(s); m != nil {
		return n.build(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}

	// Compact YYYYMMDD.
	if n.compactPattern.MatchString(s) {
		return n.build(atoi(s[:4]), atoi(s[4:6]), atoi(s[6:8]))
	}

	tokens := n.tokenize(s)
	if len(tokens) != 3 {
		return "", fmt.Errorf("%w: %q has %d components, want 3", ErrUnparsableDate, raw, len(tokens))
	}

	var (
		nums  []int
		month int
	)

	for _, tok := range tokens {
		if v, err := strconv.Atoi(tok); err == nil {
			nums = append(nums, v)

			continue
		}

		m, ok := monthNames[strings.ToLower(tok)]
		if !ok {
			return "", fmt.Errorf("%w: unrecognized component %q", ErrUnparsableDate, tok)
		}

		if month != 0 {
			return "", fmt.Errorf("%w: %q has two month names", ErrUnparsableDate, raw)
		}

		month = m
	}

	if month != 0 {
		// Textual month is unambiguous; only day/year ordering remains.
		day, year := resolveDayYear(nums[0], nums[1])

		return n.build(n.expandYear(year), month, day)
	}

	year, day, month := resolveNumeric(nums[0], nums[1], nums[2])

	return n.build(n.expandYear(year), month, day)
}

func (n *DateNormalizer) tokenize(s string) []string {
	var tokens []string

	for _, tok := range n.separatorPattern.Split(s, -1) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

// resolveNumeric assigns year, day and month slots for an all-numeric
// three-component date:
//   - a component > 31 is the year regardless of position (last position
//     checked first, then first, then middle);
//   - failing that, the third component is the year;
//   - year-first inputs read month-then-day, like the compact YYYYMMDD form;
//   - otherwise, of the two remaining, a component > 12 is the day;
//   - otherwise day-first: earlier component is the day.
func resolveNumeric(first, second, third int) (year, day, month int) {
	switch {
	case third > 31:
		year, day, month = third, first, second
	case first > 31:
		year, day, month = first, third, second
	case second > 31:
		year, day, month = second, first, third
	default:
		year, day, month = third, first, second
	}

	// day/month above follow the day-first default; a >12 component in the
	// month slot forces the swap.
	if month > 12 && day <= 12 {
		day, month = month, day
	}

	return year, day, month
}

// resolveDayYear orders the two numeric components around a textual month:
// a component > 31 is the year, otherwise day comes first.
func resolveDayYear(first, second int) (day, year int) {
	if first > 31 {
		return second, first
	}

	return first, second
}

// expandYear applies the pivot rule to two-digit years.
func (n *DateNormalizer) expandYear(year int) int {
	if year >= 100 {
		return year
	}

	if year <= n.policy.PivotYear {
		return 2000 + year
	}

	return 1900 + year
}

// build validates the triple against the real calendar and formats it.
func (n *DateNormalizer) build(year, month, day int) (string, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidCalendarDate, year, month, day)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		// time.Date normalized an overflow (e.g. Feb 30 -> Mar 1).
		return "", fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidCalendarDate, year, month, day)
	}

	if t.After(n.now()) {
		return "", fmt.Errorf("%w: %s is in the future", ErrInvalidCalendarDate, t.Format("2006-01-02"))
	}

	return t.Format("2006-01-02"), nil
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)

	return v
}
