package normalizer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Phone normalization errors.
var (
	ErrNonNumericInput    = errors.New("phone contains non-numeric input")
	ErrInvalidLength      = errors.New("phone has invalid length")
	ErrUnrecognizedFormat = errors.New("phone format not recognized")
)

// E.164 bounds: total digits after the leading '+'.
const (
	e164MinDigits = 8
	e164MaxDigits = 15
)

// PhonePolicy captures the single local-number assumption: numbers written
// with a trunk '0' and no country code get DefaultCountryCode prepended, and
// must carry between LocalMinDigits and LocalMaxDigits subscriber digits
// once the trunk prefix is dropped.
type PhonePolicy struct {
	DefaultCountryCode string
	LocalMinDigits     int
	LocalMaxDigits     int
}

// DefaultPhonePolicy assumes UAE numbering (+971, 9-10 subscriber digits).
func DefaultPhonePolicy() PhonePolicy {
	return PhonePolicy{
		DefaultCountryCode: "971",
		LocalMinDigits:     9,
		LocalMaxDigits:     10,
	}
}

// PhoneNormalizer rewrites free-form phone strings into E.164. It is a
// heuristic normalizer: prefix detection plus length checks, no
// numbering-plan lookups.
type PhoneNormalizer struct {
	policy           PhonePolicy
	separatorPattern *regexp.Regexp
	digitsPattern    *regexp.Regexp
}

// NewPhoneNormalizer creates a phone normalizer with the given policy.
func NewPhoneNormalizer(policy PhonePolicy) *PhoneNormalizer {
	return &PhoneNormalizer{
		policy:           policy,
		separatorPattern: regexp.MustCompile(`[\s.()\-]+`),
		digitsPattern:    regexp.MustCompile(`^[0-9]+$`),
	}
}

// Normalize converts raw input to +<country><subscriber> or reports why it
// cannot. Separators (spaces, dashes, dots, parentheses) are stripped first;
// any other non-digit residue is rejected.
func (n *PhoneNormalizer) Normalize(raw string) (string, error) {
	cleaned := n.separatorPattern.ReplaceAllString(strings.TrimSpace(raw), "")

	hasPlus := strings.HasPrefix(cleaned, "+")
	if hasPlus {
		cleaned = cleaned[1:]
	}

	if cleaned == "" {
		return "", fmt.Errorf("%w: empty input", ErrUnrecognizedFormat)
	}

	if !n.digitsPattern.MatchString(cleaned) {
		return "", fmt.Errorf("%w: %q", ErrNonNumericInput, raw)
	}

	switch {
	case hasPlus:
		return n.international(cleaned)

	case strings.HasPrefix(cleaned, "00"):
		// International dialing prefix convention: 00<country><subscriber>.
		return n.international(cleaned[2:])

	case strings.HasPrefix(cleaned, "0"):
		// Trunk-prefixed local number: drop the 0, assume the default
		// country code.
		subscriber := cleaned[1:]
		if len(subscriber) < n.policy.LocalMinDigits || len(subscriber) > n.policy.LocalMaxDigits {
			return "", fmt.Errorf("%w: %d subscriber digits after trunk prefix", ErrInvalidLength, len(subscriber))
		}

		return "+" + n.policy.DefaultCountryCode + subscriber, nil

	default:
		// No recognizable prefix. A digit string of plausible direct-dial
		// length is taken as an international number missing its '+'
		// (covers bare country-code forms like 9715xxxxxxxx).
		if len(cleaned) < e164MinDigits || len(cleaned) > e164MaxDigits {
			return "", fmt.Errorf("%w: %q", ErrUnrecognizedFormat, raw)
		}

		return "+" + cleaned, nil
	}
}

func (n *PhoneNormalizer) international(digits string) (string, error) {
	if len(digits) < e164MinDigits || len(digits) > e164MaxDigits {
		return "", fmt.Errorf("%w: %d digits", ErrInvalidLength, len(digits))
	}

	return "+" + digits, nil
}
