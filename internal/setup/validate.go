package setup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Validator checks one raw input value. A nil return accepts the value.
type Validator func(string) error

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	urlPattern   = regexp.MustCompile(`^https?://\S+$`)
)

// ValidateEmail accepts addresses of the form local@domain.tld.
func ValidateEmail(v string) error {
	if !emailPattern.MatchString(v) {
		return fmt.Errorf("must be a valid email address")
	}
	return nil
}

// ValidatePort accepts integer literals in [1,65535].
func ValidatePort(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("must be an integer between 1 and 65535")
	}
	return nil
}

// ValidateURL accepts http or https URLs with no whitespace in the body.
func ValidateURL(v string) error {
	if !urlPattern.MatchString(v) {
		return fmt.Errorf("must be an http:// or https:// URL")
	}
	return nil
}

// NonNegativeInt accepts strings consisting solely of decimal digits.
func NonNegativeInt(v string) error {
	if !isDigits(v) {
		return fmt.Errorf("must be a non-negative integer")
	}
	return nil
}

// Required rejects empty input.
func Required(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("a value is required")
	}
	return nil
}

// IntBetween accepts digit strings whose numeric value lies in [lo,hi].
func IntBetween(lo, hi int) Validator {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || !isDigits(v) || n < lo || n > hi {
			return fmt.Errorf("must be an integer between %d and %d", lo, hi)
		}
		return nil
	}
}

// OneOf accepts only exact members of the allowed set.
func OneOf(allowed ...string) Validator {
	return func(v string) error {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
	}
}

// MinLen accepts values of at least n characters.
func MinLen(n int) Validator {
	return func(v string) error {
		if len(v) < n {
			return fmt.Errorf("must be at least %d characters", n)
		}
		return nil
	}
}

func isDigits(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
