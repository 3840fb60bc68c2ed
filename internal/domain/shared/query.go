package shared

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Default and maximum result sizes for list queries
const (
	DefaultListLimit = 50
	MaxListLimit     = 2000
)

// ClampLimit returns def when n is not positive and caps n at max.
func ClampLimit(n, def, max int) int {
	if n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// DigitsOnly strips every non-digit rune from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NumericPrefixRange turns a user-typed number fragment into the half-open
// range [n, n*10) used for "starts with" searches over integer columns.
// ok is false when s holds no digits.
func NumericPrefixRange(s string) (lo, hi int64, ok bool) {
	digits := DigitsOnly(s)
	if digits == "" {
		return 0, 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	if n == 0 {
		return 0, 1, true
	}
	if n > math.MaxInt64/10 {
		return n, math.MaxInt64, true
	}
	return n, n * 10, true
}
