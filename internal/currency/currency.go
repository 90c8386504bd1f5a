// Package currency converts between the formatted currency strings the
// backend stores ("$100,000") and the plain numbers used while editing.
package currency

import (
	"strconv"
	"strings"
)

// Parse strips the dollar sign and thousands separators and parses the rest
// as a float. ok is false for empty or unparseable input; callers treat that
// as "no value" rather than an error.
func Parse(s string) (v float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Format renders v as "$" plus comma-grouped digits, e.g. 100000 -> "$100,000".
// A fractional part is kept as-is after the decimal point.
func Format(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	b.WriteString(group(intPart))
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

func group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
