package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const infinity = "Infinity"

// ParseNumber parses the longest numeric prefix of s, ignoring anything after
// it. A string without a numeric prefix parses to NaN.
func ParseNumber(s string) float64 {
	prefix := numericPrefix(strings.TrimLeftFunc(s, unicode.IsSpace))
	if prefix == "" {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// Out of range values come back as ±Inf or ±0 along with ErrRange.
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

// numericPrefix returns the part of s matching [+-]?(Infinity|D+(.D*)?|.D+)(e[+-]?D+)?
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if strings.HasPrefix(s[i:], infinity) {
		return s[:i+len(infinity)]
	}

	intDigits := countDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if n := countDigits(s[j:]); n > 0 {
			i = j + n
		}
	}

	return strings.TrimSuffix(s[:i], ".")
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// FormatNumber renders f the way the display shows numbers: the shortest
// decimal that round-trips, exponent form outside [1e-6, 1e21), and
// Infinity, -Infinity or NaN for non-finite values.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return infinity
	case math.IsInf(f, -1):
		return "-" + infinity
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimExponent turns "1.5e-07" into "1.5e-7"
func trimExponent(s string) string {
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok || len(exp) < 2 {
		return s
	}
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
