package sequence

import (
	"math"
	"strconv"
	"strings"
)

// FractionDigits counts the digits after the first decimal separator in
// text, capped at limit. Text without a separator has none.
func FractionDigits(text, sep string, limit int) int {
	i := strings.Index(text, sep)
	if sep == "" || i < 0 {
		return 0
	}
	return min(len(text)-i-len(sep), limit)
}

// ParseMass parses text as a signed decimal number written with sep as the
// decimal separator. Exponents are accepted; NaN, infinities, hex floats
// and '.' in a locale that does not use it are not.
func ParseMass(text, sep string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	if sep == "" {
		sep = "."
	}
	if sep != "." && strings.Contains(text, ".") {
		return 0, false
	}
	norm := strings.Replace(text, sep, ".", 1)
	for i := 0; i < len(norm); i++ {
		c := norm[i]
		switch {
		case c >= '0' && c <= '9', c == '.', c == '+', c == '-', c == 'e', c == 'E':
		default:
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(norm, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
