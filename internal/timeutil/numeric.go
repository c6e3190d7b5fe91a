package timeutil

import (
	"math"
	"strconv"
	"strings"

	"github.com/ahmetb/friendly-dates/internal/locale"
)

// smallNumberWords spells out counts one through ten. "a" reads naturally in
// both "a minute ago" and "in a minute".
var smallNumberWords = [...]string{
	1: "a", 2: "two", 3: "three", 4: "four", 5: "five",
	6: "six", 7: "seven", 8: "eight", 9: "nine", 10: "ten",
}

// renderCount renders n as a word when useWords is set and n is between 1
// and 10, otherwise as digits grouped with the locale's separators.
func renderCount(n int64, useWords bool, cfg *locale.Config) string {
	if useWords && n >= 1 && n <= 10 {
		return smallNumberWords[n]
	}
	var nf *locale.NumberFormat
	if cfg != nil {
		nf = cfg.NumberFormat
	}
	return groupDigits(strconv.FormatInt(n, 10), nf)
}

// groupDigits inserts nf.ThousandsSeparator every three integer digits of a
// plain decimal number and swaps the decimal point for nf.DecimalSeparator.
func groupDigits(num string, nf *locale.NumberFormat) string {
	if nf == nil {
		return num
	}
	sign := ""
	if strings.HasPrefix(num, "-") {
		sign, num = "-", num[1:]
	}
	intPart, frac, hasFrac := strings.Cut(num, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(nf.ThousandsSeparator)
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteString(nf.DecimalSeparator)
		b.WriteString(frac)
	}
	return b.String()
}

// roundHalfUp rounds x to the nearest integer, with ties going towards
// positive infinity.
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
