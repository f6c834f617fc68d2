// Package display renders the client's statistics line. The collision
// probability is the birthday approximation for a 122-bit random space,
// p = n² / 1.06e37 × 100 (percent), shown with one significant digit.
package display

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// space is 2 × 2^122 rounded, the denominator of the approximation.
const space = 1.06e37

// CompactWidth is the terminal width below which the scientific form is used.
const CompactWidth = 80

// CollisionProbability returns the percentage chance that at least one
// collision occurred among n random UUIDs. It is 0 for n <= 1.
func CollisionProbability(n int64) float64 {
	if n <= 1 {
		return 0
	}
	f := float64(n)
	return f * f / space * 100
}

// FormatProbability renders CollisionProbability(n). Values below 1% keep a
// single significant digit, either expanded ("0.0004%") or, when compact is
// set, in scientific form ("4*10^-4%").
func FormatProbability(n int64, compact bool) string {
	p := CollisionProbability(n)
	if p == 0 {
		return "0%"
	}

	if p >= 1 {
		p = math.Min(p, 100)
		return strconv.FormatFloat(math.Round(p*100)/100, 'f', -1, 64) + "%"
	}

	coeff, exp := splitExponent(p)

	if compact {
		return fmt.Sprintf("%s*10^%d%%", coeff, exp)
	}
	if exp >= 0 {
		return coeff + "%"
	}
	return "0." + strings.Repeat("0", -exp-1) + coeff + "%"
}

// splitExponent returns the one-digit coefficient and the decimal exponent
// of p, e.g. 3.7e-35 -> ("4", -35).
func splitExponent(p float64) (string, int) {
	s := strconv.FormatFloat(p, 'e', 0, 64)
	coeff, expPart, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(expPart)
	return coeff, exp
}

// IsCompactTerminal reports whether stdout is a terminal narrower than
// CompactWidth. Non-terminals get the expanded form.
func IsCompactTerminal() bool {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return false
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return false
	}
	return width < CompactWidth
}
