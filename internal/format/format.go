// Package format renders evaluated values for display.
package format

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNotFinite is returned for NaN and infinite values.
var ErrNotFinite = errors.New("value is not finite")

const (
	// SciUpper is the magnitude above which values switch to scientific form.
	SciUpper = 1e9
	// SciLower is the magnitude below which nonzero values switch to
	// scientific form.
	SciLower = 1e-6

	plainDigits    = 10
	mantissaDigits = 6
)

// Format renders v as plain decimal or, for very large or very small
// magnitudes, as <mantissa>E<exponent>. sep replaces the decimal point.
func Format(v float64, sep rune) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrNotFinite
	}
	var s string
	if Scientific(v) {
		s = scientific(v)
	} else {
		s = plain(v)
	}
	if sep != 0 && sep != '.' {
		s = strings.Replace(s, ".", string(sep), 1)
	}
	return s, nil
}

// Scientific reports whether v is rendered in scientific form.
func Scientific(v float64) bool {
	a := math.Abs(v)
	return a > SciUpper || (a != 0 && a < SciLower)
}

func plain(v float64) string {
	s := trimZeros(strconv.FormatFloat(v, 'f', plainDigits, 64))
	if s == "-0" {
		return "0"
	}
	return s
}

func scientific(v float64) string {
	s := strconv.FormatFloat(v, 'e', mantissaDigits, 64)
	mant, exp, _ := strings.Cut(s, "e")
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return trimZeros(mant) + "E" + strconv.Itoa(n)
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
