// Package normalize rewrites display text into the canonical form read by the
// scanner.
package normalize

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"nickandperla.net/scicalc/internal/termrange"
	"nickandperla.net/scicalc/internal/token"
)

// ErrTooLong is returned for input longer than token.MaxInputLength runes.
var ErrTooLong = errors.New("expression too long")

var glyphs = strings.NewReplacer(
	string(token.RuneTimes), "*",
	string(token.RuneDivide), "/",
	string(token.RuneMinus), "-",
	string(token.RuneComma), ".",
)

// Normalize substitutes display glyphs with compute symbols and expands
// postfix factorials into fact(...) calls.
func Normalize(text string) (string, error) {
	if n := utf8.RuneCountInString(text); n > token.MaxInputLength {
		return "", fmt.Errorf("%w: %d runes", ErrTooLong, n)
	}
	return ExpandFactorials(glyphs.Replace(text)), nil
}

// ExpandFactorials rewrites every "<term>!" as "fact(<term>)" in a single
// left-to-right pass. Each '!' is resolved against the already rewritten
// output, so 3!! becomes fact(fact(3)). A '!' with no operand is kept as is.
func ExpandFactorials(s string) string {
	if !strings.ContainsRune(s, token.RuneFactorial) {
		return s
	}
	out := make([]byte, 0, len(s)+16)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != token.RuneFactorial {
			out = append(out, c)
			continue
		}
		r := termrange.LastTerm(string(out))
		if r.Empty() {
			out = append(out, c)
			continue
		}
		operand := string(out[r.Start:r.End])
		out = append(out[:r.Start], "fact("...)
		out = append(out, operand...)
		out = append(out, ')')
	}
	return string(out)
}
