// Package termrange locates operand boundaries at the end of a raw
// expression buffer without parsing it.
//
// All offsets are byte offsets into the text. Every glyph the scanner treats
// specially outside of π and the display operators is ASCII, so scanning
// backwards byte by byte never splits a multi-byte rune it cares about.
package termrange

import (
	"strings"
	"unicode/utf8"

	"nickandperla.net/scicalc/internal/token"
)

// Range is a half-open byte interval [Start, End) into a text.
type Range struct {
	Start int
	End   int
}

// Empty returns true if the range covers nothing.
func (r Range) Empty() bool { return r.Start >= r.End }

// Of returns the part of text covered by the range.
func (r Range) Of(text string) string { return text[r.Start:r.End] }

// LastNumber returns the longest trailing run of digits containing at most
// one decimal mark. A run directly preceded by an exponent marker (1.5E-7)
// is widened to cover the whole scientific literal.
func LastNumber(text string) Range {
	end := len(text)
	start, marked := numberRunStart(text)
	if start == end || marked {
		return Range{start, end}
	}

	j := start
	if j > 0 && (text[j-1] == '-' || text[j-1] == '+') {
		j--
	}
	if j > 0 && text[j-1] == token.RuneExponent {
		m, _ := numberRunStart(text[:j-1])
		if m < j-1 && hasDigit(text[m:j-1]) {
			start = m
		}
	}
	return Range{start, end}
}

// numberRunStart scans back over digits and at most one decimal mark.
func numberRunStart(text string) (int, bool) {
	i := len(text)
	marked := false
	for i > 0 {
		c := rune(text[i-1])
		if token.IsDigit(c) {
			i--
			continue
		}
		if token.IsDecimalMark(c) && !marked {
			marked = true
			i--
			continue
		}
		break
	}
	return i, marked
}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// LastTerm returns the rightmost operand of text: a parenthesized group
// (including a function name directly in front of it), a constant glyph, or
// a numeric literal. Trailing factorial marks are part of the term.
func LastTerm(text string) Range {
	end := len(text)
	if end == 0 {
		return Range{}
	}

	i := end
	for i > 0 && text[i-1] == token.RuneFactorial {
		i--
	}
	if i < end {
		r := LastTerm(text[:i])
		if r.Empty() {
			return Range{end, end}
		}
		return Range{r.Start, end}
	}

	r, size := utf8.DecodeLastRuneInString(text)
	switch {
	case r == ')':
		open := MatchingOpen(text, end-1)
		if open < 0 {
			return Range{end, end}
		}
		return Range{open - functionSuffix(text[:open]), end}
	case token.IsConstant(r):
		return Range{end - size, end}
	}
	return LastNumber(text)
}

// MatchingOpen returns the index of the '(' balancing the ')' at closeIdx,
// or -1 when there is none.
func MatchingOpen(text string, closeIdx int) int {
	depth := 0
	for i := closeIdx; i >= 0; i-- {
		switch text[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// functionSuffix returns the byte length of the longest function name that
// text ends with.
func functionSuffix(text string) int {
	lower := strings.ToLower(text)
	best := 0
	for _, name := range token.Functions {
		if len(name) > best && strings.HasSuffix(lower, name) {
			best = len(name)
		}
	}
	return best
}

// Complete reports whether text is worth evaluating: it is not blank, its
// parentheses balance without ever going negative, and it ends in a digit,
// a close paren, a constant glyph or a factorial mark.
func Complete(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return false
	}
	depth := 0
	for _, r := range t {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	if depth != 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(t)
	return token.IsDigit(r) || r == ')' || token.IsConstant(r) || r == token.RuneFactorial
}

// FactorialAllowed reports whether a '!' may be appended to text.
func FactorialAllowed(text string) bool {
	r, _ := utf8.DecodeLastRuneInString(text)
	if r == utf8.RuneError {
		return false
	}
	return token.IsDigit(r) || r == ')' || token.IsConstant(r)
}

// IsAtomic reports whether text is a single numeric literal, optionally
// negated, or a single constant glyph.
func IsAtomic(text string) bool {
	if text == "" {
		return false
	}
	r, size := utf8.DecodeRuneInString(text)
	if token.IsConstant(r) && size == len(text) {
		return true
	}
	body := strings.TrimPrefix(text, "-")
	if body == text {
		body = strings.TrimPrefix(text, string(token.RuneMinus))
	}
	n := LastNumber(body)
	return !n.Empty() && n.Start == 0 && hasDigit(body)
}
