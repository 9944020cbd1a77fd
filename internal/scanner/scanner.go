// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner provides a lenient lexer for normalized calculator text.
package scanner

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"

	"nickandperla.net/scicalc/internal/token"
)

// ErrNumber is returned when a numeric literal cannot be parsed.
var ErrNumber = errors.New("malformed number")

// Scanner tokenizes normalized text. Characters that start no token are
// skipped.
type Scanner struct {
	src    string
	pos    int
	prev   token.Token
	seen   bool // prev is valid
	peeked *token.Token
}

// New creates a Scanner positioned at the start of src.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Reset rewinds the scanner to the start of its input.
func (s *Scanner) Reset() {
	s.pos = 0
	s.seen = false
	s.peeked = nil
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() (token.Token, bool, error) {
	if s.peeked != nil {
		return *s.peeked, true, nil
	}
	t, ok, err := s.scan()
	if err != nil || !ok {
		return t, ok, err
	}
	s.peeked = &t
	return t, true, nil
}

// Next returns the next token. ok is false once the input is exhausted.
func (s *Scanner) Next() (token.Token, bool, error) {
	if s.peeked != nil {
		t := *s.peeked
		s.peeked = nil
		return t, true, nil
	}
	return s.scan()
}

func (s *Scanner) scan() (token.Token, bool, error) {
	for s.pos < len(s.src) {
		t, ok, err := s.scanOne()
		if err != nil {
			return token.Token{}, false, err
		}
		if ok {
			s.prev = t
			s.seen = true
			return t, true, nil
		}
	}
	return token.Token{}, false, nil
}

// scanOne consumes one token or one skipped rune.
func (s *Scanner) scanOne() (token.Token, bool, error) {
	rest := s.src[s.pos:]
	c := rest[0]

	switch {
	case token.IsDigit(rune(c)) || c == '.':
		return s.scanNumber()
	case c == '-' && s.prefixPosition():
		s.pos++
		return token.Neg(), true, nil
	case c == '+' && s.prefixPosition():
		s.pos++
		return token.Token{}, false, nil
	case token.IsOperator(c):
		s.pos++
		return token.Operator(c), true, nil
	case c == '(' || c == ')':
		s.pos++
		return token.Paren(c == '('), true, nil
	}

	if name := matchFunction(rest); name != "" {
		s.pos += len(name)
		return token.Function(name), true, nil
	}
	if c == token.RuneE {
		s.pos++
		return token.Euler(), true, nil
	}
	r, size := utf8.DecodeRuneInString(rest)
	s.pos += size
	if r == token.RunePi {
		return token.Pi(), true, nil
	}
	return token.Token{}, false, nil
}

// prefixPosition reports whether a sign at the current position has no left
// operand.
func (s *Scanner) prefixPosition() bool {
	if !s.seen {
		return true
	}
	switch s.prev.Kind {
	case token.OPERATOR, token.NEG, token.FUNCTION:
		return true
	case token.PAREN:
		return s.prev.Open
	}
	return false
}

// scanNumber reads the maximal run of digits and dots, plus an optional
// uppercase exponent as produced by the formatter.
func (s *Scanner) scanNumber() (token.Token, bool, error) {
	start := s.pos
	i := s.pos
	for i < len(s.src) && (token.IsDigit(rune(s.src[i])) || s.src[i] == '.') {
		i++
	}
	if i < len(s.src) && s.src[i] == token.RuneExponent {
		j := i + 1
		if j < len(s.src) && (s.src[j] == '-' || s.src[j] == '+') {
			j++
		}
		k := j
		for k < len(s.src) && token.IsDigit(rune(s.src[k])) {
			k++
		}
		if k > j {
			i = k
		}
	}
	s.pos = i
	lit := s.src[start:i]
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return token.Token{}, false, fmt.Errorf("%w: %q at offset %d", ErrNumber, lit, start)
	}
	return token.Number(v), true, nil
}

// matchFunction returns the longest function name prefixing s,
// case-insensitively.
func matchFunction(s string) string {
	best := ""
	for _, name := range token.Functions {
		if len(name) > len(best) && len(s) >= len(name) && strings.EqualFold(s[:len(name)], name) {
			best = name
		}
	}
	return best
}

// All returns the token sequence of src. Each iteration starts over from the
// beginning; an error ends the sequence.
func All(src string) iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		s := New(src)
		for {
			t, ok, err := s.Next()
			if err != nil {
				yield(token.Token{}, err)
				return
			}
			if !ok || !yield(t, nil) {
				return
			}
		}
	}
}

// Tokenize returns all tokens of src.
func Tokenize(src string) ([]token.Token, error) {
	var out []token.Token
	for t, err := range All(src) {
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
