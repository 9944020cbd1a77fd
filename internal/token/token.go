// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines calculator token kinds, display glyphs and the
// operator and function tables shared by the scanner, parser and evaluator.
package token

import (
	"strconv"
	"strings"
)

// Kind represents a token variant.
type Kind int

const (
	NUMBER   Kind = iota
	OPERATOR      // + - * / ^
	FUNCTION      // sin cos tan asin acos atan ln log10 sqrt fact
	PAREN
	PI
	E
	NEG // Prefix minus
)

// Display glyphs. The keypad writes these into the buffer; the normalizer
// maps them back onto compute symbols.
const (
	RuneTimes     = '×' // U+00D7
	RuneDivide    = '÷' // U+00F7
	RuneMinus     = '−' // U+2212
	RuneComma     = ','
	RunePi        = 'π' // U+03C0
	RuneE         = 'e'
	RuneFactorial = '!'
	RuneExponent  = 'E'
)

// MaxInputLength caps the number of runes the pipeline accepts.
const MaxInputLength = 1024

// Functions is the fixed set of function names understood by the scanner.
var Functions = [...]string{"sin", "cos", "tan", "asin", "acos", "atan", "ln", "log10", "sqrt", "fact"}

// Token is a single lexical unit. Only the payload field matching Kind is set.
type Token struct {
	Kind  Kind
	Value float64 // NUMBER
	Op    byte    // OPERATOR
	Func  string  // FUNCTION
	Open  bool    // PAREN
}

func Number(v float64) Token     { return Token{Kind: NUMBER, Value: v} }
func Operator(op byte) Token     { return Token{Kind: OPERATOR, Op: op} }
func Function(name string) Token { return Token{Kind: FUNCTION, Func: name} }
func Paren(open bool) Token      { return Token{Kind: PAREN, Open: open} }
func Pi() Token                  { return Token{Kind: PI} }
func Euler() Token               { return Token{Kind: E} }
func Neg() Token                 { return Token{Kind: NEG} }

// String returns the serializable representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case NUMBER:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case OPERATOR:
		return string(t.Op)
	case FUNCTION:
		return t.Func
	case PAREN:
		if t.Open {
			return "("
		}
		return ")"
	case PI:
		return string(RunePi)
	case E:
		return string(RuneE)
	case NEG:
		return "neg"
	}
	return "?"
}

// String returns the name of a token kind.
func (k Kind) String() string {
	switch k {
	case NUMBER:
		return "NUMBER"
	case OPERATOR:
		return "OPERATOR"
	case FUNCTION:
		return "FUNCTION"
	case PAREN:
		return "PAREN"
	case PI:
		return "PI"
	case E:
		return "E"
	case NEG:
		return "NEG"
	}
	return "UNKNOWN"
}

// IsOperator returns true if b is one of the binary operator symbols.
func IsOperator(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '^':
		return true
	}
	return false
}

// CanonicalOperator maps a display or compute operator glyph onto its compute
// symbol.
func CanonicalOperator(r rune) (byte, bool) {
	switch r {
	case '+', '-', '*', '/', '^':
		return byte(r), true
	case RuneTimes, 'x':
		return '*', true
	case RuneDivide:
		return '/', true
	case RuneMinus:
		return '-', true
	}
	return 0, false
}

// IsOperatorRune returns true for compute and display operator glyphs.
func IsOperatorRune(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '^', RuneTimes, RuneDivide, RuneMinus:
		return true
	}
	return false
}

// IsConstant returns true if r is a constant glyph.
func IsConstant(r rune) bool {
	return r == RunePi || r == RuneE
}

// IsDigit returns true for ASCII decimal digits.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsDecimalMark returns true for either decimal separator.
func IsDecimalMark(r rune) bool {
	return r == '.' || r == RuneComma
}

// Precedence returns the binding strength of an operator token.
// NEG shares the level of ^ so that -2^2 is -(2^2).
func Precedence(t Token) int {
	if t.Kind == NEG {
		return 3
	}
	switch t.Op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	case '^':
		return 3
	}
	return 0
}

// RightAssoc returns true for right-associative operators.
func RightAssoc(t Token) bool {
	return t.Kind == NEG || (t.Kind == OPERATOR && t.Op == '^')
}

// CanonicalFunction resolves a user-supplied function name, case-insensitively,
// to a member of Functions. "lg" is an alias of "log10".
func CanonicalFunction(name string) (string, bool) {
	name = strings.ToLower(name)
	if name == "lg" {
		return "log10", true
	}
	for _, f := range Functions {
		if f == name {
			return f, true
		}
	}
	return "", false
}

// Inverse returns the inverse trigonometric counterpart of name, if any.
func Inverse(name string) (string, bool) {
	switch name {
	case "sin":
		return "asin", true
	case "cos":
		return "acos", true
	case "tan":
		return "atan", true
	}
	return name, false
}
