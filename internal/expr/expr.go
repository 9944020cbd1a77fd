// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package expr defines the postfix program produced by the parser.
package expr

import (
	"strings"

	"nickandperla.net/scicalc/internal/token"
)

// RPN is a token sequence in postfix (reverse Polish) order.
type RPN []token.Token

// String returns the space separated representation of the program.
func (p RPN) String() string {
	var sb strings.Builder
	for i, t := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

// IsEmpty returns true if the program has no tokens.
func (p RPN) IsEmpty() bool { return len(p) == 0 }

// Stack is a LIFO of tokens used while converting to postfix.
type Stack struct {
	items []token.Token
}

// Push adds t on top of the stack.
func (s *Stack) Push(t token.Token) { s.items = append(s.items, t) }

// Pop removes and returns the top of the stack.
func (s *Stack) Pop() (token.Token, bool) {
	if len(s.items) == 0 {
		return token.Token{}, false
	}
	t := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return t, true
}

// Top returns the top of the stack without removing it.
func (s *Stack) Top() (token.Token, bool) {
	if len(s.items) == 0 {
		return token.Token{}, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of items on the stack.
func (s *Stack) Len() int { return len(s.items) }
