// Package parser converts a token sequence into postfix order with the
// shunting-yard algorithm.
package parser

import (
	"nickandperla.net/scicalc/internal/expr"
	"nickandperla.net/scicalc/internal/token"
)

// Parse converts infix tokens into an RPN program.
//
// Parse never fails. Unmatched open parens and trailing operators left on the
// stack at the end are drained into the output as they are; the evaluator
// rejects them. A close paren with no partner is dropped.
func Parse(tokens []token.Token) expr.RPN {
	out := make(expr.RPN, 0, len(tokens))
	var ops expr.Stack

	for _, t := range tokens {
		switch t.Kind {
		case token.NUMBER, token.PI, token.E:
			out = append(out, t)

		case token.FUNCTION, token.NEG:
			// Prefix operators have no left operand to settle.
			ops.Push(t)

		case token.OPERATOR:
			for {
				top, ok := ops.Top()
				if !ok || !yields(top, t) {
					break
				}
				ops.Pop()
				out = append(out, top)
			}
			ops.Push(t)

		case token.PAREN:
			if t.Open {
				ops.Push(t)
				continue
			}
			for {
				top, ok := ops.Pop()
				if !ok {
					break
				}
				if top.Kind == token.PAREN && top.Open {
					if fn, ok := ops.Top(); ok && fn.Kind == token.FUNCTION {
						ops.Pop()
						out = append(out, fn)
					}
					break
				}
				out = append(out, top)
			}
		}
	}

	for ops.Len() > 0 {
		t, _ := ops.Pop()
		out = append(out, t)
	}
	return out
}

// yields reports whether the stacked operator top must be emitted before the
// incoming operator in.
func yields(top, in token.Token) bool {
	if top.Kind != token.OPERATOR && top.Kind != token.NEG {
		return false
	}
	pt, pi := token.Precedence(top), token.Precedence(in)
	return pt > pi || (pt == pi && !token.RightAssoc(in))
}
