package scicalc

import (
	"strings"
	"unicode/utf8"

	"nickandperla.net/scicalc/internal/termrange"
	"nickandperla.net/scicalc/internal/token"
)

func withinLimit(text string) bool {
	return utf8.RuneCountInString(text) <= token.MaxInputLength
}

// commit installs next with text as the buffer and leaves the just-evaluated
// state. Edits that would overflow the input limit are dropped whole.
func (e *Engine) commit(next State, text string) {
	if !withinLimit(text) {
		e.logger.Debug("edit dropped: input limit reached", "limit", token.MaxInputLength)
		return
	}
	next.Text = text
	next.JustEvaluated = false
	e.state = next
}

// appendAtomic appends s, starting a fresh buffer when a finished result is
// showing.
func (e *Engine) appendAtomic(s string) {
	next := e.state
	base := next.Text
	if next.JustEvaluated && termrange.IsAtomic(base) {
		base = ""
	}
	e.commit(next, base+s)
}

// appendChained appends s onto whatever is in the buffer.
func (e *Engine) appendChained(s string) {
	e.commit(e.state, e.state.Text+s)
}

// SetText replaces the buffer, e.g. on paste.
func (e *Engine) SetText(text string) {
	e.commit(e.state, text)
}

// AddDigit appends a decimal digit. Other runes are ignored.
func (e *Engine) AddDigit(d rune) {
	if !token.IsDigit(d) {
		return
	}
	e.appendAtomic(string(d))
}

// AddDot appends a decimal separator unless the literal being typed already
// has one.
func (e *Engine) AddDot() {
	base := e.state.Text
	if e.state.JustEvaluated && termrange.IsAtomic(base) {
		base = ""
	}
	lit := termrange.LastNumber(base).Of(base)
	if strings.ContainsAny(lit, ".,E") {
		return
	}
	e.appendAtomic(string(e.decimal))
}

// AddBinaryOp appends one of + - * / ^ (display glyphs × ÷ − accepted). A
// trailing operator is replaced. Only '-' may start the buffer or follow '('.
func (e *Engine) AddBinaryOp(op rune) {
	sym, ok := token.CanonicalOperator(op)
	if !ok {
		return
	}
	text := e.state.Text
	if last, size := utf8.DecodeLastRuneInString(text); token.IsOperatorRune(last) {
		text = text[:len(text)-size]
	}
	if last, _ := utf8.DecodeLastRuneInString(text); (text == "" || last == '(') && sym != '-' {
		return
	}
	e.commit(e.state, text+string(sym))
}

// AddLeftParen appends '('.
func (e *Engine) AddLeftParen() { e.appendChained("(") }

// AddRightParen appends ')'.
func (e *Engine) AddRightParen() { e.appendChained(")") }

// AddFunction appends "name(". Accepted names are sin, cos, tan, asin, acos,
// atan, sqrt, ln, log10 and lg (an alias of log10). In inverse mode sin, cos
// and tan insert their inverses.
func (e *Engine) AddFunction(name string) {
	fn, ok := token.CanonicalFunction(name)
	if !ok || fn == "fact" {
		return
	}
	if e.state.Inverse {
		fn, _ = token.Inverse(fn)
	}
	e.appendChained(fn + "(")
}

// AddConstant appends π (also accepted as "pi") or e.
func (e *Engine) AddConstant(c string) {
	switch strings.ToLower(c) {
	case string(token.RunePi), "pi":
		e.appendAtomic(string(token.RunePi))
	case string(token.RuneE):
		e.appendAtomic(string(token.RuneE))
	}
}

// AddFactorial appends '!' when it directly follows a digit, ')' or constant.
func (e *Engine) AddFactorial() {
	if !termrange.FactorialAllowed(e.state.Text) {
		return
	}
	e.appendChained(string(token.RuneFactorial))
}

// ReciprocalOfLastTerm rewrites the last term as 1/(term).
func (e *Engine) ReciprocalOfLastTerm() {
	text := e.state.Text
	r := termrange.LastTerm(text)
	if r.Empty() {
		return
	}
	e.commit(e.state, text[:r.Start]+"1/("+r.Of(text)+")")
}

// ToggleSignOfLastNumber rewrites the last term as (-term), or unwraps it if
// it already has that shape. Applying it twice restores the buffer.
func (e *Engine) ToggleSignOfLastNumber() {
	text := e.state.Text
	r := termrange.LastTerm(text)
	if r.Empty() {
		return
	}
	term := r.Of(text)
	if inner, ok := negated(term); ok {
		e.commit(e.state, text[:r.Start]+inner)
		return
	}
	e.commit(e.state, text[:r.Start]+"(-"+term+")")
}

// negated returns X for a term of the form (-X) where X is itself a whole
// term.
func negated(term string) (string, bool) {
	var inner string
	switch {
	case strings.HasPrefix(term, "(-"):
		inner = term[len("(-"):]
	case strings.HasPrefix(term, "("+string(token.RuneMinus)):
		inner = term[len("("+string(token.RuneMinus)):]
	default:
		return "", false
	}
	if !strings.HasSuffix(inner, ")") || termrange.MatchingOpen(term, len(term)-1) != 0 {
		return "", false
	}
	inner = inner[:len(inner)-1]
	r := termrange.LastTerm(inner)
	if r.Empty() || r.Start != 0 || r.End != len(inner) {
		return "", false
	}
	return inner, true
}

// ToggleInvMode flips inverse mode.
func (e *Engine) ToggleInvMode() {
	next := e.state
	next.Inverse = !next.Inverse
	e.state = next
}

// ToggleAngleMode switches between degrees and radians. The preview follows.
func (e *Engine) ToggleAngleMode() {
	next := e.state
	next.Angle = next.Angle.Toggle()
	e.state = next
}

// Backspace drops the last character.
func (e *Engine) Backspace() {
	text := e.state.Text
	if text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(text)
	e.commit(e.state, text[:len(text)-size])
}

// ClearAll empties the buffer. Inverse and angle modes are kept.
func (e *Engine) ClearAll() {
	e.state = State{Inverse: e.state.Inverse, Angle: e.state.Angle}
}

// Evaluate commits the preview as the new buffer. It does nothing while the
// preview is empty.
func (e *Engine) Evaluate() {
	p := e.Preview()
	if p == "" {
		return
	}
	next := e.state
	next.Text = p
	next.JustEvaluated = true
	e.state = next
	e.logger.Debug("evaluated", "result", p)
}
