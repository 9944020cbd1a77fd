package token

import "testing"

func TestCanonicalOperator(t *testing.T) {
	tests := []struct {
		in   rune
		want byte
		ok   bool
	}{
		{'+', '+', true},
		{'-', '-', true},
		{RuneMinus, '-', true},
		{RuneTimes, '*', true},
		{'x', '*', true},
		{RuneDivide, '/', true},
		{'^', '^', true},
		{'%', 0, false},
		{'(', 0, false},
	}
	for _, tt := range tests {
		got, ok := CanonicalOperator(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CanonicalOperator(%q): expected (%q, %v), got (%q, %v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}

func TestCanonicalFunction(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"sin", "sin", true},
		{"SQRT", "sqrt", true},
		{"lg", "log10", true},
		{"LG", "log10", true},
		{"log", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalFunction(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CanonicalFunction(%q): expected (%q, %v), got (%q, %v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}

func TestPrecedence(t *testing.T) {
	if Precedence(Operator('+')) != Precedence(Operator('-')) {
		t.Errorf("expected + and - to share a level")
	}
	if Precedence(Operator('*')) <= Precedence(Operator('+')) {
		t.Errorf("expected * to bind tighter than +")
	}
	if Precedence(Operator('^')) <= Precedence(Operator('/')) {
		t.Errorf("expected ^ to bind tighter than /")
	}
	if Precedence(Neg()) != Precedence(Operator('^')) {
		t.Errorf("expected prefix minus to share the level of ^")
	}
	if !RightAssoc(Operator('^')) || !RightAssoc(Neg()) {
		t.Errorf("expected ^ and prefix minus to be right-associative")
	}
	if RightAssoc(Operator('-')) {
		t.Errorf("expected - to be left-associative")
	}
}

func TestInverse(t *testing.T) {
	for in, want := range map[string]string{"sin": "asin", "cos": "acos", "tan": "atan"} {
		got, ok := Inverse(in)
		if !ok || got != want {
			t.Errorf("Inverse(%q): expected %q, got %q", in, want, got)
		}
	}
	if got, ok := Inverse("ln"); ok || got != "ln" {
		t.Errorf("expected ln to have no inverse, got %q", got)
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Number(2.5), "2.5"},
		{Number(1e10), "1e+10"},
		{Operator('^'), "^"},
		{Function("log10"), "log10"},
		{Paren(true), "("},
		{Paren(false), ")"},
		{Pi(), "π"},
		{Euler(), "e"},
		{Neg(), "neg"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("expected '%s', got '%s'", tt.want, got)
		}
	}
	if NEG.String() != "NEG" || FUNCTION.String() != "FUNCTION" {
		t.Errorf("unexpected kind names %s %s", NEG, FUNCTION)
	}
}
