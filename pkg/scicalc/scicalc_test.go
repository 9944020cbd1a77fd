package scicalc

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"nickandperla.net/scicalc/internal/eval"
	"nickandperla.net/scicalc/internal/scanner"
	"nickandperla.net/scicalc/internal/token"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"2+3", "5"},
		{"(2+3)*4", "20"},
		{"5!", "120"},
		{"3!!", "720"},
		{"(2+1)!", "6"},
		{"2×3÷4", "1.5"},
		{"7−10", "-3"},
		{"2^3^2", "512"},
		{"10-4-3", "3"},
		{"-2^2", "-4"},
		{"2^-3", "0.125"},
		{"12+(-5)", "7"},
		{"3*(-(2+1))", "-9"},
		{"sqrt(16)+ln(e)", "5"},
		{"log10(1000)", "3"},
		{"lg(100)", "2"},
		{"π", "3.1415926536"},
		{"e", "2.7182818285"},
		{"0.1+0.2", "0.3"},
		{"0-0", "0"},
		{"10^10", "1E10"},
		{"1/10000000", "1E-7"},
		{"1E10*2", "2E10"},
		{"2 + 3", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := Preview(tt.text)
			if got != tt.want {
				t.Errorf("expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}

func TestPreviewEmptyWhenIncomplete(t *testing.T) {
	for _, full := range []string{"(2+3)*4", "sin(90)", "12+(-5)"} {
		for i := 1; i < len(full); i++ {
			prefix := full[:i]
			// Some prefixes are complete expressions on their own.
			if prefix == "(2+3)" || prefix == "12" || prefix == "1" {
				continue
			}
			if got := Preview(prefix); got != "" {
				t.Errorf("prefix '%s' of '%s': expected empty preview, got '%s'", prefix, full, got)
			}
		}
	}
	for _, text := range []string{"", "   ", "2+", ")(", "(2))", "2!+"} {
		if got := Preview(text); got != "" {
			t.Errorf("'%s': expected empty preview, got '%s'", text, got)
		}
	}
}

func TestPreviewEmptyWhenNotFinite(t *testing.T) {
	for _, text := range []string{"1/0", "ln(0-1)", "(0-1)!", "0.5!", "171!", "sqrt(0-4)"} {
		e := New()
		e.SetText(text)
		if got := e.Preview(); got != "" {
			t.Errorf("'%s': expected empty preview, got '%s'", text, got)
		}
		e.Evaluate()
		if e.Text() != text || e.JustEvaluated() {
			t.Errorf("'%s': expected evaluate to be a no-op, got text '%s' evaluated=%v", text, e.Text(), e.JustEvaluated())
		}
	}
}

func TestEvaluateFreshEntry(t *testing.T) {
	e := New()
	e.SetText("2+3")
	e.Evaluate()
	if e.Text() != "5" {
		t.Fatalf("expected '5', got '%s'", e.Text())
	}
	if !e.JustEvaluated() {
		t.Fatalf("expected just-evaluated state")
	}

	e.AddDigit('7')
	if e.Text() != "7" {
		t.Errorf("expected fresh entry '7', got '%s'", e.Text())
	}
	if e.JustEvaluated() {
		t.Errorf("expected entering state after a digit")
	}
}

func TestEvaluateChained(t *testing.T) {
	e := New()
	e.SetText("2-5")
	e.Evaluate()
	if e.Text() != "-3" {
		t.Fatalf("expected '-3', got '%s'", e.Text())
	}

	e.AddBinaryOp('×')
	e.AddDigit('2')
	if e.Text() != "-3*2" {
		t.Errorf("expected '-3*2', got '%s'", e.Text())
	}
	if p := e.Preview(); p != "-6" {
		t.Errorf("expected preview '-6', got '%s'", p)
	}

	// A negative result is still atomic
	e.SetText("2-5")
	e.Evaluate()
	e.AddDigit('1')
	if e.Text() != "1" {
		t.Errorf("expected fresh entry '1', got '%s'", e.Text())
	}
}

func TestEvaluateScientificRoundTrip(t *testing.T) {
	e := New()
	e.SetText("10^10")
	e.Evaluate()
	if e.Text() != "1E10" {
		t.Fatalf("expected '1E10', got '%s'", e.Text())
	}
	e.AddBinaryOp('/')
	e.AddDigit('4')
	if p := e.Preview(); p != "2.5E9" {
		t.Errorf("expected '2.5E9', got '%s'", p)
	}
	e.AddDigit('0')
	if p := e.Preview(); p != "250000000" {
		t.Errorf("expected '250000000', got '%s'", p)
	}

	e.SetText("1/10000000")
	e.Evaluate()
	e.AddDot()
	if e.Text() != "." {
		t.Errorf("expected fresh '.', got '%s'", e.Text())
	}
}

func TestSinDegrees(t *testing.T) {
	e := New(WithAngleMode(Degrees))
	e.AddFunction("sin")
	e.AddDigit('9')
	e.AddDigit('0')
	e.AddRightParen()
	if e.Text() != "sin(90)" {
		t.Fatalf("expected 'sin(90)', got '%s'", e.Text())
	}
	if p := e.Preview(); p != "1" {
		t.Errorf("expected '1', got '%s'", p)
	}

	e.ToggleAngleMode()
	if e.Angle() != Radians {
		t.Fatalf("expected RAD, got %s", e.Angle())
	}
	if p := e.Preview(); p != "0.8939966636" {
		t.Errorf("expected '0.8939966636', got '%s'", p)
	}
	if e.Text() != "sin(90)" {
		t.Errorf("angle toggle changed text to '%s'", e.Text())
	}
}

func TestInverseMode(t *testing.T) {
	e := New()
	e.ToggleInvMode()
	if !e.Inverse() {
		t.Fatalf("expected inverse mode on")
	}
	e.AddFunction("sin")
	e.AddDigit('1')
	e.AddRightParen()
	if e.Text() != "asin(1)" {
		t.Fatalf("expected 'asin(1)', got '%s'", e.Text())
	}
	if p := e.Preview(); p != "90" {
		t.Errorf("expected '90', got '%s'", p)
	}

	e.ClearAll()
	e.AddFunction("sqrt")
	if e.Text() != "sqrt(" {
		t.Errorf("expected inverse mode to leave sqrt alone, got '%s'", e.Text())
	}
}

func TestAddFunction(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"sin", "sin("},
		{"COS", "cos("},
		{"lg", "log10("},
		{"log10", "log10("},
		{"atan", "atan("},
		{"fact", ""},
		{"exp", ""},
	}
	for _, tt := range tests {
		e := New()
		e.AddFunction(tt.name)
		if e.Text() != tt.want {
			t.Errorf("AddFunction(%q): expected '%s', got '%s'", tt.name, tt.want, e.Text())
		}
	}
}

func TestAddBinaryOp(t *testing.T) {
	e := New()
	e.AddBinaryOp('+')
	if e.Text() != "" {
		t.Errorf("expected '+' on empty buffer to be ignored, got '%s'", e.Text())
	}
	e.AddBinaryOp('−')
	if e.Text() != "-" {
		t.Errorf("expected leading '-', got '%s'", e.Text())
	}

	e.SetText("2+")
	e.AddBinaryOp('*')
	if e.Text() != "2*" {
		t.Errorf("expected trailing operator to be replaced, got '%s'", e.Text())
	}
	e.AddBinaryOp('÷')
	if e.Text() != "2/" {
		t.Errorf("expected '2/', got '%s'", e.Text())
	}
	e.AddBinaryOp('%')
	if e.Text() != "2/" {
		t.Errorf("expected unknown operator to be ignored, got '%s'", e.Text())
	}

	e.SetText("(")
	e.AddBinaryOp('^')
	if e.Text() != "(" {
		t.Errorf("expected '^' after '(' to be ignored, got '%s'", e.Text())
	}
	e.AddBinaryOp('-')
	e.AddDigit('4')
	e.AddRightParen()
	if p := e.Preview(); p != "-4" {
		t.Errorf("expected '-4', got '%s'", p)
	}
}

func TestAddDot(t *testing.T) {
	e := New()
	e.AddDot()
	e.AddDigit('5')
	e.AddDot()
	if e.Text() != ".5" {
		t.Errorf("expected second dot to be ignored, got '%s'", e.Text())
	}
	e.AddBinaryOp('+')
	e.AddDigit('1')
	e.AddDot()
	e.AddDigit('5')
	if e.Text() != ".5+1.5" {
		t.Errorf("expected '.5+1.5', got '%s'", e.Text())
	}
	if p := e.Preview(); p != "2" {
		t.Errorf("expected '2', got '%s'", p)
	}

	e.SetText("1E10")
	e.AddDot()
	if e.Text() != "1E10" {
		t.Errorf("expected dot after exponent to be ignored, got '%s'", e.Text())
	}
}

func TestDecimalComma(t *testing.T) {
	e := New(WithDecimalSeparator(','))
	e.AddDigit('1')
	e.AddDot()
	e.AddDot()
	e.AddDigit('5')
	e.AddBinaryOp('+')
	e.AddDigit('1')
	if e.Text() != "1,5+1" {
		t.Fatalf("expected '1,5+1', got '%s'", e.Text())
	}
	if p := e.Preview(); p != "2,5" {
		t.Errorf("expected '2,5', got '%s'", p)
	}

	if p := Preview("1/3", WithDecimalSeparator(',')); p != "0,3333333333" {
		t.Errorf("expected '0,3333333333', got '%s'", p)
	}
	if p := Preview("1,5*10^10", WithDecimalSeparator(',')); p != "1,5E10" {
		t.Errorf("expected '1,5E10', got '%s'", p)
	}
	if p := Preview("1", WithDecimalSeparator(';')); p != "1" {
		t.Errorf("expected '1', got '%s'", p)
	}
}

func TestAddConstant(t *testing.T) {
	e := New()
	e.AddConstant("pi")
	if e.Text() != "π" {
		t.Errorf("expected 'π', got '%s'", e.Text())
	}
	e.AddBinaryOp('*')
	e.AddConstant("e")
	e.AddConstant("tau")
	if e.Text() != "π*e" {
		t.Errorf("expected 'π*e', got '%s'", e.Text())
	}
	if p := e.Preview(); p != "8.5397342227" {
		t.Errorf("expected '8.5397342227', got '%s'", p)
	}
}

func TestAddFactorial(t *testing.T) {
	for _, text := range []string{"", "2+", "(", "sin(", "3!", "."} {
		e := New()
		e.SetText(text)
		e.AddFactorial()
		if e.Text() != text {
			t.Errorf("'%s': expected factorial to be ignored, got '%s'", text, e.Text())
		}
	}

	e := New()
	e.SetText("4")
	e.AddFactorial()
	if e.Text() != "4!" {
		t.Fatalf("expected '4!', got '%s'", e.Text())
	}
	if p := e.Preview(); p != "24" {
		t.Errorf("expected '24', got '%s'", p)
	}

	e.SetText("2*π")
	e.AddFactorial()
	if e.Text() != "2*π!" {
		t.Errorf("expected '2*π!', got '%s'", e.Text())
	}
}

func TestToggleSign(t *testing.T) {
	e := New()
	e.SetText("12+5")
	e.ToggleSignOfLastNumber()
	if e.Text() != "12+(-5)" {
		t.Fatalf("expected '12+(-5)', got '%s'", e.Text())
	}
	e.ToggleSignOfLastNumber()
	if e.Text() != "12+5" {
		t.Errorf("expected '12+5', got '%s'", e.Text())
	}
}

func TestToggleSignTwiceIsIdentity(t *testing.T) {
	for _, text := range []string{"7", "1.25", "3*(2+1)", "2^π", "sqrt(9)", "4!", "1E10", "(-2)*(-3)"} {
		e := New()
		e.SetText(text)
		e.ToggleSignOfLastNumber()
		if e.Text() == text {
			t.Errorf("'%s': expected first toggle to change the text", text)
		}
		e.ToggleSignOfLastNumber()
		if e.Text() != text {
			t.Errorf("'%s': expected double toggle to restore the text, got '%s'", text, e.Text())
		}
	}

	e := New()
	e.SetText("2+")
	e.ToggleSignOfLastNumber()
	if e.Text() != "2+" {
		t.Errorf("expected toggle without a term to be ignored, got '%s'", e.Text())
	}
}

func TestToggleSignPreview(t *testing.T) {
	e := New()
	e.SetText("sqrt(9)")
	e.ToggleSignOfLastNumber()
	if e.Text() != "(-sqrt(9))" {
		t.Fatalf("expected '(-sqrt(9))', got '%s'", e.Text())
	}
	if p := e.Preview(); p != "-3" {
		t.Errorf("expected '-3', got '%s'", p)
	}
}

func TestReciprocal(t *testing.T) {
	tests := []struct {
		text    string
		want    string
		preview string
	}{
		{"2+4", "2+1/(4)", "2.25"},
		{"(1+1)", "1/((1+1))", "0.5"},
		{"3!", "1/(3!)", "0.1666666667"},
		{"8", "1/(8)", "0.125"},
		{"2*", "2*", ""},
	}
	for _, tt := range tests {
		e := New()
		e.SetText(tt.text)
		e.ReciprocalOfLastTerm()
		if e.Text() != tt.want {
			t.Errorf("'%s': expected '%s', got '%s'", tt.text, tt.want, e.Text())
		}
		if p := e.Preview(); p != tt.preview {
			t.Errorf("'%s': expected preview '%s', got '%s'", tt.text, tt.preview, p)
		}
	}
}

func TestBackspace(t *testing.T) {
	e := New()
	e.SetText("sin(")
	e.Backspace()
	if e.Text() != "sin" {
		t.Errorf("expected 'sin', got '%s'", e.Text())
	}
	e.SetText("2×π")
	e.Backspace()
	e.Backspace()
	if e.Text() != "2" {
		t.Errorf("expected '2', got '%s'", e.Text())
	}
	e.Backspace()
	e.Backspace()
	if e.Text() != "" {
		t.Errorf("expected empty text, got '%s'", e.Text())
	}
}

func TestClearAllKeepsModes(t *testing.T) {
	e := New(WithAngleMode(Radians))
	e.ToggleInvMode()
	e.SetText("2+3")
	e.Evaluate()
	e.ClearAll()

	s := e.State()
	if s.Text != "" || s.JustEvaluated {
		t.Errorf("expected empty entering state, got %+v", s)
	}
	if !s.Inverse || s.Angle != Radians {
		t.Errorf("expected modes to survive, got %+v", s)
	}
	if e.Preview() != "" {
		t.Errorf("expected empty preview, got '%s'", e.Preview())
	}
}

func TestInputLimit(t *testing.T) {
	e := New()
	full := strings.Repeat("1", token.MaxInputLength)
	e.SetText(full)
	if e.Text() != full {
		t.Fatalf("expected text at the limit to be accepted")
	}
	e.AddDigit('1')
	e.AddLeftParen()
	if e.Text() != full {
		t.Errorf("expected edits past the limit to be dropped")
	}

	e.SetText(full + "1")
	if e.Text() != full {
		t.Errorf("expected oversized SetText to be dropped")
	}

	e.Restore(State{Text: full + "1"})
	if e.Text() != full {
		t.Errorf("expected oversized Restore to be dropped")
	}
}

func TestDeterministic(t *testing.T) {
	for _, text := range []string{"sin(30)+cos(60)", "2^0.5", "ln(2)*log10(5)", "π/3"} {
		for _, mode := range []AngleMode{Degrees, Radians} {
			a, errA := Evaluate(text, mode)
			b, errB := Evaluate(text, mode)
			if a != b || errA != errB {
				t.Errorf("'%s' %s: expected identical results, got %v/%v and %v/%v", text, mode, a, errA, b, errB)
			}
			e := New(WithAngleMode(mode))
			e.SetText(text)
			if e.Preview() != Preview(text, WithAngleMode(mode)) {
				t.Errorf("'%s' %s: engine and package preview disagree", text, mode)
			}
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		text string
		want error
	}{
		{"2+", eval.ErrEval},
		{"(2", eval.ErrEval},
		{"2 3", eval.ErrEval},
		{"", eval.ErrEval},
		{"1..2", scanner.ErrNumber},
	}
	for _, tt := range tests {
		_, err := Evaluate(tt.text, Degrees)
		if !errors.Is(err, tt.want) {
			t.Errorf("'%s': expected %v, got %v", tt.text, tt.want, err)
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	e := New()
	e.ToggleInvMode()
	e.SetText("2+3")
	e.Evaluate()

	saved := e.State()
	e2 := New(WithState(saved))
	if e2.State() != saved {
		t.Errorf("expected %+v, got %+v", saved, e2.State())
	}
	e2.AddDigit('1')
	if e2.Text() != "1" {
		t.Errorf("expected restored engine to apply fresh entry, got '%s'", e2.Text())
	}
}

func TestLoggerReceivesEvaluations(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := New(WithLogger(logger))
	e.SetText("1/0")
	e.Preview()
	e.SetText("1+1")
	e.Evaluate()

	out := buf.String()
	if !strings.Contains(out, "not displayable") {
		t.Errorf("expected non-finite preview to be logged, got: %s", out)
	}
	if !strings.Contains(out, "result=2") {
		t.Errorf("expected evaluation to be logged, got: %s", out)
	}
}
