package eval

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"nickandperla.net/scicalc/internal/expr"
	"nickandperla.net/scicalc/internal/token"
)

// ErrEval is wrapped by every evaluation failure.
var ErrEval = errors.New("eval error")

// AngleMode selects the unit used by trigonometric functions.
type AngleMode int

const (
	// Radians is the zero value: trig functions take and return radians.
	Radians AngleMode = iota
	// Degrees converts trig inputs and inverse-trig outputs to degrees.
	Degrees
)

// String returns the string representation of an AngleMode.
func (m AngleMode) String() string {
	switch m {
	case Radians:
		return "RAD"
	case Degrees:
		return "DEG"
	default:
		return "UNKNOWN"
	}
}

// ParseAngleMode parses a string into an AngleMode.
func ParseAngleMode(s string) (AngleMode, bool) {
	switch strings.ToUpper(s) {
	case "RAD", "RADIANS":
		return Radians, true
	case "DEG", "DEGREES":
		return Degrees, true
	default:
		return Radians, false
	}
}

// Toggle returns the other angle mode.
func (m AngleMode) Toggle() AngleMode {
	if m == Degrees {
		return Radians
	}
	return Degrees
}

// Evaluator runs RPN programs on a float64 stack.
type Evaluator struct {
	angle AngleMode
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithAngleMode sets the trigonometric angle unit.
func WithAngleMode(m AngleMode) Option {
	return func(e *Evaluator) { e.angle = m }
}

// New creates a new Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval executes p and returns the single value left on the stack.
//
// Domain errors (division by zero, log of a negative number, factorial of a
// non-integer) are not errors: they produce Inf or NaN per IEEE-754.
func (e *Evaluator) Eval(p expr.RPN) (float64, error) {
	stack := make([]float64, 0, len(p))

	pop := func(t token.Token) (float64, error) {
		if len(stack) == 0 {
			return 0, fmt.Errorf("%w: stack underflow at %s", ErrEval, t)
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, nil
	}

	for _, t := range p {
		switch t.Kind {
		case token.NUMBER:
			stack = append(stack, t.Value)
		case token.PI:
			stack = append(stack, math.Pi)
		case token.E:
			stack = append(stack, math.E)

		case token.OPERATOR:
			right, err := pop(t)
			if err != nil {
				return 0, err
			}
			left, err := pop(t)
			if err != nil {
				return 0, err
			}
			stack = append(stack, binary(t.Op, left, right))

		case token.NEG:
			x, err := pop(t)
			if err != nil {
				return 0, err
			}
			stack = append(stack, -x)

		case token.FUNCTION:
			x, err := pop(t)
			if err != nil {
				return 0, err
			}
			v, err := e.call(t.Func, x)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)

		case token.PAREN:
			return 0, fmt.Errorf("%w: unbalanced parenthesis", ErrEval)
		}
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf("%w: %d values left on stack", ErrEval, len(stack))
	}
	return stack[0], nil
}

func binary(op byte, left, right float64) float64 {
	switch op {
	case '+':
		return left + right
	case '-':
		return left - right
	case '*':
		return left * right
	case '/':
		return left / right
	case '^':
		return math.Pow(left, right)
	}
	return math.NaN()
}
