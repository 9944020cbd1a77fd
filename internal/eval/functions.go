// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package eval implements the RPN evaluator.
package eval

import (
	"fmt"
	"math"
)

// MaxFactorial is the largest n for which n! is finite in float64.
const MaxFactorial = 170

const factorialTolerance = 1e-9

// call applies the named unary function to x.
func (e *Evaluator) call(name string, x float64) (float64, error) {
	switch name {
	case "sin":
		return math.Sin(e.toRadians(x)), nil
	case "cos":
		return math.Cos(e.toRadians(x)), nil
	case "tan":
		return math.Tan(e.toRadians(x)), nil
	case "asin":
		return e.fromRadians(math.Asin(x)), nil
	case "acos":
		return e.fromRadians(math.Acos(x)), nil
	case "atan":
		return e.fromRadians(math.Atan(x)), nil
	case "ln":
		return math.Log(x), nil
	case "log10":
		return math.Log10(x), nil
	case "sqrt":
		return math.Sqrt(x), nil
	case "fact":
		return Factorial(x), nil
	}
	return 0, fmt.Errorf("%w: unknown function %q", ErrEval, name)
}

func (e *Evaluator) toRadians(x float64) float64 {
	if e.angle == Degrees {
		return x * math.Pi / 180
	}
	return x
}

func (e *Evaluator) fromRadians(x float64) float64 {
	if e.angle == Degrees {
		return x * 180 / math.Pi
	}
	return x
}

// Factorial returns n! for x within 1e-9 of an integer n in [0, 170], and NaN
// for anything else.
func Factorial(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	n := math.Round(x)
	if math.Abs(x-n) > factorialTolerance || n < 0 || n > MaxFactorial {
		return math.NaN()
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result
}
