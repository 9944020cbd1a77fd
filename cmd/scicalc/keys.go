package main

import (
	"nickandperla.net/scicalc/pkg/scicalc"
)

// action is the outcome of a key press beyond editing the engine.
type action int

const (
	actNone action = iota
	actEvaluated
	actQuit
)

// functionKeys maps single letters onto function names.
var functionKeys = map[rune]string{
	's': "sin",
	'c': "cos",
	't': "tan",
	'l': "ln",
	'g': "log10",
	'q': "sqrt",
}

// press applies one keypad key to the engine. Unknown keys are ignored.
func press(e *scicalc.Engine, r rune) action {
	if name, ok := functionKeys[r]; ok {
		e.AddFunction(name)
		return actNone
	}
	switch r {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		e.AddDigit(r)
	case '.', ',':
		e.AddDot()
	case '+', '-', '*', '/', '^', 'x', '×', '÷', '−':
		e.AddBinaryOp(r)
	case '(':
		e.AddLeftParen()
	case ')':
		e.AddRightParen()
	case 'p', 'π':
		e.AddConstant("π")
	case 'e':
		e.AddConstant("e")
	case '!':
		e.AddFactorial()
	case 'r':
		e.ReciprocalOfLastTerm()
	case 'n':
		e.ToggleSignOfLastNumber()
	case 'i':
		e.ToggleInvMode()
	case 'd':
		e.ToggleAngleMode()
	case 0x7f, 0x08:
		e.Backspace()
	case 'C', 0x1b:
		e.ClearAll()
	case '=', '\r', '\n':
		e.Evaluate()
		if e.JustEvaluated() {
			return actEvaluated
		}
	case 0x04, 0x03:
		return actQuit
	}
	return actNone
}

// status renders the engine for a single display line.
func status(e *scicalc.Engine) string {
	mode := e.Angle().String()
	if e.Inverse() {
		mode += " INV"
	}
	line := "[" + mode + "] " + e.Text()
	if p := e.Preview(); p != "" && p != e.Text() {
		line += "  = " + p
	}
	return line
}
