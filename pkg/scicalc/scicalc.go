// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scicalc provides the incremental expression engine behind a
// scientific calculator keypad.
//
// An Engine owns a text buffer that is edited one key at a time. After every
// edit the buffer is run through normalize, scan, parse, eval and format to
// produce a preview. Nothing in this package returns an error to the caller of
// an edit operation: a buffer that cannot be evaluated simply has an empty
// preview.
//
// An Engine is not safe for concurrent use.
package scicalc

import (
	"fmt"
	"log/slog"

	"nickandperla.net/scicalc/internal/eval"
	"nickandperla.net/scicalc/internal/format"
	"nickandperla.net/scicalc/internal/normalize"
	"nickandperla.net/scicalc/internal/parser"
	"nickandperla.net/scicalc/internal/scanner"
	"nickandperla.net/scicalc/internal/termrange"
)

// AngleMode selects the unit used by trigonometric functions.
type AngleMode = eval.AngleMode

// Angle mode constants.
const (
	Radians = eval.Radians
	Degrees = eval.Degrees
)

// ParseAngleMode parses "deg"/"rad" (any case) into an AngleMode.
func ParseAngleMode(s string) (AngleMode, bool) {
	return eval.ParseAngleMode(s)
}

// State is the complete observable state of an Engine.
type State struct {
	Text          string
	Inverse       bool
	Angle         AngleMode
	JustEvaluated bool
}

// Engine is the calculator input engine.
type Engine struct {
	state   State
	decimal rune
	logger  *slog.Logger

	memo struct {
		valid   bool
		text    string
		angle   AngleMode
		preview string
	}
}

// New creates an Engine in degrees mode with an empty buffer.
func New(opts ...Option) *Engine {
	e := &Engine{
		state:   State{Angle: Degrees},
		decimal: '.',
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Text returns the current expression buffer.
func (e *Engine) Text() string { return e.state.Text }

// Inverse reports whether inverse mode is on.
func (e *Engine) Inverse() bool { return e.state.Inverse }

// Angle returns the current angle mode.
func (e *Engine) Angle() AngleMode { return e.state.Angle }

// JustEvaluated reports whether the buffer holds a freshly committed result.
func (e *Engine) JustEvaluated() bool { return e.state.JustEvaluated }

// State returns a copy of the engine state.
func (e *Engine) State() State { return e.state }

// Restore replaces the engine state, e.g. with one loaded from a store.
func (e *Engine) Restore(s State) {
	if !withinLimit(s.Text) {
		e.logger.Warn("restore: text too long, ignoring", "runes", len([]rune(s.Text)))
		return
	}
	e.state = s
}

// Preview returns the formatted value of the buffer, or "" when the buffer is
// incomplete or cannot be evaluated.
func (e *Engine) Preview() string {
	text, angle := e.state.Text, e.state.Angle
	if e.memo.valid && e.memo.text == text && e.memo.angle == angle {
		return e.memo.preview
	}
	p := e.preview(text, angle)
	e.memo.valid = true
	e.memo.text = text
	e.memo.angle = angle
	e.memo.preview = p
	return p
}

func (e *Engine) preview(text string, angle AngleMode) string {
	if !termrange.Complete(text) {
		return ""
	}
	v, err := Evaluate(text, angle)
	if err != nil {
		e.logger.Debug("preview: evaluation failed", "text", text, "error", err)
		return ""
	}
	s, err := format.Format(v, e.decimal)
	if err != nil {
		e.logger.Debug("preview: result not displayable", "text", text, "value", v, "error", err)
		return ""
	}
	return s
}

// Evaluate runs the whole pipeline over text and returns the raw value.
// Unlike Preview it reports why evaluation failed and does not apply the
// completeness check.
func Evaluate(text string, angle AngleMode) (float64, error) {
	norm, err := normalize.Normalize(text)
	if err != nil {
		return 0, err
	}
	tokens, err := scanner.Tokenize(norm)
	if err != nil {
		return 0, err
	}
	prog := parser.Parse(tokens)
	v, err := eval.New(eval.WithAngleMode(angle)).Eval(prog)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", norm, err)
	}
	return v, nil
}

// Preview returns the preview string for text, as an Engine configured with
// opts would show it.
func Preview(text string, opts ...Option) string {
	e := New(opts...)
	e.state.Text = text
	return e.Preview()
}
