package scicalc

import "log/slog"

// Option configures an Engine.
type Option func(*Engine)

// WithAngleMode sets the initial angle mode.
func WithAngleMode(m AngleMode) Option {
	return func(e *Engine) {
		e.state.Angle = m
	}
}

// WithDecimalSeparator sets the separator used when formatting results and
// inserted by AddDot. Only '.' and ',' are accepted.
func WithDecimalSeparator(sep rune) Option {
	return func(e *Engine) {
		if sep == '.' || sep == ',' {
			e.decimal = sep
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithState starts the engine from a previously saved state.
func WithState(s State) Option {
	return func(e *Engine) {
		e.Restore(s)
	}
}
