package view

import "log/slog"

// Option configures a View.
type Option func(*View)

// WithLogger sets the logger used for registry events. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}
