package model

import "log/slog"

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for registry changes.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}
