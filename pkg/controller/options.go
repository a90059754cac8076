package controller

import "log/slog"

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for command registration and execution.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}
