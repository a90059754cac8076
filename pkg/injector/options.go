package injector

import "log/slog"

// Option configures an Injector.
type Option func(*Injector)

// WithLogger sets the logger for the injector and the machines it builds.
func WithLogger(l *slog.Logger) Option {
	return func(i *Injector) {
		if l != nil {
			i.logger = l
		}
	}
}
