package facade

import "log/slog"

// Option configures a Facade.
type Option func(*Facade)

// WithLogger sets the logger shared by the facade and its registries.
func WithLogger(l *slog.Logger) Option {
	return func(f *Facade) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithKey sets the key that identifies this facade in log records.
// By default a random UUID is used.
func WithKey(key string) Option {
	return func(f *Facade) {
		if key != "" {
			f.key = key
		}
	}
}
