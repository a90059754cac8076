package broadcast

import "log/slog"

// Option configures a MemoryBroadcaster.
type Option func(*memoryConfig)

type memoryConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report dropped subscribers.
func WithLogger(l *slog.Logger) Option {
	return func(c *memoryConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// RelayOption configures a Relay.
type RelayOption func(*Relay)

// WithRelayLogger sets the logger used by a Relay.
func WithRelayLogger(l *slog.Logger) RelayOption {
	return func(r *Relay) {
		if l != nil {
			r.logger = l
		}
	}
}
