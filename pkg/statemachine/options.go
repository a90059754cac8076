package statemachine

import "log/slog"

// Option configures a StateMachine during construction.
type Option func(*StateMachine)

// WithLogger sets the logger used for transitions and ignored actions.
func WithLogger(l *slog.Logger) Option {
	return func(sm *StateMachine) {
		if l != nil {
			sm.logger = l
		}
	}
}

// WithState registers state, marking it initial when initial is true.
func WithState(state *State, initial bool) Option {
	return func(sm *StateMachine) {
		sm.RegisterState(state, initial)
	}
}
