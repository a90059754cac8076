package statemachine

import (
	"maps"
	"sync"
)

// StateOption configures a State during construction.
type StateOption func(*State)

// WithEntering sets the notification sent when the state is entered.
func WithEntering(name string) StateOption {
	return func(s *State) {
		s.entering = name
	}
}

// WithExiting sets the notification sent when the state is about to be left.
func WithExiting(name string) StateOption {
	return func(s *State) {
		s.exiting = name
	}
}

// WithTransition maps action to the target state name.
func WithTransition(action, target string) StateOption {
	return func(s *State) {
		s.DefineTransition(action, target)
	}
}

// State is a named node with optional entering and exiting notifications
// and a table of action to target state names.
type State struct {
	name        string
	entering    string
	exiting     string
	transitions map[string]string
	mu          sync.RWMutex
}

// NewState creates a state with the given name.
func NewState(name string, opts ...StateOption) *State {
	s := &State{
		name:        name,
		transitions: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *State) Name() string { return s.name }

// Entering returns the entering notification name, or "" if unset.
func (s *State) Entering() string { return s.entering }

// Exiting returns the exiting notification name, or "" if unset.
func (s *State) Exiting() string { return s.exiting }

// DefineTransition maps action to target unless action is already mapped.
// It reports whether the mapping was added.
func (s *State) DefineTransition(action, target string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.transitions[action]; exists {
		return false
	}
	s.transitions[action] = target
	return true
}

// RemoveTransition deletes the mapping for action, if any.
func (s *State) RemoveTransition(action string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.transitions, action)
}

// Target returns the state name mapped to action.
func (s *State) Target(action string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target, ok := s.transitions[action]
	return target, ok
}

// Transitions returns a copy of the transition table.
func (s *State) Transitions() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.transitions)
}

func (s *State) String() string { return s.name }
