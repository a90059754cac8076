package statemachine

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/statebus/pkg/logger"
	"github.com/dmitrymomot/statebus/pkg/mediator"
	"github.com/dmitrymomot/statebus/pkg/observer"
)

// StateMachine is a mediator that moves between registered states in
// response to Action notifications. The current state is kept in the
// mediator's view component slot.
type StateMachine struct {
	mediator.Base

	states   map[string]*State
	initial  *State
	canceled bool
	logger   *slog.Logger
	mu       sync.RWMutex
}

// New creates a state machine that sends its notifications through n.
func New(n observer.Notifier, opts ...Option) *StateMachine {
	sm := &StateMachine{
		Base:   mediator.NewBase(Name, nil),
		states: make(map[string]*State),
		logger: logger.Discard(),
	}
	sm.SetNotifier(n)
	for _, opt := range opts {
		opt(sm)
	}
	return sm
}

// RegisterState adds state to the machine. Nil states and names that are
// already registered are ignored. It reports whether the state was added.
func (sm *StateMachine) RegisterState(state *State, initial bool) bool {
	if state == nil {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.states[state.Name()]; exists {
		return false
	}
	sm.states[state.Name()] = state
	if initial {
		sm.initial = state
	}
	return true
}

// RemoveState removes the named state. The current state cannot be removed.
// It reports whether a state was removed.
func (sm *StateMachine) RemoveState(name string) bool {
	if cur := sm.CurrentState(); cur != nil && cur.Name() == name {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	state, ok := sm.states[name]
	if !ok {
		return false
	}
	delete(sm.states, name)
	if sm.initial == state {
		sm.initial = nil
	}
	return true
}

// State returns the registered state with the given name.
func (sm *StateMachine) State(name string) (*State, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	s, ok := sm.states[name]
	return s, ok
}

// States returns the registered state names in sorted order.
func (sm *StateMachine) States() []string {
	sm.mu.RLock()
	names := make([]string, 0, len(sm.states))
	for name := range sm.states {
		names = append(names, name)
	}
	sm.mu.RUnlock()

	slices.Sort(names)
	return names
}

// InitialState returns the state entered on registration, or nil.
func (sm *StateMachine) InitialState() *State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.initial
}

// CurrentState returns the current state, or nil before the first transition.
func (sm *StateMachine) CurrentState() *State {
	s, _ := sm.ViewComponent().(*State)
	return s
}

func (sm *StateMachine) Interests() []string {
	return []string{Action, Cancel}
}

// HandleNotification performs actions and records cancellations.
func (sm *StateMachine) HandleNotification(ctx context.Context, n observer.Notification) error {
	switch n.Name() {
	case Action:
		return sm.handleAction(ctx, n.Type())
	case Cancel:
		sm.canceled = true
		sm.logger.DebugContext(ctx, "transition cancel requested", logger.State(sm.currentName()))
	}
	return nil
}

func (sm *StateMachine) handleAction(ctx context.Context, action string) error {
	cur := sm.CurrentState()
	if cur == nil {
		sm.logger.DebugContext(ctx, "action ignored without current state", logger.Action(action))
		return nil
	}

	target, ok := cur.Target(action)
	if !ok {
		sm.logger.DebugContext(ctx, "action not defined for state",
			logger.Action(action),
			logger.State(cur.Name()),
		)
		return nil
	}

	next, ok := sm.State(target)
	if !ok {
		sm.logger.DebugContext(ctx, "action target is not registered",
			logger.Action(action),
			logger.Transition(cur.Name(), target),
		)
		return nil
	}

	return sm.TransitionTo(ctx, next)
}

// OnRegister enters the initial state, if one was designated.
func (sm *StateMachine) OnRegister(ctx context.Context) error {
	initial := sm.InitialState()
	if initial == nil {
		return nil
	}
	return sm.TransitionTo(ctx, initial)
}

// TransitionTo moves the machine to next. A transition to the current state
// does nothing. A handler of the current state's exiting notification may
// veto the transition by sending Cancel. Handler errors abort the
// transition at the point they occur and are returned.
func (sm *StateMachine) TransitionTo(ctx context.Context, next *State) error {
	if next == nil {
		return nil
	}

	sm.canceled = false

	cur := sm.CurrentState()
	if cur != nil {
		if next.Name() == cur.Name() {
			return nil
		}
		if cur.Exiting() != "" {
			if err := sm.SendNotification(ctx, cur.Exiting(), next, next.Name()); err != nil {
				sm.canceled = false
				return err
			}
		}
	}

	if sm.canceled {
		sm.canceled = false
		sm.logger.InfoContext(ctx, "transition canceled", logger.Transition(sm.currentName(), next.Name()))
		return nil
	}

	if next.Entering() != "" {
		if err := sm.SendNotification(ctx, next.Entering(), next, next.Name()); err != nil {
			return err
		}
	}

	sm.SetViewComponent(next)
	sm.logger.InfoContext(ctx, "state changed", logger.Transition(nameOf(cur), next.Name()))

	return sm.SendNotification(ctx, Changed, next, next.Name())
}

func (sm *StateMachine) currentName() string {
	return nameOf(sm.CurrentState())
}

func nameOf(s *State) string {
	if s == nil {
		return ""
	}
	return s.Name()
}
