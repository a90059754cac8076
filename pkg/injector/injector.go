package injector

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/statebus/pkg/logger"
	"github.com/dmitrymomot/statebus/pkg/observer"
	"github.com/dmitrymomot/statebus/pkg/statemachine"
	"github.com/dmitrymomot/statebus/pkg/view"
)

// Registrar receives the built machine. A facade satisfies it.
type Registrar interface {
	observer.Notifier
	RegisterMediator(ctx context.Context, m view.Mediator) error
}

// Injector turns a Definition into a registered StateMachine.
type Injector struct {
	def    *Definition
	logger *slog.Logger
}

// New creates an Injector for def.
func New(def *Definition, opts ...Option) *Injector {
	i := &Injector{
		def:    def,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Inject builds a StateMachine from the definition and registers it with r.
// Registration enters the initial state, so errors from that transition are
// returned together with the registered machine.
func (i *Injector) Inject(ctx context.Context, r Registrar) (*statemachine.StateMachine, error) {
	if i.def == nil {
		return nil, ErrInvalidDefinition
	}
	if err := i.def.Validate(); err != nil {
		return nil, err
	}

	sm := statemachine.New(r, statemachine.WithLogger(i.logger))
	for _, state := range i.def.BuildStates() {
		if !sm.RegisterState(state, i.def.IsInitial(state.Name())) {
			i.logger.WarnContext(ctx, "duplicate state in definition ignored", logger.State(state.Name()))
		}
	}

	i.logger.DebugContext(ctx, "injecting state machine",
		slog.Int("states", len(sm.States())),
		logger.State(i.def.Initial),
	)

	if err := r.RegisterMediator(ctx, sm); err != nil {
		return sm, errors.Join(ErrFailedToInject, err)
	}
	return sm, nil
}
