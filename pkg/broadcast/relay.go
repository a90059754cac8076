package broadcast

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/statebus/pkg/logger"
	"github.com/dmitrymomot/statebus/pkg/mediator"
	"github.com/dmitrymomot/statebus/pkg/observer"
)

// Relay is a mediator that forwards the notifications it is interested in
// to a Broadcaster.
type Relay struct {
	mediator.Base

	interests []string
	out       Broadcaster[observer.Notification]
	logger    *slog.Logger
}

// NewRelay creates a Relay named name that forwards the given notifications to out.
func NewRelay(name string, out Broadcaster[observer.Notification], interests []string, opts ...RelayOption) *Relay {
	r := &Relay{
		Base:      mediator.NewBase(name, nil),
		interests: slices.Clone(interests),
		out:       out,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Relay) Interests() []string {
	return slices.Clone(r.interests)
}

// HandleNotification broadcasts n. Broadcast errors are returned to the sender.
func (r *Relay) HandleNotification(ctx context.Context, n observer.Notification) error {
	if err := r.out.Broadcast(ctx, Message[observer.Notification]{Data: n}); err != nil {
		r.logger.ErrorContext(ctx, "relay broadcast failed",
			logger.Mediator(r.Name()),
			logger.Notification(n.Name()),
			logger.Error(err),
		)
		return err
	}
	return nil
}
