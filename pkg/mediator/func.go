package mediator

import (
	"context"
	"slices"

	"github.com/dmitrymomot/statebus/pkg/observer"
)

// Func is a mediator whose behavior is a single callback.
type Func struct {
	Base
	interests []string
	handle    observer.NotifyFunc
}

// NewFunc creates a Func mediator interested in the given notification names.
func NewFunc(name string, interests []string, handle observer.NotifyFunc) *Func {
	return &Func{
		Base:      NewBase(name, nil),
		interests: slices.Clone(interests),
		handle:    handle,
	}
}

func (f *Func) Interests() []string {
	return slices.Clone(f.interests)
}

func (f *Func) HandleNotification(ctx context.Context, n observer.Notification) error {
	if f.handle == nil {
		return nil
	}
	return f.handle(ctx, n)
}
