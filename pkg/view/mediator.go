package view

import (
	"context"

	"github.com/dmitrymomot/statebus/pkg/observer"
)

// Mediator is a named component that receives the notifications it lists in
// Interests through HandleNotification.
type Mediator interface {
	Name() string
	Interests() []string
	HandleNotification(ctx context.Context, n observer.Notification) error
	// OnRegister is called after the mediator and its observers are in place.
	OnRegister(ctx context.Context) error
	// OnRemove is called after the mediator and its observers are gone.
	OnRemove(ctx context.Context)
}
