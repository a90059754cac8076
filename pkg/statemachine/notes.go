package statemachine

import (
	"context"

	"github.com/dmitrymomot/statebus/pkg/observer"
)

// Reserved names of the state machine protocol.
const (
	Name    = "StateMachine"
	Action  = Name + "/notes/action"
	Cancel  = Name + "/notes/cancel"
	Changed = Name + "/notes/changed"
)

// SendAction asks the machine listening on n to perform action.
func SendAction(ctx context.Context, n observer.Notifier, action string, body any) error {
	return n.SendNotification(ctx, Action, body, action)
}

// SendCancel vetoes the transition currently in its exit phase.
func SendCancel(ctx context.Context, n observer.Notifier) error {
	return n.SendNotification(ctx, Cancel, nil, "")
}
