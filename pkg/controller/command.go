package controller

import (
	"context"

	"github.com/dmitrymomot/statebus/pkg/observer"
)

// Command is a single unit of work triggered by a notification.
type Command interface {
	Execute(ctx context.Context, n observer.Notification) error
}

// CommandFunc adapts an ordinary function to the Command interface.
type CommandFunc func(ctx context.Context, n observer.Notification) error

func (f CommandFunc) Execute(ctx context.Context, n observer.Notification) error {
	return f(ctx, n)
}

// CommandFactory creates a new Command for every execution.
type CommandFactory func() Command

// Macro returns a factory for a command that runs fresh instances of the given
// sub-commands in order. Execution stops at the first error.
func Macro(factories ...CommandFactory) CommandFactory {
	return func() Command {
		return CommandFunc(func(ctx context.Context, n observer.Notification) error {
			for _, factory := range factories {
				if factory == nil {
					continue
				}
				cmd := factory()
				if cmd == nil {
					continue
				}
				if err := cmd.Execute(ctx, n); err != nil {
					return err
				}
			}
			return nil
		})
	}
}
