package observer

import "context"

// Notifier sends notifications. The facade implements it; components that
// only need to emit notifications should depend on this interface.
type Notifier interface {
	SendNotification(ctx context.Context, name string, body any, typ string) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, name string, body any, typ string) error

// SendNotification calls f.
func (f NotifierFunc) SendNotification(ctx context.Context, name string, body any, typ string) error {
	return f(ctx, name, body, typ)
}
