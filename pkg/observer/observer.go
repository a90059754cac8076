package observer

import "context"

// NotifyFunc is the callback invoked for a delivered notification.
type NotifyFunc func(ctx context.Context, n Notification) error

// Observer binds a callback to the context that owns it.
type Observer struct {
	notify NotifyFunc
	owner  any
}

// NewObserver creates an observer. The owner must be comparable, typically
// a pointer to the owning component.
func NewObserver(notify NotifyFunc, owner any) *Observer {
	return &Observer{
		notify: notify,
		owner:  owner,
	}
}

// NotifyObserver invokes the callback and returns its error unchanged.
// An observer without a callback ignores the notification.
func (o *Observer) NotifyObserver(ctx context.Context, n Notification) error {
	if o.notify == nil {
		return nil
	}
	return o.notify(ctx, n)
}

// Context returns the owning context.
func (o *Observer) Context() any {
	return o.owner
}

// CompareContext reports whether c is the same owner as the observer's
// context. Pointers compare by identity, never by the value they point to.
func (o *Observer) CompareContext(c any) bool {
	return o.owner == c
}
