package mediator

import (
	"context"

	"github.com/dmitrymomot/statebus/pkg/observer"
)

// DefaultName is used when a mediator is created without a name.
const DefaultName = "Mediator"

// Base implements the view.Mediator interface with no interests and no-op hooks.
type Base struct {
	name          string
	viewComponent any
	notifier      observer.Notifier
}

// NewBase creates a Base. An empty name falls back to DefaultName.
func NewBase(name string, viewComponent any) Base {
	if name == "" {
		name = DefaultName
	}
	return Base{
		name:          name,
		viewComponent: viewComponent,
	}
}

func (b *Base) Name() string {
	return b.name
}

// ViewComponent returns the component this mediator manages.
func (b *Base) ViewComponent() any {
	return b.viewComponent
}

func (b *Base) SetViewComponent(c any) {
	b.viewComponent = c
}

// Notifier returns the notifier used by SendNotification, or nil.
func (b *Base) Notifier() observer.Notifier {
	return b.notifier
}

func (b *Base) SetNotifier(n observer.Notifier) {
	b.notifier = n
}

// SendNotification forwards to the configured notifier.
func (b *Base) SendNotification(ctx context.Context, name string, body any, typ string) error {
	if b.notifier == nil {
		return ErrNotifierNotSet
	}
	return b.notifier.SendNotification(ctx, name, body, typ)
}

func (b *Base) Interests() []string {
	return nil
}

func (b *Base) HandleNotification(context.Context, observer.Notification) error {
	return nil
}

func (b *Base) OnRegister(context.Context) error {
	return nil
}

func (b *Base) OnRemove(context.Context) {}
