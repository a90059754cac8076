package facade

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/statebus/pkg/controller"
	"github.com/dmitrymomot/statebus/pkg/logger"
	"github.com/dmitrymomot/statebus/pkg/model"
	"github.com/dmitrymomot/statebus/pkg/observer"
	"github.com/dmitrymomot/statebus/pkg/view"
)

// Facade is the single entry point to a view, controller and model.
type Facade struct {
	key        string
	logger     *slog.Logger
	view       *view.View
	controller *controller.Controller
	model      *model.Model
}

var _ observer.Notifier = (*Facade)(nil)

// New creates a Facade with fresh registries.
func New(opts ...Option) *Facade {
	f := &Facade{
		key:    uuid.NewString(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.logger = f.logger.With(logger.Facade(f.key))
	f.view = view.New(view.WithLogger(f.logger))
	f.controller = controller.New(f.view, controller.WithLogger(f.logger))
	f.model = model.New(model.WithLogger(f.logger))

	return f
}

// Key returns the identifier of this facade.
func (f *Facade) Key() string { return f.key }

// View returns the underlying view.
func (f *Facade) View() *view.View { return f.view }

// Controller returns the underlying controller.
func (f *Facade) Controller() *controller.Controller { return f.controller }

// Model returns the underlying model.
func (f *Facade) Model() *model.Model { return f.model }

// RegisterCommand maps a notification name to a command factory.
func (f *Facade) RegisterCommand(name string, factory controller.CommandFactory) {
	f.controller.RegisterCommand(name, factory)
}

func (f *Facade) RemoveCommand(name string) {
	f.controller.RemoveCommand(name)
}

func (f *Facade) HasCommand(name string) bool {
	return f.controller.HasCommand(name)
}

// RegisterMediator adds m to the view. It returns the error from m's OnRegister hook.
func (f *Facade) RegisterMediator(ctx context.Context, m view.Mediator) error {
	return f.view.RegisterMediator(ctx, m)
}

func (f *Facade) RetrieveMediator(name string) view.Mediator {
	return f.view.RetrieveMediator(name)
}

func (f *Facade) RemoveMediator(ctx context.Context, name string) view.Mediator {
	return f.view.RemoveMediator(ctx, name)
}

func (f *Facade) HasMediator(name string) bool {
	return f.view.HasMediator(name)
}

func (f *Facade) RegisterProxy(ctx context.Context, p model.Proxy) {
	f.model.RegisterProxy(ctx, p)
}

func (f *Facade) RetrieveProxy(name string) model.Proxy {
	return f.model.RetrieveProxy(name)
}

func (f *Facade) RemoveProxy(ctx context.Context, name string) model.Proxy {
	return f.model.RemoveProxy(ctx, name)
}

func (f *Facade) HasProxy(name string) bool {
	return f.model.HasProxy(name)
}

// NotifyObservers dispatches n through the view.
func (f *Facade) NotifyObservers(ctx context.Context, n observer.Notification) error {
	return f.view.NotifyObservers(ctx, n)
}

// SendNotification builds a notification and dispatches it. Handler errors
// are returned unchanged.
func (f *Facade) SendNotification(ctx context.Context, name string, body any, typ string) error {
	f.logger.DebugContext(ctx, "sending notification",
		logger.Notification(name),
		slog.String("type", typ),
	)
	return f.view.NotifyObservers(ctx, observer.NewNotification(name, body, typ))
}
