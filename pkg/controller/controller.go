package controller

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/statebus/pkg/logger"
	"github.com/dmitrymomot/statebus/pkg/observer"
)

// Registrar is the part of the view the controller subscribes through.
type Registrar interface {
	RegisterObserver(name string, o *observer.Observer)
	RemoveObserver(name string, owner any)
}

// Controller dispatches notifications to registered command factories.
type Controller struct {
	view     Registrar
	commands map[string]CommandFactory
	logger   *slog.Logger
	mu       sync.RWMutex
}

// New creates a Controller that subscribes through view.
func New(view Registrar, opts ...Option) *Controller {
	c := &Controller{
		view:     view,
		commands: make(map[string]CommandFactory),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterCommand maps name to factory. The controller subscribes to name
// only the first time it is mapped; later calls replace the factory.
func (c *Controller) RegisterCommand(name string, factory CommandFactory) {
	c.mu.Lock()
	_, exists := c.commands[name]
	c.commands[name] = factory
	c.mu.Unlock()

	if !exists {
		c.view.RegisterObserver(name, observer.NewObserver(c.ExecuteCommand, c))
	}

	c.logger.Debug("command registered",
		logger.Command(name),
		slog.Bool("replaced", exists),
	)
}

// ExecuteCommand runs a fresh command for n. Unknown names are ignored.
func (c *Controller) ExecuteCommand(ctx context.Context, n observer.Notification) error {
	c.mu.RLock()
	factory, ok := c.commands[n.Name()]
	c.mu.RUnlock()

	if !ok || factory == nil {
		return nil
	}

	cmd := factory()
	if cmd == nil {
		return nil
	}

	c.logger.DebugContext(ctx, "executing command", logger.Command(n.Name()))
	return cmd.Execute(ctx, n)
}

// HasCommand reports whether a factory is registered for name.
func (c *Controller) HasCommand(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.commands[name]
	return ok
}

// RemoveCommand unsubscribes the controller from name and drops its factory.
func (c *Controller) RemoveCommand(name string) {
	c.mu.Lock()
	_, ok := c.commands[name]
	delete(c.commands, name)
	c.mu.Unlock()

	if !ok {
		return
	}

	c.view.RemoveObserver(name, c)
	c.logger.Debug("command removed", logger.Command(name))
}
