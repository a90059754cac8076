package view

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/statebus/pkg/logger"
	"github.com/dmitrymomot/statebus/pkg/observer"
)

// View routes notifications to observers and owns the mediator registry.
type View struct {
	mediators map[string]Mediator
	observers map[string][]*observer.Observer
	logger    *slog.Logger
	mu        sync.RWMutex
}

// New creates an empty View.
func New(opts ...Option) *View {
	v := &View{
		mediators: make(map[string]Mediator),
		observers: make(map[string][]*observer.Observer),
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// RegisterObserver appends o to the list for name, preserving registration order.
func (v *View) RegisterObserver(name string, o *observer.Observer) {
	if o == nil {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.observers[name] = append(v.observers[name], o)
}

// RemoveObserver removes the first observer for name owned by owner.
// The list entry is deleted once it is empty.
func (v *View) RemoveObserver(name string, owner any) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.removeObserverLocked(name, owner)
}

func (v *View) removeObserverLocked(name string, owner any) {
	observers, ok := v.observers[name]
	if !ok {
		return
	}

	if i := slices.IndexFunc(observers, func(o *observer.Observer) bool {
		return o.CompareContext(owner)
	}); i >= 0 {
		observers = slices.Delete(observers, i, i+1)
	}

	if len(observers) == 0 {
		delete(v.observers, name)
		return
	}
	v.observers[name] = observers
}

// HasObservers reports whether any observer is registered for name.
func (v *View) HasObservers(name string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	_, ok := v.observers[name]
	return ok
}

// NotifyObservers delivers n to a snapshot of the observers registered for
// its name, in registration order. The first handler error stops delivery.
func (v *View) NotifyObservers(ctx context.Context, n observer.Notification) error {
	v.mu.RLock()
	registered, ok := v.observers[n.Name()]
	if !ok {
		v.mu.RUnlock()
		return nil
	}
	snapshot := make([]*observer.Observer, len(registered))
	copy(snapshot, registered)
	v.mu.RUnlock()

	for _, o := range snapshot {
		if err := o.NotifyObserver(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

// RegisterMediator stores m and subscribes it to its interests, then calls
// m.OnRegister and returns its error. A name that is already registered
// leaves the existing mediator in place.
func (v *View) RegisterMediator(ctx context.Context, m Mediator) error {
	if m == nil {
		return nil
	}

	name := m.Name()

	v.mu.Lock()
	if _, exists := v.mediators[name]; exists {
		v.mu.Unlock()
		v.logger.DebugContext(ctx, "mediator already registered", logger.Mediator(name))
		return nil
	}
	v.mediators[name] = m

	interests := m.Interests()
	if len(interests) > 0 {
		// One observer is shared by every interest of the mediator.
		o := observer.NewObserver(m.HandleNotification, m)
		for _, interest := range interests {
			v.observers[interest] = append(v.observers[interest], o)
		}
	}
	v.mu.Unlock()

	v.logger.DebugContext(ctx, "mediator registered",
		logger.Mediator(name),
		slog.Any("interests", interests),
	)

	return m.OnRegister(ctx)
}

// RetrieveMediator returns the mediator registered under name, or nil.
func (v *View) RetrieveMediator(name string) Mediator {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.mediators[name]
}

// HasMediator reports whether a mediator is registered under name.
func (v *View) HasMediator(name string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	_, ok := v.mediators[name]
	return ok
}

// RemoveMediator unsubscribes and removes the mediator registered under name,
// calls its OnRemove hook and returns it. It returns nil if name is unknown.
func (v *View) RemoveMediator(ctx context.Context, name string) Mediator {
	v.mu.Lock()
	m, ok := v.mediators[name]
	if !ok {
		v.mu.Unlock()
		return nil
	}
	for _, interest := range m.Interests() {
		v.removeObserverLocked(interest, m)
	}
	delete(v.mediators, name)
	v.mu.Unlock()

	v.logger.DebugContext(ctx, "mediator removed", logger.Mediator(name))

	m.OnRemove(ctx)
	return m
}
