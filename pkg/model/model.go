package model

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/statebus/pkg/logger"
)

// Model stores proxies by name.
type Model struct {
	proxies map[string]Proxy
	logger  *slog.Logger
	mu      sync.RWMutex
}

// New creates an empty Model.
func New(opts ...Option) *Model {
	m := &Model{
		proxies: make(map[string]Proxy),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RegisterProxy stores p under its name, replacing any previous proxy, and
// calls p.OnRegister.
func (m *Model) RegisterProxy(ctx context.Context, p Proxy) {
	if p == nil {
		return
	}

	m.mu.Lock()
	m.proxies[p.Name()] = p
	m.mu.Unlock()

	m.logger.DebugContext(ctx, "proxy registered", logger.Proxy(p.Name()))
	p.OnRegister(ctx)
}

// RetrieveProxy returns the proxy registered under name, or nil.
func (m *Model) RetrieveProxy(name string) Proxy {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.proxies[name]
}

// HasProxy reports whether a proxy is registered under name.
func (m *Model) HasProxy(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.proxies[name]
	return ok
}

// RemoveProxy removes the proxy registered under name, calls its OnRemove hook
// and returns it. It returns nil if name is unknown.
func (m *Model) RemoveProxy(ctx context.Context, name string) Proxy {
	m.mu.Lock()
	p, ok := m.proxies[name]
	delete(m.proxies, name)
	m.mu.Unlock()

	if !ok {
		return nil
	}

	m.logger.DebugContext(ctx, "proxy removed", logger.Proxy(name))
	p.OnRemove(ctx)
	return p
}
