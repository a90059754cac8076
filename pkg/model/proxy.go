package model

import "context"

// DefaultName is used when a proxy is created without a name.
const DefaultName = "Proxy"

// Proxy holds a named piece of application data.
type Proxy interface {
	Name() string
	Data() any
	SetData(data any)
	OnRegister(ctx context.Context)
	OnRemove(ctx context.Context)
}

// BaseProxy implements Proxy with no-op lifecycle hooks. Embed it to build
// domain proxies.
type BaseProxy struct {
	name string
	data any
}

// NewBaseProxy creates a BaseProxy. An empty name falls back to DefaultName.
func NewBaseProxy(name string, data any) *BaseProxy {
	if name == "" {
		name = DefaultName
	}
	return &BaseProxy{name: name, data: data}
}

func (p *BaseProxy) Name() string { return p.name }

func (p *BaseProxy) Data() any { return p.data }

func (p *BaseProxy) SetData(data any) { p.data = data }

func (p *BaseProxy) OnRegister(context.Context) {}

func (p *BaseProxy) OnRemove(context.Context) {}
