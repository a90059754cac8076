// Package model is a registry of named data proxies.
//
// A Proxy wraps a piece of application data and is looked up by name from
// commands and mediators. Registering a proxy under an existing name replaces
// it. OnRegister and OnRemove hooks run outside the registry lock, so a hook
// may use the model itself.
//
//	m := model.New()
//	m.RegisterProxy(ctx, model.NewBaseProxy("settings", cfg))
//	p := m.RetrieveProxy("settings")
package model
