// Package controller maps notification names to short-lived commands.
//
// A Controller subscribes itself to the view for every registered command
// name. When a matching notification is dispatched, it builds a fresh command
// from the stored factory, executes it, and discards it, so commands never
// carry state between invocations.
//
// Basic usage:
//
//	v := view.New()
//	c := controller.New(v)
//
//	c.RegisterCommand("user/login", func() controller.Command {
//		return controller.CommandFunc(func(ctx context.Context, n observer.Notification) error {
//			return auth.Login(ctx, n.Body())
//		})
//	})
//
//	err := v.NotifyObservers(ctx, observer.NewNotification("user/login", creds, ""))
//
// # Macro commands
//
// Macro composes several factories into one. Each sub-command is created fresh
// and executed in order, and the first error stops the sequence:
//
//	c.RegisterCommand("startup", controller.Macro(prepareModel, prepareView))
package controller
