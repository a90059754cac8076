// Package facade composes a view, a controller and a model behind one entry
// point.
//
// A Facade is an explicit application context. There is no process-wide
// instance: construct one with New and pass it to whatever needs to register
// components or send notifications.
//
//	f := facade.New(facade.WithLogger(log))
//
//	if err := f.RegisterMediator(ctx, machine); err != nil {
//		return err
//	}
//	f.RegisterCommand("reset", resetCommand)
//
//	err := f.SendNotification(ctx, "reset", nil, "")
//
// Facade implements observer.Notifier, so it can be handed to components that
// only need to send notifications, such as a state machine.
package facade
