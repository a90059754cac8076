// Package view implements the notification bus: the registry of mediators and
// the registry of observers keyed by notification name.
//
// Delivery is synchronous. NotifyObservers copies the observer list for a
// notification name before invoking anything, so handlers that register or
// remove mediators while a notification is being delivered do not change who
// receives that notification. Handlers may send further notifications from
// inside a handler; the call simply nests on the caller's stack.
//
// # Usage
//
//	v := view.New(view.WithLogger(log))
//
//	if err := v.RegisterMediator(ctx, myMediator); err != nil {
//	    // returned by myMediator.OnRegister
//	}
//
//	err := v.NotifyObservers(ctx, observer.NewNotification("user/created", u, ""))
//
// # Error Handling
//
// Looking up or removing something that is not registered is a no-op, and so
// is registering a mediator under a name that is already taken. The only
// errors a View returns are the ones produced by handlers; the first handler
// error stops delivery and is returned to the caller unchanged.
//
// # Concurrency
//
// The registries are guarded by a RWMutex that is never held while a handler
// runs. Mediators themselves are not made goroutine-safe by the View.
package view
