// Package observer provides the message and subscription primitives shared by
// every other package in statebus.
//
// A Notification is a named, immutable message with an optional body and an
// optional free-form type string. An Observer binds a callback to an owning
// context value; the context is what identifies the observer when it has to
// be removed again, so two observers with the same callback but different
// contexts are different observers.
//
// # Usage
//
//	n := observer.NewNotification("user/created", user, "")
//	o := observer.NewObserver(func(ctx context.Context, n observer.Notification) error {
//	    log.Println(n.Name())
//	    return nil
//	}, owner)
//
//	if err := o.NotifyObserver(ctx, n); err != nil {
//	    // handler errors are returned unchanged
//	}
//
// Components that emit notifications depend on the Notifier interface rather
// than on a concrete bus, which keeps them testable with a stub.
package observer
