// Package mediator provides building blocks for view.Mediator implementations.
//
// Base is meant to be embedded. It carries the mediator name, the view
// component slot and the Notifier used to send notifications, and supplies
// no-op lifecycle hooks so an embedding type only overrides what it needs:
//
//	type Toolbar struct {
//	    mediator.Base
//	}
//
//	func NewToolbar(n observer.Notifier) *Toolbar {
//	    t := &Toolbar{Base: mediator.NewBase("Toolbar", nil)}
//	    t.SetNotifier(n)
//	    return t
//	}
//
//	func (t *Toolbar) Interests() []string { return []string{statemachine.Changed} }
//
//	func (t *Toolbar) HandleNotification(ctx context.Context, n observer.Notification) error {
//	    return t.SendNotification(ctx, "toolbar/refresh", n.Body(), "")
//	}
//
// Func builds a complete mediator from a name, a list of interests and a
// callback, which is convenient for small listeners and tests.
package mediator
