// Package broadcast fans bus notifications out to asynchronous subscribers.
//
// The bus delivers notifications synchronously on the sender's goroutine.
// Components that want to observe a machine without taking part in its
// transitions (loggers, UIs, metrics) subscribe to a Broadcaster instead and
// read from a channel at their own pace. A Relay is the mediator that feeds
// the broadcaster.
//
//	changes := broadcast.NewMemoryBroadcaster[observer.Notification](16)
//	defer changes.Close()
//
//	sub := changes.Subscribe(ctx)
//	go func() {
//		for msg := range sub.Receive(ctx) {
//			fmt.Println(msg.Data.Type())
//		}
//	}()
//
//	relay := broadcast.NewRelay("changes", changes, []string{statemachine.Changed})
//	_ = f.RegisterMediator(ctx, relay)
//
// The memory implementation never blocks the sender. A subscriber whose
// buffer is full misses the message and is dropped. Subscribers are also
// removed when their context is cancelled and when the broadcaster closes.
package broadcast
