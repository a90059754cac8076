// Package statemachine provides a finite-state machine driven entirely by
// notifications.
//
// A StateMachine is a mediator. Once registered with a view (usually through
// a facade) it listens for two notifications:
//
//   - Action ("StateMachine/notes/action"): the notification type names an
//     action. The machine looks the action up in the current state's
//     transition table and moves to the target state if it is registered.
//   - Cancel ("StateMachine/notes/cancel"): vetoes the transition that is
//     currently in its exit phase.
//
// Unknown actions and unknown targets are ignored, so partial transition
// tables are legal.
//
// # Transition protocol
//
// TransitionTo runs these steps in order:
//
//  1. A nil target is ignored.
//  2. The cancellation flag is cleared.
//  3. A transition to the current state is ignored. Otherwise the current
//     state's exiting notification is sent with the target state as body.
//  4. If a handler sent Cancel while the exiting notification was being
//     delivered, the flag is cleared and the machine stays where it is.
//  5. The target's entering notification is sent with the target as body.
//  6. The target becomes the current state.
//  7. Changed ("StateMachine/notes/changed") is sent with the new current
//     state as body.
//
// All notifications carry the name of the target state as their type.
// Delivery is synchronous, so handlers may send further actions from inside
// an entering or Changed handler.
//
// # Usage
//
//	f := facade.New()
//
//	opened := statemachine.NewState("opened",
//		statemachine.WithExiting("door/closing"),
//		statemachine.WithTransition("close", "closed"),
//	)
//	closed := statemachine.NewState("closed",
//		statemachine.WithTransition("open", "opened"),
//	)
//
//	machine := statemachine.New(f,
//		statemachine.WithState(closed, true),
//		statemachine.WithState(opened, false),
//	)
//	if err := f.RegisterMediator(ctx, machine); err != nil {
//		return err
//	}
//
//	err := statemachine.SendAction(ctx, f, "open", nil)
//
// # Concurrency
//
// The state registry is safe for concurrent use. Transitions are not: a
// machine expects actions to be sent from one goroutine at a time.
package statemachine
