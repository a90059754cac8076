package statemachine_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/statebus/pkg/facade"
	"github.com/dmitrymomot/statebus/pkg/mediator"
	"github.com/dmitrymomot/statebus/pkg/observer"
	"github.com/dmitrymomot/statebus/pkg/statemachine"
)

func Example() {
	ctx := context.Background()
	f := facade.New()

	_ = f.RegisterMediator(ctx, mediator.NewFunc("printer", []string{statemachine.Changed},
		func(_ context.Context, n observer.Notification) error {
			fmt.Println("now", n.Type())
			return nil
		}))

	machine := statemachine.New(f,
		statemachine.WithState(statemachine.NewState("closed",
			statemachine.WithTransition("open", "opened"),
		), true),
		statemachine.WithState(statemachine.NewState("opened",
			statemachine.WithTransition("close", "closed"),
		), false),
	)
	_ = f.RegisterMediator(ctx, machine)

	_ = statemachine.SendAction(ctx, f, "open", nil)
	_ = statemachine.SendAction(ctx, f, "open", nil)
	_ = statemachine.SendAction(ctx, f, "close", nil)

	// Output:
	// now closed
	// now opened
	// now closed
}

func Example_cancel() {
	ctx := context.Background()
	f := facade.New()

	machine := statemachine.New(f,
		statemachine.WithState(statemachine.NewState("editing",
			statemachine.WithExiting("editing/leave"),
			statemachine.WithTransition("submit", "submitted"),
		), true),
		statemachine.WithState(statemachine.NewState("submitted"), false),
	)

	valid := false
	_ = f.RegisterMediator(ctx, mediator.NewFunc("validator", []string{"editing/leave"},
		func(ctx context.Context, _ observer.Notification) error {
			if !valid {
				return statemachine.SendCancel(ctx, f)
			}
			return nil
		}))
	_ = f.RegisterMediator(ctx, machine)

	_ = statemachine.SendAction(ctx, f, "submit", nil)
	fmt.Println(machine.CurrentState())

	valid = true
	_ = statemachine.SendAction(ctx, f, "submit", nil)
	fmt.Println(machine.CurrentState())

	// Output:
	// editing
	// submitted
}
