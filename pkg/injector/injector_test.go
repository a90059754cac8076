package injector_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statebus/pkg/facade"
	"github.com/dmitrymomot/statebus/pkg/injector"
	"github.com/dmitrymomot/statebus/pkg/mediator"
	"github.com/dmitrymomot/statebus/pkg/observer"
	"github.com/dmitrymomot/statebus/pkg/statemachine"
)

func TestDefinition_BuildStates(t *testing.T) {
	t.Parallel()

	def := &injector.Definition{
		Initial: "b",
		States: []injector.StateDefinition{
			{Name: "a", Entering: "a/in", Transitions: []injector.TransitionDefinition{
				{Action: "go", Target: "b"},
				{Action: "go", Target: "c"},
			}},
			{Name: "b", Exiting: "b/out"},
		},
	}

	states := def.BuildStates()
	require.Len(t, states, 2)

	assert.Equal(t, "a", states[0].Name())
	assert.Equal(t, "a/in", states[0].Entering())
	assert.Equal(t, map[string]string{"go": "b"}, states[0].Transitions(), "first transition wins")

	assert.Equal(t, "b", states[1].Name())
	assert.Equal(t, "b/out", states[1].Exiting())
	assert.Empty(t, states[1].Transitions())

	assert.True(t, def.IsInitial("b"))
	assert.False(t, def.IsInitial("a"))
	assert.False(t, (&injector.Definition{}).IsInitial(""))
}

func TestInjector_Inject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("registers and enters the initial state", func(t *testing.T) {
		t.Parallel()
		def, err := injector.LoadFile(ctx, filepath.Join("testdata", "door.xml"))
		require.NoError(t, err)

		f := facade.New()
		var entered []string
		require.NoError(t, f.RegisterMediator(ctx, mediator.NewFunc("watcher",
			[]string{"door/closed", "door/locked", statemachine.Changed},
			func(_ context.Context, n observer.Notification) error {
				entered = append(entered, n.Name())
				return nil
			})))

		sm, err := injector.New(def).Inject(ctx, f)
		require.NoError(t, err)

		assert.Same(t, sm, f.RetrieveMediator(statemachine.Name))
		assert.Equal(t, []string{"closed", "locked", "opened"}, sm.States())
		assert.Equal(t, "closed", sm.CurrentState().Name())
		assert.Equal(t, []string{"door/closed", statemachine.Changed}, entered)

		require.NoError(t, statemachine.SendAction(ctx, f, "lock", nil))
		assert.Equal(t, "locked", sm.CurrentState().Name())
	})

	t.Run("without initial state", func(t *testing.T) {
		t.Parallel()
		f := facade.New()
		sm, err := injector.New(&injector.Definition{
			States: []injector.StateDefinition{{Name: "a"}},
		}).Inject(ctx, f)

		require.NoError(t, err)
		assert.Nil(t, sm.CurrentState())
	})

	t.Run("duplicate states keep the first", func(t *testing.T) {
		t.Parallel()
		f := facade.New()
		sm, err := injector.New(&injector.Definition{
			Initial: "a",
			States: []injector.StateDefinition{
				{Name: "a", Entering: "first"},
				{Name: "a", Entering: "second"},
			},
		}).Inject(ctx, f)

		require.NoError(t, err)
		assert.Equal(t, "first", sm.CurrentState().Entering())
	})

	t.Run("nil definition", func(t *testing.T) {
		t.Parallel()
		_, err := injector.New(nil).Inject(ctx, facade.New())
		assert.ErrorIs(t, err, injector.ErrInvalidDefinition)
	})

	t.Run("invalid definition", func(t *testing.T) {
		t.Parallel()
		f := facade.New()
		_, err := injector.New(&injector.Definition{
			States: []injector.StateDefinition{{Entering: "x"}},
		}).Inject(ctx, f)

		assert.ErrorIs(t, err, injector.ErrInvalidDefinition)
		assert.False(t, f.HasMediator(statemachine.Name))
	})

	t.Run("initial transition error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		f := facade.New()
		require.NoError(t, f.RegisterMediator(ctx, mediator.NewFunc("failing", []string{"a/in"},
			func(context.Context, observer.Notification) error { return boom })))

		sm, err := injector.New(&injector.Definition{
			Initial: "a",
			States:  []injector.StateDefinition{{Name: "a", Entering: "a/in"}},
		}).Inject(ctx, f)

		assert.ErrorIs(t, err, injector.ErrFailedToInject)
		assert.ErrorIs(t, err, boom)
		require.NotNil(t, sm)
		assert.Nil(t, sm.CurrentState())
		assert.True(t, f.HasMediator(statemachine.Name))
	})
}
