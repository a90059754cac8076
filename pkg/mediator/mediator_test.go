package mediator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statebus/pkg/mediator"
	"github.com/dmitrymomot/statebus/pkg/observer"
	"github.com/dmitrymomot/statebus/pkg/view"
)

var (
	_ view.Mediator = (*mediator.Base)(nil)
	_ view.Mediator = (*mediator.Func)(nil)
)

func TestBase(t *testing.T) {
	t.Parallel()

	t.Run("default name", func(t *testing.T) {
		t.Parallel()
		b := mediator.NewBase("", nil)
		assert.Equal(t, mediator.DefaultName, b.Name())
	})

	t.Run("view component slot", func(t *testing.T) {
		t.Parallel()
		b := mediator.NewBase("Panel", "initial")
		assert.Equal(t, "initial", b.ViewComponent())
		b.SetViewComponent(42)
		assert.Equal(t, 42, b.ViewComponent())
	})

	t.Run("no-op hooks", func(t *testing.T) {
		t.Parallel()
		b := mediator.NewBase("Panel", nil)
		ctx := context.Background()
		assert.Empty(t, b.Interests())
		assert.NoError(t, b.HandleNotification(ctx, observer.NewNotification("x", nil, "")))
		assert.NoError(t, b.OnRegister(ctx))
		assert.NotPanics(t, func() { b.OnRemove(ctx) })
	})

	t.Run("send without notifier", func(t *testing.T) {
		t.Parallel()
		b := mediator.NewBase("Panel", nil)
		err := b.SendNotification(context.Background(), "x", nil, "")
		assert.ErrorIs(t, err, mediator.ErrNotifierNotSet)
	})

	t.Run("send through notifier", func(t *testing.T) {
		t.Parallel()
		var sent []string
		b := mediator.NewBase("Panel", nil)
		b.SetNotifier(observer.NotifierFunc(func(_ context.Context, name string, body any, typ string) error {
			sent = append(sent, name+"|"+typ)
			return nil
		}))
		require.NotNil(t, b.Notifier())
		require.NoError(t, b.SendNotification(context.Background(), "x", nil, "t"))
		assert.Equal(t, []string{"x|t"}, sent)
	})
}

func TestFunc(t *testing.T) {
	t.Parallel()

	t.Run("interests are copied", func(t *testing.T) {
		t.Parallel()
		interests := []string{"a", "b"}
		f := mediator.NewFunc("F", interests, nil)
		interests[0] = "changed"
		assert.Equal(t, []string{"a", "b"}, f.Interests())

		got := f.Interests()
		got[1] = "changed"
		assert.Equal(t, []string{"a", "b"}, f.Interests())
	})

	t.Run("delegates to callback", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		var got string
		f := mediator.NewFunc("F", []string{"a"}, func(_ context.Context, n observer.Notification) error {
			got = n.Name()
			return boom
		})
		err := f.HandleNotification(context.Background(), observer.NewNotification("a", nil, ""))
		assert.Same(t, boom, err)
		assert.Equal(t, "a", got)
	})

	t.Run("nil callback", func(t *testing.T) {
		t.Parallel()
		f := mediator.NewFunc("F", nil, nil)
		assert.NoError(t, f.HandleNotification(context.Background(), observer.NewNotification("a", nil, "")))
	})
}
