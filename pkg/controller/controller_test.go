package controller_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statebus/pkg/controller"
	"github.com/dmitrymomot/statebus/pkg/observer"
	"github.com/dmitrymomot/statebus/pkg/view"
)

type mockRegistrar struct {
	mock.Mock
}

func (m *mockRegistrar) RegisterObserver(name string, o *observer.Observer) {
	m.Called(name, o)
}

func (m *mockRegistrar) RemoveObserver(name string, owner any) {
	m.Called(name, owner)
}

// counting returns a factory that records how many instances it created and
// how many times each instance ran.
type counting struct {
	created int
	runs    []int
}

func (c *counting) factory() controller.Command {
	c.created++
	runs := 0
	idx := len(c.runs)
	c.runs = append(c.runs, 0)
	return controller.CommandFunc(func(context.Context, observer.Notification) error {
		runs++
		c.runs[idx] = runs
		return nil
	})
}

func TestController_RegisterCommand(t *testing.T) {
	t.Parallel()

	t.Run("subscribes once per name", func(t *testing.T) {
		t.Parallel()
		reg := &mockRegistrar{}
		c := controller.New(reg)
		reg.On("RegisterObserver", "startup", mock.MatchedBy(func(o *observer.Observer) bool {
			return o.CompareContext(c)
		})).Return().Once()

		c.RegisterCommand("startup", func() controller.Command { return nil })
		c.RegisterCommand("startup", func() controller.Command { return nil })

		assert.True(t, c.HasCommand("startup"))
		reg.AssertExpectations(t)
	})

	t.Run("later registration replaces the factory", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		v := view.New()
		c := controller.New(v)
		var got []string

		c.RegisterCommand("n", func() controller.Command {
			return controller.CommandFunc(func(context.Context, observer.Notification) error {
				got = append(got, "first")
				return nil
			})
		})
		c.RegisterCommand("n", func() controller.Command {
			return controller.CommandFunc(func(context.Context, observer.Notification) error {
				got = append(got, "second")
				return nil
			})
		})

		require.NoError(t, v.NotifyObservers(ctx, observer.NewNotification("n", nil, "")))
		assert.Equal(t, []string{"second"}, got)
	})
}

func TestController_ExecuteCommand(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("fresh instance per notification", func(t *testing.T) {
		t.Parallel()
		v := view.New()
		c := controller.New(v)
		cnt := &counting{}
		c.RegisterCommand("n", cnt.factory)

		for range 3 {
			require.NoError(t, v.NotifyObservers(ctx, observer.NewNotification("n", nil, "")))
		}

		assert.Equal(t, 3, cnt.created)
		assert.Equal(t, []int{1, 1, 1}, cnt.runs)
	})

	t.Run("passes the notification", func(t *testing.T) {
		t.Parallel()
		v := view.New()
		c := controller.New(v)
		var got observer.Notification
		c.RegisterCommand("n", func() controller.Command {
			return controller.CommandFunc(func(_ context.Context, n observer.Notification) error {
				got = n
				return nil
			})
		})

		n := observer.NewNotification("n", 42, "kind")
		require.NoError(t, v.NotifyObservers(ctx, n))
		assert.Equal(t, n, got)
	})

	t.Run("unknown name is ignored", func(t *testing.T) {
		t.Parallel()
		c := controller.New(view.New())
		assert.NoError(t, c.ExecuteCommand(ctx, observer.NewNotification("ghost", nil, "")))
	})

	t.Run("nil command is ignored", func(t *testing.T) {
		t.Parallel()
		v := view.New()
		c := controller.New(v)
		c.RegisterCommand("n", func() controller.Command { return nil })
		assert.NoError(t, v.NotifyObservers(ctx, observer.NewNotification("n", nil, "")))
	})

	t.Run("command error reaches the sender", func(t *testing.T) {
		t.Parallel()
		v := view.New()
		c := controller.New(v)
		boom := errors.New("boom")
		c.RegisterCommand("n", func() controller.Command {
			return controller.CommandFunc(func(context.Context, observer.Notification) error {
				return boom
			})
		})

		assert.ErrorIs(t, v.NotifyObservers(ctx, observer.NewNotification("n", nil, "")), boom)
	})
}

func TestController_RemoveCommand(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unsubscribes and forgets the factory", func(t *testing.T) {
		t.Parallel()
		v := view.New()
		c := controller.New(v)
		cnt := &counting{}
		c.RegisterCommand("n", cnt.factory)

		c.RemoveCommand("n")

		assert.False(t, c.HasCommand("n"))
		assert.False(t, v.HasObservers("n"))
		require.NoError(t, v.NotifyObservers(ctx, observer.NewNotification("n", nil, "")))
		assert.Zero(t, cnt.created)
	})

	t.Run("unknown name does not touch the view", func(t *testing.T) {
		t.Parallel()
		reg := &mockRegistrar{}
		c := controller.New(reg)

		c.RemoveCommand("ghost")
		reg.AssertNotCalled(t, "RemoveObserver", mock.Anything, mock.Anything)
	})

	t.Run("leaves other observers of the same name", func(t *testing.T) {
		t.Parallel()
		v := view.New()
		c := controller.New(v)
		c.RegisterCommand("n", func() controller.Command { return nil })
		v.RegisterObserver("n", observer.NewObserver(nil, &struct{ id int }{}))

		c.RemoveCommand("n")
		assert.True(t, v.HasObservers("n"))
	})
}

func TestMacro(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	n := observer.NewNotification("n", nil, "")

	step := func(name string, log *[]string, err error) controller.CommandFactory {
		return func() controller.Command {
			return controller.CommandFunc(func(context.Context, observer.Notification) error {
				*log = append(*log, name)
				return err
			})
		}
	}

	t.Run("runs sub-commands in order", func(t *testing.T) {
		t.Parallel()
		var log []string
		cmd := controller.Macro(step("a", &log, nil), nil, step("b", &log, nil))()

		require.NoError(t, cmd.Execute(ctx, n))
		assert.Equal(t, []string{"a", "b"}, log)
	})

	t.Run("stops at the first error", func(t *testing.T) {
		t.Parallel()
		var log []string
		boom := errors.New("boom")
		cmd := controller.Macro(step("a", &log, boom), step("b", &log, nil))()

		assert.ErrorIs(t, cmd.Execute(ctx, n), boom)
		assert.Equal(t, []string{"a"}, log)
	})

	t.Run("creates fresh sub-commands each run", func(t *testing.T) {
		t.Parallel()
		cnt := &counting{}
		cmd := controller.Macro(cnt.factory)()

		require.NoError(t, cmd.Execute(ctx, n))
		require.NoError(t, cmd.Execute(ctx, n))
		assert.Equal(t, 2, cnt.created)
	})
}
