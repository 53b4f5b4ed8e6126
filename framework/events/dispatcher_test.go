package events_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-laravel-bridge/framework/events"
)

type namedEvent string

func (e namedEvent) Name() string { return string(e) }

func TestDispatcher_ListenAndDispatch(t *testing.T) {
	t.Parallel()

	d := events.NewDispatcher()
	var got []string
	d.ListenFunc("user.created", func(e events.Event) error {
		got = append(got, e.Name())
		return nil
	})

	require.NoError(t, d.Dispatch(namedEvent("user.created")))
	require.NoError(t, d.Dispatch(namedEvent("user.deleted"))) // no listener, no-op
	require.Equal(t, []string{"user.created"}, got)
}

func TestDispatcher_WildcardPattern(t *testing.T) {
	t.Parallel()

	d := events.NewDispatcher()
	var got []string
	d.ListenFunc("db.query.*", func(e events.Event) error {
		got = append(got, e.Name())
		return nil
	})

	require.NoError(t, d.Dispatch(namedEvent("db.query.executed")))
	require.NoError(t, d.Dispatch(namedEvent("mail.sent")))
	require.Equal(t, []string{"db.query.executed"}, got)
}

func TestDispatcher_ListenerErrorStopsDispatch(t *testing.T) {
	t.Parallel()

	d := events.NewDispatcher()
	boom := errors.New("boom")
	secondRan := false
	d.ListenFunc("x", func(events.Event) error { return boom })
	d.ListenFunc("x", func(events.Event) error { secondRan = true; return nil })

	require.ErrorIs(t, d.Dispatch(namedEvent("x")), boom)
	require.False(t, secondRan)
}

func TestDispatcher_HasListeners(t *testing.T) {
	t.Parallel()

	d := events.NewDispatcher()
	require.False(t, d.HasListeners("db.query.executed"))

	d.ListenFunc("db.query.*", func(events.Event) error { return nil })
	require.True(t, d.HasListeners("db.query.executed"))
}

func TestDispatcher_Forget(t *testing.T) {
	t.Parallel()

	d := events.NewDispatcher()
	d.ListenFunc("x", func(events.Event) error { return nil })
	d.Forget("x")

	require.False(t, d.HasListeners("x"))
}
