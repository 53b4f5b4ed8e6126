package debug_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-laravel-bridge/framework/database"
	"github.com/km-arc/go-laravel-bridge/framework/debug"
	"github.com/km-arc/go-laravel-bridge/framework/events"
)

type recordingPanel struct {
	sqls        []string
	bindings    [][]any
	connections []string
}

func (p *recordingPanel) LogQuery(sql string, bindings []any, elapsed time.Duration, connection string, conn *sql.DB) {
	p.sqls = append(p.sqls, sql)
	p.bindings = append(p.bindings, bindings)
	p.connections = append(p.connections, connection)
}

func TestQueryLogListener_ForwardsQueryEvents(t *testing.T) {
	t.Parallel()

	panel := &recordingPanel{}
	d := events.NewDispatcher()
	d.Listen(database.QueryExecutedEvent, debug.QueryLogListener(panel))

	require.NoError(t, d.Dispatch(database.QueryExecuted{
		SQL:            "SELECT 1",
		Bindings:       []any{42},
		Duration:       time.Millisecond,
		ConnectionName: "default",
	}))

	require.Equal(t, []string{"SELECT 1"}, panel.sqls)
	require.Equal(t, [][]any{{42}}, panel.bindings)
	require.Equal(t, []string{"default"}, panel.connections)
}

type otherEvent struct{}

func (otherEvent) Name() string { return database.QueryExecutedEvent }

func TestQueryLogListener_IgnoresForeignEvents(t *testing.T) {
	t.Parallel()

	panel := &recordingPanel{}
	listener := debug.QueryLogListener(panel)

	require.NoError(t, listener.Handle(otherEvent{}))
	require.Empty(t, panel.sqls)
}
