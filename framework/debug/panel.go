// Package debug wires database query traffic into an external diagnostics
// panel (the Tracy-style query log). The panel itself is a host-supplied
// collaborator; this package only owns the event subscription.
package debug

import (
	"database/sql"
	"time"

	"github.com/km-arc/go-laravel-bridge/framework/database"
	"github.com/km-arc/go-laravel-bridge/framework/events"
)

// Panel is the diagnostics collaborator's logging surface.
type Panel interface {
	LogQuery(sql string, bindings []any, elapsed time.Duration, connection string, conn *sql.DB)
}

// QueryLogListener returns an events listener that forwards every
// QueryExecuted event to the panel. Attach it under
// database.QueryExecutedEvent:
//
//	dispatcher.Listen(database.QueryExecutedEvent, debug.QueryLogListener(panel))
func QueryLogListener(panel Panel) events.Listener {
	return events.ListenerFunc(func(e events.Event) error {
		q, ok := e.(database.QueryExecuted)
		if !ok {
			return nil
		}
		panel.LogQuery(q.SQL, q.Bindings, q.Duration, q.ConnectionName, q.Conn)
		return nil
	})
}
