package database

import (
	"database/sql"
	"time"

	"github.com/km-arc/go-laravel-bridge/framework/events"
)

// QueryExecutedEvent is the name QueryExecuted dispatches under.
const QueryExecutedEvent = "db.query.executed"

// QueryExecuted is published on the events dispatcher after every statement
// a Connection runs, successful or not.
type QueryExecuted struct {
	SQL            string
	Bindings       []any
	Duration       time.Duration
	ConnectionName string
	Conn           *sql.DB
}

// Name implements events.Event.
func (QueryExecuted) Name() string { return QueryExecutedEvent }

// Connection wraps one *sql.DB and instruments every statement with query
// events.
type Connection struct {
	name       string
	db         *sql.DB
	fetch      FetchMode
	dispatcher *events.Dispatcher
}

// Name returns the connection's configured name.
func (c *Connection) Name() string { return c.name }

// DB exposes the underlying handle for callers needing raw database/sql.
func (c *Connection) DB() *sql.DB { return c.db }

// Query runs a query returning rows.
func (c *Connection) Query(query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := c.db.Query(query, args...)
	c.publish(query, args, time.Since(start))
	return rows, err
}

// QueryRow runs a query expected to return at most one row.
func (c *Connection) QueryRow(query string, args ...any) *sql.Row {
	start := time.Now()
	row := c.db.QueryRow(query, args...)
	c.publish(query, args, time.Since(start))
	return row
}

// Exec runs a statement without returning rows.
func (c *Connection) Exec(query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := c.db.Exec(query, args...)
	c.publish(query, args, time.Since(start))
	return res, err
}

// Select runs a query and shapes the rows per the connection's FetchMode:
// FetchAssoc yields []map[string]any keyed by column name, FetchNum yields
// [][]any in column order.
func (c *Connection) Select(query string, args ...any) (any, error) {
	rows, err := c.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	switch c.fetch {
	case FetchNum:
		var out [][]any
		for rows.Next() {
			values, err := scanRow(rows, len(cols))
			if err != nil {
				return nil, err
			}
			out = append(out, values)
		}
		return out, rows.Err()

	default: // FetchAssoc
		var out []map[string]any
		for rows.Next() {
			values, err := scanRow(rows, len(cols))
			if err != nil {
				return nil, err
			}
			row := make(map[string]any, len(cols))
			for i, col := range cols {
				row[col] = values[i]
			}
			out = append(out, row)
		}
		return out, rows.Err()
	}
}

// publish dispatches QueryExecuted when a dispatcher is attached.
// Listener failures are deliberately ignored: diagnostics must never break
// the query path.
func (c *Connection) publish(query string, args []any, elapsed time.Duration) {
	if c.dispatcher == nil {
		return
	}
	_ = c.dispatcher.Dispatch(QueryExecuted{
		SQL:            query,
		Bindings:       args,
		Duration:       elapsed,
		ConnectionName: c.name,
		Conn:           c.db,
	})
}

// scanRow scans the current row into a generic value slice.
func scanRow(rows *sql.Rows, n int) ([]any, error) {
	values := make([]any, n)
	ptrs := make([]any, n)
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	return values, nil
}
