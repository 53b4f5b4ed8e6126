// Package database provides the multi-connection database service the bridge
// binds as "db". Connections are configured by name, opened lazily, pooled
// per driver defaults, and publish a QueryExecuted event for every statement
// so diagnostics listeners can observe query traffic.
package database

import (
	"database/sql"
	"fmt"
	"sync"

	// Drivers registered for the connection configurations hosts may supply.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/km-arc/go-laravel-bridge/framework/events"
)

// DefaultConnectionName is used when hosts configure connections without
// naming a default.
const DefaultConnectionName = "default"

// Manager owns the named connections.
//
//	// Laravel: DB::connection('reporting')->select(...)
//	conn, err := manager.Connection("reporting")
type Manager struct {
	mu          sync.Mutex
	configs     map[string]Config
	connections map[string]*Connection
	defaultName string
	fetch       FetchMode
	dispatcher  *events.Dispatcher
}

// NewManager creates a manager over the given named configurations.
// defaultName falls back to DefaultConnectionName when empty. dispatcher may
// be nil, in which case no query events are published.
func NewManager(configs map[string]Config, defaultName string, fetch FetchMode, dispatcher *events.Dispatcher) *Manager {
	if defaultName == "" {
		defaultName = DefaultConnectionName
	}
	return &Manager{
		configs:     configs,
		connections: make(map[string]*Connection),
		defaultName: defaultName,
		fetch:       fetch,
		dispatcher:  dispatcher,
	}
}

// DefaultConnection returns the configured default connection name.
func (m *Manager) DefaultConnection() string { return m.defaultName }

// FetchMode returns the row-shaping mode Select helpers use.
func (m *Manager) FetchMode() FetchMode { return m.fetch }

// ConnectionNames returns the configured connection names.
func (m *Manager) ConnectionNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.configs))
	for name := range m.configs {
		out = append(out, name)
	}
	return out
}

// Connection returns the named connection, opening it on first use.
// With no argument it returns the default connection.
func (m *Manager) Connection(name ...string) (*Connection, error) {
	target := m.defaultName
	if len(name) > 0 && name[0] != "" {
		target = name[0]
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if conn, ok := m.connections[target]; ok {
		return conn, nil
	}

	cfg, ok := m.configs[target]
	if !ok {
		return nil, fmt.Errorf("database: connection [%s] not configured", target)
	}

	conn, err := open(target, cfg.withDefaults(), m.fetch, m.dispatcher)
	if err != nil {
		return nil, err
	}
	m.connections[target] = conn
	return conn, nil
}

// Close closes every opened connection. Configurations stay registered;
// a later Connection call re-opens.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for name, conn := range m.connections {
		if err := conn.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(m.connections, name)
	}
	return firstErr
}

// open dials and pool-configures one connection.
func open(name string, cfg Config, fetch FetchMode, dispatcher *events.Dispatcher) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database: connection [%s]: %w", name, err)
	}

	return &Connection{
		name:       name,
		db:         db,
		fetch:      fetch,
		dispatcher: dispatcher,
	}, nil
}
