// Package events provides the event dispatcher the bridge binds as "events".
// Subsystems publish events (e.g. database query execution) and hosts attach
// listeners — the diagnostics hook is one such listener.
package events

import (
	"strings"
	"sync"
)

// Event is anything with a stable name, matched against listener patterns.
type Event interface {
	Name() string
}

// Listener handles a dispatched event.
type Listener interface {
	Handle(event Event) error
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(event Event) error

func (f ListenerFunc) Handle(event Event) error { return f(event) }

// Dispatcher is a synchronous in-process event dispatcher.
// Patterns ending in ".*" match any event sharing the prefix
// (e.g. "db.query.*" matches "db.query.executed").
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
	wildcards map[string][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[string][]Listener),
		wildcards: make(map[string][]Listener),
	}
}

// Listen attaches a listener to an event name or wildcard pattern.
//
//	// Laravel: Event::listen('db.query.executed', $handler)
func (d *Dispatcher) Listen(pattern string, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if isWildcard(pattern) {
		d.wildcards[pattern] = append(d.wildcards[pattern], listener)
	} else {
		d.listeners[pattern] = append(d.listeners[pattern], listener)
	}
}

// ListenFunc is Listen for plain functions.
func (d *Dispatcher) ListenFunc(pattern string, fn ListenerFunc) {
	d.Listen(pattern, fn)
}

// Dispatch invokes every listener matching the event's name, in registration
// order, stopping at the first listener error.
func (d *Dispatcher) Dispatch(event Event) error {
	for _, listener := range d.matching(event.Name()) {
		if err := listener.Handle(event); err != nil {
			return err
		}
	}
	return nil
}

// HasListeners reports whether any listener matches the event name.
func (d *Dispatcher) HasListeners(name string) bool {
	return len(d.matching(name)) > 0
}

// Forget removes all listeners registered under exactly the given pattern.
func (d *Dispatcher) Forget(pattern string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.listeners, pattern)
	delete(d.wildcards, pattern)
}

// matching collects exact and wildcard listeners for a name.
func (d *Dispatcher) matching(name string) []Listener {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := append([]Listener(nil), d.listeners[name]...)
	for pattern, ls := range d.wildcards {
		if matchesWildcard(pattern, name) {
			out = append(out, ls...)
		}
	}
	return out
}

func isWildcard(pattern string) bool {
	return strings.HasSuffix(pattern, ".*")
}

func matchesWildcard(pattern, name string) bool {
	prefix := strings.TrimSuffix(pattern, "*")
	return strings.HasPrefix(name, prefix)
}
