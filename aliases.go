package bridge

import (
	"fmt"
	"sync"
)

// ── Alias resolution layer ────────────────────────────────────────────────────
//
// Aliases map short facade-style names ("View", "DB") to container keys so
// consumers can reference a service without depending on the container
// directly. The table is process-wide: Bootstrap installs the defaults,
// skipping any name a host registered first, and Flash removes only the
// names that Bootstrap installed.

var (
	aliasMu    sync.RWMutex
	aliasTable = map[string]string{}
)

// defaultAliases are the shortcuts Bootstrap installs.
var defaultAliases = map[string]string{
	"Config":    "config",
	"Event":     "events",
	"File":      "files",
	"Request":   "request",
	"View":      "view",
	"DB":        "db",
	"Lang":      "translator",
	"Paginator": "paginator.resolver",
}

// RegisterAlias binds a short name to a container key. An existing name is
// never overwritten (avoiding redefinition); the return value reports
// whether the alias was installed.
func RegisterAlias(name, key string) bool {
	aliasMu.Lock()
	defer aliasMu.Unlock()
	if _, exists := aliasTable[name]; exists {
		return false
	}
	aliasTable[name] = key
	return true
}

// AliasTarget returns the container key a short name points at.
func AliasTarget(name string) (string, bool) {
	aliasMu.RLock()
	defer aliasMu.RUnlock()
	key, ok := aliasTable[name]
	return key, ok
}

// removeAlias drops one name (Flash teardown).
func removeAlias(name string) {
	aliasMu.Lock()
	defer aliasMu.Unlock()
	delete(aliasTable, name)
}

// Lookup resolves a service through an alias (or a raw container key) on the
// process-wide App — the facade-style entry point.
//
//	engine, err := bridge.Lookup[*view.Factory]("View")
func Lookup[T any](name string) (T, error) {
	var zero T
	key := name
	if target, ok := AliasTarget(name); ok {
		key = target
	}
	v, err := Default().Get(key)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("bridge: Lookup[%T]: [%s] resolved to %T", zero, name, v)
	}
	return typed, nil
}
