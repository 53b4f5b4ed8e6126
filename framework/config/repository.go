package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Repository is the configuration store the bridge binds as "config".
// It holds a tree of nested maps addressed by dotted paths, the way
// Laravel's Illuminate\Config\Repository does:
//
//	repo.Set("database.default", "default")
//	repo.Set("database.connections", conns)
//	name := repo.GetString("database.default")
//
// A fresh Repository is empty; every Setup* operation on the bridge stages
// its subsystem configuration here before constructing the provider.
type Repository struct {
	mu    sync.RWMutex
	items map[string]any
}

// NewRepository creates an empty configuration store.
func NewRepository() *Repository {
	return &Repository{items: make(map[string]any)}
}

// ── Writing ───────────────────────────────────────────────────────────────────

// Set stores value under a dotted path, materializing intermediate maps.
// Setting a path through a non-map segment overwrites that segment.
func (r *Repository) Set(path string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := strings.Split(path, ".")
	current := r.items
	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[k] = next
		}
		current = next
	}
}

// ── Reading ───────────────────────────────────────────────────────────────────

// Get returns the value at a dotted path, or the optional default when the
// path is absent. Intermediate segments that are not maps yield the default.
func (r *Repository) Get(path string, defaultValue ...any) any {
	r.mu.RLock()
	value, ok := r.lookup(path)
	r.mu.RUnlock()

	if ok {
		return value
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// Has reports whether a dotted path is set (even to nil).
func (r *Repository) Has(path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.lookup(path)
	return ok
}

// All returns the root of the configuration tree. The returned map is the
// live tree; callers must not mutate it.
func (r *Repository) All() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items
}

// lookup walks the tree (must hold a read lock).
func (r *Repository) lookup(path string) (any, bool) {
	keys := strings.Split(path, ".")
	current := r.items
	for i, k := range keys {
		if i == len(keys)-1 {
			v, ok := current[k]
			return v, ok
		}
		next, ok := current[k].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// ── Typed getters ─────────────────────────────────────────────────────────────

// GetString returns a string value, formatting non-strings with %v.
func (r *Repository) GetString(path string, defaultValue ...string) string {
	value := r.Get(path)
	if s, ok := value.(string); ok {
		return s
	}
	if value != nil {
		return fmt.Sprintf("%v", value)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetInt returns an int value, converting from the common numeric kinds.
func (r *Repository) GetInt(path string, defaultValue ...int) int {
	switch v := r.Get(path).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a bool value.
func (r *Repository) GetBool(path string, defaultValue ...bool) bool {
	switch v := r.Get(path).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetStringSlice returns a []string value. A plain string splits on commas.
func (r *Repository) GetStringSlice(path string, defaultValue ...[]string) []string {
	switch v := r.Get(path).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case string:
		if v != "" {
			return strings.Split(v, ",")
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// ── Environment ───────────────────────────────────────────────────────────────

// LoadEnv reads .env files (non-fatal if missing — production hosts set real
// environment variables) so Env lookups see them.
func (r *Repository) LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	_ = godotenv.Load(files...)
}

// Env returns an environment variable, falling back to defaultVal.
func Env(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// EnvBool returns a boolean environment variable.
func EnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
