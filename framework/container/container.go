package container

import (
	"fmt"
	"reflect"
	"sync"
)

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory is a function that builds a concrete value from the container.
// Construction failures are returned, never swallowed.
type Factory func(c *Container) (any, error)

// bindingKind describes how a registered key produces its value.
type bindingKind int

const (
	kindInstance  bindingKind = iota // pre-built value, returned as-is
	kindSingleton                    // built once, memoized
	kindFactory                      // built fresh on every Make
)

// binding is the descriptor stored per key: the kind plus either the
// ready-made value (instance) or the constructor (singleton/factory).
type binding struct {
	kind    bindingKind
	value   any
	factory Factory
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container — mirrors Laravel's
// Illuminate\Container\Container, reduced to the three binding kinds the
// bridge needs: Instance, Singleton and Bind (transient factory).
//
// All operations are safe for concurrent use; singleton memoization and the
// check-then-act paths are serialized on one mutex.
type Container struct {
	mu sync.RWMutex

	// abstract → binding descriptor. Last registration for a key wins.
	bindings map[string]*binding

	// abstract → memoized singleton value. Cleared by Flush, or for a
	// single key when that key is re-bound.
	resolved map[string]any

	// alias → abstract (canonical key)
	aliases map[string]string
}

// New creates an empty container, bound to itself under "container"
// — like Laravel's $app->instance('app', $app).
func New() *Container {
	c := &Container{
		bindings: make(map[string]*binding),
		resolved: make(map[string]any),
		aliases:  make(map[string]string),
	}
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Instance registers a ready-made value under key.
//
//	// Laravel: $app->instance(Config::class, $config)
//	c.Instance("config", repo)
func (c *Container) Instance(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.register(key, &binding{kind: kindInstance, value: value})
}

// Singleton registers a factory whose result is cached after first Make.
//
//	// Laravel: $app->singleton('events', fn($app) => new Dispatcher($app))
//	c.Singleton("events", func(c *container.Container) (any, error) {
//	    return events.NewDispatcher(), nil
//	})
func (c *Container) Singleton(key string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.register(key, &binding{kind: kindSingleton, factory: factory})
}

// Bind registers a transient factory — invoked fresh on every Make.
//
//	// Laravel: $app->bind(UserRepository::class, fn($app) => new EloquentUserRepository)
func (c *Container) Bind(key string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.register(key, &binding{kind: kindFactory, factory: factory})
}

// register stores a binding descriptor (must hold mu.Lock).
// Re-binding a key drops its memoized value so the new registration wins.
func (c *Container) register(key string, b *binding) {
	canon := c.canonical(key)
	delete(c.resolved, canon)
	c.bindings[canon] = b
}

// Alias registers an alternative name for an abstract.
//
//	// Laravel: $app->alias('translator', 'lang')
func (c *Container) Alias(abstract, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if abstract == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", abstract))
	}
	c.aliases[alias] = c.canonical(abstract)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves a key from the container.
//
// Instances return the stored value; singletons build once and memoize;
// transient factories build fresh every call. An unregistered key fails
// with UnboundError; factory failures propagate unchanged.
//
//	// Laravel: $app->make('view')
//	v, err := c.Make("view")
func (c *Container) Make(key string) (any, error) {
	canon := c.lookupCanonical(key)

	c.mu.RLock()
	if inst, ok := c.resolved[canon]; ok {
		c.mu.RUnlock()
		return inst, nil
	}
	b, ok := c.bindings[canon]
	c.mu.RUnlock()

	if !ok {
		return nil, UnboundError{Key: key}
	}

	switch b.kind {
	case kindInstance:
		return b.value, nil

	case kindSingleton:
		return c.makeSingleton(canon, b)

	default: // kindFactory
		return b.factory(c)
	}
}

// makeSingleton materializes and memoizes a singleton binding exactly once.
func (c *Container) makeSingleton(canon string, b *binding) (any, error) {
	// Re-check under the write lock: another goroutine may have memoized
	// the value since the read-locked lookup.
	c.mu.Lock()
	if inst, ok := c.resolved[canon]; ok {
		c.mu.Unlock()
		return inst, nil
	}
	c.mu.Unlock()

	// Build outside the lock — the factory is allowed to call back into
	// the container (e.g. to resolve its own dependencies).
	inst, err := b.factory(c)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if prior, ok := c.resolved[canon]; ok {
		// Lost the race; keep the first materialized identity.
		return prior, nil
	}
	c.resolved[canon] = inst
	return inst, nil
}

// ── Introspection ─────────────────────────────────────────────────────────────

// Bound reports whether key has any registration (instance, singleton or
// factory), independent of whether resolution would succeed.
//
//	// Laravel: $app->bound('db')
func (c *Container) Bound(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.bindings[c.canonical(key)]
	return ok
}

// Resolved reports whether a singleton key has been materialized.
func (c *Container) Resolved(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.resolved[c.canonical(key)]
	return ok
}

// Keys returns all registered keys (for debugging).
func (c *Container) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.bindings))
	for k := range c.bindings {
		out = append(out, k)
	}
	return out
}

// ── Teardown ──────────────────────────────────────────────────────────────────

// Forget removes the registration and any memoized value for one key.
//
//	// Laravel: $app->forgetInstance('cache')
func (c *Container) Forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	canon := c.canonical(key)
	delete(c.bindings, canon)
	delete(c.resolved, canon)
}

// Flush resets the entire container: all bindings, all memoized singletons,
// all aliases. The container stays bound to itself.
func (c *Container) Flush() {
	c.mu.Lock()
	c.bindings = make(map[string]*binding)
	c.resolved = make(map[string]any)
	c.aliases = make(map[string]string)
	c.mu.Unlock()
	c.Instance("container", c)
}

// ── Array-style access ────────────────────────────────────────────────────────

// Set is array-style sugar over Instance, used for configuration-shaped
// dotted keys.
//
//	// Laravel: $app['app.locale'] = 'en'
//	c.Set("app.locale", "en")
func (c *Container) Set(key string, value any) {
	c.Instance(key, value)
}

// Get is array-style sugar over Make.
//
//	// Laravel: $app['config']
//	v, err := c.Get("config")
func (c *Container) Get(key string) (any, error) {
	return c.Make(key)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// canonical resolves an alias to its canonical key (must hold a lock).
func (c *Container) canonical(key string) string {
	if target, ok := c.aliases[key]; ok {
		return target
	}
	return key
}

// lookupCanonical is canonical with its own read lock.
func (c *Container) lookupCanonical(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.canonical(key)
}

// TypeKey returns the package-qualified type name of v, useful as a stable
// abstract key when working with interfaces.
//
//	key := container.TypeKey((*Panel)(nil))  // ".../framework/debug.Panel"
func TypeKey(v any) string {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve is a generic helper that calls Make and type-asserts the result.
//
//	// Instead of: v, _ := c.Make("view"); engine := v.(*view.Factory)
//	// Write:      engine, err := container.Resolve[*view.Factory](c, "view")
func Resolve[T any](c *Container, key string) (T, error) {
	var zero T
	instance, err := c.Make(key)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("container: Resolve[%T]: [%s] resolved to %T", zero, key, instance)
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on failure — for composition roots
// where a missing binding is a programming error.
func MustResolve[T any](c *Container, key string) T {
	typed, err := Resolve[T](c, key)
	if err != nil {
		panic(err)
	}
	return typed
}
