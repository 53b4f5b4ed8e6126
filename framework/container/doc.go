// Package container provides a Laravel-compatible IoC (Inversion of Control)
// container, service locator and Service Provider system for Go.
//
// # Overview
//
// The container manages the instantiation and lifecycle of the services the
// bridge registers into a host application. It supports exactly three binding
// kinds — pre-built instances, memoized singletons, and transient factories —
// plus aliases. Because Go has no runtime constructor reflection, auto-wiring
// is replaced by explicit factory functions that receive the container.
//
// # Bindings
//
//	// Pre-built value
//	// Laravel: $app->instance('config', $config)
//	c.Instance("config", repo)
//
//	// Singleton — created once, reused (same identity until Flush)
//	// Laravel: $app->singleton('events', fn($app) => new Dispatcher)
//	c.Singleton("events", func(c *container.Container) (any, error) {
//	    return events.NewDispatcher(), nil
//	})
//
//	// Transient — new instance every Make()
//	// Laravel: $app->bind('paginator', fn($app) => new Paginator)
//	c.Bind("paginator", func(c *container.Container) (any, error) {
//	    return pagination.New(nil, 0, 15, 1), nil
//	})
//
// Binding keys are process-unique strings; the last registration for a key
// wins. There is no duplicate-key error.
//
// # Resolving
//
//	// Untyped
//	v, err := c.Make("events")
//
//	// Generic (preferred — no type assertion required)
//	d, err := container.Resolve[*events.Dispatcher](c, "events")
//
// # Locator
//
// Locator exposes the PSR-11-shaped Has/Get contract over a container.
// Get reclassifies "nothing registered" into EntryNotFoundError while
// letting constructor failures through untouched:
//
//	loc := container.NewLocator(c)
//	if loc.Has("db") {
//	    db, err := loc.Get("db")
//	    ...
//	}
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *container.Container) {
//	    app.Singleton("mailer", func(c *container.Container) (any, error) {
//	        return mail.NewSMTP(), nil
//	    })
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	registry.Boot()
//
// RunProvider drives a single provider through Register-then-Boot in one
// call, which is how the bridge activates optional subsystems.
//
// # Deferred Providers
//
//	type HeavyProvider struct{ container.BaseProvider }
//
//	func (p *HeavyProvider) IsDeferred() bool   { return true }
//	func (p *HeavyProvider) Provides() []string { return []string{"heavy"} }
//	func (p *HeavyProvider) Register(app *container.Container) {
//	    app.Singleton("heavy", func(c *container.Container) (any, error) {
//	        return heavySetup() // only called on first app.Make("heavy")
//	    })
//	}
package container
