package container

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider mirrors Laravel's Illuminate\Support\ServiceProvider.
//
// Register declares bindings only — it must not resolve other bindings.
// Boot runs after Register and receives the container so dependencies are
// resolved from the container state current at boot time (Register may have
// just defined the bindings Boot needs). Resolution failures inside Boot
// surface as errors at boot time, never at register time.
//
//	type ViewServiceProvider struct{ container.BaseProvider }
//
//	func (p *ViewServiceProvider) Register(app *container.Container) {
//	    app.Singleton("view", func(c *container.Container) (any, error) {
//	        cfg, err := container.Resolve[*config.Repository](c, "config")
//	        if err != nil {
//	            return nil, err
//	        }
//	        return view.NewFactory(cfg.GetStringSlice("view.paths"), ""), nil
//	    })
//	}
//
//	func (p *ViewServiceProvider) Boot(app *container.Container) error {
//	    _, err := app.Make("view") // wire runtime behaviour here
//	    return err
//	}
type ServiceProvider interface {
	// Register binds services into the container.
	// Do NOT resolve other bindings here — use Boot() for that.
	Register(app *Container)

	// Boot is called after Register. Safe to resolve any binding here.
	Boot(app *Container) error

	// Provides returns the list of abstract keys this provider registers.
	// Used for deferred (lazy) provider loading.
	// Return nil / empty slice if the provider is always eager.
	Provides() []string

	// IsDeferred returns true if this provider should be loaded lazily —
	// only when one of its Provides() abstracts is first resolved.
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct that provides no-op implementations
// of Boot(), Provides(), and IsDeferred().
// Embed it in your provider and only override what you need.
//
//	type MyProvider struct{ container.BaseProvider }
//	func (p *MyProvider) Register(app *container.Container) { ... }
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) error { return nil }
func (p *BaseProvider) Provides() []string      { return nil }
func (p *BaseProvider) IsDeferred() bool        { return false }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders,
// including deferred (lazy) providers.
//
// It mirrors the behaviour of Laravel's Application::registerConfiguredProviders
// and Application::bootProviders.
type ProviderRegistry struct {
	app        *Container
	eager      []ServiceProvider
	deferred   map[string]ServiceProvider // abstract → provider
	booted     bool
	registered map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		deferred:   make(map[string]ServiceProvider),
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register() method (unless deferred).
// If the registry has already booted, the provider boots immediately.
//
//	// Laravel: $app->register(new ViewServiceProvider($app))
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if r.registered[provider] {
		return nil
	}
	r.registered[provider] = true

	if provider.IsDeferred() {
		for _, abstract := range provider.Provides() {
			r.deferred[abstract] = provider
		}
		// Intercept Make() calls for deferred abstracts
		r.interceptDeferred(provider)
		return nil
	}

	provider.Register(r.app)
	r.eager = append(r.eager, provider)

	if r.booted {
		return provider.Boot(r.app)
	}
	return nil
}

// interceptDeferred registers a lazy binding for each deferred abstract.
// The first Make() call triggers real registration + boot.
func (r *ProviderRegistry) interceptDeferred(provider ServiceProvider) {
	for _, abstract := range provider.Provides() {
		abs := abstract // capture
		r.app.Bind(abs, func(c *Container) (any, error) {
			// Register for real on first use
			if _, pending := r.deferred[abs]; pending {
				provider.Register(c)
				delete(r.deferred, abs)
				if r.booted {
					if err := provider.Boot(c); err != nil {
						return nil, err
					}
				}
			}
			return c.Make(abs)
		})
	}
}

// Boot calls Boot() on all eager providers, stopping at the first failure.
// Must be called after ALL eager providers have been registered.
//
//	// Laravel: $app->boot()
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	r.booted = true
	for _, provider := range r.eager {
		if err := provider.Boot(r.app); err != nil {
			return err
		}
	}
	return nil
}

// Booted returns true if Boot() has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered eager providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.eager }

// ── Registration driver ───────────────────────────────────────────────────────

// RunProvider drives a provider through its full two-phase lifecycle:
// Register unconditionally, then Boot with dependencies resolved from the
// current container state.
func RunProvider(app *Container, provider ServiceProvider) error {
	provider.Register(app)
	return provider.Boot(app)
}
