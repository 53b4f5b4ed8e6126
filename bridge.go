package bridge

import (
	"fmt"
	"sync"

	"github.com/km-arc/go-laravel-bridge/framework/config"
	"github.com/km-arc/go-laravel-bridge/framework/container"
	"github.com/km-arc/go-laravel-bridge/framework/events"
	"github.com/km-arc/go-laravel-bridge/framework/filesystem"
	gohttp "github.com/km-arc/go-laravel-bridge/framework/http"
)

// ── App ───────────────────────────────────────────────────────────────────────

// App is the bootstrap orchestrator: it owns one container for its lifetime,
// performs the one-time baseline initialization, and exposes the Setup*
// operations that activate optional subsystems.
//
//	app := bridge.New()
//	app.Bootstrap()
//	app.SetupView([]string{"./views"}, "./storage/views")
//	app.SetupDatabase(conns, "default", database.FetchAssoc)
//
//	engine, _ := container.Resolve[*view.Factory](app.Container(), "view")
type App struct {
	mu               sync.Mutex
	container        *container.Container
	registry         *container.ProviderRegistry
	bootstrapped     bool
	installedAliases []string
}

// New creates an un-bootstrapped App with a fresh container.
func New() *App {
	c := container.New()
	return &App{
		container: c,
		registry:  container.NewProviderRegistry(c),
	}
}

// Container exposes the owned container — the "unwrap underlying container"
// accessor hosts use instead of dynamic delegation.
func (a *App) Container() *container.Container { return a.container }

// Locator returns the narrow has/get facade over the owned container.
func (a *App) Locator() *container.Locator {
	return container.NewLocator(a.container)
}

// Has reports whether id is registered. Shorthand for Locator().Has.
func (a *App) Has(id string) bool { return a.container.Bound(id) }

// Get resolves id through the locator contract (EntryNotFoundError when
// nothing is registered, constructor failures untouched).
func (a *App) Get(id string) (any, error) { return a.Locator().Get(id) }

// Config resolves the configuration store.
func (a *App) Config() (*config.Repository, error) {
	return container.Resolve[*config.Repository](a.container, "config")
}

// Events resolves the event dispatcher.
func (a *App) Events() (*events.Dispatcher, error) {
	return container.Resolve[*events.Dispatcher](a.container, "events")
}

// ── Bootstrap lifecycle ───────────────────────────────────────────────────────

// Bootstrap performs the one-time baseline initialization: an empty
// configuration store, the deferred request capture, the event dispatcher,
// the filesystem, and the default alias shortcuts. Calling it again is a
// no-op until Flash resets the App.
func (a *App) Bootstrap() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.bootstrapped {
		return nil
	}

	c := a.container
	c.Instance("config", config.NewRepository())
	c.Singleton("request", func(c *container.Container) (any, error) {
		// Deferred until first use; HTTP hosts rebind per request.
		return gohttp.Capture(), nil
	})
	c.Singleton("events", func(c *container.Container) (any, error) {
		return events.NewDispatcher(), nil
	})
	c.Singleton("files", func(c *container.Container) (any, error) {
		return filesystem.New(), nil
	})

	// Install alias shortcuts, skipping names the host defined first.
	a.installedAliases = a.installedAliases[:0]
	for name, key := range defaultAliases {
		if RegisterAlias(name, key) {
			a.installedAliases = append(a.installedAliases, name)
		}
	}

	// Mark the registry booted: subsystem providers registered by later
	// Setup* calls run their full Register+Boot lifecycle immediately.
	if err := a.registry.Boot(); err != nil {
		return err
	}

	a.bootstrapped = true
	return nil
}

// IsBootstrapped reports whether Bootstrap has run since construction or the
// last Flash.
func (a *App) IsBootstrapped() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bootstrapped
}

// Flash tears down bootstrap state for re-initialization (test isolation):
// the container is flushed, the aliases this App installed are removed, and
// a fresh provider registry replaces the booted one. The App object itself
// survives and can Bootstrap again.
func (a *App) Flash() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.container.Flush()
	for _, name := range a.installedAliases {
		removeAlias(name)
	}
	a.installedAliases = a.installedAliases[:0]
	a.registry = container.NewProviderRegistry(a.container)
	a.bootstrapped = false
}

// ── Provider activation ───────────────────────────────────────────────────────

// ProviderFactory builds a provider bound to the container — the closure
// Setup drives. It typically stages subsystem configuration into "config"
// before returning the provider.
type ProviderFactory func(c *container.Container) (container.ServiceProvider, error)

// Setup is the composition primitive behind every subsystem activation:
// bootstrap if needed, obtain the provider from the factory, then run its
// Register+Boot lifecycle against the current container state.
func (a *App) Setup(factory ProviderFactory) error {
	if err := a.Bootstrap(); err != nil {
		return err
	}
	provider, err := factory(a.container)
	if err != nil {
		return err
	}
	return a.registry.Register(provider)
}

// ── Dynamic delegation ────────────────────────────────────────────────────────

// CallOperation delegates a string-named container operation — the
// enumerated replacement for method-missing forwarding. Supported
// operations: "bound", "make", "get", "instance", "set", "forget", "flush".
// Unknown names fail with UndefinedOperationError.
func (a *App) CallOperation(name string, args ...any) (any, error) {
	switch name {
	case "bound":
		key, err := stringArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		return a.container.Bound(key), nil

	case "make", "get":
		key, err := stringArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		return a.container.Make(key)

	case "instance", "set":
		key, err := stringArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		if len(args) < 2 {
			return nil, fmt.Errorf("bridge: operation [%s] needs a value argument", name)
		}
		a.container.Instance(key, args[1])
		return nil, nil

	case "forget":
		key, err := stringArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		a.container.Forget(key)
		return nil, nil

	case "flush":
		a.container.Flush()
		return nil, nil

	default:
		return nil, UndefinedOperationError{Op: name}
	}
}

func stringArg(op string, args []any, i int) (string, error) {
	if len(args) <= i {
		return "", fmt.Errorf("bridge: operation [%s] needs a key argument", op)
	}
	key, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("bridge: operation [%s]: argument %d must be a string, got %T", op, i, args[i])
	}
	return key, nil
}

// ── Process-wide default ──────────────────────────────────────────────────────

var (
	defaultMu  sync.Mutex
	defaultApp *App
)

// Default returns the process-wide App, lazily constructing and
// bootstrapping it on first access.
//
//	// Laravel bridge: LaravelBridge::getInstance()
func Default() *App {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultApp == nil {
		defaultApp = New()
	}
	if err := defaultApp.Bootstrap(); err != nil {
		// Baseline bootstrap registers no fallible providers; a failure
		// here is a programming error in the bridge itself.
		panic(err)
	}
	return defaultApp
}

// ResetDefault flashes and discards the process-wide App so the next
// Default() starts fresh. Test isolation only.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultApp != nil {
		defaultApp.Flash()
		defaultApp = nil
	}
}
