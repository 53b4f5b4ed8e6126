package bridge

import (
	"github.com/km-arc/go-laravel-bridge/framework/container"
	"github.com/km-arc/go-laravel-bridge/framework/database"
	"github.com/km-arc/go-laravel-bridge/framework/debug"
	"github.com/km-arc/go-laravel-bridge/framework/providers"
)

// ── Subsystem setup operations ────────────────────────────────────────────────
//
// Each operation stages its subsystem's configuration into the "config"
// store, then registers the subsystem provider and immediately runs its
// Register+Boot lifecycle. All operations auto-bootstrap a fresh App.

// SetupView configures the view lookup paths and compiled-template output
// path, then activates the view-rendering subsystem ("view").
func (a *App) SetupView(paths []string, compiledPath string) error {
	return a.Setup(func(c *container.Container) (container.ServiceProvider, error) {
		cfg, err := a.Config()
		if err != nil {
			return nil, err
		}
		cfg.Set("view.paths", paths)
		cfg.Set("view.compiled", compiledPath)
		return &providers.ViewServiceProvider{}, nil
	})
}

// SetupDatabase configures named connections and the default connection
// name, then activates the database subsystem ("db"). An empty defaultName
// falls back to "default".
func (a *App) SetupDatabase(connections map[string]database.Config, defaultName string, fetch database.FetchMode) error {
	if defaultName == "" {
		defaultName = database.DefaultConnectionName
	}
	return a.Setup(func(c *container.Container) (container.ServiceProvider, error) {
		cfg, err := a.Config()
		if err != nil {
			return nil, err
		}
		cfg.Set("database.default", defaultName)
		cfg.Set("database.connections", connections)
		cfg.Set("database.fetch", fetch)
		return &providers.DatabaseServiceProvider{}, nil
	})
}

// SetupPagination activates the pagination subsystem
// ("paginator.resolver"). No parameters.
func (a *App) SetupPagination() error {
	return a.Setup(func(c *container.Container) (container.ServiceProvider, error) {
		return &providers.PaginationServiceProvider{}, nil
	})
}

// SetupTranslator configures the translation resource path and activates
// the translation subsystem ("translator", aliased "lang").
func (a *App) SetupTranslator(langPath string) error {
	return a.Setup(func(c *container.Container) (container.ServiceProvider, error) {
		cfg, err := a.Config()
		if err != nil {
			return nil, err
		}
		cfg.Set("translation.path", langPath)
		return &providers.TranslationServiceProvider{}, nil
	})
}

// SetupLocale sets the active locale directly in configuration — no
// provider involved.
func (a *App) SetupLocale(locale string) error {
	if err := a.Bootstrap(); err != nil {
		return err
	}
	cfg, err := a.Config()
	if err != nil {
		return err
	}
	cfg.Set("app.locale", locale)
	return nil
}

// SetupRunningInConsole flags the host environment as console/non-HTTP for
// subsystems that branch on it (pagination resolves page 1, for one).
// With no argument the flag is set true.
func (a *App) SetupRunningInConsole(is ...bool) error {
	if err := a.Bootstrap(); err != nil {
		return err
	}
	flag := true
	if len(is) > 0 {
		flag = is[0]
	}
	cfg, err := a.Config()
	if err != nil {
		return err
	}
	cfg.Set("app.running_in_console", flag)
	return nil
}

// SetupDiagnostics activates the diagnostics panel: its options are staged
// under "diagnostics.*", the panel is bound as "debug.panel", and its query
// log is subscribed to database query events.
func (a *App) SetupDiagnostics(panel debug.Panel, options map[string]any) error {
	if err := a.Bootstrap(); err != nil {
		return err
	}
	cfg, err := a.Config()
	if err != nil {
		return err
	}
	for key, value := range options {
		cfg.Set("diagnostics."+key, value)
	}

	a.container.Instance("debug.panel", panel)

	dispatcher, err := a.Events()
	if err != nil {
		return err
	}
	dispatcher.Listen(database.QueryExecutedEvent, debug.QueryLogListener(panel))
	return nil
}
