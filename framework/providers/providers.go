// Package providers holds the framework service providers the bridge's
// Setup* operations register. Each provider reads the configuration its
// setup operation staged into "config" before constructing it.
package providers

import (
	"github.com/km-arc/go-laravel-bridge/framework/config"
	"github.com/km-arc/go-laravel-bridge/framework/container"
	"github.com/km-arc/go-laravel-bridge/framework/database"
	"github.com/km-arc/go-laravel-bridge/framework/events"
	gohttp "github.com/km-arc/go-laravel-bridge/framework/http"
	"github.com/km-arc/go-laravel-bridge/framework/pagination"
	"github.com/km-arc/go-laravel-bridge/framework/translation"
	"github.com/km-arc/go-laravel-bridge/framework/view"
)

// ── ViewServiceProvider ───────────────────────────────────────────────────────

// ViewServiceProvider registers the template factory.
//
// Bound abstracts:
//   - "view" → *view.Factory
//
// Configuration keys read from "config":
//   - view.paths    (lookup directories, searched in order)
//   - view.compiled (compiled-output directory)
//
// Laravel equivalent:
//
//	// Illuminate\View\ViewServiceProvider
//	$app->singleton('view', fn($app) => new Factory(...));
type ViewServiceProvider struct {
	container.BaseProvider
}

func (p *ViewServiceProvider) Register(app *container.Container) {
	app.Singleton("view", func(c *container.Container) (any, error) {
		cfg, err := container.Resolve[*config.Repository](c, "config")
		if err != nil {
			return nil, err
		}
		return view.NewFactory(
			cfg.GetStringSlice("view.paths"),
			cfg.GetString("view.compiled"),
			cfg.GetString("view.extension", ".html"),
		), nil
	})
}

// ── DatabaseServiceProvider ───────────────────────────────────────────────────

// DatabaseServiceProvider registers the database manager.
//
// Bound abstracts:
//   - "db" → *database.Manager
//
// Configuration keys read from "config":
//   - database.default     (default connection name)
//   - database.connections (map[string]database.Config)
//   - database.fetch       (database.FetchMode)
//
// Boot resolves the manager so misconfiguration (e.g. an unparsable
// connections value) surfaces when the subsystem activates, not on first
// query.
//
// Laravel equivalent:
//
//	// Illuminate\Database\DatabaseServiceProvider
//	$app->singleton('db', fn($app) => new DatabaseManager($app, ...));
type DatabaseServiceProvider struct {
	container.BaseProvider
}

func (p *DatabaseServiceProvider) Register(app *container.Container) {
	app.Singleton("db", func(c *container.Container) (any, error) {
		cfg, err := container.Resolve[*config.Repository](c, "config")
		if err != nil {
			return nil, err
		}
		dispatcher, err := container.Resolve[*events.Dispatcher](c, "events")
		if err != nil {
			return nil, err
		}

		connections, _ := cfg.Get("database.connections").(map[string]database.Config)
		fetch, _ := cfg.Get("database.fetch").(database.FetchMode)

		return database.NewManager(
			connections,
			cfg.GetString("database.default"),
			fetch,
			dispatcher,
		), nil
	})
}

func (p *DatabaseServiceProvider) Boot(app *container.Container) error {
	_, err := app.Make("db")
	return err
}

// ── PaginationServiceProvider ─────────────────────────────────────────────────

// PaginationServiceProvider registers the current-page resolver.
//
// Bound abstracts:
//   - "paginator.resolver" → pagination.CurrentPageResolver
//
// The resolver reads the captured request's "page" input; when the host
// flagged console mode (app.running_in_console) it always resolves page 1.
//
// Laravel equivalent:
//
//	// Illuminate\Pagination\PaginationServiceProvider
//	Paginator::currentPageResolver(fn() => $app['request']->input('page'));
type PaginationServiceProvider struct {
	container.BaseProvider
}

func (p *PaginationServiceProvider) Register(app *container.Container) {
	app.Singleton("paginator.resolver", func(c *container.Container) (any, error) {
		resolver := pagination.CurrentPageResolver(func() int {
			cfg, err := container.Resolve[*config.Repository](c, "config")
			if err == nil && cfg.GetBool("app.running_in_console") {
				return 1
			}
			req, err := container.Resolve[*gohttp.Request](c, "request")
			if err != nil {
				return 1
			}
			return pagination.ResolvePage(req.Input("page"))
		})
		return resolver, nil
	})
}

// ── TranslationServiceProvider ────────────────────────────────────────────────

// TranslationServiceProvider registers the translator.
//
// Bound abstracts:
//   - "translator" → *translation.Translator (aliased as "lang")
//
// Configuration keys read from "config":
//   - translation.path    (language file directory)
//   - app.locale          (active locale, default "en")
//   - app.fallback_locale (fallback, defaults to app.locale)
//
// Laravel equivalent:
//
//	// Illuminate\Translation\TranslationServiceProvider
//	$app->singleton('translator', fn($app) => new Translator($loader, $locale));
type TranslationServiceProvider struct {
	container.BaseProvider
}

func (p *TranslationServiceProvider) Register(app *container.Container) {
	app.Singleton("translator", func(c *container.Container) (any, error) {
		cfg, err := container.Resolve[*config.Repository](c, "config")
		if err != nil {
			return nil, err
		}
		locale := cfg.GetString("app.locale", "en")
		return translation.NewTranslator(
			translation.NewLoader(cfg.GetString("translation.path")),
			locale,
			cfg.GetString("app.fallback_locale", locale),
		), nil
	})
	app.Alias("translator", "lang")
}
