// Package bridge embeds Laravel-style framework services in a host Go
// application that is not itself built on the framework.
//
// A single App owns an IoC container for its lifetime. Bootstrap performs
// the one-time baseline initialization (configuration store, request
// capture, event dispatcher, filesystem, alias shortcuts) and is idempotent;
// Flash tears that state down for re-initialization, which is what tests
// use for isolation.
//
//	app := bridge.Default() // lazily constructed and bootstrapped
//
//	app.SetupLocale("cs")
//	app.SetupView([]string{"./views"}, "./storage/views")
//	app.SetupDatabase(map[string]database.Config{
//	    "default": {Driver: "sqlite3", DSN: "app.db"},
//	}, "default", database.FetchAssoc)
//	app.SetupPagination()
//	app.SetupTranslator("./lang")
//
// Each Setup* operation stages its subsystem's configuration into the
// "config" store and then drives a service provider through its two-phase
// Register+Boot lifecycle. Later lookups go through the locator contract:
//
//	if app.Has("view") {
//	    v, err := app.Get("view")
//	    ...
//	}
//
// or the facade-style alias layer:
//
//	engine, err := bridge.Lookup[*view.Factory]("View")
//
// The diagnostics hook subscribes a host-supplied panel to database query
// events:
//
//	app.SetupDiagnostics(panel, map[string]any{"mode": "development"})
package bridge
