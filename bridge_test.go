package bridge

import (
	"database/sql"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-laravel-bridge/framework/config"
	"github.com/km-arc/go-laravel-bridge/framework/container"
	"github.com/km-arc/go-laravel-bridge/framework/database"
	"github.com/km-arc/go-laravel-bridge/framework/events"
	gohttp "github.com/km-arc/go-laravel-bridge/framework/http"
	"github.com/km-arc/go-laravel-bridge/framework/pagination"
	"github.com/km-arc/go-laravel-bridge/framework/translation"
	"github.com/km-arc/go-laravel-bridge/framework/view"
)

// newApp returns a bootstrapped App that flashes itself when the test ends.
func newApp(t *testing.T) *App {
	t.Helper()
	app := New()
	require.NoError(t, app.Bootstrap())
	t.Cleanup(app.Flash)
	return app
}

// ── Bootstrap lifecycle ───────────────────────────────────────────────────────

func TestBootstrap_BindsBaselineServices(t *testing.T) {
	app := newApp(t)

	for _, key := range []string{"config", "events", "files", "request"} {
		require.True(t, app.Has(key), "baseline service %q should be bound", key)
	}

	cfg, err := app.Config()
	require.NoError(t, err)
	require.Empty(t, cfg.All(), "a fresh configuration store is empty")
}

func TestBootstrap_IsIdempotent(t *testing.T) {
	app := newApp(t)

	require.NoError(t, app.Bootstrap())
	require.NoError(t, app.Bootstrap())
	require.True(t, app.IsBootstrapped())
}

func TestFlash_AllowsReBootstrap(t *testing.T) {
	app := newApp(t)
	cfg, err := app.Config()
	require.NoError(t, err)
	cfg.Set("app.locale", "cs")

	app.Flash()

	require.False(t, app.IsBootstrapped())
	require.False(t, app.Has("config"))

	require.NoError(t, app.Bootstrap())
	require.True(t, app.IsBootstrapped())

	fresh, err := app.Config()
	require.NoError(t, err)
	require.Empty(t, fresh.All(), "re-bootstrap creates a fresh configuration store")
}

func TestBootstrap_RequestIsDeferredSingleton(t *testing.T) {
	app := newApp(t)

	require.False(t, app.Container().Resolved("request"), "request capture is deferred until first use")

	first, err := app.Get("request")
	require.NoError(t, err)
	second, err := app.Get("request")
	require.NoError(t, err)
	require.Same(t, first.(*gohttp.Request), second.(*gohttp.Request))
}

// ── Locator contract ──────────────────────────────────────────────────────────

func TestGet_UnboundKeyIsEntryNotFound(t *testing.T) {
	app := newApp(t)

	_, err := app.Get("nothing.here")
	var notFound container.EntryNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGet_ConstructorFailurePropagates(t *testing.T) {
	app := newApp(t)
	boom := errors.New("boom")
	app.Container().Singleton("broken", func(c *container.Container) (any, error) {
		return nil, boom
	})

	_, err := app.Get("broken")
	require.ErrorIs(t, err, boom)
	var notFound container.EntryNotFoundError
	require.False(t, errors.As(err, &notFound))
}

// ── Provider activation ───────────────────────────────────────────────────────

type bootNeedsUnbound struct {
	container.BaseProvider
	registerRan bool
}

func (p *bootNeedsUnbound) Register(app *container.Container) { p.registerRan = true }
func (p *bootNeedsUnbound) Boot(app *container.Container) error {
	_, err := app.Make("never.bound")
	return err
}

func TestSetup_BootFailureSurfacesAtBootTime(t *testing.T) {
	app := newApp(t)

	p := &bootNeedsUnbound{}
	err := app.Setup(func(c *container.Container) (container.ServiceProvider, error) {
		return p, nil
	})

	var unbound container.UnboundError
	require.ErrorAs(t, err, &unbound)
	require.True(t, p.registerRan, "Register phase runs before the Boot failure")
}

func TestSetup_AutoBootstrapsFreshApp(t *testing.T) {
	app := New()
	t.Cleanup(app.Flash)

	require.NoError(t, app.SetupLocale("en"))
	require.True(t, app.IsBootstrapped())
}

// ── Setup operations ──────────────────────────────────────────────────────────

func TestSetupDatabase_StagesConfigurationAndBindsManager(t *testing.T) {
	app := newApp(t)

	conns := map[string]database.Config{
		"default": {Driver: "sqlite3", DSN: ":memory:"},
	}
	require.NoError(t, app.SetupDatabase(conns, "", database.FetchAssoc))

	cfg, err := app.Config()
	require.NoError(t, err)
	require.Equal(t, "default", cfg.Get("database.default"))
	require.Equal(t, conns, cfg.Get("database.connections"))

	manager, err := container.Resolve[*database.Manager](app.Container(), "db")
	require.NoError(t, err)
	require.Equal(t, "default", manager.DefaultConnection())
}

func TestSetupView_ActivatesTemplateFactory(t *testing.T) {
	app := newApp(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.html"), []byte("Hi {{.Name}}"), 0o644))
	require.NoError(t, app.SetupView([]string{dir}, filepath.Join(dir, "compiled")))

	engine, err := container.Resolve[*view.Factory](app.Container(), "view")
	require.NoError(t, err)

	out, err := engine.RenderString("home", map[string]any{"Name": "host"})
	require.NoError(t, err)
	require.Equal(t, "Hi host", out)
}

func TestSetupTranslator_UsesConfiguredLocale(t *testing.T) {
	app := newApp(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cs.yaml"), []byte("greeting: Ahoj\n"), 0o644))

	require.NoError(t, app.SetupLocale("cs"))
	require.NoError(t, app.SetupTranslator(dir))

	tr, err := container.Resolve[*translation.Translator](app.Container(), "translator")
	require.NoError(t, err)
	require.Equal(t, "cs", tr.Locale())
	require.Equal(t, "Ahoj", tr.T("greeting"))

	// "lang" aliases the same singleton
	viaAlias, err := container.Resolve[*translation.Translator](app.Container(), "lang")
	require.NoError(t, err)
	require.Same(t, tr, viaAlias)
}

func TestSetupPagination_ResolvesPageFromRequest(t *testing.T) {
	app := newApp(t)
	require.NoError(t, app.SetupPagination())

	app.Container().Instance("request", gohttp.NewRequest(httptest.NewRequest("GET", "/items?page=4", nil)))

	resolver, err := container.Resolve[pagination.CurrentPageResolver](app.Container(), "paginator.resolver")
	require.NoError(t, err)
	require.Equal(t, 4, resolver())
}

func TestSetupPagination_ConsoleAlwaysPageOne(t *testing.T) {
	app := newApp(t)
	require.NoError(t, app.SetupRunningInConsole())
	require.NoError(t, app.SetupPagination())

	app.Container().Instance("request", gohttp.NewRequest(httptest.NewRequest("GET", "/items?page=4", nil)))

	resolver, err := container.Resolve[pagination.CurrentPageResolver](app.Container(), "paginator.resolver")
	require.NoError(t, err)
	require.Equal(t, 1, resolver())
}

func TestSetupLocaleAndConsoleFlag(t *testing.T) {
	app := newApp(t)

	require.NoError(t, app.SetupLocale("cs"))
	require.NoError(t, app.SetupRunningInConsole(false))

	cfg, err := app.Config()
	require.NoError(t, err)
	require.Equal(t, "cs", cfg.GetString("app.locale"))
	require.False(t, cfg.GetBool("app.running_in_console"))
}

func TestSetupDiagnostics_SubscribesPanelToQueryEvents(t *testing.T) {
	app := newApp(t)

	panel := &stubPanel{}
	require.NoError(t, app.SetupDiagnostics(panel, map[string]any{"mode": "development"}))

	cfg, err := app.Config()
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Get("diagnostics.mode"))
	require.True(t, app.Has("debug.panel"))

	require.NoError(t, app.SetupDatabase(map[string]database.Config{
		"default": {Driver: "sqlite3", DSN: ":memory:"},
	}, "default", database.FetchAssoc))

	manager, err := container.Resolve[*database.Manager](app.Container(), "db")
	require.NoError(t, err)
	conn, err := manager.Connection()
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	_, err = conn.Exec("CREATE TABLE notes (id INTEGER)")
	require.NoError(t, err)

	require.Equal(t, []string{"CREATE TABLE notes (id INTEGER)"}, panel.sqls)
	require.Equal(t, []string{"default"}, panel.connections)
}

// ── Aliases ───────────────────────────────────────────────────────────────────

func TestBootstrap_DoesNotOverwriteHostAlias(t *testing.T) {
	// Host claims "View" before any bootstrap
	installed := RegisterAlias("View", "host.custom.view")
	if !installed {
		t.Skip("another test already owns the View alias")
	}

	app := New()
	require.NoError(t, app.Bootstrap())
	t.Cleanup(app.Flash)
	t.Cleanup(func() { removeAlias("View") })

	target, ok := AliasTarget("View")
	require.True(t, ok)
	require.Equal(t, "host.custom.view", target)

	// Flash removes only bridge-installed aliases, never the host's.
	app.Flash()
	target, ok = AliasTarget("View")
	require.True(t, ok)
	require.Equal(t, "host.custom.view", target)
}

func TestBootstrap_InstallsAndFlashRemovesDefaultAliases(t *testing.T) {
	app := New()
	require.NoError(t, app.Bootstrap())

	target, ok := AliasTarget("Config")
	require.True(t, ok)
	require.Equal(t, "config", target)

	app.Flash()
	_, ok = AliasTarget("Config")
	require.False(t, ok)
}

// ── Dynamic delegation ────────────────────────────────────────────────────────

func TestCallOperation_DelegatesKnownOperations(t *testing.T) {
	app := newApp(t)

	_, err := app.CallOperation("instance", "answer", 42)
	require.NoError(t, err)

	bound, err := app.CallOperation("bound", "answer")
	require.NoError(t, err)
	require.Equal(t, true, bound)

	got, err := app.CallOperation("make", "answer")
	require.NoError(t, err)
	require.Equal(t, 42, got)

	_, err = app.CallOperation("forget", "answer")
	require.NoError(t, err)
	require.False(t, app.Has("answer"))
}

func TestCallOperation_UnknownOperation(t *testing.T) {
	app := newApp(t)

	_, err := app.CallOperation("transmogrify", "x")
	var undefined UndefinedOperationError
	require.ErrorAs(t, err, &undefined)
	require.Equal(t, "transmogrify", undefined.Op)
}

func TestCallOperation_ArgumentValidation(t *testing.T) {
	app := newApp(t)

	_, err := app.CallOperation("bound")
	require.Error(t, err)

	_, err = app.CallOperation("bound", 7)
	require.Error(t, err)

	_, err = app.CallOperation("instance", "key")
	require.Error(t, err)
}

// ── Process-wide default ──────────────────────────────────────────────────────

func TestDefault_LazilyBootstrapsOnce(t *testing.T) {
	t.Cleanup(ResetDefault)
	ResetDefault()

	first := Default()
	second := Default()

	require.Same(t, first, second)
	require.True(t, first.IsBootstrapped())
}

func TestLookup_ResolvesThroughAliases(t *testing.T) {
	t.Cleanup(ResetDefault)
	ResetDefault()

	cfg, err := Lookup[*config.Repository]("Config")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	dispatcher, err := Lookup[*events.Dispatcher]("Event")
	require.NoError(t, err)
	require.NotNil(t, dispatcher)

	_, err = Lookup[*config.Repository]("Event") // wrong type
	require.Error(t, err)
}

// stubPanel records forwarded query logs.
type stubPanel struct {
	sqls        []string
	connections []string
}

func (p *stubPanel) LogQuery(stmt string, bindings []any, elapsed time.Duration, connection string, conn *sql.DB) {
	p.sqls = append(p.sqls, stmt)
	p.connections = append(p.connections, connection)
}
