package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"adminsearch/internal/config"
	"adminsearch/internal/eventbus"
	"adminsearch/internal/hangul"
	"adminsearch/internal/logging"
	"adminsearch/internal/provider"
	"adminsearch/internal/router"
	"adminsearch/internal/search"
)

// App holds the services shared by every command
type App struct {
	Config     *config.Config
	ConfigPath string
	Bus        eventbus.EventBus
	Backend    provider.Backend
	Available  bool // remote health check result
	Router     *router.Router
	Pages      *router.Pages
	Sections   []search.Section
	Dispatcher *search.Dispatcher

	log     *logrus.Entry
	closers []func()
}

// appOptions control how the app is assembled
type appOptions struct {
	CommandOptions
	// Interactive sends logs to a file so the TUI keeps the terminal
	Interactive bool
}

// newApp loads configuration, configures logging and picks the backend
func newApp(ctx context.Context, opts appOptions) (*App, error) {
	path := opts.ConfigFile
	if path == "" {
		path = config.DefaultPath()
	}

	bus := eventbus.New()
	app := &App{Bus: bus, ConfigPath: path, log: logging.NewLogger("cli")}
	app.closers = append(app.closers, bus.Close)

	cfg, err := config.NewConfigService(path, bus).Load()
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyOverrides(cfg, opts.CommandOptions); err != nil {
		app.Close()
		return nil, err
	}
	app.Config = cfg

	closeLog, err := logging.Configure(logOptions(cfg, opts, path))
	if err != nil {
		app.Close()
		return nil, err
	}
	app.closers = append(app.closers, closeLog)

	backend, available, err := app.chooseBackend(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Backend = backend
	app.Available = available
	app.log.WithFields(logrus.Fields{
		"provider":  backend.Name(),
		"available": available,
		"mode":      cfg.Search.Provider,
	}).Info("Search provider selected")
	bus.Publish(eventbus.ProviderSelectedEvent{Name: backend.Name(), Available: available})

	app.Router = router.New(bus)
	app.Pages = router.NewPages(backend)
	app.Sections = cfg.SearchSections(app.Router.Navigate)
	app.Dispatcher = search.NewDispatcher(app.Sections, func(id, typ string) {
		bus.Publish(eventbus.ItemSelectedEvent{ItemID: id, ItemType: typ})
	})

	return app, nil
}

// chooseBackend builds both backends and lets provider.Choose pick one
func (a *App) chooseBackend(ctx context.Context) (provider.Backend, bool, error) {
	cfg := a.Config

	remote := provider.NewRemote(provider.RemoteOptions{
		BaseURL:  cfg.API.BaseURL,
		Timeout:  cfg.Timeout(),
		PageSize: cfg.API.PageSize,
	})

	// The local catalog is only opened when it can be used
	if cfg.Search.Provider == provider.ModeRemote {
		return remote, true, nil
	}

	var catalog provider.Catalog
	if cfg.Local.Database != "" {
		db, err := provider.OpenSQLite(ctx, cfg.Local.Database)
		if err != nil {
			return nil, false, fmt.Errorf("failed to open local catalog: %w", err)
		}
		a.closers = append(a.closers, func() { _ = db.Close() })
		catalog = db
	} else {
		catalog = provider.NewSeededMemoryCatalog()
	}

	local := provider.NewLocal(catalog, provider.LocalOptions{
		Latency:  cfg.Latency(),
		PageSize: cfg.API.PageSize,
	})
	return provider.Choose(ctx, cfg.Search.Provider, remote, local)
}

// ControllerConfig returns the controller configuration for the app
func (a *App) ControllerConfig(onChange func(search.State)) search.Config {
	cfg := search.Config{
		Sections:  a.Sections,
		Provider:  a.Backend,
		Debounce:  a.Config.Debounce(),
		OnChange:  onChange,
		Publisher: a.Bus,
	}
	if a.Config.Search.TransliterateHangul {
		cfg.Normalize = hangul.Normalize
	}
	return cfg
}

// NormalizeQuery applies the configured query pre-filter
func (a *App) NormalizeQuery(query string) string {
	if a.Config.Search.TransliterateHangul {
		return hangul.Normalize(query)
	}
	return query
}

// Close releases everything in reverse order
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func applyOverrides(cfg *config.Config, opts CommandOptions) error {
	if opts.APIURL != "" {
		cfg.API.BaseURL = opts.APIURL
	}
	if opts.Provider != "" {
		cfg.Search.Provider = opts.Provider
	}
	if opts.Verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func logOptions(cfg *config.Config, opts appOptions, configPath string) logging.Options {
	lo := logging.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
		JSON:  opts.JSONOutput,
	}
	if opts.Interactive {
		if lo.File == "" {
			lo.File = filepath.Join(filepath.Dir(configPath), "adminsearch.log")
		}
		lo.Stderr = "never"
	}
	return lo
}
