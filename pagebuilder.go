// Package pagebuilder is a single-page landing page builder served with
// Echo. Each browser session edits its own document; documents are
// autosaved to SQLite and can be previewed or downloaded as a ZIP holding
// a standalone index.html.
package pagebuilder

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eringen/pagebuilder/notify"
)

// App wires together the store, live workspaces, notifications, autosave
// and the HTTP surface.
type App struct {
	Config     Config
	Echo       *echo.Echo
	Store      *Store
	Workspaces *Workspaces
	Notices    *notify.Center
	Metrics    *Metrics

	saver         *AutoSaver
	exportLimiter *ExportLimiter
	clock         clockwork.Clock
	ready         bool
}

// New creates a new App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		clock:  clockwork.NewRealClock(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Setup opens the store and registers middleware and routes without
// starting the listener or the autosave schedule.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("pagebuilder: %w", err)
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("pagebuilder: init store: %w", err)
	}
	a.Store = store

	logger := a.Echo.Logger
	a.Workspaces = NewWorkspaces(store, a.Config.IdleTTL, a.clock, logger)
	a.Notices = notify.NewCenter(a.Config.NoticeTTL, a.clock)
	a.Metrics = NewMetrics(a.Workspaces.Len)
	a.exportLimiter = NewExportLimiter(a.Config.ExportLimit, a.Config.ExportWindow, a.clock)

	saver, err := NewAutoSaver(a.Workspaces, a.Notices, a.Metrics, logger, a.Config.SaveInterval, a.clock)
	if err != nil {
		a.Close()
		return err
	}
	a.saver = saver

	a.setupMiddleware()
	a.setupRoutes()
	a.ready = true
	return nil
}

// Start sets the app up if needed, starts autosave and serves HTTP until
// the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.saver.Start()
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, then stops autosave after one final
// save pass.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if a.saver != nil {
		err = errors.Join(err, a.saver.Stop())
	}
	return err
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/", a.handleEditor)
	e.POST("/page/", a.handlePage)
	e.POST("/sections/:index/", a.handleSection)
	e.POST("/commands/", a.handleCommand)
	e.POST("/save/", a.handleSave)
	e.GET("/preview/", a.handlePreview)
	e.GET("/export/", a.handleExport)
	e.GET("/notifications/", a.handleNotifications)

	api := e.Group("/api")
	api.POST("/commands", a.handleAPICommand)
	api.GET("/snapshot", a.handleGetSnapshot)
	api.PUT("/snapshot", a.handlePutSnapshot)

	// The gzip middleware compresses the exposition.
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(a.Metrics.Registry, promhttp.HandlerOpts{
		DisableCompression: true,
	})))
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.exportLimiter != nil {
		a.exportLimiter.Close()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
