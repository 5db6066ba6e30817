// internal/app/app.go
//
// Package app is the composition root: it turns Settings into a running
// game with its store, catalog, events, metrics and debug endpoint.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"time"

	"go-crafting/internal/config"
	"go-crafting/internal/craft"
	"go-crafting/internal/defs"
	"go-crafting/internal/event"
	"go-crafting/internal/metrics"
	"go-crafting/internal/store"
	"go-crafting/internal/store/badger"
	"go-crafting/internal/store/memory"
	"go-crafting/internal/store/sqlite"
)

// App owns every long-lived component of a game session.
type App struct {
	Settings config.Settings
	Logger   *slog.Logger
	Catalog  *defs.Catalog
	Store    store.Store
	Events   *event.Dispatcher
	Metrics  *metrics.Collector
	Game     *craft.Game

	debug *http.Server
}

// NewLogger builds the text logger used across the game.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// OpenStore opens the persistence backend selected by s.
func OpenStore(s config.Settings, logger *slog.Logger) (store.Store, error) {
	switch s.Store {
	case store.BackendMemory:
		return memory.New(), nil
	case store.BackendBadger:
		cfg := badger.DefaultConfig(s.StorePath)
		cfg.Logger = logger.With("component", "badger")
		return badger.Open(cfg)
	case store.BackendSQLite:
		return sqlite.Open(s.StorePath)
	default:
		return nil, fmt.Errorf("unknown store backend %q", s.Store)
	}
}

// New validates s and wires a game. Close releases the store.
func New(s config.Settings, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	cat, err := defs.LoadCatalog(s.CatalogPath)
	if err != nil {
		return nil, err
	}
	st, err := OpenStore(s, logger)
	if err != nil {
		return nil, err
	}

	events := event.NewDispatcher()
	collector := metrics.NewCollector()
	collector.Attach(events)

	game := craft.New(cat, craft.Options{
		CraftDelay: s.CraftDelay,
		Store:      st,
		Events:     events,
		Logger:     logger,
	})

	logger.Info("game ready",
		"store", s.Store,
		"resources", len(cat.Resources()),
		"recipes", len(cat.Recipes()),
	)

	return &App{
		Settings: s,
		Logger:   logger,
		Catalog:  cat,
		Store:    st,
		Events:   events,
		Metrics:  collector,
		Game:     game,
	}, nil
}

// DebugHandler serves pprof under /debug/pprof/ and metrics under /metrics.
func (a *App) DebugHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.Metrics.Handler())
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

// StartDebugServer listens on Settings.DebugAddr in the background.
// An empty address or "off" disables it.
func (a *App) StartDebugServer() {
	addr := a.Settings.DebugAddr
	if addr == "" || addr == "off" {
		return
	}
	a.debug = &http.Server{
		Addr:              addr,
		Handler:           a.DebugHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		a.Logger.Info("debug server listening", "addr", addr)
		if err := a.debug.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Warn("debug server stopped", "error", err)
		}
	}()
}

// Close stops the debug server and closes the store.
func (a *App) Close() error {
	var errs []error
	if a.debug != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := a.debug.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown debug server: %w", err))
		}
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close store: %w", err))
		}
	}
	return errors.Join(errs...)
}
