package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/gorm"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/db/mock"
	applog "storefront/internal/log"
	"storefront/internal/server"
	"storefront/internal/theme"
)

type serverLifecycle interface {
	Start() error
	Stop() error
}

var (
	loadConfigFunc      = config.Load
	setLogLevelFunc     = applog.SetLevel
	newMockDatabaseFunc = mock.New
	configureDatabase   = db.Configure
	newFetcherFunc      = func(cfg config.CatalogConfig) (catalog.Fetcher, error) {
		return catalog.NewClient(catalog.Config{BaseURL: cfg.BaseURL, Timeout: cfg.Timeout})
	}
	newServerFunc = func(cfg server.Config) (serverLifecycle, error) {
		return server.New(cfg)
	}
	subscribeShutdownSig = func() (<-chan os.Signal, func()) {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		return ch, func() { signal.Stop(ch) }
	}
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	cfg, err := loadConfigFunc()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		return 1
	}

	if err := setLogLevelFunc(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "level", cfg.Logging.Level, "error", err)
		return 1
	}

	prefs, err := openPreferences(ctx, cfg.Database)
	if err != nil {
		applog.Error(ctx, "failed to configure preference database", "error", err)
		return 1
	}

	fetcher, err := newFetcherFunc(cfg.Catalog)
	if err != nil {
		applog.Error(ctx, "failed to configure product fetcher", "error", err)
		return 1
	}

	srv, err := newServerFunc(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieDomain: cfg.Session.CookieDomain,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Fetcher:      fetcher,
		CatalogLimit: cfg.Catalog.Limit,
		Preferences:  prefs,
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		return 1
	}

	sigCh, stop := subscribeShutdownSig()
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr, "catalog", cfg.Catalog.BaseURL)
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			return 1
		}
		return 0
	case sig := <-sigCh:
		applog.Info(ctx, "shutting down http server", "signal", sig.String())
	case <-ctx.Done():
		applog.Info(ctx, "context cancelled, shutting down http server")
	}

	if err := srv.Stop(); err != nil {
		applog.Error(ctx, "graceful shutdown failed", "error", err)
		return 1
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		applog.Error(ctx, "server exited with error", "error", err)
		return 1
	}
	return 0
}

// openPreferences returns the site-wide theme storage, or nil when no
// preference database is configured.
func openPreferences(ctx context.Context, cfg config.DatabaseConfig) (theme.Storage, error) {
	var (
		conn *gorm.DB
		err  error
	)
	switch {
	case cfg.UseMock:
		applog.Info(ctx, "using in-memory preference database")
		conn, err = newMockDatabaseFunc(ctx)
	case cfg.URL != "":
		conn, err = configureDatabase(cfg)
	default:
		applog.Info(ctx, "no preference database configured")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return db.NewPreferenceStorage(conn), nil
}
