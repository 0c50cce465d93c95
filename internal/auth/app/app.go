package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/apcis"
	"github.com/aussiebroadwan/pahiram/internal/auth/cache"
	httpapi "github.com/aussiebroadwan/pahiram/internal/auth/http"
	"github.com/aussiebroadwan/pahiram/internal/auth/metrics"
	"github.com/aussiebroadwan/pahiram/internal/auth/service"
	"github.com/aussiebroadwan/pahiram/internal/auth/store"
	"github.com/aussiebroadwan/pahiram/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/pahiram/pkg/cryptox"
	"github.com/aussiebroadwan/pahiram/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

var _ service.RemoteIdentity = (*apcis.Client)(nil)

// Application encapsulates the auth service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	cache    cache.Client
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	loginService        *service.LoginService
	tokenService        *service.TokenService
	sessionService      *service.SessionService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "pahiram-auth",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates an Application with every dependency initialised. Migrations
// are applied and the defaults policy is checked against the seeded lookups
// before New returns.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:      cfg,
		logger:   NewLogger(cfg),
		registry: prometheus.NewRegistry(),
	}
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)

	ctx := context.Background()

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	c, err := cache.New(ctx, cache.Config{
		RedisURL:   cfg.RedisURL,
		Prefix:     "pahiram:lookup",
		DefaultTTL: cfg.LookupCacheTTL,
	})
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize lookup cache: %w", err)
	}
	app.cache = c

	if err := app.initServices(ctx); err != nil {
		_ = app.cache.Close()
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.cache.Close(); err != nil {
		app.logger.Error("error closing lookup cache", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

// Handler exposes the HTTP router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

func (app *Application) initServices(ctx context.Context) error {
	loc, err := time.LoadLocation(app.cfg.APCISTimeLocation)
	if err != nil {
		return fmt.Errorf("invalid APCIS_TIME_LOCATION %q: %w", app.cfg.APCISTimeLocation, err)
	}

	material, ephemeral, err := cryptox.LoadMasterKey(app.cfg.MasterKeyPath)
	if err != nil {
		return err
	}
	if ephemeral {
		app.logger.Warn("no master key configured, stored APCIS tokens will be unreadable after restart")
	}
	sealer, err := cryptox.NewSealer(material)
	if err != nil {
		return fmt.Errorf("failed to initialize token sealer: %w", err)
	}

	policyCfg, err := LoadDefaultsPolicy(app.cfg.DefaultsFile)
	if err != nil {
		return err
	}
	policy := &service.LookupDefaultsPolicy{Store: app.db, Config: policyCfg}
	if err := policy.Validate(ctx); err != nil {
		return fmt.Errorf("defaults policy: %w", err)
	}

	users := &service.UserService{
		Store:    app.db,
		Defaults: policy,
		Metrics:  app.metrics,
	}
	app.tokenService = &service.TokenService{
		Store:    app.db,
		Sealer:   sealer,
		Location: loc,
	}
	app.sessionService = &service.SessionService{
		Store:   app.db,
		Metrics: app.metrics,
	}
	app.loginService = &service.LoginService{
		Remote:  apcis.New(app.cfg.APCISLoginURL, app.cfg.APCISTimeout),
		Users:   users,
		Tokens:  app.tokenService,
		Lookups: &service.LookupService{Store: app.db, Cache: app.cache, TTL: app.cfg.LookupCacheTTL},
		Metrics: app.metrics,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.metrics,
		app.cfg.HousekeepingInterval,
	)

	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.cache,
		app.registry,
		app.logger,
	)

	router.StrictLimit = app.cfg.StrictLimit
	router.ModerateLimit = app.cfg.ModerateLimit
	router.LenientLimit = app.cfg.LenientLimit
	router.LoginService = app.loginService
	router.TokenService = app.tokenService
	router.SessionService = app.sessionService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// OpenStore opens the configured database and applies pending migrations.
func OpenStore(cfg Config) (*sqlite.Store, error) {
	db, err := sqlite.NewStore(sqlite.DSN(cfg.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	return db, nil
}

// Prune runs one housekeeping pass against the configured database.
func Prune(ctx context.Context, cfg Config, logger *slog.Logger) (service.PruneStats, error) {
	db, err := OpenStore(cfg)
	if err != nil {
		return service.PruneStats{}, err
	}
	defer db.Close()

	hk := service.NewHousekeepingService(db, logger, nil, cfg.HousekeepingInterval)
	return hk.RunOnce(ctx)
}
