package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/infrastructure/account/anubis"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/matchday/internal/infrastructure/scheduler"
	"github.com/riskibarqy/matchday/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchday/internal/observability"
	idgen "github.com/riskibarqy/matchday/internal/platform/id"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/platform/resilience"
	"github.com/riskibarqy/matchday/internal/usecase"
)

// App owns the HTTP server and the background pieces that must be stopped
// with it.
type App struct {
	Server    *http.Server
	hub       *usecase.ClockHub
	scheduler *scheduler.Scheduler
	logger    *logging.Logger
	closers   []namedCloser
}

type namedCloser struct {
	name  string
	close func() error
}

// New builds the full object graph. On error every resource opened so far is
// released.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (_ *App, err error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{logger: logger}
	defer func() {
		if err != nil {
			_ = a.Close(context.Background())
		}
	}()

	clock := clockwork.NewRealClock()
	seed, err := loadSeed(cfg, clock.Now())
	if err != nil {
		return nil, err
	}

	var repos repositories
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.addCloser("postgres", db.Close)
		if err := postgres.BootstrapSeed(ctx, db, seed); err != nil {
			return nil, err
		}
		repos = newPostgresRepositories(db)
	default:
		repos = newMemoryRepositories(seed)
	}
	logger.Info("storage ready", "driver", cfg.StorageDriver, "seed_file", cfg.SeedFile)

	store, closeCache, err := newCacheStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a.addCloser("cache", closeCache)
	repos = withCache(repos, store, logger)

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	ids := idgen.NewUUIDGenerator()
	matchService := usecase.NewMatchService(repos.leagues, repos.teams, repos.matches, ids, clock, logger.Named("match"))

	a.hub, err = usecase.NewClockHub(repos.matches, clock, logger.Named("clock"), usecase.ClockHubConfig{
		TickInterval: cfg.ClockTickInterval,
		MaxTickers:   cfg.ClockMaxTickers,
	})
	if err != nil {
		return nil, err
	}
	matchService.SetNotifier(a.hub)
	if err := metrics.RegisterClockHub(a.hub); err != nil {
		return nil, fmt.Errorf("register clock metrics: %w", err)
	}

	a.scheduler, err = scheduler.New(logger)
	if err != nil {
		return nil, err
	}
	if err := scheduler.RegisterClockJobs(a.scheduler, a.hub, cfg.ClockReconcileInterval); err != nil {
		return nil, err
	}

	var adObserver usecase.AdServeObserver
	if metrics != nil {
		adObserver = metrics
	}

	handler := httpapi.NewHandler(
		usecase.NewLeagueService(repos.leagues, repos.teams, ids),
		usecase.NewTeamService(repos.leagues, repos.teams, repos.players, ids),
		usecase.NewPlayerService(repos.teams, repos.players, ids),
		matchService,
		usecase.NewStandingService(repos.leagues, repos.teams, repos.matches),
		usecase.NewNewsService(repos.news, repos.leagues, ids, clock),
		usecase.NewAdService(repos.ads, ids, clock, adObserver),
		a.hub,
		cfg.CORSAllowedOrigins,
		logger.Named("httpapi"),
	)

	if cfg.AnubisBaseURL == "" {
		logger.Warn("anubis base url empty; admin routes will reject every token")
	}
	anubisClient := anubis.NewClient(anubis.ClientConfig{
		BaseURL:        cfg.AnubisBaseURL,
		IntrospectPath: cfg.AnubisIntrospectPath,
		AdminKey:       cfg.AnubisAdminKey,
		Timeout:        cfg.AnubisTimeout,
		TokenCacheTTL:  cfg.AnubisTokenCacheTTL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AnubisCircuitEnabled,
			FailureThreshold: cfg.AnubisCircuitFailureCount,
			OpenTimeout:      cfg.AnubisCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AnubisCircuitHalfOpenMaxReq,
		},
		Clock:  clock,
		Logger: logger,
	})

	routerCfg := httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminRole:          cfg.AdminRole,
		SwaggerEnabled:     cfg.SwaggerEnabled,
	}
	if metrics != nil {
		routerCfg.Metrics = metrics
		routerCfg.MetricsHandler = metrics.Handler()
	}

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, anubisClient, logger, routerCfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

// Start launches background jobs. The first clock reconcile runs right away.
func (a *App) Start() {
	a.scheduler.Start()
}

// Close stops background work first, then releases storage.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.scheduler != nil {
		if err := a.scheduler.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop scheduler: %w", err))
		}
	}
	if a.hub != nil {
		if err := a.hub.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close clock hub: %w", err))
		}
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", c.name, err))
		}
	}
	a.closers = nil

	if err := errors.Join(errs...); err != nil {
		a.logger.ErrorContext(ctx, "app close failed", "error", err)
		return err
	}
	return nil
}

func (a *App) addCloser(name string, fn func() error) {
	a.closers = append(a.closers, namedCloser{name: name, close: fn})
}
