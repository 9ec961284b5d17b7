package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/domain/ad"
	"github.com/riskibarqy/matchday/internal/domain/league"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/news"
	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/team"
	cacherepo "github.com/riskibarqy/matchday/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/matchday/internal/platform/cache"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

const redisKeyPrefix = "matchday:"

type repositories struct {
	leagues league.Repository
	teams   team.Repository
	players player.Repository
	matches match.Repository
	ads     ad.Repository
	news    news.Repository
}

func loadSeed(cfg config.Config, now time.Time) (memory.Seed, error) {
	if cfg.SeedFile == "" {
		return memory.DefaultSeed(now), nil
	}

	seed, err := memory.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		return memory.Seed{}, fmt.Errorf("load seed file %s: %w", cfg.SeedFile, err)
	}
	return seed, nil
}

func newMemoryRepositories(seed memory.Seed) repositories {
	repos := memory.NewRepositories(seed)
	return repositories{
		leagues: repos.Leagues,
		teams:   repos.Teams,
		players: repos.Players,
		matches: repos.Matches,
		ads:     repos.Ads,
		news:    repos.News,
	}
}

func newPostgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		leagues: postgres.NewLeagueRepository(db),
		teams:   postgres.NewTeamRepository(db),
		players: postgres.NewPlayerRepository(db),
		matches: postgres.NewMatchRepository(db),
		ads:     postgres.NewAdRepository(db),
		news:    postgres.NewNewsRepository(db),
	}
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// newCacheStore returns nil when caching is disabled. The closer releases the
// backend connection.
func newCacheStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (*basecache.Store, func() error, error) {
	noop := func() error { return nil }
	if !cfg.CacheEnabled {
		logger.Info("cache disabled", "reason", "CACHE_ENABLED=false")
		return nil, noop, nil
	}

	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		backend, err := basecache.NewRedisBackend(ctx, basecache.RedisConfig{
			URL:     cfg.RedisURL,
			Prefix:  redisKeyPrefix,
			Timeout: 2 * time.Second,
		})
		if err != nil {
			return nil, noop, err
		}
		logger.Info("cache enabled", "backend", cfg.CacheBackend, "ttl", cfg.CacheTTL.String())
		return basecache.NewStore(backend, cfg.CacheTTL), backend.Close, nil
	default:
		logger.Info("cache enabled", "backend", cfg.CacheBackend, "ttl", cfg.CacheTTL.String())
		return basecache.NewStore(basecache.NewMemoryBackend(), cfg.CacheTTL), noop, nil
	}
}

// withCache decorates the read-heavy repositories. Others pass through.
func withCache(repos repositories, store *basecache.Store, logger *logging.Logger) repositories {
	if store == nil {
		return repos
	}
	repos.leagues = cacherepo.NewLeagueRepository(repos.leagues, store, logger)
	repos.teams = cacherepo.NewTeamRepository(repos.teams, store, logger)
	repos.ads = cacherepo.NewAdRepository(repos.ads, store, logger)
	return repos
}
